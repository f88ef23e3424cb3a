package handler

import (
	"net/http"

	"github.com/coolgym/coolgym-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Company views: /v1/companies/{companyId}
// ============================================================

func companyEquipmentHandler(svc *service.CompanyService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/companies/{companyId}/equipment")
		defer span.End()

		companyID := intURLParam(r, "companyId")
		if companyID == 0 {
			writeError(w, http.StatusBadRequest, "invalid company id")
			return
		}

		machines, err := svc.CompanyEquipment(ctx, companyID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, machines)
	}
}

func companyMaintenanceRequestsHandler(svc *service.CompanyService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/companies/{companyId}/maintenance-requests")
		defer span.End()

		companyID := intURLParam(r, "companyId")
		if companyID == 0 {
			writeError(w, http.StatusBadRequest, "invalid company id")
			return
		}

		requests, err := svc.CompanyMaintenanceRequests(ctx, companyID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, requests)
	}
}
