package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/money"
	"github.com/coolgym/coolgym-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Provider dashboard: /v1/providers, /v1/rental-requests,
// /v1/maintenance-requests
// ============================================================

func pendingRentalRequestsHandler(svc *service.ProviderService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/providers/{providerId}/rental-requests/pending")
		defer span.End()

		providerID := intURLParam(r, "providerId")
		if providerID == 0 {
			writeError(w, http.StatusBadRequest, "invalid provider id")
			return
		}
		writeJSON(w, http.StatusOK, svc.PendingRentalRequests(ctx, providerID))
	}
}

func approveRentalRequestHandler(svc *service.ProviderService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/rental-requests/{requestId}/approve")
		defer span.End()

		requestID := intURLParam(r, "requestId")
		if requestID == 0 {
			writeError(w, http.StatusBadRequest, "invalid request id")
			return
		}

		if err := svc.ApproveRentalRequest(ctx, requestID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func rejectRentalRequestHandler(svc *service.ProviderService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/rental-requests/{requestId}/reject")
		defer span.End()

		requestID := intURLParam(r, "requestId")
		if requestID == 0 {
			writeError(w, http.StatusBadRequest, "invalid request id")
			return
		}

		if err := svc.RejectRentalRequest(ctx, requestID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func allRentalRequestsHandler(svc *service.ProviderService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/rental-requests")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.AllRentalRequests(ctx))
	}
}

// maintenanceView is a maintenance request with its cost pre-formatted
// for the provider dashboard.
type maintenanceView struct {
	domain.MaintenanceRequest
	FormattedCost string `json:"formattedCost"`
}

func maintenanceViews(requests []domain.MaintenanceRequest, f *money.Formatter) []maintenanceView {
	views := make([]maintenanceView, 0, len(requests))
	for _, req := range requests {
		views = append(views, maintenanceView{MaintenanceRequest: req, FormattedCost: req.FormattedCost(f)})
	}
	return views
}

func allMaintenanceRequestsHandler(svc *service.ProviderService, f *money.Formatter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/maintenance-requests")
		defer span.End()

		writeJSON(w, http.StatusOK, maintenanceViews(svc.AllMaintenanceRequests(ctx), f))
	}
}

func pendingMaintenanceRequestsHandler(svc *service.ProviderService, f *money.Formatter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/maintenance-requests/pending")
		defer span.End()

		writeJSON(w, http.StatusOK, maintenanceViews(svc.PendingMaintenanceRequests(ctx), f))
	}
}

type acceptMaintenanceRequest struct {
	ProviderID int `json:"providerId"`
}

func acceptMaintenanceRequestHandler(svc *service.ProviderService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/maintenance-requests/{requestId}/accept")
		defer span.End()

		requestID := intURLParam(r, "requestId")
		if requestID == 0 {
			writeError(w, http.StatusBadRequest, "invalid request id")
			return
		}

		var req acceptMaintenanceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProviderID == 0 {
			writeError(w, http.StatusBadRequest, "providerId is required")
			return
		}

		if err := svc.AcceptMaintenanceRequest(ctx, requestID, req.ProviderID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func providerEquipmentHandler(svc *service.ProviderService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/providers/equipment")
		defer span.End()

		writeJSON(w, http.StatusOK, svc.ProviderEquipment(ctx))
	}
}

func providerInvoicesHandler(svc *service.ProviderService, f *money.Formatter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/providers/invoices")
		defer span.End()

		writeJSON(w, http.StatusOK, invoiceViews(svc.AllInvoices(ctx), f))
	}
}

func myClientsHandler(svc *service.ProviderService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/providers/{providerId}/clients")
		defer span.End()

		providerID := intURLParam(r, "providerId")
		if providerID == 0 {
			writeError(w, http.StatusBadRequest, "invalid provider id")
			return
		}
		writeJSON(w, http.StatusOK, svc.MyClients(ctx, providerID))
	}
}

func myMaintenanceRequestsHandler(svc *service.ProviderService, f *money.Formatter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/providers/{providerId}/maintenance-requests")
		defer span.End()

		providerID := intURLParam(r, "providerId")
		if providerID == 0 {
			writeError(w, http.StatusBadRequest, "invalid provider id")
			return
		}
		writeJSON(w, http.StatusOK, maintenanceViews(svc.MyMaintenanceRequests(ctx, providerID), f))
	}
}
