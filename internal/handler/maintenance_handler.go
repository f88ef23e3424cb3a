package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coolgym/coolgym-bff-go/internal/assembler"
	"github.com/coolgym/coolgym-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Maintenance form: /v1/maintenance
// ============================================================

func maintenanceEquipmentsHandler(svc *service.MaintenanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/maintenance/equipments")
		defer span.End()

		options, err := svc.UserEquipments(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, options)
	}
}

type maintenanceCreateRequest struct {
	UserID       string  `json:"userId"`
	EquipmentID  string  `json:"equipmentId"`
	Type         string  `json:"type"`
	CostUSD      float64 `json:"costUSD"`
	SelectedDate string  `json:"selectedDate"`
	Notes        string  `json:"notes"`
}

func createMaintenanceRequestHandler(svc *service.MaintenanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/maintenance/requests")
		defer span.End()

		var req maintenanceCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		created, err := svc.CreateRequest(ctx, assembler.MaintenanceForm{
			UserID:       req.UserID,
			EquipmentID:  req.EquipmentID,
			Type:         req.Type,
			CostUSD:      req.CostUSD,
			SelectedDate: req.SelectedDate,
			Notes:        req.Notes,
		})
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func maintenancePricingHandler(svc *service.MaintenanceService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/maintenance/pricing")
		defer span.End()

		pricing, err := svc.PricingMap(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, pricing)
	}
}
