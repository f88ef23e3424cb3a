package handler

import (
	"encoding/json"
	"net/http"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Equipment CRUD: /v1/equipments
// ============================================================

func createEquipmentHandler(svc *service.EquipmentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "POST /v1/equipments")
		defer span.End()

		var equipment domain.Equipment
		if err := json.NewDecoder(r.Body).Decode(&equipment); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		created, err := svc.Create(ctx, equipment)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

func getEquipmentHandler(svc *service.EquipmentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/equipments/{equipmentId}")
		defer span.End()

		id := intURLParam(r, "equipmentId")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "invalid equipment id")
			return
		}

		equipment, err := svc.ByID(ctx, id)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, equipment)
	}
}

func listClientEquipmentHandler(svc *service.EquipmentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/equipments")
		defer span.End()

		clientID := intQueryParam(r, "clientId")
		if clientID == 0 {
			writeError(w, http.StatusBadRequest, "clientId query parameter is required")
			return
		}

		equipment, err := svc.ClientEquipment(ctx, clientID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, equipment)
	}
}

func updateEquipmentHandler(svc *service.EquipmentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/equipments/{equipmentId}")
		defer span.End()

		id := intURLParam(r, "equipmentId")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "invalid equipment id")
			return
		}

		var equipment domain.Equipment
		if err := json.NewDecoder(r.Body).Decode(&equipment); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		equipment.ID = id

		updated, err := svc.Update(ctx, equipment)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

func deleteEquipmentHandler(svc *service.EquipmentService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "DELETE /v1/equipments/{equipmentId}")
		defer span.End()

		id := intURLParam(r, "equipmentId")
		if id == 0 {
			writeError(w, http.StatusBadRequest, "invalid equipment id")
			return
		}

		if err := svc.Delete(ctx, id); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
