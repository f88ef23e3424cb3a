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
// Profile & plans: /v1/profiles, /v1/plans
// ============================================================

func getProfileHandler(svc *service.ProfileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/profiles/{userId}")
		defer span.End()

		userID := intURLParam(r, "userId")
		if userID == 0 {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		profile, err := svc.UserProfile(ctx, userID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

// planView is a plan as the pricing page renders it: price and machine
// quota pre-formatted for display.
type planView struct {
	domain.ClientPlan
	FormattedPrice  string `json:"formattedPrice"`
	MaxMachinesText string `json:"maxMachinesText"`
}

func listPlansHandler(svc *service.ProfileService, f *money.Formatter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/plans")
		defer span.End()

		plans, err := svc.AllPlans(ctx)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}

		views := make([]planView, 0, len(plans))
		for _, p := range plans {
			views = append(views, planView{
				ClientPlan:      p,
				FormattedPrice:  p.FormattedPrice(f),
				MaxMachinesText: p.MaxMachinesText(),
			})
		}
		writeJSON(w, http.StatusOK, views)
	}
}

type updatePlanRequest struct {
	PlanID int `json:"planId"`
}

func updateUserPlanHandler(svc *service.ProfileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/profiles/{userId}/plan")
		defer span.End()

		userID := intURLParam(r, "userId")
		if userID == 0 {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		var req updatePlanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.PlanID == 0 {
			writeError(w, http.StatusBadRequest, "planId is required")
			return
		}

		profile, err := svc.UpdateUserPlan(ctx, userID, req.PlanID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, profile)
	}
}

type updatePhotoRequest struct {
	ProfilePhoto string `json:"profilePhoto"`
}

func updateProfilePhotoHandler(svc *service.ProfileService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/profiles/{userId}/photo")
		defer span.End()

		userID := intURLParam(r, "userId")
		if userID == 0 {
			writeError(w, http.StatusBadRequest, "invalid user id")
			return
		}

		var req updatePhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		if err := svc.UpdateProfilePhoto(ctx, userID, req.ProfilePhoto); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
