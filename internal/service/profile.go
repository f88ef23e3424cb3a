package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/assembler"
	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
	"github.com/coolgym/coolgym-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var profileTracer = otel.Tracer("service/profile")

// ProfileService serves the profile page: the user record, the plan
// catalog and plan/photo updates.
type ProfileService struct {
	api     port.Requester
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewProfileService creates a profile service.
func NewProfileService(api port.Requester, metrics *observability.Metrics, logger *zap.Logger) *ProfileService {
	return &ProfileService{api: api, metrics: metrics, logger: logger}
}

// UserProfile fetches a user and, when they reference a plan, snapshots
// that plan into the profile. A failed plan lookup degrades to a
// profile without a snapshot; the user fetch itself propagates.
func (s *ProfileService) UserProfile(ctx context.Context, userID int) (*domain.UserProfile, error) {
	ctx, span := profileTracer.Start(ctx, "ProfileService.UserProfile")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("user_profile", time.Since(start)) }()

	body, err := s.api.Get(ctx, fmt.Sprintf("users/%d", userID))
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	if body == nil {
		return nil, &domain.ErrNotFound{Resource: "user", ID: fmt.Sprintf("%d", userID)}
	}

	var userRes assembler.ProfileUserResource
	if err := json.Unmarshal(body, &userRes); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}

	var planRes *assembler.PlanResource
	if userRes.ClientPlanID != nil && int(*userRes.ClientPlanID) != 0 {
		planRes = s.fetchPlan(ctx, int(*userRes.ClientPlanID))
	}

	profile := assembler.ProfileToEntity(userRes, planRes)
	return &profile, nil
}

// AllPlans lists the plan catalog.
func (s *ProfileService) AllPlans(ctx context.Context) ([]domain.ClientPlan, error) {
	ctx, span := profileTracer.Start(ctx, "ProfileService.AllPlans")
	defer span.End()

	body, err := s.api.Get(ctx, "clientPlans")
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	return assembler.PlanListToEntities(body), nil
}

// UpdateUserPlan moves the user onto another plan and returns the
// refetched profile, so the caller sees the new snapshot.
func (s *ProfileService) UpdateUserPlan(ctx context.Context, userID, planID int) (*domain.UserProfile, error) {
	ctx, span := profileTracer.Start(ctx, "ProfileService.UpdateUserPlan")
	defer span.End()
	span.SetAttributes(
		attribute.Int("user.id", userID),
		attribute.Int("plan.id", planID),
	)

	payload := map[string]int{"clientPlanId": planID}
	if _, err := s.api.Patch(ctx, fmt.Sprintf("users/%d", userID), payload); err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}

	s.logger.Info("user plan updated",
		zap.Int("user_id", userID),
		zap.Int("plan_id", planID),
	)
	return s.UserProfile(ctx, userID)
}

// UpdateProfilePhoto stores a new profile photo reference.
func (s *ProfileService) UpdateProfilePhoto(ctx context.Context, userID int, photo string) error {
	ctx, span := profileTracer.Start(ctx, "ProfileService.UpdateProfilePhoto")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	payload := map[string]string{"profilePhoto": photo}
	if _, err := s.api.Patch(ctx, fmt.Sprintf("users/%d", userID), payload); err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return err
	}
	return nil
}

func (s *ProfileService) fetchPlan(ctx context.Context, planID int) *assembler.PlanResource {
	body, err := s.api.Get(ctx, fmt.Sprintf("clientPlans/%d", planID))
	if err != nil || body == nil {
		s.logger.Warn("plan lookup failed, profile rendered without plan",
			zap.Int("plan_id", planID),
			zap.Error(err),
		)
		return nil
	}
	var res assembler.PlanResource
	if err := json.Unmarshal(body, &res); err != nil {
		return nil
	}
	return &res
}
