// Package service provides the business logic layer (use cases). Each
// context of the SPA (auth, equipment, maintenance, rent, provider,
// company, profile, billing) gets its own service over the shared
// backend client.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/coolgym/coolgym-bff-go/internal/assembler"
	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
	"github.com/coolgym/coolgym-bff-go/internal/infra/resilience"
	"github.com/coolgym/coolgym-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var userTracer = otel.Tracer("service/user")

// UserService is the shared kernel for user lookups. Several contexts
// need "who is user N": the company join, the provider clients view and
// the profile page all go through here.
type UserService struct {
	api      port.Requester
	bulkhead *resilience.Bulkhead
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewUserService creates a user service. maxConcurrency caps the
// parallel fan-out of batch lookups.
func NewUserService(api port.Requester, maxConcurrency int, metrics *observability.Metrics, logger *zap.Logger) *UserService {
	return &UserService{
		api:      api,
		bulkhead: resilience.NewBulkhead(maxConcurrency),
		metrics:  metrics,
		logger:   logger,
	}
}

// ByID fetches a single user. Propagates failures.
func (s *UserService) ByID(ctx context.Context, id int) (*domain.User, error) {
	ctx, span := userTracer.Start(ctx, "UserService.ByID")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", id))

	body, err := s.api.Get(ctx, fmt.Sprintf("users/%d", id))
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	if body == nil {
		return nil, &domain.ErrNotFound{Resource: "user", ID: fmt.Sprintf("%d", id)}
	}

	var res assembler.UserResource
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to decode user: %w", err)
	}
	user := assembler.UserToEntity(res)
	return &user, nil
}

// ByIDs fetches many users in parallel. A failed lookup drops that one
// id from the result instead of failing the batch; callers render what
// they got.
func (s *UserService) ByIDs(ctx context.Context, ids []int) map[int]domain.User {
	ctx, span := userTracer.Start(ctx, "UserService.ByIDs")
	defer span.End()
	span.SetAttributes(attribute.Int("user.count", len(ids)))

	unique := make([]int, 0, len(ids))
	seen := make(map[int]bool, len(ids))
	for _, id := range ids {
		if id != 0 && !seen[id] {
			seen[id] = true
			unique = append(unique, id)
		}
	}

	var mu sync.Mutex
	users := make(map[int]domain.User, len(unique))

	g, ctx := errgroup.WithContext(ctx)
	for _, id := range unique {
		id := id
		g.Go(func() error {
			if err := s.bulkhead.Acquire(ctx); err != nil {
				return nil
			}
			defer s.bulkhead.Release()

			user, err := s.ByID(ctx, id)
			if err != nil {
				s.logger.Warn("user lookup failed in batch",
					zap.Int("user_id", id),
					zap.Error(err),
				)
				return nil
			}
			mu.Lock()
			users[id] = *user
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return users
}

// ProviderName resolves a provider's display name, best-effort: an
// unknown or unreachable provider renders as an empty name.
func (s *UserService) ProviderName(ctx context.Context, id int) string {
	ctx, span := userTracer.Start(ctx, "UserService.ProviderName")
	defer span.End()

	user, err := s.ByID(ctx, id)
	if err != nil {
		s.logger.Warn("provider name lookup failed",
			zap.Int("provider_id", id),
			zap.Error(err),
		)
		return ""
	}
	return user.DisplayName()
}
