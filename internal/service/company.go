package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

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

var companyTracer = otel.Tracer("service/company")

// CompanyService builds the company context's views. The backend has no
// aggregate endpoints for them, so the joins happen here: the machine
// park joins /companyMachines with /equipments, and the maintenance
// overview layers the requesting users on top of that.
type CompanyService struct {
	api      port.Requester
	users    *UserService
	bulkhead *resilience.Bulkhead
	metrics  *observability.Metrics
	logger   *zap.Logger
}

// NewCompanyService creates a company service.
func NewCompanyService(api port.Requester, users *UserService, maxConcurrency int, metrics *observability.Metrics, logger *zap.Logger) *CompanyService {
	return &CompanyService{
		api:      api,
		users:    users,
		bulkhead: resilience.NewBulkhead(maxConcurrency),
		metrics:  metrics,
		logger:   logger,
	}
}

// CompanyEquipment lists the machines a company operates: the active
// join rows, each resolved to its equipment in parallel. A failed
// equipment lookup fails the view.
func (s *CompanyService) CompanyEquipment(ctx context.Context, companyID int) ([]domain.CompanyMachine, error) {
	ctx, span := companyTracer.Start(ctx, "CompanyService.CompanyEquipment")
	defer span.End()
	span.SetAttributes(attribute.Int("company.id", companyID))

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("company_equipment", time.Since(start)) }()

	equipment, err := s.companyEquipmentByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	machines := make([]domain.CompanyMachine, 0, len(equipment))
	for _, e := range equipment {
		machines = append(machines, domain.CompanyMachine{
			ID:    e.ID,
			Name:  e.Name,
			Model: e.Model,
			Image: e.Image,
		})
	}
	return machines, nil
}

// CompanyMaintenanceRequests builds the maintenance overview: requests
// against the company's machines, each carrying its equipment and the
// requesting user. User lookups are tolerant; a request whose user
// cannot be resolved renders with a nil Client instead of being
// dropped.
func (s *CompanyService) CompanyMaintenanceRequests(ctx context.Context, companyID int) ([]domain.CompanyMaintenanceRequest, error) {
	ctx, span := companyTracer.Start(ctx, "CompanyService.CompanyMaintenanceRequests")
	defer span.End()
	span.SetAttributes(attribute.Int("company.id", companyID))

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("company_maintenance", time.Since(start)) }()

	equipment, err := s.companyEquipmentByID(ctx, companyID)
	if err != nil {
		return nil, err
	}
	byEquipmentID := make(map[int]domain.Equipment, len(equipment))
	for _, e := range equipment {
		byEquipmentID[e.ID] = e
	}

	body, err := s.api.Get(ctx, "maintenanceRequests")
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	requests := assembler.MaintenanceListToEntities(body)

	relevant := make([]domain.MaintenanceRequest, 0, len(requests))
	userIDs := make([]int, 0, len(requests))
	for _, r := range requests {
		if _, ok := byEquipmentID[r.EquipmentID]; ok {
			relevant = append(relevant, r)
			userIDs = append(userIDs, r.UserID)
		}
	}

	users := s.users.ByIDs(ctx, userIDs)

	out := make([]domain.CompanyMaintenanceRequest, 0, len(relevant))
	for _, r := range relevant {
		row := domain.CompanyMaintenanceRequest{MaintenanceRequest: r}
		if e, ok := byEquipmentID[r.EquipmentID]; ok {
			machine := e
			row.Equipment = &machine
		}
		if u, ok := users[r.UserID]; ok {
			user := u
			row.Client = &user
		}
		out = append(out, row)
	}
	return out, nil
}

// companyEquipmentByID resolves a company's active join rows to their
// equipment, in parallel, preserving row order.
func (s *CompanyService) companyEquipmentByID(ctx context.Context, companyID int) ([]domain.Equipment, error) {
	body, err := s.api.Get(ctx, fmt.Sprintf("companyMachines?companyId=%d&active=true", companyID))
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	links := assembler.CompanyMachineLinks(body)

	equipment := make([]domain.Equipment, len(links))
	g, ctx := errgroup.WithContext(ctx)
	for i, link := range links {
		i, link := i, link
		g.Go(func() error {
			if err := s.bulkhead.Acquire(ctx); err != nil {
				return err
			}
			defer s.bulkhead.Release()

			raw, err := s.api.Get(ctx, fmt.Sprintf("equipments/%d", int(link.EquipmentID)))
			if err != nil {
				return err
			}
			if raw == nil {
				return &domain.ErrNotFound{Resource: "equipment", ID: fmt.Sprintf("%d", int(link.EquipmentID))}
			}
			var res assembler.EquipmentResource
			if err := json.Unmarshal(raw, &res); err != nil {
				return fmt.Errorf("failed to decode equipment: %w", err)
			}
			equipment[i] = assembler.EquipmentToEntity(res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	return equipment, nil
}
