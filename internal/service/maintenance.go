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
	"go.uber.org/zap"
)

var maintenanceTracer = otel.Tracer("service/maintenance")

// MaintenanceService backs the client's maintenance request form.
type MaintenanceService struct {
	api     port.Requester
	metrics *observability.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewMaintenanceService creates a maintenance service.
func NewMaintenanceService(api port.Requester, metrics *observability.Metrics, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{api: api, metrics: metrics, logger: logger, now: time.Now}
}

// UserEquipments lists every machine for the form's equipment dropdown.
func (s *MaintenanceService) UserEquipments(ctx context.Context) ([]assembler.EquipmentOption, error) {
	ctx, span := maintenanceTracer.Start(ctx, "MaintenanceService.UserEquipments")
	defer span.End()

	body, err := s.api.Get(ctx, "equipments")
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	return assembler.ToEquipmentOptions(assembler.EquipmentListToEntities(body)), nil
}

// CreateRequest submits a maintenance request built from the form.
func (s *MaintenanceService) CreateRequest(ctx context.Context, form assembler.MaintenanceForm) (*domain.MaintenanceRequest, error) {
	ctx, span := maintenanceTracer.Start(ctx, "MaintenanceService.CreateRequest")
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("maintenance_create", time.Since(start)) }()

	payload := assembler.ToMaintenanceCreateResource(form, s.now())
	if payload.UserID == 0 {
		return nil, &domain.ErrValidation{Field: "userId", Message: "a valid user id is required"}
	}
	if payload.EquipmentID == 0 {
		return nil, &domain.ErrValidation{Field: "equipmentId", Message: "a valid equipment id is required"}
	}

	body, err := s.api.Post(ctx, "maintenanceRequests", payload)
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}

	var res assembler.MaintenanceResource
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to decode maintenance request: %w", err)
	}
	created := assembler.MaintenanceToEntity(res)

	s.logger.Info("maintenance request created",
		zap.Int("user_id", created.UserID),
		zap.Int("equipment_id", created.EquipmentID),
		zap.String("type", created.Type),
	)
	return &created, nil
}

// PricingMap returns the per-type base prices for the form. There is no
// pricing backend yet, so the map is empty and the form hides prices.
func (s *MaintenanceService) PricingMap(ctx context.Context) (map[string]float64, error) {
	_, span := maintenanceTracer.Start(ctx, "MaintenanceService.PricingMap")
	defer span.End()

	return map[string]float64{}, nil
}
