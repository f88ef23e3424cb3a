package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/coolgym/coolgym-bff-go/internal/assembler"
	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
	"github.com/coolgym/coolgym-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

var equipmentTracer = otel.Tracer("service/equipment")

// EquipmentService owns the client context's machine CRUD. Every
// operation propagates failures: forms need to know whether the write
// landed.
type EquipmentService struct {
	api     port.Requester
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewEquipmentService creates an equipment service.
func NewEquipmentService(api port.Requester, metrics *observability.Metrics, logger *zap.Logger) *EquipmentService {
	return &EquipmentService{api: api, metrics: metrics, logger: logger}
}

// Create registers a machine and returns it as echoed by the backend.
func (s *EquipmentService) Create(ctx context.Context, equipment domain.Equipment) (*domain.Equipment, error) {
	ctx, span := equipmentTracer.Start(ctx, "EquipmentService.Create")
	defer span.End()

	if equipment.Name == "" {
		return nil, &domain.ErrValidation{Field: "name", Message: "name is required"}
	}

	body, err := s.api.Post(ctx, "equipments", assembler.EquipmentToResource(equipment))
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	created, err := decodeEquipment(body)
	if err != nil {
		return nil, err
	}

	s.logger.Info("equipment created",
		zap.Int("equipment_id", created.ID),
		zap.String("name", created.Name),
	)
	return created, nil
}

// ByID fetches one machine.
func (s *EquipmentService) ByID(ctx context.Context, id int) (*domain.Equipment, error) {
	ctx, span := equipmentTracer.Start(ctx, "EquipmentService.ByID")
	defer span.End()
	span.SetAttributes(attribute.Int("equipment.id", id))

	body, err := s.api.Get(ctx, fmt.Sprintf("equipments/%d", id))
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	if body == nil {
		return nil, &domain.ErrNotFound{Resource: "equipment", ID: fmt.Sprintf("%d", id)}
	}
	return decodeEquipment(body)
}

// ClientEquipment lists the machines owned by one client.
func (s *EquipmentService) ClientEquipment(ctx context.Context, clientID int) ([]domain.Equipment, error) {
	ctx, span := equipmentTracer.Start(ctx, "EquipmentService.ClientEquipment")
	defer span.End()
	span.SetAttributes(attribute.Int("client.id", clientID))

	body, err := s.api.Get(ctx, fmt.Sprintf("equipments?clientId=%d", clientID))
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	return assembler.EquipmentListToEntities(body), nil
}

// Update overwrites a machine's record.
func (s *EquipmentService) Update(ctx context.Context, equipment domain.Equipment) (*domain.Equipment, error) {
	ctx, span := equipmentTracer.Start(ctx, "EquipmentService.Update")
	defer span.End()
	span.SetAttributes(attribute.Int("equipment.id", equipment.ID))

	if equipment.ID == 0 {
		return nil, &domain.ErrValidation{Field: "id", Message: "id is required"}
	}

	body, err := s.api.Put(ctx, fmt.Sprintf("equipments/%d", equipment.ID), assembler.EquipmentToResource(equipment))
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	if body == nil {
		return &equipment, nil
	}
	return decodeEquipment(body)
}

// Delete removes a machine.
func (s *EquipmentService) Delete(ctx context.Context, id int) error {
	ctx, span := equipmentTracer.Start(ctx, "EquipmentService.Delete")
	defer span.End()
	span.SetAttributes(attribute.Int("equipment.id", id))

	if err := s.api.Delete(ctx, fmt.Sprintf("equipments/%d", id)); err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return err
	}

	s.logger.Info("equipment deleted", zap.Int("equipment_id", id))
	return nil
}

func decodeEquipment(body []byte) (*domain.Equipment, error) {
	var res assembler.EquipmentResource
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to decode equipment: %w", err)
	}
	equipment := assembler.EquipmentToEntity(res)
	return &equipment, nil
}
