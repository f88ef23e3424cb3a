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

var rentTracer = otel.Tracer("service/rent")

// mockCatalog is the built-in rental catalog shown when the backend is
// unreachable, so the rent page always has something to render.
var mockCatalog = []domain.RentMachine{
	{ID: 1, Name: "Treadmill Pro X", Type: "Cardio", Model: "TRX-300", Price: 200, Currency: "USD", IsAvailable: true},
	{ID: 2, Name: "Stationary Bike GX", Type: "Cardio", Model: "SB-GX", Price: 99, Currency: "USD", IsAvailable: true},
	{ID: 3, Name: "Rowing Machine R-300", Type: "Cardio", Model: "R-300", Price: 150, Currency: "USD", IsAvailable: true},
}

// RentService serves the client's rental catalog and rental requests.
type RentService struct {
	api     port.Requester
	metrics *observability.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewRentService creates a rent service.
func NewRentService(api port.Requester, metrics *observability.Metrics, logger *zap.Logger) *RentService {
	return &RentService{api: api, metrics: metrics, logger: logger, now: time.Now}
}

// RentalCatalog lists the machines available to rent. Backend trouble
// degrades to the mock catalog and bumps the fallback counter.
func (s *RentService) RentalCatalog(ctx context.Context) []domain.RentMachine {
	ctx, span := rentTracer.Start(ctx, "RentService.RentalCatalog")
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("rental_catalog", time.Since(start)) }()

	body, err := s.api.Get(ctx, "rentals")
	if err != nil {
		s.metrics.IncrFallback("rental_catalog")
		s.logger.Warn("rental catalog fetch failed, serving mock catalog", zap.Error(err))
		return mockCatalog
	}

	machines := assembler.RentMachineListToEntities(body)
	if len(machines) == 0 {
		s.metrics.IncrFallback("rental_catalog")
		s.logger.Warn("rental catalog empty, serving mock catalog")
		return mockCatalog
	}
	return machines
}

// RequestRental submits a pending rental request to a provider.
// Propagates failures: the client needs to know the request landed.
func (s *RentService) RequestRental(ctx context.Context, clientID int, clientEmail string, providerID, machineID int) (*domain.RentalRequest, error) {
	ctx, span := rentTracer.Start(ctx, "RentService.RequestRental")
	defer span.End()

	if clientID == 0 || machineID == 0 {
		return nil, &domain.ErrValidation{Field: "machineId", Message: "client and machine ids are required"}
	}

	payload := assembler.ToRentalRequestCreateResource(clientID, clientEmail, providerID, machineID, s.now())
	body, err := s.api.Post(ctx, "rentalRequests", payload)
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}

	var res assembler.RentalRequestResource
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to decode rental request: %w", err)
	}
	created := assembler.RentalRequestToEntity(res)

	s.logger.Info("rental request submitted",
		zap.Int("client_id", created.ClientID),
		zap.Int("machine_id", created.MachineID),
	)
	return &created, nil
}
