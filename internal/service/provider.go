package service

import (
	"context"
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

var providerTracer = otel.Tracer("service/provider")

// ProviderService serves the provider dashboard. Its read operations
// are best-effort: a dashboard panel that cannot load shows up empty
// instead of taking the whole page down. The write operations (approve,
// reject, accept) propagate failures.
type ProviderService struct {
	api        port.Requester
	statements *AccountStatementService
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// NewProviderService creates a provider service.
func NewProviderService(api port.Requester, statements *AccountStatementService, metrics *observability.Metrics, logger *zap.Logger) *ProviderService {
	return &ProviderService{api: api, statements: statements, metrics: metrics, logger: logger}
}

// PendingRentalRequests lists the rental requests awaiting this
// provider's decision.
func (s *ProviderService) PendingRentalRequests(ctx context.Context, providerID int) []domain.RentalRequest {
	ctx, span := providerTracer.Start(ctx, "ProviderService.PendingRentalRequests")
	defer span.End()
	span.SetAttributes(attribute.Int("provider.id", providerID))

	requests := s.fetchRentalRequests(ctx, fmt.Sprintf("rentalRequests?providerId=%d", providerID))
	pending := make([]domain.RentalRequest, 0, len(requests))
	for _, r := range requests {
		if r.IsPending() {
			pending = append(pending, r)
		}
	}
	return pending
}

// ApproveRentalRequest accepts a rental request.
func (s *ProviderService) ApproveRentalRequest(ctx context.Context, requestID int) error {
	ctx, span := providerTracer.Start(ctx, "ProviderService.ApproveRentalRequest")
	defer span.End()
	span.SetAttributes(attribute.Int("request.id", requestID))

	if _, err := s.api.Post(ctx, fmt.Sprintf("rentalRequests/%d/approve", requestID), nil); err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return err
	}

	s.logger.Info("rental request approved", zap.Int("request_id", requestID))
	return nil
}

// RejectRentalRequest declines a rental request.
func (s *ProviderService) RejectRentalRequest(ctx context.Context, requestID int) error {
	ctx, span := providerTracer.Start(ctx, "ProviderService.RejectRentalRequest")
	defer span.End()
	span.SetAttributes(attribute.Int("request.id", requestID))

	payload := map[string]string{"status": "rejected"}
	if _, err := s.api.Put(ctx, fmt.Sprintf("rentalRequests/%d", requestID), payload); err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return err
	}

	s.logger.Info("rental request rejected", zap.Int("request_id", requestID))
	return nil
}

// AllMaintenanceRequests lists every maintenance request on the
// platform, for the provider's full history panel.
func (s *ProviderService) AllMaintenanceRequests(ctx context.Context) []domain.MaintenanceRequest {
	ctx, span := providerTracer.Start(ctx, "ProviderService.AllMaintenanceRequests")
	defer span.End()

	return s.fetchMaintenanceRequests(ctx, "maintenanceRequests")
}

// ProviderEquipment lists every machine, for the provider's park panel.
func (s *ProviderService) ProviderEquipment(ctx context.Context) []domain.Equipment {
	ctx, span := providerTracer.Start(ctx, "ProviderService.ProviderEquipment")
	defer span.End()

	body, err := s.api.Get(ctx, "equipments")
	if err != nil {
		s.degrade("equipment list fetch failed", err)
		return []domain.Equipment{}
	}
	return assembler.EquipmentListToEntities(body)
}

// AllInvoices lists every invoice for the provider billing panel.
func (s *ProviderService) AllInvoices(ctx context.Context) []domain.BillingInvoice {
	return s.statements.AllInvoices(ctx)
}

// AllRentalRequests lists every rental request.
func (s *ProviderService) AllRentalRequests(ctx context.Context) []domain.RentalRequest {
	ctx, span := providerTracer.Start(ctx, "ProviderService.AllRentalRequests")
	defer span.End()

	return s.fetchRentalRequests(ctx, "rentalRequests")
}

// MyClients derives the provider's client list from their approved
// rental requests: one row per unique client, first occurrence wins.
func (s *ProviderService) MyClients(ctx context.Context, providerID int) []domain.ProviderClient {
	ctx, span := providerTracer.Start(ctx, "ProviderService.MyClients")
	defer span.End()
	span.SetAttributes(attribute.Int("provider.id", providerID))

	requests := s.fetchRentalRequests(ctx, fmt.Sprintf("rentalRequests?providerId=%d", providerID))

	seen := make(map[int]bool, len(requests))
	clients := make([]domain.ProviderClient, 0, len(requests))
	for _, r := range requests {
		if !r.IsApproved() || seen[r.ClientID] {
			continue
		}
		seen[r.ClientID] = true
		clients = append(clients, domain.ProviderClient{
			ID:    r.ClientID,
			Email: r.ClientEmail,
			Date:  formatRequestDate(r.UpdatedDate),
		})
	}
	return clients
}

// PendingMaintenanceRequests lists the open requests nobody has taken
// yet: pending status and no assigned provider.
func (s *ProviderService) PendingMaintenanceRequests(ctx context.Context) []domain.MaintenanceRequest {
	ctx, span := providerTracer.Start(ctx, "ProviderService.PendingMaintenanceRequests")
	defer span.End()

	requests := s.fetchMaintenanceRequests(ctx, "maintenanceRequests")
	open := make([]domain.MaintenanceRequest, 0, len(requests))
	for _, r := range requests {
		if r.IsPending() && !r.IsAssigned() {
			open = append(open, r)
		}
	}
	return open
}

// AcceptMaintenanceRequest assigns an open request to this provider.
func (s *ProviderService) AcceptMaintenanceRequest(ctx context.Context, requestID, providerID int) error {
	ctx, span := providerTracer.Start(ctx, "ProviderService.AcceptMaintenanceRequest")
	defer span.End()
	span.SetAttributes(
		attribute.Int("request.id", requestID),
		attribute.Int("provider.id", providerID),
	)

	payload := map[string]int{"assignedToProviderId": providerID}
	if _, err := s.api.Put(ctx, fmt.Sprintf("maintenanceRequests/%d/assign", requestID), payload); err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return err
	}

	s.logger.Info("maintenance request accepted",
		zap.Int("request_id", requestID),
		zap.Int("provider_id", providerID),
	)
	return nil
}

// MyMaintenanceRequests lists the requests assigned to this provider.
func (s *ProviderService) MyMaintenanceRequests(ctx context.Context, providerID int) []domain.MaintenanceRequest {
	ctx, span := providerTracer.Start(ctx, "ProviderService.MyMaintenanceRequests")
	defer span.End()
	span.SetAttributes(attribute.Int("provider.id", providerID))

	return s.fetchMaintenanceRequests(ctx, fmt.Sprintf("maintenanceRequests/provider/%d", providerID))
}

func (s *ProviderService) fetchRentalRequests(ctx context.Context, path string) []domain.RentalRequest {
	body, err := s.api.Get(ctx, path)
	if err != nil {
		s.degrade("rental requests fetch failed", err)
		return []domain.RentalRequest{}
	}
	return assembler.RentalRequestListToEntities(body)
}

func (s *ProviderService) fetchMaintenanceRequests(ctx context.Context, path string) []domain.MaintenanceRequest {
	body, err := s.api.Get(ctx, path)
	if err != nil {
		s.degrade("maintenance requests fetch failed", err)
		return []domain.MaintenanceRequest{}
	}
	return assembler.MaintenanceListToEntities(body)
}

func (s *ProviderService) degrade(msg string, err error) {
	s.metrics.IncrFallback("provider_dashboard")
	s.logger.Warn(msg, zap.Error(err))
}

// formatRequestDate renders a backend timestamp as a dd/mm/yyyy date,
// falling back to the raw value when it cannot be parsed.
func formatRequestDate(value string) string {
	if value == "" {
		return ""
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return value
}
