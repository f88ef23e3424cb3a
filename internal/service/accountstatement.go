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

var statementTracer = otel.Tracer("service/accountstatement")

// AccountStatementService serves the billing invoices views.
type AccountStatementService struct {
	api     port.Requester
	metrics *observability.Metrics
	logger  *zap.Logger
	now     func() time.Time
}

// NewAccountStatementService creates an account statement service.
func NewAccountStatementService(api port.Requester, metrics *observability.Metrics, logger *zap.Logger) *AccountStatementService {
	return &AccountStatementService{api: api, metrics: metrics, logger: logger, now: time.Now}
}

// InvoicesByUser lists a user's invoices. Propagates failures so the
// statement view can show an error state.
func (s *AccountStatementService) InvoicesByUser(ctx context.Context, userID int) ([]domain.BillingInvoice, error) {
	ctx, span := statementTracer.Start(ctx, "AccountStatementService.InvoicesByUser")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", userID))

	body, err := s.api.Get(ctx, fmt.Sprintf("billing/invoices?userId=%d", userID))
	if err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	return assembler.InvoiceListToEntities(body), nil
}

// MarkAsPaid settles one invoice. paidAt is stamped with the current
// local time as an ISO-8601 timestamp without sub-second precision.
func (s *AccountStatementService) MarkAsPaid(ctx context.Context, invoiceID int) error {
	ctx, span := statementTracer.Start(ctx, "AccountStatementService.MarkAsPaid")
	defer span.End()
	span.SetAttributes(attribute.Int("invoice.id", invoiceID))

	payload := assembler.InvoicePayResource{
		PaidAt: s.now().Format("2006-01-02T15:04:05"),
	}
	if _, err := s.api.Put(ctx, fmt.Sprintf("billing/invoices/%d/pay", invoiceID), payload); err != nil {
		s.metrics.IncrExternalError("coolgym-api")
		return err
	}

	s.logger.Info("invoice marked as paid", zap.Int("invoice_id", invoiceID))
	return nil
}

// AllInvoices lists every invoice for the provider billing view,
// best-effort: backend trouble degrades to an empty list.
func (s *AccountStatementService) AllInvoices(ctx context.Context) []domain.BillingInvoice {
	ctx, span := statementTracer.Start(ctx, "AccountStatementService.AllInvoices")
	defer span.End()

	body, err := s.api.Get(ctx, "billing/invoices/all")
	if err != nil {
		s.metrics.IncrFallback("provider_dashboard")
		s.logger.Warn("all invoices fetch failed", zap.Error(err))
		return []domain.BillingInvoice{}
	}
	return assembler.InvoiceListToEntities(body)
}
