package handler

import (
	"net/http"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/money"
	"github.com/coolgym/coolgym-bff-go/internal/service"

	"go.uber.org/zap"
)

// ============================================================
// Billing invoices: /v1/billing
// ============================================================

// invoiceView is an invoice as the SPA renders it: the entity plus the
// amount pre-formatted in the deployment locale.
type invoiceView struct {
	domain.BillingInvoice
	FormattedAmount string `json:"formattedAmount"`
}

func invoiceViews(invoices []domain.BillingInvoice, f *money.Formatter) []invoiceView {
	views := make([]invoiceView, 0, len(invoices))
	for _, inv := range invoices {
		views = append(views, invoiceView{BillingInvoice: inv, FormattedAmount: inv.FormattedAmount(f)})
	}
	return views
}

func listInvoicesHandler(svc *service.AccountStatementService, f *money.Formatter, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "GET /v1/billing/invoices")
		defer span.End()

		userID := intQueryParam(r, "userId")
		if userID == 0 {
			writeError(w, http.StatusBadRequest, "userId query parameter is required")
			return
		}

		invoices, err := svc.InvoicesByUser(ctx, userID)
		if err != nil {
			handleServiceError(w, err, logger)
			return
		}
		writeJSON(w, http.StatusOK, invoiceViews(invoices, f))
	}
}

func payInvoiceHandler(svc *service.AccountStatementService, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), "PUT /v1/billing/invoices/{invoiceId}/pay")
		defer span.End()

		invoiceID := intURLParam(r, "invoiceId")
		if invoiceID == 0 {
			writeError(w, http.StatusBadRequest, "invalid invoice id")
			return
		}

		if err := svc.MarkAsPaid(ctx, invoiceID); err != nil {
			handleServiceError(w, err, logger)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
