package domain

import (
	"strings"

	"github.com/coolgym/coolgym-bff-go/internal/money"
)

// BillingInvoice is a normalized invoice from the billing backend.
// Amount is always numeric, even when the backend serializes it as a string.
type BillingInvoice struct {
	ID          int     `json:"id"`
	UserID      int     `json:"userId"`
	CompanyName string  `json:"companyName"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Status      string  `json:"status"`
	IssuedAt    string  `json:"issuedAt"`
	PaidAt      *string `json:"paidAt"`
}

// IsPaid reports whether the invoice status is "paid" (case-insensitive).
func (i *BillingInvoice) IsPaid() bool {
	return strings.EqualFold(i.Status, "paid")
}

// IsPending reports whether the invoice status is "pending" (case-insensitive).
func (i *BillingInvoice) IsPending() bool {
	return strings.EqualFold(i.Status, "pending")
}

// FormattedAmount renders the amount in the invoice's own currency
// using the injected deployment locale.
func (i *BillingInvoice) FormattedAmount(f *money.Formatter) string {
	return f.Format(i.Amount, i.Currency)
}
