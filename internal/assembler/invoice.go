package assembler

import "github.com/coolgym/coolgym-bff-go/internal/domain"

// InvoiceResource mirrors one row of /billing/invoices.
type InvoiceResource struct {
	ID          FlexInt   `json:"id"`
	UserID      FlexInt   `json:"userId"`
	CompanyName string    `json:"companyName"`
	Amount      FlexFloat `json:"amount"`
	Currency    string    `json:"currency"`
	Status      string    `json:"status"`
	IssuedAt    string    `json:"issuedAt"`
	PaidAt      *string   `json:"paidAt"`
}

// InvoiceToEntity builds a BillingInvoice, defaulting the currency to
// PEN and the status to pending.
func InvoiceToEntity(res InvoiceResource) domain.BillingInvoice {
	return domain.BillingInvoice{
		ID:          int(res.ID),
		UserID:      int(res.UserID),
		CompanyName: res.CompanyName,
		Amount:      float64(res.Amount),
		Currency:    orDefault(res.Currency, "PEN"),
		Status:      orDefault(res.Status, "pending"),
		IssuedAt:    res.IssuedAt,
		PaidAt:      res.PaidAt,
	}
}

// InvoiceListToEntities decodes a raw invoice list payload.
func InvoiceListToEntities(data []byte) []domain.BillingInvoice {
	return toEntityList(data, InvoiceToEntity)
}

// InvoicePayResource is the body of PUT /billing/invoices/{id}/pay.
type InvoicePayResource struct {
	PaidAt string `json:"paidAt"`
}
