package domain

import "github.com/coolgym/coolgym-bff-go/internal/money"

// RentMachine is a machine offered in the rental catalog.
type RentMachine struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Model       string  `json:"model"`
	Price       float64 `json:"price"`
	Currency    string  `json:"currency"`
	Image       string  `json:"image,omitempty"`
	IsAvailable bool    `json:"isAvailable"`
}

// FormattedPrice renders the monthly price, e.g. "US$ 200.00 / month".
func (m *RentMachine) FormattedPrice(f *money.Formatter) string {
	return f.Format(m.Price, m.Currency) + " / month"
}

// RentalRequest is a client's request to rent a machine from a provider.
type RentalRequest struct {
	ID          int    `json:"id"`
	ClientID    int    `json:"clientId"`
	ClientEmail string `json:"clientEmail,omitempty"`
	ProviderID  int    `json:"providerId"`
	MachineID   int    `json:"machineId"`
	Status      string `json:"status"`
	UpdatedDate string `json:"updatedDate,omitempty"`
}

// IsPending reports whether the rental request awaits provider action.
func (r *RentalRequest) IsPending() bool {
	return r.Status == "pending"
}

// IsApproved reports whether the rental request was approved.
func (r *RentalRequest) IsApproved() bool {
	return r.Status == "approved"
}

// ProviderClient is a unique client extracted from a provider's approved
// rental requests, for the provider's clients view.
type ProviderClient struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	Date  string `json:"date"`
}
