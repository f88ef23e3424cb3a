package domain

import (
	"strings"

	"github.com/coolgym/coolgym-bff-go/internal/money"
)

// MaintenanceRequest is a service request raised by a client against one
// of their machines. Notes is the single canonical free-text field; the
// wire-level observation/notes aliasing is resolved at assembly time.
type MaintenanceRequest struct {
	ID                   *int    `json:"id"`
	UserID               int     `json:"userId"`
	EquipmentID          int     `json:"equipmentId"`
	Type                 string  `json:"type"`
	Status               string  `json:"status"`
	CostUSD              float64 `json:"costUSD"`
	SelectedDate         string  `json:"selectedDate"`
	CreatedAt            string  `json:"createdAt"`
	Notes                string  `json:"notes"`
	AssignedTechnicianID *int    `json:"assignedTechnicianId"`
	AssignedToProviderID *int    `json:"assignedToProviderId,omitempty"`
}

// IsPending reports whether the request status is "pending" (case-insensitive).
func (r *MaintenanceRequest) IsPending() bool {
	return strings.EqualFold(r.Status, "pending")
}

// IsCompleted reports whether the request status is "completed" (case-insensitive).
func (r *MaintenanceRequest) IsCompleted() bool {
	return strings.EqualFold(r.Status, "completed")
}

// HasTechnician reports whether a technician has been assigned.
func (r *MaintenanceRequest) HasTechnician() bool {
	return r.AssignedTechnicianID != nil
}

// IsAssigned reports whether a provider has taken the request.
func (r *MaintenanceRequest) IsAssigned() bool {
	return r.AssignedToProviderID != nil
}

// FormattedCost renders the cost in USD with the injected locale.
func (r *MaintenanceRequest) FormattedCost(f *money.Formatter) string {
	return f.Format(r.CostUSD, "USD")
}
