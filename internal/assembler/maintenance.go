package assembler

import (
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
)

// MaintenanceResource mirrors /maintenanceRequests rows. The backend
// renamed the free-text field from notes to observation; both keys are
// declared and the newer one wins when both are present.
type MaintenanceResource struct {
	ID                   *FlexInt  `json:"id"`
	UserID               FlexInt   `json:"userId"`
	RequestedByUserID    *FlexInt  `json:"requestedByUserId"`
	ClientID             *FlexInt  `json:"clientId"`
	EquipmentID          FlexInt   `json:"equipmentId"`
	Type                 string    `json:"type"`
	Status               string    `json:"status"`
	CostUSD              FlexFloat `json:"costUSD"`
	SelectedDate         string    `json:"selectedDate"`
	CreatedAt            string    `json:"createdAt"`
	Notes                string    `json:"notes"`
	Observation          string    `json:"observation"`
	AssignedTechnicianID *FlexInt  `json:"assignedTechnicianId"`
	AssignedToProviderID *FlexInt  `json:"assignedToProviderId"`
}

// MaintenanceToEntity builds a MaintenanceRequest. The observation key
// overrides notes, and requestedByUserId/clientId stand in for a missing
// userId: the aliasing is resolved here once, never downstream.
func MaintenanceToEntity(res MaintenanceResource) domain.MaintenanceRequest {
	userID := int(res.UserID)
	if userID == 0 {
		if res.RequestedByUserID != nil {
			userID = int(*res.RequestedByUserID)
		} else if res.ClientID != nil {
			userID = int(*res.ClientID)
		}
	}
	return domain.MaintenanceRequest{
		ID:                   intPtr(res.ID),
		UserID:               userID,
		EquipmentID:          int(res.EquipmentID),
		Type:                 orDefault(res.Type, "corrective"),
		Status:               orDefault(res.Status, "pending"),
		CostUSD:              float64(res.CostUSD),
		SelectedDate:         res.SelectedDate,
		CreatedAt:            res.CreatedAt,
		Notes:                pick(res.Observation, res.Notes),
		AssignedTechnicianID: intPtr(res.AssignedTechnicianID),
		AssignedToProviderID: intPtr(res.AssignedToProviderID),
	}
}

// MaintenanceListToEntities decodes a raw maintenance list payload.
func MaintenanceListToEntities(data []byte) []domain.MaintenanceRequest {
	return toEntityList(data, MaintenanceToEntity)
}

// MaintenanceForm is the create form as filled in by the UI. IDs arrive
// as strings and the date as a plain local calendar date.
type MaintenanceForm struct {
	UserID       string
	EquipmentID  string
	Type         string
	CostUSD      float64
	SelectedDate string
	Notes        string
}

// MaintenanceCreateResource is the body of POST /maintenanceRequests.
// The free-text field goes out under the backend's observation key.
type MaintenanceCreateResource struct {
	UserID               int     `json:"userId"`
	EquipmentID          int     `json:"equipmentId"`
	Type                 string  `json:"type"`
	Status               string  `json:"status"`
	CostUSD              float64 `json:"costUSD"`
	SelectedDate         string  `json:"selectedDate"`
	CreatedAt            string  `json:"createdAt"`
	Observation          string  `json:"observation"`
	AssignedTechnicianID *int    `json:"assignedTechnicianId"`
}

// ToMaintenanceCreateResource builds the create payload: string ids are
// coerced to numbers, the selected local date becomes an ISO-8601
// timestamp, and notes is renamed to observation. now stamps createdAt.
func ToMaintenanceCreateResource(form MaintenanceForm, now time.Time) MaintenanceCreateResource {
	selected := form.SelectedDate
	if t, err := time.Parse("2006-01-02", form.SelectedDate); err == nil {
		selected = t.Format("2006-01-02T15:04:05")
	}
	return MaintenanceCreateResource{
		UserID:       atoi(form.UserID),
		EquipmentID:  atoi(form.EquipmentID),
		Type:         orDefault(form.Type, "corrective"),
		Status:       "pending",
		CostUSD:      form.CostUSD,
		SelectedDate: selected,
		CreatedAt:    now.UTC().Format(time.RFC3339),
		Observation:  form.Notes,
	}
}

// EquipmentOption is a dropdown option for the maintenance form.
type EquipmentOption struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// ToEquipmentOption reduces equipment to a select option.
func ToEquipmentOption(e domain.Equipment) EquipmentOption {
	return EquipmentOption{ID: e.ID, Label: orDefault(e.Name, "Unknown Equipment")}
}

// ToEquipmentOptions maps a list of equipment to options.
func ToEquipmentOptions(list []domain.Equipment) []EquipmentOption {
	out := make([]EquipmentOption, 0, len(list))
	for _, e := range list {
		out = append(out, ToEquipmentOption(e))
	}
	return out
}
