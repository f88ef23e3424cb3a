package assembler

import (
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
)

// RentMachineResource mirrors /rentals rows. Two backend revisions are
// reconciled here: equipmentName/name, monthlyPriceUSD/price and
// imageUrl/image, the newer key winning.
type RentMachineResource struct {
	ID           FlexInt   `json:"id"`
	EquipmentRes string    `json:"equipmentName"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Model        string    `json:"model"`
	MonthlyPrice FlexFloat `json:"monthlyPriceUSD"`
	Price        FlexFloat `json:"price"`
	Currency     string    `json:"currency"`
	ImageURL     string    `json:"imageUrl"`
	Image        string    `json:"image"`
	IsAvailable  *bool     `json:"isAvailable"`
}

// RentMachineToEntity builds a RentMachine, defaulting the currency to
// USD and availability to true.
func RentMachineToEntity(res RentMachineResource) domain.RentMachine {
	price := float64(res.MonthlyPrice)
	if price == 0 {
		price = float64(res.Price)
	}
	available := true
	if res.IsAvailable != nil {
		available = *res.IsAvailable
	}
	return domain.RentMachine{
		ID:          int(res.ID),
		Name:        pick(res.EquipmentRes, res.Name),
		Type:        res.Type,
		Model:       res.Model,
		Price:       price,
		Currency:    orDefault(res.Currency, "USD"),
		Image:       pick(res.ImageURL, res.Image),
		IsAvailable: available,
	}
}

// RentMachineListToEntities decodes a raw rental catalog payload.
func RentMachineListToEntities(data []byte) []domain.RentMachine {
	return toEntityList(data, RentMachineToEntity)
}

// RentalRequestCreateResource is the body of POST /rentalRequests.
type RentalRequestCreateResource struct {
	ClientID    int    `json:"clientId"`
	ClientEmail string `json:"clientEmail"`
	ProviderID  int    `json:"providerId"`
	MachineID   int    `json:"machineId"`
	Status      string `json:"status"`
	UpdatedDate string `json:"updatedDate"`
}

// ToRentalRequestCreateResource builds a pending rental request payload.
// now stamps updatedDate.
func ToRentalRequestCreateResource(clientID int, clientEmail string, providerID, machineID int, now time.Time) RentalRequestCreateResource {
	return RentalRequestCreateResource{
		ClientID:    clientID,
		ClientEmail: clientEmail,
		ProviderID:  providerID,
		MachineID:   machineID,
		Status:      "pending",
		UpdatedDate: now.UTC().Format(time.RFC3339),
	}
}

// RentalRequestResource mirrors /rentalRequests rows.
type RentalRequestResource struct {
	ID          FlexInt `json:"id"`
	ClientID    FlexInt `json:"clientId"`
	ClientEmail string  `json:"clientEmail"`
	ProviderID  FlexInt `json:"providerId"`
	MachineID   FlexInt `json:"machineId"`
	Status      string  `json:"status"`
	UpdatedDate string  `json:"updatedDate"`
}

// RentalRequestToEntity builds a RentalRequest, defaulting the status
// to pending.
func RentalRequestToEntity(res RentalRequestResource) domain.RentalRequest {
	return domain.RentalRequest{
		ID:          int(res.ID),
		ClientID:    int(res.ClientID),
		ClientEmail: res.ClientEmail,
		ProviderID:  int(res.ProviderID),
		MachineID:   int(res.MachineID),
		Status:      orDefault(res.Status, "pending"),
		UpdatedDate: res.UpdatedDate,
	}
}

// RentalRequestListToEntities decodes a raw rental request payload.
func RentalRequestListToEntities(data []byte) []domain.RentalRequest {
	return toEntityList(data, RentalRequestToEntity)
}
