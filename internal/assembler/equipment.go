package assembler

import "github.com/coolgym/coolgym-bff-go/internal/domain"

// EquipmentResource mirrors /equipments rows. The backend has shipped
// both camelCase and snake_case keys for the same fields; both are
// declared here and reconciled in EquipmentToEntity, camelCase winning.
type EquipmentResource struct {
	ID                FlexInt    `json:"id"`
	Name              string     `json:"name"`
	Type              string     `json:"type"`
	Model             string     `json:"model"`
	Manufacturer      string     `json:"manufacturer"`
	SerialNumber      string     `json:"serialNumber"`
	SerialNumberAlt   string     `json:"serial_number,omitempty"`
	Code              string     `json:"code"`
	InstallationDate  string     `json:"installationDate"`
	InstallationAlt   string     `json:"installation_date,omitempty"`
	EnergyConsumption string     `json:"energyConsumption"`
	EnergyAlt         string     `json:"energy_consumption,omitempty"`
	Location          string     `json:"location"`
	Address           string     `json:"address"`
	UsageHours        *FlexFloat `json:"usageHours"`
	UsageHoursAlt     *FlexFloat `json:"usage_hours,omitempty"`
	Status            string     `json:"status"`
	ClientID          *FlexInt   `json:"clientId"`
	ClientIDAlt       *FlexInt   `json:"client_id,omitempty"`
	Image             string     `json:"image"`
}

// EquipmentToEntity builds an Equipment, preferring camelCase keys over
// legacy snake_case ones and defaulting the status to active.
func EquipmentToEntity(res EquipmentResource) domain.Equipment {
	usage := 0.0
	if res.UsageHours != nil {
		usage = float64(*res.UsageHours)
	} else if res.UsageHoursAlt != nil {
		usage = float64(*res.UsageHoursAlt)
	}
	clientID := intPtr(res.ClientID)
	if clientID == nil {
		clientID = intPtr(res.ClientIDAlt)
	}
	return domain.Equipment{
		ID:                int(res.ID),
		Name:              res.Name,
		Type:              res.Type,
		Model:             res.Model,
		Manufacturer:      res.Manufacturer,
		SerialNumber:      pick(res.SerialNumber, res.SerialNumberAlt),
		Code:              res.Code,
		InstallationDate:  pick(res.InstallationDate, res.InstallationAlt),
		EnergyConsumption: pick(res.EnergyConsumption, res.EnergyAlt),
		Location:          res.Location,
		Address:           res.Address,
		UsageHours:        usage,
		Status:            orDefault(res.Status, "active"),
		ClientID:          clientID,
		Image:             res.Image,
	}
}

// EquipmentListToEntities decodes a raw equipment list payload.
func EquipmentListToEntities(data []byte) []domain.Equipment {
	return toEntityList(data, EquipmentToEntity)
}

// EquipmentToResource builds the backend payload for create/update.
// Only the canonical camelCase keys go out; the legacy snake_case
// aliases are inbound-only.
func EquipmentToResource(e domain.Equipment) EquipmentResource {
	var clientID *FlexInt
	if e.ClientID != nil {
		v := FlexInt(*e.ClientID)
		clientID = &v
	}
	usage := FlexFloat(e.UsageHours)
	return EquipmentResource{
		ID:                FlexInt(e.ID),
		Name:              e.Name,
		Type:              e.Type,
		Model:             e.Model,
		Manufacturer:      e.Manufacturer,
		SerialNumber:      e.SerialNumber,
		Code:              e.Code,
		InstallationDate:  e.InstallationDate,
		EnergyConsumption: e.EnergyConsumption,
		Location:          e.Location,
		Address:           e.Address,
		UsageHours:        &usage,
		Status:            e.Status,
		ClientID:          clientID,
		Image:             e.Image,
	}
}
