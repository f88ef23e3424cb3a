package domain

import "time"

// Equipment is a gym machine registered by a client.
type Equipment struct {
	ID                int     `json:"id"`
	Name              string  `json:"name"`
	Type              string  `json:"type"`
	Model             string  `json:"model"`
	Manufacturer      string  `json:"manufacturer"`
	SerialNumber      string  `json:"serialNumber"`
	Code              string  `json:"code"`
	InstallationDate  string  `json:"installationDate"`
	EnergyConsumption string  `json:"energyConsumption"`
	Location          string  `json:"location"`
	Address           string  `json:"address"`
	UsageHours        float64 `json:"usageHours"`
	Status            string  `json:"status"`
	ClientID          *int    `json:"clientId"`
	Image             string  `json:"image,omitempty"`
}

// FullIdentifier returns "name - model (code)".
func (e *Equipment) FullIdentifier() string {
	return e.Name + " - " + e.Model + " (" + e.Code + ")"
}

// IsActive reports whether the equipment status is "active".
func (e *Equipment) IsActive() bool {
	return e.Status == "active"
}

// FormattedInstallationDate renders the installation date as a local
// calendar date, or "N/A" when unset or unparseable.
func (e *Equipment) FormattedInstallationDate() string {
	if e.InstallationDate == "" {
		return "N/A"
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, e.InstallationDate); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return "N/A"
}

// IsComplete reports whether all identifying fields are filled in.
func (e *Equipment) IsComplete() bool {
	return e.Name != "" &&
		e.Type != "" &&
		e.Model != "" &&
		e.Manufacturer != "" &&
		e.SerialNumber != "" &&
		e.Code != ""
}
