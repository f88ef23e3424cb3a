package domain

// CompanyMachine is the company context's reduced view of a machine.
type CompanyMachine struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Model string `json:"model"`
	Image string `json:"image,omitempty"`
}

// HasImage reports whether the machine carries an image reference.
func (m *CompanyMachine) HasImage() bool {
	return m.Image != ""
}

// DisplayName returns "name (model)".
func (m *CompanyMachine) DisplayName() string {
	return m.Name + " (" + m.Model + ")"
}

// CompanyMaintenanceRequest is a transient aggregate built client-side by
// joining a maintenance request with its equipment and requesting user.
// Client is nil when the user lookup failed; the join never aborts for it.
type CompanyMaintenanceRequest struct {
	MaintenanceRequest
	Equipment *Equipment `json:"equipment"`
	Client    *User      `json:"client"`
}
