package domain

// UserProfile is a user's profile together with an owned snapshot of
// their current plan. CurrentPlan is a value copy taken at fetch time;
// later plan changes elsewhere do not propagate into it.
type UserProfile struct {
	ID           int         `json:"id"`
	Name         string      `json:"name"`
	Email        string      `json:"email"`
	Username     string      `json:"username"`
	Phone        string      `json:"phone"`
	Type         string      `json:"type"`
	ClientPlanID *int        `json:"clientPlanId"`
	CurrentPlan  *ClientPlan `json:"currentPlan"`
	ProfilePhoto string      `json:"profilePhoto,omitempty"`
}

// DisplayName returns the first non-empty of name, username, email.
func (p *UserProfile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	if p.Username != "" {
		return p.Username
	}
	return p.Email
}

// CurrentPlanType renders "<plan name> (<quota text>)", or "No plan".
func (p *UserProfile) CurrentPlanType() string {
	if p.CurrentPlan == nil {
		return "No plan"
	}
	return p.CurrentPlan.Name + " (" + p.CurrentPlan.MaxMachinesText() + ")"
}

// HasActivePlan reports whether a plan snapshot is attached.
func (p *UserProfile) HasActivePlan() bool {
	return p.CurrentPlan != nil
}

// IsOnPlan reports whether the profile references the given plan id.
func (p *UserProfile) IsOnPlan(planID int) bool {
	return p.ClientPlanID != nil && *p.ClientPlanID == planID
}

// HasProfilePhoto reports whether a profile photo is set.
func (p *UserProfile) HasProfilePhoto() bool {
	return p.ProfilePhoto != ""
}
