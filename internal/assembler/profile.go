package assembler

import "github.com/coolgym/coolgym-bff-go/internal/domain"

// PlanResource mirrors /clientPlans rows.
type PlanResource struct {
	ID             FlexInt   `json:"id"`
	Name           string    `json:"name"`
	Price          FlexFloat `json:"price"`
	BillingCycle   string    `json:"billingCycle"`
	MaxMachines    FlexInt   `json:"maxMachines"`
	TargetUserRole string    `json:"targetUserRole"`
}

// PlanToEntity builds a ClientPlan, defaulting the cycle to monthly.
func PlanToEntity(res PlanResource) domain.ClientPlan {
	return domain.ClientPlan{
		ID:             int(res.ID),
		Name:           res.Name,
		Price:          float64(res.Price),
		BillingCycle:   orDefault(res.BillingCycle, "monthly"),
		MaxMachines:    int(res.MaxMachines),
		TargetUserRole: res.TargetUserRole,
	}
}

// PlanListToEntities decodes a raw plan list payload.
func PlanListToEntities(data []byte) []domain.ClientPlan {
	return toEntityList(data, PlanToEntity)
}

// ProfileUserResource mirrors a /users/{id} row for the profile view.
type ProfileUserResource struct {
	ID           FlexInt  `json:"id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Username     string   `json:"username"`
	Phone        string   `json:"phone"`
	Type         string   `json:"type"`
	ClientPlanID *FlexInt `json:"clientPlanId"`
	ProfilePhoto string   `json:"profilePhoto"`
}

// ProfileToEntity builds a UserProfile. The plan resource is optional;
// when present its entity is embedded as an owned snapshot.
func ProfileToEntity(res ProfileUserResource, plan *PlanResource) domain.UserProfile {
	profile := domain.UserProfile{
		ID:           int(res.ID),
		Name:         res.Name,
		Email:        res.Email,
		Username:     res.Username,
		Phone:        res.Phone,
		Type:         orDefault(res.Type, "individual"),
		ClientPlanID: intPtr(res.ClientPlanID),
		ProfilePhoto: res.ProfilePhoto,
	}
	if plan != nil {
		p := PlanToEntity(*plan)
		profile.CurrentPlan = &p
	}
	return profile
}
