package domain

import (
	"fmt"
	"strings"

	"github.com/coolgym/coolgym-bff-go/internal/money"
)

// UnlimitedMachines is the sentinel above which a plan's machine quota
// is presented as unlimited.
const UnlimitedMachines = 999

// ClientPlan is a subscription plan. TargetUserRole selects the display
// unit: provider plans count clients, everything else counts machines.
type ClientPlan struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	BillingCycle   string  `json:"billingCycle"`
	MaxMachines    int     `json:"maxMachines"`
	TargetUserRole string  `json:"targetUserRole,omitempty"`
}

// FormattedPrice renders "<price> / <cycle>" in USD.
func (p *ClientPlan) FormattedPrice(f *money.Formatter) string {
	return f.Format(p.Price, "USD") + " / " + p.BillingCycle
}

// MaxMachinesText renders the plan quota for display. Quotas at or above
// the sentinel read "Unlimited <unit>"; otherwise "Up to N <unit>".
func (p *ClientPlan) MaxMachinesText() string {
	unit := "machines"
	if strings.EqualFold(p.TargetUserRole, "provider") {
		unit = "clients"
	}
	if p.MaxMachines >= UnlimitedMachines {
		return "Unlimited " + unit
	}
	return fmt.Sprintf("Up to %d %s", p.MaxMachines, unit)
}

// IsBasicPlan reports whether this is the basic tier.
func (p *ClientPlan) IsBasicPlan() bool {
	return strings.EqualFold(p.Name, "basic")
}

// IsStandardPlan reports whether this is the standard tier.
func (p *ClientPlan) IsStandardPlan() bool {
	return strings.EqualFold(p.Name, "standard")
}

// IsPremiumPlan reports whether this is the premium tier.
func (p *ClientPlan) IsPremiumPlan() bool {
	return strings.EqualFold(p.Name, "premium")
}
