package domain

import "testing"

func TestClientPlan_MaxMachinesText(t *testing.T) {
	cases := []struct {
		name string
		plan ClientPlan
		want string
	}{
		{"provider unlimited", ClientPlan{MaxMachines: 999, TargetUserRole: "provider"}, "Unlimited clients"},
		{"provider unlimited above sentinel", ClientPlan{MaxMachines: 1500, TargetUserRole: "Provider"}, "Unlimited clients"},
		{"client unlimited", ClientPlan{MaxMachines: 999, TargetUserRole: "client"}, "Unlimited machines"},
		{"no role unlimited", ClientPlan{MaxMachines: 999}, "Unlimited machines"},
		{"client bounded", ClientPlan{MaxMachines: 10, TargetUserRole: "client"}, "Up to 10 machines"},
		{"provider bounded", ClientPlan{MaxMachines: 5, TargetUserRole: "provider"}, "Up to 5 clients"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.plan.MaxMachinesText(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestBillingInvoice_StatusPredicates(t *testing.T) {
	for _, status := range []string{"paid", "Paid", "PAID"} {
		inv := BillingInvoice{Status: status}
		if !inv.IsPaid() {
			t.Errorf("IsPaid should accept %q", status)
		}
		if inv.IsPending() {
			t.Errorf("IsPending should reject %q", status)
		}
	}
	inv := BillingInvoice{Status: "Pending"}
	if !inv.IsPending() {
		t.Error("IsPending should be case-insensitive")
	}
}

func TestMaintenanceRequest_Predicates(t *testing.T) {
	r := MaintenanceRequest{Status: "PENDING"}
	if !r.IsPending() {
		t.Error("IsPending should be case-insensitive")
	}
	if r.IsAssigned() {
		t.Error("request without provider should not be assigned")
	}
	provider := 3
	r.AssignedToProviderID = &provider
	if !r.IsAssigned() {
		t.Error("request with provider should be assigned")
	}
}

func TestEquipment_FormattedInstallationDate(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"2024-06-15T10:00:00Z", "15/06/2024"},
		{"2024-06-15T10:00:00", "15/06/2024"},
		{"2024-06-15", "15/06/2024"},
		{"", "N/A"},
		{"yesterday", "N/A"},
	}
	for _, tc := range cases {
		e := Equipment{InstallationDate: tc.in}
		if got := e.FormattedInstallationDate(); got != tc.want {
			t.Errorf("FormattedInstallationDate(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestUserProfile_CurrentPlanType(t *testing.T) {
	p := UserProfile{}
	if got := p.CurrentPlanType(); got != "No plan" {
		t.Errorf("expected No plan, got %q", got)
	}
	p.CurrentPlan = &ClientPlan{Name: "Premium", MaxMachines: 999, TargetUserRole: "client"}
	if got := p.CurrentPlanType(); got != "Premium (Unlimited machines)" {
		t.Errorf("got %q", got)
	}
}

func TestUser_DisplayName(t *testing.T) {
	u := User{Name: "Ana", Username: "ana99", Email: "a@x.com"}
	if u.DisplayName() != "Ana" {
		t.Error("name should win")
	}
	u.Name = ""
	if u.DisplayName() != "ana99" {
		t.Error("username should be the fallback")
	}
	u.Username = ""
	if u.DisplayName() != "a@x.com" {
		t.Error("email should be the last resort")
	}
}
