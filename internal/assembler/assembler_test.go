package assembler

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
)

func TestInvoiceListToEntities_MalformedPayloads(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"nil", nil},
		{"empty", []byte("")},
		{"null", []byte("null")},
		{"object", []byte(`{"id":1}`)},
		{"garbage", []byte("not json at all")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := InvoiceListToEntities(tc.data)
			if got == nil {
				t.Fatal("expected non-nil slice")
			}
			if len(got) != 0 {
				t.Errorf("expected empty slice, got %d items", len(got))
			}
		})
	}
}

func TestInvoiceToEntity_Defaults(t *testing.T) {
	data := []byte(`[{"id":"7","userId":3,"amount":"150.50"}]`)
	invoices := InvoiceListToEntities(data)
	if len(invoices) != 1 {
		t.Fatalf("expected 1 invoice, got %d", len(invoices))
	}
	inv := invoices[0]
	if inv.ID != 7 {
		t.Errorf("expected quoted id coerced to 7, got %d", inv.ID)
	}
	if inv.Amount != 150.50 {
		t.Errorf("expected quoted amount coerced to 150.50, got %f", inv.Amount)
	}
	if inv.Currency != "PEN" {
		t.Errorf("expected default currency PEN, got %q", inv.Currency)
	}
	if inv.Status != "pending" {
		t.Errorf("expected default status pending, got %q", inv.Status)
	}
}

func TestFlexScalars_TolerateNullAndGarbage(t *testing.T) {
	var res InvoiceResource
	if err := json.Unmarshal([]byte(`{"id":null,"amount":"abc","userId":4.0}`), &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if int(res.ID) != 0 {
		t.Errorf("null id should decode as 0, got %d", int(res.ID))
	}
	if float64(res.Amount) != 0 {
		t.Errorf("garbage amount should decode as 0, got %f", float64(res.Amount))
	}
	if int(res.UserID) != 4 {
		t.Errorf("float id should decode as 4, got %d", int(res.UserID))
	}
}

func TestMaintenanceToEntity_ObservationOverridesNotes(t *testing.T) {
	data := []byte(`{"id":1,"equipmentId":2,"notes":"a","observation":"b"}`)
	var res MaintenanceResource
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := MaintenanceToEntity(res)
	if got.Notes != "b" {
		t.Errorf("observation should win over notes, got %q", got.Notes)
	}
}

func TestMaintenanceToEntity_UserIDAliases(t *testing.T) {
	data := []byte(`{"id":1,"equipmentId":2,"requestedByUserId":42}`)
	var res MaintenanceResource
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := MaintenanceToEntity(res)
	if got.UserID != 42 {
		t.Errorf("expected requestedByUserId to stand in for userId, got %d", got.UserID)
	}

	data = []byte(`{"id":1,"equipmentId":2,"clientId":9}`)
	res = MaintenanceResource{}
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got = MaintenanceToEntity(res)
	if got.UserID != 9 {
		t.Errorf("expected clientId fallback for userId, got %d", got.UserID)
	}
}

func TestToMaintenanceCreateResource(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 30, 0, 0, time.UTC)
	form := MaintenanceForm{
		UserID:       "5",
		EquipmentID:  "12",
		SelectedDate: "2025-04-01",
		Notes:        "belt slipping",
	}
	got := ToMaintenanceCreateResource(form, now)

	if got.UserID != 5 || got.EquipmentID != 12 {
		t.Errorf("expected string ids coerced, got user=%d equipment=%d", got.UserID, got.EquipmentID)
	}
	if got.SelectedDate != "2025-04-01T00:00:00" {
		t.Errorf("expected ISO timestamp, got %q", got.SelectedDate)
	}
	if got.Observation != "belt slipping" {
		t.Errorf("notes should go out as observation, got %q", got.Observation)
	}
	if got.Type != "corrective" {
		t.Errorf("expected default type corrective, got %q", got.Type)
	}
	if got.Status != "pending" {
		t.Errorf("expected status pending, got %q", got.Status)
	}
	if got.CreatedAt != "2025-03-10T12:30:00Z" {
		t.Errorf("expected createdAt stamped from now, got %q", got.CreatedAt)
	}

	// The create payload round-trips through the list assembler: what we
	// send is what we can read back.
	echo, err := json.Marshal([]MaintenanceCreateResource{got})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back := MaintenanceListToEntities(echo)
	if len(back) != 1 {
		t.Fatalf("expected 1 request, got %d", len(back))
	}
	if back[0].Notes != "belt slipping" {
		t.Errorf("round-trip lost the notes, got %q", back[0].Notes)
	}
	if back[0].UserID != 5 {
		t.Errorf("round-trip lost the user id, got %d", back[0].UserID)
	}
}

func TestEquipmentToEntity_KeyReconciliation(t *testing.T) {
	data := []byte(`{"id":1,"name":"Press","serial_number":"SN-1","usage_hours":"120.5","client_id":8}`)
	var res EquipmentResource
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := EquipmentToEntity(res)
	if got.SerialNumber != "SN-1" {
		t.Errorf("expected snake_case serial picked up, got %q", got.SerialNumber)
	}
	if got.UsageHours != 120.5 {
		t.Errorf("expected snake_case usage hours, got %f", got.UsageHours)
	}
	if got.ClientID == nil || *got.ClientID != 8 {
		t.Errorf("expected snake_case client id, got %v", got.ClientID)
	}
	if got.Status != "active" {
		t.Errorf("expected default status active, got %q", got.Status)
	}
}

func TestEquipmentToEntity_CamelCaseWins(t *testing.T) {
	data := []byte(`{"id":1,"serialNumber":"NEW","serial_number":"OLD"}`)
	var res EquipmentResource
	if err := json.Unmarshal(data, &res); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := EquipmentToEntity(res); got.SerialNumber != "NEW" {
		t.Errorf("camelCase should win, got %q", got.SerialNumber)
	}
}

func TestRentMachineToEntity_LegacyKeys(t *testing.T) {
	data := []byte(`[{"id":1,"name":"Old Bike","price":75,"image":"bike.png"}]`)
	machines := RentMachineListToEntities(data)
	if len(machines) != 1 {
		t.Fatalf("expected 1 machine, got %d", len(machines))
	}
	m := machines[0]
	if m.Name != "Old Bike" || m.Price != 75 || m.Image != "bike.png" {
		t.Errorf("legacy keys not reconciled: %+v", m)
	}
	if m.Currency != "USD" {
		t.Errorf("expected default currency USD, got %q", m.Currency)
	}
	if !m.IsAvailable {
		t.Error("expected availability to default to true")
	}
}

func TestEquipmentToResource_OmitsLegacyKeys(t *testing.T) {
	res := EquipmentToResource(domain.Equipment{ID: 1, Name: "Press", SerialNumber: "SN-1"})
	out, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for _, key := range []string{"serial_number", "installation_date", "energy_consumption", "usage_hours", "client_id"} {
		if strings.Contains(string(out), key) {
			t.Errorf("outbound payload should not carry legacy key %q: %s", key, out)
		}
	}
	if !strings.Contains(string(out), `"serialNumber":"SN-1"`) {
		t.Errorf("expected canonical serialNumber, got %s", out)
	}
}

func TestToRentalRequestCreateResource(t *testing.T) {
	now := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)
	got := ToRentalRequestCreateResource(7, "client@coolgym.pe", 3, 9, now)

	if got.ClientID != 7 || got.ProviderID != 3 || got.MachineID != 9 {
		t.Errorf("unexpected ids: %+v", got)
	}
	if got.Status != "pending" {
		t.Errorf("new requests start pending, got %q", got.Status)
	}
	if got.UpdatedDate != "2025-06-15T09:00:00Z" {
		t.Errorf("expected RFC3339 updatedDate, got %q", got.UpdatedDate)
	}
}
