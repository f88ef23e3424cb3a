package service

import (
	"context"
	"errors"
	"testing"

	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
)

func newCompanyService(api *mockRequester) *CompanyService {
	metrics := observability.NewMetrics()
	users := NewUserService(api, 4, metrics, testLogger())
	return NewCompanyService(api, users, 4, metrics, testLogger())
}

func TestCompanyService_CompanyEquipment(t *testing.T) {
	api := newMockRequester()
	api.respond("GET companyMachines?companyId=5&active=true", `[
		{"id":1,"companyId":5,"equipmentId":21,"active":true},
		{"id":2,"companyId":5,"equipmentId":22,"active":true}
	]`)
	api.respond("GET equipments/21", `{"id":21,"name":"Press","model":"P-1","image":"press.png"}`)
	api.respond("GET equipments/22", `{"id":22,"name":"Rower","model":"R-2"}`)
	svc := newCompanyService(api)

	machines, err := svc.CompanyEquipment(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(machines) != 2 {
		t.Fatalf("expected 2 machines, got %d", len(machines))
	}
	if machines[0].ID != 21 || machines[0].Name != "Press" {
		t.Errorf("row order should follow the join rows, got %+v", machines[0])
	}
	if machines[1].ID != 22 {
		t.Errorf("unexpected second machine: %+v", machines[1])
	}
}

func TestCompanyService_CompanyEquipment_PropagatesLookupFailure(t *testing.T) {
	api := newMockRequester()
	api.respond("GET companyMachines?companyId=5&active=true", `[{"id":1,"companyId":5,"equipmentId":21,"active":true}]`)
	api.fail("GET equipments/21", errors.New("backend down"))
	svc := newCompanyService(api)

	if _, err := svc.CompanyEquipment(context.Background(), 5); err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestCompanyService_CompanyMaintenanceRequests_TolerantUserJoin(t *testing.T) {
	api := newMockRequester()
	api.respond("GET companyMachines?companyId=5&active=true", `[
		{"id":1,"companyId":5,"equipmentId":21,"active":true},
		{"id":2,"companyId":5,"equipmentId":22,"active":true}
	]`)
	api.respond("GET equipments/21", `{"id":21,"name":"Press"}`)
	api.respond("GET equipments/22", `{"id":22,"name":"Rower"}`)
	api.respond("GET maintenanceRequests", `[
		{"id":1,"equipmentId":21,"userId":10,"status":"pending"},
		{"id":2,"equipmentId":22,"userId":11,"status":"pending"},
		{"id":3,"equipmentId":99,"userId":12,"status":"pending"}
	]`)
	api.respond("GET users/10", `{"id":10,"username":"ana","email":"ana@x.com"}`)
	api.fail("GET users/11", errors.New("backend down"))
	svc := newCompanyService(api)

	rows, err := svc.CompanyMaintenanceRequests(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("requests for foreign machines must be dropped; got %d rows", len(rows))
	}

	nilClients := 0
	for _, row := range rows {
		if row.Equipment == nil {
			t.Errorf("row %v lost its equipment", row.ID)
		}
		if row.Client == nil {
			nilClients++
		}
	}
	if nilClients != 1 {
		t.Errorf("exactly one row should have a nil client, got %d", nilClients)
	}
	for _, row := range rows {
		if row.UserID == 10 && (row.Client == nil || row.Client.Username != "ana") {
			t.Errorf("resolved user lost: %+v", row.Client)
		}
		if row.UserID == 11 && row.Client != nil {
			t.Errorf("failed lookup should leave a nil client, got %+v", row.Client)
		}
	}
}
