package service

import (
	"context"
	"errors"
	"testing"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
)

func TestEquipmentService_ClientEquipment(t *testing.T) {
	api := newMockRequester()
	api.respond("GET equipments?clientId=7", `[{"id":1,"name":"Press","serial_number":"SN-1"}]`)
	svc := NewEquipmentService(api, observability.NewMetrics(), testLogger())

	equipment, err := svc.ClientEquipment(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(equipment) != 1 || equipment[0].SerialNumber != "SN-1" {
		t.Errorf("unexpected equipment: %+v", equipment)
	}
}

func TestEquipmentService_ByID_NotFound(t *testing.T) {
	api := newMockRequester()
	svc := NewEquipmentService(api, observability.NewMetrics(), testLogger())

	_, err := svc.ByID(context.Background(), 3)
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound for a nil body, got %v", err)
	}
}

func TestEquipmentService_Create_RequiresName(t *testing.T) {
	svc := NewEquipmentService(newMockRequester(), observability.NewMetrics(), testLogger())

	_, err := svc.Create(context.Background(), domain.Equipment{})
	var validation *domain.ErrValidation
	if !errors.As(err, &validation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
}

func TestEquipmentService_Delete_Propagates(t *testing.T) {
	api := newMockRequester()
	api.fail("DELETE equipments/3", errors.New("backend down"))
	svc := NewEquipmentService(api, observability.NewMetrics(), testLogger())

	if err := svc.Delete(context.Background(), 3); err == nil {
		t.Fatal("expected error to propagate")
	}
}
