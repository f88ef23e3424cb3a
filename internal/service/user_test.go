package service

import (
	"context"
	"errors"
	"testing"

	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
)

func TestUserService_ByIDs_PartialFailure(t *testing.T) {
	api := newMockRequester()
	api.respond("GET users/1", `{"id":1,"username":"a"}`)
	api.fail("GET users/2", errors.New("backend down"))
	api.respond("GET users/3", `{"id":3,"username":"c"}`)
	svc := NewUserService(api, 4, observability.NewMetrics(), testLogger())

	users := svc.ByIDs(context.Background(), []int{1, 2, 3, 1, 0})
	if len(users) != 2 {
		t.Fatalf("expected 2 resolved users, got %d", len(users))
	}
	if _, ok := users[2]; ok {
		t.Error("failed lookup should be absent from the result")
	}
	if users[1].Username != "a" || users[3].Username != "c" {
		t.Errorf("unexpected users: %+v", users)
	}
}

func TestUserService_ProviderName_BestEffort(t *testing.T) {
	api := newMockRequester()
	api.fail("GET users/9", errors.New("backend down"))
	svc := NewUserService(api, 4, observability.NewMetrics(), testLogger())

	if got := svc.ProviderName(context.Background(), 9); got != "" {
		t.Errorf("expected empty name on failure, got %q", got)
	}

	delete(api.errs, "GET users/9")
	api.respond("GET users/9", `{"id":9,"username":"fitpro","name":"FitPro SAC"}`)
	if got := svc.ProviderName(context.Background(), 9); got != "FitPro SAC" {
		t.Errorf("expected display name, got %q", got)
	}
}
