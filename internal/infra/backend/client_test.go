package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/infra/resilience"
	"github.com/coolgym/coolgym-bff-go/internal/infra/session"

	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Store) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New()
	client := NewClient(
		&http.Client{Timeout: 8 * time.Second},
		srv.URL,
		"es-PE",
		sess,
		resilience.NewCircuitBreaker("test"),
		zap.NewNop(),
	)
	return client, sess
}

func TestClient_RequestDecoration(t *testing.T) {
	var gotAuth, gotLang, gotRequestID, gotContentType, gotPath string
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotLang = r.Header.Get("Accept-Language")
		gotRequestID = r.Header.Get("X-Request-ID")
		gotContentType = r.Header.Get("Content-Type")
		gotPath = r.URL.Path
		w.Write([]byte(`[]`))
	})
	sess.SignIn(7, "ana@x.com", "tok-1", "client")

	if _, err := client.Get(context.Background(), "equipments?clientId=7"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("expected bearer injection, got %q", gotAuth)
	}
	if gotLang != "es-PE" {
		t.Errorf("expected Accept-Language es-PE, got %q", gotLang)
	}
	if gotRequestID == "" {
		t.Error("expected an X-Request-ID")
	}
	if gotContentType != "application/json" {
		t.Errorf("expected json content type, got %q", gotContentType)
	}
	if gotPath != "/api/v1/equipments" {
		t.Errorf("expected /api/v1 prefix, got %q", gotPath)
	}
}

func TestClient_NoBearerWhenAnonymous(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	})

	if _, err := client.Get(context.Background(), "rentals"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotAuth != "" {
		t.Errorf("anonymous session must not send a bearer, got %q", gotAuth)
	}
}

func TestClient_UnauthorizedClearsSession(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	sess.SignIn(7, "ana@x.com", "tok-1", "client")

	_, err := client.Get(context.Background(), "users/7")
	var unauthorized *domain.ErrUnauthorized
	if !errors.As(err, &unauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if sess.IsAuthenticated() {
		t.Error("401 should clear the authenticated flag")
	}
	if sess.AccessToken() != "" {
		t.Error("401 should drop the token")
	}
	if sess.UserID() != 7 {
		t.Error("401 should keep the user id")
	}
}

func TestClient_NotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.Get(context.Background(), "users/999")
	var notFound *domain.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestClient_NoContent(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	body, err := client.Get(context.Background(), "equipments/3")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != nil {
		t.Errorf("204 should yield a nil body, got %q", body)
	}
}

func TestClient_BackendStatusError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream broken"))
	})

	_, err := client.Get(context.Background(), "rentals")
	var status *domain.ErrBackendStatus
	if !errors.As(err, &status) {
		t.Fatalf("expected ErrBackendStatus, got %v", err)
	}
	if status.Status != http.StatusBadGateway {
		t.Errorf("expected status 502, got %d", status.Status)
	}
	if status.Body != "upstream broken" {
		t.Errorf("expected body captured, got %q", status.Body)
	}
}

func TestClient_DeleteReturnsNoBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Errorf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.Delete(context.Background(), "equipments/3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
