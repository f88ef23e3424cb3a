package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
	"github.com/coolgym/coolgym-bff-go/internal/infra/session"
	"github.com/coolgym/coolgym-bff-go/internal/money"
	"github.com/coolgym/coolgym-bff-go/internal/service"

	"go.uber.org/zap"
)

// stubRequester answers every backend call with a fixed body, unless a
// per-path override is set.
type stubRequester struct {
	body   []byte
	routes map[string]string
}

func (s *stubRequester) Get(ctx context.Context, path string) ([]byte, error) {
	if b, ok := s.routes[path]; ok {
		return []byte(b), nil
	}
	return s.body, nil
}
func (s *stubRequester) Post(ctx context.Context, path string, body any) ([]byte, error) {
	return s.body, nil
}
func (s *stubRequester) Put(ctx context.Context, path string, body any) ([]byte, error) {
	return s.body, nil
}
func (s *stubRequester) Patch(ctx context.Context, path string, body any) ([]byte, error) {
	return s.body, nil
}
func (s *stubRequester) Delete(ctx context.Context, path string) error { return nil }

func newTestRouter(sess *session.Store) (http.Handler, *observability.Metrics) {
	api := &stubRequester{body: []byte(`[]`)}
	metrics := observability.NewMetrics()
	logger := zap.NewNop()

	userSvc := service.NewUserService(api, 4, metrics, logger)
	statementSvc := service.NewAccountStatementService(api, metrics, logger)
	svcs := Services{
		Auth:        service.NewAuthService(api, sess, metrics, logger),
		Statements:  statementSvc,
		Equipment:   service.NewEquipmentService(api, metrics, logger),
		Company:     service.NewCompanyService(api, userSvc, 4, metrics, logger),
		Maintenance: service.NewMaintenanceService(api, metrics, logger),
		Profile:     service.NewProfileService(api, metrics, logger),
		Provider:    service.NewProviderService(api, statementSvc, metrics, logger),
		Rent:        service.NewRentService(api, metrics, logger),
		Money:       money.NewFormatter("en-US"),
	}
	return NewRouter(svcs, sess, "http://localhost:5173", metrics, logger), metrics
}

func TestRouter_Healthz(t *testing.T) {
	router, _ := newTestRouter(session.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_ProtectedRouteRequiresAuth(t *testing.T) {
	router, _ := newTestRouter(session.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rent/catalog", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401 for anonymous session, got %d", rec.Code)
	}
}

func TestRouter_ProviderRouteRejectsClientRole(t *testing.T) {
	sess := session.New()
	sess.SignIn(7, "ana@x.com", "", "client")
	router, _ := newTestRouter(sess)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rental-requests", nil))
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for role mismatch, got %d", rec.Code)
	}
}

func TestRouter_AuthenticatedClientCanListCatalog(t *testing.T) {
	sess := session.New()
	sess.SignIn(7, "ana@x.com", "", "client")
	router, _ := newTestRouter(sess)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rent/catalog", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_NavigationGuard(t *testing.T) {
	router, _ := newTestRouter(session.New())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/navigation/guard?to=/client/home", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"/landing"`) {
		t.Errorf("anonymous navigation to /client/home should redirect to /landing, got %s", rec.Body.String())
	}
}

func TestRouter_GatewaySnapshotCountsRequests(t *testing.T) {
	sess := session.New()
	sess.SignIn(7, "ana@x.com", "", "client")
	router, metrics := newTestRouter(sess)

	for i := 0; i < 4; i++ {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/rent/catalog", nil))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	snap := metrics.GetGatewaySnapshot()
	if snap.TotalRequests != 5 {
		t.Errorf("expected 5 requests counted, got %d", snap.TotalRequests)
	}
	if snap.ErrorRate != 0 {
		t.Errorf("expected zero error rate for 200s, got %f", snap.ErrorRate)
	}
}

func TestRouter_Ping(t *testing.T) {
	router, _ := newTestRouter(session.New())
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}
