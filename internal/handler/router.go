package handler

import (
	"net/http"

	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
	"github.com/coolgym/coolgym-bff-go/internal/money"
	"github.com/coolgym/coolgym-bff-go/internal/port"
	"github.com/coolgym/coolgym-bff-go/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("handler")

// Services bundles the per-context services the router dispatches to.
type Services struct {
	Auth        *service.AuthService
	Statements  *service.AccountStatementService
	Equipment   *service.EquipmentService
	Company     *service.CompanyService
	Maintenance *service.MaintenanceService
	Profile     *service.ProfileService
	Provider    *service.ProviderService
	Rent        *service.RentService

	// Money renders display amounts in the deployment locale.
	Money *money.Formatter
}

// NewRouter creates the HTTP router with all routes and middleware.
// Routes follow the contract the CoolGym SPA expects from its gateway.
func NewRouter(svcs Services, session port.Session, webOrigin string, metrics *observability.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// --- Middleware ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(observability.ZapLoggerMiddleware(logger))
	r.Use(observability.MetricsMiddleware(metrics))
	r.Use(observability.TracingMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Heartbeat("/ping"))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{webOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// --- Operational endpoints ---
	r.Get("/healthz", healthzHandler())
	r.Get("/readyz", readyzHandler())
	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	// --- API v1 ---
	r.Route("/v1", func(r chi.Router) {

		// Auth: public entry points.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authLoginHandler(svcs.Auth, logger))
			r.Post("/register", authRegisterHandler(svcs.Auth, logger))
			r.Post("/logout", authLogoutHandler(svcs.Auth, logger))
			r.Get("/me", authMeHandler(svcs.Auth, logger))
		})

		// Navigation guard: the SPA asks before every route change.
		r.Get("/navigation/guard", navigationGuardHandler(session, metrics, logger))

		// Gateway health snapshot.
		r.Get("/metrics/gateway", gatewayMetricsHandler(metrics, logger))

		// Authenticated, any role.
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(session, "", logger))

			// Billing invoices
			r.Get("/billing/invoices", listInvoicesHandler(svcs.Statements, svcs.Money, logger))
			r.Put("/billing/invoices/{invoiceId}/pay", payInvoiceHandler(svcs.Statements, logger))

			// Equipment CRUD
			r.Post("/equipments", createEquipmentHandler(svcs.Equipment, logger))
			r.Get("/equipments", listClientEquipmentHandler(svcs.Equipment, logger))
			r.Get("/equipments/{equipmentId}", getEquipmentHandler(svcs.Equipment, logger))
			r.Put("/equipments/{equipmentId}", updateEquipmentHandler(svcs.Equipment, logger))
			r.Delete("/equipments/{equipmentId}", deleteEquipmentHandler(svcs.Equipment, logger))

			// Maintenance form
			r.Get("/maintenance/equipments", maintenanceEquipmentsHandler(svcs.Maintenance, logger))
			r.Post("/maintenance/requests", createMaintenanceRequestHandler(svcs.Maintenance, logger))
			r.Get("/maintenance/pricing", maintenancePricingHandler(svcs.Maintenance, logger))

			// Profile & plans
			r.Get("/profiles/{userId}", getProfileHandler(svcs.Profile, logger))
			r.Get("/plans", listPlansHandler(svcs.Profile, svcs.Money, logger))
			r.Put("/profiles/{userId}/plan", updateUserPlanHandler(svcs.Profile, logger))
			r.Put("/profiles/{userId}/photo", updateProfilePhotoHandler(svcs.Profile, logger))

			// Rental catalog and requests
			r.Get("/rent/catalog", rentalCatalogHandler(svcs.Rent, svcs.Money, logger))
			r.Post("/rent/requests", requestRentalHandler(svcs.Rent, logger))
		})

		// Provider role.
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(session, "provider", logger))

			r.Get("/providers/{providerId}/rental-requests/pending", pendingRentalRequestsHandler(svcs.Provider, logger))
			r.Get("/providers/{providerId}/clients", myClientsHandler(svcs.Provider, logger))
			r.Get("/providers/{providerId}/maintenance-requests", myMaintenanceRequestsHandler(svcs.Provider, svcs.Money, logger))
			r.Get("/providers/equipment", providerEquipmentHandler(svcs.Provider, logger))
			r.Get("/providers/invoices", providerInvoicesHandler(svcs.Provider, svcs.Money, logger))

			r.Get("/rental-requests", allRentalRequestsHandler(svcs.Provider, logger))
			r.Post("/rental-requests/{requestId}/approve", approveRentalRequestHandler(svcs.Provider, logger))
			r.Post("/rental-requests/{requestId}/reject", rejectRentalRequestHandler(svcs.Provider, logger))

			r.Get("/maintenance-requests", allMaintenanceRequestsHandler(svcs.Provider, svcs.Money, logger))
			r.Get("/maintenance-requests/pending", pendingMaintenanceRequestsHandler(svcs.Provider, svcs.Money, logger))
			r.Post("/maintenance-requests/{requestId}/accept", acceptMaintenanceRequestHandler(svcs.Provider, logger))
		})

		// Company role.
		r.Group(func(r chi.Router) {
			r.Use(RequireRole(session, "company", logger))

			r.Get("/companies/{companyId}/equipment", companyEquipmentHandler(svcs.Company, logger))
			r.Get("/companies/{companyId}/maintenance-requests", companyMaintenanceRequestsHandler(svcs.Company, logger))
		})
	})

	return r
}

func healthzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}

func readyzHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func gatewayMetricsHandler(metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, span := tracer.Start(r.Context(), "GET /v1/metrics/gateway")
		defer span.End()

		writeJSON(w, http.StatusOK, metrics.GetGatewaySnapshot())
	}
}
