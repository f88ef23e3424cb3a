package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
	"github.com/coolgym/coolgym-bff-go/internal/port"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// GuardedRoute describes one SPA route's access rules. Role empty means
// any authenticated role may enter.
type GuardedRoute struct {
	Path         string
	RequiresAuth bool
	Role         string
}

// routeTable mirrors the SPA's route definitions. Prefix match, longest
// prefix wins.
var routeTable = []GuardedRoute{
	{Path: "/landing"},
	{Path: "/login"},
	{Path: "/register"},
	{Path: "/client", RequiresAuth: true, Role: "client"},
	{Path: "/provider", RequiresAuth: true, Role: "provider"},
	{Path: "/company", RequiresAuth: true, Role: "company"},
	{Path: "/profile", RequiresAuth: true},
}

// authEntryRoutes are the public routes an authenticated user gets
// bounced away from, back to their role home.
var authEntryRoutes = map[string]bool{
	"/landing":  true,
	"/login":    true,
	"/register": true,
}

// GuardDecision is the outcome of a navigation check.
type GuardDecision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirectTo,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// roleHome maps a session role to its landing page.
func roleHome(role string) string {
	switch strings.ToLower(role) {
	case "client":
		return "/client/home"
	case "provider":
		return "/provider/home"
	case "company":
		return "/company/home"
	}
	return "/landing"
}

// lookupRoute finds the guard rules for a path by longest matching
// prefix. Paths outside the table are unguarded.
func lookupRoute(path string) (GuardedRoute, bool) {
	var best GuardedRoute
	found := false
	for _, route := range routeTable {
		if path == route.Path || strings.HasPrefix(path, route.Path+"/") {
			if !found || len(route.Path) > len(best.Path) {
				best = route
				found = true
			}
		}
	}
	return best, found
}

// decideNavigation is the pure guard predicate. authenticated must
// already account for token expiry.
func decideNavigation(path string, authenticated bool, role string) GuardDecision {
	route, found := lookupRoute(path)
	if !found {
		return GuardDecision{Allow: true}
	}

	if route.RequiresAuth && !authenticated {
		return GuardDecision{RedirectTo: "/landing", Reason: "unauthenticated"}
	}
	if !route.RequiresAuth && authenticated && authEntryRoutes[route.Path] {
		return GuardDecision{RedirectTo: roleHome(role), Reason: "authenticated"}
	}
	if route.Role != "" && !strings.EqualFold(route.Role, role) {
		return GuardDecision{RedirectTo: roleHome(role), Reason: "role_mismatch"}
	}
	return GuardDecision{Allow: true}
}

// tokenExpired reports whether a stored bearer token carries an exp
// claim in the past. The token is not verified here; the backend does
// that on every call. No token or no exp claim counts as not expired.
func tokenExpired(token string) bool {
	if token == "" {
		return false
	}
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}

// sessionAuthenticated combines the stored flag with token expiry.
func sessionAuthenticated(session port.Session) bool {
	return session.IsAuthenticated() && !tokenExpired(session.AccessToken())
}

// navigationGuardHandler answers GET /v1/navigation/guard?to=<path>:
// the SPA asks before navigating and follows the returned redirect.
func navigationGuardHandler(session port.Session, metrics *observability.Metrics, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		to := r.URL.Query().Get("to")
		if to == "" {
			writeError(w, http.StatusBadRequest, "to query parameter is required")
			return
		}

		decision := decideNavigation(to, sessionAuthenticated(session), session.UserRole())
		if !decision.Allow {
			metrics.IncrGuardRedirect(decision.Reason)
			logger.Info("navigation redirected",
				zap.String("to", to),
				zap.String("redirect", decision.RedirectTo),
				zap.String("reason", decision.Reason),
			)
		}
		writeJSON(w, http.StatusOK, decision)
	}
}

// RequireRole protects an API group: 401 for anonymous or expired
// sessions, 403 when the session role does not match.
func RequireRole(session port.Session, role string, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !sessionAuthenticated(session) {
				writeError(w, http.StatusUnauthorized, "authentication required")
				return
			}
			if role != "" && !strings.EqualFold(session.UserRole(), role) {
				logger.Warn("role mismatch",
					zap.String("required", role),
					zap.String("actual", session.UserRole()),
				)
				writeError(w, http.StatusForbidden, "insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
