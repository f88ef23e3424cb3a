package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/coolgym/coolgym-bff-go/internal/assembler"
	"github.com/coolgym/coolgym-bff-go/internal/domain"
	"github.com/coolgym/coolgym-bff-go/internal/infra/observability"
	"github.com/coolgym/coolgym-bff-go/internal/port"

	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var authTracer = otel.Tracer("service/auth")

// Credential failures always surface as this one message, regardless of
// whether the email or the password was wrong.
const invalidCredentialsMessage = "Invalid email or password"

// AuthService handles sign-in, registration and the session lifecycle.
type AuthService struct {
	api     port.Requester
	session port.Session
	metrics *observability.Metrics
	logger  *zap.Logger
}

// NewAuthService creates an auth service.
func NewAuthService(api port.Requester, session port.Session, metrics *observability.Metrics, logger *zap.Logger) *AuthService {
	return &AuthService{api: api, session: session, metrics: metrics, logger: logger}
}

// Login authenticates against POST /users/login and stores the session
// on success. role is the role picked on the form; the backend's role,
// when present, wins over it.
func (s *AuthService) Login(ctx context.Context, email, password, role string) (*domain.User, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.Login")
	defer span.End()

	start := time.Now()
	defer func() { s.metrics.RecordRequestDuration("login", time.Since(start)) }()

	if email == "" || password == "" {
		return nil, &domain.ErrValidation{Field: "email", Message: "email and password are required"}
	}

	body, err := s.api.Post(ctx, "users/login", assembler.ToLoginResource(email, password))
	if err != nil {
		var unauthorized *domain.ErrUnauthorized
		var status *domain.ErrBackendStatus
		if errors.As(err, &unauthorized) || (errors.As(err, &status) && status.Status == 400) {
			s.logger.Info("login rejected", zap.String("email", email))
			return nil, &domain.ErrUnauthorized{Message: invalidCredentialsMessage}
		}
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}
	if body == nil {
		return nil, &domain.ErrUnauthorized{Message: invalidCredentialsMessage}
	}

	var res assembler.UserResource
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("failed to decode login response: %w", err)
	}

	user := assembler.UserToEntity(res)
	if !user.IsAuthenticated() {
		return nil, &domain.ErrUnauthorized{Message: invalidCredentialsMessage}
	}

	effectiveRole := res.Role
	if effectiveRole == "" {
		effectiveRole = role
	}
	s.session.SignIn(user.ID, user.Email, res.Token, effectiveRole)

	s.logger.Info("user logged in",
		zap.Int("user_id", user.ID),
		zap.String("role", effectiveRole),
	)
	return &user, nil
}

// Signup registers via POST /users/register and then logs the new user
// in, so a successful registration lands in an authenticated session.
func (s *AuthService) Signup(ctx context.Context, form assembler.SignupForm) (*domain.User, error) {
	ctx, span := authTracer.Start(ctx, "AuthService.Signup")
	defer span.End()

	if form.Email == "" || form.Password == "" || form.Username == "" {
		return nil, &domain.ErrValidation{Field: "form", Message: "username, email and password are required"}
	}

	_, err := s.api.Post(ctx, "users/register", assembler.ToSignupResource(form))
	if err != nil {
		var status *domain.ErrBackendStatus
		if errors.As(err, &status) && status.Status == 409 {
			return nil, &domain.ErrConflict{Message: "An account with this email already exists"}
		}
		s.metrics.IncrExternalError("coolgym-api")
		return nil, err
	}

	return s.Login(ctx, form.Email, form.Password, form.Role)
}

// Logout drops the whole session.
func (s *AuthService) Logout() {
	userID := s.session.UserID()
	s.session.SignOut()
	s.logger.Info("user logged out", zap.Int("user_id", userID))
}

// CurrentUser returns the signed-in user, best-effort: an anonymous
// session or a failed lookup yields nil rather than an error.
func (s *AuthService) CurrentUser(ctx context.Context) *domain.User {
	ctx, span := authTracer.Start(ctx, "AuthService.CurrentUser")
	defer span.End()

	if !s.session.IsAuthenticated() {
		return nil
	}

	body, err := s.api.Get(ctx, fmt.Sprintf("users/%d", s.session.UserID()))
	if err != nil || body == nil {
		s.metrics.IncrFallback("current_user")
		s.logger.Warn("current user lookup failed", zap.Error(err))
		return nil
	}

	var res assembler.UserResource
	if err := json.Unmarshal(body, &res); err != nil {
		s.metrics.IncrFallback("current_user")
		return nil
	}
	user := assembler.UserToEntity(res)
	return &user
}

// CurrentUserID returns the signed-in user's id, zero when anonymous.
func (s *AuthService) CurrentUserID() int {
	return s.session.UserID()
}
