// Package port defines the interfaces (ports) for external dependencies.
// Following hexagonal architecture, these ports decouple the service
// layer from concrete implementations.
package port

import "context"

// Requester issues JSON requests against the CoolGym backend. The
// returned bytes are the raw response body; a nil body with a nil error
// means the backend answered 204 No Content.
//
// Implementations own bearer-token injection, the Accept-Language
// header, the fixed request timeout and 401 session clearing. Every
// call is a single attempt: no retries anywhere in the gateway.
type Requester interface {
	Get(ctx context.Context, path string) ([]byte, error)
	Post(ctx context.Context, path string, body any) ([]byte, error)
	Put(ctx context.Context, path string, body any) ([]byte, error)
	Patch(ctx context.Context, path string, body any) ([]byte, error)
	Delete(ctx context.Context, path string) error
}

// Session is the persisted client-side auth state, an explicit
// collaborator instead of an ambient global. It holds exactly the keys
// the SPA used to keep in local storage: isAuthenticated, userId,
// userEmail, accessToken, userRole.
type Session interface {
	// SignIn stores the authenticated identity in one step.
	SignIn(userID int, email, token, role string)
	// SignOut removes every auth key.
	SignOut()
	// ClearAuth drops only isAuthenticated and accessToken: the 401
	// interceptor path, which keeps userId/userEmail for the login form.
	ClearAuth()

	IsAuthenticated() bool
	UserID() int
	UserEmail() string
	AccessToken() string
	UserRole() string
}
