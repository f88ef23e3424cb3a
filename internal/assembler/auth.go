package assembler

import "github.com/coolgym/coolgym-bff-go/internal/domain"

// UserResource mirrors a user object from /users endpoints.
type UserResource struct {
	ID       FlexInt `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Phone    string  `json:"phone"`
	Type     string  `json:"type"`
	Role     string  `json:"role"`
	Token    string  `json:"token"`
}

// UserToEntity builds a User, defaulting the account type to individual.
func UserToEntity(res UserResource) domain.User {
	return domain.User{
		ID:       int(res.ID),
		Username: res.Username,
		Email:    res.Email,
		Password: res.Password,
		Name:     res.Name,
		Phone:    res.Phone,
		Type:     orDefault(res.Type, "individual"),
	}
}

// LoginResource is the body of POST /users/login.
type LoginResource struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToLoginResource builds login credentials from form input.
func ToLoginResource(email, password string) LoginResource {
	return LoginResource{Email: email, Password: password}
}

// SignupForm is the registration form as filled in by the UI.
type SignupForm struct {
	Username string
	Email    string
	Password string
	Name     string
	Phone    string
	Type     string
	Role     string
}

// SignupResource is the body of POST /users/register.
type SignupResource struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Type     string `json:"type"`
	Role     string `json:"role,omitempty"`
}

// ToSignupResource builds the registration payload, defaulting phone to
// empty and the account type to individual.
func ToSignupResource(form SignupForm) SignupResource {
	return SignupResource{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Name:     form.Name,
		Phone:    form.Phone,
		Type:     orDefault(form.Type, "individual"),
		Role:     form.Role,
	}
}
