package domain

// User represents an account on the platform. Type distinguishes
// individual users from company accounts.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Type     string `json:"type"`
}

// IsAuthenticated reports whether the user carries enough identity
// to be considered logged in: both id and username must be set.
func (u *User) IsAuthenticated() bool {
	return u.ID != 0 && u.Username != ""
}

// DisplayName returns the first non-empty of name, username, email.
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Username != "" {
		return u.Username
	}
	return u.Email
}

// IsIndividual reports whether this is an individual account.
func (u *User) IsIndividual() bool {
	return u.Type == "individual"
}

// IsCompany reports whether this is a company account.
func (u *User) IsCompany() bool {
	return u.Type == "company"
}
