package model

// Usuario is the authenticated back-office user as returned by /auth/login.
type Usuario struct {
	ID       int64  `json:"id"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email"`
	FullName string `json:"fullName,omitempty"`
}

// AuthToken is the body of a successful POST /auth/login.
type AuthToken struct {
	Token string  `json:"token"`
	User  Usuario `json:"user"`
}

// Registration is the body of POST /auth/register: the signup form without
// the password confirmation.
type Registration struct {
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	FullName       string `json:"fullName"`
	BirthDate      string `json:"birthDate"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Password       string `json:"password"`
}
