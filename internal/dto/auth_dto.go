package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Remember bool   `json:"remember"`
}

type SignupRequest struct {
	DocumentType    string `json:"documentType"    validate:"required"`
	DocumentNumber  string `json:"documentNumber"  validate:"required"`
	FullName        string `json:"fullName"        validate:"required"`
	BirthDate       string `json:"birthDate"       validate:"required,moment,notfuture"`
	Email           string `json:"email"           validate:"required,email"`
	Phone           string `json:"phone"           validate:"required"`
	Password        string `json:"password"        validate:"required,min=6,hasupper,hasdigit,hasspecial"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type VerifyEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Code  string `json:"code"  validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UsuarioResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
}

type LoginResponse struct {
	AccessToken string          `json:"access_token"`
	TokenType   string          `json:"token_type"`
	ExpiresIn   int             `json:"expires_in"` // seconds
	User        UsuarioResponse `json:"user"`
}

type RememberedEmailResponse struct {
	Email string `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
