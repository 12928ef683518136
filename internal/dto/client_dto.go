package dto

// ─── Form values ─────────────────────────────────────────────────────────────

// ClientValues is the editable state of the client form.
type ClientValues struct {
	DocumentType   string `json:"documentType"   validate:"required,doctype"`
	DocumentNumber string `json:"documentNumber" validate:"required,digits,min=5,max=20"`
	FullName       string `json:"fullName"       validate:"required,min=5,max=100"`
	BirthDate      string `json:"birthDate"      validate:"required,moment,notfuture"`
	Email          string `json:"email"          validate:"required,email,max=100"`
	Phone          string `json:"phone"          validate:"required,digits,min=7,max=15"`
}
