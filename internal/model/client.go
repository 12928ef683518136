package model

// Document types accepted for a Client.
// CC: cédula de ciudadanía, CE: cédula de extranjería, TI: tarjeta de identidad,
// PP: pasaporte, NIT: identificación tributaria.
const (
	DocumentTypeCC  = "CC"
	DocumentTypeCE  = "CE"
	DocumentTypeTI  = "TI"
	DocumentTypePP  = "PP"
	DocumentTypeNIT = "NIT"
)

var DocumentTypes = []string{DocumentTypeCC, DocumentTypeCE, DocumentTypeTI, DocumentTypePP, DocumentTypeNIT}

// Client is a customer of the agency as served by GET /cliente.
// Status is the active flag; a deleted client comes back with Status=false.
type Client struct {
	ID             int64  `json:"id,omitempty"`
	Status         bool   `json:"status"`
	DocumentType   string `json:"documentType"`
	DocumentNumber string `json:"documentNumber"`
	FullName       string `json:"fullName"`
	BirthDate      string `json:"birthDate"` // YYYY-MM-DD
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

func (c Client) IsActive() bool { return c.Status }
