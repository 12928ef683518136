package dto

import "github.com/shopspring/decimal"

// InvoiceValues is the editable state of the invoice form.
type InvoiceValues struct {
	Descripcion   string          `json:"descripcion"   validate:"required,max=500"`
	MetodoPago    string          `json:"metodoPago"    validate:"required,paymentmethod"`
	EstadoPago    string          `json:"estadoPago"    validate:"required,paymentstatus"`
	ReservacionID int64           `json:"reservacionId" validate:"min=1"`
	MontoTotal    decimal.Decimal `json:"montoTotal"    validate:"min=0"`

	// SendEmail asks for the generated document to be mailed to the client.
	SendEmail bool `json:"sendEmail"`
}

// InvoiceResult is returned after a successful invoice submit.
type InvoiceResult struct {
	ID          int64  `json:"id"`
	DocumentURL string `json:"documentUrl"`
	EmailQueued bool   `json:"emailQueued"`
}
