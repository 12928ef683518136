package model

import "github.com/shopspring/decimal"

const (
	PaymentMethodCreditCard = "Tarjeta de crédito"
	PaymentMethodCash       = "Efectivo"
	PaymentMethodTransfer   = "Transferencia"
	PaymentMethodPSE        = "PSE"
)

var PaymentMethods = []string{PaymentMethodCreditCard, PaymentMethodCash, PaymentMethodTransfer, PaymentMethodPSE}

const (
	PaymentStatusPending   = "Pendiente"
	PaymentStatusPaid      = "Pagado"
	PaymentStatusCancelled = "Cancelado"
)

var PaymentStatuses = []string{PaymentStatusPending, PaymentStatusPaid, PaymentStatusCancelled}

// Invoice (factura) billed against exactly one reservation.
type Invoice struct {
	ID          int64           `json:"id,omitempty"`
	Status      bool            `json:"status"`
	Descripcion string          `json:"descripcion"`
	MetodoPago  string          `json:"metodoPago"`
	EstadoPago  string          `json:"estadoPago"`
	MontoTotal  decimal.Decimal `json:"montoTotal"`
	Reservacion Ref             `json:"reservacion"`
}

func (i Invoice) IsActive() bool { return i.Status }
