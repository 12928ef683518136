package dto

// RefValues is an id picked from a selection list.
type RefValues struct {
	ID int64 `json:"id" validate:"min=1"`
}

// ReservationValues is the editable state of the reservation form.
// Fecha and Hora hold full timestamps while editing (e.g. 2025-05-01T00:00:00
// and 2000-01-01T09:30:00); they are truncated on submit.
type ReservationValues struct {
	Fecha          string    `json:"fecha"          validate:"required,notpast"`
	Hora           string    `json:"hora"           validate:"required"`
	NumeroPersonas int       `json:"numeroPersonas" validate:"min=1,max=50"`
	Observaciones  string    `json:"observaciones"  validate:"max=500"`
	TipoReserva    string    `json:"tipoReserva"    validate:"required,reservationtype"`
	Cliente        RefValues `json:"cliente"`
	SitioTuristico RefValues `json:"sitioTuristico"`
}
