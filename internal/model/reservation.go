package model

const (
	ReservationTypeTravelService = "Servicio de viaje"
	ReservationTypeGuidedTour    = "Tour guiado"
	ReservationTypePackage       = "Paquete turístico"
	ReservationTypeLodging       = "Hospedaje"
)

var ReservationTypes = []string{
	ReservationTypeTravelService,
	ReservationTypeGuidedTour,
	ReservationTypePackage,
	ReservationTypeLodging,
}

// Wire layouts for Reservation.Fecha and Reservation.Hora.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Ref is the id-only reference sent on every write path.
type Ref struct {
	ID int64 `json:"id"`
}

// ClientSummary is the client projection the API embeds in a reservation.
// Only ID is ever sent back; the other fields are read-only.
type ClientSummary struct {
	ID             int64  `json:"id"`
	FullName       string `json:"fullName,omitempty"`
	DocumentType   string `json:"documentType,omitempty"`
	DocumentNumber string `json:"documentNumber,omitempty"`
	Email          string `json:"email,omitempty"`
}

// HasDetails reports whether the API embedded any display field.
func (c ClientSummary) HasDetails() bool {
	return c.FullName != "" || c.DocumentNumber != "" || c.Email != ""
}

// SiteSummary is the tourist site projection embedded in a reservation.
type SiteSummary struct {
	ID    int64  `json:"id"`
	Title string `json:"title,omitempty"`
}

// Reservation as read from GET /reservacion.
type Reservation struct {
	ID             int64         `json:"id,omitempty"`
	Status         bool          `json:"status"`
	Fecha          string        `json:"fecha"` // YYYY-MM-DD
	Hora           string        `json:"hora"`  // HH:MM:SS
	NumeroPersonas int           `json:"numeroPersonas"`
	Observaciones  string        `json:"observaciones"`
	TipoReserva    string        `json:"tipoReserva"`
	User           Ref           `json:"user"`
	Cliente        ClientSummary `json:"cliente"`
	SitioTuristico SiteSummary   `json:"sitioTuristico"`
}

func (r Reservation) IsActive() bool { return r.Status }

// ReservationInput is the write payload for POST/PUT /reservacion.
// References carry ids only so the denormalised read fields never travel back.
type ReservationInput struct {
	Status         bool   `json:"status"`
	Fecha          string `json:"fecha"`
	Hora           string `json:"hora"`
	NumeroPersonas int    `json:"numeroPersonas"`
	Observaciones  string `json:"observaciones"`
	TipoReserva    string `json:"tipoReserva"`
	User           Ref    `json:"user"`
	Cliente        Ref    `json:"cliente"`
	SitioTuristico Ref    `json:"sitioTuristico"`
}
