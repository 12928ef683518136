package listview

import (
	"strconv"

	"exploraneiva/internal/model"
	"exploraneiva/internal/service"
)

// Reservation categories. The API only reports an active flag.
const (
	ReservationConfirmed = "confirmed"
	ReservationCancelled = "cancelled"
)

// ReservationCategory maps the active flag to its category.
func ReservationCategory(r model.Reservation) string {
	if r.Status {
		return ReservationConfirmed
	}
	return ReservationCancelled
}

func NewClients(svc service.ClientService) *View[model.Client] {
	return New(Source[model.Client]{Fetch: svc.List, Delete: svc.Delete}, Schema[model.Client]{
		Fields: func(c model.Client) []string {
			return []string{c.FullName, c.Email, c.Phone, c.DocumentNumber}
		},
		NoRecords:  "No hay clientes registrados",
		NoMatches:  "No se encontraron clientes que coincidan con la búsqueda",
		CreatePath: "/v1/clientes/nuevo",
	})
}

// NewTouristSites filters by site type.
func NewTouristSites(svc service.TouristSiteService) *View[model.TouristSite] {
	return New(Source[model.TouristSite]{Fetch: svc.List, Delete: svc.Delete}, Schema[model.TouristSite]{
		Fields: func(s model.TouristSite) []string {
			return []string{s.Title, s.Location, s.Type, s.Description}
		},
		Category:   func(s model.TouristSite) string { return s.Type },
		NoRecords:  "No hay sitios turísticos registrados",
		NoMatches:  "No se encontraron sitios que coincidan con los filtros",
		CreatePath: "/v1/sitios/nuevo",
	})
}

// NewReservations filters by ReservationConfirmed / ReservationCancelled.
func NewReservations(svc service.ReservationService) *View[model.Reservation] {
	return New(Source[model.Reservation]{Fetch: svc.List, Delete: svc.Delete}, Schema[model.Reservation]{
		Fields: func(r model.Reservation) []string {
			return []string{r.Fecha, r.Hora, r.TipoReserva, r.Observaciones,
				strconv.FormatInt(r.Cliente.ID, 10), strconv.FormatInt(r.SitioTuristico.ID, 10)}
		},
		Category:   ReservationCategory,
		NoRecords:  "No hay reservaciones registradas",
		NoMatches:  "No se encontraron reservaciones que coincidan con los filtros",
		CreatePath: "/v1/reservaciones/nuevo",
	})
}

// NewInvoices filters by payment status.
func NewInvoices(svc service.InvoiceService) *View[model.Invoice] {
	return New(Source[model.Invoice]{Fetch: svc.List, Delete: svc.Delete}, Schema[model.Invoice]{
		Fields: func(i model.Invoice) []string {
			return []string{strconv.FormatInt(i.ID, 10), i.Descripcion,
				strconv.FormatInt(i.Reservacion.ID, 10), i.MetodoPago, i.EstadoPago}
		},
		Category:   func(i model.Invoice) string { return i.EstadoPago },
		NoRecords:  "No hay facturas registradas",
		NoMatches:  "No se encontraron facturas que coincidan con los filtros",
		CreatePath: "/v1/facturas/nuevo",
	})
}
