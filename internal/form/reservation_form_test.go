package form

import (
	"context"
	"testing"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/model"
	"exploraneiva/internal/session"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reservationDeps() (*stubReservations, *stubClients, *stubSites) {
	return &stubReservations{},
		&stubClients{list: []model.Client{
			{ID: 1, Status: true, FullName: "Ana Maria Rojas", DocumentNumber: "1075123456"},
			{ID: 2, Status: true, FullName: "Luis Perdomo", DocumentNumber: "998877"},
		}},
		&stubSites{list: []model.TouristSite{
			{ID: 5, Status: true, Title: "Desierto de la Tatacoa"},
			{ID: 6, Status: true, Title: "Parque Arqueológico San Agustín"},
		}}
}

func validReservation() dto.ReservationValues {
	return dto.ReservationValues{
		Fecha:          "2025-03-20T00:00:00",
		Hora:           "2000-01-01T09:30:00.000Z",
		NumeroPersonas: 4,
		TipoReserva:    model.ReservationTypeGuidedTour,
		Cliente:        dto.RefValues{ID: 1},
		SitioTuristico: dto.RefValues{ID: 5},
	}
}

func TestReservationForm_LoadPreloadsOptions(t *testing.T) {
	res, clients, sites := reservationDeps()
	f := NewReservationForm(res, clients, sites, newTestValidator(), agent, 0)

	require.NoError(t, f.Load(context.Background()))

	assert.Len(t, f.ClientOptions(), 2)
	assert.Len(t, f.SiteOptions(), 2)
	assert.Equal(t, 0, f.Values().NumeroPersonas)
	assert.Equal(t, "2025-03-14", truncateDate(f.Values().Fecha))
}

func TestReservationForm_LoadFailsFast(t *testing.T) {
	res, clients, sites := reservationDeps()
	sites.listErr = errAPI
	f := NewReservationForm(res, clients, sites, newTestValidator(), agent, 0)

	err := f.Load(context.Background())

	assert.ErrorIs(t, err, errAPI)
	assert.Equal(t, StateFailed, f.State())
}

func TestReservationForm_PastDateRejected(t *testing.T) {
	res, clients, sites := reservationDeps()
	f := NewReservationForm(res, clients, sites, newTestValidator(), agent, 0)
	require.NoError(t, f.Load(context.Background()))
	values := validReservation()
	values.Fecha = "2025-03-13T23:59:00"

	_, err := f.Submit(context.Background(), values)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "La fecha no puede ser en el pasado", verr.Fields["fecha"])
	assert.Empty(t, res.inputs)
}

func TestReservationForm_EarlierTodayIsAccepted(t *testing.T) {
	res, clients, sites := reservationDeps()
	f := NewReservationForm(res, clients, sites, newTestValidator(), agent, 0)
	require.NoError(t, f.Load(context.Background()))
	values := validReservation()
	values.Fecha = "2025-03-14T00:00:00"

	_, err := f.Submit(context.Background(), values)

	assert.NoError(t, err)
}

func TestReservationForm_RuleMessages(t *testing.T) {
	res, clients, sites := reservationDeps()
	f := NewReservationForm(res, clients, sites, newTestValidator(), agent, 0)
	require.NoError(t, f.Load(context.Background()))
	values := validReservation()
	values.NumeroPersonas = 51
	values.TipoReserva = "Crucero"
	values.Cliente.ID = 0
	values.SitioTuristico.ID = 0

	_, err := f.Submit(context.Background(), values)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "No puede exceder 50 personas", verr.Fields["numeroPersonas"])
	assert.Equal(t, "Tipo de reserva no válido", verr.Fields["tipoReserva"])
	assert.Equal(t, "ID inválido", verr.Fields["cliente.id"])
	assert.Equal(t, "ID inválido", verr.Fields["sitioTuristico.id"])
}

func TestReservationForm_SubmitTruncatesAndUsesSessionUser(t *testing.T) {
	res, clients, sites := reservationDeps()
	f := NewReservationForm(res, clients, sites, newTestValidator(), agent, 0)
	require.NoError(t, f.Load(context.Background()))

	saved, err := f.Submit(context.Background(), validReservation())

	require.NoError(t, err)
	require.Len(t, res.inputs, 1)
	in := res.inputs[0]
	assert.Equal(t, "2025-03-20", in.Fecha)
	assert.Equal(t, "09:30:00", in.Hora)
	assert.Equal(t, model.Ref{ID: agent.UserID}, in.User)
	assert.Equal(t, model.Ref{ID: 1}, in.Cliente)
	assert.Equal(t, model.Ref{ID: 5}, in.SitioTuristico)
	assert.Equal(t, int64(70), saved.ID)
}

func TestReservationForm_RequiresSession(t *testing.T) {
	res, clients, sites := reservationDeps()
	f := NewReservationForm(res, clients, sites, newTestValidator(), session.Session{}, 0)
	require.NoError(t, f.Load(context.Background()))

	_, err := f.Submit(context.Background(), validReservation())

	assert.ErrorIs(t, err, session.ErrNoSession)
	assert.Empty(t, res.inputs)
}

func TestReservationForm_EditRoundTripsTimestamps(t *testing.T) {
	res, clients, sites := reservationDeps()
	res.byID = map[int64]model.Reservation{
		3: {ID: 3, Status: true, Fecha: "2025-04-02", Hora: "15:45:00", NumeroPersonas: 2,
			TipoReserva: model.ReservationTypeLodging, User: model.Ref{ID: 1},
			Cliente: model.ClientSummary{ID: 2, FullName: "Luis Perdomo"}, SitioTuristico: model.SiteSummary{ID: 6}},
	}
	f := NewReservationForm(res, clients, sites, newTestValidator(), agent, 3)
	require.NoError(t, f.Load(context.Background()))

	v := f.Values()
	assert.Equal(t, "2025-04-02T00:00:00", v.Fecha)
	assert.Equal(t, "2000-01-01T15:45:00", v.Hora)

	_, err := f.Submit(context.Background(), v)
	require.NoError(t, err)
	assert.Equal(t, "2025-04-02", res.inputs[0].Fecha)
	assert.Equal(t, "15:45:00", res.inputs[0].Hora)
	assert.Equal(t, model.Ref{ID: 2}, res.inputs[0].Cliente)
}

func TestReservationForm_SearchOptions(t *testing.T) {
	res, clients, sites := reservationDeps()
	f := NewReservationForm(res, clients, sites, newTestValidator(), agent, 0)
	require.NoError(t, f.Load(context.Background()))

	assert.Len(t, f.SearchClients("perdomo"), 1)
	assert.Len(t, f.SearchClients("1075"), 1)
	assert.Len(t, f.SearchClients(""), 2)
	assert.Len(t, f.SearchSites("TATACOA"), 1)
}

func TestTruncateTime(t *testing.T) {
	cases := map[string]string{
		"2000-01-01T09:30:00.000Z":  "09:30:00",
		"2025-03-14T10:30:00-05:00": "10:30:00",
		"09:30:00":                  "09:30:00",
		"09:30":                     "09:30:00",
	}
	for in, want := range cases {
		assert.Equal(t, want, truncateTime(in), in)
	}
}
