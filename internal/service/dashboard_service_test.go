package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"exploraneiva/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dashboardFor(api *fakeAPI) DashboardService {
	gw := api.gateway()
	return NewDashboardService(NewClientService(gw), NewTouristSiteService(gw), NewReservationService(gw), NewInvoiceService(gw))
}

func TestDashboard_TakesFirstThreeInAPIOrder(t *testing.T) {
	api := newFakeAPI(t)
	clients := make([]model.Client, 0, 5)
	for i := int64(1); i <= 5; i++ {
		clients = append(clients, model.Client{ID: i, Status: true})
	}
	api.reply("GET /cliente", http.StatusOK, clients)
	api.reply("GET /sitioTuristico", http.StatusOK, []model.TouristSite{{ID: 1, Status: true}})
	api.reply("GET /reservacion", http.StatusOK, []model.Reservation{})
	api.reply("GET /factura", http.StatusOK, []model.Invoice{{ID: 9, Status: true}, {ID: 8, Status: true}})

	d, err := dashboardFor(api).Summary(ctx)

	require.NoError(t, err)
	require.Len(t, d.Clients, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{d.Clients[0].ID, d.Clients[1].ID, d.Clients[2].ID})
	assert.Len(t, d.Sites, 1)
	assert.NotNil(t, d.Reservations)
	assert.Empty(t, d.Reservations)
	assert.Len(t, d.Invoices, 2)

	require.Len(t, d.Cards, 4)
	assert.Equal(t, 3, d.Cards[0].Count)
	assert.Equal(t, 0, d.Cards[2].Count)
	assert.Equal(t, "/v1/facturas/nuevo", d.Cards[3].CreatePath)
}

func TestDashboard_AnyFailureAborts(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("GET /cliente", http.StatusOK, []model.Client{{ID: 1, Status: true}})
	api.reply("GET /sitioTuristico", http.StatusOK, []model.TouristSite{})
	api.reply("GET /reservacion", http.StatusInternalServerError, map[string]string{"message": "fallo interno"})
	api.reply("GET /factura", http.StatusOK, []model.Invoice{})

	d, err := dashboardFor(api).Summary(ctx)

	assert.Nil(t, d)
	require.Error(t, err)
	assert.Equal(t, "fallo interno", err.Error())
}

// blockingClients never answers until its context is cancelled.
type blockingClients struct {
	ClientService
	cancelled chan struct{}
}

func (b *blockingClients) List(ctx context.Context) ([]model.Client, error) {
	<-ctx.Done()
	close(b.cancelled)
	return nil, ctx.Err()
}

type failingSites struct{ TouristSiteService }

func (failingSites) List(context.Context) ([]model.TouristSite, error) {
	return nil, errors.New("sitios no disponibles")
}

func TestDashboard_FailureCancelsInFlightCalls(t *testing.T) {
	api := newFakeAPI(t)
	api.reply("GET /reservacion", http.StatusOK, []model.Reservation{})
	api.reply("GET /factura", http.StatusOK, []model.Invoice{})
	gw := api.gateway()
	clients := &blockingClients{cancelled: make(chan struct{})}

	svc := NewDashboardService(clients, failingSites{}, NewReservationService(gw), NewInvoiceService(gw))
	_, err := svc.Summary(ctx)

	require.Error(t, err)
	assert.Equal(t, "sitios no disponibles", err.Error())
	<-clients.cancelled
}
