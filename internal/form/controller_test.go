package form

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loader interface {
	Load(ctx context.Context) error
	State() State
}

func TestFreshFormsLoad(t *testing.T) {
	v := newTestValidator()
	res, clients, sites := reservationDeps()
	auth := &stubAuth{}

	forms := map[string]loader{
		"client":      NewClientForm(&stubClients{}, v, agent, 0),
		"site":        NewTouristSiteForm(&stubSites{}, v, agent, 0),
		"reservation": NewReservationForm(res, clients, sites, v, agent, 0),
		"invoice":     NewInvoiceForm(&stubInvoices{}, invoiceReservations(), &stubDocs{}, nil, v, agent, 0),
		"login":       NewLoginForm(auth, &memoryStore{}, v),
		"signup":      NewSignupForm(auth, v),
		"verify":      NewVerifyEmailForm(auth, v),
		"forgot":      NewForgotPasswordForm(auth, v),
	}
	for name, f := range forms {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, StateIdle, f.State())
			require.NoError(t, f.Load(context.Background()))
			assert.Equal(t, StateReady, f.State())
		})
	}
}

func TestController_LoadTwiceIsRejected(t *testing.T) {
	var c controller[string]
	fetch := func(context.Context) (string, error) { return "x", nil }

	require.NoError(t, c.load(context.Background(), fetch))
	assert.ErrorIs(t, c.load(context.Background(), fetch), ErrNotReady)
}

func TestController_ReloadAfterFailure(t *testing.T) {
	var c controller[string]
	require.ErrorIs(t, c.load(context.Background(), func(context.Context) (string, error) { return "", errAPI }), errAPI)
	assert.Equal(t, StateFailed, c.State())

	require.NoError(t, c.load(context.Background(), func(context.Context) (string, error) { return "ok", nil }))
	assert.Equal(t, StateReady, c.State())
	assert.Equal(t, "ok", c.Values())
}
