package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/model"
	"exploraneiva/internal/service"
	"exploraneiva/internal/worker"
)

var (
	_ service.ClientService      = (*stubClients)(nil)
	_ service.TouristSiteService = (*stubSites)(nil)
	_ service.ReservationService = (*stubReservations)(nil)
	_ service.InvoiceService     = (*stubInvoices)(nil)
	_ service.AuthService        = (*stubAuth)(nil)
	_ InvoiceDocuments           = (*stubDocs)(nil)
	_ InvoiceMailer              = (*stubMailer)(nil)
	_ EmailMemory                = (*memoryStore)(nil)
)

// 2025-03-14 10:30 local time
var testNow = time.Date(2025, 3, 14, 10, 30, 0, 0, time.Local)

func newTestValidator() *Validator {
	return NewValidator(func() time.Time { return testNow })
}

var errAPI = errors.New("Error de conexión con el servidor")

// ── Clients ──────────────────────────────────────────────────────────────────

type stubClients struct {
	service.ClientService
	mu      sync.Mutex
	list    []model.Client
	listErr error
	byID    map[int64]model.Client
	writes  []model.Client
	saveErr error
}

func (s *stubClients) List(context.Context) ([]model.Client, error) {
	return s.list, s.listErr
}

func (s *stubClients) GetByID(_ context.Context, id int64) (*model.Client, error) {
	c, ok := s.byID[id]
	if !ok {
		return nil, errAPI
	}
	return &c, nil
}

func (s *stubClients) Create(_ context.Context, c model.Client) (*model.Client, error) {
	return s.write(c, 100)
}

func (s *stubClients) Update(_ context.Context, id int64, c model.Client) (*model.Client, error) {
	return s.write(c, id)
}

func (s *stubClients) write(c model.Client, id int64) (*model.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writes = append(s.writes, c)
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	c.ID, c.Status = id, true
	return &c, nil
}

// ── Sites ────────────────────────────────────────────────────────────────────

type stubSites struct {
	service.TouristSiteService
	list    []model.TouristSite
	listErr error
	byID    map[int64]model.TouristSite
	writes  []model.TouristSite
}

func (s *stubSites) List(context.Context) ([]model.TouristSite, error) {
	return s.list, s.listErr
}

func (s *stubSites) GetByID(_ context.Context, id int64) (*model.TouristSite, error) {
	site, ok := s.byID[id]
	if !ok {
		return nil, errAPI
	}
	return &site, nil
}

func (s *stubSites) Create(_ context.Context, site model.TouristSite) (*model.TouristSite, error) {
	s.writes = append(s.writes, site)
	site.ID, site.Status = 50, true
	return &site, nil
}

func (s *stubSites) Update(_ context.Context, id int64, site model.TouristSite) (*model.TouristSite, error) {
	s.writes = append(s.writes, site)
	site.ID, site.Status = id, true
	return &site, nil
}

// ── Reservations ─────────────────────────────────────────────────────────────

type stubReservations struct {
	service.ReservationService
	list    []model.Reservation
	listErr error
	byID    map[int64]model.Reservation
	inputs  []model.ReservationInput
}

func (s *stubReservations) List(context.Context) ([]model.Reservation, error) {
	return s.list, s.listErr
}

func (s *stubReservations) GetByID(_ context.Context, id int64) (*model.Reservation, error) {
	r, ok := s.byID[id]
	if !ok {
		return nil, errAPI
	}
	return &r, nil
}

func (s *stubReservations) Create(_ context.Context, in model.ReservationInput) (*model.Reservation, error) {
	return s.write(in, 70)
}

func (s *stubReservations) Update(_ context.Context, id int64, in model.ReservationInput) (*model.Reservation, error) {
	return s.write(in, id)
}

func (s *stubReservations) write(in model.ReservationInput, id int64) (*model.Reservation, error) {
	s.inputs = append(s.inputs, in)
	return &model.Reservation{
		ID: id, Status: true, Fecha: in.Fecha, Hora: in.Hora, NumeroPersonas: in.NumeroPersonas,
		TipoReserva: in.TipoReserva, User: in.User,
		Cliente: model.ClientSummary{ID: in.Cliente.ID}, SitioTuristico: model.SiteSummary{ID: in.SitioTuristico.ID},
	}, nil
}

// ── Invoices ─────────────────────────────────────────────────────────────────

type stubInvoices struct {
	service.InvoiceService
	byID    map[int64]model.Invoice
	writes  []model.Invoice
	saveErr error
}

func (s *stubInvoices) GetByID(_ context.Context, id int64) (*model.Invoice, error) {
	inv, ok := s.byID[id]
	if !ok {
		return nil, errAPI
	}
	return &inv, nil
}

func (s *stubInvoices) Create(_ context.Context, inv model.Invoice) (*model.Invoice, error) {
	return s.write(inv, 300)
}

func (s *stubInvoices) Update(_ context.Context, id int64, inv model.Invoice) (*model.Invoice, error) {
	return s.write(inv, id)
}

func (s *stubInvoices) write(inv model.Invoice, id int64) (*model.Invoice, error) {
	s.writes = append(s.writes, inv)
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	inv.ID, inv.Status = id, true
	return &inv, nil
}

type docCall struct {
	invoice     *model.Invoice
	reservation *model.Reservation
}

type stubDocs struct {
	calls []docCall
	err   error
}

func (d *stubDocs) GenerateInvoicePDF(_ context.Context, inv *model.Invoice, res *model.Reservation) (string, error) {
	d.calls = append(d.calls, docCall{inv, res})
	if d.err != nil {
		return "", d.err
	}
	return "/tmp/facturas/Factura_test.pdf", nil
}

type stubMailer struct {
	payloads []worker.InvoiceEmailPayload
}

func (m *stubMailer) EnqueueInvoiceEmail(_ context.Context, p worker.InvoiceEmailPayload) error {
	m.payloads = append(m.payloads, p)
	return nil
}

// ── Auth ─────────────────────────────────────────────────────────────────────

type stubAuth struct {
	logins    []dto.LoginRequest
	loginErr  error
	registers []dto.SignupRequest
	verifies  []dto.VerifyEmailRequest
	forgots   []dto.ForgotPasswordRequest
}

func (a *stubAuth) Login(_ context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	a.logins = append(a.logins, req)
	if a.loginErr != nil {
		return nil, a.loginErr
	}
	return &dto.LoginResponse{AccessToken: "jwt", TokenType: "bearer", User: dto.UsuarioResponse{ID: 1, Email: req.Email}}, nil
}

func (a *stubAuth) Register(_ context.Context, req dto.SignupRequest) error {
	a.registers = append(a.registers, req)
	return nil
}

func (a *stubAuth) VerifyEmail(_ context.Context, req dto.VerifyEmailRequest) error {
	a.verifies = append(a.verifies, req)
	return nil
}

func (a *stubAuth) ForgotPassword(_ context.Context, req dto.ForgotPasswordRequest) error {
	a.forgots = append(a.forgots, req)
	return nil
}

type memoryStore struct {
	email string
	err   error
}

func (m *memoryStore) RememberedEmail(context.Context) (string, error) { return m.email, m.err }

func (m *memoryStore) SetRememberedEmail(_ context.Context, email string) error {
	m.email = email
	return nil
}

func (m *memoryStore) ClearRememberedEmail(context.Context) error {
	m.email = ""
	return nil
}
