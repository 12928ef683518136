package form

import (
	"context"
	"strconv"
	"strings"
	"time"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/model"
	"exploraneiva/internal/service"
	"exploraneiva/internal/session"

	"golang.org/x/sync/errgroup"
)

// ReservationForm creates a reservation, or edits one when id > 0.
// Load also fetches the clients and tourist sites offered for selection.
type ReservationForm struct {
	controller[dto.ReservationValues]

	reservations service.ReservationService
	clients      service.ClientService
	sites        service.TouristSiteService
	validator    *Validator
	sess         session.Session
	id           int64

	clientOptions []model.Client
	siteOptions   []model.TouristSite
	saved         *model.Reservation
}

func NewReservationForm(reservations service.ReservationService, clients service.ClientService, sites service.TouristSiteService,
	v *Validator, sess session.Session, id int64) *ReservationForm {
	return &ReservationForm{
		reservations: reservations,
		clients:      clients,
		sites:        sites,
		validator:    v,
		sess:         sess,
		id:           id,
	}
}

func (f *ReservationForm) IsEdit() bool { return f.id > 0 }

// Load fetches the selection lists and, when editing, the reservation, all
// at once. The first failure cancels the rest.
func (f *ReservationForm) Load(ctx context.Context) error {
	return f.load(withSession(ctx, f.sess), func(ctx context.Context) (dto.ReservationValues, error) {
		var (
			clients []model.Client
			sites   []model.TouristSite
			current *model.Reservation
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			clients, err = f.clients.List(gctx)
			return err
		})
		g.Go(func() (err error) {
			sites, err = f.sites.List(gctx)
			return err
		})
		if f.IsEdit() {
			g.Go(func() (err error) {
				current, err = f.reservations.GetByID(gctx, f.id)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return dto.ReservationValues{}, err
		}

		f.mu.Lock()
		f.clientOptions, f.siteOptions = clients, sites
		f.mu.Unlock()

		if current == nil {
			now := f.validator.Now().Format(time.RFC3339)
			return dto.ReservationValues{Fecha: now, Hora: now}, nil
		}
		return dto.ReservationValues{
			Fecha:          current.Fecha + "T00:00:00",
			Hora:           "2000-01-01T" + current.Hora,
			NumeroPersonas: current.NumeroPersonas,
			Observaciones:  current.Observaciones,
			TipoReserva:    current.TipoReserva,
			Cliente:        dto.RefValues{ID: current.Cliente.ID},
			SitioTuristico: dto.RefValues{ID: current.SitioTuristico.ID},
		}, nil
	})
}

// ClientOptions are the active clients loaded for selection.
func (f *ReservationForm) ClientOptions() []model.Client {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.clientOptions
}

// SiteOptions are the active tourist sites loaded for selection.
func (f *ReservationForm) SiteOptions() []model.TouristSite {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.siteOptions
}

// SearchClients narrows the client options by name or document number.
func (f *ReservationForm) SearchClients(term string) []model.Client {
	return filterOptions(f.ClientOptions(), term, func(c model.Client) []string {
		return []string{c.FullName, c.DocumentNumber}
	})
}

// SearchSites narrows the site options by title.
func (f *ReservationForm) SearchSites(term string) []model.TouristSite {
	return filterOptions(f.SiteOptions(), term, func(s model.TouristSite) []string {
		return []string{s.Title}
	})
}

// Submit validates values, truncates fecha/hora to their wire layouts and
// creates or updates the reservation on behalf of the session user.
func (f *ReservationForm) Submit(ctx context.Context, values dto.ReservationValues) (*model.Reservation, error) {
	err := f.submit(withSession(ctx, f.sess), values,
		func(v dto.ReservationValues) error { return f.validator.Validate(v, reservationMessages) },
		func(ctx context.Context, v dto.ReservationValues) error {
			if !f.sess.Valid() {
				return session.ErrNoSession
			}
			in := model.ReservationInput{
				Fecha:          truncateDate(v.Fecha),
				Hora:           truncateTime(v.Hora),
				NumeroPersonas: v.NumeroPersonas,
				Observaciones:  v.Observaciones,
				TipoReserva:    v.TipoReserva,
				User:           model.Ref{ID: f.sess.UserID},
				Cliente:        model.Ref{ID: v.Cliente.ID},
				SitioTuristico: model.Ref{ID: v.SitioTuristico.ID},
			}
			var err error
			if f.IsEdit() {
				f.saved, err = f.reservations.Update(ctx, f.id, in)
			} else {
				f.saved, err = f.reservations.Create(ctx, in)
			}
			return err
		})
	if err != nil {
		return nil, err
	}
	return f.saved, nil
}

// truncateDate keeps the YYYY-MM-DD part of a timestamp.
func truncateDate(s string) string {
	date, _, _ := strings.Cut(strings.TrimSpace(s), "T")
	return date
}

// truncateTime keeps the HH:MM:SS part of a timestamp; a bare time is
// returned as is, padded with seconds when given as HH:MM.
func truncateTime(s string) string {
	s = strings.TrimSpace(s)
	if _, clock, ok := strings.Cut(s, "T"); ok {
		s = clock
	}
	s, _, _ = strings.Cut(s, ".")
	if len(s) > 8 {
		s = s[:8]
	}
	if len(s) == 5 {
		s += ":00"
	}
	return s
}

// filterOptions keeps the items where any field contains term, ignoring case.
// An empty term keeps everything.
func filterOptions[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(strings.TrimSpace(term))
	out := make([]T, 0, len(items))
	for _, it := range items {
		if term == "" || anyContains(fields(it), term) {
			out = append(out, it)
		}
	}
	return out
}

func anyContains(fields []string, term string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func formatID(id int64) string { return strconv.FormatInt(id, 10) }
