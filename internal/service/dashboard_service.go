package service

import (
	"context"

	"exploraneiva/internal/model"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DashboardPreviewSize is how many records each card shows.
const DashboardPreviewSize = 3

// DashboardCard is one entity tile on the dashboard.
// Count is the number of previewed records, not the collection size.
type DashboardCard struct {
	Entity      string `json:"entity"`
	Title       string `json:"title"`
	Count       int    `json:"count"`
	ViewAllPath string `json:"viewAllPath"`
	CreatePath  string `json:"createPath"`
}

// Dashboard holds the first records of every collection, in API order.
type Dashboard struct {
	Clients      []model.Client      `json:"clients"`
	Sites        []model.TouristSite `json:"sites"`
	Reservations []model.Reservation `json:"reservations"`
	Invoices     []model.Invoice     `json:"invoices"`
	Cards        []DashboardCard     `json:"cards"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*Dashboard, error)
}

type dashboardService struct {
	clients      ClientService
	sites        TouristSiteService
	reservations ReservationService
	invoices     InvoiceService
}

func NewDashboardService(clients ClientService, sites TouristSiteService, reservations ReservationService, invoices InvoiceService) DashboardService {
	return &dashboardService{clients: clients, sites: sites, reservations: reservations, invoices: invoices}
}

// Summary fetches the four collections in parallel. The first failure
// cancels the others and is returned alone.
func (s *dashboardService) Summary(ctx context.Context) (*Dashboard, error) {
	var d Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		list, err := s.clients.List(gctx)
		d.Clients = firstN(list, DashboardPreviewSize)
		return err
	})
	g.Go(func() error {
		list, err := s.sites.List(gctx)
		d.Sites = firstN(list, DashboardPreviewSize)
		return err
	})
	g.Go(func() error {
		list, err := s.reservations.List(gctx)
		d.Reservations = firstN(list, DashboardPreviewSize)
		return err
	})
	g.Go(func() error {
		list, err := s.invoices.List(gctx)
		d.Invoices = firstN(list, DashboardPreviewSize)
		return err
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("dashboard: load failed")
		return nil, err
	}

	d.Cards = []DashboardCard{
		{Entity: "clientes", Title: "Clientes", Count: len(d.Clients), ViewAllPath: "/v1/clientes", CreatePath: "/v1/clientes/nuevo"},
		{Entity: "sitios", Title: "Sitios Turísticos", Count: len(d.Sites), ViewAllPath: "/v1/sitios", CreatePath: "/v1/sitios/nuevo"},
		{Entity: "reservaciones", Title: "Reservaciones", Count: len(d.Reservations), ViewAllPath: "/v1/reservaciones", CreatePath: "/v1/reservaciones/nuevo"},
		{Entity: "facturas", Title: "Facturas", Count: len(d.Invoices), ViewAllPath: "/v1/facturas", CreatePath: "/v1/facturas/nuevo"},
	}
	return &d, nil
}

func firstN[T any](list []T, n int) []T {
	if list == nil {
		return []T{}
	}
	if len(list) > n {
		return list[:n]
	}
	return list
}
