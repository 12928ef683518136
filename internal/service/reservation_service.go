package service

import (
	"context"
	"fmt"

	"exploraneiva/internal/model"
)

// ReservationService manages reservations through /reservacion.
// Writes take a ReservationInput so only {id} references are ever sent.
type ReservationService interface {
	List(ctx context.Context) ([]model.Reservation, error)
	GetByID(ctx context.Context, id int64) (*model.Reservation, error)
	Create(ctx context.Context, in model.ReservationInput) (*model.Reservation, error)
	Update(ctx context.Context, id int64, in model.ReservationInput) (*model.Reservation, error)
	Delete(ctx context.Context, id int64) error

	// ListByClient and ListBySite return what the API serves, unfiltered.
	ListByClient(ctx context.Context, clientID int64) ([]model.Reservation, error)
	ListBySite(ctx context.Context, siteID int64) ([]model.Reservation, error)
}

type reservationService struct {
	res resource[model.Reservation]
}

func NewReservationService(api API) ReservationService {
	return &reservationService{res: resource[model.Reservation]{api: api, path: "/reservacion"}}
}

func (s *reservationService) List(ctx context.Context) ([]model.Reservation, error) {
	return s.res.list(ctx)
}

func (s *reservationService) GetByID(ctx context.Context, id int64) (*model.Reservation, error) {
	return s.res.get(ctx, id)
}

func (s *reservationService) Create(ctx context.Context, in model.ReservationInput) (*model.Reservation, error) {
	in.Status = true
	return s.res.create(ctx, in)
}

func (s *reservationService) Update(ctx context.Context, id int64, in model.ReservationInput) (*model.Reservation, error) {
	in.Status = true
	return s.res.update(ctx, id, in)
}

func (s *reservationService) Delete(ctx context.Context, id int64) error {
	return s.res.delete(ctx, id)
}

func (s *reservationService) ListByClient(ctx context.Context, clientID int64) ([]model.Reservation, error) {
	return s.res.listAt(ctx, fmt.Sprintf("/reservacion/cliente/%d", clientID))
}

func (s *reservationService) ListBySite(ctx context.Context, siteID int64) ([]model.Reservation, error) {
	return s.res.listAt(ctx, fmt.Sprintf("/reservacion/sitio/%d", siteID))
}
