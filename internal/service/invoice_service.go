package service

import (
	"context"
	"fmt"

	"exploraneiva/internal/model"
)

// InvoiceService manages invoices (facturas) through /factura.
type InvoiceService interface {
	List(ctx context.Context) ([]model.Invoice, error)
	GetByID(ctx context.Context, id int64) (*model.Invoice, error)
	Create(ctx context.Context, inv model.Invoice) (*model.Invoice, error)
	Update(ctx context.Context, id int64, inv model.Invoice) (*model.Invoice, error)
	Delete(ctx context.Context, id int64) error

	// ListByReservation returns what the API serves, unfiltered.
	ListByReservation(ctx context.Context, reservationID int64) ([]model.Invoice, error)
}

type invoiceService struct {
	res resource[model.Invoice]
}

func NewInvoiceService(api API) InvoiceService {
	return &invoiceService{res: resource[model.Invoice]{api: api, path: "/factura"}}
}

func (s *invoiceService) List(ctx context.Context) ([]model.Invoice, error) {
	return s.res.list(ctx)
}

func (s *invoiceService) GetByID(ctx context.Context, id int64) (*model.Invoice, error) {
	return s.res.get(ctx, id)
}

func (s *invoiceService) Create(ctx context.Context, inv model.Invoice) (*model.Invoice, error) {
	inv.Status = true
	return s.res.create(ctx, inv)
}

func (s *invoiceService) Update(ctx context.Context, id int64, inv model.Invoice) (*model.Invoice, error) {
	inv.Status = true
	return s.res.update(ctx, id, inv)
}

func (s *invoiceService) Delete(ctx context.Context, id int64) error {
	return s.res.delete(ctx, id)
}

func (s *invoiceService) ListByReservation(ctx context.Context, reservationID int64) ([]model.Invoice, error) {
	return s.res.listAt(ctx, fmt.Sprintf("/factura/reservacion/%d", reservationID))
}
