package form

import (
	"context"
	"fmt"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/model"
	"exploraneiva/internal/service"
	"exploraneiva/internal/session"
	"exploraneiva/internal/worker"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// InvoiceDocuments renders and stores the invoice PDF.
type InvoiceDocuments interface {
	GenerateInvoicePDF(ctx context.Context, inv *model.Invoice, res *model.Reservation) (string, error)
}

// InvoiceMailer queues the generated document for delivery.
type InvoiceMailer interface {
	EnqueueInvoiceEmail(ctx context.Context, payload worker.InvoiceEmailPayload) error
}

// DocumentError reports an invoice that was saved but whose document could
// not be generated. InvoiceID is the saved invoice; a retry must update it.
type DocumentError struct {
	InvoiceID int64
	Err       error
}

func (e *DocumentError) Error() string {
	return fmt.Sprintf("factura %d guardada, pero no se pudo generar el PDF: %v", e.InvoiceID, e.Err)
}

func (e *DocumentError) Unwrap() error { return e.Err }

// InvoiceOutcome is what a successful submit produced.
type InvoiceOutcome struct {
	Invoice      *model.Invoice
	DocumentPath string
	EmailQueued  bool
}

// InvoiceForm creates an invoice, or edits one when id > 0. After every
// successful save it generates the invoice document.
type InvoiceForm struct {
	controller[dto.InvoiceValues]

	invoices     service.InvoiceService
	reservations service.ReservationService
	docs         InvoiceDocuments
	mailer       InvoiceMailer // nil when e-mail delivery is off
	validator    *Validator
	sess         session.Session
	id           int64

	reservationOptions []model.Reservation
	outcome            *InvoiceOutcome
}

func NewInvoiceForm(invoices service.InvoiceService, reservations service.ReservationService, docs InvoiceDocuments,
	mailer InvoiceMailer, v *Validator, sess session.Session, id int64) *InvoiceForm {
	return &InvoiceForm{
		invoices:     invoices,
		reservations: reservations,
		docs:         docs,
		mailer:       mailer,
		validator:    v,
		sess:         sess,
		id:           id,
	}
}

func (f *InvoiceForm) IsEdit() bool { return f.id > 0 }

// Load fetches the reservations offered for selection and, when editing,
// the invoice.
func (f *InvoiceForm) Load(ctx context.Context) error {
	return f.load(withSession(ctx, f.sess), func(ctx context.Context) (dto.InvoiceValues, error) {
		var (
			reservations []model.Reservation
			current      *model.Invoice
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			reservations, err = f.reservations.List(gctx)
			return err
		})
		if f.IsEdit() {
			g.Go(func() (err error) {
				current, err = f.invoices.GetByID(gctx, f.id)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return dto.InvoiceValues{}, err
		}

		f.mu.Lock()
		f.reservationOptions = reservations
		f.mu.Unlock()

		if current == nil {
			return dto.InvoiceValues{}, nil
		}
		return dto.InvoiceValues{
			Descripcion:   current.Descripcion,
			MetodoPago:    current.MetodoPago,
			EstadoPago:    current.EstadoPago,
			ReservacionID: current.Reservacion.ID,
			MontoTotal:    current.MontoTotal,
		}, nil
	})
}

// ReservationOptions are the active reservations loaded for selection.
func (f *InvoiceForm) ReservationOptions() []model.Reservation {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reservationOptions
}

// SearchReservations narrows the options by reservation id, client name or
// site title.
func (f *InvoiceForm) SearchReservations(term string) []model.Reservation {
	return filterOptions(f.ReservationOptions(), term, func(r model.Reservation) []string {
		return []string{formatID(r.ID), r.Cliente.FullName, r.SitioTuristico.Title}
	})
}

// Submit validates values, saves the invoice and generates its document
// from the saved invoice and the matching loaded reservation. A reservation
// missing from the loaded options yields a document without client and
// reservation details.
func (f *InvoiceForm) Submit(ctx context.Context, values dto.InvoiceValues) (*InvoiceOutcome, error) {
	err := f.submit(withSession(ctx, f.sess), values,
		func(v dto.InvoiceValues) error { return f.validator.Validate(v, invoiceMessages) },
		f.save)
	if err != nil {
		return nil, err
	}
	return f.outcome, nil
}

func (f *InvoiceForm) save(ctx context.Context, v dto.InvoiceValues) error {
	inv := model.Invoice{
		ID:          f.id,
		Descripcion: v.Descripcion,
		MetodoPago:  v.MetodoPago,
		EstadoPago:  v.EstadoPago,
		MontoTotal:  v.MontoTotal,
		Reservacion: model.Ref{ID: v.ReservacionID},
	}

	var (
		saved *model.Invoice
		err   error
	)
	if f.IsEdit() {
		saved, err = f.invoices.Update(ctx, f.id, inv)
	} else {
		saved, err = f.invoices.Create(ctx, inv)
	}
	if err != nil {
		return err
	}
	if saved.ID > 0 {
		// a retry after a failed document must update, not create again
		f.id = saved.ID
	}

	res := f.findReservation(v.ReservacionID)
	path, err := f.docs.GenerateInvoicePDF(ctx, saved, res)
	if err != nil {
		return &DocumentError{InvoiceID: saved.ID, Err: err}
	}

	outcome := &InvoiceOutcome{Invoice: saved, DocumentPath: path}
	if v.SendEmail {
		outcome.EmailQueued = f.queueEmail(ctx, saved, res, path)
	}
	f.outcome = outcome
	return nil
}

func (f *InvoiceForm) findReservation(id int64) *model.Reservation {
	for _, r := range f.ReservationOptions() {
		if r.ID == id {
			r := r
			return &r
		}
	}
	return nil
}

// queueEmail is best effort: a failure is logged and the submit still succeeds.
func (f *InvoiceForm) queueEmail(ctx context.Context, inv *model.Invoice, res *model.Reservation, path string) bool {
	if f.mailer == nil || res == nil || res.Cliente.Email == "" {
		return false
	}
	err := f.mailer.EnqueueInvoiceEmail(ctx, worker.InvoiceEmailPayload{
		InvoiceID: inv.ID,
		ToEmail:   res.Cliente.Email,
		ToName:    res.Cliente.FullName,
		PDFPath:   path,
	})
	if err != nil {
		log.Error().Err(err).Int64("invoice_id", inv.ID).Msg("invoice: could not queue e-mail")
		return false
	}
	return true
}
