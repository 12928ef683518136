package worker

// email_worker.go
// Processes jobs from QueueInvoiceEmail: sends the generated invoice PDF to
// the client of the billed reservation.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// InvoiceEmailPayload is the job envelope sent to QueueInvoiceEmail.
type InvoiceEmailPayload struct {
	InvoiceID int64  `json:"invoice_id"`
	ToEmail   string `json:"to_email"`
	ToName    string `json:"to_name"`
	PDFPath   string `json:"pdf_path"`
}

// InvoiceSender delivers a message with an optional PDF attachment.
type InvoiceSender interface {
	SendInvoice(to, subject, body, pdfPath string) error
}

type InvoiceEmailWorker struct {
	mailer InvoiceSender
}

func NewInvoiceEmailWorker(mailer InvoiceSender) *InvoiceEmailWorker {
	return &InvoiceEmailWorker{mailer: mailer}
}

// Process sends the e-mail. Invalid payloads and SMTP failures are returned
// so the pool can park the job in the DLQ.
func (w *InvoiceEmailWorker) Process(_ context.Context, raw json.RawMessage) error {
	var payload InvoiceEmailPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("email_worker: invalid payload")
		return fmt.Errorf("email_worker: invalid payload: %w", err)
	}
	if payload.ToEmail == "" {
		log.Warn().Int64("invoice_id", payload.InvoiceID).Msg("email_worker: empty to_email, skipping")
		return errors.New("email_worker: empty to_email")
	}

	subject, body := invoiceMessage(payload)
	if err := w.mailer.SendInvoice(payload.ToEmail, subject, body, payload.PDFPath); err != nil {
		log.Error().Err(err).Str("to", payload.ToEmail).Msg("email_worker: failed to send email")
		return err
	}
	log.Info().Str("to", payload.ToEmail).Int64("invoice_id", payload.InvoiceID).Msg("email_worker: factura sent")
	return nil
}

func invoiceMessage(p InvoiceEmailPayload) (subject, body string) {
	subject = fmt.Sprintf("Explora Neiva - Factura N° %d", p.InvoiceID)
	name := p.ToName
	if name == "" {
		name = "cliente"
	}
	body = fmt.Sprintf("Hola %s,\n\nAdjuntamos la factura de su reservación.\n\n"+
		"Gracias por preferir nuestros servicios turísticos.\n\nExplora Neiva - Agencia de Turismo\n", name)
	return subject, body
}
