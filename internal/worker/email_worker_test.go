package worker

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentMail struct {
	to, subject, body, pdfPath string
}

type stubSender struct {
	sent []sentMail
	err  error
}

var _ InvoiceSender = (*stubSender)(nil)

func (s *stubSender) SendInvoice(to, subject, body, pdfPath string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMail{to, subject, body, pdfPath})
	return nil
}

func rawPayload(t *testing.T, p InvoiceEmailPayload) json.RawMessage {
	t.Helper()
	data, err := json.Marshal(p)
	require.NoError(t, err)
	return data
}

func TestInvoiceEmailWorker_Sends(t *testing.T) {
	sender := &stubSender{}
	w := NewInvoiceEmailWorker(sender)

	err := w.Process(context.Background(), rawPayload(t, InvoiceEmailPayload{
		InvoiceID: 31, ToEmail: "ana@example.com", ToName: "Ana", PDFPath: "/tmp/Factura_31.pdf",
	}))

	require.NoError(t, err)
	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ana@example.com", sender.sent[0].to)
	assert.Equal(t, "Explora Neiva - Factura N° 31", sender.sent[0].subject)
	assert.Contains(t, sender.sent[0].body, "Hola Ana")
	assert.Equal(t, "/tmp/Factura_31.pdf", sender.sent[0].pdfPath)
}

func TestInvoiceEmailWorker_EmptyRecipient(t *testing.T) {
	sender := &stubSender{}
	err := NewInvoiceEmailWorker(sender).Process(context.Background(), rawPayload(t, InvoiceEmailPayload{InvoiceID: 1}))

	assert.Error(t, err)
	assert.Empty(t, sender.sent)
}

func TestInvoiceEmailWorker_InvalidPayload(t *testing.T) {
	err := NewInvoiceEmailWorker(&stubSender{}).Process(context.Background(), json.RawMessage(`{"to_email":`))
	assert.Error(t, err)
}

func TestInvoiceEmailWorker_SMTPFailure(t *testing.T) {
	smtpErr := errors.New("dial tcp: connection refused")
	err := NewInvoiceEmailWorker(&stubSender{err: smtpErr}).Process(context.Background(),
		rawPayload(t, InvoiceEmailPayload{InvoiceID: 2, ToEmail: "x@example.com"}))

	assert.ErrorIs(t, err, smtpErr)
}

func TestDispatcher_RejectsMissingRecipient(t *testing.T) {
	d := NewDispatcher(nil)
	assert.Error(t, d.EnqueueInvoiceEmail(context.Background(), InvoiceEmailPayload{InvoiceID: 5}))
}
