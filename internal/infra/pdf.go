package infra

// pdf.go: invoice (factura) document using go-pdf/fpdf.
// A4 portrait with:
//   - logo + agency header
//   - invoice number and issue date
//   - client and reservation blocks (only when the reservation is known)
//   - billing table with the payment details and total
//   - fixed notes and contact footer
//
// The output file is saved to storagePath/Factura_{id|nueva}_{YYYY-MM-DD}.pdf.

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"exploraneiva/internal/model"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	pdfMarginLeft = 14.0
	logoMaxBytes  = 2 << 20
)

var (
	colorBrand = [3]int{41, 128, 185}
	colorMuted = [3]int{100, 100, 100}
	colorFaint = [3]int{150, 150, 150}
	colorRule  = [3]int{200, 200, 200}
	colorZebra = [3]int{245, 245, 245}
)

// InvoiceGenerator renders invoice documents and stores them on disk.
type InvoiceGenerator struct {
	storagePath string
	logoURL     string
	httpClient  *http.Client
	now         func() time.Time
	compress    bool
}

// NewInvoiceGenerator creates a generator writing to storagePath.
// logoURL may be empty; a logo that cannot be fetched is simply left out.
func NewInvoiceGenerator(storagePath, logoURL string) *InvoiceGenerator {
	return &InvoiceGenerator{
		storagePath: storagePath,
		logoURL:     logoURL,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
		now:         time.Now,
		compress:    true,
	}
}

// StoragePath is the directory generated documents are written to.
func (g *InvoiceGenerator) StoragePath() string { return g.storagePath }

// InvoiceFileName returns Factura_<id|nueva>_<YYYY-MM-DD>.pdf.
func InvoiceFileName(inv *model.Invoice, now time.Time) string {
	id := "nueva"
	if inv.ID > 0 {
		id = strconv.FormatInt(inv.ID, 10)
	}
	return fmt.Sprintf("Factura_%s_%s.pdf", id, now.Format(model.DateLayout))
}

// GenerateInvoicePDF renders the document and writes it under the storage
// path. Returns the path of the written file.
func (g *InvoiceGenerator) GenerateInvoicePDF(ctx context.Context, inv *model.Invoice, res *model.Reservation) (string, error) {
	data, err := g.RenderInvoicePDF(ctx, inv, res)
	if err != nil {
		invoiceDocumentsTotal.WithLabelValues("error").Inc()
		return "", err
	}
	if err := os.MkdirAll(g.storagePath, 0755); err != nil {
		invoiceDocumentsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	filePath := filepath.Join(g.storagePath, InvoiceFileName(inv, g.now()))
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		invoiceDocumentsTotal.WithLabelValues("error").Inc()
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	invoiceDocumentsTotal.WithLabelValues("ok").Inc()
	return filePath, nil
}

// RenderInvoicePDF builds the document in memory. res may be nil, in which
// case the client and reservation blocks are omitted.
func (g *InvoiceGenerator) RenderInvoicePDF(ctx context.Context, inv *model.Invoice, res *model.Reservation) ([]byte, error) {
	if inv == nil {
		return nil, fmt.Errorf("pdf: nil invoice")
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetCompression(g.compress)
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	text := func(size float64, style string, color [3]int, s string) {
		pdf.SetFont("Helvetica", style, size)
		pdf.SetTextColor(color[0], color[1], color[2])
		pdf.CellFormat(0, 7, tr(s), "", 1, "L", false, 0, "")
	}

	// ── Header ───────────────────────────────────────────────────────────────
	y := 10.0
	if g.drawLogo(ctx, pdf, y) {
		log.Debug().Str("url", g.logoURL).Msg("pdf: logo embedded")
	}
	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(colorBrand[0], colorBrand[1], colorBrand[2])
	pdf.Text(pdfMarginLeft+35, y+15, "Explora Neiva")
	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	pdf.Text(pdfMarginLeft+35, y+22, "Agencia de Turismo Especializada")

	pdf.SetDrawColor(colorRule[0], colorRule[1], colorRule[2])
	pdf.SetLineWidth(0.5)
	pdf.Line(pdfMarginLeft, y+30, 200, y+30)

	// ── Invoice metadata ─────────────────────────────────────────────────────
	y += 45
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(colorBrand[0], colorBrand[1], colorBrand[2])
	pdf.Text(pdfMarginLeft, y, "FACTURA")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	number := "PENDIENTE"
	if inv.ID > 0 {
		number = strconv.FormatInt(inv.ID, 10)
	}
	pdf.Text(140, y, tr("Número: "+number))
	pdf.Text(140, y+7, "Fecha: "+g.now().Format("2/1/2006"))

	pdf.SetXY(pdfMarginLeft, y+15)
	pdf.SetLeftMargin(pdfMarginLeft)

	black := [3]int{0, 0, 0}

	// ── Client ───────────────────────────────────────────────────────────────
	if res != nil && (res.Cliente.ID > 0 || res.Cliente.HasDetails()) {
		text(12, "B", black, "DATOS DEL CLIENTE")
		text(10, "", black, "Nombre: "+orUnavailable(res.Cliente.FullName))
		text(10, "", black, strings.TrimSpace("Documento: "+res.Cliente.DocumentType+" "+res.Cliente.DocumentNumber))
		text(10, "", black, "Email: "+orUnavailable(res.Cliente.Email))
		pdf.Ln(8)
	}

	// ── Reservation ──────────────────────────────────────────────────────────
	if res != nil {
		text(12, "B", black, "DETALLES DE LA RESERVACIÓN")
		text(10, "", black, fmt.Sprintf("Número: %d", res.ID))
		text(10, "", black, "Fecha: "+res.Fecha)
		text(10, "", black, "Sitio Turístico: "+orUnavailable(res.SitioTuristico.Title))
		text(10, "", black, "Tipo: "+res.TipoReserva)
		pdf.Ln(8)
	}

	// ── Billing table ────────────────────────────────────────────────────────
	text(12, "B", black, "DETALLES DE FACTURACIÓN")
	pdf.Ln(3)

	colLabel, colValue := 70.0, 112.0
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(colorBrand[0], colorBrand[1], colorBrand[2])
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(colLabel, 10, tr("Descripción"), "", 0, "L", true, 0, "")
	pdf.CellFormat(colValue, 10, "Valor", "", 1, "L", true, 0, "")

	rows := [][2]string{
		{"Descripción del servicio", inv.Descripcion},
		{"Método de Pago", inv.MetodoPago},
		{"Estado de Pago", inv.EstadoPago},
		{"Monto Total", "$" + FormatAmount(inv.MontoTotal)},
	}
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(colorZebra[0], colorZebra[1], colorZebra[2])
	for i, row := range rows {
		fill := i%2 == 1
		lines := pdf.SplitText(tr(row[1]), colValue-4)
		if len(lines) == 0 {
			lines = []string{""}
		}
		h := 10.0
		if len(lines) > 1 {
			h = 6 * float64(len(lines))
		}
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(colLabel, h, tr(row[0]), "", 0, "L", fill, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(colValue, h/float64(len(lines)), strings.Join(lines, "\n"), "", "L", fill)
	}

	// ── Notes ────────────────────────────────────────────────────────────────
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(colorMuted[0], colorMuted[1], colorMuted[2])
	for _, note := range []string{
		"Notas:",
		"- Esta factura es válida como comprobante de pago.",
		"- Para reclamos o devoluciones, presentar este documento.",
		"- Gracias por preferir nuestros servicios turísticos.",
	} {
		pdf.CellFormat(0, 5, tr(note), "", 1, "L", false, 0, "")
	}

	// ── Footer (fixed position on the last page) ─────────────────────────────
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(colorFaint[0], colorFaint[1], colorFaint[2])
	pdf.Text(pdfMarginLeft, 285, "Explora Neiva - Agencia de Turismo")
	pdf.Text(pdfMarginLeft, 290, "Tel: +57 123 456 7890 | Email: info@exploraneiva.com")
	pdf.Text(pdfMarginLeft, 295, "Nit: 123.456.789-0 | Regimen: Simplificado")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render: %w", err)
	}
	return buf.Bytes(), nil
}

// drawLogo embeds the logo at y. Any failure (network, format) is logged and
// the document continues without it.
func (g *InvoiceGenerator) drawLogo(ctx context.Context, pdf *fpdf.Fpdf, y float64) bool {
	if g.logoURL == "" {
		return false
	}
	data, err := g.fetchLogo(ctx)
	if err != nil {
		log.Warn().Err(err).Str("url", g.logoURL).Msg("pdf: logo no disponible")
		return false
	}

	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: true}
	pdf.RegisterImageOptionsReader("logo", opts, bytes.NewReader(data))
	if pdf.Err() {
		log.Warn().Err(pdf.Error()).Str("url", g.logoURL).Msg("pdf: logo no disponible")
		pdf.ClearError()
		return false
	}
	pdf.ImageOptions("logo", pdfMarginLeft, y, 30, 30, false, opts, 0, "")
	return true
}

func (g *InvoiceGenerator) fetchLogo(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.logoURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("logo returned %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, logoMaxBytes))
}

func orUnavailable(s string) string {
	if s == "" {
		return "No disponible"
	}
	return s
}

// FormatAmount renders d the way the agency prints money: dot thousands
// separators, comma decimals, no trailing zeros (1500000 -> "1.500.000",
// 1234.5 -> "1234,5"), at most three decimals. Four-digit integers are
// left ungrouped.
func FormatAmount(d decimal.Decimal) string {
	d = d.Round(3)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Neg()
	}

	intPart := d.Truncate(0).String()
	frac := strings.TrimRight(strings.TrimPrefix(d.Sub(d.Truncate(0)).StringFixed(3), "0."), "0")

	if len(intPart) > 4 {
		var b strings.Builder
		lead := len(intPart) % 3
		if lead > 0 {
			b.WriteString(intPart[:lead])
		}
		for i := lead; i < len(intPart); i += 3 {
			if b.Len() > 0 {
				b.WriteByte('.')
			}
			b.WriteString(intPart[i : i+3])
		}
		intPart = b.String()
	}

	if frac != "" {
		return sign + intPart + "," + frac
	}
	return sign + intPart
}
