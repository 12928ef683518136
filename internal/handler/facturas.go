package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"exploraneiva/internal/apierror"
	"exploraneiva/internal/dto"
	"exploraneiva/internal/form"
	"exploraneiva/internal/infra"
	"exploraneiva/internal/listview"
	"exploraneiva/internal/middleware"
	"exploraneiva/internal/model"
	"exploraneiva/internal/service"

	"github.com/gin-gonic/gin"
)

// InvoiceFormResponse adds the reservations offered for selection.
type InvoiceFormResponse struct {
	FormResponse[dto.InvoiceValues]
	Reservations []model.Reservation `json:"reservations"`
}

// DocumentStore is where invoice PDFs are generated and served from.
type DocumentStore interface {
	form.InvoiceDocuments
	StoragePath() string
}

type FacturasHandler struct {
	svc          service.InvoiceService
	reservations service.ReservationService
	docs         DocumentStore
	mailer       form.InvoiceMailer
	validator    *form.Validator
}

// NewFacturasHandler wires the invoice screens. mailer may be nil when
// e-mail delivery is not configured.
func NewFacturasHandler(svc service.InvoiceService, reservations service.ReservationService, docs DocumentStore,
	mailer form.InvoiceMailer, v *form.Validator) *FacturasHandler {
	return &FacturasHandler{svc: svc, reservations: reservations, docs: docs, mailer: mailer, validator: v}
}

// Listar godoc
// @Summary      Listar facturas
// @Tags         facturas
// @Produce      json
// @Security     BearerAuth
// @Param        q         query string false "Buscar por id, descripción, reservación, método o estado"
// @Param        categoria query string false "Estado de pago (Pendiente, Pagado, Cancelado) o all"
// @Success      200  {object} handler.ListResponse[model.Invoice]
// @Router       /v1/facturas [get]
func (h *FacturasHandler) Listar(c *gin.Context) {
	serveList(c, listview.NewInvoices(h.svc))
}

func (h *FacturasHandler) Nuevo(c *gin.Context) { h.serveForm(c, 0) }

func (h *FacturasHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.serveForm(c, id)
}

// Crear godoc
// @Summary      Crear factura y generar su PDF
// @Description  Guarda la factura, genera el PDF y, si sendEmail es true, lo envía al cliente de la reservación.
// @Tags         facturas
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.InvoiceValues true "Datos de la factura"
// @Success      201  {object} handler.SavedResponse[dto.InvoiceResult]
// @Failure      422  {object} apierror.ValidationError
// @Failure      502  {object} apierror.APIError
// @Router       /v1/facturas [post]
func (h *FacturasHandler) Crear(c *gin.Context) {
	h.submit(c, 0, http.StatusCreated, "Factura creada correctamente")
}

func (h *FacturasHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.submit(c, id, http.StatusOK, "Factura actualizada correctamente")
}

func (h *FacturasHandler) Eliminar(c *gin.Context) {
	deleteFromList(c, listview.NewInvoices(h.svc))
}

// Documento regenerates the PDF of a stored invoice and sends it. The
// reservation is fetched so the document carries the client details; a
// missing reservation only degrades the document.
func (h *FacturasHandler) Documento(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	inv, err := h.svc.GetByID(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	var res *model.Reservation
	if inv.Reservacion.ID > 0 {
		res, err = h.reservations.GetByID(ctx, inv.Reservacion.ID)
		if err != nil && !infra.IsNotFound(err) {
			respondError(c, err)
			return
		}
	}
	path, err := h.docs.GenerateInvoicePDF(ctx, inv, res)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, filepath.Base(path))
}

// DescargarPDF serves a previously generated document by file name.
func (h *FacturasHandler) DescargarPDF(c *gin.Context) {
	name := c.Param("file")
	if name != filepath.Base(name) || !strings.HasPrefix(name, "Factura_") || !strings.HasSuffix(name, ".pdf") {
		c.JSON(http.StatusBadRequest, apierror.New("Nombre de archivo invalido"))
		return
	}
	path := filepath.Join(h.docs.StoragePath(), name)
	if !fileExists(path) {
		c.JSON(http.StatusNotFound, apierror.New("Documento no encontrado"))
		return
	}
	c.FileAttachment(path, name)
}

func (h *FacturasHandler) newForm(c *gin.Context, id int64) *form.InvoiceForm {
	return form.NewInvoiceForm(h.svc, h.reservations, h.docs, h.mailer, h.validator, middleware.GetSession(c), id)
}

func (h *FacturasHandler) serveForm(c *gin.Context, id int64) {
	f := h.newForm(c, id)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, InvoiceFormResponse{
		FormResponse: FormResponse[dto.InvoiceValues]{Edit: f.IsEdit(), State: f.State(), Values: f.Values()},
		Reservations: f.SearchReservations(c.Query("reservacion")),
	})
}

func (h *FacturasHandler) submit(c *gin.Context, id int64, status int, message string) {
	var req dto.InvoiceValues
	if !bindJSON(c, &req) {
		return
	}
	f := h.newForm(c, id)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	out, err := f.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, SavedResponse[dto.InvoiceResult]{
		Message: message,
		Data: dto.InvoiceResult{
			ID:          out.Invoice.ID,
			DocumentURL: "/v1/facturas/pdf/" + filepath.Base(out.DocumentPath),
			EmailQueued: out.EmailQueued,
		},
	})
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
