package handler

import (
	"net/http"

	"exploraneiva/internal/dto"
	"exploraneiva/internal/form"
	"exploraneiva/internal/listview"
	"exploraneiva/internal/middleware"
	"exploraneiva/internal/model"
	"exploraneiva/internal/service"

	"github.com/gin-gonic/gin"
)

// ReservationFormResponse adds the selection lists to the form state.
type ReservationFormResponse struct {
	FormResponse[dto.ReservationValues]
	Clients []model.Client      `json:"clients"`
	Sites   []model.TouristSite `json:"sites"`
}

type ReservacionesHandler struct {
	svc       service.ReservationService
	clients   service.ClientService
	sites     service.TouristSiteService
	invoices  service.InvoiceService
	validator *form.Validator
}

func NewReservacionesHandler(svc service.ReservationService, clients service.ClientService, sites service.TouristSiteService,
	invoices service.InvoiceService, v *form.Validator) *ReservacionesHandler {
	return &ReservacionesHandler{svc: svc, clients: clients, sites: sites, invoices: invoices, validator: v}
}

// Listar godoc
// @Summary      Listar reservaciones
// @Tags         reservaciones
// @Produce      json
// @Security     BearerAuth
// @Param        q         query string false "Buscar por fecha, hora, tipo, observaciones o ids"
// @Param        categoria query string false "confirmed, cancelled o all"
// @Success      200  {object} handler.ListResponse[model.Reservation]
// @Router       /v1/reservaciones [get]
func (h *ReservacionesHandler) Listar(c *gin.Context) {
	serveList(c, listview.NewReservations(h.svc))
}

// Nuevo godoc
// @Summary      Formulario de nueva reservación
// @Description  Incluye clientes y sitios para selección; cliente y sitio filtran esas listas.
// @Tags         reservaciones
// @Produce      json
// @Security     BearerAuth
// @Param        cliente query string false "Buscar cliente por nombre o documento"
// @Param        sitio   query string false "Buscar sitio por título"
// @Success      200  {object} handler.ReservationFormResponse
// @Router       /v1/reservaciones/nuevo [get]
func (h *ReservacionesHandler) Nuevo(c *gin.Context) { h.serveForm(c, 0) }

func (h *ReservacionesHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.serveForm(c, id)
}

// Crear godoc
// @Summary      Crear reservación
// @Description  fecha y hora se truncan a AAAA-MM-DD y HH:MM:SS; el usuario es el de la sesión.
// @Tags         reservaciones
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.ReservationValues true "Datos de la reservación"
// @Success      201  {object} handler.SavedResponse[model.Reservation]
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/reservaciones [post]
func (h *ReservacionesHandler) Crear(c *gin.Context) {
	h.submit(c, 0, http.StatusCreated, "Reservación creada correctamente")
}

func (h *ReservacionesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.submit(c, id, http.StatusOK, "Reservación actualizada correctamente")
}

func (h *ReservacionesHandler) Eliminar(c *gin.Context) {
	deleteFromList(c, listview.NewReservations(h.svc))
}

// Facturas lists the invoices billed against the reservation.
func (h *ReservacionesHandler) Facturas(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.invoices.ListByReservation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ReservacionesHandler) newForm(c *gin.Context, id int64) *form.ReservationForm {
	return form.NewReservationForm(h.svc, h.clients, h.sites, h.validator, middleware.GetSession(c), id)
}

func (h *ReservacionesHandler) serveForm(c *gin.Context, id int64) {
	f := h.newForm(c, id)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ReservationFormResponse{
		FormResponse: FormResponse[dto.ReservationValues]{Edit: f.IsEdit(), State: f.State(), Values: f.Values()},
		Clients:      f.SearchClients(c.Query("cliente")),
		Sites:        f.SearchSites(c.Query("sitio")),
	})
}

func (h *ReservacionesHandler) submit(c *gin.Context, id int64, status int, message string) {
	var req dto.ReservationValues
	if !bindJSON(c, &req) {
		return
	}
	f := h.newForm(c, id)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	saved, err := f.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, SavedResponse[*model.Reservation]{Message: message, Data: saved})
}
