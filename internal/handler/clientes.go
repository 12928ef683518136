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

type ClientesHandler struct {
	svc          service.ClientService
	reservations service.ReservationService
	validator    *form.Validator
}

func NewClientesHandler(svc service.ClientService, reservations service.ReservationService, v *form.Validator) *ClientesHandler {
	return &ClientesHandler{svc: svc, reservations: reservations, validator: v}
}

// Listar godoc
// @Summary      Listar clientes activos
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        q    query    string false "Buscar por nombre, email, teléfono o documento"
// @Success      200  {object} handler.ListResponse[model.Client]
// @Failure      502  {object} apierror.APIError
// @Router       /v1/clientes [get]
func (h *ClientesHandler) Listar(c *gin.Context) {
	serveList(c, listview.NewClients(h.svc))
}

// Nuevo returns the empty create form.
func (h *ClientesHandler) Nuevo(c *gin.Context) {
	h.serveForm(c, 0)
}

// Editar godoc
// @Summary      Formulario de edición de cliente
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     int true "ID del cliente"
// @Success      200  {object} handler.FormResponse[dto.ClientValues]
// @Failure      404  {object} apierror.APIError
// @Router       /v1/clientes/{id} [get]
func (h *ClientesHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.serveForm(c, id)
}

// Crear godoc
// @Summary      Registrar cliente
// @Tags         clientes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.ClientValues true "Datos del cliente"
// @Success      201  {object} handler.SavedResponse[model.Client]
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/clientes [post]
func (h *ClientesHandler) Crear(c *gin.Context) {
	h.submit(c, 0, http.StatusCreated, "Cliente registrado correctamente")
}

func (h *ClientesHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.submit(c, id, http.StatusOK, "Cliente actualizado correctamente")
}

// Eliminar godoc
// @Summary      Eliminar cliente
// @Description  Requiere confirm=true. Devuelve la lista actualizada.
// @Tags         clientes
// @Produce      json
// @Security     BearerAuth
// @Param        id      path  int  true "ID del cliente"
// @Param        confirm query bool true "Confirmación del usuario"
// @Success      200  {object} handler.ListResponse[model.Client]
// @Failure      400  {object} apierror.APIError
// @Router       /v1/clientes/{id} [delete]
func (h *ClientesHandler) Eliminar(c *gin.Context) {
	deleteFromList(c, listview.NewClients(h.svc))
}

// Reservaciones lists every reservation of the client, active or not.
func (h *ClientesHandler) Reservaciones(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.reservations.ListByClient(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *ClientesHandler) serveForm(c *gin.Context, id int64) {
	f := form.NewClientForm(h.svc, h.validator, middleware.GetSession(c), id)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FormResponse[dto.ClientValues]{Edit: f.IsEdit(), State: f.State(), Values: f.Values()})
}

func (h *ClientesHandler) submit(c *gin.Context, id int64, status int, message string) {
	var req dto.ClientValues
	if !bindJSON(c, &req) {
		return
	}
	f := form.NewClientForm(h.svc, h.validator, middleware.GetSession(c), id)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	saved, err := f.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, SavedResponse[*model.Client]{Message: message, Data: saved})
}
