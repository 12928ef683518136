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

type SitiosHandler struct {
	svc          service.TouristSiteService
	reservations service.ReservationService
	validator    *form.Validator
}

func NewSitiosHandler(svc service.TouristSiteService, reservations service.ReservationService, v *form.Validator) *SitiosHandler {
	return &SitiosHandler{svc: svc, reservations: reservations, validator: v}
}

// Listar godoc
// @Summary      Listar sitios turísticos activos
// @Tags         sitios
// @Produce      json
// @Security     BearerAuth
// @Param        q         query string false "Buscar por título, ubicación, tipo o descripción"
// @Param        categoria query string false "Tipo de sitio (lugar, museo, parque, restaurante, hotel) o all"
// @Success      200  {object} handler.ListResponse[model.TouristSite]
// @Router       /v1/sitios [get]
func (h *SitiosHandler) Listar(c *gin.Context) {
	serveList(c, listview.NewTouristSites(h.svc))
}

func (h *SitiosHandler) Nuevo(c *gin.Context) { h.serveForm(c, 0) }

func (h *SitiosHandler) Editar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.serveForm(c, id)
}

// Crear godoc
// @Summary      Crear sitio turístico
// @Tags         sitios
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body     dto.TouristSiteValues true "Datos del sitio"
// @Success      201  {object} handler.SavedResponse[model.TouristSite]
// @Failure      422  {object} apierror.ValidationError
// @Router       /v1/sitios [post]
func (h *SitiosHandler) Crear(c *gin.Context) {
	h.submit(c, 0, http.StatusCreated, "Sitio turístico creado correctamente")
}

func (h *SitiosHandler) Actualizar(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	h.submit(c, id, http.StatusOK, "Sitio turístico actualizado correctamente")
}

func (h *SitiosHandler) Eliminar(c *gin.Context) {
	deleteFromList(c, listview.NewTouristSites(h.svc))
}

// Reservaciones lists every reservation made for the site.
func (h *SitiosHandler) Reservaciones(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	list, err := h.reservations.ListBySite(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *SitiosHandler) serveForm(c *gin.Context, id int64) {
	f := form.NewTouristSiteForm(h.svc, h.validator, middleware.GetSession(c), id)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, FormResponse[dto.TouristSiteValues]{Edit: f.IsEdit(), State: f.State(), Values: f.Values()})
}

func (h *SitiosHandler) submit(c *gin.Context, id int64, status int, message string) {
	var req dto.TouristSiteValues
	if !bindJSON(c, &req) {
		return
	}
	f := form.NewTouristSiteForm(h.svc, h.validator, middleware.GetSession(c), id)
	if err := f.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	saved, err := f.Submit(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(status, SavedResponse[*model.TouristSite]{Message: message, Data: saved})
}
