package handler

import (
	"net/http"

	"exploraneiva/internal/service"
	"exploraneiva/internal/session"

	"github.com/gin-gonic/gin"
)

// DashboardResponse greets the session user above the entity cards.
type DashboardResponse struct {
	Greeting string `json:"greeting"`
	*service.Dashboard
}

type DashboardHandler struct{ svc service.DashboardService }

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumen godoc
// @Summary      Panel principal
// @Description  Primeros 3 registros de clientes, sitios, reservaciones y facturas.
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object} handler.DashboardResponse
// @Failure      401  {object} apierror.APIError
// @Failure      502  {object} apierror.APIError
// @Router       /v1/dashboard [get]
func (h *DashboardHandler) Resumen(c *gin.Context) {
	s, err := session.Require(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	d, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	greeting := "Bienvenido al Sistema"
	if s.Username != "" {
		greeting = "Bienvenido, " + s.Username
	}
	c.JSON(http.StatusOK, DashboardResponse{Greeting: greeting, Dashboard: d})
}

// Welcome is the public landing screen.
func Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"title":    "BIENVENIDOS",
		"subtitle": "Ingresa y descubre nuevos lugares.",
		"actions": []gin.H{
			{"label": "Iniciar Sesión", "path": "/v1/auth/login"},
			{"label": "Registrarse", "path": "/v1/auth/signup"},
		},
	})
}
