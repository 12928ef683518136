package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"exploraneiva/internal/service"
	"exploraneiva/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDashboard struct{ calls int }

func (d *stubDashboard) Summary(context.Context) (*service.Dashboard, error) {
	d.calls++
	return &service.Dashboard{}, nil
}

func dashboardEngine(svc service.DashboardService, sess *session.Session) *gin.Engine {
	r := gin.New()
	r.GET("/v1/dashboard", func(c *gin.Context) {
		if sess != nil {
			c.Request = c.Request.WithContext(session.NewContext(c.Request.Context(), *sess))
		}
		c.Next()
	}, NewDashboardHandler(svc).Resumen)
	return r
}

func TestDashboard_GreetsSessionUser(t *testing.T) {
	svc := &stubDashboard{}
	r := dashboardEngine(svc, &session.Session{UserID: 7, Username: "agente"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bienvenido, agente", decode[DashboardResponse](t, w).Greeting)
}

func TestDashboard_WithoutSession(t *testing.T) {
	svc := &stubDashboard{}
	r := dashboardEngine(svc, nil)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, svc.calls)
}
