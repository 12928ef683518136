package handler

import (
	"net/http"
	"strconv"

	"exploraneiva/internal/apierror"
	"exploraneiva/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const maxFailedEmails = 100

// CorreosFallidos godoc
// @Summary      Correos de factura no entregados
// @Description  Últimos envíos que terminaron en la cola de fallidos. ?limite (1-100, por defecto 20).
// @Tags         facturas
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  worker.DLQEntry
// @Failure      400  {object} apierror.APIError
// @Router       /v1/correos/fallidos [get]
func CorreosFallidos(rdb redis.Cmdable) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, err := strconv.ParseInt(c.DefaultQuery("limite", "20"), 10, 64)
		if err != nil || limit < 1 || limit > maxFailedEmails {
			c.JSON(http.StatusBadRequest, apierror.New("limite debe estar entre 1 y 100"))
			return
		}
		entries, err := worker.PeekDLQ(c.Request.Context(), rdb, worker.QueueInvoiceEmail, limit)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, entries)
	}
}
