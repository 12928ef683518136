package handler

import (
	"net/http"
	"strconv"

	"exploraneiva/internal/apierror"
	"exploraneiva/internal/form"
	"exploraneiva/internal/listview"
	"exploraneiva/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// FormResponse is the state of a create/edit screen.
type FormResponse[V any] struct {
	Edit   bool       `json:"edit"`
	State  form.State `json:"state"`
	Values V          `json:"values"`
}

// ListResponse is the state of a list screen after filtering.
type ListResponse[T any] struct {
	Items    []T                  `json:"items"`
	Total    int                  `json:"total"`
	Search   string               `json:"search"`
	Category string               `json:"category"`
	Empty    *listview.EmptyState `json:"empty,omitempty"`
}

// SavedResponse confirms a create or update.
type SavedResponse[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// bindJSON binds the request body. Field rules are checked by the forms, so
// only malformed JSON is rejected here.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	return true
}

// respondError writes the envelope for err. It is the only place a
// user-facing error text is chosen.
func respondError(c *gin.Context, err error) {
	status, body := apierror.FromError(err)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Str("request_id", c.GetString(middleware.RequestIDKey)).
		Str("path", c.FullPath()).
		Int("status", status).
		Err(err).
		Msg("handler error")
	c.JSON(status, body)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return id, true
}

// serveList loads v, applies the q and categoria query filters and writes
// the visible records.
func serveList[T any](c *gin.Context, v *listview.View[T]) {
	defer v.Close()
	if err := v.Load(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	v.SetSearch(c.Query("q"))
	v.SetCategory(c.Query("categoria"))
	c.JSON(http.StatusOK, listResponse(v))
}

// deleteFromList removes the record behind :id once ?confirm=true is given
// and answers with the re-fetched list.
func deleteFromList[T any](c *gin.Context, v *listview.View[T]) {
	defer v.Close()
	id, ok := parseID(c)
	if !ok {
		return
	}
	confirmed, _ := strconv.ParseBool(c.Query("confirm"))
	if err := v.Delete(c.Request.Context(), id, confirmed); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, listResponse(v))
}

func listResponse[T any](v *listview.View[T]) ListResponse[T] {
	return ListResponse[T]{
		Items:    v.Items(),
		Total:    v.Total(),
		Search:   v.Search(),
		Category: v.Category(),
		Empty:    v.Empty(),
	}
}
