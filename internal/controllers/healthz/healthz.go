// Package healthz implements the health check endpoint.
package healthz

import (
	"net/http"

	"github.com/hearth-budget/backend/internal/httputil"
	"github.com/hearth-budget/backend/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the health check routes with the RouterGroup
// that is passed.
func RegisterRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", Options)
	r.GET("", Get)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Success		204
// @Failure		500	{object}	response
// @Router			/healthz [get]
func Get(c *gin.Context) {
	sqlDB, err := models.DB.DB()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, response{Error: &e})
		return
	}

	err = sqlDB.Ping()
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusInternalServerError, response{Error: &e})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

type response struct {
	Error *string `json:"error"` // The error, if any occurred
}
