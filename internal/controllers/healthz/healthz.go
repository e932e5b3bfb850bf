// Package healthz reports whether the service can reach its database.
package healthz

import (
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httperror"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
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
// @Description	Returns 204 if the database answers, 500 otherwise
// @Tags			General
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}

		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("health check failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
			return
		}

		c.Status(http.StatusNoContent)
	}
}
