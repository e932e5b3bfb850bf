package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
)

// RegisterPublicRoutes attaches the routes that do not need a caller.
func (co Controller) RegisterPublicRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/plans", OptionsPublicPlans)
	r.GET("/plans", co.GetPublicPlans)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Plans
// @Success		204
// @Router			/api/public/plans [options]
func OptionsPublicPlans(c *gin.Context) {
	httputil.OptionsGet(c)
}
