// Package v1 implements the Santo Dinheiro JSON API.
package v1

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/events"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httperror"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/invitations"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/storage"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Controller holds the collaborators the handlers use. All of them are
// created once at startup.
type Controller struct {
	DB          *gorm.DB
	Identity    auth.Identity
	Policy      auth.Policy
	AllowList   auth.AllowListPolicy
	Storage     storage.Provider
	Invitations invitations.Provider
	Events      events.Publisher

	AppURL         string // base URL of the web application
	MaxUploadBytes int64
	WebhookSecret  string
}

// RegisterRoutes attaches all API routes to the group.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	co.RegisterPublicRoutes(r.Group("/public"))
	co.RegisterWebhookRoutes(r.Group("/webhooks"))

	user := r.Group("", auth.Authenticate(co.DB, co.Identity))
	co.RegisterMonthRoutes(user.Group("/months"))
	co.RegisterIncomeRoutes(user.Group("/incomes"))
	co.RegisterExpenseRoutes(user.Group("/expenses"))
	co.RegisterInvestmentRoutes(user.Group("/investments"))
	co.RegisterMiscExpenseRoutes(user.Group("/misc-expenses"))
	co.RegisterUserRoutes(user)

	admin := user.Group("/admin", auth.RequireAdmin(co.Policy))
	co.RegisterAdminPlanRoutes(admin.Group("/plans"))
	co.RegisterAdminUserRoutes(admin.Group("/users"))
	co.RegisterAdminStorageRoutes(admin.Group("/storage"))
	co.RegisterAdminMetricRoutes(admin)
}

// db returns the database handle bound to the request context.
func (co Controller) db(c *gin.Context) *gorm.DB {
	return co.DB.WithContext(c.Request.Context())
}

// publish sends an event. Failures are logged, the request continues.
func (co Controller) publish(c *gin.Context, kind events.Kind, subject string, data any) {
	actor := ""
	if user, ok := auth.CurrentUser(c); ok {
		actor = user.ExternalID
	}

	err := co.Events.Publish(c.Request.Context(), events.New(kind, subject, actor, data))
	if err != nil {
		log.Warn().Str("request-id", requestid.Get(c)).Str("kind", string(kind)).Err(err).Msg("event not published")
	}
}

// clientErrors are caused by the request. Model validation errors are
// checked with models.IsValidationError.
var clientErrors = []error{
	httputil.ErrInvalidBody,
	httputil.ErrRequestBodyEmpty,
	httputil.ErrValidation,
	httputil.ErrInvalidUUID,
	types.ErrInvalidPeriod,
	errAmountTooSmall,
	errFileMissing,
	errFeaturesInvalid,
	invitations.ErrEmailRequired,
	invitations.ErrEmailMissing,
}

// status returns the HTTP status for an error. Errors that are not known
// to be caused by the client are internal errors.
func status(err error) int {
	switch {
	case errors.Is(err, auth.ErrNoCaller),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrNotAdmin),
		errors.Is(err, errWebhookSignature),
		errors.Is(err, errWebhookTimestamp):
		return http.StatusUnauthorized

	case errors.Is(err, errForbidden),
		errors.Is(err, errSelfDeactivation),
		errors.Is(err, auth.ErrUserInactive):
		return http.StatusForbidden

	case errors.Is(err, models.ErrResourceNotFound),
		errors.Is(err, invitations.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, errFileTooLarge):
		return http.StatusRequestEntityTooLarge

	case errors.Is(err, errWebhookPayload):
		return http.StatusUnprocessableEntity

	case models.IsValidationError(err):
		return http.StatusBadRequest
	}

	for _, e := range clientErrors {
		if errors.Is(err, e) {
			return http.StatusBadRequest
		}
	}

	return http.StatusInternalServerError
}

// writeError writes the error response. Details of internal errors are
// only sent in debug mode.
func writeError(c *gin.Context, err error) {
	s := status(err)
	if s == http.StatusInternalServerError {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("request failed")

		if !gin.IsDebugging() && !errors.Is(err, models.ErrFeaturesEncoding) {
			err = models.ErrGeneral
		}
	}

	c.AbortWithStatusJSON(s, httperror.New(err))
}
