package auth

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httperror"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	ErrUserInactive = errors.New("your account has been deactivated")
	ErrNotAdmin     = errors.New("you must be an administrator to use this endpoint")
)

const userKey = "santo-dinheiro:user"

// Authenticate resolves the caller and makes the local user available to
// the following handlers. Users are created on their first request.
// OPTIONS requests pass without a caller.
func Authenticate(db *gorm.DB, identity Identity) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		caller, err := identity.Caller(c.Request)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(err))
			return
		}

		user, err := models.ProvisionUser(db.WithContext(c.Request.Context()), models.Profile(caller))
		if err != nil {
			log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("user provisioning failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, httperror.New(models.ErrGeneral))
			return
		}

		if !user.IsActive {
			c.AbortWithStatusJSON(http.StatusForbidden, httperror.New(ErrUserInactive))
			return
		}

		c.Set(userKey, user)
		c.Next()
	}
}

// RequireAdmin aborts with 401 unless the policy grants the user admin access.
// It must run after Authenticate.
func RequireAdmin(policy Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrNoCaller))
			return
		}

		if allowed, _ := policy.Allows(user); !allowed {
			c.AbortWithStatusJSON(http.StatusUnauthorized, httperror.New(ErrNotAdmin))
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user of the request.
func CurrentUser(c *gin.Context) (models.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return models.User{}, false
	}

	user, ok := v.(models.User)
	return user, ok
}

// User returns the authenticated user of the request. It panics if
// the handler is not behind Authenticate.
func User(c *gin.Context) models.User {
	return c.MustGet(userKey).(models.User)
}
