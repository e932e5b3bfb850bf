// Package router sets up the HTTP engine and attaches the API routes.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/logger"
	"github.com/gin-contrib/pprof"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/api"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/healthz"
	v1 "github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/v1"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/config"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httperror"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/httputil"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// This is set at build time
var version = "0.0.0"

// Config creates the engine with all middlewares. The returned function
// must be called when the engine is not used anymore.
func Config(cfg config.Config) (*gin.Engine, func(), error) {
	teardown := func() {}

	r := gin.New()

	// Client IPs are not used
	r.ForwardedByClientIP = false
	_ = r.SetTrustedProxies([]string{})

	// 405 for paths that exist with another method
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	r.Use(requestid.New())
	r.Use(URLMiddleware(cfg.APIURL))
	r.Use(logger.SetLogger(
		logger.WithDefaultLevel(zerolog.InfoLevel),
		logger.WithClientErrorLevel(zerolog.InfoLevel),
		logger.WithServerErrorLevel(zerolog.ErrorLevel),
		logger.WithLogger(func(c *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.With().
				Str("request-id", requestid.Get(c)).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Int("status", c.Writer.Status()).
				Int("size", c.Writer.Size()).
				Str("user-agent", c.Request.UserAgent()).
				Logger()
		})))

	if len(cfg.CORS) > 0 {
		log.Debug().Strs("origins", cfg.CORS).Msg("CORS")

		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS,
			AllowMethods:     []string{"OPTIONS", "GET", "POST", "PATCH", "PUT", "DELETE"},
			AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	r.Use(TimeoutMiddleware(cfg.Timeout))

	err := registerPrometheusMetrics()
	if err != nil {
		return nil, teardown, err
	}
	teardown = func() { unregisterPrometheusMetrics() }
	r.Use(MetricsMiddleware())

	r.NoRoute(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusNotFound, httperror.Newf("there is no endpoint at %s", c.Request.URL.Path))
	})
	r.NoMethod(func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusMethodNotAllowed, httperror.Newf("the %s method is not allowed for this endpoint", c.Request.Method))
	})

	// The route list clutters the logs
	gin.DebugPrintRouteFunc = func(_, _, _ string, _ int) {}

	api.SwaggerInfo.Host = cfg.APIURL.Host
	api.SwaggerInfo.BasePath = cfg.APIURL.Path
	api.SwaggerInfo.Version = version

	log.Debug().Str("url", cfg.APIURL.String()).Msg("router")
	log.Info().Str("version", version).Msg("router")

	return r, teardown, nil
}

// AttachRoutes attaches the general routes and the API to the group.
func AttachRoutes(co v1.Controller, group *gin.RouterGroup, enablePprof bool) {
	group.GET("", GetRoot)
	group.OPTIONS("", OptionsRoot)
	group.GET("/version", GetVersion)
	group.OPTIONS("/version", OptionsVersion)
	group.GET("/metrics", gin.WrapH(promhttp.Handler()))
	healthz.RegisterRoutes(group.Group("/healthz"), co.DB)

	if enablePprof {
		pprof.RouteRegister(group, "debug/pprof")
	}

	group.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	co.RegisterRoutes(group.Group("/api"))
}

type RootResponse struct {
	Links RootLinks `json:"links"`
}

type RootLinks struct {
	Docs    string `json:"docs" example:"https://example.com/docs/index.html"` // Swagger API documentation
	Version string `json:"version" example:"https://example.com/version"`      // Endpoint returning the version of the backend
	API     string `json:"api" example:"https://example.com/api"`              // Base of the JSON API
	Healthz string `json:"healthz" example:"https://example.com/healthz"`      // Health check
}

// GetRoot returns the link list for the API root
//
//	@Summary		API root
//	@Description	Entrypoint for the API, listing all endpoints
//	@Tags			General
//	@Success		200	{object}	RootResponse
//	@Router			/ [get]
func GetRoot(c *gin.Context) {
	base := c.GetString(urlKey)

	c.JSON(http.StatusOK, RootResponse{
		Links: RootLinks{
			Docs:    base + "/docs/index.html",
			Version: base + "/version",
			API:     base + "/api",
			Healthz: base + "/healthz",
		},
	})
}

type VersionResponse struct {
	Data VersionObject `json:"data"`
}

type VersionObject struct {
	Version string `json:"version" example:"1.1.0"` // the running version of the backend
}

// GetVersion returns the API version object
//
//	@Summary		API version
//	@Description	Returns the software version of the API
//	@Tags			General
//	@Success		200	{object}	VersionResponse
//	@Router			/version [get]
func GetVersion(c *gin.Context) {
	c.JSON(http.StatusOK, VersionResponse{
		Data: VersionObject{
			Version: version,
		},
	})
}

// OptionsRoot returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/ [options]
func OptionsRoot(c *gin.Context) {
	httputil.OptionsGet(c)
}

// OptionsVersion returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			General
//	@Success		204
//	@Router			/version [options]
func OptionsVersion(c *gin.Context) {
	httputil.OptionsGet(c)
}
