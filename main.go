package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/config"
	v1 "github.com/haniellevi/SANTODINHIERO-sub001/internal/controllers/v1"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/events"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/invitations"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/router"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/storage"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

//go:generate go run github.com/swaggo/swag/cmd/swag init --output api --outputTypes go --parseInternal

// shutdownTimeout is the time running requests get to finish on shutdown.
const shutdownTimeout = 20 * time.Second

func main() {
	cfg, err := config.Load()

	// gin uses debug as the default mode, we use release unless configured otherwise
	mode := cfg.GinMode
	if err != nil || mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	output := io.Writer(os.Stdout)
	if cfg.Human {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := models.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	co, closeAll, err := controller(ctx, cfg, db)
	if err != nil {
		log.Fatal().Err(err).Msg("collaborators")
	}
	defer closeAll()

	r, teardown, err := router.Config(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("router")
	}
	defer teardown()

	router.AttachRoutes(co, r.Group("/"), cfg.Pprof)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", server.Addr).Msg("listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error().Err(err).Msg("server stopped")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// controller creates the collaborators of the API. The returned function
// closes them.
func controller(ctx context.Context, cfg config.Config, db *gorm.DB) (v1.Controller, func(), error) {
	allowList := auth.AllowListPolicy{IDs: cfg.Auth.AdminUserIDs, Emails: cfg.Auth.AdminEmails}

	co := v1.Controller{
		DB:             db,
		Identity:       auth.NewJWTIdentity(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer),
		Policy:         auth.Any(auth.RolePolicy{}, allowList),
		AllowList:      allowList,
		AppURL:         cfg.AppURL,
		MaxUploadBytes: cfg.Storage.MaxBytes(),
		WebhookSecret:  cfg.Auth.WebhookSecret,
	}

	switch cfg.Storage.Provider {
	case config.StorageS3:
		s3, err := storage.NewS3(ctx, cfg.Storage.Bucket, cfg.Storage.Region)
		if err != nil {
			return v1.Controller{}, nil, err
		}
		co.Storage = s3
	default:
		log.Warn().Msg("uploads are kept in memory and lost on restart")
		co.Storage = storage.NewMemory(cfg.APIURL.String() + "/blobs")
	}

	if cfg.Invites.SecretKey != "" {
		co.Invitations = invitations.NewREST(cfg.Invites.APIURL, cfg.Invites.SecretKey)
	} else {
		log.Warn().Msg("INVITATIONS_SECRET_KEY is not set, invitations are kept in memory")
		co.Invitations = invitations.NewMemory()
	}

	if cfg.AMQP.URL != "" {
		publisher, err := events.NewAMQP(cfg.AMQP.URL, cfg.AMQP.Exchange)
		if err != nil {
			return v1.Controller{}, nil, err
		}
		co.Events = publisher
	} else {
		co.Events = events.Log{}
	}

	closeAll := func() {
		if err := co.Events.Close(); err != nil {
			log.Error().Err(err).Msg("closing the event publisher")
		}

		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return co, closeAll, nil
}
