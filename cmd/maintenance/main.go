// Command maintenance runs administrative jobs against the database.
//
//	maintenance clean-old-months
//	maintenance keep-only-current-month
//	maintenance list-months [externalId]
//	maintenance sync-admin-roles
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/haniellevi/SANTODINHIERO-sub001/internal/auth"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/config"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/models"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// jobName is recorded as the grantor of roles synchronized by this command.
const jobName = "maintenance:sync-admin-roles"

var errUsage = errors.New("usage: maintenance clean-old-months | keep-only-current-month | list-months [externalId] | sync-admin-roles")

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.LoadMaintenance()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := models.Open(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("database")
	}

	err = run(db, cfg, os.Args[1:], os.Stdout, time.Now())
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		sqlDB.Close()
	}

	if err != nil {
		log.Fatal().Err(err).Msg("maintenance failed")
	}
}

func run(db *gorm.DB, cfg config.Config, args []string, out io.Writer, now time.Time) error {
	if len(args) == 0 {
		return errUsage
	}

	current := types.PeriodOf(now)

	switch args[0] {
	case "clean-old-months":
		n, err := models.DeleteMonthsBefore(db, current)
		if err != nil {
			return err
		}
		log.Info().Int64("deleted", n).Str("before", current.String()).Msg("old months deleted")
		return listMonths(db, "", out)

	case "keep-only-current-month":
		n, err := models.DeleteMonthsExcept(db, current)
		if err != nil {
			return err
		}
		log.Info().Int64("deleted", n).Str("kept", current.String()).Msg("months deleted")
		return listMonths(db, "", out)

	case "list-months":
		externalID := ""
		if len(args) > 1 {
			externalID = args[1]
		}
		return listMonths(db, externalID, out)

	case "sync-admin-roles":
		policy := auth.AllowListPolicy{IDs: cfg.Auth.AdminUserIDs, Emails: cfg.Auth.AdminEmails}
		grants, err := policy.Sync(db, jobName)
		for _, g := range grants {
			fmt.Fprintf(out, "%s\t%s\t%s\n", g.UserID, g.Role, g.Source)
		}
		return err
	}

	return errUsage
}

// listMonths prints the periods of all users, or of the user with the external ID.
func listMonths(db *gorm.DB, externalID string, out io.Writer) error {
	var users []models.User
	query := db.Order("external_id ASC")
	if externalID != "" {
		query = query.Where("external_id = ?", externalID)
	}

	if err := query.Find(&users).Error; err != nil {
		return err
	}

	if externalID != "" && len(users) == 0 {
		return fmt.Errorf("%w user with external ID %s", models.ErrResourceNotFound, externalID)
	}

	for _, u := range users {
		periods, err := models.ListUserMonths(db, u.ID)
		if err != nil {
			return err
		}

		for _, p := range periods {
			fmt.Fprintf(out, "%s\t%s\n", u.ExternalID, p)
		}
	}

	return nil
}
