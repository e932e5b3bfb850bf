package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"regexp"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/haniellevi/SANTODINHIERO-sub001/internal/config"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the SQLite database at path, migrates it and configures the connection pool.
func Connect(path string) (*gorm.DB, error) {
	// Migration with foreign keys disabled since sqlite copies and
	// recreates tables when altering columns
	db, err := gorm.Open(sqlite.Open(path), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled so that deleting a month cascades
	db, err = gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}

	// Get new connections after one hour
	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	return db, registerCallbacks(db)
}

// Open connects to the configured database. For SQLite, the directory of
// the database file is created if needed.
func Open(d config.Database) (*gorm.DB, error) {
	if d.Postgres() {
		return ConnectPostgres(d.DSN())
	}

	if err := os.MkdirAll(filepath.Dir(d.Path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create the database directory: %w", err)
	}

	return Connect(d.Path)
}

// ConnectPostgres opens a PostgreSQL database and migrates it.
func ConnectPostgres(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), gormConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetMaxOpenConns(25)

	return db, registerCallbacks(db)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// Set generated timestamps in UTC
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
		Logger: &logger{
			Logger:        log.Logger,
			SlowThreshold: 200 * time.Millisecond,
		},
	}
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(name string, fn func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "santo_dinheiro:after_query", queryCallback},
		{db.Callback().Query().After("*"), "santo_dinheiro:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "santo_dinheiro:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "santo_dinheiro:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "santo_dinheiro:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "santo_dinheiro:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "santo_dinheiro:after_delete_general", generalCallback},
		{db.Callback().Row().After("*"), "santo_dinheiro:after_row_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return err
		}
	}

	return nil
}

var plural = regexp.MustCompile("ies$")

// queryCallback replaces the generic "no record" error with one that
// names the resource
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		name := strings.ReplaceAll(db.Statement.Table, "_", " ")
		name = plural.ReplaceAllString(name, "y")
		name = strings.TrimSuffix(name, "s")

		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, name)
	}
}

// uniqueViolations maps unique constraint failures to domain errors. The
// first pattern is the SQLite message, the second the PostgreSQL index name.
var uniqueViolations = []struct {
	sqlite   string
	postgres string
	err      error
}{
	{"UNIQUE constraint failed: months.user_id, months.month, months.year", "month_user_period", ErrMonthExists},
	{"UNIQUE constraint failed: users.external_id", "user_external_id", ErrUserExternalIDNotUnique},
	{"UNIQUE constraint failed: plans.external_id", "plan_external_id", ErrPlanExternalIDNotUnique},
}

// createUpdateCallback replaces constraint violations with domain errors
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	msg := db.Error.Error()
	for _, v := range uniqueViolations {
		if strings.Contains(msg, v.sqlite) || (strings.Contains(msg, "duplicate key") && strings.Contains(msg, v.postgres)) {
			db.Error = v.err
			return
		}
	}
}

// generalCallback handles errors we cannot give the user a helpful message for.
// They are logged and replaced with ErrGeneral.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	// "sql: database is closed" is hard-coded in database/sql
	if db.Error.Error() == "sql: database is closed" || reflect.TypeOf(db.Error) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", db.Error, db.Error.Error())
		db.Error = ErrGeneral
	}
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Month{}, Income{}, Expense{}, Investment{}, MiscExpense{}, Plan{}, Feedback{}, StorageObject{}, RoleGrant{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
