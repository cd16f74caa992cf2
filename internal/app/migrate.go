package app

import (
	"errors"
	"os"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"

	errorsUtils "github.com/logwise-app/logwise/pkg/errors"
)

const (
	migrateAttempts = 10
	migrateDelay    = time.Second
	migrationsPath  = "migrations"
)

// Migrate brings the schema up to date before the app starts serving,
// retrying while postgres comes up.
func Migrate(pgURL string) {
	pgURL += "?sslmode=disable"

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Fatalf("Migrations directory %q does not exist", migrationsPath)
	}

	var (
		mgrt *migrate.Migrate
		err  error
	)
	for attempt := migrateAttempts; attempt > 0; attempt-- {
		mgrt, err = migrate.New("file://"+migrationsPath, pgURL)
		if err == nil {
			break
		}
		log.Infof("Migrations waiting for postgres, attempts left: %d", attempt-1)
		time.Sleep(migrateDelay)
	}
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer mgrt.Close()

	if err = mgrt.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("Schema already up to date")
			return
		}
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	log.Info("Schema migrated up")
}
