package app

import (
	"errors"
	"os"
	"time"

	errorsUtils "github.com/Egor213/NewsReport/pkg/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
	migrationsPath  = "migrations"
)

// Migrate brings an empty database up to the news schema. It is meant for
// development and test databases; production data is loaded elsewhere.
func Migrate(pgUrl string) error {
	log.Info("Running migrations")

	var (
		connAttempts = defaultAttempts
		err          error
		mgrt         *migrate.Migrate
	)

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		return errorsUtils.WrapPathErr(errors.New("migrations directory " + migrationsPath + " does not exist"))
	}

	for connAttempts > 0 {
		mgrt, err = migrate.New("file://"+migrationsPath, pgUrl)
		if err == nil {
			break
		}

		time.Sleep(defaultTimeout)
		connAttempts--
		log.Infof("Postgres trying to connect, attempts left: %d", connAttempts)
	}

	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer mgrt.Close()

	if err = mgrt.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errorsUtils.WrapPathErr(err)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return nil
	}

	log.Info("Migration successful up")
	return nil
}
