package Models

import (
	"github.com/sirupsen/logrus"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect opens the process-local store and prepares the schema. The database
// lives in memory only; all state is rebuilt from the seed on every start.
func Connect() {
	connection, err := Open("file::memory:?cache=shared")
	if err != nil {
		logrus.WithError(err).Fatal("failed to open database")
	}
	DB = connection

	if err := Seed(DB); err != nil {
		logrus.WithError(err).Fatal("failed to seed database")
	}
}

// Open opens a database on the given DSN and runs the migrations. Tests use
// it to get isolated in-memory stores.
func Open(dsn string) (*gorm.DB, error) {
	connection, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := connection.AutoMigrate(
		&Forklift{},
		&Operator{},
		&Operation{},
		&Maintenance{},
		&GasSupply{},
		&Billing{},
	); err != nil {
		return nil, err
	}

	return connection, nil
}
