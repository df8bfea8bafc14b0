package db

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CreateTestPool connects to the dedicated test database and brings its
// schema up to date first.
func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv("TEST_POSTGRESQL_URL")
	if connString == "" {
		panic("TEST_POSTGRESQL_URL must be set.")
	}
	migrateUp(connString)

	pool, err := pgxpool.Connect(context.Background(), connString)
	if err != nil {
		panic("Could not connect to the test database.")
	}
	return pool
}

func migrateUp(connString string) {
	migrationsPath := os.Getenv("TEST_MIGRATIONS_PATH")
	if migrationsPath == "" {
		panic("TEST_MIGRATIONS_PATH must be set.")
	}
	m, err := migrate.New("file://"+migrationsPath, connString)
	if err != nil {
		panic(fmt.Sprintf("Could not prepare DB migrations: %v.", err))
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		panic(fmt.Sprintf("Could not apply DB migrations: %v.", err))
	}
}

func TruncateTables(pool *pgxpool.Pool) {
	if _, err := pool.Exec(context.Background(), "TRUNCATE account"); err != nil {
		panic("Could not truncate DB tables.")
	}
}
