//go:build integration

// Package testdb starts one shared PostgreSQL container per test binary and
// migrates the full schema into it.
package testdb

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	database "schooloffice_backend/internals/databases"
	"schooloffice_backend/internals/migrations"
)

var (
	sharedContainer *PostgresContainer
	sharedOnce      sync.Once
	sharedErr       error
)

type PostgresContainer struct {
	Container *postgres.PostgresContainer
	DB        *gorm.DB
	DSN       string
}

// SetupSharedPostgres returns the shared, migrated database. Tests using it
// must not run in parallel.
func SetupSharedPostgres(t *testing.T) *PostgresContainer {
	t.Helper()

	sharedOnce.Do(func() {
		ctx := context.Background()
		pg, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("testdb"),
			postgres.WithUsername("postgres"),
			postgres.WithPassword("postgres"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(60*time.Second),
			),
		)
		if err != nil {
			sharedErr = err
			return
		}
		dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			sharedErr = err
			return
		}
		db, err := database.Open(dsn, time.Second)
		if err != nil {
			sharedErr = err
			return
		}
		if err := migrations.Run(db); err != nil {
			sharedErr = err
			return
		}
		sharedContainer = &PostgresContainer{Container: pg, DB: db, DSN: dsn}
	})
	require.NoError(t, sharedErr)
	return sharedContainer
}

// CleanupTables truncates the given tables (and dependants).
func CleanupTables(t *testing.T, db *gorm.DB, tables ...string) {
	t.Helper()
	if len(tables) == 0 {
		return
	}
	err := db.Exec("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error
	require.NoError(t, err, "truncate %v", tables)
}
