// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"errors"
	"io/fs"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose сам ходит в БД; первый же запрос падает
	mock.ExpectQuery(".*").WillReturnError(errors.New("connection reset"))
	mock.ExpectExec(".*").WillReturnError(errors.New("connection reset"))

	err = Migrate(db, DialectPostgres)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, DialectSQLite)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported dialect")
}

func TestEmbeddedMigrations_BothDialectsInSync(t *testing.T) {
	sqlite, err := fs.Glob(embedMigrations, "sqlite/*.sql")
	require.NoError(t, err)
	postgres, err := fs.Glob(embedMigrations, "postgres/*.sql")
	require.NoError(t, err)

	require.NotEmpty(t, sqlite)
	require.Len(t, postgres, len(sqlite))

	for i := range sqlite {
		assert.Equal(t, sqlite[i][len("sqlite/"):], postgres[i][len("postgres/"):])
	}
}
