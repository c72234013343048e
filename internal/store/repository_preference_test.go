// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPreferenceRepo(t *testing.T) (PreferenceRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return NewPreferenceRepository(&DB{DB: db, logger: l}, l), mock
}

func TestPreferenceRepository_Get(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT value FROM preferences WHERE key = ? LIMIT 1")).
		WithArgs(RememberedEmailKey).
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("a@x.com"))

	value, err := repo.Get(context.Background(), RememberedEmailKey)

	require.NoError(t, err)
	assert.Equal(t, "a@x.com", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Get_NotFound(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectQuery("SELECT value FROM preferences").
		WithArgs(RememberedEmailKey).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), RememberedEmailKey)

	assert.ErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferenceRepository_Get_DBError(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectQuery("SELECT value FROM preferences").
		WithArgs(RememberedEmailKey).
		WillReturnError(errors.New("database is locked"))

	_, err := repo.Get(context.Background(), RememberedEmailKey)

	assert.ErrorIs(t, err, ErrScanningRow)
	assert.NotErrorIs(t, err, ErrPreferenceNotFound)
}

func TestPreferenceRepository_Set_Upserts(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO preferences (key,value,updated_at) VALUES (?,?,CURRENT_TIMESTAMP) ON CONFLICT(key) DO UPDATE SET value = excluded.value")).
		WithArgs(RememberedEmailKey, "a@x.com").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Set(context.Background(), RememberedEmailKey, "a@x.com")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPreferenceRepository_Set_Error(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec("INSERT INTO preferences").
		WillReturnError(errors.New("readonly database"))

	err := repo.Set(context.Background(), RememberedEmailKey, "a@x.com")

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestPreferenceRepository_Delete(t *testing.T) {
	repo, mock := newTestPreferenceRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM preferences WHERE key = ?")).
		WithArgs(RememberedEmailKey).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.Delete(context.Background(), RememberedEmailKey))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildPreferenceQueries(t *testing.T) {
	query, args, err := buildUpsertPreferenceQuery("k", "v")
	require.NoError(t, err)
	assert.Equal(t, []any{"k", "v"}, args)
	assert.Contains(t, query, "ON CONFLICT(key)")
	assert.NotContains(t, query, "$1")

	query, args, err = buildGetPreferenceQuery("k")
	require.NoError(t, err)
	assert.Equal(t, []any{"k"}, args)
	assert.Contains(t, query, "LIMIT 1")
}
