// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/shop-panel/internal/logger"
)

// preferenceRepository is the SQLite-backed implementation of
// [PreferenceRepository] over the "preferences" table.
type preferenceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewPreferenceRepository constructs a [PreferenceRepository] backed by db.
func NewPreferenceRepository(db *DB, logger *logger.Logger) PreferenceRepository {
	logger.Debug().Msg("creating preference repository")
	return &preferenceRepository{db: db, logger: logger}
}

func (r *preferenceRepository) Get(ctx context.Context, key string) (string, error) {
	log := r.logger.With().Str("func", "preferenceRepository.Get").Str("key", key).Logger()

	query, args, err := buildGetPreferenceQuery(key)
	if err != nil {
		log.Err(err).Msg("error building query")
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrPreferenceNotFound
	case err != nil:
		log.Err(err).Msg("error reading preference")
		return "", fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return value, nil
}

func (r *preferenceRepository) Set(ctx context.Context, key, value string) error {
	log := r.logger.With().Str("func", "preferenceRepository.Set").Str("key", key).Logger()

	query, args, err := buildUpsertPreferenceQuery(key, value)
	if err != nil {
		log.Err(err).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("error saving preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Msg("preference saved")
	return nil
}

func (r *preferenceRepository) Delete(ctx context.Context, key string) error {
	log := r.logger.With().Str("func", "preferenceRepository.Delete").Str("key", key).Logger()

	query, args, err := buildDeletePreferenceQuery(key)
	if err != nil {
		log.Err(err).Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("error deleting preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Debug().Msg("preference deleted")
	return nil
}
