// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/migrations"
)

// DB is the local SQLite connection shared by the durable repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies every pending goose migration.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
