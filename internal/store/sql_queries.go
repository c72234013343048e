// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
)

const preferencesTable = "preferences"

// SQLite takes "?" placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildGetPreferenceQuery(key string) (string, []any, error) {
	return builder.
		Select("value").
		From(preferencesTable).
		Where(sq.Eq{"key": key}).
		Limit(1).
		ToSql()
}

func buildUpsertPreferenceQuery(key, value string) (string, []any, error) {
	return builder.
		Insert(preferencesTable).
		Columns("key", "value", "updated_at").
		Values(key, value, sq.Expr("CURRENT_TIMESTAMP")).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeletePreferenceQuery(key string) (string, []any, error) {
	return builder.
		Delete(preferencesTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
