// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/utils"
	"github.com/MKhiriev/shop-panel/models"
)

// memorySessionRepository keeps each client's session as serialized JSON
// under [SessionKey] suffixed with the client's session id, mirroring a
// tab-scoped key/value store. A context without a session id uses the bare
// [SessionKey].
type memorySessionRepository struct {
	mu     sync.RWMutex
	values map[string][]byte
	logger *logger.Logger
}

// NewMemorySessionRepository constructs an empty in-memory [SessionRepository].
func NewMemorySessionRepository(logger *logger.Logger) SessionRepository {
	return &memorySessionRepository{
		values: make(map[string][]byte),
		logger: logger,
	}
}

func (m *memorySessionRepository) Save(ctx context.Context, session models.Session) error {
	raw, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	m.mu.Lock()
	m.values[sessionKey(ctx)] = raw
	m.mu.Unlock()

	m.logger.Debug().Str("func", "memorySessionRepository.Save").Int64("user_id", session.ID).Msg("session saved")
	return nil
}

func (m *memorySessionRepository) Load(ctx context.Context) (models.Session, error) {
	m.mu.RLock()
	raw, ok := m.values[sessionKey(ctx)]
	m.mu.RUnlock()

	if !ok {
		return models.Session{}, ErrSessionNotFound
	}

	var session models.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		return models.Session{}, fmt.Errorf("decode session: %w", err)
	}

	return session, nil
}

func (m *memorySessionRepository) Clear(ctx context.Context) error {
	m.mu.Lock()
	delete(m.values, sessionKey(ctx))
	m.mu.Unlock()

	m.logger.Debug().Str("func", "memorySessionRepository.Clear").Msg("session cleared")
	return nil
}

func sessionKey(ctx context.Context) string {
	if id, ok := utils.SessionIDFromContext(ctx); ok {
		return SessionKey + ":" + id
	}
	return SessionKey
}
