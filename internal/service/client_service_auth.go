// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/shop-panel/internal/adapter"
	"github.com/MKhiriev/shop-panel/internal/logger"
	"github.com/MKhiriev/shop-panel/internal/store"
	"github.com/MKhiriev/shop-panel/internal/validators"
	"github.com/MKhiriev/shop-panel/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.ShopAdapter
	validator  validators.Validator
	logger     *logger.Logger
}

// NewClientAuthService constructs the Auth Resolver over the local stores
// and the REST adapter.
func NewClientAuthService(localStore *store.ClientStorages, shopAdapter adapter.ShopAdapter, validator validators.Validator, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		localStore: localStore,
		adapter:    shopAdapter,
		validator:  validator,
		logger:     logger,
	}
}

func (a *clientAuthService) Login(ctx context.Context, creds models.Credentials) (models.Session, error) {
	log := a.logger.With().Str("func", "clientAuthService.Login").Logger()

	creds.Email = strings.TrimSpace(creds.Email)
	if err := a.validator.Validate(ctx, creds); err != nil {
		return models.Session{}, err
	}

	user, err := a.adapter.Login(ctx, creds)
	if err != nil {
		// the dedicated endpoint is optional on the server side
		log.Debug().Err(err).Msg("auth endpoint unavailable, scanning users")

		user, err = a.findUser(ctx, creds)
		if err != nil {
			return models.Session{}, err
		}
	}

	a.rememberEmail(ctx, creds)

	session := models.NewSession(user)
	if err = a.localStore.Session.Save(ctx, session); err != nil {
		log.Err(err).Msg("error saving session")
		return models.Session{}, fmt.Errorf("save session: %w", err)
	}

	log.Info().Int64("user_id", session.ID).Msg("logged in")
	return session, nil
}

// findUser scans the user collection; the first match wins.
func (a *clientAuthService) findUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := a.logger.With().Str("func", "clientAuthService.findUser").Logger()

	users, err := a.adapter.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("error fetching users for credential scan")
		return models.User{}, fmt.Errorf("%w: %w", ErrServerUnreachable, err)
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, creds.Email) && u.Password == creds.Password {
			return u, nil
		}
	}

	log.Info().Int("scanned", len(users)).Msg("no user matches the credentials")
	return models.User{}, ErrCredentialMismatch
}

// rememberEmail is best effort: a broken preference store must not fail an
// otherwise successful login.
func (a *clientAuthService) rememberEmail(ctx context.Context, creds models.Credentials) {
	var err error
	if creds.Remember {
		err = a.localStore.Preferences.Set(ctx, store.RememberedEmailKey, creds.Email)
	} else {
		err = a.localStore.Preferences.Delete(ctx, store.RememberedEmailKey)
	}

	if err != nil {
		a.logger.Warn().Err(err).Str("func", "clientAuthService.rememberEmail").Bool("remember", creds.Remember).Msg("remembered email not updated")
	}
}

func (a *clientAuthService) ValidateCredentials(ctx context.Context, creds models.Credentials, fields ...string) error {
	creds.Email = strings.TrimSpace(creds.Email)
	return a.validator.Validate(ctx, creds, fields...)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.localStore.Session.Load(ctx)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

func (a *clientAuthService) RememberedEmail(ctx context.Context) (string, error) {
	email, err := a.localStore.Preferences.Get(ctx, store.RememberedEmailKey)
	if errors.Is(err, store.ErrPreferenceNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load remembered email: %w", err)
	}
	return email, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.logger.Info().Str("func", "clientAuthService.Logout").Msg("logging out")
	return a.localStore.Session.Clear(ctx)
}
