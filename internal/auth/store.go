package auth

import (
	"context"
	"sync"

	"maison-storefront/internal/httpx"
	"maison-storefront/internal/logger"
	"maison-storefront/internal/storage"

	"go.uber.org/zap"
)

// SessionKey names the client-storage entry holding the current session.
const SessionKey = "maison-auth"

const loginFallback = "Invalid email or password."

// Store holds the current admin identity. Anonymous until a successful
// login; the session persists across restarts under SessionKey.
type Store struct {
	mu    sync.Mutex
	svc   Service
	state *storage.Store

	currentUser *AdminUser
	loginError  string
}

// NewStore creates the auth store and restores a prior session if one
// was persisted.
func NewStore(svc Service, state *storage.Store) *Store {
	s := &Store{svc: svc, state: state}

	var user AdminUser
	found, err := state.Load(SessionKey, &user)
	if err != nil {
		logger.Named("auth").Warn("Failed to restore admin session", zap.Error(err))
	} else if found {
		s.currentUser = &user
	}

	return s
}

// Login delegates to the auth service. Returns true and clears any prior
// error on success; returns false with a normalized login error otherwise.
func (s *Store) Login(ctx context.Context, email, password string) bool {
	user, err := s.svc.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.loginError = httpx.ErrorMessage(err, loginFallback)
		logger.Named("auth").Warn("Login failed", zap.String("email", email))
		return false
	}

	s.currentUser = user
	s.loginError = ""
	s.persistSession()

	logger.Named("auth").Info("Admin logged in",
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)),
	)
	return true
}

// Logout clears the current user and error unconditionally.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.currentUser = nil
	s.loginError = ""
	s.persistSession()
}

func (s *Store) CurrentUser() *AdminUser {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.currentUser == nil {
		return nil
	}
	user := *s.currentUser
	return &user
}

func (s *Store) LoginError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loginError
}

// persistSession expects s.mu held.
func (s *Store) persistSession() {
	if s.currentUser == nil {
		if err := s.state.Delete(SessionKey); err != nil {
			logger.Named("auth").Warn("Failed to clear persisted session", zap.Error(err))
		}
		return
	}
	if err := s.state.Save(SessionKey, s.currentUser); err != nil {
		logger.Named("auth").Warn("Failed to persist session", zap.Error(err))
	}
}
