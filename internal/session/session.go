package session

import (
	"errors"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"tareas/pkg/clienterr"
)

// Claims is the payload the backend puts in its tokens.
type Claims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

var ErrTokenExpired = errors.New("session token expired")

// Session holds the bearer token and the identity derived from it. It is
// constructed once at startup and injected wherever identity is needed;
// there is no ambient singleton.
type Session struct {
	mu       sync.RWMutex
	store    TokenStore
	onLogout func()

	token         string
	userID        int64
	email         string
	authenticated bool
}

// New restores a session from the persisted token, if any. An expired or
// malformed token is discarded and logged; the user simply is not logged
// in, no error surfaces.
func New(store TokenStore, onLogout func()) *Session {
	s := &Session{store: store, onLogout: onLogout}

	token, err := store.Load()
	if err != nil {
		zap.L().Warn("failed to read persisted token", zap.Error(err))
		return s
	}
	if token == "" {
		return s
	}

	claims, err := decode(token)
	if err != nil {
		zap.L().Error("discarding persisted token", zap.Error(err))
		if clearErr := store.Clear(); clearErr != nil {
			zap.L().Warn("failed to clear persisted token", zap.Error(clearErr))
		}
		return s
	}

	s.apply(token, claims)
	return s
}

// Login decodes and stores a freshly issued token, then persists it.
func (s *Session) Login(token string) error {
	claims, err := decode(token)
	if err != nil {
		return err
	}

	s.apply(token, claims)

	if err := s.store.Save(token); err != nil {
		zap.L().Warn("failed to persist token", zap.Error(err))
	}
	return nil
}

// Logout clears all session state and the persisted token, then hands
// control back to the login entry point via the injected callback.
func (s *Session) Logout() {
	s.mu.Lock()
	s.token = ""
	s.userID = 0
	s.email = ""
	s.authenticated = false
	s.mu.Unlock()

	if err := s.store.Clear(); err != nil {
		zap.L().Warn("failed to clear persisted token", zap.Error(err))
	}
	if s.onLogout != nil {
		s.onLogout()
	}
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) UserID() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userID
}

func (s *Session) Email() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.email
}

func (s *Session) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

func (s *Session) apply(token string, claims *Claims) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.userID = claims.UserID
	s.email = claims.Email
	s.authenticated = true
}

// decode extracts the claims without verifying the signature: the token
// was issued by the backend and the client has no key material. Expiry is
// still enforced.
func decode(token string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, clienterr.DecodeError{Err: err}
	}
	if claims.ExpiresAt != nil && !claims.ExpiresAt.After(time.Now()) {
		return nil, ErrTokenExpired
	}
	return claims, nil
}
