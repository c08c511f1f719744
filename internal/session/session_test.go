package session_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"tareas/internal/session"
	"tareas/pkg/clienterr"
)

func mintToken(t *testing.T, userID int64, email string, expiresAt time.Time) string {
	t.Helper()

	claims := jwt.MapClaims{
		"id":    userID,
		"email": email,
		"exp":   expiresAt.Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return signed
}

func tokenFile(t *testing.T) session.TokenFile {
	t.Helper()
	return session.TokenFile{Path: filepath.Join(t.TempDir(), ".tareas", "token")}
}

func TestNew_NoPersistedToken(t *testing.T) {
	sess := session.New(tokenFile(t), nil)

	require.False(t, sess.IsAuthenticated())
	require.Empty(t, sess.Token())
	require.Zero(t, sess.UserID())
}

func TestNew_RestoresValidToken(t *testing.T) {
	store := tokenFile(t)
	token := mintToken(t, 42, "ana@example.com", time.Now().Add(time.Hour))
	require.NoError(t, store.Save(token))

	sess := session.New(store, nil)

	require.True(t, sess.IsAuthenticated())
	require.Equal(t, token, sess.Token())
	require.Equal(t, int64(42), sess.UserID())
	require.Equal(t, "ana@example.com", sess.Email())
}

func TestNew_DiscardsExpiredToken(t *testing.T) {
	store := tokenFile(t)
	token := mintToken(t, 42, "ana@example.com", time.Now().Add(-time.Minute))
	require.NoError(t, store.Save(token))

	sess := session.New(store, nil)

	require.False(t, sess.IsAuthenticated())
	require.Empty(t, sess.Token())

	// The stale token must not survive on disk.
	persisted, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestNew_DiscardsMalformedToken(t *testing.T) {
	store := tokenFile(t)
	require.NoError(t, store.Save("not-a-jwt"))

	sess := session.New(store, nil)

	require.False(t, sess.IsAuthenticated())

	persisted, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, persisted)
}

func TestLogin_PersistsToken(t *testing.T) {
	store := tokenFile(t)
	sess := session.New(store, nil)

	token := mintToken(t, 7, "luis@example.com", time.Now().Add(time.Hour))
	require.NoError(t, sess.Login(token))

	require.True(t, sess.IsAuthenticated())
	require.Equal(t, int64(7), sess.UserID())

	persisted, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, token, persisted)
}

func TestLogin_RejectsMalformedToken(t *testing.T) {
	sess := session.New(tokenFile(t), nil)

	err := sess.Login("garbage")

	var decodeErr clienterr.DecodeError
	require.ErrorAs(t, err, &decodeErr)
	require.False(t, sess.IsAuthenticated())
}

func TestLogin_RejectsExpiredToken(t *testing.T) {
	sess := session.New(tokenFile(t), nil)

	err := sess.Login(mintToken(t, 7, "luis@example.com", time.Now().Add(-time.Hour)))
	require.ErrorIs(t, err, session.ErrTokenExpired)
	require.False(t, sess.IsAuthenticated())
}

func TestLogout_ClearsEverythingAndNavigates(t *testing.T) {
	store := tokenFile(t)
	navigated := false
	sess := session.New(store, func() { navigated = true })

	require.NoError(t, sess.Login(mintToken(t, 7, "luis@example.com", time.Now().Add(time.Hour))))
	sess.Logout()

	require.False(t, sess.IsAuthenticated())
	require.Empty(t, sess.Token())
	require.Zero(t, sess.UserID())
	require.True(t, navigated)

	_, err := os.Stat(store.Path)
	require.True(t, errors.Is(err, os.ErrNotExist))
}
