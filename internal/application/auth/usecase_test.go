package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greenroad/licorera-api/internal/application/auth"
	"github.com/greenroad/licorera-api/internal/application/dto"
	"github.com/greenroad/licorera-api/internal/domain"
	"github.com/greenroad/licorera-api/internal/infrastructure/memory"
	pkgjwt "github.com/greenroad/licorera-api/pkg/jwt"
)

const (
	secret   = "secret-de-pruebas"
	username = "admin"
	password = "greenroad123"
)

func newUseCase(t *testing.T) (*auth.AuthUseCase, *memory.SessionStore) {
	t.Helper()
	store := memory.NewSessionStore()
	uc, err := auth.NewAuthUseCase(store, auth.Config{
		AdminUsername: username,
		AdminPassword: password,
		SessionTTL:    time.Hour,
		JWT: auth.JWTConfig{
			Secret:     secret,
			ExpMinutes: 60,
			Issuer:     "licorera-api-test",
		},
	})
	require.NoError(t, err)
	return uc, store
}

func TestLogin_Correcto(t *testing.T) {
	uc, store := newUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, username, out.Session.Username)
	assert.Equal(t, "admin", out.Session.Role)
	assert.True(t, out.Session.ExpiresAt.After(time.Now()))

	// El token referencia una sesión viva del store
	sessionID, gotUser, gotRole, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, username, gotUser)
	assert.Equal(t, "admin", gotRole)

	sess, err := store.Get(sessionID)
	require.NoError(t, err)
	require.NotNil(t, sess)
	assert.Equal(t, username, sess.Username)
}

// Toda credencial distinta al par configurado falla con el mismo error
// genérico y no deja rastro en el store.
func TestLogin_CredencialInvalidaNoCreaSesion(t *testing.T) {
	uc, _ := newUseCase(t)

	cases := []dto.LoginRequest{
		{Username: username, Password: "otra"},
		{Username: "otro", Password: password},
		{Username: "Admin", Password: password},        // sensible a mayúsculas
		{Username: username, Password: "Greenroad123"}, // sensible a mayúsculas
		{Username: "", Password: ""},
	}

	for _, in := range cases {
		out, err := uc.Login(in)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials,
			"todo desajuste produce el mismo error genérico")
	}
}

func TestSession_RestauraEstado(t *testing.T) {
	uc, _ := newUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	sessionID, _, _, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)

	restored, err := uc.Session(sessionID)
	require.NoError(t, err)
	assert.Equal(t, out.Session, *restored,
		"la restauración reproduce exactamente el estado del login")
}

func TestLogout_DestruyeLaSesion(t *testing.T) {
	uc, _ := newUseCase(t)

	out, err := uc.Login(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	sessionID, _, _, err := pkgjwt.Parse(secret, out.Token)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(sessionID))

	_, err = uc.Session(sessionID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// Cerrar una sesión ya cerrada no es error
	assert.NoError(t, uc.Logout(sessionID))
}

// Cada login crea una sesión independiente; cerrar una no afecta a la otra.
func TestLogin_SesionesIndependientes(t *testing.T) {
	uc, _ := newUseCase(t)

	first, err := uc.Login(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)
	second, err := uc.Login(dto.LoginRequest{Username: username, Password: password})
	require.NoError(t, err)

	firstID, _, _, err := pkgjwt.Parse(secret, first.Token)
	require.NoError(t, err)
	secondID, _, _, err := pkgjwt.Parse(secret, second.Token)
	require.NoError(t, err)
	require.NotEqual(t, firstID, secondID)

	require.NoError(t, uc.Logout(firstID))

	_, err = uc.Session(firstID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	_, err = uc.Session(secondID)
	assert.NoError(t, err)
}
