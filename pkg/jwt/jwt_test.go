package jwt_test

import (
	"strings"
	"testing"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse_RoundTrip(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "investor", "startnet-api", 60)
	require.NoError(t, err)

	id, accountType, err := jwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
	assert.Equal(t, "investor", accountType)
}

func TestGenerate_PayloadAnidaUser(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "entrepreneur", "startnet-api", 60)
	require.NoError(t, err)

	claims := &jwt.Claims{}
	_, _, err = gojwt.NewParser().ParseUnverified(tok, claims)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.User.ID)
	assert.Equal(t, "entrepreneur", claims.User.AccountType)
	assert.Equal(t, "user-1", claims.Subject)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "investor", "startnet-api", -1)
	require.NoError(t, err)

	_, _, err = jwt.Parse(secret, tok)
	assert.ErrorIs(t, err, jwt.ErrExpired)
}

func TestParse_FirmaIncorrecta(t *testing.T) {
	tok, err := jwt.Generate(secret, "user-1", "investor", "startnet-api", 60)
	require.NoError(t, err)

	_, _, err = jwt.Parse("otro-secret", tok)
	assert.ErrorIs(t, err, jwt.ErrInvalid)
	assert.NotErrorIs(t, err, jwt.ErrExpired)
}

func TestParse_Basura(t *testing.T) {
	_, _, err := jwt.Parse(secret, "no.es.jwt")
	assert.ErrorIs(t, err, jwt.ErrInvalid)

	_, _, err = jwt.Parse(secret, strings.Repeat("a", 10))
	assert.ErrorIs(t, err, jwt.ErrInvalid)
}

func TestSecretVacio(t *testing.T) {
	_, err := jwt.Generate("", "u", "investor", "", 60)
	assert.Error(t, err)
	_, _, err = jwt.Parse("", "x")
	assert.Error(t, err)
}
