package password_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/startnet-api/pkg/password"
)

func TestHash_UsaCost10YSalt(t *testing.T) {
	h1, err := password.Hash("supersecret")
	require.NoError(t, err)
	h2, err := password.Hash("supersecret")
	require.NoError(t, err)

	assert.NotEqual(t, h1, h2)
	assert.NotContains(t, h1, "supersecret")

	cost, err := bcrypt.Cost([]byte(h1))
	require.NoError(t, err)
	assert.Equal(t, password.Cost, cost)
}

func TestVerify(t *testing.T) {
	h, err := password.Hash("supersecret")
	require.NoError(t, err)

	ok, err := password.Verify(h, "supersecret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = password.Verify(h, "otra-cosa")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = password.Verify("no-es-hash", "x")
	assert.Error(t, err)
}

func TestValidatePolicy(t *testing.T) {
	assert.ErrorIs(t, password.ValidatePolicy("1234567"), password.ErrTooShort)
	assert.NoError(t, password.ValidatePolicy("12345678"))
	assert.ErrorIs(t, password.ValidatePolicy(strings.Repeat("x", 73)), password.ErrTooLong)
}
