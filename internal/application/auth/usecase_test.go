package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/internal/application/auth"
	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/infrastructure/memory"
	"github.com/jhoicas/startnet-api/pkg/jwt"
)

const secret = "test-secret"

func newAuth() (*auth.AuthUseCase, *memory.UserRepo) {
	users := memory.NewUserRepository(memory.NewStore())
	return auth.NewAuthUseCase(users, auth.JWTConfig{Secret: secret, ExpMinutes: 60, Issuer: "test"}), users
}

func signup(t *testing.T, uc *auth.AuthUseCase, email, accountType string) *dto.AuthResponse {
	t.Helper()
	out, err := uc.Signup(context.Background(), dto.SignupRequest{
		FullName: "Ana Pérez", Email: email, Password: "supersecret", AccountType: accountType,
	})
	require.NoError(t, err)
	return out
}

func TestSignup_TokenLlevaAccountType(t *testing.T) {
	uc, _ := newAuth()
	for _, at := range []string{"entrepreneur", "investor"} {
		out := signup(t, uc, at+"@x.co", at)

		id, accountType, err := jwt.Parse(secret, out.Token)
		require.NoError(t, err)
		assert.Equal(t, at, accountType)
		assert.Equal(t, out.User.ID, id)
		assert.Equal(t, at, out.User.AccountType)
	}
}

func TestSignup_EmailDuplicadoSinDistinguirMayusculas(t *testing.T) {
	uc, _ := newAuth()
	signup(t, uc, "ana@x.co", "investor")

	_, err := uc.Signup(context.Background(), dto.SignupRequest{
		FullName: "Otra", Email: "  ANA@x.co ", Password: "supersecret", AccountType: "entrepreneur",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignup_CamposFaltantes(t *testing.T) {
	uc, _ := newAuth()
	_, err := uc.Signup(context.Background(), dto.SignupRequest{Email: "a@x.co"})
	require.Error(t, err)

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"fullName", "password", "accountType"}, ve.Missing)
}

func TestSignin(t *testing.T) {
	uc, _ := newAuth()
	signup(t, uc, "ana@x.co", "investor")

	out, err := uc.Signin(context.Background(), dto.SigninRequest{Email: "Ana@X.co", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)

	_, err = uc.Signin(context.Background(), dto.SigninRequest{Email: "ana@x.co", Password: "incorrecta"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = uc.Signin(context.Background(), dto.SigninRequest{Email: "nadie@x.co", Password: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestChangePassword_ActualIncorrectaNoModificaHash(t *testing.T) {
	uc, users := newAuth()
	out := signup(t, uc, "ana@x.co", "investor")
	before, err := users.GetByID(context.Background(), out.User.ID)
	require.NoError(t, err)

	err = uc.ChangePassword(context.Background(), out.User.ID, dto.ChangePasswordRequest{
		CurrentPassword: "incorrecta", NewPassword: "nuevaclave123",
	})
	assert.ErrorIs(t, err, domain.ErrIncorrectPassword)

	after, err := users.GetByID(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, before.PasswordHash, after.PasswordHash)
}

func TestChangePassword_Reglas(t *testing.T) {
	uc, _ := newAuth()
	out := signup(t, uc, "ana@x.co", "investor")
	ctx := context.Background()

	err := uc.ChangePassword(ctx, out.User.ID, dto.ChangePasswordRequest{CurrentPassword: "supersecret"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.ChangePassword(ctx, out.User.ID, dto.ChangePasswordRequest{CurrentPassword: "supersecret", NewPassword: "corta"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = uc.ChangePassword(ctx, "no-existe", dto.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "nuevaclave123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	require.NoError(t, uc.ChangePassword(ctx, out.User.ID, dto.ChangePasswordRequest{CurrentPassword: "supersecret", NewPassword: "nuevaclave123"}))
	_, err = uc.Signin(ctx, dto.SigninRequest{Email: "ana@x.co", Password: "nuevaclave123"})
	assert.NoError(t, err)
}

func TestMe(t *testing.T) {
	uc, _ := newAuth()
	out := signup(t, uc, "ana@x.co", "entrepreneur")

	me, err := uc.Me(context.Background(), out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ana@x.co", me.Email)
	assert.Equal(t, "Ana Pérez", me.FullName)

	_, err = uc.Me(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
