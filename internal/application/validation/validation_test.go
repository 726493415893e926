package validation_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/validation"
	"github.com/jhoicas/startnet-api/internal/domain"
)

func validStartup() dto.CreateStartupRequest {
	goal := decimal.NewFromInt(500000)
	return dto.CreateStartupRequest{
		StartupName: "Acme",
		Industry:    "Tech",
		FundingGoal: &goal,
		Description: "...",
		Address:     "...",
		Email:       "a@b.com",
		Mobile:      "123",
		Team:        []dto.TeamMemberDTO{{Name: "A", Role: "CEO", Email: "a@b.com"}},
	}
}

func TestStruct_StartupValida(t *testing.T) {
	assert.NoError(t, validation.Struct(validStartup()))
}

func TestStruct_CamposFaltantesConNombreJSON(t *testing.T) {
	in := validStartup()
	in.StartupName = ""
	in.FundingGoal = nil
	in.Mobile = ""

	err := validation.Struct(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.ElementsMatch(t, []string{"startupName", "fundingGoal", "mobile"}, ve.Missing)
}

func TestStruct_EquipoVacio(t *testing.T) {
	in := validStartup()
	in.Team = []dto.TeamMemberDTO{}

	var ve *domain.ValidationError
	require.True(t, errors.As(validation.Struct(in), &ve))
	assert.Contains(t, ve.Missing, "team")

	in.Team = nil
	require.True(t, errors.As(validation.Struct(in), &ve))
	assert.Contains(t, ve.Missing, "team")
}

func TestStruct_IntegranteIncompleto(t *testing.T) {
	in := validStartup()
	in.Team = []dto.TeamMemberDTO{{Name: "A"}}

	var ve *domain.ValidationError
	require.True(t, errors.As(validation.Struct(in), &ve))
	assert.ElementsMatch(t, []string{"team[0].role", "team[0].email"}, ve.Missing)
}

func TestStruct_EmbebidoSinPrefijo(t *testing.T) {
	bad := "no-es-email"
	in := dto.UpdateEntrepreneurProfileRequest{}
	in.Email = &bad

	var ve *domain.ValidationError
	require.True(t, errors.As(validation.Struct(in), &ve))
	assert.Equal(t, []string{"email"}, ve.Invalid)
	assert.Equal(t, "email must be a valid email", ve.Error())
}

func TestStruct_SignupPasswordCorta(t *testing.T) {
	err := validation.Struct(dto.SignupRequest{FullName: "Ana", Email: "ana@x.co", Password: "short", AccountType: "investor"})
	require.Error(t, err)
	assert.Equal(t, "password must be at least 8 characters long", err.Error())

	err = validation.Struct(dto.SignupRequest{FullName: "Ana", Email: "ana@x.co", Password: "longenough", AccountType: "admin"})
	require.Error(t, err)
	assert.Equal(t, "accountType must be one of: entrepreneur, investor", err.Error())
}
