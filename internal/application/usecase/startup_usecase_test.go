package usecase_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/ports"
	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

func acme() dto.CreateStartupRequest {
	return dto.CreateStartupRequest{
		StartupName: "Acme",
		Industry:    "Tech",
		FundingGoal: ptr(decimal.NewFromInt(500000)),
		Description: "...",
		Address:     "...",
		Email:       "a@b.com",
		Mobile:      "123",
		Team:        []dto.TeamMemberDTO{{Name: "A", Role: "CEO", Email: "a@b.com"}},
	}
}

func TestStartupCreate_RaisedSoFarEnCero(t *testing.T) {
	f := newFixture(t)
	owner := f.user(t, "Eva", entity.AccountEntrepreneur)

	out, err := f.startups.Create(context.Background(), owner.ID, acme())
	require.NoError(t, err)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, owner.ID, out.User)
	assert.True(t, out.RaisedSoFar.IsZero())
	assert.True(t, out.FundingGoal.Equal(decimal.NewFromInt(500000)))
}

func TestStartupCreate_RechazaFaltantesYEquipoVacio(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	in := acme()
	in.Address = ""
	_, err := f.startups.Create(ctx, "u", in)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"address"}, ve.Missing)

	in = acme()
	in.Team = []dto.TeamMemberDTO{}
	_, err = f.startups.Create(ctx, "u", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	in = acme()
	in.FundingGoal = ptr(decimal.NewFromInt(-1))
	_, err = f.startups.Create(ctx, "u", in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestStartupCreate_MontosFueraDeRango(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "Eva", entity.AccountEntrepreneur)

	in := acme()
	in.FundingGoal = ptr(decimal.RequireFromString("10000000000000000"))
	_, err := f.startups.Create(ctx, owner.ID, in)
	var ve *domain.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"fundingGoal"}, ve.Invalid)

	in = acme()
	in.AnnualRevenue = ptr(decimal.RequireFromString("12.345"))
	_, err = f.startups.Create(ctx, owner.ID, in)
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, []string{"annualRevenue"}, ve.Invalid)
	assert.Contains(t, err.Error(), "at most 2 decimal places")

	in = acme()
	in.FundingGoal = ptr(decimal.RequireFromString("9999999999999999.99"))
	in.AnnualRevenue = ptr(decimal.RequireFromString("12.30"))
	_, err = f.startups.Create(ctx, owner.ID, in)
	require.NoError(t, err)
}

func TestStartupUpdateDelete_SoloDueno(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "Eva", entity.AccountEntrepreneur)
	other := f.user(t, "Mal", entity.AccountEntrepreneur)

	created, err := f.startups.Create(ctx, owner.ID, acme())
	require.NoError(t, err)

	_, err = f.startups.Update(ctx, created.ID, other.ID, dto.UpdateStartupRequest{StartupName: ptr("Hijack")})
	assert.ErrorIs(t, err, domain.ErrForbidden)
	assert.ErrorIs(t, f.startups.Delete(ctx, created.ID, other.ID), domain.ErrForbidden)

	updated, err := f.startups.Update(ctx, created.ID, owner.ID, dto.UpdateStartupRequest{
		StartupName: ptr("Acme 2"),
		RaisedSoFar: ptr(decimal.NewFromInt(1000)),
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme 2", updated.StartupName)
	assert.Equal(t, "Tech", updated.Industry)

	mine, err := f.startups.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Acme 2", mine[0].StartupName)
	assert.True(t, mine[0].RaisedSoFar.Equal(decimal.NewFromInt(1000)))

	require.NoError(t, f.startups.Delete(ctx, created.ID, owner.ID))
	mine, err = f.startups.ListByOwner(ctx, owner.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	_, err = f.startups.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, f.startups.Delete(ctx, created.ID, owner.ID), domain.ErrNotFound)
}

func TestStartupListPublic_FiltrosYPaginacion(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "Eva", entity.AccountEntrepreneur)

	for i, ind := range []string{"Tech", "Health", "Tech", "FinTech"} {
		in := acme()
		in.Industry = ind
		in.StartupName = []string{"Alpha", "Beta", "Gamma", "Delta"}[i]
		_, err := f.startups.Create(ctx, owner.ID, in)
		require.NoError(t, err)
	}

	out, err := f.startups.ListPublic(ctx, dto.StartupListQuery{Industry: "Tech"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.Pagination.Total)
	assert.Equal(t, 9, out.Pagination.Limit)

	out, err = f.startups.ListPublic(ctx, dto.StartupListQuery{Search: "tech", Industry: "All"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.Pagination.Total)

	out, err = f.startups.ListPublic(ctx, dto.StartupListQuery{PageRequest: dto.PageRequest{Page: 2, Limit: 3}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Pagination.Total)
	assert.Equal(t, int64(2), out.Pagination.Pages)
	assert.Len(t, out.Startups, 1)

	out, err = f.startups.ListPublic(ctx, dto.StartupListQuery{PageRequest: dto.PageRequest{Page: math.MaxInt64/50 + 1, Limit: 100}})
	require.NoError(t, err)
	assert.Equal(t, int64(4), out.Pagination.Total)
	assert.Empty(t, out.Startups)

	inv, err := f.investors.List(ctx, dto.InvestorListQuery{PageRequest: dto.PageRequest{Page: math.MaxInt, Limit: 7}})
	require.NoError(t, err)
	assert.Empty(t, inv.Investors)
}

func TestStartupUploadLogo(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	out, err := f.startups.UploadLogo(ctx, dto.FileUpload{Name: "../mi logo.png", ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)
	assert.Contains(t, out.LogoURL, "memory://"+ports.ContainerStartupLogos+"/startup-logo-")
	assert.Contains(t, out.LogoURL, "-mi-logo.png")

	_, err = f.startups.UploadLogo(ctx, dto.FileUpload{Name: "x.txt", ContentType: "text/plain", Data: []byte("x")})
	assert.ErrorIs(t, err, domain.ErrUnsupportedMedia)

	_, err = f.startups.UploadLogo(ctx, dto.FileUpload{Name: "x.png", ContentType: "image/png"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.startups.UploadLogo(ctx, dto.FileUpload{Name: "x.png", ContentType: "image/png", Data: make([]byte, 2048)})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 1, f.blobs.Len())
}

func TestStartupSheet(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "Eva", entity.AccountEntrepreneur)
	created, err := f.startups.Create(ctx, owner.ID, acme())
	require.NoError(t, err)

	pdf, name, err := f.startups.Sheet(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "startup-Acme.pdf", name)
	assert.Equal(t, "%PDF-Acme", string(pdf))

	_, _, err = f.startups.Sheet(ctx, "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
