package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/ports"
	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

func TestEntrepreneurProfile_UpsertPerezoso(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Eva Ruiz", entity.AccountEntrepreneur)

	_, err := f.entrepreneurs.Get(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	in := dto.UpdateEntrepreneurProfileRequest{Expertise: []string{"SaaS"}}
	in.Bio = ptr("Fundadora")
	first, err := f.entrepreneurs.Update(ctx, u.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Eva Ruiz", first.FullName)
	assert.Equal(t, u.Email, first.Email)
	assert.Equal(t, "Fundadora", first.Bio)

	in = dto.UpdateEntrepreneurProfileRequest{}
	in.Location = ptr("Bogotá")
	second, err := f.entrepreneurs.Update(ctx, u.ID, in)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)
	assert.Equal(t, "Fundadora", second.Bio)
	assert.Equal(t, []string{"SaaS"}, second.Expertise)
	assert.Equal(t, "Bogotá", second.Location)

	require.NoError(t, f.entrepreneurs.Delete(ctx, u.ID))
	_, err = f.entrepreneurs.Get(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	// borrar sin perfil sigue siendo ok
	assert.NoError(t, f.entrepreneurs.Delete(ctx, u.ID))
}

func TestUploadPicture_UsuarioInexistenteNoSubeBlob(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	file := dto.FileUpload{Name: "me.png", ContentType: "image/png", Data: []byte("png")}

	_, err := f.entrepreneurs.UploadPicture(ctx, "no-existe", file)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	_, err = f.investors.UploadPicture(ctx, "no-existe", file)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
	assert.Equal(t, 0, f.blobs.Len())
}

func TestEntrepreneurProfile_RedSocialInvalida(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "Eva", entity.AccountEntrepreneur)

	in := dto.UpdateEntrepreneurProfileRequest{}
	in.SocialMedia = []entity.SocialMedia{{Platform: "MySpace", URL: "http://x"}}
	_, err := f.entrepreneurs.Update(context.Background(), u.ID, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUploadPicture_GuardaSoloURL(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Ivo", entity.AccountInvestor)

	out, err := f.investors.UploadPicture(ctx, u.ID, dto.FileUpload{Name: "me.jpg", ContentType: "image/jpeg", Data: []byte("jpg")})
	require.NoError(t, err)
	prefix := "memory://" + ports.ContainerInvestorPictures + "/profile-picture-" + u.ID + "-"
	assert.True(t, strings.HasPrefix(out.ProfilePicture, prefix), out.ProfilePicture)

	p, err := f.investors.Get(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ProfilePicture, p.ProfilePicture)
	assert.Equal(t, "Ivo", p.FullName)

	e := f.user(t, "Eva", entity.AccountEntrepreneur)
	eout, err := f.entrepreneurs.UploadPicture(ctx, e.ID, dto.FileUpload{ContentType: "image/png", Data: []byte("png")})
	require.NoError(t, err)
	assert.Contains(t, eout.ProfilePicture, ports.ContainerEntrepreneurPictures)
}

func investorWith(t *testing.T, f *fixture, name, location, portfolio string, skills []string, lo, hi int64) string {
	t.Helper()
	u := f.user(t, name, entity.AccountInvestor)
	in := dto.UpdateInvestorProfileRequest{
		PortfolioSize:   ptr(portfolio),
		InvestmentRange: &dto.InvestmentRangeDTO{Min: ptr(decimal.NewFromInt(lo)), Max: ptr(decimal.NewFromInt(hi))},
	}
	in.Location = ptr(location)
	for _, s := range skills {
		in.Skills = append(in.Skills, entity.Skill{Name: s})
	}
	out, err := f.investors.Update(context.Background(), u.ID, in)
	require.NoError(t, err)
	return out.ID
}

func TestInvestorList_ConjuncionDeFiltros(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	match := investorWith(t, f, "Ana", "Madrid", "Under $100K", []string{"FinTech"}, 10000, 50000)
	investorWith(t, f, "Finn", "Lima", "Over $10M", nil, 1000000, 5000000)
	investorWith(t, f, "Bea", "Quito", "Under $100K", []string{"Health"}, 5000, 20000)

	out, err := f.investors.List(ctx, dto.InvestorListQuery{Search: "FIN", PortfolioSize: "Under $100K"})
	require.NoError(t, err)
	require.Len(t, out.Investors, 1)
	assert.Equal(t, match, out.Investors[0].ID)
	assert.Equal(t, int64(1), out.Pagination.Total)
	assert.Equal(t, 10, out.Pagination.Limit)

	out, err = f.investors.List(ctx, dto.InvestorListQuery{PortfolioSize: "All", MinInvestment: "8000", MaxInvestment: "60000"})
	require.NoError(t, err)
	require.Len(t, out.Investors, 1)
	assert.Equal(t, match, out.Investors[0].ID)

	_, err = f.investors.List(ctx, dto.InvestorListQuery{MinInvestment: "mucho"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvestorUpdate_RangoInvertido(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "Ivo", entity.AccountInvestor)
	_, err := f.investors.Update(context.Background(), u.ID, dto.UpdateInvestorProfileRequest{
		InvestmentRange: &dto.InvestmentRangeDTO{Min: ptr(decimal.NewFromInt(10)), Max: ptr(decimal.NewFromInt(5))},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvestorUpdate_RangoFueraDeEscala(t *testing.T) {
	f := newFixture(t)
	u := f.user(t, "Ivo", entity.AccountInvestor)
	ctx := context.Background()

	_, err := f.investors.Update(ctx, u.ID, dto.UpdateInvestorProfileRequest{
		InvestmentRange: &dto.InvestmentRangeDTO{Max: ptr(decimal.RequireFromString("100000000000000000"))},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = f.investors.Update(ctx, u.ID, dto.UpdateInvestorProfileRequest{
		InvestmentRange: &dto.InvestmentRangeDTO{Min: ptr(decimal.RequireFromString("0.001"))},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestInvestorGetByID(t *testing.T) {
	f := newFixture(t)
	id := investorWith(t, f, "Ana", "Madrid", "Under $100K", nil, 1, 2)

	p, err := f.investors.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", p.FullName)

	_, err = f.investors.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDeleteAccount_Cascada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	u := f.user(t, "Eva", entity.AccountEntrepreneur)

	in := dto.UpdateEntrepreneurProfileRequest{}
	in.Bio = ptr("x")
	_, err := f.entrepreneurs.Update(ctx, u.ID, in)
	require.NoError(t, err)
	_, err = f.startups.Create(ctx, u.ID, acme())
	require.NoError(t, err)

	require.NoError(t, f.accounts.DeleteAccount(ctx, u.ID))

	got, err := f.users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
	_, err = f.entrepreneurs.Get(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	mine, err := f.startups.ListByOwner(ctx, u.ID)
	require.NoError(t, err)
	assert.Empty(t, mine)

	assert.ErrorIs(t, f.accounts.DeleteAccount(ctx, u.ID), domain.ErrUserNotFound)
}
