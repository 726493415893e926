package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/jhoicas/startnet-api/internal/application/auth"
	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/usecase"
	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/infrastructure/blob"
	"github.com/jhoicas/startnet-api/internal/infrastructure/storage"
	"github.com/jhoicas/startnet-api/pkg/logger"
)

// seedPassword contraseña de todas las cuentas demo.
const seedPassword = "startnet-demo"

func newSeedCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Carga cuentas, perfiles y startups de demostración",
		RunE: func(cmd *cobra.Command, _ []string) error {
			repos, err := storage.Open(cmd.Context(), a.cfg, a.log)
			if err != nil {
				return err
			}
			defer repos.Close()
			n, err := seedDemo(cmd.Context(), repos, a.log)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d cuentas demo creadas (password %q)\n", n, seedPassword)
			return nil
		},
	}
}

type demoInvestor struct {
	name, email, location, portfolio string
	min, max                         int64
}

var demoInvestors = []demoInvestor{
	{"Laura Gómez", "laura@demo.startnet", "Bogotá", "Under $100K", 5000, 50000},
	{"Andes Capital", "fondo@demo.startnet", "Medellín", "$1M - $5M", 100000, 1000000},
}

type demoFounder struct {
	name, email, startup, industry, description string
	goal                                        int64
}

var demoFounders = []demoFounder{
	{"Camila Ruiz", "camila@demo.startnet", "AgroSense", "AgriTech", "Sensores de humedad para cultivos pequeños", 250000},
	{"Mateo Díaz", "mateo@demo.startnet", "PagoFácil", "FinTech", "Cobros por QR para tenderos", 500000},
}

// seedDemo crea las cuentas demo con los mismos casos de uso que la API; las que ya existen se omiten.
func seedDemo(ctx context.Context, repos *storage.Repositories, log *logger.Logger) (int, error) {
	// los datos demo no suben imágenes
	blobs := blob.NewMemoryStorage()
	authUC := auth.NewAuthUseCase(repos.Users, auth.JWTConfig{Secret: "seed", ExpMinutes: 1})
	investorUC := usecase.NewInvestorProfileUseCase(repos.Users, repos.Investors, blobs, usecase.UploadConfig{})
	entrepreneurUC := usecase.NewEntrepreneurProfileUseCase(repos.Users, repos.Entrepreneurs, blobs, usecase.UploadConfig{})
	startupUC := usecase.NewStartupUseCase(repos.Startups, blobs, nil, usecase.UploadConfig{})

	created := 0
	for _, d := range demoInvestors {
		res, err := signup(ctx, authUC, d.name, d.email, entity.AccountInvestor)
		if err != nil {
			return created, err
		}
		if res == nil {
			log.Info().Str("email", d.email).Msg("cuenta demo ya existe")
			continue
		}
		lo, hi := decimal.NewFromInt(d.min), decimal.NewFromInt(d.max)
		_, err = investorUC.Update(ctx, res.User.ID, dto.UpdateInvestorProfileRequest{
			ProfilePatch: dto.ProfilePatch{
				FullName: &d.name,
				Email:    &d.email,
				Location: &d.location,
				Skills:   []entity.Skill{{Name: "Venture Capital"}},
			},
			InvestmentPreferences: []string{"AgriTech", "FinTech"},
			PortfolioSize:         &d.portfolio,
			InvestmentRange:       &dto.InvestmentRangeDTO{Min: &lo, Max: &hi},
		})
		if err != nil {
			return created, fmt.Errorf("seed: perfil %s: %w", d.email, err)
		}
		created++
	}

	for _, d := range demoFounders {
		res, err := signup(ctx, authUC, d.name, d.email, entity.AccountEntrepreneur)
		if err != nil {
			return created, err
		}
		if res == nil {
			log.Info().Str("email", d.email).Msg("cuenta demo ya existe")
			continue
		}
		if _, err := entrepreneurUC.Update(ctx, res.User.ID, dto.UpdateEntrepreneurProfileRequest{
			ProfilePatch: dto.ProfilePatch{FullName: &d.name, Email: &d.email},
			Expertise:    []string{d.industry},
		}); err != nil {
			return created, fmt.Errorf("seed: perfil %s: %w", d.email, err)
		}
		goal := decimal.NewFromInt(d.goal)
		if _, err := startupUC.Create(ctx, res.User.ID, dto.CreateStartupRequest{
			StartupName: d.startup,
			Industry:    d.industry,
			Description: d.description,
			Address:     "Colombia",
			Email:       d.email,
			Mobile:      "+57 300 000 0000",
			FundingGoal: &goal,
			Team:        []dto.TeamMemberDTO{{Name: d.name, Role: "CEO", Email: d.email}},
		}); err != nil {
			return created, fmt.Errorf("seed: startup %s: %w", d.startup, err)
		}
		created++
	}
	return created, nil
}

// signup devuelve nil, nil si el email ya está registrado.
func signup(ctx context.Context, uc *auth.AuthUseCase, name, email, accountType string) (*dto.AuthResponse, error) {
	res, err := uc.Signup(ctx, dto.SignupRequest{
		FullName:    name,
		Email:       email,
		Password:    seedPassword,
		AccountType: accountType,
	})
	if errors.Is(err, domain.ErrEmailAlreadyExists) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("seed: signup %s: %w", email, err)
	}
	return res, nil
}
