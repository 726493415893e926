package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

// ProfilePatch campos comunes editables. nil = conservar el valor guardado.
type ProfilePatch struct {
	FullName       *string              `json:"fullName" validate:"omitempty,max=100"`
	Email          *string              `json:"email" validate:"omitempty,email"`
	Phone          *string              `json:"phone" validate:"omitempty,max=30"`
	Location       *string              `json:"location" validate:"omitempty,max=100"`
	Bio            *string              `json:"bio" validate:"omitempty,max=1000"`
	ProfilePicture *string              `json:"profilePicture" validate:"omitempty,max=500"`
	SocialMedia    []entity.SocialMedia `json:"socialMedia" validate:"omitempty,dive"`
	Skills         []entity.Skill       `json:"skills" validate:"omitempty,dive"`
}

// UpdateEntrepreneurProfileRequest PUT /api/profile.
type UpdateEntrepreneurProfileRequest struct {
	ProfilePatch
	Expertise    []string `json:"expertise" validate:"omitempty,dive,max=100"`
	Achievements []string `json:"achievements" validate:"omitempty,dive,max=300"`
}

// InvestmentRangeDTO rango de inversión en JSON; extremos opcionales.
type InvestmentRangeDTO struct {
	Min *decimal.Decimal `json:"min,omitempty"`
	Max *decimal.Decimal `json:"max,omitempty"`
}

// UpdateInvestorProfileRequest PUT /api/investor/profile.
type UpdateInvestorProfileRequest struct {
	ProfilePatch
	InvestmentPreferences []string            `json:"investmentPreferences" validate:"omitempty,dive,max=100"`
	PortfolioSize         *string             `json:"portfolioSize" validate:"omitempty,max=50"`
	InvestmentRange       *InvestmentRangeDTO `json:"investmentRange"`
}

// ProfileResponse campos comunes de salida.
type ProfileResponse struct {
	ID             string               `json:"_id"`
	User           string               `json:"user"`
	FullName       string               `json:"fullName"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	Location       string               `json:"location"`
	Bio            string               `json:"bio"`
	ProfilePicture string               `json:"profilePicture"`
	SocialMedia    []entity.SocialMedia `json:"socialMedia"`
	Skills         []entity.Skill       `json:"skills"`
	CreatedAt      time.Time            `json:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt"`
}

// EntrepreneurProfileResponse salida del perfil de emprendedor.
type EntrepreneurProfileResponse struct {
	ProfileResponse
	Expertise    []string `json:"expertise"`
	Achievements []string `json:"achievements"`
}

// InvestorProfileResponse salida completa del perfil de inversionista.
type InvestorProfileResponse struct {
	ProfileResponse
	InvestmentPreferences []string           `json:"investmentPreferences"`
	PortfolioSize         string             `json:"portfolioSize"`
	InvestmentRange       InvestmentRangeDTO `json:"investmentRange"`
}

// InvestorSummary proyección usada en el listado público.
type InvestorSummary struct {
	ID              string             `json:"_id"`
	FullName        string             `json:"fullName"`
	Location        string             `json:"location"`
	ProfilePicture  string             `json:"profilePicture"`
	Bio             string             `json:"bio"`
	PortfolioSize   string             `json:"portfolioSize"`
	InvestmentRange InvestmentRangeDTO `json:"investmentRange"`
	Skills          []entity.Skill     `json:"skills"`
}

// InvestorListQuery filtros de GET /api/investor/profile/all.
// Los montos llegan como texto y se validan al convertirlos a decimal.
type InvestorListQuery struct {
	PageRequest
	Search        string `query:"search"`
	PortfolioSize string `query:"portfolioSize"`
	MinInvestment string `query:"minInvestment"`
	MaxInvestment string `query:"maxInvestment"`
}

// InvestorListResponse página de inversionistas.
type InvestorListResponse struct {
	Investors  []InvestorSummary `json:"investors"`
	Pagination Pagination        `json:"pagination"`
}
