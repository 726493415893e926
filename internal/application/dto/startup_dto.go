package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

// TeamMemberDTO integrante del equipo en la entrada.
type TeamMemberDTO struct {
	Name     string `json:"name" validate:"required,max=100"`
	Role     string `json:"role" validate:"required,max=50"`
	Email    string `json:"email" validate:"required"`
	LinkedIn string `json:"linkedIn" validate:"omitempty,max=200"`
}

// CreateStartupRequest POST /api/entrepreneur/startups.
type CreateStartupRequest struct {
	StartupName      string           `json:"startupName" validate:"required,max=100"`
	StartupLogo      string           `json:"startupLogo" validate:"omitempty,max=500"`
	Industry         string           `json:"industry" validate:"required,max=50"`
	Website          string           `json:"website" validate:"omitempty,max=200"`
	Founded          int              `json:"founded" validate:"omitempty,min=1800,max=3000"`
	Description      string           `json:"description" validate:"required,max=500"`
	Address          string           `json:"address" validate:"required,max=100"`
	Email            string           `json:"email" validate:"required,email"`
	Mobile           string           `json:"mobile" validate:"required,max=30"`
	Problem          string           `json:"problem" validate:"omitempty,max=300"`
	Solution         string           `json:"solution" validate:"omitempty,max=300"`
	Traction         string           `json:"traction" validate:"omitempty,max=250"`
	TargetMarket     string           `json:"targetMarket" validate:"omitempty,max=100"`
	TAM              string           `json:"tam" validate:"omitempty,max=50"`
	Demand           string           `json:"demand" validate:"omitempty,max=150"`
	Scalability      string           `json:"scalability" validate:"omitempty,max=150"`
	Competitors      string           `json:"competitors" validate:"omitempty,max=150"`
	Advantage        string           `json:"advantage" validate:"omitempty,max=150"`
	RevenueStreams   string           `json:"revenueStreams" validate:"omitempty,max=200"`
	AnnualRevenue    *decimal.Decimal `json:"annualRevenue"`
	ProjectedRevenue string           `json:"projectedRevenue" validate:"omitempty,max=100"`
	FundingGoal      *decimal.Decimal `json:"fundingGoal" validate:"required"`
	RaisedSoFar      *decimal.Decimal `json:"raisedSoFar"`
	PreviousFunding  string           `json:"previousFunding" validate:"omitempty,max=100"`
	Seeking          string           `json:"seeking" validate:"omitempty,max=100"`
	InvestorROI      string           `json:"investorROI" validate:"omitempty,max=50"`
	EquityAvailable  string           `json:"equityAvailable" validate:"omitempty,max=50"`
	Team             []TeamMemberDTO  `json:"team" validate:"required,min=1,dive"`
}

// UpdateStartupRequest PUT /api/entrepreneur/startups/:id. Merge parcial: nil = sin cambio.
type UpdateStartupRequest struct {
	StartupName      *string          `json:"startupName" validate:"omitempty,min=1,max=100"`
	StartupLogo      *string          `json:"startupLogo" validate:"omitempty,max=500"`
	Industry         *string          `json:"industry" validate:"omitempty,min=1,max=50"`
	Website          *string          `json:"website" validate:"omitempty,max=200"`
	Founded          *int             `json:"founded" validate:"omitempty,min=1800,max=3000"`
	Description      *string          `json:"description" validate:"omitempty,min=1,max=500"`
	Address          *string          `json:"address" validate:"omitempty,min=1,max=100"`
	Email            *string          `json:"email" validate:"omitempty,email"`
	Mobile           *string          `json:"mobile" validate:"omitempty,min=1,max=30"`
	Problem          *string          `json:"problem" validate:"omitempty,max=300"`
	Solution         *string          `json:"solution" validate:"omitempty,max=300"`
	Traction         *string          `json:"traction" validate:"omitempty,max=250"`
	TargetMarket     *string          `json:"targetMarket" validate:"omitempty,max=100"`
	TAM              *string          `json:"tam" validate:"omitempty,max=50"`
	Demand           *string          `json:"demand" validate:"omitempty,max=150"`
	Scalability      *string          `json:"scalability" validate:"omitempty,max=150"`
	Competitors      *string          `json:"competitors" validate:"omitempty,max=150"`
	Advantage        *string          `json:"advantage" validate:"omitempty,max=150"`
	RevenueStreams   *string          `json:"revenueStreams" validate:"omitempty,max=200"`
	AnnualRevenue    *decimal.Decimal `json:"annualRevenue"`
	ProjectedRevenue *string          `json:"projectedRevenue" validate:"omitempty,max=100"`
	FundingGoal      *decimal.Decimal `json:"fundingGoal"`
	RaisedSoFar      *decimal.Decimal `json:"raisedSoFar"`
	PreviousFunding  *string          `json:"previousFunding" validate:"omitempty,max=100"`
	Seeking          *string          `json:"seeking" validate:"omitempty,max=100"`
	InvestorROI      *string          `json:"investorROI" validate:"omitempty,max=50"`
	EquityAvailable  *string          `json:"equityAvailable" validate:"omitempty,max=50"`
	Team             []TeamMemberDTO  `json:"team" validate:"omitempty,min=1,dive"`
}

// StartupResponse salida de una startup.
type StartupResponse struct {
	ID               string              `json:"_id"`
	User             string              `json:"user"`
	StartupName      string              `json:"startupName"`
	StartupLogo      string              `json:"startupLogo"`
	Industry         string              `json:"industry"`
	Website          string              `json:"website"`
	Founded          int                 `json:"founded,omitempty"`
	Description      string              `json:"description"`
	Address          string              `json:"address"`
	Email            string              `json:"email"`
	Mobile           string              `json:"mobile"`
	Problem          string              `json:"problem"`
	Solution         string              `json:"solution"`
	Traction         string              `json:"traction"`
	TargetMarket     string              `json:"targetMarket"`
	TAM              string              `json:"tam"`
	Demand           string              `json:"demand"`
	Scalability      string              `json:"scalability"`
	Competitors      string              `json:"competitors"`
	Advantage        string              `json:"advantage"`
	RevenueStreams   string              `json:"revenueStreams"`
	AnnualRevenue    decimal.Decimal     `json:"annualRevenue"`
	ProjectedRevenue string              `json:"projectedRevenue"`
	FundingGoal      decimal.Decimal     `json:"fundingGoal"`
	RaisedSoFar      decimal.Decimal     `json:"raisedSoFar"`
	PreviousFunding  string              `json:"previousFunding"`
	Seeking          string              `json:"seeking"`
	InvestorROI      string              `json:"investorROI"`
	EquityAvailable  string              `json:"equityAvailable"`
	Team             []entity.TeamMember `json:"team"`
	CreatedAt        time.Time           `json:"createdAt"`
	UpdatedAt        time.Time           `json:"updatedAt"`
}

// StartupListQuery filtros de GET /api/investor/startups/all.
type StartupListQuery struct {
	PageRequest
	Search   string `query:"search"`
	Industry string `query:"industry"`
}

// StartupListResponse página de startups.
type StartupListResponse struct {
	Startups   []StartupResponse `json:"startups"`
	Pagination Pagination        `json:"pagination"`
}
