package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TeamMember integrante del equipo fundador.
type TeamMember struct {
	Name     string `json:"name" bson:"name"`
	Role     string `json:"role" bson:"role"`
	Email    string `json:"email" bson:"email"`
	LinkedIn string `json:"linkedIn,omitempty" bson:"linkedIn,omitempty"`
}

// Startup ficha de un emprendimiento. UserID es el dueño y no cambia después de crearse.
type Startup struct {
	ID               string
	UserID           string
	StartupName      string
	StartupLogo      string
	Industry         string
	Website          string
	Founded          int
	Description      string
	Address          string
	Email            string
	Mobile           string
	Problem          string
	Solution         string
	Traction         string
	TargetMarket     string
	TAM              string
	Demand           string
	Scalability      string
	Competitors      string
	Advantage        string
	RevenueStreams   string
	AnnualRevenue    decimal.Decimal
	ProjectedRevenue string
	FundingGoal      decimal.Decimal
	RaisedSoFar      decimal.Decimal
	PreviousFunding  string
	Seeking          string
	InvestorROI      string
	EquityAvailable  string
	Team             []TeamMember
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// IsOwnedBy compara el dueño guardado con el usuario autenticado.
func (s *Startup) IsOwnedBy(userID string) bool {
	return s != nil && userID != "" && s.UserID == userID
}
