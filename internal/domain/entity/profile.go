package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Plataformas aceptadas en SocialMedia.Platform.
var SocialPlatforms = []string{"LinkedIn", "Twitter", "Instagram", "GitHub", "Facebook", "YouTube"}

// Buckets de tamaño de portafolio que ofrece el formulario del inversionista.
var PortfolioSizes = []string{
	"Under $100K",
	"$100K - $500K",
	"$1M - $1M",
	"$1M - $5M",
	"$5M - $10M",
	"Over $10M",
}

// SocialMedia enlace a una red social del perfil.
type SocialMedia struct {
	Platform string `json:"platform" bson:"platform" validate:"required,oneof=LinkedIn Twitter Instagram GitHub Facebook YouTube"`
	URL      string `json:"url" bson:"url" validate:"required,max=300"`
}

// Skill habilidad declarada en el perfil.
type Skill struct {
	Name string `json:"name" bson:"name" validate:"required,max=100"`
}

// ProfileBase campos compartidos por ambos perfiles. Uno por UserID.
type ProfileBase struct {
	ID             string
	UserID         string
	FullName       string
	Email          string
	Phone          string
	Location       string
	Bio            string
	ProfilePicture string // URL pública, nunca bytes
	SocialMedia    []SocialMedia
	Skills         []Skill
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// EntrepreneurProfile perfil del emprendedor.
type EntrepreneurProfile struct {
	ProfileBase
	Expertise    []string
	Achievements []string
}

// InvestmentRange rango de ticket del inversionista; cualquiera de los extremos puede faltar.
type InvestmentRange struct {
	Min decimal.NullDecimal
	Max decimal.NullDecimal
}

// InvestorProfile perfil del inversionista.
type InvestorProfile struct {
	ProfileBase
	InvestmentPreferences []string
	PortfolioSize         string
	InvestmentRange       InvestmentRange
}
