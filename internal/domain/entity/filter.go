package entity

import "github.com/shopspring/decimal"

// InvestorFilter criterios del listado público de inversionistas. Se combinan con AND.
type InvestorFilter struct {
	Search        string // substring sin distinguir mayúsculas sobre nombre, ubicación o skills
	PortfolioSize string // exacto; vacío = sin filtro
	MinInvestment *decimal.Decimal
	MaxInvestment *decimal.Decimal
	Limit         int
	Offset        int
}

// StartupFilter criterios del listado público de startups.
type StartupFilter struct {
	Search   string // substring sobre nombre, industria o descripción
	Industry string // exacto; vacío = sin filtro
	Limit    int
	Offset   int
}
