package dto

import (
	"math"

	"github.com/shopspring/decimal"
)

func init() {
	// Los montos viajan como números JSON, igual que los espera el frontend.
	decimal.MarshalJSONWithoutQuotes = true
}

// Límites de paginación de los listados públicos.
const (
	DefaultInvestorPageSize = 10
	DefaultStartupPageSize  = 9
	MaxPageSize             = 100
	// MaxOffset tope del offset; páginas más allá devuelven lista vacía.
	MaxOffset = math.MaxInt32
)

// PageRequest paginación 1-based para listados.
type PageRequest struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica valores por defecto y el tope de Limit; devuelve el offset resultante.
func (p *PageRequest) Normalize(defaultLimit int) (offset int) {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Page-1 > MaxOffset/p.Limit {
		p.Page = MaxOffset/p.Limit + 1
	}
	return (p.Page - 1) * p.Limit
}

// Pagination metadatos de página en respuestas.
type Pagination struct {
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
}

// NewPagination calcula pages = ceil(total/limit).
func NewPagination(total int64, page, limit int) Pagination {
	var pages int64
	if limit > 0 {
		pages = (total + int64(limit) - 1) / int64(limit)
	}
	return Pagination{Total: total, Pages: pages, Page: page, Limit: limit}
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	IsExpired bool   `json:"isExpired,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}
