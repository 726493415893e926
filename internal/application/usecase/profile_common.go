package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
)

// applyProfilePatch copia sobre base los campos presentes en p.
// Las listas enviadas (aunque vacías) reemplazan a las guardadas.
func applyProfilePatch(base *entity.ProfileBase, p dto.ProfilePatch) {
	if p.FullName != nil {
		base.FullName = *p.FullName
	}
	if p.Email != nil {
		base.Email = *p.Email
	}
	if p.Phone != nil {
		base.Phone = *p.Phone
	}
	if p.Location != nil {
		base.Location = *p.Location
	}
	if p.Bio != nil {
		base.Bio = *p.Bio
	}
	if p.ProfilePicture != nil {
		base.ProfilePicture = *p.ProfilePicture
	}
	if p.SocialMedia != nil {
		base.SocialMedia = p.SocialMedia
	}
	if p.Skills != nil {
		base.Skills = p.Skills
	}
}

// newProfileBase perfil vacío para userID con nombre y email de la cuenta.
func newProfileBase(id string, user *entity.User) entity.ProfileBase {
	base := entity.ProfileBase{ID: id, UserID: user.ID}
	base.FullName = user.FullName
	base.Email = user.Email
	return base
}

func toProfileResponse(b entity.ProfileBase) dto.ProfileResponse {
	return dto.ProfileResponse{
		ID:             b.ID,
		User:           b.UserID,
		FullName:       b.FullName,
		Email:          b.Email,
		Phone:          b.Phone,
		Location:       b.Location,
		Bio:            b.Bio,
		ProfilePicture: b.ProfilePicture,
		SocialMedia:    orEmpty(b.SocialMedia),
		Skills:         orEmpty(b.Skills),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}

// orEmpty evita "null" en JSON para listas sin elementos.
func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Los montos se guardan como NUMERIC(18,2); todos los drivers aplican el mismo rango.
const amountScale = 2

var maxAmount = decimal.New(1, 16)

// amountProblem explica por qué d no es un monto válido; "" si lo es.
func amountProblem(d decimal.Decimal) string {
	switch {
	case d.IsNegative():
		return "must be >= 0"
	case d.GreaterThanOrEqual(maxAmount):
		return "must be < 10000000000000000"
	case !d.Equal(d.Truncate(amountScale)):
		return "must have at most 2 decimal places"
	}
	return ""
}
