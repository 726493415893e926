package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/ports"
	"github.com/jhoicas/startnet-api/internal/application/validation"
	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

// filterAll valor que el frontend envía para "sin filtro" en los selects.
const filterAll = "All"

// InvestorProfileUseCase casos de uso del perfil de inversionista y del directorio público.
type InvestorProfileUseCase struct {
	users    repository.UserRepository
	profiles repository.InvestorProfileRepository
	blobs    ports.BlobStorage
	upload   UploadConfig
	now      func() time.Time
}

// NewInvestorProfileUseCase construye el caso de uso.
func NewInvestorProfileUseCase(
	users repository.UserRepository,
	profiles repository.InvestorProfileRepository,
	blobs ports.BlobStorage,
	upload UploadConfig,
) *InvestorProfileUseCase {
	return &InvestorProfileUseCase{users: users, profiles: profiles, blobs: blobs, upload: upload, now: time.Now}
}

// Get perfil del inversionista autenticado.
func (uc *InvestorProfileUseCase) Get(ctx context.Context, userID string) (*dto.InvestorProfileResponse, error) {
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("investor profile: get: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toInvestorResponse(p), nil
}

// GetByID perfil público por id de documento.
func (uc *InvestorProfileUseCase) GetByID(ctx context.Context, id string) (*dto.InvestorProfileResponse, error) {
	p, err := uc.profiles.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("investor profile: get by id: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toInvestorResponse(p), nil
}

// Update merge del patch sobre el perfil; lo crea si no existe.
func (uc *InvestorProfileUseCase) Update(ctx context.Context, userID string, in dto.UpdateInvestorProfileRequest) (*dto.InvestorProfileResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	if r := in.InvestmentRange; r != nil {
		if err := checkRange(r.Min, r.Max); err != nil {
			return nil, err
		}
	}
	p, err := uc.loadOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}
	applyProfilePatch(&p.ProfileBase, in.ProfilePatch)
	if in.InvestmentPreferences != nil {
		p.InvestmentPreferences = in.InvestmentPreferences
	}
	if in.PortfolioSize != nil {
		p.PortfolioSize = *in.PortfolioSize
	}
	if r := in.InvestmentRange; r != nil {
		p.InvestmentRange = entity.InvestmentRange{Min: toNull(r.Min), Max: toNull(r.Max)}
	}
	if err := uc.save(ctx, p); err != nil {
		return nil, err
	}
	return toInvestorResponse(p), nil
}

// UploadPicture sube la imagen al contenedor de inversionistas y guarda la URL.
func (uc *InvestorProfileUseCase) UploadPicture(ctx context.Context, userID string, file dto.FileUpload) (*dto.ProfilePictureResponse, error) {
	if err := checkUpload(file, uc.upload); err != nil {
		return nil, err
	}
	p, err := uc.loadOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := uc.blobs.Upload(ctx, ports.ContainerInvestorPictures, profilePictureBlobName(userID), file.Data, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("investor profile: upload picture: %w", err)
	}
	p.ProfilePicture = url
	if err := uc.save(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProfilePictureResponse{ProfilePicture: url}, nil
}

// List directorio paginado de inversionistas, más recientes primero.
func (uc *InvestorProfileUseCase) List(ctx context.Context, q dto.InvestorListQuery) (*dto.InvestorListResponse, error) {
	offset := q.Normalize(dto.DefaultInvestorPageSize)
	f := entity.InvestorFilter{
		Search: strings.TrimSpace(q.Search),
		Limit:  q.Limit,
		Offset: offset,
	}
	if ps := strings.TrimSpace(q.PortfolioSize); ps != "" && ps != filterAll {
		f.PortfolioSize = ps
	}
	var err error
	if f.MinInvestment, err = parseAmount("minInvestment", q.MinInvestment); err != nil {
		return nil, err
	}
	if f.MaxInvestment, err = parseAmount("maxInvestment", q.MaxInvestment); err != nil {
		return nil, err
	}

	list, total, err := uc.profiles.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("investor profile: list: %w", err)
	}
	items := make([]dto.InvestorSummary, 0, len(list))
	for _, p := range list {
		items = append(items, dto.InvestorSummary{
			ID:              p.ID,
			FullName:        p.FullName,
			Location:        p.Location,
			ProfilePicture:  p.ProfilePicture,
			Bio:             p.Bio,
			PortfolioSize:   p.PortfolioSize,
			InvestmentRange: toRangeDTO(p.InvestmentRange),
			Skills:          orEmpty(p.Skills),
		})
	}
	return &dto.InvestorListResponse{
		Investors:  items,
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

func (uc *InvestorProfileUseCase) loadOrNew(ctx context.Context, userID string) (*entity.InvestorProfile, error) {
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("investor profile: get: %w", err)
	}
	if p != nil {
		return p, nil
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("investor profile: get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &entity.InvestorProfile{ProfileBase: newProfileBase(uuid.New().String(), user)}, nil
}

func (uc *InvestorProfileUseCase) save(ctx context.Context, p *entity.InvestorProfile) error {
	now := uc.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if err := uc.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("investor profile: upsert: %w", err)
	}
	return nil
}

// parseAmount convierte un filtro de monto; vacío significa sin filtro.
func parseAmount(field, raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, domain.NewInvalid(field+" must be a number", field)
	}
	return &d, nil
}

func checkRange(lo, hi *decimal.Decimal) error {
	if lo != nil {
		if msg := amountProblem(*lo); msg != "" {
			return domain.NewInvalid("investmentRange.min "+msg, "investmentRange.min")
		}
	}
	if hi != nil {
		if msg := amountProblem(*hi); msg != "" {
			return domain.NewInvalid("investmentRange.max "+msg, "investmentRange.max")
		}
	}
	if lo != nil && hi != nil && lo.GreaterThan(*hi) {
		return domain.NewInvalid("investmentRange.min must be <= investmentRange.max", "investmentRange")
	}
	return nil
}

func toNull(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NewNullDecimal(*d)
}

func toRangeDTO(r entity.InvestmentRange) dto.InvestmentRangeDTO {
	var out dto.InvestmentRangeDTO
	if r.Min.Valid {
		v := r.Min.Decimal
		out.Min = &v
	}
	if r.Max.Valid {
		v := r.Max.Decimal
		out.Max = &v
	}
	return out
}

func toInvestorResponse(p *entity.InvestorProfile) *dto.InvestorProfileResponse {
	return &dto.InvestorProfileResponse{
		ProfileResponse:       toProfileResponse(p.ProfileBase),
		InvestmentPreferences: orEmpty(p.InvestmentPreferences),
		PortfolioSize:         p.PortfolioSize,
		InvestmentRange:       toRangeDTO(p.InvestmentRange),
	}
}
