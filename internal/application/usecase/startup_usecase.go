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

// StartupUseCase CRUD de startups con verificación de dueño, listado público, logo y ficha PDF.
type StartupUseCase struct {
	repo   repository.StartupRepository
	blobs  ports.BlobStorage
	sheets ports.StartupSheetGenerator
	upload UploadConfig
	now    func() time.Time
}

// NewStartupUseCase construye el caso de uso. sheets puede ser nil si no se expone la ficha PDF.
func NewStartupUseCase(repo repository.StartupRepository, blobs ports.BlobStorage, sheets ports.StartupSheetGenerator, upload UploadConfig) *StartupUseCase {
	return &StartupUseCase{repo: repo, blobs: blobs, sheets: sheets, upload: upload, now: time.Now}
}

// Create registra una startup del usuario. raisedSoFar y annualRevenue inician en 0 si no llegan.
func (uc *StartupUseCase) Create(ctx context.Context, ownerID string, in dto.CreateStartupRequest) (*dto.StartupResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	raised := valueOrZero(in.RaisedSoFar)
	annual := valueOrZero(in.AnnualRevenue)
	if err := checkAmounts(*in.FundingGoal, raised, annual); err != nil {
		return nil, err
	}
	now := uc.now()
	s := &entity.Startup{
		ID:               uuid.New().String(),
		UserID:           ownerID,
		StartupName:      strings.TrimSpace(in.StartupName),
		StartupLogo:      in.StartupLogo,
		Industry:         strings.TrimSpace(in.Industry),
		Website:          in.Website,
		Founded:          in.Founded,
		Description:      in.Description,
		Address:          in.Address,
		Email:            in.Email,
		Mobile:           in.Mobile,
		Problem:          in.Problem,
		Solution:         in.Solution,
		Traction:         in.Traction,
		TargetMarket:     in.TargetMarket,
		TAM:              in.TAM,
		Demand:           in.Demand,
		Scalability:      in.Scalability,
		Competitors:      in.Competitors,
		Advantage:        in.Advantage,
		RevenueStreams:   in.RevenueStreams,
		AnnualRevenue:    annual,
		ProjectedRevenue: in.ProjectedRevenue,
		FundingGoal:      *in.FundingGoal,
		RaisedSoFar:      raised,
		PreviousFunding:  in.PreviousFunding,
		Seeking:          in.Seeking,
		InvestorROI:      in.InvestorROI,
		EquityAvailable:  in.EquityAvailable,
		Team:             toTeam(in.Team),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, fmt.Errorf("startup: create: %w", err)
	}
	return toStartupResponse(s), nil
}

// GetByID lectura pública.
func (uc *StartupUseCase) GetByID(ctx context.Context, id string) (*dto.StartupResponse, error) {
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	return toStartupResponse(s), nil
}

// ListByOwner startups del usuario, más recientes primero.
func (uc *StartupUseCase) ListByOwner(ctx context.Context, ownerID string) ([]dto.StartupResponse, error) {
	list, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("startup: list by owner: %w", err)
	}
	return toStartupResponses(list), nil
}

// ListPublic listado paginado con búsqueda e industria.
func (uc *StartupUseCase) ListPublic(ctx context.Context, q dto.StartupListQuery) (*dto.StartupListResponse, error) {
	offset := q.Normalize(dto.DefaultStartupPageSize)
	f := entity.StartupFilter{
		Search: strings.TrimSpace(q.Search),
		Limit:  q.Limit,
		Offset: offset,
	}
	if ind := strings.TrimSpace(q.Industry); ind != "" && ind != filterAll {
		f.Industry = ind
	}
	list, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("startup: list: %w", err)
	}
	return &dto.StartupListResponse{
		Startups:   toStartupResponses(list),
		Pagination: dto.NewPagination(total, q.Page, q.Limit),
	}, nil
}

// Update merge parcial. Solo el dueño puede modificar; el dueño nunca cambia.
func (uc *StartupUseCase) Update(ctx context.Context, id, ownerID string, in dto.UpdateStartupRequest) (*dto.StartupResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, err
	}
	if !s.IsOwnedBy(ownerID) {
		return nil, domain.ErrForbidden
	}
	applyStartupPatch(s, in)
	if err := checkAmounts(s.FundingGoal, s.RaisedSoFar, s.AnnualRevenue); err != nil {
		return nil, err
	}
	s.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, fmt.Errorf("startup: update: %w", err)
	}
	return toStartupResponse(s), nil
}

// Delete elimina la startup si ownerID es el dueño.
func (uc *StartupUseCase) Delete(ctx context.Context, id, ownerID string) error {
	s, err := uc.find(ctx, id)
	if err != nil {
		return err
	}
	if !s.IsOwnedBy(ownerID) {
		return domain.ErrForbidden
	}
	if err := uc.repo.Delete(ctx, s.ID); err != nil {
		return fmt.Errorf("startup: delete: %w", err)
	}
	return nil
}

// UploadLogo sube el logo y devuelve su URL; el cliente la envía luego como startupLogo.
func (uc *StartupUseCase) UploadLogo(ctx context.Context, file dto.FileUpload) (*dto.StartupLogoResponse, error) {
	if err := checkUpload(file, uc.upload); err != nil {
		return nil, err
	}
	url, err := uc.blobs.Upload(ctx, ports.ContainerStartupLogos, startupLogoBlobName(file.Name), file.Data, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("startup: upload logo: %w", err)
	}
	return &dto.StartupLogoResponse{LogoURL: url}, nil
}

// Sheet genera la ficha PDF pública. Devuelve bytes y nombre de archivo sugerido.
func (uc *StartupUseCase) Sheet(ctx context.Context, id string) ([]byte, string, error) {
	if uc.sheets == nil {
		return nil, "", domain.ErrNotFound
	}
	s, err := uc.find(ctx, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.sheets.Generate(s)
	if err != nil {
		return nil, "", fmt.Errorf("startup: sheet: %w", err)
	}
	name := sanitizeFileName(s.StartupName)
	if name == "" {
		name = s.ID
	}
	return pdf, fmt.Sprintf("startup-%s.pdf", name), nil
}

func (uc *StartupUseCase) find(ctx context.Context, id string) (*entity.Startup, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("startup: get: %w", err)
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func applyStartupPatch(s *entity.Startup, in dto.UpdateStartupRequest) {
	setString := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	setString(&s.StartupName, in.StartupName)
	setString(&s.StartupLogo, in.StartupLogo)
	setString(&s.Industry, in.Industry)
	setString(&s.Website, in.Website)
	setString(&s.Description, in.Description)
	setString(&s.Address, in.Address)
	setString(&s.Email, in.Email)
	setString(&s.Mobile, in.Mobile)
	setString(&s.Problem, in.Problem)
	setString(&s.Solution, in.Solution)
	setString(&s.Traction, in.Traction)
	setString(&s.TargetMarket, in.TargetMarket)
	setString(&s.TAM, in.TAM)
	setString(&s.Demand, in.Demand)
	setString(&s.Scalability, in.Scalability)
	setString(&s.Competitors, in.Competitors)
	setString(&s.Advantage, in.Advantage)
	setString(&s.RevenueStreams, in.RevenueStreams)
	setString(&s.ProjectedRevenue, in.ProjectedRevenue)
	setString(&s.PreviousFunding, in.PreviousFunding)
	setString(&s.Seeking, in.Seeking)
	setString(&s.InvestorROI, in.InvestorROI)
	setString(&s.EquityAvailable, in.EquityAvailable)
	if in.Founded != nil {
		s.Founded = *in.Founded
	}
	if in.AnnualRevenue != nil {
		s.AnnualRevenue = *in.AnnualRevenue
	}
	if in.FundingGoal != nil {
		s.FundingGoal = *in.FundingGoal
	}
	if in.RaisedSoFar != nil {
		s.RaisedSoFar = *in.RaisedSoFar
	}
	if in.Team != nil {
		s.Team = toTeam(in.Team)
	}
}

func checkAmounts(fundingGoal, raised, annual decimal.Decimal) error {
	var (
		bad    []string
		detail []string
	)
	for _, a := range []struct {
		field string
		value decimal.Decimal
	}{
		{"fundingGoal", fundingGoal},
		{"raisedSoFar", raised},
		{"annualRevenue", annual},
	} {
		if msg := amountProblem(a.value); msg != "" {
			bad = append(bad, a.field)
			detail = append(detail, a.field+" "+msg)
		}
	}
	if len(bad) > 0 {
		return domain.NewInvalid(strings.Join(detail, "; "), bad...)
	}
	return nil
}

func valueOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func toTeam(in []dto.TeamMemberDTO) []entity.TeamMember {
	out := make([]entity.TeamMember, 0, len(in))
	for _, m := range in {
		out = append(out, entity.TeamMember{
			Name:     strings.TrimSpace(m.Name),
			Role:     strings.TrimSpace(m.Role),
			Email:    strings.TrimSpace(m.Email),
			LinkedIn: m.LinkedIn,
		})
	}
	return out
}

func toStartupResponses(list []*entity.Startup) []dto.StartupResponse {
	out := make([]dto.StartupResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toStartupResponse(s))
	}
	return out
}

func toStartupResponse(s *entity.Startup) *dto.StartupResponse {
	return &dto.StartupResponse{
		ID:               s.ID,
		User:             s.UserID,
		StartupName:      s.StartupName,
		StartupLogo:      s.StartupLogo,
		Industry:         s.Industry,
		Website:          s.Website,
		Founded:          s.Founded,
		Description:      s.Description,
		Address:          s.Address,
		Email:            s.Email,
		Mobile:           s.Mobile,
		Problem:          s.Problem,
		Solution:         s.Solution,
		Traction:         s.Traction,
		TargetMarket:     s.TargetMarket,
		TAM:              s.TAM,
		Demand:           s.Demand,
		Scalability:      s.Scalability,
		Competitors:      s.Competitors,
		Advantage:        s.Advantage,
		RevenueStreams:   s.RevenueStreams,
		AnnualRevenue:    s.AnnualRevenue,
		ProjectedRevenue: s.ProjectedRevenue,
		FundingGoal:      s.FundingGoal,
		RaisedSoFar:      s.RaisedSoFar,
		PreviousFunding:  s.PreviousFunding,
		Seeking:          s.Seeking,
		InvestorROI:      s.InvestorROI,
		EquityAvailable:  s.EquityAvailable,
		Team:             orEmpty(s.Team),
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}
