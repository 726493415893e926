package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/ports"
	"github.com/jhoicas/startnet-api/internal/application/validation"
	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
)

// EntrepreneurProfileUseCase casos de uso del perfil de emprendedor.
type EntrepreneurProfileUseCase struct {
	users    repository.UserRepository
	profiles repository.EntrepreneurProfileRepository
	blobs    ports.BlobStorage
	upload   UploadConfig
	now      func() time.Time
}

// NewEntrepreneurProfileUseCase construye el caso de uso.
func NewEntrepreneurProfileUseCase(
	users repository.UserRepository,
	profiles repository.EntrepreneurProfileRepository,
	blobs ports.BlobStorage,
	upload UploadConfig,
) *EntrepreneurProfileUseCase {
	return &EntrepreneurProfileUseCase{users: users, profiles: profiles, blobs: blobs, upload: upload, now: time.Now}
}

// Get devuelve el perfil del usuario o ErrNotFound si aún no lo creó.
func (uc *EntrepreneurProfileUseCase) Get(ctx context.Context, userID string) (*dto.EntrepreneurProfileResponse, error) {
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("entrepreneur profile: get: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return toEntrepreneurResponse(p), nil
}

// Update aplica el patch sobre el perfil guardado; si no existe lo crea (upsert).
func (uc *EntrepreneurProfileUseCase) Update(ctx context.Context, userID string, in dto.UpdateEntrepreneurProfileRequest) (*dto.EntrepreneurProfileResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	p, err := uc.loadOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}
	applyProfilePatch(&p.ProfileBase, in.ProfilePatch)
	if in.Expertise != nil {
		p.Expertise = in.Expertise
	}
	if in.Achievements != nil {
		p.Achievements = in.Achievements
	}
	if err := uc.save(ctx, p); err != nil {
		return nil, err
	}
	return toEntrepreneurResponse(p), nil
}

// Delete borra el perfil si existe (la cuenta se conserva). Sin perfil también es ok.
func (uc *EntrepreneurProfileUseCase) Delete(ctx context.Context, userID string) error {
	if err := uc.profiles.DeleteByUserID(ctx, userID); err != nil {
		return fmt.Errorf("entrepreneur profile: delete: %w", err)
	}
	return nil
}

// UploadPicture sube la imagen al contenedor de emprendedores y guarda solo la URL en el perfil.
func (uc *EntrepreneurProfileUseCase) UploadPicture(ctx context.Context, userID string, file dto.FileUpload) (*dto.ProfilePictureResponse, error) {
	if err := checkUpload(file, uc.upload); err != nil {
		return nil, err
	}
	p, err := uc.loadOrNew(ctx, userID)
	if err != nil {
		return nil, err
	}
	url, err := uc.blobs.Upload(ctx, ports.ContainerEntrepreneurPictures, profilePictureBlobName(userID), file.Data, file.ContentType)
	if err != nil {
		return nil, fmt.Errorf("entrepreneur profile: upload picture: %w", err)
	}
	p.ProfilePicture = url
	if err := uc.save(ctx, p); err != nil {
		return nil, err
	}
	return &dto.ProfilePictureResponse{ProfilePicture: url}, nil
}

func (uc *EntrepreneurProfileUseCase) loadOrNew(ctx context.Context, userID string) (*entity.EntrepreneurProfile, error) {
	p, err := uc.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("entrepreneur profile: get: %w", err)
	}
	if p != nil {
		return p, nil
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("entrepreneur profile: get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return &entity.EntrepreneurProfile{ProfileBase: newProfileBase(uuid.New().String(), user)}, nil
}

func (uc *EntrepreneurProfileUseCase) save(ctx context.Context, p *entity.EntrepreneurProfile) error {
	now := uc.now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	if err := uc.profiles.Upsert(ctx, p); err != nil {
		return fmt.Errorf("entrepreneur profile: upsert: %w", err)
	}
	return nil
}

func toEntrepreneurResponse(p *entity.EntrepreneurProfile) *dto.EntrepreneurProfileResponse {
	return &dto.EntrepreneurProfileResponse{
		ProfileResponse: toProfileResponse(p.ProfileBase),
		Expertise:       orEmpty(p.Expertise),
		Achievements:    orEmpty(p.Achievements),
	}
}
