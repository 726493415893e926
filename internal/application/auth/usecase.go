package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/startnet-api/internal/application/dto"
	"github.com/jhoicas/startnet-api/internal/application/validation"
	"github.com/jhoicas/startnet-api/internal/domain"
	"github.com/jhoicas/startnet-api/internal/domain/entity"
	"github.com/jhoicas/startnet-api/internal/domain/repository"
	"github.com/jhoicas/startnet-api/pkg/jwt"
	"github.com/jhoicas/startnet-api/pkg/password"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro, login y cambio de contraseña.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	now      func() time.Time
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, now: time.Now}
}

// NormalizeEmail recorta y pasa a minúsculas; el email es único sin distinguir mayúsculas.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup crea la cuenta, hashea la contraseña y devuelve el token ya emitido.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	in.FullName = strings.TrimSpace(in.FullName)
	in.Email = NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("signup: buscar email: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	now := uc.now()
	user := &entity.User{
		ID:           uuid.New().String(),
		FullName:     in.FullName,
		Email:        in.Email,
		PasswordHash: hash,
		AccountType:  in.AccountType,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		// carrera entre dos signups con el mismo email: el índice único decide
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return nil, err
		}
		return nil, fmt.Errorf("signup: crear usuario: %w", err)
	}
	return uc.issue(user)
}

// Signin verifica email/password y emite un token. Email o contraseña incorrectos dan el mismo error.
func (uc *AuthUseCase) Signin(ctx context.Context, in dto.SigninRequest) (*dto.AuthResponse, error) {
	in.Email = NormalizeEmail(in.Email)
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("signin: buscar usuario: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	ok, err := password.Verify(user.PasswordHash, in.Password)
	if err != nil {
		return nil, fmt.Errorf("signin: verificar password: %w", err)
	}
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.issue(user)
}

// ChangePassword verifica la contraseña actual antes de aplicar la política a la nueva.
// Si la actual no coincide no se toca el hash guardado.
func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, in dto.ChangePasswordRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("change password: obtener usuario: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	ok, err := password.Verify(user.PasswordHash, in.CurrentPassword)
	if err != nil {
		return fmt.Errorf("change password: verificar password: %w", err)
	}
	if !ok {
		return domain.ErrIncorrectPassword
	}
	if err := password.ValidatePolicy(in.NewPassword); err != nil {
		return domain.NewInvalid(err.Error(), "newPassword")
	}
	hash, err := password.Hash(in.NewPassword)
	if err != nil {
		return err
	}
	if err := uc.userRepo.UpdatePassword(ctx, user.ID, hash); err != nil {
		return fmt.Errorf("change password: guardar: %w", err)
	}
	return nil
}

// Me devuelve la cuenta autenticada.
func (uc *AuthUseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("me: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	out := toUserResponse(user)
	return &out, nil
}

func (uc *AuthUseCase) issue(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.AccountType, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		AccountType: u.AccountType,
	}
}
