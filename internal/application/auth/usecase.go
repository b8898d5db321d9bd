// Package auth implementa el gateway de autenticación: registro, login y
// resolución de sesión. Es la única autoridad que establece el "usuario
// actual" de una petición; el resto de componentes confía en esa identidad.
package auth

import (
	"context"
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/agrotrack/agrotrack-api/internal/application/dto"
	"github.com/agrotrack/agrotrack-api/internal/domain"
	"github.com/agrotrack/agrotrack-api/internal/domain/entity"
	"github.com/agrotrack/agrotrack-api/internal/domain/repository"
	"github.com/agrotrack/agrotrack-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens de sesión.
type JWTConfig struct {
	Secret  string
	ExpDays int
	Issuer  string
}

// AuthUseCase casos de uso de autenticación: registro, login y sesión.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un usuario con hash bcrypt, plan "trial" y vencimiento de
// prueba a 14 días. Devuelve domain.ErrEmailAlreadyExists si el email ya
// existe, sin importar el resto de campos.
func (uc *AuthUseCase) Register(ctx context.Context, in dto.RegisterRequest) (*dto.AuthResponse, error) {
	existing, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Phone:        in.Phone,
		Plan:         entity.PlanTrial,
		TrialEndDate: now.Add(entity.TrialDays * 24 * time.Hour),
		CreatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return uc.authResponse(user)
}

// Login verifica email/password y devuelve un token fresco + usuario.
// Email desconocido y password incorrecto producen el mismo
// domain.ErrInvalidCredentials: la respuesta nunca revela si el email existe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := uc.userRepo.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	return uc.authResponse(user)
}

// ResolveSession decodifica y verifica el token y resuelve el usuario.
//
// Errores posibles:
//   - domain.ErrTokenExpired: token bien formado pero vencido
//   - domain.ErrInvalidToken: malformado o firma incorrecta
//   - domain.ErrUserNotFound: el subject ya no resuelve a un usuario almacenado
func (uc *AuthUseCase) ResolveSession(ctx context.Context, token string) (*entity.User, error) {
	userID, err := jwt.Parse(uc.jwtCfg.Secret, token)
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrInvalidToken
	}
	user, err := uc.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (uc *AuthUseCase) authResponse(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, uc.jwtCfg.Issuer, uc.jwtCfg.ExpDays)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{Token: token, User: *ToUserResponse(user)}, nil
}

// ToUserResponse proyecta la vista pública de un usuario (sin hash).
func ToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		Phone:        u.Phone,
		Plan:         u.Plan,
		TrialEndDate: u.TrialEndDate,
		CreatedAt:    u.CreatedAt,
	}
}
