package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nublack/nublack-api/internal/application/dto"
	"github.com/nublack/nublack-api/internal/domain"
	"github.com/nublack/nublack-api/internal/domain/entity"
	"github.com/nublack/nublack-api/internal/domain/repository"
	"github.com/nublack/nublack-api/pkg/jwt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
// El administrador es un registro sembrado en la misma colección, así que el
// login es una única búsqueda uniforme sin credenciales embebidas en código.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Register crea un cliente: hashea el password con bcrypt, fuerza el rol a
// Cliente y lo deja autenticado (devuelve token). Devuelve ErrDuplicate si el
// email o el documento ya existen.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	existing, err := uc.userRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	byDoc, err := uc.userRepo.GetByDocumento(in.NumeroDocumento)
	if err != nil {
		return nil, err
	}
	if byDoc != nil {
		return nil, domain.ErrDuplicate
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:              uuid.New().String(),
		Email:           email,
		Nombres:         in.Nombres,
		Apellidos:       in.Apellidos,
		TipoDocumento:   in.TipoDocumento,
		NumeroDocumento: in.NumeroDocumento,
		Telefono:        in.Telefono,
		PasswordHash:    string(hash),
		Role:            entity.RoleCliente, // siempre Cliente, se envíe lo que se envíe
		Status:          entity.UserStatusActivo,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return uc.sessionFor(user)
}

// Login verifica email/password contra la colección de usuarios (incluido el
// admin sembrado), genera JWT y retorna token + usuario.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if user.Status != entity.UserStatusActivo {
		return nil, domain.ErrForbidden
	}
	return uc.sessionFor(user)
}

func (uc *AuthUseCase) sessionFor(user *entity.User) (*dto.LoginResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Email, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User:  *toUserResponse(user),
	}, nil
}

// toUserResponse convierte la entidad a su DTO de salida (sin hash).
func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:              u.ID,
		Email:           u.Email,
		Nombres:         u.Nombres,
		Apellidos:       u.Apellidos,
		TipoDocumento:   u.TipoDocumento,
		NumeroDocumento: u.NumeroDocumento,
		Telefono:        u.Telefono,
		Role:            u.Role,
		Status:          u.Status,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
