package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/tu-usuario/roles-api/internal/application/dto"
	"github.com/tu-usuario/roles-api/internal/domain"
	"github.com/tu-usuario/roles-api/internal/domain/entity"
	"github.com/tu-usuario/roles-api/internal/domain/repository"
	"github.com/tu-usuario/roles-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// bcryptCost factor de costo fijo para el hash de passwords.
const bcryptCost = 8

// JWTConfig configuración para generación de tokens. El secret es de proceso:
// se inyecta una vez en la construcción y no se muta después.
type JWTConfig struct {
	Secret string
	Issuer string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// RegisterUser crea un usuario: valida el rol, hashea el password con bcrypt
// y persiste. Precondiciones antes de tocar el store:
//   - role_name debe pertenecer al conjunto reconocido → domain.ErrInvalidRole.
//
// Username duplicado → domain.ErrUsernameAlreadyExists (lo delega el store).
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	if !entity.ValidRole(in.RoleName) {
		return nil, domain.ErrInvalidRole
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	user := &entity.User{
		Username:     in.Username,
		PasswordHash: string(hash),
		RoleName:     in.RoleName,
	}
	created, err := uc.userRepo.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUsernameAlreadyExists) {
			return nil, err
		}
		return nil, domain.ErrStoreUnavailable
	}
	return toUserResponse(created), nil
}

// Login verifica username/password y genera el token de acceso.
// "Usuario no existe" y "password incorrecto" colapsan en el mismo
// domain.ErrInvalidCredentials: la respuesta no debe permitir enumerar usernames.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.FindByUsername(ctx, in.Username)
	if err != nil {
		return nil, domain.ErrStoreUnavailable
	}
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	// Claims desde el registro almacenado, nunca desde la entrada del caller.
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Username, user.RoleName, uc.jwtCfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("firmar token: %w", err)
	}
	return &dto.LoginResponse{
		Message: fmt.Sprintf("%s is back!", user.Username),
		Token:   token,
	}, nil
}

// ListUsers devuelve el resumen público de todos los usuarios.
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, domain.ErrStoreUnavailable
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResponse(u))
	}
	return out, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		UserID:   u.ID,
		Username: u.Username,
		RoleName: u.RoleName,
	}
}
