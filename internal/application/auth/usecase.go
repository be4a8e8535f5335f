package auth

import (
	"github.com/jhoicas/knowledgebase-api/internal/application/dto"
	"github.com/jhoicas/knowledgebase-api/internal/domain"
	"github.com/jhoicas/knowledgebase-api/internal/domain/entity"
	"github.com/jhoicas/knowledgebase-api/internal/domain/repository"
	"github.com/jhoicas/knowledgebase-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase caso de uso de autenticación (login).
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera JWT y retorna token + usuario.
// Todos los roles comparan contra hash bcrypt, incluido SUPER_ADMIN.
// Devuelve domain.ErrUserNotFound si el email no existe y
// domain.ErrInvalidPassword si la contraseña no coincide.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrInvalidPassword
	}
	companyID := ""
	if user.CompanyID != nil {
		companyID = *user.CompanyID
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, companyID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    *toUserResponse(user),
	}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		Role:      u.Role,
		CompanyID: u.CompanyID,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
