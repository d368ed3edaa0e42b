package service

import (
	"errors"
	"fmt"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/adil-123-dev/Insight-loop/internal/repository"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(req dto.RegisterRequestDTO) (*dto.UserResponseDTO, error)
	Login(req dto.LoginRequestDTO) (*dto.TokenPairDTO, error)
	Refresh(refreshToken string) (*dto.TokenPairDTO, error)
	Profile(userID uint) (*dto.UserResponseDTO, error)
}

type authService struct {
	userRepo repository.UserRepository
	orgRepo  repository.OrganizationRepository
	tokenSvc TokenService
}

func NewAuthService(userRepo repository.UserRepository, orgRepo repository.OrganizationRepository, tokenSvc TokenService) AuthService {
	return &authService{userRepo: userRepo, orgRepo: orgRepo, tokenSvc: tokenSvc}
}

func (s *authService) Register(req dto.RegisterRequestDTO) (*dto.UserResponseDTO, error) {
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", ErrConflict)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("checking email: %w", err)
	}

	if _, err := s.orgRepo.FindByID(req.OrgID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("organization %d does not exist: %w", req.OrgID, ErrValidation)
		}
		return nil, fmt.Errorf("checking organization: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleStudent
	}

	user := model.User{
		Email:          req.Email,
		HashedPassword: string(hashed),
		FullName:       req.FullName,
		OrgID:          req.OrgID,
		Role:           role,
	}
	if err := s.userRepo.Create(&user); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Failed to create user")
		return nil, fmt.Errorf("creating user: %w", err)
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, &user)
	return &resp, nil
}

func (s *authService) Login(req dto.LoginRequestDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		// Same error for unknown email and wrong password.
		return nil, fmt.Errorf("invalid email or password: %w", ErrForbidden)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, fmt.Errorf("invalid email or password: %w", ErrForbidden)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokenSvc.GenerateRefreshToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.TokenPairDTO{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

func (s *authService) Refresh(refreshToken string) (*dto.TokenPairDTO, error) {
	claims, err := s.tokenSvc.ParseToken(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired refresh token: %w", ErrForbidden)
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("user not found: %w", ErrForbidden)
	}

	accessToken, err := s.tokenSvc.GenerateAccessToken(user)
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairDTO{AccessToken: accessToken, TokenType: "bearer"}, nil
}

func (s *authService) Profile(userID uint) (*dto.UserResponseDTO, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("fetching user: %w", err)
	}

	var resp dto.UserResponseDTO
	copier.Copy(&resp, user)
	return &resp, nil
}
