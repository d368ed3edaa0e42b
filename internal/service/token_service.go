package service

import (
	"fmt"
	"time"

	"github.com/adil-123-dev/Insight-loop/config"
	"github.com/adil-123-dev/Insight-loop/internal/model"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

type TokenClaims struct {
	UserID    uint   `json:"user_id"`
	OrgID     uint   `json:"org_id"`
	Role      string `json:"role"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenService interface {
	GenerateAccessToken(user *model.User) (string, error)
	GenerateRefreshToken(user *model.User) (string, error)
	ParseToken(tokenString string, expectedType string) (*TokenClaims, error)
}

type tokenService struct {
	secret        []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(cfg *config.Config) TokenService {
	return &tokenService{
		secret:        []byte(cfg.JWT.Secret),
		accessExpiry:  time.Duration(cfg.JWT.AccessExpiryMins) * time.Minute,
		refreshExpiry: time.Duration(cfg.JWT.RefreshExpiryHours) * time.Hour,
	}
}

func (s *tokenService) GenerateAccessToken(user *model.User) (string, error) {
	return s.generate(user, TokenTypeAccess, s.accessExpiry)
}

func (s *tokenService) GenerateRefreshToken(user *model.User) (string, error) {
	return s.generate(user, TokenTypeRefresh, s.refreshExpiry)
}

func (s *tokenService) generate(user *model.User, tokenType string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		UserID:    user.ID,
		OrgID:     user.OrgID,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("signing %s token: %w", tokenType, err)
	}
	return signed, nil
}

func (s *tokenService) ParseToken(tokenString string, expectedType string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parsing token: %w", err)
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}
	if claims.TokenType != expectedType {
		return nil, fmt.Errorf("expected %s token, got %s", expectedType, claims.TokenType)
	}
	return claims, nil
}
