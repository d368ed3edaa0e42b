package service

import (
	"strings"
	"testing"

	"github.com/adil-123-dev/Insight-loop/config"
	"github.com/adil-123-dev/Insight-loop/internal/model"
)

func testTokenService() TokenService {
	return NewTokenService(&config.Config{
		JWT: config.JWT{
			Secret:             "test-secret",
			AccessExpiryMins:   30,
			RefreshExpiryHours: 168,
		},
	})
}

func TestTokenRoundTrip(t *testing.T) {
	svc := testTokenService()
	user := &model.User{ID: 42, OrgID: 7, Role: model.RoleInstructor}

	token, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ParseToken(token, TokenTypeAccess)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.UserID != 42 || claims.OrgID != 7 || claims.Role != model.RoleInstructor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
	if claims.TokenType != TokenTypeAccess {
		t.Fatalf("expected access token type, got %q", claims.TokenType)
	}
}

func TestTokenTypeMismatchRejected(t *testing.T) {
	svc := testTokenService()
	user := &model.User{ID: 42, OrgID: 7, Role: model.RoleStudent}

	refresh, err := svc.GenerateRefreshToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ParseToken(refresh, TokenTypeAccess); err == nil {
		t.Fatal("refresh token must not pass as an access token")
	}
}

func TestTokenTamperedSignatureRejected(t *testing.T) {
	svc := testTokenService()
	user := &model.User{ID: 42, OrgID: 7, Role: model.RoleStudent}

	token, err := svc.GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		t.Fatalf("expected a three-part JWT, got %d parts", len(parts))
	}
	prefix := "AAAA"
	if strings.HasPrefix(parts[2], prefix) {
		prefix = "BBBB"
	}
	tampered := parts[0] + "." + parts[1] + "." + prefix + parts[2][4:]
	if _, err := svc.ParseToken(tampered, TokenTypeAccess); err == nil {
		t.Fatal("tampered token must be rejected")
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	user := &model.User{ID: 42, OrgID: 7, Role: model.RoleStudent}
	token, err := testTokenService().GenerateAccessToken(user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := NewTokenService(&config.Config{
		JWT: config.JWT{Secret: "different-secret", AccessExpiryMins: 30, RefreshExpiryHours: 168},
	})
	if _, err := other.ParseToken(token, TokenTypeAccess); err == nil {
		t.Fatal("token signed with another secret must be rejected")
	}
}
