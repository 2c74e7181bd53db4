package helper

import (
	"testing"
	"time"

	"restaurant_manager/config"
	"restaurant_manager/constants"
	"restaurant_manager/model"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:       "unit-test-secret",
		TokenLifetime:   time.Hour,
		RefreshLifetime: 24 * time.Hour,
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("Sunset@9")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "Sunset@9" {
		t.Error("HashPassword() returned the plaintext")
	}
	if !CheckPasswordHash("Sunset@9", hash) {
		t.Error("CheckPasswordHash() = false for the original password")
	}
	if CheckPasswordHash("Sunset@8", hash) {
		t.Error("CheckPasswordHash() = true for a wrong password")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	cfg := testConfig()
	claim := model.TokenClaim{
		UserId:   7,
		Username: "maria.lopez",
		Role:     constants.ROLE_USER,
	}

	tokenString, err := GenerateAccessToken(cfg, claim)
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	token, err := ParseToken(cfg, tokenString)
	if err != nil {
		t.Fatalf("ParseToken() error = %v", err)
	}
	if !token.Valid {
		t.Fatal("ParseToken() returned an invalid token")
	}

	got := ClaimFromToken(token)
	if got.UserId != claim.UserId {
		t.Errorf("ClaimFromToken().UserId = %v, want %v", got.UserId, claim.UserId)
	}
	if got.Username != claim.Username {
		t.Errorf("ClaimFromToken().Username = %v, want %v", got.Username, claim.Username)
	}
	if got.Role != constants.ROLE_USER {
		t.Errorf("ClaimFromToken().Role = %v, want %v", got.Role, constants.ROLE_USER)
	}
	if got.AdminId != 0 {
		t.Errorf("ClaimFromToken().AdminId = %v, want 0", got.AdminId)
	}
}

func TestTokenRoleClaimSurvival(t *testing.T) {
	cfg := testConfig()
	claim := model.TokenClaim{
		AdminId:  3,
		Username: "shift.manager",
		Role:     constants.ROLE_MANAGER,
	}

	pair, err := GenerateTokenPair(cfg, claim)
	if err != nil {
		t.Fatalf("GenerateTokenPair() error = %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("GenerateTokenPair() returned an empty token")
	}

	token, err := ParseToken(cfg, pair.RefreshToken)
	if err != nil {
		t.Fatalf("ParseToken(refresh) error = %v", err)
	}

	got := ClaimFromToken(token)
	if got.AdminId != 3 {
		t.Errorf("ClaimFromToken().AdminId = %v, want 3", got.AdminId)
	}
	if got.Role != constants.ROLE_MANAGER {
		t.Errorf("ClaimFromToken().Role = %v, want %v", got.Role, constants.ROLE_MANAGER)
	}
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	cfg.TokenLifetime = -time.Minute

	tokenString, err := GenerateAccessToken(cfg, model.TokenClaim{UserId: 1, Username: "late"})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	if _, err := ParseToken(cfg, tokenString); err == nil {
		t.Error("ParseToken() accepted an expired token")
	}
}

func TestParseTokenRejectsTampered(t *testing.T) {
	cfg := testConfig()

	tokenString, err := GenerateAccessToken(cfg, model.TokenClaim{UserId: 1, Username: "mallory"})
	if err != nil {
		t.Fatalf("GenerateAccessToken() error = %v", err)
	}

	tampered := tokenString + "x"
	if _, err := ParseToken(cfg, tampered); err == nil {
		t.Error("ParseToken() accepted a tampered signature")
	}

	other := testConfig()
	other.JWTSecret = "another-secret"
	if _, err := ParseToken(other, tokenString); err == nil {
		t.Error("ParseToken() accepted a token signed with a different secret")
	}
}

func TestValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"maria@example.com", true},
		{"maria.lopez+tag@sub.example.co", true},
		{"not-an-email", false},
		{"@example.com", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidEmail(tt.email); got != tt.want {
			t.Errorf("ValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
