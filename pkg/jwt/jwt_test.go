package jwt

import (
	"testing"

	"mondaymagic/backend/internal/config"
	"mondaymagic/backend/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	user := &models.User{
		ID:          "11111111-2222-3333-4444-555555555555",
		UserName:    "alice",
		Email:       "alice@example.com",
		DisplayName: "Alice",
	}
	token, err := GenerateToken(user)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	userID, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if userID != user.ID {
		t.Fatalf("expected subject %q, got %q", user.ID, userID)
	}
}

func TestParseTokenRejectsWrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	token, err := GenerateToken(&models.User{ID: "u1", UserName: "alice"})
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	config.AppConfig = &config.Config{JWTSecret: "a-different-secret"}
	if _, err := ParseToken(token); err == nil {
		t.Fatal("token signed with another secret must not parse")
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}
	if _, err := ParseToken("not-a-token"); err == nil {
		t.Fatal("garbage must not parse")
	}
}
