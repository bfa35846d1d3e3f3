package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/streamhive/streamhive/internal/config"
	"github.com/streamhive/streamhive/internal/models"
)

func testJWTConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{JwtSecretKey: "test-secret"},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testJWTConfig()
	user := &models.User{
		UserID: uuid.New(),
		Email:  "editor@example.com",
		Role:   models.EditorRole,
	}

	token, err := GenerateJWTToken(user, cfg)
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}

	claims, err := ValidateToken(token, cfg.Server.JwtSecretKey)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.UserID.String() {
		t.Errorf("claims user id = %q, want %q", claims.UserID, user.UserID)
	}
	if claims.Email != user.Email {
		t.Errorf("claims email = %q, want %q", claims.Email, user.Email)
	}
	if claims.Role != models.EditorRole {
		t.Errorf("claims role = %q, want %q", claims.Role, models.EditorRole)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	cfg := testJWTConfig()
	token, err := GenerateJWTToken(&models.User{UserID: uuid.New()}, cfg)
	if err != nil {
		t.Fatalf("GenerateJWTToken: %v", err)
	}
	if _, err = ValidateToken(token, "another-secret"); err == nil {
		t.Error("token signed with a different secret was accepted")
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	if _, err := ValidateToken("not-a-token", "test-secret"); err == nil {
		t.Error("garbage token was accepted")
	}
}
