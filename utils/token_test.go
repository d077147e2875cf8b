package utils

import (
	"testing"

	"storefront/config"
)

func TestGenerateAndValidateToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	token, err := GenerateToken(7, "admin@example.com", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}

	if claims.UserID != 7 {
		t.Errorf("UserID = %d, want 7", claims.UserID)
	}
	if claims.Email != "admin@example.com" {
		t.Errorf("Email = %s, want admin@example.com", claims.Email)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %s, want admin", claims.Role)
	}
}

func TestValidateToken_WrongSecret(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}
	token, err := GenerateToken(1, "user@example.com", "customer")
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	config.AppConfig.JWTSecret = "other-secret"
	if _, err := ValidateToken(token); err == nil {
		t.Error("ValidateToken() with wrong secret should fail")
	}
}

func TestValidateToken_Garbage(t *testing.T) {
	config.AppConfig = &config.Config{JWTSecret: "test-secret", JWTExpiry: "1h"}

	if _, err := ValidateToken("not-a-token"); err == nil {
		t.Error("ValidateToken() on garbage should fail")
	}
}
