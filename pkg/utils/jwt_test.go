package utils

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()
	roles := []string{"teacher"}
	permissions := []string{"view-dashboard", "manage-classes"}

	token, err := manager.GenerateAccessToken(userID, "teacher@elimu.local", roles, permissions)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := manager.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken: %v", err)
	}

	if claims.UserID != userID {
		t.Errorf("UserID = %s, want %s", claims.UserID, userID)
	}
	if claims.Email != "teacher@elimu.local" {
		t.Errorf("Email = %q", claims.Email)
	}
	if len(claims.Roles) != 1 || claims.Roles[0] != "teacher" {
		t.Errorf("Roles = %v", claims.Roles)
	}
	if len(claims.Permissions) != 2 {
		t.Errorf("Permissions = %v", claims.Permissions)
	}
	if claims.Issuer != "elimu-api" {
		t.Errorf("Issuer = %q", claims.Issuer)
	}
}

func TestAccessTokenWrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	token, err := manager.GenerateAccessToken(uuid.New(), "a@b.c", nil, nil)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewJWTManager("different-secret", time.Hour, 24*time.Hour)
	if _, err := other.ValidateAccessToken(token); err == nil {
		t.Error("token signed with another secret validated")
	}
}

func TestExpiredAccessTokenRejected(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, 24*time.Hour)
	token, err := manager.GenerateAccessToken(uuid.New(), "a@b.c", nil, nil)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := manager.ValidateAccessToken(token); err == nil {
		t.Error("expired token validated")
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	userID := uuid.New()

	token, err := manager.GenerateRefreshToken(userID)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	got, err := manager.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("ValidateRefreshToken: %v", err)
	}
	if got != userID {
		t.Errorf("user ID = %s, want %s", got, userID)
	}
}

func TestRefreshTokenGarbageRejected(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	if _, err := manager.ValidateRefreshToken("not.a.token"); err == nil {
		t.Error("garbage token validated")
	}
}
