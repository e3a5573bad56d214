package token_adapter

import (
	"context"
	"errors"
	"testing"
	"time"

	"handmedown-service/internal/core/domain"

	"github.com/google/uuid"
)

func testUser() *domain.User {
	return &domain.User{
		ID:        uuid.New(),
		Email:     "frank@upr.edu",
		Role:      domain.RoleOperator,
		CreatedAt: time.Now().UTC(),
	}
}

func TestNewTokenServiceRejectsEmptyKey(t *testing.T) {
	if _, err := NewTokenService(""); err == nil {
		t.Fatal("empty signing key accepted")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}
	user := testUser()

	token, err := svc.GenerateToken(context.Background(), user, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := svc.ValidateToken(context.Background(), token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("user_id = %v, want %v", claims.UserID, user.ID)
	}
	if claims.Email != user.Email || claims.Role != user.Role {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenExpired(t *testing.T) {
	svc, err := NewTokenService("test-signing-key")
	if err != nil {
		t.Fatalf("NewTokenService: %v", err)
	}

	token, err := svc.GenerateToken(context.Background(), testUser(), -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := svc.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenWrongKey(t *testing.T) {
	issuer, _ := NewTokenService("key-one")
	verifier, _ := NewTokenService("key-two")

	token, err := issuer.GenerateToken(context.Background(), testUser(), time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := verifier.ValidateToken(context.Background(), token); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}

func TestValidateTokenGarbage(t *testing.T) {
	svc, _ := NewTokenService("test-signing-key")
	if _, err := svc.ValidateToken(context.Background(), "not.a.token"); !errors.Is(err, domain.ErrTokenInvalid) {
		t.Fatalf("err = %v, want ErrTokenInvalid", err)
	}
}
