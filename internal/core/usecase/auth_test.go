package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"handmedown-service/internal/core/domain"

	"github.com/google/uuid"
)

type stubUserRepo struct {
	byEmail   map[string]*domain.User
	findErr   error
	createErr error
	created   *domain.User
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) error {
	if s.createErr != nil {
		return s.createErr
	}
	s.created = user
	return nil
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	return s.byEmail[email], nil
}

func (s *stubUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

type stubTokenService struct {
	token       string
	generateErr error
}

func (s *stubTokenService) GenerateToken(ctx context.Context, user *domain.User, ttl time.Duration) (string, error) {
	if s.generateErr != nil {
		return "", s.generateErr
	}
	return s.token, nil
}

func (s *stubTokenService) ValidateToken(ctx context.Context, tokenString string) (*domain.Claims, error) {
	return nil, domain.ErrTokenInvalid
}

func TestRegisterUser(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]*domain.User{}}
	uc := NewRegisterUserUseCase(repo, &stubTokenService{token: "jwt-abc"}, time.Hour)

	user, token, err := uc.Execute(context.Background(), "alice@upr.edu", "hunter22")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "jwt-abc" {
		t.Errorf("token = %q", token)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("role = %q, want %q", user.Role, domain.RoleUser)
	}
	if repo.created == nil || repo.created.Email != "alice@upr.edu" {
		t.Errorf("created user = %+v", repo.created)
	}
	// Пароль хранится только в виде bcrypt-хэша.
	if repo.created.PasswordHash == "hunter22" || repo.created.PasswordHash == "" {
		t.Error("password stored without hashing")
	}
	if !repo.created.CheckPassword("hunter22") {
		t.Error("stored hash does not match original password")
	}
}

func TestRegisterUserEmailInUse(t *testing.T) {
	existing, err := domain.NewUser("bob@upr.edu", "pw123456")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	repo := &stubUserRepo{byEmail: map[string]*domain.User{"bob@upr.edu": existing}}
	uc := NewRegisterUserUseCase(repo, &stubTokenService{token: "t"}, time.Hour)

	_, _, err = uc.Execute(context.Background(), "bob@upr.edu", "other")
	if !errors.Is(err, domain.ErrEmailInUse) {
		t.Fatalf("err = %v, want ErrEmailInUse", err)
	}
	if repo.created != nil {
		t.Error("user created despite duplicate email")
	}
}

func TestRegisterUserRepositoryError(t *testing.T) {
	repo := &stubUserRepo{findErr: errors.New("db down")}
	uc := NewRegisterUserUseCase(repo, &stubTokenService{token: "t"}, time.Hour)

	_, _, err := uc.Execute(context.Background(), "carol@upr.edu", "pw")
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestLoginUser(t *testing.T) {
	existing, err := domain.NewUser("dora@upr.edu", "secret99")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	repo := &stubUserRepo{byEmail: map[string]*domain.User{"dora@upr.edu": existing}}
	uc := NewLoginUserUseCase(repo, &stubTokenService{token: "jwt-login"}, time.Hour)

	user, token, err := uc.Execute(context.Background(), "dora@upr.edu", "secret99")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "jwt-login" {
		t.Errorf("token = %q", token)
	}
	if user.ID != existing.ID {
		t.Errorf("user = %v, want %v", user.ID, existing.ID)
	}
}

func TestLoginUserWrongPassword(t *testing.T) {
	existing, err := domain.NewUser("eve@upr.edu", "right-pw")
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	repo := &stubUserRepo{byEmail: map[string]*domain.User{"eve@upr.edu": existing}}
	uc := NewLoginUserUseCase(repo, &stubTokenService{token: "t"}, time.Hour)

	_, _, err = uc.Execute(context.Background(), "eve@upr.edu", "wrong-pw")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUserNotFound(t *testing.T) {
	repo := &stubUserRepo{byEmail: map[string]*domain.User{}}
	uc := NewLoginUserUseCase(repo, &stubTokenService{token: "t"}, time.Hour)

	_, _, err := uc.Execute(context.Background(), "ghost@upr.edu", "pw")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}
