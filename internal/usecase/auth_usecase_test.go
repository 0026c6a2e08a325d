package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/pkg/jwt"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
)

type mockUserRepo struct {
	byEmail map[string]repository.User
	byID    map[uuid.UUID]repository.User
	created []repository.User
	findErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		byEmail: make(map[string]repository.User),
		byID:    make(map[uuid.UUID]repository.User),
	}
}

func (m *mockUserRepo) Create(_ context.Context, u repository.User) error {
	m.created = append(m.created, u)
	m.byEmail[u.Email] = u
	m.byID[u.ID] = u
	return nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (repository.User, error) {
	if m.findErr != nil {
		return repository.User{}, m.findErr
	}
	u, ok := m.byEmail[email]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (repository.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return repository.User{}, repository.ErrUserNotFound
	}
	return u, nil
}

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAuthUsecase_RegisterAndLogin(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, testJWT())

	pair, err := uc.Register(context.Background(), RegisterInput{
		Email:    "Dev@Example.com",
		Name:     "Dev",
		Password: "hunter2hunter2",
	})
	if err != nil {
		t.Fatalf("register err: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatalf("expected both tokens")
	}
	if len(users.created) != 1 || users.created[0].Email != "dev@example.com" {
		t.Fatalf("expected lowercased email, got %v", users.created)
	}

	if _, err := uc.Login(context.Background(), LoginInput{Email: "dev@example.com", Password: "hunter2hunter2"}); err != nil {
		t.Fatalf("login err: %v", err)
	}
	if _, err := uc.Login(context.Background(), LoginInput{Email: "dev@example.com", Password: "wrong-password"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthUsecase_LoginStorageFailureIsInternal(t *testing.T) {
	users := newMockUserRepo()
	users.findErr = errors.New("connection refused")
	uc := NewAuthUsecase(users, testJWT())

	// A storage outage must not masquerade as bad credentials.
	if _, err := uc.Login(context.Background(), LoginInput{Email: "dev@example.com", Password: "hunter2hunter2"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
	if _, err := uc.Register(context.Background(), RegisterInput{Email: "dev@example.com", Name: "Dev", Password: "hunter2hunter2"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal on register, got %v", err)
	}
}

func TestAuthUsecase_RegisterDuplicateEmail(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, testJWT())

	in := RegisterInput{Email: "dup@example.com", Name: "Dup", Password: "password123"}
	if _, err := uc.Register(context.Background(), in); err != nil {
		t.Fatalf("first register err: %v", err)
	}
	if _, err := uc.Register(context.Background(), in); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthUsecase_RegisterShortPassword(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT())
	_, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.com", Name: "A", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthUsecase_Refresh(t *testing.T) {
	users := newMockUserRepo()
	uc := NewAuthUsecase(users, testJWT())

	pair, err := uc.Register(context.Background(), RegisterInput{Email: "r@example.com", Name: "R", Password: "password123"})
	if err != nil {
		t.Fatalf("register err: %v", err)
	}

	refreshed, err := uc.Refresh(context.Background(), pair.RefreshToken)
	if err != nil {
		t.Fatalf("refresh err: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Fatalf("expected new access token")
	}

	// An access token must not pass as a refresh token.
	if _, err := uc.Refresh(context.Background(), pair.AccessToken); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Refresh(context.Background(), "garbage"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for garbage token, got %v", err)
	}
}
