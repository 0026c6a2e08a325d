package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Harshverma1208/skill-companion-project/internal/pkg/jwt"
	"github.com/Harshverma1208/skill-companion-project/internal/repository"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (TokenPair, error)
	Login(ctx context.Context, in LoginInput) (TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	users repository.UserRepository
	jwt   jwt.Service
}

func NewAuthUsecase(users repository.UserRepository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	name := strings.TrimSpace(in.Name)
	if email == "" || name == "" || len(in.Password) < 8 {
		return TokenPair{}, ErrInvalidInput
	}

	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return TokenPair{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return TokenPair{}, ErrInternal
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return TokenPair{}, ErrInternal
	}

	user := repository.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return TokenPair{}, ErrInternal
	}

	return u.issueTokens(user)
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (TokenPair, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return TokenPair{}, ErrInvalidInput
	}

	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrInternal
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return TokenPair{}, ErrInvalidCredentials
	}

	return u.issueTokens(user)
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		return TokenPair{}, ErrInvalidCredentials
	}
	if !u.jwt.IsRefreshToken(claims) {
		return TokenPair{}, ErrInvalidCredentials
	}

	user, err := u.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, ErrInternal
	}
	return u.issueTokens(user)
}

func (u *Auth) issueTokens(user repository.User) (TokenPair, error) {
	access, err := u.jwt.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.jwt.GenerateRefreshToken(user.ID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
