package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

type Claims struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email,omitempty"`
	TokenType string    `json:"token_type"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(userID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(userID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

// HMACService signs access and refresh tokens with separate HS256 secrets.
type HMACService struct {
	accessSecret  []byte
	refreshSecret []byte

	accessExpiresIn  time.Duration
	refreshExpiresIn time.Duration

	now func() time.Time
}

func NewHMACService(accessSecret, refreshSecret string, accessExpiresIn, refreshExpiresIn time.Duration) *HMACService {
	return &HMACService{
		accessSecret:     []byte(accessSecret),
		refreshSecret:    []byte(refreshSecret),
		accessExpiresIn:  accessExpiresIn,
		refreshExpiresIn: refreshExpiresIn,
		now:              time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(userID uuid.UUID, email string) (string, error) {
	return s.generate(TokenTypeAccess, userID, email, s.accessSecret, s.accessExpiresIn)
}

func (s *HMACService) GenerateRefreshToken(userID uuid.UUID) (string, error) {
	return s.generate(TokenTypeRefresh, userID, "", s.refreshSecret, s.refreshExpiresIn)
}

func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	claims, errAccess := s.validateWithSecret(tokenString, s.accessSecret)
	if errAccess == nil {
		return claims, nil
	}
	claims, errRefresh := s.validateWithSecret(tokenString, s.refreshSecret)
	if errRefresh == nil {
		return claims, nil
	}
	if errors.Is(errAccess, ErrTokenExpired) || errors.Is(errRefresh, ErrTokenExpired) {
		return Claims{}, ErrTokenExpired
	}
	return Claims{}, ErrTokenInvalid
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.TokenType == TokenTypeRefresh
}

func (s *HMACService) generate(tokenType string, userID uuid.UUID, email string, secret []byte, expIn time.Duration) (string, error) {
	if len(secret) == 0 || expIn <= 0 {
		return "", ErrTokenInvalid
	}
	now := s.now().UTC()
	c := Claims{
		UserID:    userID,
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwtlib.RegisteredClaims{
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(expIn)),
			Subject:   userID.String(),
		},
	}
	tok := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, c)
	return tok.SignedString(secret)
}

func (s *HMACService) validateWithSecret(tokenString string, secret []byte) (Claims, error) {
	var c Claims
	tok, err := jwtlib.ParseWithClaims(tokenString, &c, func(token *jwtlib.Token) (any, error) {
		if _, ok := token.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if c.TokenType != TokenTypeAccess && c.TokenType != TokenTypeRefresh {
		return Claims{}, ErrTokenInvalid
	}
	return c, nil
}
