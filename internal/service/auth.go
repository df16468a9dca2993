package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pageza/recipe-share/backend/internal/types"
)

// ErrInvalidToken is returned for tokens that fail parsing, signature or claim checks
var ErrInvalidToken = errors.New("invalid token")

const defaultTokenTTL = 24 * time.Hour

// TokenService issues and validates HS256 tokens carrying the current-user handle
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(jwtSecret string) *TokenService {
	return &TokenService{
		secret: []byte(jwtSecret),
		ttl:    defaultTokenTTL,
		now:    time.Now,
	}
}

// GenerateToken signs claims. Expiry and issue time are filled in when unset.
func (s *TokenService) GenerateToken(claims *types.TokenClaims) (string, error) {
	if claims.UserID == "" {
		return "", fmt.Errorf("%w: missing user id", ErrInvalidToken)
	}
	now := s.now()
	if claims.IssuedAt == nil {
		claims.IssuedAt = jwt.NewNumericDate(now)
	}
	if claims.ExpiresAt == nil {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}
	if claims.Subject == "" {
		claims.Subject = claims.UserID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *TokenService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
