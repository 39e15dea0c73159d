package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pageza/digital-parsley/backend/internal/types"
)

const defaultTokenTTL = 24 * time.Hour

// AuthService resolves auth tokens to Firebase ids. With a secret, tokens
// are HS256 JWTs whose subject is the id; without one the token is the id.
type AuthService struct {
	secret []byte
	ttl    time.Duration
}

// NewAuthService creates a new AuthService instance
func NewAuthService(secret string) *AuthService {
	s := &AuthService{ttl: defaultTokenTTL}
	if secret != "" {
		s.secret = []byte(secret)
	}
	return s
}

// Signed reports whether tokens are JWTs
func (s *AuthService) Signed() bool {
	return s.secret != nil
}

// GenerateToken issues a token for userID
func (s *AuthService) GenerateToken(userID string) (string, error) {
	if strings.TrimSpace(userID) == "" {
		return "", &ValidationError{Field: "user_id", Message: "is required"}
	}
	if !s.Signed() {
		return userID, nil
	}

	now := time.Now()
	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		UserID: userID,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken checks tokenString and returns its claims
func (s *AuthService) ValidateToken(tokenString string) (*types.TokenClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, ErrInvalidToken
	}

	if !s.Signed() {
		if strings.ContainsAny(tokenString, " \t\r\n") {
			return nil, ErrInvalidToken
		}
		return &types.TokenClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: tokenString},
			UserID:           tokenString,
		}, nil
	}

	claims := &types.TokenClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.UserID == "" {
		claims.UserID = claims.Subject
	}
	if claims.UserID == "" {
		return nil, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims, nil
}
