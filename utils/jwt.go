package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the authenticated caller carried by a bearer token.
type Identity struct {
	UserID   uint
	Username string
	Role     string
}

// TokenIssuer signs and verifies HS256 bearer tokens.
type TokenIssuer struct {
	Secret []byte
	TTL    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{Secret: []byte(secret), TTL: ttl}
}

func (t *TokenIssuer) Generate(id Identity) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":      float64(id.UserID),
		"username": id.Username,
		"role":     id.Role,
		"exp":      time.Now().Add(t.TTL).Unix(),
	})
	return token.SignedString(t.Secret)
}

func (t *TokenIssuer) Parse(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return t.Secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return nil, fmt.Errorf("missing subject claim")
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &Identity{
		UserID:   uint(sub),
		Username: username,
		Role:     role,
	}, nil
}
