package util

import (
	"errors"
	"fmt"
	"time"

	"github.com/fadilmartias/recruit-track/internal/config"
	"github.com/fadilmartias/recruit-track/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// GenerateToken issues a signed bearer token carrying the user id and role.
func GenerateToken(user *model.User) (string, error) {
	cfg := config.LoadAuthConfig()
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Duration(cfg.TokenTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWTSecret))
}

// ParseToken validates a bearer token and returns the user id and role.
func ParseToken(tokenString string) (uuid.UUID, string, error) {
	cfg := config.LoadAuthConfig()
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, "", ErrInvalidToken
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil || role == "" {
		return uuid.Nil, "", ErrInvalidToken
	}
	return userID, role, nil
}
