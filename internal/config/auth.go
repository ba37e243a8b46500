package config

import (
	"os"
	"strconv"
	"sync"
)

type AuthConfig struct {
	JWTSecret     string
	TokenTTLHours int
}

var (
	authConfig *AuthConfig
	authOnce   sync.Once
)

func LoadAuthConfig() *AuthConfig {
	authOnce.Do(func() {
		ttl, err := strconv.Atoi(os.Getenv("JWT_TTL_HOURS"))
		if err != nil || ttl <= 0 {
			ttl = 24
		}
		authConfig = &AuthConfig{
			JWTSecret:     os.Getenv("JWT_SECRET"),
			TokenTTLHours: ttl,
		}
	})
	return authConfig
}
