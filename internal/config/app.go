package config

import (
	"log"
	"os"
	"strconv"
	"sync"
)

type AppConfig struct {
	Name              string
	Env               string
	Port              string
	BaseURL           string
	DefaultDailyLimit int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "development"
			log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
		}
		defaultLimit, err := strconv.Atoi(os.Getenv("DEFAULT_DAILY_DOWNLOAD_LIMIT"))
		if err != nil || defaultLimit <= 0 {
			defaultLimit = 10
		}
		appConfig = &AppConfig{
			Name:              os.Getenv("APP_NAME"),
			Env:               env,
			Port:              os.Getenv("APP_PORT"),
			BaseURL:           os.Getenv("APP_URL"),
			DefaultDailyLimit: defaultLimit,
		}
	})
	return appConfig
}
