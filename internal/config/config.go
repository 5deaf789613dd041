package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port              string
	LogLevel          string
	Debug             bool
	ServiceName       string
	Environment       string
	JwtSecret         string
	JwtRefreshSecret  string
	TokenTTLMinutes   int
	RefreshTTLMinutes int
	AllowedOrigins    []string
	RateLimitRPS      float64
	RateLimitBurst    int
}

func LoadConfig() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}
	jwtRefreshSecret := os.Getenv("JWT_REFRESH_SECRET")
	if jwtRefreshSecret == "" {
		return nil, errors.New("JWT_REFRESH_SECRET is required")
	}

	allowedOrigins := []string{"*"}
	if ao := os.Getenv("ALLOWED_ORIGINS"); ao != "" {
		allowedOrigins = allowedOrigins[:0]
		for _, origin := range strings.Split(ao, ",") {
			allowedOrigins = append(allowedOrigins, strings.TrimSpace(origin))
		}
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	debug := os.Getenv("DEBUG")
	if debug == "" {
		debug = "false"
	}

	serviceName := os.Getenv("SERVICE_NAME")
	if serviceName == "" {
		serviceName = "storefront-api"
	}

	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "development"
	}

	tokenTTL := 60 // default value
	if ttl := os.Getenv("TOKEN_TTL_MINUTES"); ttl != "" {
		if parsed, err := strconv.Atoi(ttl); err == nil {
			tokenTTL = parsed
		}
	}

	refreshTTL := 7 * 24 * 60 // default value
	if ttl := os.Getenv("REFRESH_TTL_MINUTES"); ttl != "" {
		if parsed, err := strconv.Atoi(ttl); err == nil {
			refreshTTL = parsed
		}
	}

	rateLimitRPS := 50.0 // default value; <= 0 disables limiting
	if rl := os.Getenv("RATE_LIMIT_RPS"); rl != "" {
		if parsed, err := strconv.ParseFloat(rl, 64); err == nil {
			rateLimitRPS = parsed
		}
	}

	rateLimitBurst := 100 // default value
	if rb := os.Getenv("RATE_LIMIT_BURST"); rb != "" {
		if parsed, err := strconv.Atoi(rb); err == nil {
			rateLimitBurst = parsed
		}
	}

	return &Config{
		Port:              port,
		LogLevel:          logLevel,
		Debug:             debug == "true",
		ServiceName:       serviceName,
		Environment:       environment,
		JwtSecret:         jwtSecret,
		JwtRefreshSecret:  jwtRefreshSecret,
		TokenTTLMinutes:   tokenTTL,
		RefreshTTLMinutes: refreshTTL,
		AllowedOrigins:    allowedOrigins,
		RateLimitRPS:      rateLimitRPS,
		RateLimitBurst:    rateLimitBurst,
	}, nil
}
