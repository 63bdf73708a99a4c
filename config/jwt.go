package config

import (
	"log"
	"os"
	"time"
)

type JWTConfig struct {
	SecretKey     []byte
	Issuer        string
	SessionTTL    time.Duration
	RememberMeTTL time.Duration
}

func LoadJWTConfig() JWTConfig {
	LoadEnv()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is not set")
	}

	issuer := os.Getenv("JWT_ISSUER")
	if issuer == "" {
		issuer = "moneynow"
	}

	sessionTTL := 7 * 24 * time.Hour
	if ttlStr := os.Getenv("JWT_SESSION_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			sessionTTL = parsed
		} else {
			log.Printf("invalid JWT_SESSION_TTL value %q, using default %s", ttlStr, sessionTTL)
		}
	}

	rememberTTL := 30 * 24 * time.Hour
	if ttlStr := os.Getenv("JWT_REMEMBER_ME_TTL"); ttlStr != "" {
		if parsed, err := time.ParseDuration(ttlStr); err == nil {
			rememberTTL = parsed
		} else {
			log.Printf("invalid JWT_REMEMBER_ME_TTL value %q, using default %s", ttlStr, rememberTTL)
		}
	}

	return JWTConfig{
		SecretKey:     []byte(secret),
		Issuer:        issuer,
		SessionTTL:    sessionTTL,
		RememberMeTTL: rememberTTL,
	}
}
