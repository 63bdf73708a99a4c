package utils

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/config"
	"github.com/Caique-Santos-Barbosa/MoneyNow-sub000/models"

	"github.com/golang-jwt/jwt/v5"
)

type SessionClaims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies the stateless HS256 session credentials.
// Possession of a validly-signed, non-expired token is the only proof of
// identity the server checks; there is no session table, so issued tokens
// cannot be revoked before they expire.
type TokenIssuer struct {
	cfg config.JWTConfig
}

func NewTokenIssuer(cfg config.JWTConfig) *TokenIssuer {
	return &TokenIssuer{cfg: cfg}
}

// Issue signs a session token for the user. The remember-me TTL applies
// when rememberMe is set, otherwise the default session TTL.
func (i *TokenIssuer) Issue(user models.User, rememberMe bool) (string, *SessionClaims, error) {
	ttl := i.cfg.SessionTTL
	if rememberMe {
		ttl = i.cfg.RememberMeTTL
	}

	now := time.Now()
	claims := &SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.cfg.Issuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.cfg.SecretKey)
	if err != nil {
		return "", nil, err
	}
	return signed, claims, nil
}

func (i *TokenIssuer) Verify(tokenString string) (*SessionClaims, error) {
	tokenString = strings.TrimSpace(tokenString)
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(
		tokenString,
		claims,
		func(token *jwt.Token) (interface{}, error) {
			if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
				return nil, errors.New("unexpected signing method")
			}
			return i.cfg.SecretKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.cfg.Issuer),
	)
	if err != nil {
		return nil, err
	}

	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
