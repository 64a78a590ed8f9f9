package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every verification failure: bad signature,
// malformed token, or expired claims. Callers never learn which.
var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the decoded payload of an admin bearer token.
type Claims struct {
	AdminID  string
	Username string
}

// TokenManager issues and verifies signed admin JWTs.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager with the provided secret and token lifetime.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token carrying the admin identity, expiring ttl from now.
func (t *TokenManager) Issue(adminID, username string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"admin_id": adminID,
		"username": username,
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Verify decodes and validates a token string. Any failure, including
// expiry, comes back as ErrInvalidToken.
func (t *TokenManager) Verify(tokenString string) (Claims, error) {
	parsed, err := jwt.Parse(tokenString, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !parsed.Valid {
		return Claims{}, ErrInvalidToken
	}
	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, ErrInvalidToken
	}
	adminID, _ := mapClaims["admin_id"].(string)
	username, _ := mapClaims["username"].(string)
	if adminID == "" || username == "" {
		return Claims{}, ErrInvalidToken
	}
	return Claims{AdminID: adminID, Username: username}, nil
}
