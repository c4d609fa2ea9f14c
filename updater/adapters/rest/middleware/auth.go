package middleware

import (
	"click-updater/updater/core"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	tokenPrefix  = "Token "
	tokenCookie  = "jwt_token"
	validSubject = "superuser"
)

type JwtAuthenticator struct {
	adminUser     string
	adminPassword string
	jwtSecret     string
	ttl           time.Duration
}

func NewJwtAuthenticator(adminUser, adminPassword, jwtSecret string, ttl time.Duration) (*JwtAuthenticator, error) {
	if jwtSecret == "" {
		return nil, fmt.Errorf("empty jwt secret: %w", core.ErrBadArguments)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("non-positive token ttl %s: %w", ttl, core.ErrBadArguments)
	}
	return &JwtAuthenticator{
		adminUser:     adminUser,
		adminPassword: adminPassword,
		jwtSecret:     jwtSecret,
		ttl:           ttl,
	}, nil
}

func (tm *JwtAuthenticator) CreateToken(name, password string) (string, error) {
	if name != tm.adminUser || password != tm.adminPassword {
		return "", core.ErrInvalidCredentials
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   validSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(tm.ttl)),
	})
	signedToken, err := token.SignedString([]byte(tm.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signedToken, nil
}

func (tm *JwtAuthenticator) ValidateToken(tokenString string) error {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(tm.jwtSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return core.ErrInvalidCredentials
	}
	subject, err := token.Claims.GetSubject()
	if err != nil || subject != validSubject {
		return core.ErrInvalidCredentials
	}
	return nil
}

// CheckToken accepts the token from the Authorization header first and
// falls back to the session cookie.
func (tm *JwtAuthenticator) CheckToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := strings.CutPrefix(r.Header.Get("Authorization"), tokenPrefix)
		if !found {
			cookie, err := r.Cookie(tokenCookie)
			if err != nil {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}
			token = cookie.Value
		}

		if err := tm.ValidateToken(token); err != nil {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
