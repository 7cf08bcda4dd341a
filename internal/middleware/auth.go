package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"aureus/internal/config"
	"aureus/internal/services"
	"aureus/internal/store"
)

const emailContextKey = "email"

// getJWTKey returns the JWT key from configuration
func getJWTKey() []byte {
	return []byte(config.Get().JWTSecret)
}

// SessionClaims represents the claims in a session token.
type SessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken generates a signed token for the given account. The token
// only proves who the caller is; whether they are logged in is decided per
// request against the persisted session marker.
func GenerateToken(email string) (string, error) {
	claims := &SessionClaims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.Get().JWTExpirationDur)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "aureus-api",
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(getJWTKey())
}

// RequireSession verifies the bearer token and checks that its account is
// the currently active one. A valid token whose account is not the active
// session (logged out, or another account logged in since) is refused, which
// keeps "at most one active account" true across outstanding tokens.
func RequireSession(sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return getJWTKey(), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		active, ok := sessions.Current()
		if !ok || active != claims.Email {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session is no longer active"})
			c.Abort()
			return
		}

		c.Set(emailContextKey, claims.Email)
		c.Next()
	}
}

// AdminOnly restricts a route to the reserved administrator account. Must
// run after RequireSession.
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, exists := c.Get(emailContextKey)
		if !exists || email != store.AdminEmail {
			c.JSON(http.StatusForbidden, gin.H{"error": "Administrator access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
