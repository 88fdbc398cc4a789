package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// The acting identity is established by the external identity
// provider: it issues HS256 tokens whose "sub" claim is the user's
// opaque subject identifier. We only verify and extract; issuance,
// sessions and social login live entirely outside this service.

const actorIDKey = "userID"

// parseSubject verifies the bearer token and returns its subject.
func parseSubject(authHeader, jwtSecret string) (string, error) {
	// Extract token từ "Bearer <token>"
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", fmt.Errorf("invalid authorization header format")
	}

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		// Kiểm tra signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !parsedToken.Valid {
		return "", fmt.Errorf("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", fmt.Errorf("missing subject claim")
	}

	return sub, nil
}

// AuthMiddleware requires a valid identity-provider token and sets the
// acting identity on the context.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing authorization header"},
			})
			c.Abort()
			return
		}

		sub, err := parseSubject(authHeader, jwtSecret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": err.Error()},
			})
			c.Abort()
			return
		}

		c.Set(actorIDKey, sub)
		c.Next()
	}
}

// OptionalAuthMiddleware extracts the acting identity when a valid
// token is present and continues anonymously otherwise. Routes that
// serve both signed-in and anonymous callers use this.
func OptionalAuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			if sub, err := parseSubject(authHeader, jwtSecret); err == nil {
				c.Set(actorIDKey, sub)
			}
		}
		c.Next()
	}
}

// ActorID returns the acting identity set by the auth middlewares,
// "" for anonymous requests.
func ActorID(c *gin.Context) string {
	return c.GetString(actorIDKey)
}
