package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newAuthRouter(mw gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", mw, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"actorId": ActorID(c)})
	})
	return router
}

func probe(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	router := newAuthRouter(AuthMiddleware(testSecret))

	t.Run("valid token sets the acting identity", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-123"})

		w := probe(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-123")
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		w := probe(router, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header is rejected", func(t *testing.T) {
		w := probe(router, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong signature is rejected", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{"sub": "user-123"})

		w := probe(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token without subject is rejected", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"aud": "recipeshare"})

		w := probe(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestOptionalAuthMiddleware(t *testing.T) {
	router := newAuthRouter(OptionalAuthMiddleware(testSecret))

	t.Run("valid token sets the acting identity", func(t *testing.T) {
		token := signToken(t, testSecret, jwt.MapClaims{"sub": "user-123"})

		w := probe(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "user-123")
	})

	t.Run("missing header continues anonymously", func(t *testing.T) {
		w := probe(router, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"actorId":""`)
	})

	t.Run("invalid token continues anonymously", func(t *testing.T) {
		token := signToken(t, "other-secret", jwt.MapClaims{"sub": "user-123"})

		w := probe(router, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"actorId":""`)
	})
}
