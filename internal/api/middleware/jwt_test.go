package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jwtTestRouter(signingKey []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(JWTAuth(signingKey))
	r.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": GetUserID(c.Request.Context()),
			"role":    GetRole(c.Request.Context()),
		})
	})
	return r
}

func TestJWTAuth_ValidToken(t *testing.T) {
	key := []byte("test-signing-key-1234567890123456")
	cfg := JWTConfig{SigningKey: key, Issuer: "kolekta", ExpiresIn: time.Hour}

	token, _, err := GenerateToken(cfg, "u-1", "alice", RoleOfficial, "3")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	jwtTestRouter(key).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":"u-1"`)
	assert.Contains(t, w.Body.String(), `"role":"official"`)
}

func TestJWTAuth_Rejections(t *testing.T) {
	key := []byte("test-signing-key-1234567890123456")

	expired, _, err := GenerateToken(JWTConfig{
		SigningKey: key,
		Issuer:     "kolekta",
		ExpiresIn:  -time.Minute,
	}, "u-1", "alice", RoleResident, "")
	require.NoError(t, err)

	wrongKey, _, err := GenerateToken(JWTConfig{
		SigningKey: []byte("another-signing-key-123456789012"),
		Issuer:     "kolekta",
		ExpiresIn:  time.Hour,
	}, "u-1", "alice", RoleResident, "")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic abc123"},
		{"malformed token", "Bearer not-a-jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing key", "Bearer " + wrongKey},
	}

	router := jwtTestRouter(key)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			router.ServeHTTP(w, req)
			require.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestRequireRole(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(allowed ...string) *gin.Engine {
		r := gin.New()
		r.GET("/guarded", func(c *gin.Context) {
			// Simulate an authenticated request with a role claim.
			role := c.Query("role")
			c.Request = c.Request.WithContext(
				SetUserContext(c.Request.Context(), "u-1", "user", role),
			)
			c.Next()
		}, RequireRole(allowed...), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		return r
	}

	tests := []struct {
		name    string
		allowed []string
		role    string
		want    int
	}{
		{"official always passes", []string{RoleCollector}, RoleOfficial, http.StatusNoContent},
		{"listed role passes", []string{RoleCollector}, RoleCollector, http.StatusNoContent},
		{"unlisted role rejected", []string{RoleCollector}, RoleResident, http.StatusForbidden},
		{"missing role rejected", []string{RoleResident}, "", http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/guarded?role="+tc.role, nil)
			newRouter(tc.allowed...).ServeHTTP(w, req)
			require.Equal(t, tc.want, w.Code)
		})
	}
}
