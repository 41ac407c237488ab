package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artizans_back_end/internal/config"
	"artizans_back_end/internal/utils"
)

func testConfig(transport string) *config.Config {
	return &config.Config{
		JWTSecret:      "test-secret",
		TokenTTL:       time.Hour,
		TokenTransport: transport,
	}
}

func protectedRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(cfg, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func TestAuthRequiredMissingToken(t *testing.T) {
	for _, transport := range []string{config.TransportCookie, config.TransportHeader} {
		r := protectedRouter(testConfig(transport))

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "transport %s", transport)
	}
}

func TestAuthRequiredCookieTransport(t *testing.T) {
	cfg := testConfig(config.TransportCookie)
	r := protectedRouter(cfg)

	token, err := utils.GenerateToken(cfg.JWTSecret, map[string]interface{}{"email": "buyer@example.com"}, cfg.TokenTTL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "buyer@example.com")
}

func TestAuthRequiredHeaderTransport(t *testing.T) {
	cfg := testConfig(config.TransportHeader)
	r := protectedRouter(cfg)

	token, err := utils.GenerateToken(cfg.JWTSecret, map[string]interface{}{"email": "buyer@example.com"}, cfg.TokenTTL)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "buyer@example.com")
}

func TestAuthRequiredBadAuthorizationFormat(t *testing.T) {
	cfg := testConfig(config.TransportHeader)
	r := protectedRouter(cfg)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredTamperedToken(t *testing.T) {
	cfg := testConfig(config.TransportCookie)
	r := protectedRouter(cfg)

	token, err := utils.GenerateToken("another-secret", map[string]interface{}{"email": "x@y.z"}, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	cfg := testConfig(config.TransportCookie)
	r := protectedRouter(cfg)

	token, err := utils.GenerateToken(cfg.JWTSecret, map[string]interface{}{"email": "x@y.z"}, -time.Minute)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: TokenCookie, Value: token})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
