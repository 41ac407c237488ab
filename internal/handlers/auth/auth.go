package auth

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"artizans_back_end/internal/cache"
	"artizans_back_end/internal/config"
	"artizans_back_end/internal/middleware"
	"artizans_back_end/internal/utils"
)

type Handler struct {
	cfg     *config.Config
	revoked *cache.Cache
}

func New(cfg *config.Config, revoked *cache.Cache) *Handler {
	return &Handler{cfg: cfg, revoked: revoked}
}

// CreateToken signs the submitted identity as a time-limited JWT and delivers
// it over the configured transport: an http-only cookie or the response body.
func (h *Handler) CreateToken(c *gin.Context) {
	var identity map[string]interface{}
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, identity, h.cfg.TokenTTL)
	if err != nil {
		log.Printf("❌ Token signing failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create token"})
		return
	}

	if h.cfg.TokenTransport == config.TransportHeader {
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token})
		return
	}

	h.setCookieMode(c)
	c.SetCookie(middleware.TokenCookie, token, int(h.cfg.TokenTTL.Seconds()), "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Logout invalidates the presented token. The jti goes on the revocation list
// for the remainder of its lifetime; in cookie mode the cookie is cleared too.
func (h *Handler) Logout(c *gin.Context) {
	if tokenString := middleware.ExtractToken(c, h.cfg.TokenTransport); tokenString != "" {
		if claims, err := utils.ParseToken(h.cfg.JWTSecret, tokenString); err == nil {
			jti, _ := claims["jti"].(string)
			if exp, ok := claims["exp"].(float64); ok && jti != "" {
				remaining := time.Until(time.Unix(int64(exp), 0))
				if err := h.revoked.BlacklistToken(c.Request.Context(), jti, remaining); err != nil {
					log.Printf("⚠️  Token revocation failed: %v", err)
				}
			}
		}
	}

	if h.cfg.TokenTransport == config.TransportCookie {
		h.setCookieMode(c)
		c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.cfg.CookieSecure, true)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Cross-site storefronts need SameSite=None with Secure; local dev gets Strict.
func (h *Handler) setCookieMode(c *gin.Context) {
	if h.cfg.CookieSecure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteStrictMode)
	}
}
