package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"artizans_back_end/internal/cache"
	"artizans_back_end/internal/config"
	"artizans_back_end/internal/utils"
)

// TokenCookie is the cookie name used when the cookie transport is active.
const TokenCookie = "token"

// AuthRequired verifies the identity token and attaches the decoded claims
// to the request context. Missing, invalid, expired and revoked tokens are
// all rejected with 401 before the handler runs.
func AuthRequired(cfg *config.Config, revoked *cache.Cache) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ExtractToken(c, cfg.TokenTransport)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		claims, err := utils.ParseToken(cfg.JWTSecret, tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
			return
		}

		if jti, ok := claims["jti"].(string); ok {
			if revoked.IsTokenBlacklisted(c.Request.Context(), jti) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized access"})
				return
			}
		}

		c.Set("claims", claims)
		if email, ok := claims["email"].(string); ok {
			c.Set("email", email)
		}
		c.Next()
	}
}

// ExtractToken pulls the raw token out of the request according to the
// configured transport: the http-only cookie or the Authorization header.
func ExtractToken(c *gin.Context, transport string) string {
	if transport == config.TransportHeader {
		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			return ""
		}
		return parts[1]
	}

	token, err := c.Cookie(TokenCookie)
	if err != nil {
		return ""
	}
	return token
}
