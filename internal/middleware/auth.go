package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hello383/Sway/internal/config"
	"github.com/hello383/Sway/internal/logger"
	"github.com/hello383/Sway/internal/services"
	"github.com/hello383/Sway/internal/utils"
	"github.com/hello383/Sway/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// AuthMiddleware verifies the auth provider's bearer token and stores the
// resulting session in the gin context. The provider signs access tokens with
// HS256 and a shared secret; the email claim is what the rest of the app
// keys on.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing or invalid"})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		session, err := parseSessionToken(tokenStr)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "token rejected", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(string(contextkeys.SessionContextKey), session)
		ctx := logger.WithUserEmail(c.Request.Context(), session.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func parseSessionToken(tokenStr string) (services.AuthSession, error) {
	secret := config.GetConfig().Auth.JWTSecret
	if secret == "" {
		return services.AuthSession{}, fmt.Errorf("jwt secret not configured")
	}

	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return services.AuthSession{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return services.AuthSession{}, fmt.Errorf("invalid token claims")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return services.AuthSession{}, fmt.Errorf("token carries no email claim")
	}

	sub, _ := claims["sub"].(string)
	return services.AuthSession{
		Email:  utils.NormalizeEmail(email),
		UserID: sub,
	}, nil
}

// RequireCompleteProfile re-runs the gate decision on the server side. A
// client that skipped the gate endpoint and called a profile route directly
// still gets turned away unless their tier unlocks the profile.
func RequireCompleteProfile(gate services.GateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(string(contextkeys.SessionContextKey))
		session, ok := val.(services.AuthSession)
		if !exists || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}

		db, ok := c.Get(string(contextkeys.DBContextKey))
		gormDB, dbOK := db.(*gorm.DB)
		if !ok || !dbOK {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Server misconfigured"})
			return
		}

		outcome, _, err := gate.DecideForSession(gormDB, session)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
			return
		}
		if outcome != services.GateOutcomeProfile {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   "Profile incomplete",
				"outcome": outcome,
			})
			return
		}

		c.Next()
	}
}
