package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/keeperzone/keeperzone/pkg/token"
)

const (
	AuthCoachIDKey = "auth_coach_id"
)

// AuthMiddleware validates the bearer token and stores the authenticated
// coach id in the request context. The coach row is re-checked against the
// database so revoked accounts are rejected even with a valid token.
func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is required"})
			return
		}

		bearerToken := strings.Split(authHeader, " ")
		if len(bearerToken) != 2 || strings.ToLower(bearerToken[0]) != "bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid Authorization header format. Expected: Bearer <token>"})
			return
		}

		claims, err := token.ValidateAccessToken(bearerToken[1], jwtSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			return
		}

		var count int64
		if err := db.Table("coaches").Where("id = ? AND deleted_at IS NULL", claims.CoachID).Count(&count).Error; err != nil || count == 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Coach not found or inactive"})
			return
		}

		c.Set(AuthCoachIDKey, claims.CoachID)
		c.Next()
	}
}

// GetCoachIDFromContext extracts the authenticated coach id from the context.
func GetCoachIDFromContext(c *gin.Context) (uint, error) {
	coachID, exists := c.Get(AuthCoachIDKey)
	if !exists {
		return 0, errors.New("coach ID not found in context")
	}

	cid, ok := coachID.(uint)
	if !ok {
		return 0, fmt.Errorf("coach ID has unexpected type: %T", coachID)
	}

	return cid, nil
}
