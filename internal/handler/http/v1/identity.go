package v1

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/campus_panic_system/internal/config"
)

const (
	headerAPIKey   = "X-API-Key"
	headerUserID   = "X-User-ID"
	headerUserRole = "X-User-Role"

	ctxUserID   = "user_id"
	ctxUserRole = "user_role"
)

// APIKeyMiddleware проверяет ключ вызывающего сервиса. Ключ передается в
// X-API-Key либо как Authorization: Bearer. Идентичность пользователя
// проверяется отдельно в IdentityMiddleware.
func APIKeyMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(headerAPIKey)
		if key == "" {
			if bearer := c.GetHeader("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
				key = strings.TrimPrefix(bearer, "Bearer ")
			}
		}
		if key == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}
		if !slices.Contains(cfg.APIKeys, key) {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid API key"})
			return
		}
		c.Next()
	}
}

// IdentityMiddleware извлекает идентичность из заголовков провайдера
// идентификации. Ядро доверяет этой идентичности как уже аутентифицированной:
// аутентификация и сессии принадлежат внешнему сервису.
func IdentityMiddleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader(headerUserID)
		role := c.GetHeader(headerUserRole)

		if rawID == "" || role == "" {
			log.Warn("Identity headers missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "identity required"})
			return
		}

		userID, err := uuid.Parse(rawID)
		if err != nil {
			log.WithError(err).Warn("Invalid user id in identity header")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid identity"})
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxUserRole, role)
		c.Next()
	}
}

// RequireRoles пропускает запрос только для перечисленных ролей.
func RequireRoles(log *logrus.Logger, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(ctxUserRole)
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		log.WithField("role", role).Warn("Role is not allowed for this endpoint")
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	}
}

// currentUser возвращает идентичность запроса, установленную IdentityMiddleware.
func currentUser(c *gin.Context) (uuid.UUID, string) {
	userID, _ := c.Get(ctxUserID)
	id, _ := userID.(uuid.UUID)
	return id, c.GetString(ctxUserRole)
}
