package middleware

import (
	"net/http"
	"strings"

	"rewards_miniapp/internal/model"
	"rewards_miniapp/internal/service"
	"rewards_miniapp/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const AdminContextKey = "admin"

type Authorization struct {
	adminService service.AdminServiceI
}

func NewAuthorization(adminService service.AdminServiceI) *Authorization {
	return &Authorization{
		adminService: adminService,
	}
}

// RequireAdmin resolves the Bearer token to an active admin and stores it in
// the context under AdminContextKey.
func (a *Authorization) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization required"})
			return
		}

		admin, err := a.adminService.Authorize(c.Request.Context(), token)
		if err != nil {
			log.Info("admin authorization failed", zap.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			return
		}

		c.Set(AdminContextKey, admin)
		c.Next()
	}
}

// RequireSuperAdmin must run after RequireAdmin.
func (a *Authorization) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.Logger()

		admin, ok := AdminFromContext(c)
		if !ok {
			log.Error("admin not found in context")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		if admin.Role != model.RoleSuperAdmin {
			log.Info("unauthorized access attempt to super admin endpoint",
				zap.String("admin_id", admin.ID.String()))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "super admin access required"})
			return
		}

		c.Next()
	}
}

func AdminFromContext(c *gin.Context) (*model.Admin, bool) {
	value, exists := c.Get(AdminContextKey)
	if !exists {
		return nil, false
	}
	admin, ok := value.(*model.Admin)
	return admin, ok && admin != nil
}

func bearerToken(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
