package middleware

import (
	"net/http"

	"refresh-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

// ключи сессии
const (
	SessionUserID = "user_id"
	SessionRole   = "role"
)

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := CurrentUser(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Debes iniciar sesión"})
			return
		}
		c.Next()
	}
}

// RequireRole пропускает только перечисленные роли. Роль берётся из
// пользователя, загруженного InjectUser, а не из cookie.
func RequireRole(roles ...models.UserRole) gin.HandlerFunc {
	roleSet := map[models.UserRole]struct{}{}
	for _, r := range roles {
		roleSet[r] = struct{}{}
	}

	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Debes iniciar sesión"})
			return
		}
		if _, ok := roleSet[user.Role]; !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "No tienes permisos para esta acción"})
			return
		}
		c.Next()
	}
}

// Login сохраняет пользователя в сессии.
func Login(c *gin.Context, user *models.User) error {
	sess := sessions.Default(c)
	sess.Set(SessionUserID, user.ID)
	sess.Set(SessionRole, string(user.Role))
	return sess.Save()
}

func Logout(c *gin.Context) error {
	sess := sessions.Default(c)
	sess.Clear()
	return sess.Save()
}
