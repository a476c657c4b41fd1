package middleware

import (
	"refresh-tracker/internal/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const currentUserKey = "CurrentUser"

// InjectUser загружает пользователя сессии и кладёт его в контекст запроса.
func InjectUser(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessions.Default(c)

		if uidRaw := sess.Get(SessionUserID); uidRaw != nil {
			if uid, ok := uidRaw.(uint); ok && uid > 0 {
				var user models.User
				if err := db.WithContext(c.Request.Context()).First(&user, uid).Error; err == nil {
					c.Set(currentUserKey, &user)
				}
			}
		}

		c.Next()
	}
}

func CurrentUser(c *gin.Context) (*models.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*models.User)
	return u, ok && u != nil
}

// Actor возвращает имя пользователя для журналов, пустое для анонимного запроса.
func Actor(c *gin.Context) string {
	if u, ok := CurrentUser(c); ok {
		return u.Username
	}
	return ""
}
