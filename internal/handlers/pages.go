package handlers

import (
	"net/http"

	"refresh-tracker/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Index показывает, есть ли активная сессия.
func (h *Handler) Index(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"authenticated": true,
		"username":      user.Username,
		"role":          user.Role,
	})
}
