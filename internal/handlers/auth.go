package handlers

import (
	"net/http"

	"refresh-tracker/internal/middleware"
	"refresh-tracker/internal/users"

	"github.com/gin-gonic/gin"
)

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if !bind(c, &form) {
		return
	}

	user, err := h.Users.Authenticate(c.Request.Context(), form.Username, form.Password)
	if err != nil {
		h.log.WithField("username", form.Username).Warn("failed login")
		h.fail(c, err)
		return
	}
	if err := middleware.Login(c, user); err != nil {
		h.fail(c, err)
		return
	}

	h.log.WithField("username", user.Username).Info("user logged in")
	c.JSON(http.StatusOK, gin.H{"username": user.Username, "role": user.Role})
}

func (h *Handler) Logout(c *gin.Context) {
	if err := middleware.Logout(c); err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Sesión cerrada"})
}

func (h *Handler) Me(c *gin.Context) {
	user, _ := middleware.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"id": user.ID, "username": user.Username, "role": user.Role})
}

// CreateUser доступен только администратору.
func (h *Handler) CreateUser(c *gin.Context) {
	var form users.NewUser
	if !bind(c, &form) {
		return
	}
	user, err := h.Users.Create(c.Request.Context(), form, actor(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"role":     user.Role,
		"message":  "Usuario " + user.Username + " creado",
	})
}

func (h *Handler) ListUsers(c *gin.Context) {
	list, err := h.Users.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]gin.H, 0, len(list))
	for _, u := range list {
		out = append(out, gin.H{"id": u.ID, "username": u.Username, "role": u.Role, "created_at": u.CreatedAt})
	}
	c.JSON(http.StatusOK, out)
}
