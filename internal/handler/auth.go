// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates a new account.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.svc.Auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "注册成功",
		"user":    newUserResponse(u),
	})
}

// Login verifies credentials and sets the session cookie.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, token, err := h.svc.Auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.error(c, err)
		return
	}

	h.setSessionCookie(c, token)

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(u)})
}

// Logout clears the session cookie.
func (h *Handler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "已退出登录"})
}

// Me returns the user behind the current session.
func (h *Handler) Me(c *gin.Context) {
	actor := currentActor(c)

	u, err := h.svc.Auth.CurrentUser(c.Request.Context(), actor.ID)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": newUserResponse(u)})
}
