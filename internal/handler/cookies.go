// internal/handler/cookies.go
package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/gurkanbulca/taskboard/internal/middleware"
)

func (h *Handler) setSessionCookie(c *gin.Context, token string) {
	maxAge := int(h.tokens.Duration().Seconds())
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", h.secureCookies, true)
}

func (h *Handler) clearSessionCookie(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookies, true)
}
