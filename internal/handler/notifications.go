// internal/handler/notifications.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListNotifications returns the actor's latest notifications,
// optionally unread ones only.
func (h *Handler) ListNotifications(c *gin.Context) {
	actor := currentActor(c)

	unreadOnly := c.Query("unreadOnly") == "true"

	notifications, err := h.svc.Notifications.List(c.Request.Context(), actor.ID, unreadOnly)
	if err != nil {
		h.error(c, err)
		return
	}

	resp := make([]notificationResponse, len(notifications))
	for i, n := range notifications {
		resp[i] = newNotificationResponse(n)
	}
	c.JSON(http.StatusOK, resp)
}

// MarkNotificationRead marks one of the actor's notifications read.
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	n, err := h.svc.Notifications.MarkRead(c.Request.Context(), actor.ID, id)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newNotificationResponse(n))
}

// MarkAllNotificationsRead marks all of the actor's unread
// notifications read.
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	actor := currentActor(c)

	count, err := h.svc.Notifications.MarkAllRead(c.Request.Context(), actor.ID)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "标记成功", "count": count})
}

// DeleteNotification removes one of the actor's notifications.
func (h *Handler) DeleteNotification(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Notifications.Delete(c.Request.Context(), actor.ID, id); err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
