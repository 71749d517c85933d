// internal/handler/comments.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type commentRequest struct {
	Content          string   `json:"content" binding:"required,max=1000"`
	MentionedUserIDs []string `json:"mentionedUserIds"`
}

// ListComments returns a task's comments.
func (h *Handler) ListComments(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	comments, err := h.svc.Comments.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		h.error(c, err)
		return
	}

	resp := make([]commentResponse, len(comments))
	for i, cm := range comments {
		resp[i] = newCommentResponse(cm)
	}
	c.JSON(http.StatusOK, resp)
}

// CreateComment adds a comment with optional @-mentions.
func (h *Handler) CreateComment(c *gin.Context) {
	actor := currentActor(c)

	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req commentRequest
	if !h.bindJSON(c, &req) {
		return
	}

	mentioned := make([]uuid.UUID, 0, len(req.MentionedUserIDs))
	for _, raw := range req.MentionedUserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":       "表单验证失败",
				"fieldErrors": map[string]string{"mentionedUserIds": "无效的用户ID"},
			})
			return
		}
		mentioned = append(mentioned, id)
	}

	cm, err := h.svc.Comments.Create(c.Request.Context(), actor, taskID, req.Content, mentioned)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCommentResponse(cm))
}

// DeleteComment removes a comment; author only.
func (h *Handler) DeleteComment(c *gin.Context) {
	actor := currentActor(c)

	commentID, ok := parseUUIDParam(c, "commentId")
	if !ok {
		return
	}

	if err := h.svc.Comments.Delete(c.Request.Context(), actor, commentID); err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}
