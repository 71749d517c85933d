// internal/handler/timeentries.go
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gurkanbulca/taskboard/internal/service"
)

type timeEntryRequest struct {
	Hours       float64 `json:"hours" binding:"required,gt=0"`
	Description string  `json:"description" binding:"max=200"`
}

// ListTaskTimeEntries returns a task's time entries.
func (h *Handler) ListTaskTimeEntries(c *gin.Context) {
	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	entries, err := h.svc.TimeEntries.ListByTask(c.Request.Context(), taskID)
	if err != nil {
		h.error(c, err)
		return
	}

	resp := make([]timeEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = newTimeEntryResponse(e)
	}
	c.JSON(http.StatusOK, resp)
}

// CreateTimeEntry logs hours against a task.
func (h *Handler) CreateTimeEntry(c *gin.Context) {
	actor := currentActor(c)

	taskID, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req timeEntryRequest
	if !h.bindJSON(c, &req) {
		return
	}

	entry, err := h.svc.TimeEntries.Create(c.Request.Context(), actor, taskID, req.Hours, req.Description)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTimeEntryResponse(entry))
}

// DeleteTimeEntry removes a time entry; the user who logged it only.
func (h *Handler) DeleteTimeEntry(c *gin.Context) {
	actor := currentActor(c)

	entryID, ok := parseUUIDParam(c, "entryId")
	if !ok {
		return
	}

	if err := h.svc.TimeEntries.Delete(c.Request.Context(), actor, entryID); err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "删除成功"})
}

// ListTimeEntries returns the actor's entries plus entries on the
// actor's projects, optionally filtered.
func (h *Handler) ListTimeEntries(c *gin.Context) {
	actor := currentActor(c)

	var filter service.TimeEntryFilter

	if raw := c.Query("taskId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的任务ID"})
			return
		}
		filter.TaskID = &id
	}
	if raw := c.Query("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
			return
		}
		filter.ProjectID = &id
	}
	if raw := c.Query("startDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的开始日期"})
			return
		}
		filter.StartDate = &t
	}
	if raw := c.Query("endDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的结束日期"})
			return
		}
		filter.EndDate = &t
	}

	entries, err := h.svc.TimeEntries.List(c.Request.Context(), actor.ID, filter)
	if err != nil {
		h.error(c, err)
		return
	}

	resp := make([]timeEntryResponse, len(entries))
	for i, e := range entries {
		resp[i] = newTimeEntryResponse(e)
	}
	c.JSON(http.StatusOK, resp)
}
