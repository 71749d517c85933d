// internal/handler/tasks.go
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/gurkanbulca/taskboard/internal/repository"
	"github.com/gurkanbulca/taskboard/internal/service"
)

type taskRequest struct {
	Title          string     `json:"title" binding:"required,max=200"`
	Description    string     `json:"description" binding:"max=2000"`
	Priority       string     `json:"priority" binding:"omitempty,oneof=LOW MEDIUM HIGH URGENT"`
	Status         string     `json:"status" binding:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	StartDate      *time.Time `json:"startDate"`
	DueDate        *time.Time `json:"dueDate"`
	EstimatedHours *float64   `json:"estimatedHours" binding:"omitempty,gt=0"`
	ProjectID      string     `json:"projectId"`
	AssignedUserID string     `json:"assignedUserId"`
}

type taskStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=TODO IN_PROGRESS DONE"`
}

// parseOptionalID turns the id strings the browser app sends into an
// optional UUID. Empty and the literal "none" both mean no reference.
func parseOptionalID(c *gin.Context, field, value string) (*uuid.UUID, bool) {
	if value == "" || value == "none" {
		return nil, true
	}
	id, err := uuid.Parse(value)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":       "表单验证失败",
			"fieldErrors": map[string]string{field: "无效的ID"},
		})
		return nil, false
	}
	return &id, true
}

func (h *Handler) taskInput(c *gin.Context, req taskRequest) (service.TaskInput, bool) {
	projectID, ok := parseOptionalID(c, "projectId", req.ProjectID)
	if !ok {
		return service.TaskInput{}, false
	}
	assignedUserID, ok := parseOptionalID(c, "assignedUserId", req.AssignedUserID)
	if !ok {
		return service.TaskInput{}, false
	}

	return service.TaskInput{
		Title:          req.Title,
		Description:    req.Description,
		Status:         req.Status,
		Priority:       req.Priority,
		StartDate:      req.StartDate,
		DueDate:        req.DueDate,
		EstimatedHours: req.EstimatedHours,
		ProjectID:      projectID,
		AssignedUserID: assignedUserID,
	}, true
}

// ListTasks returns the tasks the actor owns or is assigned to.
func (h *Handler) ListTasks(c *gin.Context) {
	actor := currentActor(c)

	var filter repository.ListFilter
	if status := c.Query("status"); status != "" {
		if !validTaskStatus(status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的状态值"})
			return
		}
		filter.Status = &status
	}
	if priority := c.Query("priority"); priority != "" {
		if !validTaskPriority(priority) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的优先级"})
			return
		}
		filter.Priority = &priority
	}
	if raw := c.Query("projectId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的项目ID"})
			return
		}
		filter.ProjectID = &id
	}
	if raw := c.Query("dueBefore"); raw != "" {
		cutoff, err := time.Parse("2006-01-02", raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的日期"})
			return
		}
		filter.DueBefore = &cutoff
	}

	tasks, err := h.svc.Tasks.List(c.Request.Context(), actor.ID, filter)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponses(tasks))
}

// CreateTask creates a task owned by the actor.
func (h *Handler) CreateTask(c *gin.Context) {
	actor := currentActor(c)

	var req taskRequest
	if !h.bindJSON(c, &req) {
		return
	}

	input, ok := h.taskInput(c, req)
	if !ok {
		return
	}

	t, err := h.svc.Tasks.Create(c.Request.Context(), actor, input)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, newTaskResponse(t))
}

// GetTask returns a single task visible to the actor.
func (h *Handler) GetTask(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	t, err := h.svc.Tasks.Get(c.Request.Context(), actor.ID, id)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(t))
}

// UpdateTask overwrites a task.
func (h *Handler) UpdateTask(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req taskRequest
	if !h.bindJSON(c, &req) {
		return
	}

	input, ok := h.taskInput(c, req)
	if !ok {
		return
	}

	t, err := h.svc.Tasks.Update(c.Request.Context(), actor, id, input)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(t))
}

// UpdateTaskStatus overwrites only the status field.
func (h *Handler) UpdateTaskStatus(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req taskStatusRequest
	if !h.bindJSON(c, &req) {
		return
	}

	t, err := h.svc.Tasks.UpdateStatus(c.Request.Context(), actor, id, req.Status)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newTaskResponse(t))
}

// DeleteTask removes a task; owner only.
func (h *Handler) DeleteTask(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Tasks.Delete(c.Request.Context(), actor, id); err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "任务删除成功"})
}

func validTaskStatus(s string) bool {
	switch s {
	case "TODO", "IN_PROGRESS", "DONE":
		return true
	}
	return false
}

func validTaskPriority(p string) bool {
	switch p {
	case "LOW", "MEDIUM", "HIGH", "URGENT":
		return true
	}
	return false
}
