// internal/handler/projects.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurkanbulca/taskboard/internal/service"
)

type projectRequest struct {
	Name         string   `json:"name" binding:"required,max=100"`
	Description  string   `json:"description" binding:"max=500"`
	Status       string   `json:"status" binding:"omitempty,oneof=ACTIVE COMPLETED"`
	PlannedHours *float64 `json:"plannedHours" binding:"omitempty,gt=0"`
}

// ListProjects returns the actor's projects with stats.
func (h *Handler) ListProjects(c *gin.Context) {
	actor := currentActor(c)

	var status *string
	if raw := c.Query("status"); raw != "" {
		if raw != "ACTIVE" && raw != "COMPLETED" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的状态值"})
			return
		}
		status = &raw
	}

	projects, err := h.svc.Projects.List(c.Request.Context(), actor.ID, status)
	if err != nil {
		h.error(c, err)
		return
	}

	resp := make([]projectResponse, len(projects))
	for i, p := range projects {
		resp[i] = newProjectWithStatsResponse(p)
	}
	c.JSON(http.StatusOK, resp)
}

// CreateProject creates a project owned by the actor.
func (h *Handler) CreateProject(c *gin.Context) {
	actor := currentActor(c)

	var req projectRequest
	if !h.bindJSON(c, &req) {
		return
	}

	p, err := h.svc.Projects.Create(c.Request.Context(), actor, service.ProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		Status:       req.Status,
		PlannedHours: req.PlannedHours,
	})
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, newProjectResponse(p))
}

// GetProject returns one of the actor's projects with stats.
func (h *Handler) GetProject(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	p, err := h.svc.Projects.Get(c.Request.Context(), actor.ID, id)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newProjectWithStatsResponse(p))
}

// UpdateProject overwrites one of the actor's projects.
func (h *Handler) UpdateProject(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req projectRequest
	if !h.bindJSON(c, &req) {
		return
	}

	p, err := h.svc.Projects.Update(c.Request.Context(), actor, id, service.ProjectInput{
		Name:         req.Name,
		Description:  req.Description,
		Status:       req.Status,
		PlannedHours: req.PlannedHours,
	})
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newProjectResponse(p))
}

// DeleteProject removes one of the actor's projects.
func (h *Handler) DeleteProject(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Projects.Delete(c.Request.Context(), actor, id); err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "项目删除成功"})
}
