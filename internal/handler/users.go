// internal/handler/users.go
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gurkanbulca/taskboard/internal/service"
)

type createUserRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=6"`
}

type updateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=100"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}

// ListUsers serves two callers: ?all=true lists everyone for the
// management page, ?q= feeds the @-mention autocomplete. Without
// either it answers an empty list.
func (h *Handler) ListUsers(c *gin.Context) {
	actor := currentActor(c)

	if c.Query("all") == "true" {
		users, err := h.svc.Users.ListAll(c.Request.Context())
		if err != nil {
			h.error(c, err)
			return
		}

		resp := make([]userResponse, len(users))
		for i, u := range users {
			resp[i] = newUserResponse(u)
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	if query := c.Query("q"); query != "" {
		users, err := h.svc.Users.Search(c.Request.Context(), actor.ID, query)
		if err != nil {
			h.error(c, err)
			return
		}

		resp := make([]*userSummary, len(users))
		for i, u := range users {
			resp[i] = newUserSummary(u)
		}
		c.JSON(http.StatusOK, resp)
		return
	}

	c.JSON(http.StatusOK, []userResponse{})
}

// CreateUser adds a user through the management page.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.svc.Users.Create(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusCreated, newUserResponse(u))
}

// GetUser returns a single user.
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	u, err := h.svc.Users.Get(c.Request.Context(), id)
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(u))
}

// UpdateUser changes a user's name, email or password.
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req updateUserRequest
	if !h.bindJSON(c, &req) {
		return
	}

	u, err := h.svc.Users.Update(c.Request.Context(), id, service.UserUpdateInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, newUserResponse(u))
}

// DeleteUser removes a user; self-deletion is rejected.
func (h *Handler) DeleteUser(c *gin.Context) {
	actor := currentActor(c)

	id, ok := parseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.svc.Users.Delete(c.Request.Context(), actor.ID, id); err != nil {
		h.error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "用户删除成功"})
}
