// internal/handler/responses.go
package handler

import (
	"time"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/internal/service"
)

// Response shapes mirror what the browser app consumes. Password
// hashes never appear in any of them.

type userSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type userResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type projectSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type taskResponse struct {
	ID             uuid.UUID       `json:"id"`
	Title          string          `json:"title"`
	Description    string          `json:"description"`
	Status         string          `json:"status"`
	Priority       string          `json:"priority"`
	StartDate      *time.Time      `json:"startDate"`
	DueDate        *time.Time      `json:"dueDate"`
	EstimatedHours *float64        `json:"estimatedHours"`
	UserID         uuid.UUID       `json:"userId"`
	AssignedUserID *uuid.UUID      `json:"assignedUserId"`
	ProjectID      *uuid.UUID      `json:"projectId"`
	User           *userSummary    `json:"user,omitempty"`
	AssignedUser   *userSummary    `json:"assignedUser,omitempty"`
	Project        *projectSummary `json:"project,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

type commentResponse struct {
	ID        uuid.UUID    `json:"id"`
	Content   string       `json:"content"`
	TaskID    uuid.UUID    `json:"taskId"`
	UserID    uuid.UUID    `json:"userId"`
	User      *userSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}

type timeEntryResponse struct {
	ID          uuid.UUID    `json:"id"`
	Hours       float64      `json:"hours"`
	Description string       `json:"description"`
	Date        time.Time    `json:"date"`
	TaskID      uuid.UUID    `json:"taskId"`
	ProjectID   uuid.UUID    `json:"projectId"`
	UserID      uuid.UUID    `json:"userId"`
	User        *userSummary `json:"user,omitempty"`
	CreatedAt   time.Time    `json:"createdAt"`
}

type projectResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	Status         string    `json:"status"`
	PlannedHours   *float64  `json:"plannedHours"`
	UserID         uuid.UUID `json:"userId"`
	TaskCount      int       `json:"taskCount"`
	CompletedTasks int       `json:"completedTasks"`
	ActualHours    float64   `json:"actualHours"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

type notificationResponse struct {
	ID          uuid.UUID  `json:"id"`
	Type        string     `json:"type"`
	Content     string     `json:"content"`
	UserID      uuid.UUID  `json:"userId"`
	IsRead      bool       `json:"isRead"`
	RelatedID   *uuid.UUID `json:"relatedId"`
	RelatedType string     `json:"relatedType"`
	CreatedAt   time.Time  `json:"createdAt"`
}

func newUserSummary(u *ent.User) *userSummary {
	if u == nil {
		return nil
	}
	return &userSummary{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

func newUserResponse(u *ent.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

func newTaskResponse(t *ent.Task) taskResponse {
	resp := taskResponse{
		ID:             t.ID,
		Title:          t.Title,
		Description:    t.Description,
		Status:         string(t.Status),
		Priority:       string(t.Priority),
		StartDate:      t.StartDate,
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		UserID:         t.UserID,
		AssignedUserID: t.AssignedUserID,
		ProjectID:      t.ProjectID,
		User:           newUserSummary(t.Edges.Owner),
		AssignedUser:   newUserSummary(t.Edges.Assignee),
		CreatedAt:      t.CreatedAt,
		UpdatedAt:      t.UpdatedAt,
	}

	if p := t.Edges.Project; p != nil {
		resp.Project = &projectSummary{ID: p.ID, Name: p.Name}
	}

	return resp
}

func newTaskResponses(tasks []*ent.Task) []taskResponse {
	resp := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = newTaskResponse(t)
	}
	return resp
}

func newCommentResponse(c *ent.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID,
		Content:   c.Content,
		TaskID:    c.TaskID,
		UserID:    c.UserID,
		User:      newUserSummary(c.Edges.Author),
		CreatedAt: c.CreatedAt,
	}
}

func newTimeEntryResponse(e *ent.TimeEntry) timeEntryResponse {
	return timeEntryResponse{
		ID:          e.ID,
		Hours:       e.Hours,
		Description: e.Description,
		Date:        e.Date,
		TaskID:      e.TaskID,
		ProjectID:   e.ProjectID,
		UserID:      e.UserID,
		User:        newUserSummary(e.Edges.User),
		CreatedAt:   e.CreatedAt,
	}
}

func newProjectResponse(p *ent.Project) projectResponse {
	return projectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Status:       string(p.Status),
		PlannedHours: p.PlannedHours,
		UserID:       p.UserID,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func newProjectWithStatsResponse(p service.ProjectWithStats) projectResponse {
	resp := newProjectResponse(p.Project)
	resp.TaskCount = p.TaskCount
	resp.CompletedTasks = p.CompletedTasks
	resp.ActualHours = p.ActualHours
	return resp
}

func newNotificationResponse(n *ent.Notification) notificationResponse {
	return notificationResponse{
		ID:          n.ID,
		Type:        string(n.Type),
		Content:     n.Content,
		UserID:      n.UserID,
		IsRead:      n.IsRead,
		RelatedID:   n.RelatedID,
		RelatedType: n.RelatedType,
		CreatedAt:   n.CreatedAt,
	}
}
