// internal/handler/handler.go
package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gurkanbulca/taskboard/internal/middleware"
	"github.com/gurkanbulca/taskboard/internal/repository"
	"github.com/gurkanbulca/taskboard/internal/service"
	"github.com/gurkanbulca/taskboard/pkg/auth"
)

// Services bundles the business services the HTTP layer dispatches to.
type Services struct {
	Auth          *service.AuthService
	Tasks         *service.TaskService
	Comments      *service.CommentService
	TimeEntries   *service.TimeEntryService
	Projects      *service.ProjectService
	Users         *service.UserService
	Notifications *service.NotificationService
}

type Handler struct {
	log           zerolog.Logger
	tokens        *auth.TokenManager
	svc           Services
	stats         *repository.StatsRepository
	startedAt     time.Time
	secureCookies bool
}

func New(logger zerolog.Logger, tokens *auth.TokenManager, svc Services, stats *repository.StatsRepository, secureCookies bool) *Handler {
	return &Handler{
		log:           logger,
		tokens:        tokens,
		svc:           svc,
		stats:         stats,
		startedAt:     time.Now(),
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts every route on the engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api")

	api.POST("/auth/register", h.Register)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)

	authed := api.Group("", middleware.RequireSession(h.tokens))

	authed.GET("/auth/me", h.Me)

	authed.GET("/tasks", h.ListTasks)
	authed.POST("/tasks", h.CreateTask)
	authed.GET("/tasks/:id", h.GetTask)
	authed.PUT("/tasks/:id", h.UpdateTask)
	authed.DELETE("/tasks/:id", h.DeleteTask)
	authed.PATCH("/tasks/:id/status", h.UpdateTaskStatus)

	authed.GET("/tasks/:id/comments", h.ListComments)
	authed.POST("/tasks/:id/comments", h.CreateComment)
	authed.DELETE("/tasks/:id/comments/:commentId", h.DeleteComment)

	authed.GET("/tasks/:id/time-entries", h.ListTaskTimeEntries)
	authed.POST("/tasks/:id/time-entries", h.CreateTimeEntry)
	authed.DELETE("/tasks/:id/time-entries/:entryId", h.DeleteTimeEntry)
	authed.GET("/time-entries", h.ListTimeEntries)

	authed.GET("/projects", h.ListProjects)
	authed.POST("/projects", h.CreateProject)
	authed.GET("/projects/:id", h.GetProject)
	authed.PUT("/projects/:id", h.UpdateProject)
	authed.DELETE("/projects/:id", h.DeleteProject)

	authed.GET("/users", h.ListUsers)
	authed.POST("/users", h.CreateUser)
	authed.GET("/users/:id", h.GetUser)
	authed.PUT("/users/:id", h.UpdateUser)
	authed.DELETE("/users/:id", h.DeleteUser)

	authed.GET("/notifications", h.ListNotifications)
	authed.PATCH("/notifications/mark-all-read", h.MarkAllNotificationsRead)
	authed.PATCH("/notifications/:id/mark-read", h.MarkNotificationRead)
	authed.DELETE("/notifications/:id", h.DeleteNotification)
}

// currentActor returns the actor set by the session middleware.
func currentActor(c *gin.Context) service.Actor {
	actor, _ := middleware.ActorFromContext(c)
	return actor
}

// parseUUIDParam parses a path parameter as a UUID, answering 400 on
// malformed input.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "无效的ID"})
		return uuid.Nil, false
	}
	return id, true
}
