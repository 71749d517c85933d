// internal/repository/task_repository.go
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/predicate"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
)

type TaskRepository struct {
	client *ent.Client
}

func NewTaskRepository(client *ent.Client) *TaskRepository {
	return &TaskRepository{
		client: client,
	}
}

// visibleTo restricts a query to tasks the user owns or is assigned to.
func visibleTo(userID uuid.UUID) predicate.Task {
	return task.Or(
		task.UserID(userID),
		task.AssignedUserID(userID),
	)
}

// ListVisible returns the tasks visible to a user, newest first, with
// owner, assignee and project eager-loaded.
func (r *TaskRepository) ListVisible(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*ent.Task, error) {
	query := r.client.Task.Query().
		Where(visibleTo(userID))

	if filter.Status != nil {
		query = query.Where(task.StatusEQ(task.Status(*filter.Status)))
	}

	if filter.Priority != nil {
		query = query.Where(task.PriorityEQ(task.Priority(*filter.Priority)))
	}

	if filter.ProjectID != nil {
		query = query.Where(task.ProjectID(*filter.ProjectID))
	}

	if filter.DueBefore != nil {
		query = query.Where(task.DueDateLTE(*filter.DueBefore))
	}

	return query.
		Order(ent.Desc(task.FieldCreatedAt)).
		WithOwner().
		WithAssignee().
		WithProject().
		All(ctx)
}

// GetVisible returns a single task if the user owns it or is assigned
// to it.
func (r *TaskRepository) GetVisible(ctx context.Context, id, userID uuid.UUID) (*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.ID(id), visibleTo(userID)).
		WithOwner().
		WithAssignee().
		WithProject().
		Only(ctx)
}

// GetOwned returns a single task only for its owner.
func (r *TaskRepository) GetOwned(ctx context.Context, id, userID uuid.UUID) (*ent.Task, error) {
	return r.client.Task.
		Query().
		Where(task.ID(id), task.UserID(userID)).
		Only(ctx)
}

// Delete removes a task by ID.
func (r *TaskRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.client.Task.
		DeleteOneID(id).
		Exec(ctx)
}

// ListFilter narrows ListVisible results.
type ListFilter struct {
	Status    *string
	Priority  *string
	ProjectID *uuid.UUID
	DueBefore *time.Time
}
