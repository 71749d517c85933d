// internal/service/task_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/internal/repository"
)

type TaskService struct {
	client *ent.Client
	repo   *repository.TaskRepository
}

func NewTaskService(client *ent.Client, repo *repository.TaskRepository) *TaskService {
	return &TaskService{
		client: client,
		repo:   repo,
	}
}

// TaskInput carries the fields of a create or full-update request.
type TaskInput struct {
	Title          string
	Description    string
	Status         string
	Priority       string
	StartDate      *time.Time
	DueDate        *time.Time
	EstimatedHours *float64
	ProjectID      *uuid.UUID
	AssignedUserID *uuid.UUID
}

// List returns the tasks the actor owns or is assigned to.
func (s *TaskService) List(ctx context.Context, actorID uuid.UUID, filter repository.ListFilter) ([]*ent.Task, error) {
	tasks, err := s.repo.ListVisible(ctx, actorID, filter)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

// Get returns a single task visible to the actor.
func (s *TaskService) Get(ctx context.Context, actorID, id uuid.UUID) (*ent.Task, error) {
	t, err := s.repo.GetVisible(ctx, id, actorID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// Create creates a task owned by the actor.
func (s *TaskService) Create(ctx context.Context, actor Actor, input TaskInput) (*ent.Task, error) {
	create := s.client.Task.
		Create().
		SetTitle(input.Title).
		SetDescription(input.Description).
		SetUserID(actor.ID).
		SetNillableStartDate(input.StartDate).
		SetNillableDueDate(input.DueDate).
		SetNillableEstimatedHours(input.EstimatedHours).
		SetNillableProjectID(input.ProjectID).
		SetNillableAssignedUserID(input.AssignedUserID)

	if input.Status != "" {
		create = create.SetStatus(task.Status(input.Status))
	}
	if input.Priority != "" {
		create = create.SetPriority(task.Priority(input.Priority))
	}

	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	return s.repo.GetVisible(ctx, t.ID, actor.ID)
}

// Update overwrites a task visible to the actor. Reassigning the task
// to a new user notifies them; a status change notifies the assignee.
func (s *TaskService) Update(ctx context.Context, actor Actor, id uuid.UUID, input TaskInput) (*ent.Task, error) {
	existing, err := s.repo.GetVisible(ctx, id, actor.ID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	update := s.client.Task.
		UpdateOneID(id).
		SetTitle(input.Title).
		SetDescription(input.Description)

	if input.Status != "" {
		update = update.SetStatus(task.Status(input.Status))
	}
	if input.Priority != "" {
		update = update.SetPriority(task.Priority(input.Priority))
	}

	if input.StartDate != nil {
		update = update.SetStartDate(*input.StartDate)
	} else {
		update = update.ClearStartDate()
	}
	if input.DueDate != nil {
		update = update.SetDueDate(*input.DueDate)
	} else {
		update = update.ClearDueDate()
	}
	if input.EstimatedHours != nil {
		update = update.SetEstimatedHours(*input.EstimatedHours)
	} else {
		update = update.ClearEstimatedHours()
	}
	if input.ProjectID != nil {
		update = update.SetProjectID(*input.ProjectID)
	} else {
		update = update.ClearProjectID()
	}
	if input.AssignedUserID != nil {
		update = update.SetAssignedUserID(*input.AssignedUserID)
	} else {
		update = update.ClearAssignedUserID()
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	// Reassignment to a new user who is not the actor
	wasAssigned := existing.AssignedUserID != nil
	if input.AssignedUserID != nil &&
		(!wasAssigned || *existing.AssignedUserID != *input.AssignedUserID) &&
		*input.AssignedUserID != actor.ID {
		if err := notifyTaskAssigned(ctx, s.client.Notification, actor, updated, *input.AssignedUserID); err != nil {
			return nil, err
		}
	}

	// Status change notifies the assignee, not the updater
	if updated.Status != existing.Status &&
		updated.AssignedUserID != nil && *updated.AssignedUserID != actor.ID {
		content := fmt.Sprintf("%s 将任务\"%s\"的状态更新为\"%s\"", actor.Name, updated.Title, StatusLabel(updated.Status))
		if err := createNotification(ctx, s.client.Notification, "TASK_UPDATE", content, *updated.AssignedUserID, updated.ID, relatedTypeTask); err != nil {
			return nil, err
		}
	}

	return s.repo.GetVisible(ctx, id, actor.ID)
}

// UpdateStatus overwrites the task status without any legality guard
// (any status may move to any other) and, when the value actually
// changed, fans out one notification per distinct interested party.
// The write and the fan-out share one transaction.
func (s *TaskService) UpdateStatus(ctx context.Context, actor Actor, id uuid.UUID, newStatus string) (*ent.Task, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting transaction: %w", err)
	}

	t, err := tx.Task.
		Query().
		Where(task.ID(id), task.Or(task.UserID(actor.ID), task.AssignedUserID(actor.ID))).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, rollback(tx, ErrNotFound)
		}
		return nil, rollback(tx, fmt.Errorf("get task: %w", err))
	}

	prev := t.Status

	updated, err := tx.Task.
		UpdateOne(t).
		SetStatus(task.Status(newStatus)).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, fmt.Errorf("update task status: %w", err))
	}

	if updated.Status != prev {
		if err := notifyStatusChanged(ctx, tx.Notification, actor, updated, updated.Status); err != nil {
			return nil, rollback(tx, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit status update: %w", err)
	}

	return s.repo.GetVisible(ctx, id, actor.ID)
}

// Delete removes a task; only its owner may do so.
func (s *TaskService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	if _, err := s.repo.GetOwned(ctx, id, actor.ID); err != nil {
		if ent.IsNotFound(err) {
			// Distinguish "not mine" from "does not exist"
			if _, verr := s.repo.GetVisible(ctx, id, actor.ID); verr == nil {
				return ErrForbidden
			}
			return ErrNotFound
		}
		return fmt.Errorf("get task: %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}

// Helper function for transaction rollback
func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: %v", err, rerr)
	}
	return err
}
