// internal/service/timeentry_service.go
package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/project"
	"github.com/gurkanbulca/taskboard/ent/generated/timeentry"
)

// DefaultProjectName is the project that collects time entries logged
// against tasks with no project association.
const DefaultProjectName = "默认项目"

type TimeEntryService struct {
	client *ent.Client
}

func NewTimeEntryService(client *ent.Client) *TimeEntryService {
	return &TimeEntryService{
		client: client,
	}
}

// ListByTask returns a task's time entries, newest date first.
func (s *TimeEntryService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*ent.TimeEntry, error) {
	entries, err := s.client.TimeEntry.
		Query().
		Where(timeentry.TaskID(taskID)).
		Order(ent.Desc(timeentry.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return entries, nil
}

// TimeEntryFilter narrows the cross-task listing.
type TimeEntryFilter struct {
	TaskID    *uuid.UUID
	ProjectID *uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
}

// List returns the actor's own entries plus entries logged against the
// actor's projects.
func (s *TimeEntryService) List(ctx context.Context, actorID uuid.UUID, filter TimeEntryFilter) ([]*ent.TimeEntry, error) {
	projectIDs, err := s.client.Project.
		Query().
		Where(project.UserID(actorID)).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("list own projects: %w", err)
	}

	query := s.client.TimeEntry.
		Query().
		Where(timeentry.Or(
			timeentry.UserID(actorID),
			timeentry.ProjectIDIn(projectIDs...),
		))

	if filter.TaskID != nil {
		query = query.Where(timeentry.TaskID(*filter.TaskID))
	}
	if filter.ProjectID != nil {
		query = query.Where(timeentry.ProjectID(*filter.ProjectID))
	}
	if filter.StartDate != nil {
		query = query.Where(timeentry.DateGTE(*filter.StartDate))
	}
	if filter.EndDate != nil {
		query = query.Where(timeentry.DateLTE(*filter.EndDate))
	}

	entries, err := query.
		WithUser().
		WithTask().
		WithProject().
		Order(ent.Desc(timeentry.FieldDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	return entries, nil
}

// Create logs hours against a task. A task without a project gets its
// entry attached to the actor's default project, which is provisioned
// on first use and reused afterwards.
func (s *TimeEntryService) Create(ctx context.Context, actor Actor, taskID uuid.UUID, hours float64, description string) (*ent.TimeEntry, error) {
	if hours <= 0 {
		return nil, NewValidationError("hours", "工时必须大于0")
	}

	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	projectID := t.ProjectID
	if projectID == nil {
		p, err := s.EnsureDefaultProject(ctx, actor.ID)
		if err != nil {
			return nil, err
		}
		projectID = &p.ID
	}

	entry, err := s.client.TimeEntry.
		Create().
		SetHours(hours).
		SetDescription(description).
		SetTaskID(taskID).
		SetProjectID(*projectID).
		SetUserID(actor.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create time entry: %w", err)
	}
	return entry, nil
}

// EnsureDefaultProject returns the user's default project, creating it
// if the user has none yet. Repeated calls reuse the same row.
func (s *TimeEntryService) EnsureDefaultProject(ctx context.Context, userID uuid.UUID) (*ent.Project, error) {
	p, err := s.client.Project.
		Query().
		Where(project.UserID(userID), project.Name(DefaultProjectName)).
		First(ctx)
	if err == nil {
		return p, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("find default project: %w", err)
	}

	p, err = s.client.Project.
		Create().
		SetName(DefaultProjectName).
		SetUserID(userID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create default project: %w", err)
	}
	return p, nil
}

// Delete removes a time entry; only the user who logged it may do so.
func (s *TimeEntryService) Delete(ctx context.Context, actor Actor, entryID uuid.UUID) error {
	entry, err := s.client.TimeEntry.Get(ctx, entryID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get time entry: %w", err)
	}

	if entry.UserID != actor.ID {
		return ErrForbidden
	}

	if err := s.client.TimeEntry.DeleteOneID(entryID).Exec(ctx); err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}
