// internal/service/project_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/project"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/internal/repository"
)

type ProjectService struct {
	client *ent.Client
	stats  *repository.StatsRepository
}

func NewProjectService(client *ent.Client, stats *repository.StatsRepository) *ProjectService {
	return &ProjectService{
		client: client,
		stats:  stats,
	}
}

// ProjectInput carries the fields of a create or update request.
type ProjectInput struct {
	Name         string
	Description  string
	Status       string
	PlannedHours *float64
}

// ProjectWithStats pairs a project with its derived numbers.
type ProjectWithStats struct {
	Project        *ent.Project
	TaskCount      int
	CompletedTasks int
	ActualHours    float64
}

// List returns the actor's projects, newest first, enriched with task
// counts and logged hours.
func (s *ProjectService) List(ctx context.Context, actorID uuid.UUID, status *string) ([]ProjectWithStats, error) {
	query := s.client.Project.
		Query().
		Where(project.UserID(actorID))

	if status != nil {
		query = query.Where(project.StatusEQ(project.Status(*status)))
	}

	projects, err := query.
		Order(ent.Desc(project.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	result := make([]ProjectWithStats, 0, len(projects))
	for _, p := range projects {
		stats, err := s.statsFor(ctx, p)
		if err != nil {
			return nil, err
		}
		result = append(result, stats)
	}
	return result, nil
}

// Get returns one of the actor's projects with its stats.
func (s *ProjectService) Get(ctx context.Context, actorID, id uuid.UUID) (ProjectWithStats, error) {
	p, err := s.client.Project.
		Query().
		Where(project.ID(id), project.UserID(actorID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ProjectWithStats{}, ErrNotFound
		}
		return ProjectWithStats{}, fmt.Errorf("get project: %w", err)
	}
	return s.statsFor(ctx, p)
}

func (s *ProjectService) statsFor(ctx context.Context, p *ent.Project) (ProjectWithStats, error) {
	taskCount, err := s.client.Task.
		Query().
		Where(task.ProjectID(p.ID)).
		Count(ctx)
	if err != nil {
		return ProjectWithStats{}, fmt.Errorf("count project tasks: %w", err)
	}

	completed, err := s.client.Task.
		Query().
		Where(task.ProjectID(p.ID), task.StatusEQ(task.Status("DONE"))).
		Count(ctx)
	if err != nil {
		return ProjectWithStats{}, fmt.Errorf("count completed tasks: %w", err)
	}

	hours, err := s.stats.ProjectActualHours(ctx, p.ID)
	if err != nil {
		return ProjectWithStats{}, err
	}

	return ProjectWithStats{
		Project:        p,
		TaskCount:      taskCount,
		CompletedTasks: completed,
		ActualHours:    hours,
	}, nil
}

// Create creates a project owned by the actor.
func (s *ProjectService) Create(ctx context.Context, actor Actor, input ProjectInput) (*ent.Project, error) {
	create := s.client.Project.
		Create().
		SetName(input.Name).
		SetDescription(input.Description).
		SetNillablePlannedHours(input.PlannedHours).
		SetUserID(actor.ID)

	if input.Status != "" {
		create = create.SetStatus(project.Status(input.Status))
	}

	p, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return p, nil
}

// Update overwrites one of the actor's projects.
func (s *ProjectService) Update(ctx context.Context, actor Actor, id uuid.UUID, input ProjectInput) (*ent.Project, error) {
	exists, err := s.client.Project.
		Query().
		Where(project.ID(id), project.UserID(actor.ID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if !exists {
		return nil, ErrNotFound
	}

	update := s.client.Project.
		UpdateOneID(id).
		SetName(input.Name).
		SetDescription(input.Description)

	if input.Status != "" {
		update = update.SetStatus(project.Status(input.Status))
	}
	if input.PlannedHours != nil {
		update = update.SetPlannedHours(*input.PlannedHours)
	} else {
		update = update.ClearPlannedHours()
	}

	p, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return p, nil
}

// Delete removes one of the actor's projects. Tasks keep existing with
// their project reference cleared; time entries cascade per the schema.
func (s *ProjectService) Delete(ctx context.Context, actor Actor, id uuid.UUID) error {
	exists, err := s.client.Project.
		Query().
		Where(project.ID(id), project.UserID(actor.ID)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	if !exists {
		return ErrNotFound
	}

	if err := s.client.Project.DeleteOneID(id).Exec(ctx); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
