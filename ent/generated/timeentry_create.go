// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gurkanbulca/taskboard/ent/generated/project"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/ent/generated/timeentry"
	"github.com/gurkanbulca/taskboard/ent/generated/user"
)

// TimeEntryCreate is the builder for creating a TimeEntry entity.
type TimeEntryCreate struct {
	config
	mutation *TimeEntryMutation
	hooks    []Hook
}

// SetHours sets the "hours" field.
func (tec *TimeEntryCreate) SetHours(f float64) *TimeEntryCreate {
	tec.mutation.SetHours(f)
	return tec
}

// SetDescription sets the "description" field.
func (tec *TimeEntryCreate) SetDescription(s string) *TimeEntryCreate {
	tec.mutation.SetDescription(s)
	return tec
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (tec *TimeEntryCreate) SetNillableDescription(s *string) *TimeEntryCreate {
	if s != nil {
		tec.SetDescription(*s)
	}
	return tec
}

// SetDate sets the "date" field.
func (tec *TimeEntryCreate) SetDate(t time.Time) *TimeEntryCreate {
	tec.mutation.SetDate(t)
	return tec
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (tec *TimeEntryCreate) SetNillableDate(t *time.Time) *TimeEntryCreate {
	if t != nil {
		tec.SetDate(*t)
	}
	return tec
}

// SetTaskID sets the "task_id" field.
func (tec *TimeEntryCreate) SetTaskID(u uuid.UUID) *TimeEntryCreate {
	tec.mutation.SetTaskID(u)
	return tec
}

// SetProjectID sets the "project_id" field.
func (tec *TimeEntryCreate) SetProjectID(u uuid.UUID) *TimeEntryCreate {
	tec.mutation.SetProjectID(u)
	return tec
}

// SetUserID sets the "user_id" field.
func (tec *TimeEntryCreate) SetUserID(u uuid.UUID) *TimeEntryCreate {
	tec.mutation.SetUserID(u)
	return tec
}

// SetCreatedAt sets the "created_at" field.
func (tec *TimeEntryCreate) SetCreatedAt(t time.Time) *TimeEntryCreate {
	tec.mutation.SetCreatedAt(t)
	return tec
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (tec *TimeEntryCreate) SetNillableCreatedAt(t *time.Time) *TimeEntryCreate {
	if t != nil {
		tec.SetCreatedAt(*t)
	}
	return tec
}

// SetID sets the "id" field.
func (tec *TimeEntryCreate) SetID(u uuid.UUID) *TimeEntryCreate {
	tec.mutation.SetID(u)
	return tec
}

// SetNillableID sets the "id" field if the given value is not nil.
func (tec *TimeEntryCreate) SetNillableID(u *uuid.UUID) *TimeEntryCreate {
	if u != nil {
		tec.SetID(*u)
	}
	return tec
}

// SetTask sets the "task" edge to the Task entity.
func (tec *TimeEntryCreate) SetTask(t *Task) *TimeEntryCreate {
	return tec.SetTaskID(t.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (tec *TimeEntryCreate) SetProject(p *Project) *TimeEntryCreate {
	return tec.SetProjectID(p.ID)
}

// SetUser sets the "user" edge to the User entity.
func (tec *TimeEntryCreate) SetUser(u *User) *TimeEntryCreate {
	return tec.SetUserID(u.ID)
}

// Mutation returns the TimeEntryMutation object of the builder.
func (tec *TimeEntryCreate) Mutation() *TimeEntryMutation {
	return tec.mutation
}

// Save creates the TimeEntry in the database.
func (tec *TimeEntryCreate) Save(ctx context.Context) (*TimeEntry, error) {
	tec.defaults()
	return withHooks(ctx, tec.sqlSave, tec.mutation, tec.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tec *TimeEntryCreate) SaveX(ctx context.Context) *TimeEntry {
	v, err := tec.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tec *TimeEntryCreate) Exec(ctx context.Context) error {
	_, err := tec.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tec *TimeEntryCreate) ExecX(ctx context.Context) {
	if err := tec.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tec *TimeEntryCreate) defaults() {
	if _, ok := tec.mutation.Date(); !ok {
		v := timeentry.DefaultDate()
		tec.mutation.SetDate(v)
	}
	if _, ok := tec.mutation.CreatedAt(); !ok {
		v := timeentry.DefaultCreatedAt()
		tec.mutation.SetCreatedAt(v)
	}
	if _, ok := tec.mutation.ID(); !ok {
		v := timeentry.DefaultID()
		tec.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tec *TimeEntryCreate) check() error {
	if _, ok := tec.mutation.Hours(); !ok {
		return &ValidationError{Name: "hours", err: errors.New(`generated: missing required field "TimeEntry.hours"`)}
	}
	if v, ok := tec.mutation.Hours(); ok {
		if err := timeentry.HoursValidator(v); err != nil {
			return &ValidationError{Name: "hours", err: fmt.Errorf(`generated: validator failed for field "TimeEntry.hours": %w`, err)}
		}
	}
	if _, ok := tec.mutation.Date(); !ok {
		return &ValidationError{Name: "date", err: errors.New(`generated: missing required field "TimeEntry.date"`)}
	}
	if _, ok := tec.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`generated: missing required field "TimeEntry.task_id"`)}
	}
	if _, ok := tec.mutation.ProjectID(); !ok {
		return &ValidationError{Name: "project_id", err: errors.New(`generated: missing required field "TimeEntry.project_id"`)}
	}
	if _, ok := tec.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`generated: missing required field "TimeEntry.user_id"`)}
	}
	if _, ok := tec.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "TimeEntry.created_at"`)}
	}
	if len(tec.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`generated: missing required edge "TimeEntry.task"`)}
	}
	if len(tec.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`generated: missing required edge "TimeEntry.project"`)}
	}
	if len(tec.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`generated: missing required edge "TimeEntry.user"`)}
	}
	return nil
}

func (tec *TimeEntryCreate) sqlSave(ctx context.Context) (*TimeEntry, error) {
	if err := tec.check(); err != nil {
		return nil, err
	}
	_node, _spec := tec.createSpec()
	if err := sqlgraph.CreateNode(ctx, tec.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	tec.mutation.id = &_node.ID
	tec.mutation.done = true
	return _node, nil
}

func (tec *TimeEntryCreate) createSpec() (*TimeEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &TimeEntry{config: tec.config}
		_spec = sqlgraph.NewCreateSpec(timeentry.Table, sqlgraph.NewFieldSpec(timeentry.FieldID, field.TypeUUID))
	)
	if id, ok := tec.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := tec.mutation.Hours(); ok {
		_spec.SetField(timeentry.FieldHours, field.TypeFloat64, value)
		_node.Hours = value
	}
	if value, ok := tec.mutation.Description(); ok {
		_spec.SetField(timeentry.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := tec.mutation.Date(); ok {
		_spec.SetField(timeentry.FieldDate, field.TypeTime, value)
		_node.Date = value
	}
	if value, ok := tec.mutation.CreatedAt(); ok {
		_spec.SetField(timeentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := tec.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeentry.TaskTable,
			Columns: []string{timeentry.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.TaskID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tec.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeentry.ProjectTable,
			Columns: []string{timeentry.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.ProjectID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := tec.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeentry.UserTable,
			Columns: []string{timeentry.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// TimeEntryCreateBulk is the builder for creating many TimeEntry entities in bulk.
type TimeEntryCreateBulk struct {
	config
	err      error
	builders []*TimeEntryCreate
}

// Save creates the TimeEntry entities in the database.
func (tecb *TimeEntryCreateBulk) Save(ctx context.Context) ([]*TimeEntry, error) {
	if tecb.err != nil {
		return nil, tecb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(tecb.builders))
	nodes := make([]*TimeEntry, len(tecb.builders))
	mutators := make([]Mutator, len(tecb.builders))
	for i := range tecb.builders {
		func(i int, root context.Context) {
			builder := tecb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TimeEntryMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, tecb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tecb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, tecb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tecb *TimeEntryCreateBulk) SaveX(ctx context.Context) []*TimeEntry {
	v, err := tecb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tecb *TimeEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := tecb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tecb *TimeEntryCreateBulk) ExecX(ctx context.Context) {
	if err := tecb.Exec(ctx); err != nil {
		panic(err)
	}
}
