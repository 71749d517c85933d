// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gurkanbulca/taskboard/ent/generated/predicate"
	"github.com/gurkanbulca/taskboard/ent/generated/project"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/ent/generated/timeentry"
	"github.com/gurkanbulca/taskboard/ent/generated/user"
)

// TimeEntryUpdate is the builder for updating TimeEntry entities.
type TimeEntryUpdate struct {
	config
	hooks    []Hook
	mutation *TimeEntryMutation
}

// Where appends a list predicates to the TimeEntryUpdate builder.
func (teu *TimeEntryUpdate) Where(ps ...predicate.TimeEntry) *TimeEntryUpdate {
	teu.mutation.Where(ps...)
	return teu
}

// SetHours sets the "hours" field.
func (teu *TimeEntryUpdate) SetHours(f float64) *TimeEntryUpdate {
	teu.mutation.ResetHours()
	teu.mutation.SetHours(f)
	return teu
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (teu *TimeEntryUpdate) SetNillableHours(f *float64) *TimeEntryUpdate {
	if f != nil {
		teu.SetHours(*f)
	}
	return teu
}

// AddHours adds f to the "hours" field.
func (teu *TimeEntryUpdate) AddHours(f float64) *TimeEntryUpdate {
	teu.mutation.AddHours(f)
	return teu
}

// SetDescription sets the "description" field.
func (teu *TimeEntryUpdate) SetDescription(s string) *TimeEntryUpdate {
	teu.mutation.SetDescription(s)
	return teu
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (teu *TimeEntryUpdate) SetNillableDescription(s *string) *TimeEntryUpdate {
	if s != nil {
		teu.SetDescription(*s)
	}
	return teu
}

// ClearDescription clears the value of the "description" field.
func (teu *TimeEntryUpdate) ClearDescription() *TimeEntryUpdate {
	teu.mutation.ClearDescription()
	return teu
}

// SetDate sets the "date" field.
func (teu *TimeEntryUpdate) SetDate(t time.Time) *TimeEntryUpdate {
	teu.mutation.SetDate(t)
	return teu
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (teu *TimeEntryUpdate) SetNillableDate(t *time.Time) *TimeEntryUpdate {
	if t != nil {
		teu.SetDate(*t)
	}
	return teu
}

// SetTaskID sets the "task_id" field.
func (teu *TimeEntryUpdate) SetTaskID(u uuid.UUID) *TimeEntryUpdate {
	teu.mutation.SetTaskID(u)
	return teu
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (teu *TimeEntryUpdate) SetNillableTaskID(u *uuid.UUID) *TimeEntryUpdate {
	if u != nil {
		teu.SetTaskID(*u)
	}
	return teu
}

// SetProjectID sets the "project_id" field.
func (teu *TimeEntryUpdate) SetProjectID(u uuid.UUID) *TimeEntryUpdate {
	teu.mutation.SetProjectID(u)
	return teu
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (teu *TimeEntryUpdate) SetNillableProjectID(u *uuid.UUID) *TimeEntryUpdate {
	if u != nil {
		teu.SetProjectID(*u)
	}
	return teu
}

// SetUserID sets the "user_id" field.
func (teu *TimeEntryUpdate) SetUserID(u uuid.UUID) *TimeEntryUpdate {
	teu.mutation.SetUserID(u)
	return teu
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (teu *TimeEntryUpdate) SetNillableUserID(u *uuid.UUID) *TimeEntryUpdate {
	if u != nil {
		teu.SetUserID(*u)
	}
	return teu
}

// SetTask sets the "task" edge to the Task entity.
func (teu *TimeEntryUpdate) SetTask(t *Task) *TimeEntryUpdate {
	return teu.SetTaskID(t.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (teu *TimeEntryUpdate) SetProject(p *Project) *TimeEntryUpdate {
	return teu.SetProjectID(p.ID)
}

// SetUser sets the "user" edge to the User entity.
func (teu *TimeEntryUpdate) SetUser(u *User) *TimeEntryUpdate {
	return teu.SetUserID(u.ID)
}

// Mutation returns the TimeEntryMutation object of the builder.
func (teu *TimeEntryUpdate) Mutation() *TimeEntryMutation {
	return teu.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (teu *TimeEntryUpdate) ClearTask() *TimeEntryUpdate {
	teu.mutation.ClearTask()
	return teu
}

// ClearProject clears the "project" edge to the Project entity.
func (teu *TimeEntryUpdate) ClearProject() *TimeEntryUpdate {
	teu.mutation.ClearProject()
	return teu
}

// ClearUser clears the "user" edge to the User entity.
func (teu *TimeEntryUpdate) ClearUser() *TimeEntryUpdate {
	teu.mutation.ClearUser()
	return teu
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (teu *TimeEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, teu.sqlSave, teu.mutation, teu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (teu *TimeEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := teu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (teu *TimeEntryUpdate) Exec(ctx context.Context) error {
	_, err := teu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (teu *TimeEntryUpdate) ExecX(ctx context.Context) {
	if err := teu.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (teu *TimeEntryUpdate) check() error {
	if v, ok := teu.mutation.Hours(); ok {
		if err := timeentry.HoursValidator(v); err != nil {
			return &ValidationError{Name: "hours", err: fmt.Errorf(`generated: validator failed for field "TimeEntry.hours": %w`, err)}
		}
	}
	if teu.mutation.TaskCleared() && len(teu.mutation.TaskIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TimeEntry.task"`)
	}
	if teu.mutation.ProjectCleared() && len(teu.mutation.ProjectIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TimeEntry.project"`)
	}
	if teu.mutation.UserCleared() && len(teu.mutation.UserIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TimeEntry.user"`)
	}
	return nil
}

func (teu *TimeEntryUpdate) sqlSave(ctx context.Context) (n int, err error) {
	if err := teu.check(); err != nil {
		return n, err
	}
	_spec := sqlgraph.NewUpdateSpec(timeentry.Table, timeentry.Columns, sqlgraph.NewFieldSpec(timeentry.FieldID, field.TypeUUID))
	if ps := teu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := teu.mutation.Hours(); ok {
		_spec.SetField(timeentry.FieldHours, field.TypeFloat64, value)
	}
	if value, ok := teu.mutation.AddedHours(); ok {
		_spec.AddField(timeentry.FieldHours, field.TypeFloat64, value)
	}
	if value, ok := teu.mutation.Description(); ok {
		_spec.SetField(timeentry.FieldDescription, field.TypeString, value)
	}
	if teu.mutation.DescriptionCleared() {
		_spec.ClearField(timeentry.FieldDescription, field.TypeString)
	}
	if value, ok := teu.mutation.Date(); ok {
		_spec.SetField(timeentry.FieldDate, field.TypeTime, value)
	}
	if teu.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := teu.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if teu.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := teu.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if teu.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := teu.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, teu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	teu.mutation.done = true
	return n, nil
}

// TimeEntryUpdateOne is the builder for updating a single TimeEntry entity.
type TimeEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TimeEntryMutation
}

// SetHours sets the "hours" field.
func (teuo *TimeEntryUpdateOne) SetHours(f float64) *TimeEntryUpdateOne {
	teuo.mutation.ResetHours()
	teuo.mutation.SetHours(f)
	return teuo
}

// SetNillableHours sets the "hours" field if the given value is not nil.
func (teuo *TimeEntryUpdateOne) SetNillableHours(f *float64) *TimeEntryUpdateOne {
	if f != nil {
		teuo.SetHours(*f)
	}
	return teuo
}

// AddHours adds f to the "hours" field.
func (teuo *TimeEntryUpdateOne) AddHours(f float64) *TimeEntryUpdateOne {
	teuo.mutation.AddHours(f)
	return teuo
}

// SetDescription sets the "description" field.
func (teuo *TimeEntryUpdateOne) SetDescription(s string) *TimeEntryUpdateOne {
	teuo.mutation.SetDescription(s)
	return teuo
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (teuo *TimeEntryUpdateOne) SetNillableDescription(s *string) *TimeEntryUpdateOne {
	if s != nil {
		teuo.SetDescription(*s)
	}
	return teuo
}

// ClearDescription clears the value of the "description" field.
func (teuo *TimeEntryUpdateOne) ClearDescription() *TimeEntryUpdateOne {
	teuo.mutation.ClearDescription()
	return teuo
}

// SetDate sets the "date" field.
func (teuo *TimeEntryUpdateOne) SetDate(t time.Time) *TimeEntryUpdateOne {
	teuo.mutation.SetDate(t)
	return teuo
}

// SetNillableDate sets the "date" field if the given value is not nil.
func (teuo *TimeEntryUpdateOne) SetNillableDate(t *time.Time) *TimeEntryUpdateOne {
	if t != nil {
		teuo.SetDate(*t)
	}
	return teuo
}

// SetTaskID sets the "task_id" field.
func (teuo *TimeEntryUpdateOne) SetTaskID(u uuid.UUID) *TimeEntryUpdateOne {
	teuo.mutation.SetTaskID(u)
	return teuo
}

// SetNillableTaskID sets the "task_id" field if the given value is not nil.
func (teuo *TimeEntryUpdateOne) SetNillableTaskID(u *uuid.UUID) *TimeEntryUpdateOne {
	if u != nil {
		teuo.SetTaskID(*u)
	}
	return teuo
}

// SetProjectID sets the "project_id" field.
func (teuo *TimeEntryUpdateOne) SetProjectID(u uuid.UUID) *TimeEntryUpdateOne {
	teuo.mutation.SetProjectID(u)
	return teuo
}

// SetNillableProjectID sets the "project_id" field if the given value is not nil.
func (teuo *TimeEntryUpdateOne) SetNillableProjectID(u *uuid.UUID) *TimeEntryUpdateOne {
	if u != nil {
		teuo.SetProjectID(*u)
	}
	return teuo
}

// SetUserID sets the "user_id" field.
func (teuo *TimeEntryUpdateOne) SetUserID(u uuid.UUID) *TimeEntryUpdateOne {
	teuo.mutation.SetUserID(u)
	return teuo
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (teuo *TimeEntryUpdateOne) SetNillableUserID(u *uuid.UUID) *TimeEntryUpdateOne {
	if u != nil {
		teuo.SetUserID(*u)
	}
	return teuo
}

// SetTask sets the "task" edge to the Task entity.
func (teuo *TimeEntryUpdateOne) SetTask(t *Task) *TimeEntryUpdateOne {
	return teuo.SetTaskID(t.ID)
}

// SetProject sets the "project" edge to the Project entity.
func (teuo *TimeEntryUpdateOne) SetProject(p *Project) *TimeEntryUpdateOne {
	return teuo.SetProjectID(p.ID)
}

// SetUser sets the "user" edge to the User entity.
func (teuo *TimeEntryUpdateOne) SetUser(u *User) *TimeEntryUpdateOne {
	return teuo.SetUserID(u.ID)
}

// Mutation returns the TimeEntryMutation object of the builder.
func (teuo *TimeEntryUpdateOne) Mutation() *TimeEntryMutation {
	return teuo.mutation
}

// ClearTask clears the "task" edge to the Task entity.
func (teuo *TimeEntryUpdateOne) ClearTask() *TimeEntryUpdateOne {
	teuo.mutation.ClearTask()
	return teuo
}

// ClearProject clears the "project" edge to the Project entity.
func (teuo *TimeEntryUpdateOne) ClearProject() *TimeEntryUpdateOne {
	teuo.mutation.ClearProject()
	return teuo
}

// ClearUser clears the "user" edge to the User entity.
func (teuo *TimeEntryUpdateOne) ClearUser() *TimeEntryUpdateOne {
	teuo.mutation.ClearUser()
	return teuo
}

// Where appends a list predicates to the TimeEntryUpdate builder.
func (teuo *TimeEntryUpdateOne) Where(ps ...predicate.TimeEntry) *TimeEntryUpdateOne {
	teuo.mutation.Where(ps...)
	return teuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (teuo *TimeEntryUpdateOne) Select(field string, fields ...string) *TimeEntryUpdateOne {
	teuo.fields = append([]string{field}, fields...)
	return teuo
}

// Save executes the query and returns the updated TimeEntry entity.
func (teuo *TimeEntryUpdateOne) Save(ctx context.Context) (*TimeEntry, error) {
	return withHooks(ctx, teuo.sqlSave, teuo.mutation, teuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (teuo *TimeEntryUpdateOne) SaveX(ctx context.Context) *TimeEntry {
	node, err := teuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (teuo *TimeEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := teuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (teuo *TimeEntryUpdateOne) ExecX(ctx context.Context) {
	if err := teuo.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (teuo *TimeEntryUpdateOne) check() error {
	if v, ok := teuo.mutation.Hours(); ok {
		if err := timeentry.HoursValidator(v); err != nil {
			return &ValidationError{Name: "hours", err: fmt.Errorf(`generated: validator failed for field "TimeEntry.hours": %w`, err)}
		}
	}
	if teuo.mutation.TaskCleared() && len(teuo.mutation.TaskIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TimeEntry.task"`)
	}
	if teuo.mutation.ProjectCleared() && len(teuo.mutation.ProjectIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TimeEntry.project"`)
	}
	if teuo.mutation.UserCleared() && len(teuo.mutation.UserIDs()) > 0 {
		return errors.New(`generated: clearing a required unique edge "TimeEntry.user"`)
	}
	return nil
}

func (teuo *TimeEntryUpdateOne) sqlSave(ctx context.Context) (_node *TimeEntry, err error) {
	if err := teuo.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(timeentry.Table, timeentry.Columns, sqlgraph.NewFieldSpec(timeentry.FieldID, field.TypeUUID))
	id, ok := teuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`generated: missing "TimeEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := teuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timeentry.FieldID)
		for _, f := range fields {
			if !timeentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
			}
			if f != timeentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := teuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := teuo.mutation.Hours(); ok {
		_spec.SetField(timeentry.FieldHours, field.TypeFloat64, value)
	}
	if value, ok := teuo.mutation.AddedHours(); ok {
		_spec.AddField(timeentry.FieldHours, field.TypeFloat64, value)
	}
	if value, ok := teuo.mutation.Description(); ok {
		_spec.SetField(timeentry.FieldDescription, field.TypeString, value)
	}
	if teuo.mutation.DescriptionCleared() {
		_spec.ClearField(timeentry.FieldDescription, field.TypeString)
	}
	if value, ok := teuo.mutation.Date(); ok {
		_spec.SetField(timeentry.FieldDate, field.TypeTime, value)
	}
	if teuo.mutation.TaskCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := teuo.mutation.TaskIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if teuo.mutation.ProjectCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := teuo.mutation.ProjectIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if teuo.mutation.UserCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := teuo.mutation.UserIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TimeEntry{config: teuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, teuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{timeentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	teuo.mutation.done = true
	return _node, nil
}
