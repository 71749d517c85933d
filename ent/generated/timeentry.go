// Code generated by ent, DO NOT EDIT.

package generated

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/gurkanbulca/taskboard/ent/generated/project"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/ent/generated/timeentry"
	"github.com/gurkanbulca/taskboard/ent/generated/user"
)

// TimeEntry is the model entity for the TimeEntry schema.
type TimeEntry struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Logged hours, must be positive
	Hours float64 `json:"hours,omitempty"`
	// What the time was spent on
	Description string `json:"description,omitempty"`
	// Day the work happened
	Date time.Time `json:"date,omitempty"`
	// Task the entry was logged against
	TaskID uuid.UUID `json:"task_id,omitempty"`
	// Project the entry rolls up to
	ProjectID uuid.UUID `json:"project_id,omitempty"`
	// User who logged the entry
	UserID uuid.UUID `json:"user_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TimeEntryQuery when eager-loading is set.
	Edges        TimeEntryEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TimeEntryEdges holds the relations/edges for other nodes in the graph.
type TimeEntryEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TimeEntryEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TimeEntryEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TimeEntryEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[2] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TimeEntry) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case timeentry.FieldHours:
			values[i] = new(sql.NullFloat64)
		case timeentry.FieldDescription:
			values[i] = new(sql.NullString)
		case timeentry.FieldDate, timeentry.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case timeentry.FieldID, timeentry.FieldTaskID, timeentry.FieldProjectID, timeentry.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TimeEntry fields.
func (te *TimeEntry) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case timeentry.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				te.ID = *value
			}
		case timeentry.FieldHours:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field hours", values[i])
			} else if value.Valid {
				te.Hours = value.Float64
			}
		case timeentry.FieldDescription:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field description", values[i])
			} else if value.Valid {
				te.Description = value.String
			}
		case timeentry.FieldDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field date", values[i])
			} else if value.Valid {
				te.Date = value.Time
			}
		case timeentry.FieldTaskID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field task_id", values[i])
			} else if value != nil {
				te.TaskID = *value
			}
		case timeentry.FieldProjectID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field project_id", values[i])
			} else if value != nil {
				te.ProjectID = *value
			}
		case timeentry.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				te.UserID = *value
			}
		case timeentry.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				te.CreatedAt = value.Time
			}
		default:
			te.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the TimeEntry.
// This includes values selected through modifiers, order, etc.
func (te *TimeEntry) Value(name string) (ent.Value, error) {
	return te.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the TimeEntry entity.
func (te *TimeEntry) QueryTask() *TaskQuery {
	return NewTimeEntryClient(te.config).QueryTask(te)
}

// QueryProject queries the "project" edge of the TimeEntry entity.
func (te *TimeEntry) QueryProject() *ProjectQuery {
	return NewTimeEntryClient(te.config).QueryProject(te)
}

// QueryUser queries the "user" edge of the TimeEntry entity.
func (te *TimeEntry) QueryUser() *UserQuery {
	return NewTimeEntryClient(te.config).QueryUser(te)
}

// Update returns a builder for updating this TimeEntry.
// Note that you need to call TimeEntry.Unwrap() before calling this method if this TimeEntry
// was returned from a transaction, and the transaction was committed or rolled back.
func (te *TimeEntry) Update() *TimeEntryUpdateOne {
	return NewTimeEntryClient(te.config).UpdateOne(te)
}

// Unwrap unwraps the TimeEntry entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (te *TimeEntry) Unwrap() *TimeEntry {
	_tx, ok := te.config.driver.(*txDriver)
	if !ok {
		panic("generated: TimeEntry is not a transactional entity")
	}
	te.config.driver = _tx.drv
	return te
}

// String implements the fmt.Stringer.
func (te *TimeEntry) String() string {
	var builder strings.Builder
	builder.WriteString("TimeEntry(")
	builder.WriteString(fmt.Sprintf("id=%v, ", te.ID))
	builder.WriteString("hours=")
	builder.WriteString(fmt.Sprintf("%v", te.Hours))
	builder.WriteString(", ")
	builder.WriteString("description=")
	builder.WriteString(te.Description)
	builder.WriteString(", ")
	builder.WriteString("date=")
	builder.WriteString(te.Date.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("task_id=")
	builder.WriteString(fmt.Sprintf("%v", te.TaskID))
	builder.WriteString(", ")
	builder.WriteString("project_id=")
	builder.WriteString(fmt.Sprintf("%v", te.ProjectID))
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", te.UserID))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(te.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TimeEntries is a parsable slice of TimeEntry.
type TimeEntries []*TimeEntry
