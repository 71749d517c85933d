// ent/schema/task.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// Task holds the schema definition for the Task entity.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("title").
			NotEmpty().
			MaxLen(200).
			Comment("Task title"),

		field.Text("description").
			Optional().
			Comment("Detailed description of the task"),

		field.Enum("status").
			Values("TODO", "IN_PROGRESS", "DONE").
			Default("TODO").
			Comment("Current status of the task"),

		field.Enum("priority").
			Values("LOW", "MEDIUM", "HIGH", "URGENT").
			Default("MEDIUM").
			Comment("Priority level of the task"),

		field.Time("start_date").
			Optional().
			Nillable().
			Comment("When work on the task is planned to start"),

		field.Time("due_date").
			Optional().
			Nillable().
			Comment("When the task should be completed"),

		field.Float("estimated_hours").
			Optional().
			Nillable().
			Comment("Estimated effort in hours"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("Owner of the task"),

		field.UUID("assigned_user_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("User the task is assigned to"),

		field.UUID("project_id", uuid.UUID{}).
			Optional().
			Nillable().
			Comment("Project the task belongs to"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the task was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the task was last updated"),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("owned_tasks").
			Field("user_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.From("assignee", User.Type).
			Ref("assigned_tasks").
			Field("assigned_user_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),

		edge.From("project", Project.Type).
			Ref("tasks").
			Field("project_id").
			Unique().
			Annotations(entsql.OnDelete(entsql.SetNull)),

		edge.To("comments", Comment.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("time_entries", TimeEntry.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Index on status for kanban column queries
		index.Fields("status"),

		// Index on priority for filtering
		index.Fields("priority"),

		// Visibility queries hit both columns
		index.Fields("user_id"),
		index.Fields("assigned_user_id"),

		// Index on created_at for sorting
		index.Fields("created_at"),
	}
}
