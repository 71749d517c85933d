// ent/schema/timeentry.go
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

// TimeEntry holds the schema definition for the TimeEntry entity.
type TimeEntry struct {
	ent.Schema
}

// Fields of the TimeEntry.
func (TimeEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.Float("hours").
			Positive().
			Comment("Logged hours, must be positive"),

		field.Text("description").
			Optional().
			Comment("What the time was spent on"),

		field.Time("date").
			Default(time.Now).
			Comment("Day the work happened"),

		field.UUID("task_id", uuid.UUID{}).
			Comment("Task the entry was logged against"),

		field.UUID("project_id", uuid.UUID{}).
			Comment("Project the entry rolls up to"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("User who logged the entry"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the TimeEntry.
func (TimeEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("time_entries").
			Field("task_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.From("project", Project.Type).
			Ref("time_entries").
			Field("project_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.From("user", User.Type).
			Ref("time_entries").
			Field("user_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the TimeEntry.
func (TimeEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id"),
		index.Fields("project_id"),
		index.Fields("user_id"),
		index.Fields("date"),
	}
}
