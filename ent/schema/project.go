// ent/schema/project.go
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

// Project holds the schema definition for the Project entity.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(100).
			Comment("Project name"),

		field.Text("description").
			Optional().
			Comment("Project description"),

		field.Enum("status").
			Values("ACTIVE", "COMPLETED").
			Default("ACTIVE").
			Comment("Current status of the project"),

		field.Float("planned_hours").
			Optional().
			Nillable().
			Comment("Planned effort in hours"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("Owner of the project"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the project was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the project was last updated"),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("owner", User.Type).
			Ref("projects").
			Field("user_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.To("tasks", Task.Type),

		edge.To("time_entries", TimeEntry.Type),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),

		// The default-project lookup queries on (user_id, name)
		index.Fields("user_id", "name"),

		index.Fields("created_at"),
	}
}
