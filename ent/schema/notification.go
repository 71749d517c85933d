// ent/schema/notification.go
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

// Notification holds the schema definition for the Notification entity.
// A notification targets exactly one user and is immutable except for
// its is_read flag.
type Notification struct {
	ent.Schema
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.Enum("type").
			Values("MENTION", "COMMENT", "TASK_ASSIGNED", "TASK_UPDATE").
			Comment("What kind of event produced the notification"),

		field.Text("content").
			NotEmpty().
			Immutable().
			Comment("Human-readable notification text"),

		field.UUID("user_id", uuid.UUID{}).
			Comment("User the notification targets"),

		field.Bool("is_read").
			Default(false).
			Comment("Whether the user has seen the notification"),

		field.UUID("related_id", uuid.UUID{}).
			Optional().
			Nillable().
			Immutable().
			Comment("ID of the entity that triggered the notification"),

		field.String("related_type").
			Optional().
			Immutable().
			Comment("Kind of the triggering entity, e.g. TASK or COMMENT"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("notifications").
			Field("user_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		// The notification center polls on (user_id, is_read)
		index.Fields("user_id", "is_read"),
		index.Fields("created_at"),
	}
}
