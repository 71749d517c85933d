// ent/schema/user.go
package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
)

// User holds the schema definition for the User entity.
type User struct {
	ent.Schema
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.String("name").
			NotEmpty().
			MaxLen(100).
			Comment("Display name shown in mentions and notifications"),

		field.String("email").
			NotEmpty().
			Unique().
			Comment("User email address, used for login"),

		field.String("password_hash").
			NotEmpty().
			Sensitive(). // Won't be included in logs
			Comment("Hashed password"),

		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("When the user was created"),

		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("When the user was last updated"),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		// A user owns the tasks they created
		edge.To("owned_tasks", Task.Type).
			Comment("Tasks created by this user"),

		// A user can be assigned to many tasks
		edge.To("assigned_tasks", Task.Type).
			Comment("Tasks assigned to this user"),

		edge.To("projects", Project.Type).
			Comment("Projects owned by this user"),

		edge.To("comments", Comment.Type).
			Comment("Comments authored by this user"),

		edge.To("mentions", Mention.Type).
			Comment("Mentions of this user in comments"),

		edge.To("time_entries", TimeEntry.Type).
			Comment("Time entries logged by this user"),

		edge.To("notifications", Notification.Type).
			Comment("Notifications targeting this user"),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		// Unique index on email for login and duplicate checks
		index.Fields("email").
			Unique(),

		// Index on created_at for sorting
		index.Fields("created_at"),
	}
}
