// ent/schema/mention.go
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

// Mention links a comment to a user called out via @-syntax.
type Mention struct {
	ent.Schema
}

// Fields of the Mention.
func (Mention) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable(),

		field.UUID("comment_id", uuid.UUID{}).
			Comment("Comment containing the mention"),

		field.UUID("mentioned_user_id", uuid.UUID{}).
			Comment("User being mentioned"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Mention.
func (Mention) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("comment", Comment.Type).
			Ref("mentions").
			Field("comment_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),

		edge.From("mentioned_user", User.Type).
			Ref("mentions").
			Field("mentioned_user_id").
			Unique().
			Required().
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Mention.
func (Mention) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("comment_id"),
		index.Fields("mentioned_user_id"),
	}
}
