// Code generated by ent, DO NOT EDIT.

package mention

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/gurkanbulca/taskboard/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldLTE(FieldID, id))
}

// CommentID applies equality check predicate on the "comment_id" field. It's identical to CommentIDEQ.
func CommentID(v uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldEQ(FieldCommentID, v))
}

// MentionedUserID applies equality check predicate on the "mentioned_user_id" field. It's identical to MentionedUserIDEQ.
func MentionedUserID(v uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldEQ(FieldMentionedUserID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldEQ(FieldCreatedAt, v))
}

// CommentIDEQ applies the EQ predicate on the "comment_id" field.
func CommentIDEQ(v uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldEQ(FieldCommentID, v))
}

// CommentIDNEQ applies the NEQ predicate on the "comment_id" field.
func CommentIDNEQ(v uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldNEQ(FieldCommentID, v))
}

// CommentIDIn applies the In predicate on the "comment_id" field.
func CommentIDIn(vs ...uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldIn(FieldCommentID, vs...))
}

// CommentIDNotIn applies the NotIn predicate on the "comment_id" field.
func CommentIDNotIn(vs ...uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldNotIn(FieldCommentID, vs...))
}

// MentionedUserIDEQ applies the EQ predicate on the "mentioned_user_id" field.
func MentionedUserIDEQ(v uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldEQ(FieldMentionedUserID, v))
}

// MentionedUserIDNEQ applies the NEQ predicate on the "mentioned_user_id" field.
func MentionedUserIDNEQ(v uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldNEQ(FieldMentionedUserID, v))
}

// MentionedUserIDIn applies the In predicate on the "mentioned_user_id" field.
func MentionedUserIDIn(vs ...uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldIn(FieldMentionedUserID, vs...))
}

// MentionedUserIDNotIn applies the NotIn predicate on the "mentioned_user_id" field.
func MentionedUserIDNotIn(vs ...uuid.UUID) predicate.Mention {
	return predicate.Mention(sql.FieldNotIn(FieldMentionedUserID, vs...))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Mention {
	return predicate.Mention(sql.FieldLTE(FieldCreatedAt, v))
}

// HasComment applies the HasEdge predicate on the "comment" edge.
func HasComment() predicate.Mention {
	return predicate.Mention(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, CommentTable, CommentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCommentWith applies the HasEdge predicate on the "comment" edge with a given conditions (other predicates).
func HasCommentWith(preds ...predicate.Comment) predicate.Mention {
	return predicate.Mention(func(s *sql.Selector) {
		step := newCommentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMentionedUser applies the HasEdge predicate on the "mentioned_user" edge.
func HasMentionedUser() predicate.Mention {
	return predicate.Mention(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, MentionedUserTable, MentionedUserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMentionedUserWith applies the HasEdge predicate on the "mentioned_user" edge with a given conditions (other predicates).
func HasMentionedUserWith(preds ...predicate.User) predicate.Mention {
	return predicate.Mention(func(s *sql.Selector) {
		step := newMentionedUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Mention) predicate.Mention {
	return predicate.Mention(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Mention) predicate.Mention {
	return predicate.Mention(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Mention) predicate.Mention {
	return predicate.Mention(sql.NotPredicates(p))
}
