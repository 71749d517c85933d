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
	"github.com/gurkanbulca/taskboard/ent/generated/comment"
	"github.com/gurkanbulca/taskboard/ent/generated/mention"
	"github.com/gurkanbulca/taskboard/ent/generated/user"
)

// MentionCreate is the builder for creating a Mention entity.
type MentionCreate struct {
	config
	mutation *MentionMutation
	hooks    []Hook
}

// SetCommentID sets the "comment_id" field.
func (mc *MentionCreate) SetCommentID(u uuid.UUID) *MentionCreate {
	mc.mutation.SetCommentID(u)
	return mc
}

// SetMentionedUserID sets the "mentioned_user_id" field.
func (mc *MentionCreate) SetMentionedUserID(u uuid.UUID) *MentionCreate {
	mc.mutation.SetMentionedUserID(u)
	return mc
}

// SetCreatedAt sets the "created_at" field.
func (mc *MentionCreate) SetCreatedAt(t time.Time) *MentionCreate {
	mc.mutation.SetCreatedAt(t)
	return mc
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (mc *MentionCreate) SetNillableCreatedAt(t *time.Time) *MentionCreate {
	if t != nil {
		mc.SetCreatedAt(*t)
	}
	return mc
}

// SetID sets the "id" field.
func (mc *MentionCreate) SetID(u uuid.UUID) *MentionCreate {
	mc.mutation.SetID(u)
	return mc
}

// SetNillableID sets the "id" field if the given value is not nil.
func (mc *MentionCreate) SetNillableID(u *uuid.UUID) *MentionCreate {
	if u != nil {
		mc.SetID(*u)
	}
	return mc
}

// SetComment sets the "comment" edge to the Comment entity.
func (mc *MentionCreate) SetComment(c *Comment) *MentionCreate {
	return mc.SetCommentID(c.ID)
}

// SetMentionedUser sets the "mentioned_user" edge to the User entity.
func (mc *MentionCreate) SetMentionedUser(u *User) *MentionCreate {
	return mc.SetMentionedUserID(u.ID)
}

// Mutation returns the MentionMutation object of the builder.
func (mc *MentionCreate) Mutation() *MentionMutation {
	return mc.mutation
}

// Save creates the Mention in the database.
func (mc *MentionCreate) Save(ctx context.Context) (*Mention, error) {
	mc.defaults()
	return withHooks(ctx, mc.sqlSave, mc.mutation, mc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (mc *MentionCreate) SaveX(ctx context.Context) *Mention {
	v, err := mc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mc *MentionCreate) Exec(ctx context.Context) error {
	_, err := mc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mc *MentionCreate) ExecX(ctx context.Context) {
	if err := mc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (mc *MentionCreate) defaults() {
	if _, ok := mc.mutation.CreatedAt(); !ok {
		v := mention.DefaultCreatedAt()
		mc.mutation.SetCreatedAt(v)
	}
	if _, ok := mc.mutation.ID(); !ok {
		v := mention.DefaultID()
		mc.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (mc *MentionCreate) check() error {
	if _, ok := mc.mutation.CommentID(); !ok {
		return &ValidationError{Name: "comment_id", err: errors.New(`generated: missing required field "Mention.comment_id"`)}
	}
	if _, ok := mc.mutation.MentionedUserID(); !ok {
		return &ValidationError{Name: "mentioned_user_id", err: errors.New(`generated: missing required field "Mention.mentioned_user_id"`)}
	}
	if _, ok := mc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`generated: missing required field "Mention.created_at"`)}
	}
	if len(mc.mutation.CommentIDs()) == 0 {
		return &ValidationError{Name: "comment", err: errors.New(`generated: missing required edge "Mention.comment"`)}
	}
	if len(mc.mutation.MentionedUserIDs()) == 0 {
		return &ValidationError{Name: "mentioned_user", err: errors.New(`generated: missing required edge "Mention.mentioned_user"`)}
	}
	return nil
}

func (mc *MentionCreate) sqlSave(ctx context.Context) (*Mention, error) {
	if err := mc.check(); err != nil {
		return nil, err
	}
	_node, _spec := mc.createSpec()
	if err := sqlgraph.CreateNode(ctx, mc.driver, _spec); err != nil {
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
	mc.mutation.id = &_node.ID
	mc.mutation.done = true
	return _node, nil
}

func (mc *MentionCreate) createSpec() (*Mention, *sqlgraph.CreateSpec) {
	var (
		_node = &Mention{config: mc.config}
		_spec = sqlgraph.NewCreateSpec(mention.Table, sqlgraph.NewFieldSpec(mention.FieldID, field.TypeUUID))
	)
	if id, ok := mc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := mc.mutation.CreatedAt(); ok {
		_spec.SetField(mention.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := mc.mutation.CommentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.CommentTable,
			Columns: []string{mention.CommentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(comment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.CommentID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := mc.mutation.MentionedUserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.MentionedUserTable,
			Columns: []string{mention.MentionedUserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MentionedUserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// MentionCreateBulk is the builder for creating many Mention entities in bulk.
type MentionCreateBulk struct {
	config
	err      error
	builders []*MentionCreate
}

// Save creates the Mention entities in the database.
func (mcb *MentionCreateBulk) Save(ctx context.Context) ([]*Mention, error) {
	if mcb.err != nil {
		return nil, mcb.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(mcb.builders))
	nodes := make([]*Mention, len(mcb.builders))
	mutators := make([]Mutator, len(mcb.builders))
	for i := range mcb.builders {
		func(i int, root context.Context) {
			builder := mcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MentionMutation)
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
					_, err = mutators[i+1].Mutate(root, mcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, mcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, mcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (mcb *MentionCreateBulk) SaveX(ctx context.Context) []*Mention {
	v, err := mcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (mcb *MentionCreateBulk) Exec(ctx context.Context) error {
	_, err := mcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mcb *MentionCreateBulk) ExecX(ctx context.Context) {
	if err := mcb.Exec(ctx); err != nil {
		panic(err)
	}
}
