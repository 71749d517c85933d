// internal/service/comment_service.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/comment"
)

type CommentService struct {
	client *ent.Client
}

func NewCommentService(client *ent.Client) *CommentService {
	return &CommentService{
		client: client,
	}
}

// ListByTask returns a task's comments, newest first, with authors.
func (s *CommentService) ListByTask(ctx context.Context, taskID uuid.UUID) ([]*ent.Comment, error) {
	comments, err := s.client.Comment.
		Query().
		Where(comment.TaskID(taskID)).
		WithAuthor().
		Order(ent.Desc(comment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Create adds a comment to a task, records one mention row per
// mentioned user id and fans out notifications: one MENTION per
// mention plus one COMMENT to the task owner when the commenter is not
// the owner. Mentioned ids are taken as submitted: no deduplication and
// no existence check beyond the store's referential constraints.
func (s *CommentService) Create(ctx context.Context, actor Actor, taskID uuid.UUID, content string, mentionedUserIDs []uuid.UUID) (*ent.Comment, error) {
	t, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get task: %w", err)
	}

	c, err := s.client.Comment.
		Create().
		SetContent(content).
		SetTaskID(taskID).
		SetUserID(actor.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	for _, mentionedID := range mentionedUserIDs {
		_, err := s.client.Mention.
			Create().
			SetCommentID(c.ID).
			SetMentionedUserID(mentionedID).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("create mention: %w", err)
		}

		if err := notifyMention(ctx, s.client.Notification, actor, c.ID, mentionedID); err != nil {
			return nil, err
		}
	}

	if t.UserID != actor.ID {
		if err := notifyComment(ctx, s.client.Notification, actor, t); err != nil {
			return nil, err
		}
	}

	return s.client.Comment.
		Query().
		Where(comment.ID(c.ID)).
		WithAuthor().
		Only(ctx)
}

// Delete removes a comment. Only its author may delete it; mentions go
// with it via the schema's cascade. Already-sent notifications are not
// retracted.
func (s *CommentService) Delete(ctx context.Context, actor Actor, commentID uuid.UUID) error {
	c, err := s.client.Comment.Get(ctx, commentID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("get comment: %w", err)
	}

	if c.UserID != actor.ID {
		return ErrForbidden
	}

	if err := s.client.Comment.DeleteOneID(commentID).Exec(ctx); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
