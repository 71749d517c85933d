// internal/service/comment_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/mention"
)

func countMentions(t *testing.T, client *ent.Client, commentID uuid.UUID) int {
	t.Helper()

	n, err := client.Mention.Query().
		Where(mention.CommentID(commentID)).
		Count(context.Background())
	require.NoError(t, err)

	return n
}

func TestCommentService_Create_Mentions(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	first := createTestUser(t, client, "first", "first@example.com")
	second := createTestUser(t, client, "second", "second@example.com")
	tk := createTestTask(t, client, owner.ID, "需要讨论", nil)

	svc := NewCommentService(client)

	c, err := svc.Create(context.Background(), actorFor(owner), tk.ID, "@first @second 看一下",
		[]uuid.UUID{first.ID, second.ID})
	require.NoError(t, err)
	require.NotNil(t, c.Edges.Author)
	assert.Equal(t, owner.ID, c.Edges.Author.ID)

	assert.Equal(t, 2, countMentions(t, client, c.ID))
	assert.Equal(t, 1, countNotifications(t, client, first.ID, "MENTION"))
	assert.Equal(t, 1, countNotifications(t, client, second.ID, "MENTION"))

	// The commenter owns the task, no COMMENT notification
	assert.Equal(t, 0, countNotifications(t, client, owner.ID, "COMMENT"))
}

func TestCommentService_Create_NotifiesOwner(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	commenter := createTestUser(t, client, "commenter", "commenter@example.com")
	tk := createTestTask(t, client, owner.ID, "他人评论", &commenter.ID)

	svc := NewCommentService(client)

	_, err := svc.Create(context.Background(), actorFor(commenter), tk.ID, "进展如何？", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, countNotifications(t, client, owner.ID, "COMMENT"))
	assert.Equal(t, 0, countNotifications(t, client, commenter.ID, "COMMENT"))
}

func TestCommentService_Create_TaskNotFound(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "user", "user@example.com")
	svc := NewCommentService(client)

	_, err := svc.Create(context.Background(), actorFor(u), uuid.New(), "没有这个任务", nil)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCommentService_Create_UnknownMention(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	tk := createTestTask(t, client, owner.ID, "提到了不存在的人", nil)

	svc := NewCommentService(client)

	// A mention of a user id with no row behind it fails on the
	// store's foreign key, not with a panic or a silent drop
	_, err := svc.Create(context.Background(), actorFor(owner), tk.ID, "@ghost 在吗", []uuid.UUID{uuid.New()})
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))
}

func TestCommentService_Delete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	author := createTestUser(t, client, "author", "author@example.com")
	mentioned := createTestUser(t, client, "mentioned", "mentioned@example.com")
	tk := createTestTask(t, client, owner.ID, "评论删除", &author.ID)

	svc := NewCommentService(client)
	ctx := context.Background()

	c, err := svc.Create(ctx, actorFor(author), tk.ID, "@mentioned 请看", []uuid.UUID{mentioned.ID})
	require.NoError(t, err)
	require.Equal(t, 1, countMentions(t, client, c.ID))

	// Only the author may delete, the task owner may not
	err = svc.Delete(ctx, actorFor(owner), c.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, actorFor(author), c.ID)
	require.NoError(t, err)

	// Mentions cascade with the comment
	assert.Equal(t, 0, countMentions(t, client, c.ID))

	// Already-sent notifications stay
	assert.Equal(t, 1, countNotifications(t, client, mentioned.ID, "MENTION"))

	err = svc.Delete(ctx, actorFor(author), c.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
