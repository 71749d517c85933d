// internal/service/project_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/internal/repository"
)

// setupProjectService opens a second handle on the shared in-memory
// database so the stats queries run against the same rows the ent
// client writes.
func setupProjectService(t *testing.T) (*ent.Client, *ProjectService) {
	t.Helper()

	client := setupTestDB(t)
	t.Cleanup(func() { client.Close() })

	db, err := sqlx.Open("sqlite3", "file:ent?mode=memory&cache=shared&_fk=1")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return client, NewProjectService(client, repository.NewStatsRepository(db))
}

func TestProjectService_Get_Stats(t *testing.T) {
	client, svc := setupProjectService(t)

	u := createTestUser(t, client, "owner", "owner@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, actorFor(u), ProjectInput{Name: "网站改版"})
	require.NoError(t, err)

	for _, status := range []string{"TODO", "IN_PROGRESS", "DONE"} {
		_, err := client.Task.Create().
			SetTitle("任务 " + status).
			SetStatus(task.Status(status)).
			SetUserID(u.ID).
			SetProjectID(p.ID).
			Save(ctx)
		require.NoError(t, err)
	}

	tk, err := client.Task.Query().First(ctx)
	require.NoError(t, err)

	entrySvc := NewTimeEntryService(client)
	_, err = entrySvc.Create(ctx, actorFor(u), tk.ID, 2.5, "")
	require.NoError(t, err)
	_, err = entrySvc.Create(ctx, actorFor(u), tk.ID, 1.5, "")
	require.NoError(t, err)

	got, err := svc.Get(ctx, u.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.TaskCount)
	assert.Equal(t, 1, got.CompletedTasks)
	assert.Equal(t, 4.0, got.ActualHours)
}

func TestProjectService_Get_EmptyStats(t *testing.T) {
	client, svc := setupProjectService(t)

	u := createTestUser(t, client, "owner", "owner@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, actorFor(u), ProjectInput{Name: "空项目"})
	require.NoError(t, err)

	got, err := svc.Get(ctx, u.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.TaskCount)
	assert.Equal(t, 0, got.CompletedTasks)
	assert.Equal(t, 0.0, got.ActualHours)
}

func TestProjectService_List_StatusFilter(t *testing.T) {
	client, svc := setupProjectService(t)

	u := createTestUser(t, client, "owner", "owner@example.com")
	other := createTestUser(t, client, "other", "other@example.com")
	ctx := context.Background()

	_, err := svc.Create(ctx, actorFor(u), ProjectInput{Name: "进行中的"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, actorFor(u), ProjectInput{Name: "收尾的", Status: "COMPLETED"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, actorFor(other), ProjectInput{Name: "别人的"})
	require.NoError(t, err)

	all, err := svc.List(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	completed := "COMPLETED"
	filtered, err := svc.List(ctx, u.ID, &completed)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "收尾的", filtered[0].Project.Name)
}

func TestProjectService_Update(t *testing.T) {
	client, svc := setupProjectService(t)

	u := createTestUser(t, client, "owner", "owner@example.com")
	other := createTestUser(t, client, "other", "other@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, actorFor(u), ProjectInput{Name: "旧名字"})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, actorFor(u), p.ID, ProjectInput{Name: "新名字", Status: "COMPLETED"})
	require.NoError(t, err)
	assert.Equal(t, "新名字", updated.Name)

	// Another user's project is invisible, not forbidden
	_, err = svc.Update(ctx, actorFor(other), p.ID, ProjectInput{Name: "偷改"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(ctx, actorFor(u), uuid.New(), ProjectInput{Name: "不存在"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestProjectService_Delete_ClearsTaskReference(t *testing.T) {
	client, svc := setupProjectService(t)

	u := createTestUser(t, client, "owner", "owner@example.com")
	ctx := context.Background()

	p, err := svc.Create(ctx, actorFor(u), ProjectInput{Name: "将被删除"})
	require.NoError(t, err)

	tk, err := client.Task.Create().
		SetTitle("挂在项目上").
		SetUserID(u.ID).
		SetProjectID(p.ID).
		Save(ctx)
	require.NoError(t, err)

	err = svc.Delete(ctx, actorFor(u), p.ID)
	require.NoError(t, err)

	// The task survives with its project reference dropped
	reloaded, err := client.Task.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Nil(t, reloaded.ProjectID)
}
