// internal/service/timeentry_service_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gurkanbulca/taskboard/ent/generated/project"
)

func TestTimeEntryService_Create_DefaultProject(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "worker", "worker@example.com")
	tk := createTestTask(t, client, u.ID, "无项目任务", nil)

	svc := NewTimeEntryService(client)
	ctx := context.Background()
	actor := actorFor(u)

	first, err := svc.Create(ctx, actor, tk.ID, 2.5, "上午的工作")
	require.NoError(t, err)

	second, err := svc.Create(ctx, actor, tk.ID, 1.5, "下午的工作")
	require.NoError(t, err)

	// Both entries land in one default project, never a duplicate
	assert.Equal(t, first.ProjectID, second.ProjectID)

	count, err := client.Project.Query().
		Where(project.UserID(u.ID), project.Name(DefaultProjectName)).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestTimeEntryService_Create_UsesTaskProject(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "worker", "worker@example.com")
	p, err := client.Project.Create().
		SetName("迭代一").
		SetUserID(u.ID).
		Save(context.Background())
	require.NoError(t, err)

	tk, err := client.Task.Create().
		SetTitle("有项目任务").
		SetUserID(u.ID).
		SetProjectID(p.ID).
		Save(context.Background())
	require.NoError(t, err)

	svc := NewTimeEntryService(client)

	entry, err := svc.Create(context.Background(), actorFor(u), tk.ID, 3, "开发")
	require.NoError(t, err)
	assert.Equal(t, p.ID, entry.ProjectID)
}

func TestTimeEntryService_Create_InvalidHours(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "worker", "worker@example.com")
	tk := createTestTask(t, client, u.ID, "任务", nil)

	svc := NewTimeEntryService(client)

	for _, hours := range []float64{0, -1} {
		_, err := svc.Create(context.Background(), actorFor(u), tk.ID, hours, "")
		require.Error(t, err)

		var verr *ValidationError
		require.True(t, errors.As(err, &verr))
		assert.Contains(t, verr.Fields, "hours")
	}
}

func TestTimeEntryService_List_Scope(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	alice := createTestUser(t, client, "alice", "alice@example.com")
	bob := createTestUser(t, client, "bob", "bob@example.com")
	ctx := context.Background()

	aliceProject, err := client.Project.Create().
		SetName("alice的项目").
		SetUserID(alice.ID).
		Save(ctx)
	require.NoError(t, err)

	svc := NewTimeEntryService(client)

	// Alice logs on her own task (default project)
	aliceTask := createTestTask(t, client, alice.ID, "alice的任务", nil)
	_, err = svc.Create(ctx, actorFor(alice), aliceTask.ID, 1, "")
	require.NoError(t, err)

	// Bob logs on a task inside Alice's project
	bobTaskInAliceProject, err := client.Task.Create().
		SetTitle("bob在alice项目里").
		SetUserID(bob.ID).
		SetProjectID(aliceProject.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = svc.Create(ctx, actorFor(bob), bobTaskInAliceProject.ID, 2, "")
	require.NoError(t, err)

	// Bob logs on his own unrelated task
	bobTask := createTestTask(t, client, bob.ID, "bob的任务", nil)
	_, err = svc.Create(ctx, actorFor(bob), bobTask.ID, 3, "")
	require.NoError(t, err)

	entries, err := svc.List(ctx, alice.ID, TimeEntryFilter{})
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	entries, err = svc.List(ctx, alice.ID, TimeEntryFilter{ProjectID: &aliceProject.ID})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestTimeEntryService_Delete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	u := createTestUser(t, client, "worker", "worker@example.com")
	other := createTestUser(t, client, "other", "other@example.com")
	tk := createTestTask(t, client, u.ID, "任务", nil)

	svc := NewTimeEntryService(client)
	ctx := context.Background()

	entry, err := svc.Create(ctx, actorFor(u), tk.ID, 1, "")
	require.NoError(t, err)

	err = svc.Delete(ctx, actorFor(other), entry.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, actorFor(u), entry.ID)
	require.NoError(t, err)

	err = svc.Delete(ctx, actorFor(u), entry.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
