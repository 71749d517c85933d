// internal/service/task_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/internal/repository"
)

func newTaskService(client *ent.Client) *TaskService {
	return NewTaskService(client, repository.NewTaskRepository(client))
}

func TestTaskService_UpdateStatus_Notifications(t *testing.T) {
	tests := []struct {
		name               string
		actorIsOwner       bool
		assigneeIsOwner    bool
		newStatus          string
		wantOwnerNotifs    int
		wantAssigneeNotifs int
	}{
		{
			name:               "owner updates, assignee notified",
			actorIsOwner:       true,
			newStatus:          "DONE",
			wantOwnerNotifs:    0,
			wantAssigneeNotifs: 1,
		},
		{
			name:               "assignee updates, owner notified",
			actorIsOwner:       false,
			newStatus:          "IN_PROGRESS",
			wantOwnerNotifs:    1,
			wantAssigneeNotifs: 0,
		},
		{
			name:               "no change sends nothing",
			actorIsOwner:       true,
			newStatus:          "TODO",
			wantOwnerNotifs:    0,
			wantAssigneeNotifs: 0,
		},
		{
			name:               "owner is assignee, self update sends nothing",
			actorIsOwner:       true,
			assigneeIsOwner:    true,
			newStatus:          "DONE",
			wantOwnerNotifs:    0,
			wantAssigneeNotifs: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := setupTestDB(t)
			defer client.Close()

			owner := createTestUser(t, client, "owner", "owner@example.com")
			assignee := createTestUser(t, client, "assignee", "assignee@example.com")

			assigneeID := assignee.ID
			if tt.assigneeIsOwner {
				assigneeID = owner.ID
			}
			tk := createTestTask(t, client, owner.ID, "部署上线", &assigneeID)

			actor := actorFor(owner)
			if !tt.actorIsOwner {
				actor = actorFor(assignee)
			}

			svc := newTaskService(client)
			updated, err := svc.UpdateStatus(context.Background(), actor, tk.ID, tt.newStatus)
			require.NoError(t, err)
			assert.Equal(t, task.Status(tt.newStatus), updated.Status)

			assert.Equal(t, tt.wantOwnerNotifs, countNotifications(t, client, owner.ID, "TASK_UPDATE"))
			if !tt.assigneeIsOwner {
				assert.Equal(t, tt.wantAssigneeNotifs, countNotifications(t, client, assignee.ID, "TASK_UPDATE"))
			}
		})
	}
}

func TestTaskService_UpdateStatus_AnyTransition(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	tk := createTestTask(t, client, owner.ID, "回滚验证", nil)

	svc := newTaskService(client)
	ctx := context.Background()
	actor := actorFor(owner)

	// No legality guard between statuses, DONE may go back to TODO
	for _, status := range []string{"DONE", "TODO", "IN_PROGRESS", "DONE"} {
		updated, err := svc.UpdateStatus(ctx, actor, tk.ID, status)
		require.NoError(t, err)
		assert.Equal(t, task.Status(status), updated.Status)
	}
}

func TestTaskService_UpdateStatus_NotVisible(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	stranger := createTestUser(t, client, "stranger", "stranger@example.com")
	tk := createTestTask(t, client, owner.ID, "私有任务", nil)

	svc := newTaskService(client)

	_, err := svc.UpdateStatus(context.Background(), actorFor(stranger), tk.ID, "DONE")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.UpdateStatus(context.Background(), actorFor(owner), uuid.New(), "DONE")
	assert.ErrorIs(t, err, ErrNotFound)

	// The guarded write must not have gone through
	reloaded, err := client.Task.Get(context.Background(), tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.Status("TODO"), reloaded.Status)
}

func TestTaskService_Update_ReassignmentNotifies(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	newAssignee := createTestUser(t, client, "next", "next@example.com")
	tk := createTestTask(t, client, owner.ID, "评审文档", nil)

	svc := newTaskService(client)
	ctx := context.Background()

	_, err := svc.Update(ctx, actorFor(owner), tk.ID, TaskInput{
		Title:          "评审文档",
		AssignedUserID: &newAssignee.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countNotifications(t, client, newAssignee.ID, "TASK_ASSIGNED"))

	// Re-submitting the same assignee does not notify again
	_, err = svc.Update(ctx, actorFor(owner), tk.ID, TaskInput{
		Title:          "评审文档",
		AssignedUserID: &newAssignee.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, countNotifications(t, client, newAssignee.ID, "TASK_ASSIGNED"))
}

func TestTaskService_Update_SelfAssignDoesNotNotify(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	tk := createTestTask(t, client, owner.ID, "自领任务", nil)

	svc := newTaskService(client)

	_, err := svc.Update(context.Background(), actorFor(owner), tk.ID, TaskInput{
		Title:          "自领任务",
		AssignedUserID: &owner.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, countNotifications(t, client, owner.ID, "TASK_ASSIGNED"))
}

func TestTaskService_List_Visibility(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	alice := createTestUser(t, client, "alice", "alice@example.com")
	bob := createTestUser(t, client, "bob", "bob@example.com")

	owned := createTestTask(t, client, alice.ID, "自己的任务", nil)
	assigned := createTestTask(t, client, bob.ID, "指派给alice", &alice.ID)
	createTestTask(t, client, bob.ID, "与alice无关", nil)

	svc := newTaskService(client)
	tasks, err := svc.List(context.Background(), alice.ID, repository.ListFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	ids := []uuid.UUID{tasks[0].ID, tasks[1].ID}
	assert.Contains(t, ids, owned.ID)
	assert.Contains(t, ids, assigned.ID)
}

func TestTaskService_Delete(t *testing.T) {
	client := setupTestDB(t)
	defer client.Close()

	owner := createTestUser(t, client, "owner", "owner@example.com")
	assignee := createTestUser(t, client, "assignee", "assignee@example.com")
	tk := createTestTask(t, client, owner.ID, "待删除", &assignee.ID)

	svc := newTaskService(client)
	ctx := context.Background()

	// Assignee sees the task but may not delete it
	err := svc.Delete(ctx, actorFor(assignee), tk.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(ctx, actorFor(owner), uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(ctx, actorFor(owner), tk.ID)
	require.NoError(t, err)

	_, err = client.Task.Get(ctx, tk.ID)
	assert.True(t, ent.IsNotFound(err))
}
