// internal/service/notifier.go
package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	ent "github.com/gurkanbulca/taskboard/ent/generated"
	"github.com/gurkanbulca/taskboard/ent/generated/notification"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
)

// statusLabels is the single status-to-label lookup shared by every
// notification site.
var statusLabels = map[task.Status]string{
	task.Status("TODO"):        "待办",
	task.Status("IN_PROGRESS"): "进行中",
	task.Status("DONE"):        "已完成",
}

// StatusLabel returns the user-facing label for a task status.
func StatusLabel(s task.Status) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Related-entity kinds recorded on notifications.
const (
	relatedTypeTask    = "TASK"
	relatedTypeComment = "COMMENT"
)

// createNotification writes one notification row. The client may be the
// sub-client of either an *ent.Client or an open *ent.Tx, so fan-out can
// join the surrounding transaction when one exists.
func createNotification(ctx context.Context, nc *ent.NotificationClient, typ, content string, userID, relatedID uuid.UUID, relatedType string) error {
	_, err := nc.Create().
		SetType(notification.Type(typ)).
		SetContent(content).
		SetUserID(userID).
		SetRelatedID(relatedID).
		SetRelatedType(relatedType).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("create %s notification: %w", typ, err)
	}
	return nil
}

// notifyStatusChanged fans out TASK_UPDATE notifications for a status
// transition: one to the assignee (if set and not the actor) and one to
// the owner (if distinct from both actor and assignee).
func notifyStatusChanged(ctx context.Context, nc *ent.NotificationClient, actor Actor, t *ent.Task, newStatus task.Status) error {
	content := fmt.Sprintf("%s 将任务\"%s\"的状态更新为\"%s\"", actor.Name, t.Title, StatusLabel(newStatus))

	if t.AssignedUserID != nil && *t.AssignedUserID != actor.ID {
		if err := createNotification(ctx, nc, "TASK_UPDATE", content, *t.AssignedUserID, t.ID, relatedTypeTask); err != nil {
			return err
		}
	}

	ownerIsAssignee := t.AssignedUserID != nil && *t.AssignedUserID == t.UserID
	if t.UserID != actor.ID && !ownerIsAssignee {
		if err := createNotification(ctx, nc, "TASK_UPDATE", content, t.UserID, t.ID, relatedTypeTask); err != nil {
			return err
		}
	}

	return nil
}

// notifyTaskAssigned tells a user a task was (re)assigned to them.
func notifyTaskAssigned(ctx context.Context, nc *ent.NotificationClient, actor Actor, t *ent.Task, assigneeID uuid.UUID) error {
	content := fmt.Sprintf("%s 将任务\"%s\"重新分配给了你", actor.Name, t.Title)
	return createNotification(ctx, nc, "TASK_ASSIGNED", content, assigneeID, t.ID, relatedTypeTask)
}

// notifyMention tells a user they were mentioned in a comment.
func notifyMention(ctx context.Context, nc *ent.NotificationClient, actor Actor, commentID, mentionedUserID uuid.UUID) error {
	content := fmt.Sprintf("%s 在评论中提到了你", actor.Name)
	return createNotification(ctx, nc, "MENTION", content, mentionedUserID, commentID, relatedTypeComment)
}

// notifyComment tells the task owner their task was commented on.
func notifyComment(ctx context.Context, nc *ent.NotificationClient, actor Actor, t *ent.Task) error {
	content := fmt.Sprintf("%s 评论了你的任务：%s", actor.Name, t.Title)
	return createNotification(ctx, nc, "COMMENT", content, t.UserID, t.ID, relatedTypeTask)
}
