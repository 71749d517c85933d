// Code generated by ent, DO NOT EDIT.

package generated

import (
	"github.com/gurkanbulca/taskboard/ent/generated/comment"
	"github.com/gurkanbulca/taskboard/ent/generated/mention"
	"github.com/gurkanbulca/taskboard/ent/generated/notification"
	"github.com/gurkanbulca/taskboard/ent/generated/predicate"
	"github.com/gurkanbulca/taskboard/ent/generated/project"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/ent/generated/timeentry"
	"github.com/gurkanbulca/taskboard/ent/generated/user"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/entql"
	"entgo.io/ent/schema/field"
)

// schemaGraph holds a representation of ent/schema at runtime.
var schemaGraph = func() *sqlgraph.Schema {
	graph := &sqlgraph.Schema{Nodes: make([]*sqlgraph.Node, 7)}
	graph.Nodes[0] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   comment.Table,
			Columns: comment.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: comment.FieldID,
			},
		},
		Type: "Comment",
		Fields: map[string]*sqlgraph.FieldSpec{
			comment.FieldContent:   {Type: field.TypeString, Column: comment.FieldContent},
			comment.FieldTaskID:    {Type: field.TypeUUID, Column: comment.FieldTaskID},
			comment.FieldUserID:    {Type: field.TypeUUID, Column: comment.FieldUserID},
			comment.FieldCreatedAt: {Type: field.TypeTime, Column: comment.FieldCreatedAt},
		},
	}
	graph.Nodes[1] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   mention.Table,
			Columns: mention.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: mention.FieldID,
			},
		},
		Type: "Mention",
		Fields: map[string]*sqlgraph.FieldSpec{
			mention.FieldCommentID:       {Type: field.TypeUUID, Column: mention.FieldCommentID},
			mention.FieldMentionedUserID: {Type: field.TypeUUID, Column: mention.FieldMentionedUserID},
			mention.FieldCreatedAt:       {Type: field.TypeTime, Column: mention.FieldCreatedAt},
		},
	}
	graph.Nodes[2] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   notification.Table,
			Columns: notification.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: notification.FieldID,
			},
		},
		Type: "Notification",
		Fields: map[string]*sqlgraph.FieldSpec{
			notification.FieldType:        {Type: field.TypeEnum, Column: notification.FieldType},
			notification.FieldContent:     {Type: field.TypeString, Column: notification.FieldContent},
			notification.FieldUserID:      {Type: field.TypeUUID, Column: notification.FieldUserID},
			notification.FieldIsRead:      {Type: field.TypeBool, Column: notification.FieldIsRead},
			notification.FieldRelatedID:   {Type: field.TypeUUID, Column: notification.FieldRelatedID},
			notification.FieldRelatedType: {Type: field.TypeString, Column: notification.FieldRelatedType},
			notification.FieldCreatedAt:   {Type: field.TypeTime, Column: notification.FieldCreatedAt},
		},
	}
	graph.Nodes[3] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   project.Table,
			Columns: project.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: project.FieldID,
			},
		},
		Type: "Project",
		Fields: map[string]*sqlgraph.FieldSpec{
			project.FieldName:         {Type: field.TypeString, Column: project.FieldName},
			project.FieldDescription:  {Type: field.TypeString, Column: project.FieldDescription},
			project.FieldStatus:       {Type: field.TypeEnum, Column: project.FieldStatus},
			project.FieldPlannedHours: {Type: field.TypeFloat64, Column: project.FieldPlannedHours},
			project.FieldUserID:       {Type: field.TypeUUID, Column: project.FieldUserID},
			project.FieldCreatedAt:    {Type: field.TypeTime, Column: project.FieldCreatedAt},
			project.FieldUpdatedAt:    {Type: field.TypeTime, Column: project.FieldUpdatedAt},
		},
	}
	graph.Nodes[4] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   task.Table,
			Columns: task.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: task.FieldID,
			},
		},
		Type: "Task",
		Fields: map[string]*sqlgraph.FieldSpec{
			task.FieldTitle:          {Type: field.TypeString, Column: task.FieldTitle},
			task.FieldDescription:    {Type: field.TypeString, Column: task.FieldDescription},
			task.FieldStatus:         {Type: field.TypeEnum, Column: task.FieldStatus},
			task.FieldPriority:       {Type: field.TypeEnum, Column: task.FieldPriority},
			task.FieldStartDate:      {Type: field.TypeTime, Column: task.FieldStartDate},
			task.FieldDueDate:        {Type: field.TypeTime, Column: task.FieldDueDate},
			task.FieldEstimatedHours: {Type: field.TypeFloat64, Column: task.FieldEstimatedHours},
			task.FieldUserID:         {Type: field.TypeUUID, Column: task.FieldUserID},
			task.FieldAssignedUserID: {Type: field.TypeUUID, Column: task.FieldAssignedUserID},
			task.FieldProjectID:      {Type: field.TypeUUID, Column: task.FieldProjectID},
			task.FieldCreatedAt:      {Type: field.TypeTime, Column: task.FieldCreatedAt},
			task.FieldUpdatedAt:      {Type: field.TypeTime, Column: task.FieldUpdatedAt},
		},
	}
	graph.Nodes[5] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   timeentry.Table,
			Columns: timeentry.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: timeentry.FieldID,
			},
		},
		Type: "TimeEntry",
		Fields: map[string]*sqlgraph.FieldSpec{
			timeentry.FieldHours:       {Type: field.TypeFloat64, Column: timeentry.FieldHours},
			timeentry.FieldDescription: {Type: field.TypeString, Column: timeentry.FieldDescription},
			timeentry.FieldDate:        {Type: field.TypeTime, Column: timeentry.FieldDate},
			timeentry.FieldTaskID:      {Type: field.TypeUUID, Column: timeentry.FieldTaskID},
			timeentry.FieldProjectID:   {Type: field.TypeUUID, Column: timeentry.FieldProjectID},
			timeentry.FieldUserID:      {Type: field.TypeUUID, Column: timeentry.FieldUserID},
			timeentry.FieldCreatedAt:   {Type: field.TypeTime, Column: timeentry.FieldCreatedAt},
		},
	}
	graph.Nodes[6] = &sqlgraph.Node{
		NodeSpec: sqlgraph.NodeSpec{
			Table:   user.Table,
			Columns: user.Columns,
			ID: &sqlgraph.FieldSpec{
				Type:   field.TypeUUID,
				Column: user.FieldID,
			},
		},
		Type: "User",
		Fields: map[string]*sqlgraph.FieldSpec{
			user.FieldName:         {Type: field.TypeString, Column: user.FieldName},
			user.FieldEmail:        {Type: field.TypeString, Column: user.FieldEmail},
			user.FieldPasswordHash: {Type: field.TypeString, Column: user.FieldPasswordHash},
			user.FieldCreatedAt:    {Type: field.TypeTime, Column: user.FieldCreatedAt},
			user.FieldUpdatedAt:    {Type: field.TypeTime, Column: user.FieldUpdatedAt},
		},
	}
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.TaskTable,
			Columns: []string{comment.TaskColumn},
			Bidi:    false,
		},
		"Comment",
		"Task",
	)
	graph.MustAddE(
		"author",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   comment.AuthorTable,
			Columns: []string{comment.AuthorColumn},
			Bidi:    false,
		},
		"Comment",
		"User",
	)
	graph.MustAddE(
		"mentions",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   comment.MentionsTable,
			Columns: []string{comment.MentionsColumn},
			Bidi:    false,
		},
		"Comment",
		"Mention",
	)
	graph.MustAddE(
		"comment",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.CommentTable,
			Columns: []string{mention.CommentColumn},
			Bidi:    false,
		},
		"Mention",
		"Comment",
	)
	graph.MustAddE(
		"mentioned_user",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   mention.MentionedUserTable,
			Columns: []string{mention.MentionedUserColumn},
			Bidi:    false,
		},
		"Mention",
		"User",
	)
	graph.MustAddE(
		"user",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   notification.UserTable,
			Columns: []string{notification.UserColumn},
			Bidi:    false,
		},
		"Notification",
		"User",
	)
	graph.MustAddE(
		"owner",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   project.OwnerTable,
			Columns: []string{project.OwnerColumn},
			Bidi:    false,
		},
		"Project",
		"User",
	)
	graph.MustAddE(
		"tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TasksTable,
			Columns: []string{project.TasksColumn},
			Bidi:    false,
		},
		"Project",
		"Task",
	)
	graph.MustAddE(
		"time_entries",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   project.TimeEntriesTable,
			Columns: []string{project.TimeEntriesColumn},
			Bidi:    false,
		},
		"Project",
		"TimeEntry",
	)
	graph.MustAddE(
		"owner",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.OwnerTable,
			Columns: []string{task.OwnerColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"assignee",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.AssigneeTable,
			Columns: []string{task.AssigneeColumn},
			Bidi:    false,
		},
		"Task",
		"User",
	)
	graph.MustAddE(
		"project",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   task.ProjectTable,
			Columns: []string{task.ProjectColumn},
			Bidi:    false,
		},
		"Task",
		"Project",
	)
	graph.MustAddE(
		"comments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.CommentsTable,
			Columns: []string{task.CommentsColumn},
			Bidi:    false,
		},
		"Task",
		"Comment",
	)
	graph.MustAddE(
		"time_entries",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.TimeEntriesTable,
			Columns: []string{task.TimeEntriesColumn},
			Bidi:    false,
		},
		"Task",
		"TimeEntry",
	)
	graph.MustAddE(
		"task",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeentry.TaskTable,
			Columns: []string{timeentry.TaskColumn},
			Bidi:    false,
		},
		"TimeEntry",
		"Task",
	)
	graph.MustAddE(
		"project",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeentry.ProjectTable,
			Columns: []string{timeentry.ProjectColumn},
			Bidi:    false,
		},
		"TimeEntry",
		"Project",
	)
	graph.MustAddE(
		"user",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   timeentry.UserTable,
			Columns: []string{timeentry.UserColumn},
			Bidi:    false,
		},
		"TimeEntry",
		"User",
	)
	graph.MustAddE(
		"owned_tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.OwnedTasksTable,
			Columns: []string{user.OwnedTasksColumn},
			Bidi:    false,
		},
		"User",
		"Task",
	)
	graph.MustAddE(
		"assigned_tasks",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.AssignedTasksTable,
			Columns: []string{user.AssignedTasksColumn},
			Bidi:    false,
		},
		"User",
		"Task",
	)
	graph.MustAddE(
		"projects",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.ProjectsTable,
			Columns: []string{user.ProjectsColumn},
			Bidi:    false,
		},
		"User",
		"Project",
	)
	graph.MustAddE(
		"comments",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.CommentsTable,
			Columns: []string{user.CommentsColumn},
			Bidi:    false,
		},
		"User",
		"Comment",
	)
	graph.MustAddE(
		"mentions",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.MentionsTable,
			Columns: []string{user.MentionsColumn},
			Bidi:    false,
		},
		"User",
		"Mention",
	)
	graph.MustAddE(
		"time_entries",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.TimeEntriesTable,
			Columns: []string{user.TimeEntriesColumn},
			Bidi:    false,
		},
		"User",
		"TimeEntry",
	)
	graph.MustAddE(
		"notifications",
		&sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   user.NotificationsTable,
			Columns: []string{user.NotificationsColumn},
			Bidi:    false,
		},
		"User",
		"Notification",
	)
	return graph
}()

// predicateAdder wraps the addPredicate method.
// All update, update-one and query builders implement this interface.
type predicateAdder interface {
	addPredicate(func(s *sql.Selector))
}

// addPredicate implements the predicateAdder interface.
func (cq *CommentQuery) addPredicate(pred func(s *sql.Selector)) {
	cq.predicates = append(cq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the CommentQuery builder.
func (cq *CommentQuery) Filter() *CommentFilter {
	return &CommentFilter{config: cq.config, predicateAdder: cq}
}

// addPredicate implements the predicateAdder interface.
func (m *CommentMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the CommentMutation builder.
func (m *CommentMutation) Filter() *CommentFilter {
	return &CommentFilter{config: m.config, predicateAdder: m}
}

// CommentFilter provides a generic filtering capability at runtime for CommentQuery.
type CommentFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *CommentFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[0].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *CommentFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(comment.FieldID))
}

// WhereContent applies the entql string predicate on the content field.
func (f *CommentFilter) WhereContent(p entql.StringP) {
	f.Where(p.Field(comment.FieldContent))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *CommentFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(comment.FieldTaskID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *CommentFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(comment.FieldUserID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *CommentFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(comment.FieldCreatedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *CommentFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *CommentFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAuthor applies a predicate to check if query has an edge author.
func (f *CommentFilter) WhereHasAuthor() {
	f.Where(entql.HasEdge("author"))
}

// WhereHasAuthorWith applies a predicate to check if query has an edge author with a given conditions (other predicates).
func (f *CommentFilter) WhereHasAuthorWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("author", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasMentions applies a predicate to check if query has an edge mentions.
func (f *CommentFilter) WhereHasMentions() {
	f.Where(entql.HasEdge("mentions"))
}

// WhereHasMentionsWith applies a predicate to check if query has an edge mentions with a given conditions (other predicates).
func (f *CommentFilter) WhereHasMentionsWith(preds ...predicate.Mention) {
	f.Where(entql.HasEdgeWith("mentions", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (mq *MentionQuery) addPredicate(pred func(s *sql.Selector)) {
	mq.predicates = append(mq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the MentionQuery builder.
func (mq *MentionQuery) Filter() *MentionFilter {
	return &MentionFilter{config: mq.config, predicateAdder: mq}
}

// addPredicate implements the predicateAdder interface.
func (m *MentionMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the MentionMutation builder.
func (m *MentionMutation) Filter() *MentionFilter {
	return &MentionFilter{config: m.config, predicateAdder: m}
}

// MentionFilter provides a generic filtering capability at runtime for MentionQuery.
type MentionFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *MentionFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[1].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *MentionFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(mention.FieldID))
}

// WhereCommentID applies the entql [16]byte predicate on the comment_id field.
func (f *MentionFilter) WhereCommentID(p entql.ValueP) {
	f.Where(p.Field(mention.FieldCommentID))
}

// WhereMentionedUserID applies the entql [16]byte predicate on the mentioned_user_id field.
func (f *MentionFilter) WhereMentionedUserID(p entql.ValueP) {
	f.Where(p.Field(mention.FieldMentionedUserID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *MentionFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(mention.FieldCreatedAt))
}

// WhereHasComment applies a predicate to check if query has an edge comment.
func (f *MentionFilter) WhereHasComment() {
	f.Where(entql.HasEdge("comment"))
}

// WhereHasCommentWith applies a predicate to check if query has an edge comment with a given conditions (other predicates).
func (f *MentionFilter) WhereHasCommentWith(preds ...predicate.Comment) {
	f.Where(entql.HasEdgeWith("comment", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasMentionedUser applies a predicate to check if query has an edge mentioned_user.
func (f *MentionFilter) WhereHasMentionedUser() {
	f.Where(entql.HasEdge("mentioned_user"))
}

// WhereHasMentionedUserWith applies a predicate to check if query has an edge mentioned_user with a given conditions (other predicates).
func (f *MentionFilter) WhereHasMentionedUserWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("mentioned_user", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (nq *NotificationQuery) addPredicate(pred func(s *sql.Selector)) {
	nq.predicates = append(nq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the NotificationQuery builder.
func (nq *NotificationQuery) Filter() *NotificationFilter {
	return &NotificationFilter{config: nq.config, predicateAdder: nq}
}

// addPredicate implements the predicateAdder interface.
func (m *NotificationMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the NotificationMutation builder.
func (m *NotificationMutation) Filter() *NotificationFilter {
	return &NotificationFilter{config: m.config, predicateAdder: m}
}

// NotificationFilter provides a generic filtering capability at runtime for NotificationQuery.
type NotificationFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *NotificationFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[2].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *NotificationFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(notification.FieldID))
}

// WhereType applies the entql string predicate on the type field.
func (f *NotificationFilter) WhereType(p entql.StringP) {
	f.Where(p.Field(notification.FieldType))
}

// WhereContent applies the entql string predicate on the content field.
func (f *NotificationFilter) WhereContent(p entql.StringP) {
	f.Where(p.Field(notification.FieldContent))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *NotificationFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(notification.FieldUserID))
}

// WhereIsRead applies the entql bool predicate on the is_read field.
func (f *NotificationFilter) WhereIsRead(p entql.BoolP) {
	f.Where(p.Field(notification.FieldIsRead))
}

// WhereRelatedID applies the entql [16]byte predicate on the related_id field.
func (f *NotificationFilter) WhereRelatedID(p entql.ValueP) {
	f.Where(p.Field(notification.FieldRelatedID))
}

// WhereRelatedType applies the entql string predicate on the related_type field.
func (f *NotificationFilter) WhereRelatedType(p entql.StringP) {
	f.Where(p.Field(notification.FieldRelatedType))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *NotificationFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(notification.FieldCreatedAt))
}

// WhereHasUser applies a predicate to check if query has an edge user.
func (f *NotificationFilter) WhereHasUser() {
	f.Where(entql.HasEdge("user"))
}

// WhereHasUserWith applies a predicate to check if query has an edge user with a given conditions (other predicates).
func (f *NotificationFilter) WhereHasUserWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("user", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (pq *ProjectQuery) addPredicate(pred func(s *sql.Selector)) {
	pq.predicates = append(pq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the ProjectQuery builder.
func (pq *ProjectQuery) Filter() *ProjectFilter {
	return &ProjectFilter{config: pq.config, predicateAdder: pq}
}

// addPredicate implements the predicateAdder interface.
func (m *ProjectMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the ProjectMutation builder.
func (m *ProjectMutation) Filter() *ProjectFilter {
	return &ProjectFilter{config: m.config, predicateAdder: m}
}

// ProjectFilter provides a generic filtering capability at runtime for ProjectQuery.
type ProjectFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *ProjectFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[3].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *ProjectFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(project.FieldID))
}

// WhereName applies the entql string predicate on the name field.
func (f *ProjectFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(project.FieldName))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *ProjectFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(project.FieldDescription))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *ProjectFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(project.FieldStatus))
}

// WherePlannedHours applies the entql float64 predicate on the planned_hours field.
func (f *ProjectFilter) WherePlannedHours(p entql.Float64P) {
	f.Where(p.Field(project.FieldPlannedHours))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *ProjectFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(project.FieldUserID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *ProjectFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(project.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *ProjectFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(project.FieldUpdatedAt))
}

// WhereHasOwner applies a predicate to check if query has an edge owner.
func (f *ProjectFilter) WhereHasOwner() {
	f.Where(entql.HasEdge("owner"))
}

// WhereHasOwnerWith applies a predicate to check if query has an edge owner with a given conditions (other predicates).
func (f *ProjectFilter) WhereHasOwnerWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("owner", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTasks applies a predicate to check if query has an edge tasks.
func (f *ProjectFilter) WhereHasTasks() {
	f.Where(entql.HasEdge("tasks"))
}

// WhereHasTasksWith applies a predicate to check if query has an edge tasks with a given conditions (other predicates).
func (f *ProjectFilter) WhereHasTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTimeEntries applies a predicate to check if query has an edge time_entries.
func (f *ProjectFilter) WhereHasTimeEntries() {
	f.Where(entql.HasEdge("time_entries"))
}

// WhereHasTimeEntriesWith applies a predicate to check if query has an edge time_entries with a given conditions (other predicates).
func (f *ProjectFilter) WhereHasTimeEntriesWith(preds ...predicate.TimeEntry) {
	f.Where(entql.HasEdgeWith("time_entries", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (tq *TaskQuery) addPredicate(pred func(s *sql.Selector)) {
	tq.predicates = append(tq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TaskQuery builder.
func (tq *TaskQuery) Filter() *TaskFilter {
	return &TaskFilter{config: tq.config, predicateAdder: tq}
}

// addPredicate implements the predicateAdder interface.
func (m *TaskMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TaskMutation builder.
func (m *TaskMutation) Filter() *TaskFilter {
	return &TaskFilter{config: m.config, predicateAdder: m}
}

// TaskFilter provides a generic filtering capability at runtime for TaskQuery.
type TaskFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TaskFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[4].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TaskFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(task.FieldID))
}

// WhereTitle applies the entql string predicate on the title field.
func (f *TaskFilter) WhereTitle(p entql.StringP) {
	f.Where(p.Field(task.FieldTitle))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TaskFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(task.FieldDescription))
}

// WhereStatus applies the entql string predicate on the status field.
func (f *TaskFilter) WhereStatus(p entql.StringP) {
	f.Where(p.Field(task.FieldStatus))
}

// WherePriority applies the entql string predicate on the priority field.
func (f *TaskFilter) WherePriority(p entql.StringP) {
	f.Where(p.Field(task.FieldPriority))
}

// WhereStartDate applies the entql time.Time predicate on the start_date field.
func (f *TaskFilter) WhereStartDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldStartDate))
}

// WhereDueDate applies the entql time.Time predicate on the due_date field.
func (f *TaskFilter) WhereDueDate(p entql.TimeP) {
	f.Where(p.Field(task.FieldDueDate))
}

// WhereEstimatedHours applies the entql float64 predicate on the estimated_hours field.
func (f *TaskFilter) WhereEstimatedHours(p entql.Float64P) {
	f.Where(p.Field(task.FieldEstimatedHours))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *TaskFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(task.FieldUserID))
}

// WhereAssignedUserID applies the entql [16]byte predicate on the assigned_user_id field.
func (f *TaskFilter) WhereAssignedUserID(p entql.ValueP) {
	f.Where(p.Field(task.FieldAssignedUserID))
}

// WhereProjectID applies the entql [16]byte predicate on the project_id field.
func (f *TaskFilter) WhereProjectID(p entql.ValueP) {
	f.Where(p.Field(task.FieldProjectID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TaskFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *TaskFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(task.FieldUpdatedAt))
}

// WhereHasOwner applies a predicate to check if query has an edge owner.
func (f *TaskFilter) WhereHasOwner() {
	f.Where(entql.HasEdge("owner"))
}

// WhereHasOwnerWith applies a predicate to check if query has an edge owner with a given conditions (other predicates).
func (f *TaskFilter) WhereHasOwnerWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("owner", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignee applies a predicate to check if query has an edge assignee.
func (f *TaskFilter) WhereHasAssignee() {
	f.Where(entql.HasEdge("assignee"))
}

// WhereHasAssigneeWith applies a predicate to check if query has an edge assignee with a given conditions (other predicates).
func (f *TaskFilter) WhereHasAssigneeWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("assignee", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasProject applies a predicate to check if query has an edge project.
func (f *TaskFilter) WhereHasProject() {
	f.Where(entql.HasEdge("project"))
}

// WhereHasProjectWith applies a predicate to check if query has an edge project with a given conditions (other predicates).
func (f *TaskFilter) WhereHasProjectWith(preds ...predicate.Project) {
	f.Where(entql.HasEdgeWith("project", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasComments applies a predicate to check if query has an edge comments.
func (f *TaskFilter) WhereHasComments() {
	f.Where(entql.HasEdge("comments"))
}

// WhereHasCommentsWith applies a predicate to check if query has an edge comments with a given conditions (other predicates).
func (f *TaskFilter) WhereHasCommentsWith(preds ...predicate.Comment) {
	f.Where(entql.HasEdgeWith("comments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTimeEntries applies a predicate to check if query has an edge time_entries.
func (f *TaskFilter) WhereHasTimeEntries() {
	f.Where(entql.HasEdge("time_entries"))
}

// WhereHasTimeEntriesWith applies a predicate to check if query has an edge time_entries with a given conditions (other predicates).
func (f *TaskFilter) WhereHasTimeEntriesWith(preds ...predicate.TimeEntry) {
	f.Where(entql.HasEdgeWith("time_entries", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (teq *TimeEntryQuery) addPredicate(pred func(s *sql.Selector)) {
	teq.predicates = append(teq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the TimeEntryQuery builder.
func (teq *TimeEntryQuery) Filter() *TimeEntryFilter {
	return &TimeEntryFilter{config: teq.config, predicateAdder: teq}
}

// addPredicate implements the predicateAdder interface.
func (m *TimeEntryMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the TimeEntryMutation builder.
func (m *TimeEntryMutation) Filter() *TimeEntryFilter {
	return &TimeEntryFilter{config: m.config, predicateAdder: m}
}

// TimeEntryFilter provides a generic filtering capability at runtime for TimeEntryQuery.
type TimeEntryFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *TimeEntryFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[5].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *TimeEntryFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(timeentry.FieldID))
}

// WhereHours applies the entql float64 predicate on the hours field.
func (f *TimeEntryFilter) WhereHours(p entql.Float64P) {
	f.Where(p.Field(timeentry.FieldHours))
}

// WhereDescription applies the entql string predicate on the description field.
func (f *TimeEntryFilter) WhereDescription(p entql.StringP) {
	f.Where(p.Field(timeentry.FieldDescription))
}

// WhereDate applies the entql time.Time predicate on the date field.
func (f *TimeEntryFilter) WhereDate(p entql.TimeP) {
	f.Where(p.Field(timeentry.FieldDate))
}

// WhereTaskID applies the entql [16]byte predicate on the task_id field.
func (f *TimeEntryFilter) WhereTaskID(p entql.ValueP) {
	f.Where(p.Field(timeentry.FieldTaskID))
}

// WhereProjectID applies the entql [16]byte predicate on the project_id field.
func (f *TimeEntryFilter) WhereProjectID(p entql.ValueP) {
	f.Where(p.Field(timeentry.FieldProjectID))
}

// WhereUserID applies the entql [16]byte predicate on the user_id field.
func (f *TimeEntryFilter) WhereUserID(p entql.ValueP) {
	f.Where(p.Field(timeentry.FieldUserID))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *TimeEntryFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(timeentry.FieldCreatedAt))
}

// WhereHasTask applies a predicate to check if query has an edge task.
func (f *TimeEntryFilter) WhereHasTask() {
	f.Where(entql.HasEdge("task"))
}

// WhereHasTaskWith applies a predicate to check if query has an edge task with a given conditions (other predicates).
func (f *TimeEntryFilter) WhereHasTaskWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("task", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasProject applies a predicate to check if query has an edge project.
func (f *TimeEntryFilter) WhereHasProject() {
	f.Where(entql.HasEdge("project"))
}

// WhereHasProjectWith applies a predicate to check if query has an edge project with a given conditions (other predicates).
func (f *TimeEntryFilter) WhereHasProjectWith(preds ...predicate.Project) {
	f.Where(entql.HasEdgeWith("project", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasUser applies a predicate to check if query has an edge user.
func (f *TimeEntryFilter) WhereHasUser() {
	f.Where(entql.HasEdge("user"))
}

// WhereHasUserWith applies a predicate to check if query has an edge user with a given conditions (other predicates).
func (f *TimeEntryFilter) WhereHasUserWith(preds ...predicate.User) {
	f.Where(entql.HasEdgeWith("user", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// addPredicate implements the predicateAdder interface.
func (uq *UserQuery) addPredicate(pred func(s *sql.Selector)) {
	uq.predicates = append(uq.predicates, pred)
}

// Filter returns a Filter implementation to apply filters on the UserQuery builder.
func (uq *UserQuery) Filter() *UserFilter {
	return &UserFilter{config: uq.config, predicateAdder: uq}
}

// addPredicate implements the predicateAdder interface.
func (m *UserMutation) addPredicate(pred func(s *sql.Selector)) {
	m.predicates = append(m.predicates, pred)
}

// Filter returns an entql.Where implementation to apply filters on the UserMutation builder.
func (m *UserMutation) Filter() *UserFilter {
	return &UserFilter{config: m.config, predicateAdder: m}
}

// UserFilter provides a generic filtering capability at runtime for UserQuery.
type UserFilter struct {
	predicateAdder
	config
}

// Where applies the entql predicate on the query filter.
func (f *UserFilter) Where(p entql.P) {
	f.addPredicate(func(s *sql.Selector) {
		if err := schemaGraph.EvalP(schemaGraph.Nodes[6].Type, p, s); err != nil {
			s.AddError(err)
		}
	})
}

// WhereID applies the entql [16]byte predicate on the id field.
func (f *UserFilter) WhereID(p entql.ValueP) {
	f.Where(p.Field(user.FieldID))
}

// WhereName applies the entql string predicate on the name field.
func (f *UserFilter) WhereName(p entql.StringP) {
	f.Where(p.Field(user.FieldName))
}

// WhereEmail applies the entql string predicate on the email field.
func (f *UserFilter) WhereEmail(p entql.StringP) {
	f.Where(p.Field(user.FieldEmail))
}

// WherePasswordHash applies the entql string predicate on the password_hash field.
func (f *UserFilter) WherePasswordHash(p entql.StringP) {
	f.Where(p.Field(user.FieldPasswordHash))
}

// WhereCreatedAt applies the entql time.Time predicate on the created_at field.
func (f *UserFilter) WhereCreatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldCreatedAt))
}

// WhereUpdatedAt applies the entql time.Time predicate on the updated_at field.
func (f *UserFilter) WhereUpdatedAt(p entql.TimeP) {
	f.Where(p.Field(user.FieldUpdatedAt))
}

// WhereHasOwnedTasks applies a predicate to check if query has an edge owned_tasks.
func (f *UserFilter) WhereHasOwnedTasks() {
	f.Where(entql.HasEdge("owned_tasks"))
}

// WhereHasOwnedTasksWith applies a predicate to check if query has an edge owned_tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasOwnedTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("owned_tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasAssignedTasks applies a predicate to check if query has an edge assigned_tasks.
func (f *UserFilter) WhereHasAssignedTasks() {
	f.Where(entql.HasEdge("assigned_tasks"))
}

// WhereHasAssignedTasksWith applies a predicate to check if query has an edge assigned_tasks with a given conditions (other predicates).
func (f *UserFilter) WhereHasAssignedTasksWith(preds ...predicate.Task) {
	f.Where(entql.HasEdgeWith("assigned_tasks", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasProjects applies a predicate to check if query has an edge projects.
func (f *UserFilter) WhereHasProjects() {
	f.Where(entql.HasEdge("projects"))
}

// WhereHasProjectsWith applies a predicate to check if query has an edge projects with a given conditions (other predicates).
func (f *UserFilter) WhereHasProjectsWith(preds ...predicate.Project) {
	f.Where(entql.HasEdgeWith("projects", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasComments applies a predicate to check if query has an edge comments.
func (f *UserFilter) WhereHasComments() {
	f.Where(entql.HasEdge("comments"))
}

// WhereHasCommentsWith applies a predicate to check if query has an edge comments with a given conditions (other predicates).
func (f *UserFilter) WhereHasCommentsWith(preds ...predicate.Comment) {
	f.Where(entql.HasEdgeWith("comments", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasMentions applies a predicate to check if query has an edge mentions.
func (f *UserFilter) WhereHasMentions() {
	f.Where(entql.HasEdge("mentions"))
}

// WhereHasMentionsWith applies a predicate to check if query has an edge mentions with a given conditions (other predicates).
func (f *UserFilter) WhereHasMentionsWith(preds ...predicate.Mention) {
	f.Where(entql.HasEdgeWith("mentions", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasTimeEntries applies a predicate to check if query has an edge time_entries.
func (f *UserFilter) WhereHasTimeEntries() {
	f.Where(entql.HasEdge("time_entries"))
}

// WhereHasTimeEntriesWith applies a predicate to check if query has an edge time_entries with a given conditions (other predicates).
func (f *UserFilter) WhereHasTimeEntriesWith(preds ...predicate.TimeEntry) {
	f.Where(entql.HasEdgeWith("time_entries", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}

// WhereHasNotifications applies a predicate to check if query has an edge notifications.
func (f *UserFilter) WhereHasNotifications() {
	f.Where(entql.HasEdge("notifications"))
}

// WhereHasNotificationsWith applies a predicate to check if query has an edge notifications with a given conditions (other predicates).
func (f *UserFilter) WhereHasNotificationsWith(preds ...predicate.Notification) {
	f.Where(entql.HasEdgeWith("notifications", sqlgraph.WrapFunc(func(s *sql.Selector) {
		for _, p := range preds {
			p(s)
		}
	})))
}
