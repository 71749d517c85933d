// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/gurkanbulca/taskboard/ent/generated/predicate"
	"github.com/gurkanbulca/taskboard/ent/generated/project"
	"github.com/gurkanbulca/taskboard/ent/generated/task"
	"github.com/gurkanbulca/taskboard/ent/generated/timeentry"
	"github.com/gurkanbulca/taskboard/ent/generated/user"
)

// TimeEntryQuery is the builder for querying TimeEntry entities.
type TimeEntryQuery struct {
	config
	ctx         *QueryContext
	order       []timeentry.OrderOption
	inters      []Interceptor
	predicates  []predicate.TimeEntry
	withTask    *TaskQuery
	withProject *ProjectQuery
	withUser    *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TimeEntryQuery builder.
func (teq *TimeEntryQuery) Where(ps ...predicate.TimeEntry) *TimeEntryQuery {
	teq.predicates = append(teq.predicates, ps...)
	return teq
}

// Limit the number of records to be returned by this query.
func (teq *TimeEntryQuery) Limit(limit int) *TimeEntryQuery {
	teq.ctx.Limit = &limit
	return teq
}

// Offset to start from.
func (teq *TimeEntryQuery) Offset(offset int) *TimeEntryQuery {
	teq.ctx.Offset = &offset
	return teq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (teq *TimeEntryQuery) Unique(unique bool) *TimeEntryQuery {
	teq.ctx.Unique = &unique
	return teq
}

// Order specifies how the records should be ordered.
func (teq *TimeEntryQuery) Order(o ...timeentry.OrderOption) *TimeEntryQuery {
	teq.order = append(teq.order, o...)
	return teq
}

// QueryTask chains the current query on the "task" edge.
func (teq *TimeEntryQuery) QueryTask() *TaskQuery {
	query := (&TaskClient{config: teq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := teq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := teq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timeentry.Table, timeentry.FieldID, selector),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timeentry.TaskTable, timeentry.TaskColumn),
		)
		fromU = sqlgraph.SetNeighbors(teq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryProject chains the current query on the "project" edge.
func (teq *TimeEntryQuery) QueryProject() *ProjectQuery {
	query := (&ProjectClient{config: teq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := teq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := teq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timeentry.Table, timeentry.FieldID, selector),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timeentry.ProjectTable, timeentry.ProjectColumn),
		)
		fromU = sqlgraph.SetNeighbors(teq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryUser chains the current query on the "user" edge.
func (teq *TimeEntryQuery) QueryUser() *UserQuery {
	query := (&UserClient{config: teq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := teq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := teq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(timeentry.Table, timeentry.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, timeentry.UserTable, timeentry.UserColumn),
		)
		fromU = sqlgraph.SetNeighbors(teq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first TimeEntry entity from the query.
// Returns a *NotFoundError when no TimeEntry was found.
func (teq *TimeEntryQuery) First(ctx context.Context) (*TimeEntry, error) {
	nodes, err := teq.Limit(1).All(setContextOp(ctx, teq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{timeentry.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (teq *TimeEntryQuery) FirstX(ctx context.Context) *TimeEntry {
	node, err := teq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TimeEntry ID from the query.
// Returns a *NotFoundError when no TimeEntry ID was found.
func (teq *TimeEntryQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = teq.Limit(1).IDs(setContextOp(ctx, teq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{timeentry.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (teq *TimeEntryQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := teq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TimeEntry entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TimeEntry entity is found.
// Returns a *NotFoundError when no TimeEntry entities are found.
func (teq *TimeEntryQuery) Only(ctx context.Context) (*TimeEntry, error) {
	nodes, err := teq.Limit(2).All(setContextOp(ctx, teq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{timeentry.Label}
	default:
		return nil, &NotSingularError{timeentry.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (teq *TimeEntryQuery) OnlyX(ctx context.Context) *TimeEntry {
	node, err := teq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TimeEntry ID in the query.
// Returns a *NotSingularError when more than one TimeEntry ID is found.
// Returns a *NotFoundError when no entities are found.
func (teq *TimeEntryQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = teq.Limit(2).IDs(setContextOp(ctx, teq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{timeentry.Label}
	default:
		err = &NotSingularError{timeentry.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (teq *TimeEntryQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := teq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TimeEntries.
func (teq *TimeEntryQuery) All(ctx context.Context) ([]*TimeEntry, error) {
	ctx = setContextOp(ctx, teq.ctx, ent.OpQueryAll)
	if err := teq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TimeEntry, *TimeEntryQuery]()
	return withInterceptors[[]*TimeEntry](ctx, teq, qr, teq.inters)
}

// AllX is like All, but panics if an error occurs.
func (teq *TimeEntryQuery) AllX(ctx context.Context) []*TimeEntry {
	nodes, err := teq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TimeEntry IDs.
func (teq *TimeEntryQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if teq.ctx.Unique == nil && teq.path != nil {
		teq.Unique(true)
	}
	ctx = setContextOp(ctx, teq.ctx, ent.OpQueryIDs)
	if err = teq.Select(timeentry.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (teq *TimeEntryQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := teq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (teq *TimeEntryQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, teq.ctx, ent.OpQueryCount)
	if err := teq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, teq, querierCount[*TimeEntryQuery](), teq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (teq *TimeEntryQuery) CountX(ctx context.Context) int {
	count, err := teq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (teq *TimeEntryQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, teq.ctx, ent.OpQueryExist)
	switch _, err := teq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (teq *TimeEntryQuery) ExistX(ctx context.Context) bool {
	exist, err := teq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TimeEntryQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (teq *TimeEntryQuery) Clone() *TimeEntryQuery {
	if teq == nil {
		return nil
	}
	return &TimeEntryQuery{
		config:      teq.config,
		ctx:         teq.ctx.Clone(),
		order:       append([]timeentry.OrderOption{}, teq.order...),
		inters:      append([]Interceptor{}, teq.inters...),
		predicates:  append([]predicate.TimeEntry{}, teq.predicates...),
		withTask:    teq.withTask.Clone(),
		withProject: teq.withProject.Clone(),
		withUser:    teq.withUser.Clone(),
		// clone intermediate query.
		sql:  teq.sql.Clone(),
		path: teq.path,
	}
}

// WithTask tells the query-builder to eager-load the nodes that are connected to
// the "task" edge. The optional arguments are used to configure the query builder of the edge.
func (teq *TimeEntryQuery) WithTask(opts ...func(*TaskQuery)) *TimeEntryQuery {
	query := (&TaskClient{config: teq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	teq.withTask = query
	return teq
}

// WithProject tells the query-builder to eager-load the nodes that are connected to
// the "project" edge. The optional arguments are used to configure the query builder of the edge.
func (teq *TimeEntryQuery) WithProject(opts ...func(*ProjectQuery)) *TimeEntryQuery {
	query := (&ProjectClient{config: teq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	teq.withProject = query
	return teq
}

// WithUser tells the query-builder to eager-load the nodes that are connected to
// the "user" edge. The optional arguments are used to configure the query builder of the edge.
func (teq *TimeEntryQuery) WithUser(opts ...func(*UserQuery)) *TimeEntryQuery {
	query := (&UserClient{config: teq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	teq.withUser = query
	return teq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Hours float64 `json:"hours,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TimeEntry.Query().
//		GroupBy(timeentry.FieldHours).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (teq *TimeEntryQuery) GroupBy(field string, fields ...string) *TimeEntryGroupBy {
	teq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TimeEntryGroupBy{build: teq}
	grbuild.flds = &teq.ctx.Fields
	grbuild.label = timeentry.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Hours float64 `json:"hours,omitempty"`
//	}
//
//	client.TimeEntry.Query().
//		Select(timeentry.FieldHours).
//		Scan(ctx, &v)
func (teq *TimeEntryQuery) Select(fields ...string) *TimeEntrySelect {
	teq.ctx.Fields = append(teq.ctx.Fields, fields...)
	sbuild := &TimeEntrySelect{TimeEntryQuery: teq}
	sbuild.label = timeentry.Label
	sbuild.flds, sbuild.scan = &teq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TimeEntrySelect configured with the given aggregations.
func (teq *TimeEntryQuery) Aggregate(fns ...AggregateFunc) *TimeEntrySelect {
	return teq.Select().Aggregate(fns...)
}

func (teq *TimeEntryQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range teq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, teq); err != nil {
				return err
			}
		}
	}
	for _, f := range teq.ctx.Fields {
		if !timeentry.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if teq.path != nil {
		prev, err := teq.path(ctx)
		if err != nil {
			return err
		}
		teq.sql = prev
	}
	return nil
}

func (teq *TimeEntryQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TimeEntry, error) {
	var (
		nodes       = []*TimeEntry{}
		_spec       = teq.querySpec()
		loadedTypes = [3]bool{
			teq.withTask != nil,
			teq.withProject != nil,
			teq.withUser != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TimeEntry).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TimeEntry{config: teq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, teq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := teq.withTask; query != nil {
		if err := teq.loadTask(ctx, query, nodes, nil,
			func(n *TimeEntry, e *Task) { n.Edges.Task = e }); err != nil {
			return nil, err
		}
	}
	if query := teq.withProject; query != nil {
		if err := teq.loadProject(ctx, query, nodes, nil,
			func(n *TimeEntry, e *Project) { n.Edges.Project = e }); err != nil {
			return nil, err
		}
	}
	if query := teq.withUser; query != nil {
		if err := teq.loadUser(ctx, query, nodes, nil,
			func(n *TimeEntry, e *User) { n.Edges.User = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (teq *TimeEntryQuery) loadTask(ctx context.Context, query *TaskQuery, nodes []*TimeEntry, init func(*TimeEntry), assign func(*TimeEntry, *Task)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TimeEntry)
	for i := range nodes {
		fk := nodes[i].TaskID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(task.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "task_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (teq *TimeEntryQuery) loadProject(ctx context.Context, query *ProjectQuery, nodes []*TimeEntry, init func(*TimeEntry), assign func(*TimeEntry, *Project)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TimeEntry)
	for i := range nodes {
		fk := nodes[i].ProjectID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(project.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "project_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (teq *TimeEntryQuery) loadUser(ctx context.Context, query *UserQuery, nodes []*TimeEntry, init func(*TimeEntry), assign func(*TimeEntry, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*TimeEntry)
	for i := range nodes {
		fk := nodes[i].UserID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (teq *TimeEntryQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := teq.querySpec()
	_spec.Node.Columns = teq.ctx.Fields
	if len(teq.ctx.Fields) > 0 {
		_spec.Unique = teq.ctx.Unique != nil && *teq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, teq.driver, _spec)
}

func (teq *TimeEntryQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(timeentry.Table, timeentry.Columns, sqlgraph.NewFieldSpec(timeentry.FieldID, field.TypeUUID))
	_spec.From = teq.sql
	if unique := teq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if teq.path != nil {
		_spec.Unique = true
	}
	if fields := teq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, timeentry.FieldID)
		for i := range fields {
			if fields[i] != timeentry.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if teq.withTask != nil {
			_spec.Node.AddColumnOnce(timeentry.FieldTaskID)
		}
		if teq.withProject != nil {
			_spec.Node.AddColumnOnce(timeentry.FieldProjectID)
		}
		if teq.withUser != nil {
			_spec.Node.AddColumnOnce(timeentry.FieldUserID)
		}
	}
	if ps := teq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := teq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := teq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := teq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (teq *TimeEntryQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(teq.driver.Dialect())
	t1 := builder.Table(timeentry.Table)
	columns := teq.ctx.Fields
	if len(columns) == 0 {
		columns = timeentry.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if teq.sql != nil {
		selector = teq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if teq.ctx.Unique != nil && *teq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range teq.predicates {
		p(selector)
	}
	for _, p := range teq.order {
		p(selector)
	}
	if offset := teq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := teq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TimeEntryGroupBy is the group-by builder for TimeEntry entities.
type TimeEntryGroupBy struct {
	selector
	build *TimeEntryQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (tegb *TimeEntryGroupBy) Aggregate(fns ...AggregateFunc) *TimeEntryGroupBy {
	tegb.fns = append(tegb.fns, fns...)
	return tegb
}

// Scan applies the selector query and scans the result into the given value.
func (tegb *TimeEntryGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tegb.build.ctx, ent.OpQueryGroupBy)
	if err := tegb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TimeEntryQuery, *TimeEntryGroupBy](ctx, tegb.build, tegb, tegb.build.inters, v)
}

func (tegb *TimeEntryGroupBy) sqlScan(ctx context.Context, root *TimeEntryQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(tegb.fns))
	for _, fn := range tegb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*tegb.flds)+len(tegb.fns))
		for _, f := range *tegb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*tegb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tegb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TimeEntrySelect is the builder for selecting fields of TimeEntry entities.
type TimeEntrySelect struct {
	*TimeEntryQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (tes *TimeEntrySelect) Aggregate(fns ...AggregateFunc) *TimeEntrySelect {
	tes.fns = append(tes.fns, fns...)
	return tes
}

// Scan applies the selector query and scans the result into the given value.
func (tes *TimeEntrySelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, tes.ctx, ent.OpQuerySelect)
	if err := tes.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TimeEntryQuery, *TimeEntrySelect](ctx, tes.TimeEntryQuery, tes, tes.inters, v)
}

func (tes *TimeEntrySelect) sqlScan(ctx context.Context, root *TimeEntryQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(tes.fns))
	for _, fn := range tes.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*tes.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := tes.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
