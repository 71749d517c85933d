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
	"github.com/gurkanbulca/taskboard/ent/generated/comment"
	"github.com/gurkanbulca/taskboard/ent/generated/mention"
	"github.com/gurkanbulca/taskboard/ent/generated/predicate"
	"github.com/gurkanbulca/taskboard/ent/generated/user"
)

// MentionQuery is the builder for querying Mention entities.
type MentionQuery struct {
	config
	ctx               *QueryContext
	order             []mention.OrderOption
	inters            []Interceptor
	predicates        []predicate.Mention
	withComment       *CommentQuery
	withMentionedUser *UserQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the MentionQuery builder.
func (mq *MentionQuery) Where(ps ...predicate.Mention) *MentionQuery {
	mq.predicates = append(mq.predicates, ps...)
	return mq
}

// Limit the number of records to be returned by this query.
func (mq *MentionQuery) Limit(limit int) *MentionQuery {
	mq.ctx.Limit = &limit
	return mq
}

// Offset to start from.
func (mq *MentionQuery) Offset(offset int) *MentionQuery {
	mq.ctx.Offset = &offset
	return mq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (mq *MentionQuery) Unique(unique bool) *MentionQuery {
	mq.ctx.Unique = &unique
	return mq
}

// Order specifies how the records should be ordered.
func (mq *MentionQuery) Order(o ...mention.OrderOption) *MentionQuery {
	mq.order = append(mq.order, o...)
	return mq
}

// QueryComment chains the current query on the "comment" edge.
func (mq *MentionQuery) QueryComment() *CommentQuery {
	query := (&CommentClient{config: mq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := mq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := mq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(mention.Table, mention.FieldID, selector),
			sqlgraph.To(comment.Table, comment.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mention.CommentTable, mention.CommentColumn),
		)
		fromU = sqlgraph.SetNeighbors(mq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryMentionedUser chains the current query on the "mentioned_user" edge.
func (mq *MentionQuery) QueryMentionedUser() *UserQuery {
	query := (&UserClient{config: mq.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := mq.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := mq.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(mention.Table, mention.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, mention.MentionedUserTable, mention.MentionedUserColumn),
		)
		fromU = sqlgraph.SetNeighbors(mq.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Mention entity from the query.
// Returns a *NotFoundError when no Mention was found.
func (mq *MentionQuery) First(ctx context.Context) (*Mention, error) {
	nodes, err := mq.Limit(1).All(setContextOp(ctx, mq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{mention.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (mq *MentionQuery) FirstX(ctx context.Context) *Mention {
	node, err := mq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Mention ID from the query.
// Returns a *NotFoundError when no Mention ID was found.
func (mq *MentionQuery) FirstID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = mq.Limit(1).IDs(setContextOp(ctx, mq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{mention.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (mq *MentionQuery) FirstIDX(ctx context.Context) uuid.UUID {
	id, err := mq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Mention entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Mention entity is found.
// Returns a *NotFoundError when no Mention entities are found.
func (mq *MentionQuery) Only(ctx context.Context) (*Mention, error) {
	nodes, err := mq.Limit(2).All(setContextOp(ctx, mq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{mention.Label}
	default:
		return nil, &NotSingularError{mention.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (mq *MentionQuery) OnlyX(ctx context.Context) *Mention {
	node, err := mq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Mention ID in the query.
// Returns a *NotSingularError when more than one Mention ID is found.
// Returns a *NotFoundError when no entities are found.
func (mq *MentionQuery) OnlyID(ctx context.Context) (id uuid.UUID, err error) {
	var ids []uuid.UUID
	if ids, err = mq.Limit(2).IDs(setContextOp(ctx, mq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{mention.Label}
	default:
		err = &NotSingularError{mention.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (mq *MentionQuery) OnlyIDX(ctx context.Context) uuid.UUID {
	id, err := mq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Mentions.
func (mq *MentionQuery) All(ctx context.Context) ([]*Mention, error) {
	ctx = setContextOp(ctx, mq.ctx, ent.OpQueryAll)
	if err := mq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Mention, *MentionQuery]()
	return withInterceptors[[]*Mention](ctx, mq, qr, mq.inters)
}

// AllX is like All, but panics if an error occurs.
func (mq *MentionQuery) AllX(ctx context.Context) []*Mention {
	nodes, err := mq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Mention IDs.
func (mq *MentionQuery) IDs(ctx context.Context) (ids []uuid.UUID, err error) {
	if mq.ctx.Unique == nil && mq.path != nil {
		mq.Unique(true)
	}
	ctx = setContextOp(ctx, mq.ctx, ent.OpQueryIDs)
	if err = mq.Select(mention.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (mq *MentionQuery) IDsX(ctx context.Context) []uuid.UUID {
	ids, err := mq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (mq *MentionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, mq.ctx, ent.OpQueryCount)
	if err := mq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, mq, querierCount[*MentionQuery](), mq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (mq *MentionQuery) CountX(ctx context.Context) int {
	count, err := mq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (mq *MentionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, mq.ctx, ent.OpQueryExist)
	switch _, err := mq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (mq *MentionQuery) ExistX(ctx context.Context) bool {
	exist, err := mq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the MentionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (mq *MentionQuery) Clone() *MentionQuery {
	if mq == nil {
		return nil
	}
	return &MentionQuery{
		config:            mq.config,
		ctx:               mq.ctx.Clone(),
		order:             append([]mention.OrderOption{}, mq.order...),
		inters:            append([]Interceptor{}, mq.inters...),
		predicates:        append([]predicate.Mention{}, mq.predicates...),
		withComment:       mq.withComment.Clone(),
		withMentionedUser: mq.withMentionedUser.Clone(),
		// clone intermediate query.
		sql:  mq.sql.Clone(),
		path: mq.path,
	}
}

// WithComment tells the query-builder to eager-load the nodes that are connected to
// the "comment" edge. The optional arguments are used to configure the query builder of the edge.
func (mq *MentionQuery) WithComment(opts ...func(*CommentQuery)) *MentionQuery {
	query := (&CommentClient{config: mq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	mq.withComment = query
	return mq
}

// WithMentionedUser tells the query-builder to eager-load the nodes that are connected to
// the "mentioned_user" edge. The optional arguments are used to configure the query builder of the edge.
func (mq *MentionQuery) WithMentionedUser(opts ...func(*UserQuery)) *MentionQuery {
	query := (&UserClient{config: mq.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	mq.withMentionedUser = query
	return mq
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CommentID uuid.UUID `json:"comment_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Mention.Query().
//		GroupBy(mention.FieldCommentID).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (mq *MentionQuery) GroupBy(field string, fields ...string) *MentionGroupBy {
	mq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &MentionGroupBy{build: mq}
	grbuild.flds = &mq.ctx.Fields
	grbuild.label = mention.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CommentID uuid.UUID `json:"comment_id,omitempty"`
//	}
//
//	client.Mention.Query().
//		Select(mention.FieldCommentID).
//		Scan(ctx, &v)
func (mq *MentionQuery) Select(fields ...string) *MentionSelect {
	mq.ctx.Fields = append(mq.ctx.Fields, fields...)
	sbuild := &MentionSelect{MentionQuery: mq}
	sbuild.label = mention.Label
	sbuild.flds, sbuild.scan = &mq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a MentionSelect configured with the given aggregations.
func (mq *MentionQuery) Aggregate(fns ...AggregateFunc) *MentionSelect {
	return mq.Select().Aggregate(fns...)
}

func (mq *MentionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range mq.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, mq); err != nil {
				return err
			}
		}
	}
	for _, f := range mq.ctx.Fields {
		if !mention.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if mq.path != nil {
		prev, err := mq.path(ctx)
		if err != nil {
			return err
		}
		mq.sql = prev
	}
	return nil
}

func (mq *MentionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Mention, error) {
	var (
		nodes       = []*Mention{}
		_spec       = mq.querySpec()
		loadedTypes = [2]bool{
			mq.withComment != nil,
			mq.withMentionedUser != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Mention).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Mention{config: mq.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, mq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := mq.withComment; query != nil {
		if err := mq.loadComment(ctx, query, nodes, nil,
			func(n *Mention, e *Comment) { n.Edges.Comment = e }); err != nil {
			return nil, err
		}
	}
	if query := mq.withMentionedUser; query != nil {
		if err := mq.loadMentionedUser(ctx, query, nodes, nil,
			func(n *Mention, e *User) { n.Edges.MentionedUser = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (mq *MentionQuery) loadComment(ctx context.Context, query *CommentQuery, nodes []*Mention, init func(*Mention), assign func(*Mention, *Comment)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Mention)
	for i := range nodes {
		fk := nodes[i].CommentID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(comment.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "comment_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (mq *MentionQuery) loadMentionedUser(ctx context.Context, query *UserQuery, nodes []*Mention, init func(*Mention), assign func(*Mention, *User)) error {
	ids := make([]uuid.UUID, 0, len(nodes))
	nodeids := make(map[uuid.UUID][]*Mention)
	for i := range nodes {
		fk := nodes[i].MentionedUserID
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
			return fmt.Errorf(`unexpected foreign-key "mentioned_user_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (mq *MentionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := mq.querySpec()
	_spec.Node.Columns = mq.ctx.Fields
	if len(mq.ctx.Fields) > 0 {
		_spec.Unique = mq.ctx.Unique != nil && *mq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, mq.driver, _spec)
}

func (mq *MentionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(mention.Table, mention.Columns, sqlgraph.NewFieldSpec(mention.FieldID, field.TypeUUID))
	_spec.From = mq.sql
	if unique := mq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if mq.path != nil {
		_spec.Unique = true
	}
	if fields := mq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, mention.FieldID)
		for i := range fields {
			if fields[i] != mention.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if mq.withComment != nil {
			_spec.Node.AddColumnOnce(mention.FieldCommentID)
		}
		if mq.withMentionedUser != nil {
			_spec.Node.AddColumnOnce(mention.FieldMentionedUserID)
		}
	}
	if ps := mq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := mq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := mq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := mq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (mq *MentionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(mq.driver.Dialect())
	t1 := builder.Table(mention.Table)
	columns := mq.ctx.Fields
	if len(columns) == 0 {
		columns = mention.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if mq.sql != nil {
		selector = mq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if mq.ctx.Unique != nil && *mq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range mq.predicates {
		p(selector)
	}
	for _, p := range mq.order {
		p(selector)
	}
	if offset := mq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := mq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// MentionGroupBy is the group-by builder for Mention entities.
type MentionGroupBy struct {
	selector
	build *MentionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (mgb *MentionGroupBy) Aggregate(fns ...AggregateFunc) *MentionGroupBy {
	mgb.fns = append(mgb.fns, fns...)
	return mgb
}

// Scan applies the selector query and scans the result into the given value.
func (mgb *MentionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, mgb.build.ctx, ent.OpQueryGroupBy)
	if err := mgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MentionQuery, *MentionGroupBy](ctx, mgb.build, mgb, mgb.build.inters, v)
}

func (mgb *MentionGroupBy) sqlScan(ctx context.Context, root *MentionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(mgb.fns))
	for _, fn := range mgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*mgb.flds)+len(mgb.fns))
		for _, f := range *mgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*mgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := mgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// MentionSelect is the builder for selecting fields of Mention entities.
type MentionSelect struct {
	*MentionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (ms *MentionSelect) Aggregate(fns ...AggregateFunc) *MentionSelect {
	ms.fns = append(ms.fns, fns...)
	return ms
}

// Scan applies the selector query and scans the result into the given value.
func (ms *MentionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ms.ctx, ent.OpQuerySelect)
	if err := ms.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*MentionQuery, *MentionSelect](ctx, ms.MentionQuery, ms, ms.inters, v)
}

func (ms *MentionSelect) sqlScan(ctx context.Context, root *MentionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(ms.fns))
	for _, fn := range ms.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*ms.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ms.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
