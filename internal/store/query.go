// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// query.go is the shared shape behind every collection listing. A listQuery
// holds a table, a set of equality filters and an ordered list of sort keys,
// and renders exactly one SELECT. One attempt per call, no retry: a failed
// listing surfaces its error and the caller keeps whatever it rendered last.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// sortKey is one (field, direction) pair of an ordering spec.
type sortKey struct {
	field string
	desc  bool
}

// listQuery accumulates filters and ordering for a single listing SELECT.
// Field names come from compile-time constants inside this package, never
// from request input.
type listQuery struct {
	table   string
	columns string
	filters []string
	args    []any
	sort    []sortKey
	limit   int
}

// newListQuery starts a listing over table selecting columns.
func newListQuery(table, columns string) *listQuery {
	return &listQuery{table: table, columns: columns}
}

// Where adds an equality filter on field.
func (q *listQuery) Where(field string, value any) *listQuery {
	q.args = append(q.args, value)
	q.filters = append(q.filters, fmt.Sprintf("%s = $%d", field, len(q.args)))
	return q
}

// OrderBy appends a sort key. Keys apply in the order they were added.
func (q *listQuery) OrderBy(field string, desc bool) *listQuery {
	q.sort = append(q.sort, sortKey{field: field, desc: desc})
	return q
}

// Limit caps the result set. Zero means no limit.
func (q *listQuery) Limit(n int) *listQuery {
	q.limit = n
	return q
}

// SQL renders the SELECT statement and its positional arguments.
func (q *listQuery) SQL() (string, []any) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s", q.columns, q.table)
	if len(q.filters) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(q.filters, " AND "))
	}
	if len(q.sort) > 0 {
		b.WriteString(" ORDER BY ")
		for i, k := range q.sort {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(k.field)
			if k.desc {
				b.WriteString(" DESC")
			}
		}
	}
	if q.limit > 0 {
		fmt.Fprintf(&b, " LIMIT %d", q.limit)
	}
	return b.String(), q.args
}

// queryList executes q and scans every row with scan, returning the full
// result set at once.
func queryList[T any](ctx context.Context, db *sql.DB, q *listQuery, scan func(*sql.Rows) (T, error)) ([]T, error) {
	stmt, args := q.SQL()
	rows, err := db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", q.table, err)
	}
	defer rows.Close()

	var items []T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", q.table, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// queryOne executes a single-row lookup, mapping sql.ErrNoRows to (zero, nil)
// so callers render a not-found state instead of an error page.
func queryOne[T any](err error, item *T, what string) (*T, error) {
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}
	return item, nil
}

// pruneMissing deletes every row of table whose id is not in keep. Used by
// the batch-save stores to drop rows the admin removed from the ordered set.
// Runs inside the caller's transaction.
func pruneMissing(ctx context.Context, tx *sql.Tx, table string, keep []uuid.UUID) error {
	if len(keep) == 0 {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("prune %s: %w", table, err)
		}
		return nil
	}

	placeholders := make([]string, len(keep))
	args := make([]any, len(keep))
	for i, id := range keep {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}
	stmt := fmt.Sprintf("DELETE FROM %s WHERE id NOT IN (%s)", table, strings.Join(placeholders, ", "))
	if _, err := tx.ExecContext(ctx, stmt, args...); err != nil {
		return fmt.Errorf("prune %s: %w", table, err)
	}
	return nil
}

// countRows runs a COUNT(*) over table with optional equality filters.
func countRows(ctx context.Context, db *sql.DB, table string, filters map[string]any) (int, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "SELECT COUNT(*) FROM %s", table)
	var args []any
	if len(filters) > 0 {
		b.WriteString(" WHERE ")
		first := true
		for field, value := range filters {
			if !first {
				b.WriteString(" AND ")
			}
			args = append(args, value)
			fmt.Fprintf(&b, "%s = $%d", field, len(args))
			first = false
		}
	}
	var count int
	if err := db.QueryRowContext(ctx, b.String(), args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count %s: %w", table, err)
	}
	return count, nil
}
