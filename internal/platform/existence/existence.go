// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package existence confirms that a referenced row exists before a dependent
read or a mutation runs.

It is used in two ways:

  - Defensively: before an update or delete, so a missing target becomes a
    clean 404 instead of a silent no-op.
  - Diagnostically: after an empty collection read, to tell "parent missing"
    apart from "parent exists, no children".

Table and column identifiers come only from the closed [Resource] set and are
never built from request input.
*/
package existence

import (
	"context"
	"fmt"

	"github.com/taibuivan/gamereview/internal/platform/apperr"
	"github.com/taibuivan/gamereview/internal/platform/database/schema"
	"github.com/taibuivan/gamereview/internal/platform/dberr"
	"github.com/taibuivan/gamereview/internal/platform/postgres"
)

// # Resources

// Resource identifies a (table, key column) pair that may be checked.
type Resource int

const (
	// Review is reviews.review_id.
	Review Resource = iota + 1
	// Comment is comments.comment_id.
	Comment
	// Category is categories.slug.
	Category
)

// String returns the table name, for logs.
func (r Resource) String() string {
	if t, ok := targets[r]; ok {
		return t.table
	}
	return fmt.Sprintf("Resource(%d)", int(r))
}

type target struct {
	table  string
	column string
}

var targets = map[Resource]target{
	Review:   {table: schema.CatalogReview.Table, column: schema.CatalogReview.ID},
	Comment:  {table: schema.CatalogComment.Table, column: schema.CatalogComment.ID},
	Category: {table: schema.CatalogCategory.Table, column: schema.CatalogCategory.Slug},
}

// # Checker

// Checker runs existence lookups against the relational store.
type Checker struct {
	db postgres.DBTX
}

// NewChecker constructs a [Checker] over db.
func NewChecker(db postgres.DBTX) *Checker {
	return &Checker{db: db}
}

/*
Exists returns nil when at least one row of resource has the given key.

Returns:
  - nil: the row exists (callers re-fetch what they need)
  - *apperr.AppError: 404 "Resource not found" when no row matches
  - error: wrapped storage failure, classified downstream
*/
func (checker *Checker) Exists(ctx context.Context, resource Resource, value any) error {
	t, ok := targets[resource]
	if !ok {
		return fmt.Errorf("existence: unknown resource %d", int(resource))
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`, t.table, t.column)

	var found bool
	if err := checker.db.QueryRow(ctx, query, value).Scan(&found); err != nil {
		return dberr.Wrap(err, "exists_"+t.table)
	}

	if !found {
		return apperr.ResourceNotFound()
	}
	return nil
}
