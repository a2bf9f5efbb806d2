// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"fmt"
	"strings"

	"github.com/taibuivan/gamereview/internal/platform/apperr"
	"github.com/taibuivan/gamereview/internal/platform/database/schema"
	"github.com/taibuivan/gamereview/internal/platform/validate"
)

// # Sorting

// SortColumn is a column the listing may be ordered by.
type SortColumn int

const (
	SortByTitle SortColumn = iota + 1
	SortByCategory
	SortByVotes
	SortByDesigner
	SortByOwner
	SortByCreatedAt
)

// sortColumns maps the accepted sort_by values to their column. A
// user-supplied identifier is only ever looked up here, never interpolated.
var sortColumns = map[string]SortColumn{
	"title":      SortByTitle,
	"category":   SortByCategory,
	"votes":      SortByVotes,
	"designer":   SortByDesigner,
	"owner":      SortByOwner,
	"created_at": SortByCreatedAt,
}

// Column returns the qualified reviews column for c.
func (c SortColumn) Column() string {
	r := schema.CatalogReview
	var column string
	switch c {
	case SortByTitle:
		column = r.Title
	case SortByCategory:
		column = r.Category
	case SortByVotes:
		column = r.Votes
	case SortByDesigner:
		column = r.Designer
	case SortByOwner:
		column = r.Owner
	default:
		column = r.CreatedAt
	}
	return r.Table + "." + column
}

// Direction is ASC or DESC.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

var directions = map[string]Direction{
	"asc":  Ascending,
	"desc": Descending,
}

// Error messages returned for rejected listing parameters.
const (
	MsgInvalidSortBy = "Invalid sort_by query"
	MsgInvalidOrder  = "Invalid order query"
)

// # Listing Query

// ParseSort validates sort_by and order and applies the default ordering.
//
// An explicit sort_by defaults to ascending. Without sort_by the listing is
// ordered by created_at and defaults to descending (newest first).
func ParseSort(sortBy, order string) (SortColumn, Direction, error) {
	column := SortByCreatedAt
	direction := Descending

	if sortBy != "" {
		parsed, ok := sortColumns[sortBy]
		if !ok {
			return 0, "", apperr.BadRequest(MsgInvalidSortBy)
		}
		column = parsed
		direction = Ascending
	}

	if order != "" {
		if err := new(validate.Validator).
			OneOf("order", order, "asc", "desc").
			ErrWithMessage(MsgInvalidOrder); err != nil {
			return 0, "", err
		}
		direction = directions[order]
	}

	return column, direction, nil
}

// selectAggregate is the shared projection: every review column plus the
// integer comment count, over a left join so reviews without comments appear.
func selectAggregate() string {
	r := schema.CatalogReview
	c := schema.CatalogComment

	columns := make([]string, 0, len(r.Columns())+1)
	for _, column := range r.Columns() {
		columns = append(columns, r.Table+"."+column)
	}
	columns = append(columns, fmt.Sprintf("COUNT(%s.%s)::INT AS %s", c.Table, c.ID, r.CommentCount))

	return fmt.Sprintf("SELECT %s FROM %s LEFT JOIN %s ON %s.%s = %s.%s",
		strings.Join(columns, ", "),
		r.Table, c.Table,
		c.Table, c.ReviewID, r.Table, r.ID,
	)
}

// groupByReview closes the aggregate.
func groupByReview() string {
	return fmt.Sprintf(" GROUP BY %s.%s", schema.CatalogReview.Table, schema.CatalogReview.ID)
}

/*
BuildListQuery composes the review listing query for filter.

The category is always bound as $1 and never interpolated. An unknown category
is not an error here; it simply matches no rows.

Returns:
  - The query text and its bound parameters
  - *apperr.AppError (400) if sort_by or order is not recognized
*/
func BuildListQuery(filter Filter) (string, []any, error) {
	column, direction, err := ParseSort(filter.SortBy, filter.Order)
	if err != nil {
		return "", nil, err
	}

	var builder strings.Builder
	args := make([]any, 0, 1)

	builder.WriteString(selectAggregate())

	if filter.Category != "" {
		args = append(args, filter.Category)
		fmt.Fprintf(&builder, " WHERE %s.%s = $%d", schema.CatalogReview.Table, schema.CatalogReview.Category, len(args))
	}

	builder.WriteString(groupByReview())
	fmt.Fprintf(&builder, " ORDER BY %s %s", column.Column(), direction)

	return builder.String(), args, nil
}

// buildGetQuery selects the single aggregate row for a review id bound as $1.
func buildGetQuery() string {
	return selectAggregate() +
		fmt.Sprintf(" WHERE %s.%s = $1", schema.CatalogReview.Table, schema.CatalogReview.ID) +
		groupByReview()
}
