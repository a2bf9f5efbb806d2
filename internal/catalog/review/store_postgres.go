// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package review

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/gamereview/internal/platform/database/schema"
	"github.com/taibuivan/gamereview/internal/platform/dberr"
	"github.com/taibuivan/gamereview/internal/platform/postgres"
)

// PostgresRepository implements [Repository] against PostgreSQL.
type PostgresRepository struct {
	db postgres.DBTX
}

// NewPostgresRepository constructs a [PostgresRepository].
func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByID returns the aggregate row for id. A missing row surfaces as
// [pgx.ErrNoRows] wrapped with context.
func (repository *PostgresRepository) GetByID(ctx context.Context, id int) (*Review, error) {
	review, err := scanReview(repository.db.QueryRow(ctx, buildGetQuery(), id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_review_by_id")
	}
	return review, nil
}

// List runs the listing query built from filter.
func (repository *PostgresRepository) List(ctx context.Context, filter Filter) ([]*Review, error) {
	query, args, err := BuildListQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	reviews := make([]*Review, 0)
	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, review)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	return reviews, nil
}

// UpdateVotes adds delta to the review's votes and returns the updated row.
//
// delta is bound as text and cast by PostgreSQL, so a fractional or otherwise
// non-integer value fails there with SQLSTATE 22P02.
func (repository *PostgresRepository) UpdateVotes(ctx context.Context, id int, delta string) (*Review, error) {
	r := schema.CatalogReview
	c := schema.CatalogComment

	query := fmt.Sprintf(`
		UPDATE %s SET %s = %s + $1::text::integer
		WHERE %s = $2
		RETURNING %s,
			(SELECT COUNT(*) FROM %s WHERE %s.%s = %s.%s)::INT AS %s`,
		r.Table, r.Votes, r.Votes,
		r.ID,
		strings.Join(r.Columns(), ", "),
		c.Table, c.Table, c.ReviewID, r.Table, r.ID, r.CommentCount,
	)

	review, err := scanReview(repository.db.QueryRow(ctx, query, delta, id))
	if err != nil {
		return nil, dberr.Wrap(err, "update_review_votes")
	}
	return review, nil
}

// scanReview reads one row in [schema.CatalogReview.Columns] order followed by
// the comment count.
func scanReview(row pgx.Row) (*Review, error) {
	review := &Review{}
	err := row.Scan(
		&review.ID, &review.Title, &review.Body, &review.Designer, &review.ImageURL,
		&review.Votes, &review.Category, &review.Owner, &review.CreatedAt,
		&review.CommentCount,
	)
	if err != nil {
		return nil, err
	}
	return review, nil
}
