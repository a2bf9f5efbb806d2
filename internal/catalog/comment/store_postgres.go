// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

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

// ListByReview returns the review's comments, newest first. An empty result
// does not tell whether the review exists.
func (repository *PostgresRepository) ListByReview(ctx context.Context, reviewID int) ([]*Comment, error) {
	c := schema.CatalogComment
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		strings.Join(c.Columns(), ", "), c.Table, c.ReviewID, c.CreatedAt)

	rows, err := repository.db.Query(ctx, query, reviewID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_comments_by_review")
	}
	defer rows.Close()

	comments := make([]*Comment, 0)
	for rows.Next() {
		comment, err := scanComment(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_comment")
		}
		comments = append(comments, comment)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_comments_by_review")
	}
	return comments, nil
}

// Insert stores a comment for reviewID. The id, timestamp and zero vote count
// are assigned by the database. An unknown review surfaces as a foreign key
// violation.
func (repository *PostgresRepository) Insert(ctx context.Context, reviewID int, input NewComment) (*Comment, error) {
	c := schema.CatalogComment
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3) RETURNING %s`,
		c.Table, c.ReviewID, c.Author, c.Body, strings.Join(c.Columns(), ", "))

	comment, err := scanComment(repository.db.QueryRow(ctx, query, reviewID, input.Username, input.Body))
	if err != nil {
		return nil, dberr.Wrap(err, "insert_comment")
	}
	return comment, nil
}

// Delete removes the comment. Callers confirm existence first.
func (repository *PostgresRepository) Delete(ctx context.Context, id int) error {
	c := schema.CatalogComment
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, c.Table, c.ID)

	if _, err := repository.db.Exec(ctx, query, id); err != nil {
		return dberr.Wrap(err, "delete_comment")
	}
	return nil
}

func scanComment(row pgx.Row) (*Comment, error) {
	comment := &Comment{}
	err := row.Scan(
		&comment.ID, &comment.ReviewID, &comment.Body,
		&comment.Votes, &comment.Author, &comment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return comment, nil
}
