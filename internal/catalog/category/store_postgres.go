package category

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/gamereview/internal/platform/database/schema"
	"github.com/taibuivan/gamereview/internal/platform/dberr"
	"github.com/taibuivan/gamereview/internal/platform/postgres"
)

type PostgresRepository struct {
	db postgres.DBTX
}

func NewPostgresRepository(db postgres.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) ListCategories(ctx context.Context) ([]*Category, error) {
	c := schema.CatalogCategory
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`, strings.Join(c.Columns(), ", "), c.Table, c.Slug)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	defer rows.Close()

	categories := make([]*Category, 0)
	for rows.Next() {
		category := &Category{}
		if err := rows.Scan(&category.Slug, &category.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_category")
		}
		categories = append(categories, category)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_categories")
	}
	return categories, nil
}
