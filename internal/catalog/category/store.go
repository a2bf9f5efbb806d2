package category

import "context"

type Repository interface {
	ListCategories(ctx context.Context) ([]*Category, error)
}
