package review

import "context"

// Repository is the storage contract for reviews.
type Repository interface {
	GetByID(ctx context.Context, id int) (*Review, error)
	List(ctx context.Context, filter Filter) ([]*Review, error)
	UpdateVotes(ctx context.Context, id int, delta string) (*Review, error)
}
