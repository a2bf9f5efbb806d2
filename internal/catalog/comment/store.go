package comment

import "context"

// Repository is the storage contract for comments.
type Repository interface {
	ListByReview(ctx context.Context, reviewID int) ([]*Comment, error)
	Insert(ctx context.Context, reviewID int, input NewComment) (*Comment, error)
	Delete(ctx context.Context, id int) error
}
