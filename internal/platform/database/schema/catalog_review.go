package schema

// CatalogReviewTable represents the 'reviews' table
type CatalogReviewTable struct {
	Table        string
	ID           string
	Title        string
	Body         string
	Designer     string
	ImageURL     string
	Votes        string
	Category     string
	Owner        string
	CreatedAt    string
	CommentCount string
}

// CatalogReview is the schema definition for reviews.
// CommentCount is an alias computed by aggregation, not a stored column.
var CatalogReview = CatalogReviewTable{
	Table:        "reviews",
	ID:           "review_id",
	Title:        "title",
	Body:         "review_body",
	Designer:     "designer",
	ImageURL:     "review_img_url",
	Votes:        "votes",
	Category:     "category",
	Owner:        "owner",
	CreatedAt:    "created_at",
	CommentCount: "comment_count",
}

func (t CatalogReviewTable) Columns() []string {
	return []string{t.ID, t.Title, t.Body, t.Designer, t.ImageURL, t.Votes, t.Category, t.Owner, t.CreatedAt}
}
