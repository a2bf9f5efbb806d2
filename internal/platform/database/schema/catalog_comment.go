package schema

// CatalogCommentTable represents the 'comments' table
type CatalogCommentTable struct {
	Table     string
	ID        string
	ReviewID  string
	Body      string
	Votes     string
	Author    string
	CreatedAt string
}

// CatalogComment is the schema definition for comments
var CatalogComment = CatalogCommentTable{
	Table:     "comments",
	ID:        "comment_id",
	ReviewID:  "review_id",
	Body:      "body",
	Votes:     "votes",
	Author:    "author",
	CreatedAt: "created_at",
}

func (t CatalogCommentTable) Columns() []string {
	return []string{t.ID, t.ReviewID, t.Body, t.Votes, t.Author, t.CreatedAt}
}
