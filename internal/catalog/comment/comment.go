package comment

import "time"

// Comment is a user comment on a review.
type Comment struct {
	ID        int       `json:"comment_id"`
	ReviewID  int       `json:"review_id"`
	Body      string    `json:"body"`
	Votes     int       `json:"votes"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}

// NewComment is the accepted comment payload. Username becomes the author.
type NewComment struct {
	Username string `json:"username" validate:"required"`
	Body     string `json:"body" validate:"required"`
}
