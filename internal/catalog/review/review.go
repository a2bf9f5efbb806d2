package review

import (
	"bytes"
	"encoding/json"
	"time"
)

// Review is a user-submitted review of a board game. CommentCount is computed
// by aggregation on every read and never stored.
type Review struct {
	ID           int       `json:"review_id"`
	Title        string    `json:"title"`
	Body         string    `json:"review_body"`
	Designer     *string   `json:"designer"`
	ImageURL     *string   `json:"review_img_url"`
	Votes        int       `json:"votes"`
	Category     string    `json:"category"`
	Owner        string    `json:"owner"`
	CreatedAt    time.Time `json:"created_at"`
	CommentCount int       `json:"comment_count"`
}

// Filter carries the optional listing parameters. Empty fields are absent.
type Filter struct {
	Category string
	SortBy   string
	Order    string
}

// VotesPatch is the request body for a vote adjustment.
//
// IncVotes is kept as raw JSON so absence is distinct from 0 and any
// non-integer value (fraction, string, boolean) reaches storage unchanged.
type VotesPatch struct {
	IncVotes json.RawMessage `json:"inc_votes"`
}

// Provided reports whether inc_votes was present and not null.
func (p VotesPatch) Provided() bool {
	return len(p.IncVotes) > 0 && !bytes.Equal(p.IncVotes, []byte("null"))
}

// Delta returns the increment as text for storage to cast. A JSON string is
// unquoted; every other scalar is passed as written.
func (p VotesPatch) Delta() string {
	var text string
	if err := json.Unmarshal(p.IncVotes, &text); err == nil {
		return text
	}
	return string(bytes.TrimSpace(p.IncVotes))
}
