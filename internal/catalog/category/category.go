package category

// Category is a board-game genre, addressed by its slug.
type Category struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}
