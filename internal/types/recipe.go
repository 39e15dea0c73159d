package types

import "strings"

// RecipePatch carries recipe fields for create and partial update. A nil
// field was not provided and leaves the stored value unchanged.
type RecipePatch struct {
	Title       *string  `json:"title"`
	Header      *string  `json:"header"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	Tags        []string `json:"tags"`
	ImageURL    *string  `json:"image_url"`
	CookTime    *string  `json:"cook_time"`
	PrepTime    *string  `json:"prep_time"`
	TotalTime   *string  `json:"total_time"`
}

// HasTitle reports whether the patch carries a non-blank title.
func (p *RecipePatch) HasTitle() bool {
	return p.Title != nil && strings.TrimSpace(*p.Title) != ""
}
