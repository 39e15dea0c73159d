package scraper

// RecipeDraft is the best-effort result of scraping one page. It has no
// identity and is never stored as is; callers convert it into a recipe.
type RecipeDraft struct {
	Title       *string  `json:"title"`
	Header      *string  `json:"header"`
	ImageURL    *string  `json:"image_url"`
	ImageHeight *string  `json:"image_height"`
	ImageWidth  *string  `json:"image_width"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	PrepTime    *string  `json:"prep_time"`
	CookTime    *string  `json:"cook_time"`
	TotalTime   *string  `json:"total_time"`
	Tags        []string `json:"tags"`
}

// Assemble merges the results of the extraction passes. List fields are
// always non-nil so they encode as [] rather than null.
func Assemble(meta Metadata, lists Lists, timings Timings) RecipeDraft {
	return RecipeDraft{
		Title:       meta.Title,
		Header:      meta.Header,
		ImageURL:    meta.ImageURL,
		ImageHeight: meta.ImageHeight,
		ImageWidth:  meta.ImageWidth,
		Ingredients: nonNil(lists.Ingredients),
		Steps:       nonNil(lists.Steps),
		PrepTime:    timings.PrepTime,
		CookTime:    timings.CookTime,
		TotalTime:   timings.TotalTime,
		Tags:        []string{},
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
