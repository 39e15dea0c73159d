package scraper

import "strings"

// Timings holds the preparation, cooking and total times of a recipe as
// they appear on the page.
type Timings struct {
	PrepTime  *string
	CookTime  *string
	TotalTime *string
}

// elements that can hold a timing label, including table cells and list items
var labelTags = []string{
	"span", "strong", "b", "em", "label", "p", "div", "dt", "dd",
	"th", "td", "li",
	"h2", "h3", "h4", "h5", "h6",
}

const (
	prepLabel  = "prep time"
	cookLabel  = "cook time"
	totalLabel = "total time"
)

// ExtractTimings looks for elements whose whole text is a timing label such
// as "Prep Time" or "Cook Time:" and reads the value from the element that
// follows. Later matches overwrite earlier ones.
func ExtractTimings(doc *Document) Timings {
	var t Timings
	for _, el := range doc.Elements(labelTags...) {
		var target **string
		switch labelText(el) {
		case prepLabel:
			target = &t.PrepTime
		case cookLabel:
			target = &t.CookTime
		case totalLabel:
			target = &t.TotalTime
		default:
			continue
		}

		sibling, ok := el.NextSiblingElement()
		if !ok {
			continue
		}
		value := Dedupe(sibling.TextFragments())
		if value == "" {
			continue
		}
		*target = &value
	}
	return t
}

func labelText(el Element) string {
	text := strings.ToLower(Normalize(el.TextFragments()))
	text = strings.TrimSpace(strings.TrimSuffix(text, ":"))
	return text
}
