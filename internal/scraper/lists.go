package scraper

import "strings"

// Lists holds the ingredient and step lists found on a page.
type Lists struct {
	Ingredients []string
	Steps       []string
}

type listCategory int

const (
	categoryIngredients listCategory = iota
	categorySteps
)

var (
	containerTags   = []string{"div", "section", "article"}
	stepKeywords    = []string{"step", "instruction", "prep"}
	ingredientWords = []string{"ingredient"}
)

// listMatch is one container that produced a list for a category.
type listMatch struct {
	category listCategory
	items    []string
}

// ExtractLists finds ingredient and step lists. A container is a div,
// section or article whose class tokens mention a keyword; its first direct
// ul/ol child supplies the items. When several containers match, the last one
// in document order wins for its category.
func ExtractLists(doc *Document) Lists {
	var matches []listMatch
	for _, container := range doc.Elements(containerTags...) {
		tokens := container.ClassTokens()
		if len(tokens) == 0 {
			continue
		}

		isSteps := hasKeyword(tokens, stepKeywords)
		isIngredients := hasKeyword(tokens, ingredientWords)
		if !isSteps && !isIngredients {
			continue
		}

		items, ok := listItems(container)
		if !ok {
			continue
		}
		if isIngredients {
			matches = append(matches, listMatch{category: categoryIngredients, items: items})
		}
		if isSteps {
			matches = append(matches, listMatch{category: categorySteps, items: items})
		}
	}

	return Lists{
		Ingredients: reduceLastMatch(matches, categoryIngredients),
		Steps:       reduceLastMatch(matches, categorySteps),
	}
}

// reduceLastMatch folds matches of one category into a single list, each
// match replacing the previous one. The result is never nil.
func reduceLastMatch(matches []listMatch, category listCategory) []string {
	result := []string{}
	for _, m := range matches {
		if m.category == category {
			result = m.items
		}
	}
	return result
}

// listItems returns the normalized items of the first direct ul/ol child.
// ok is false when the container has no such child.
func listItems(container Element) ([]string, bool) {
	for _, child := range container.ElementChildren() {
		tag := child.Tag()
		if tag != "ul" && tag != "ol" {
			continue
		}

		items := []string{}
		for _, li := range child.ElementChildren() {
			if li.Tag() != "li" {
				continue
			}
			if text := Normalize(li.TextFragments()); text != "" {
				items = append(items, text)
			}
		}
		return items, true
	}
	return nil, false
}

func hasKeyword(tokens, keywords []string) bool {
	for _, token := range tokens {
		for _, kw := range keywords {
			if strings.Contains(token, kw) {
				return true
			}
		}
	}
	return false
}
