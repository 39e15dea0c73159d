package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func extractLists(page string) Lists {
	return ExtractLists(NewDocument([]byte(page)))
}

func TestExtractListsLastMatchWins(t *testing.T) {
	lists := extractLists(`
<div class="ingredients"><ul><li>first a</li><li>first b</li></ul></div>
<section class="recipe-ingredients"><ul><li>second a</li></ul></section>`)

	assert.Equal(t, []string{"second a"}, lists.Ingredients)
	assert.Empty(t, lists.Steps)
}

func TestExtractListsContainerWithoutListKeepsPrevious(t *testing.T) {
	lists := extractLists(`
<div class="ingredients"><ul><li>salt</li></ul></div>
<div class="ingredients-note"><p>Use fresh herbs.</p></div>`)

	assert.Equal(t, []string{"salt"}, lists.Ingredients)
}

func TestExtractListsOnlyDirectChildren(t *testing.T) {
	lists := extractLists(`
<article class="Recipe-Instructions">
  <div class="wrapper"><ol><li>nested</li></ol></div>
</article>`)

	assert.Empty(t, lists.Steps)
}

func TestExtractListsFirstListOnly(t *testing.T) {
	lists := extractLists(`
<div class="directions-steps">
  <ol><li>Boil water.</li><li>  </li><li>Add <em>pasta</em>.</li></ol>
  <ul><li>ignored</li></ul>
</div>`)

	assert.Equal(t, []string{"Boil water.", "Add pasta."}, lists.Steps)
}

func TestExtractListsSharedContainer(t *testing.T) {
	lists := extractLists(`<div class="ingredient-prep"><ul><li>chop onions</li></ul></div>`)

	assert.Equal(t, []string{"chop onions"}, lists.Ingredients)
	assert.Equal(t, []string{"chop onions"}, lists.Steps)
}

func TestExtractListsTagStripping(t *testing.T) {
	lists := extractLists(`<div class="ingredients"><ul><li>&lt;b&gt;Salt&lt;/b&gt; to taste</li></ul></div>`)

	assert.Equal(t, []string{"Salt to taste"}, lists.Ingredients)
}

func TestReduceLastMatch(t *testing.T) {
	matches := []listMatch{
		{category: categorySteps, items: []string{"a"}},
		{category: categoryIngredients, items: []string{"b"}},
		{category: categorySteps, items: []string{"c", "d"}},
	}

	assert.Equal(t, []string{"c", "d"}, reduceLastMatch(matches, categorySteps))
	assert.Equal(t, []string{"b"}, reduceLastMatch(matches, categoryIngredients))
	assert.Equal(t, []string{}, reduceLastMatch(nil, categorySteps))
}
