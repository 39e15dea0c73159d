package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTimingsDedupe(t *testing.T) {
	doc := NewDocument([]byte(`
<dl>
  <dt>Total Time</dt>
  <dd><span><span>2 hours</span></span><span>2 hours</span><span> 2 hours </span></dd>
</dl>`))

	timings := ExtractTimings(doc)
	require.NotNil(t, timings.TotalTime)
	assert.Equal(t, "2 hours", *timings.TotalTime)
}

func TestExtractTimingsLabels(t *testing.T) {
	doc := NewDocument([]byte(`
<div>
  <h4>PREP TIME:</h4><p>15 min</p>
  <label>cook time</label>
  <!-- value -->
  <span>45 min</span>
  <b>Total time</b>
</div>`))

	timings := ExtractTimings(doc)
	require.NotNil(t, timings.PrepTime)
	assert.Equal(t, "15 min", *timings.PrepTime)
	require.NotNil(t, timings.CookTime)
	assert.Equal(t, "45 min", *timings.CookTime)
	assert.Nil(t, timings.TotalTime)
}

func TestExtractTimingsTextSibling(t *testing.T) {
	doc := NewDocument([]byte(`<p><strong>Prep Time</strong> 10 minutes</p>`))

	assert.Nil(t, ExtractTimings(doc).PrepTime)
}

func TestExtractTimingsPartialLabelIgnored(t *testing.T) {
	doc := NewDocument([]byte(`<span>Prep time for this dish</span><span>1 day</span>`))

	assert.Nil(t, ExtractTimings(doc).PrepTime)
}

func TestExtractTimingsLastMatchWins(t *testing.T) {
	doc := NewDocument([]byte(`
<span>Cook Time</span><span>1 hour</span>
<span>Cook Time</span><span>90 minutes</span>
<span>Cook Time</span><span>   </span>`))

	timings := ExtractTimings(doc)
	require.NotNil(t, timings.CookTime)
	assert.Equal(t, "90 minutes", *timings.CookTime)
}

func TestExtractTimingsTableLayout(t *testing.T) {
	doc := NewDocument([]byte(`
<table>
  <tr><th>Prep Time</th><td>15 min</td></tr>
  <tr><td>Cook Time:</td> <td>1 hr</td></tr>
</table>
<ul class="times">
  <li>Total Time</li><li><span>1 hr 15 min</span></li>
</ul>`))

	timings := ExtractTimings(doc)
	require.NotNil(t, timings.PrepTime)
	assert.Equal(t, "15 min", *timings.PrepTime)
	require.NotNil(t, timings.CookTime)
	assert.Equal(t, "1 hr", *timings.CookTime)
	require.NotNil(t, timings.TotalTime)
	assert.Equal(t, "1 hr 15 min", *timings.TotalTime)
}
