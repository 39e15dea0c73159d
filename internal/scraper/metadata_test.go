package scraper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractMetadata(t *testing.T) {
	doc := NewDocument([]byte(`<html><head>
<meta property="title" content="Plain Title">
<meta property="og:title" content="Open Graph Title">
<meta property="og:description" content="">
<meta property="description" content="Short description">
<meta property="og:image" content="https://example.com/a.jpg">
<meta property="og:site_name" content="Example">
<meta content="no property">
</head></html>`))

	meta := ExtractMetadata(doc)
	require.NotNil(t, meta.Title)
	assert.Equal(t, "Open Graph Title", *meta.Title)
	require.NotNil(t, meta.Header)
	assert.Equal(t, "Short description", *meta.Header)
	require.NotNil(t, meta.ImageURL)
	assert.Equal(t, "https://example.com/a.jpg", *meta.ImageURL)
	assert.Nil(t, meta.ImageHeight)
	assert.Nil(t, meta.ImageWidth)
}
