package scraper

import "strings"

// Metadata holds the fields read from page-level <meta> tags.
type Metadata struct {
	Title       *string
	Header      *string
	ImageURL    *string
	ImageHeight *string
	ImageWidth  *string
}

// ExtractMetadata scans every <meta> element for a known property. An "og:"
// prefix is ignored, so both "og:title" and "title" set the title. Elements
// with an empty content attribute are skipped and the last match wins.
func ExtractMetadata(doc *Document) Metadata {
	var m Metadata
	for _, el := range doc.Elements("meta") {
		property, _ := el.Attr("property")
		content, _ := el.Attr("content")
		content = strings.TrimSpace(content)
		if content == "" {
			continue
		}

		key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(property)), "og:")
		switch key {
		case "title":
			m.Title = &content
		case "description":
			m.Header = &content
		case "image":
			m.ImageURL = &content
		case "image:height":
			m.ImageHeight = &content
		case "image:width":
			m.ImageWidth = &content
		}
	}
	return m
}
