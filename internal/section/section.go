// Package section holds the report building blocks: value objects that
// carry precomputed statistics for part of a frame and render themselves as
// HTML body and table-of-contents fragments.
package section

import (
	"fmt"
	"html"
	"strings"
)

// Section is a value object holding (or able to recompute) descriptive
// statistics for part of a frame. Rendering is side-effect free; numbering,
// tags and depth are supplied by the enclosing composite.
type Section interface {
	// Statistics returns the statistics bundle. Sections with no numeric
	// content return an empty bundle.
	Statistics() map[string]any

	// RenderHTMLBody produces a self-contained HTML fragment with a heading
	// at the given depth.
	RenderHTMLBody(number string, tags []string, depth int) (string, error)

	// RenderHTMLTOC returns one table-of-contents entry linking to the body
	// anchor, or the empty string once depth >= maxDepth.
	RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error)
}

// GoToTop is the link rendered under every section heading.
const GoToTop = `<a href="#">Go to top</a>`

// TagsToID converts the ancestor tags to a DOM id: joined with hyphens,
// lowercased, spaces replaced.
func TagsToID(tags []string) string {
	return strings.ToLower(strings.ReplaceAll(strings.Join(tags, "-"), " ", "-"))
}

// TagsToTitle converts the ancestor tags to a human title: reverse-joined
// with " | ".
func TagsToTitle(tags []string) string {
	reversed := make([]string, len(tags))
	for i, tag := range tags {
		reversed[len(tags)-1-i] = tag
	}
	return strings.Join(reversed, " | ")
}

// ValidHTag clamps index to the valid HTML heading level range [1, 6].
func ValidHTag(index int) int {
	if index < 1 {
		return 1
	}
	if index > 6 {
		return 6
	}
	return index
}

// RenderTOCEntry renders the list-item TOC entry shared by all leaf
// sections. It returns the empty string once depth >= maxDepth.
func RenderTOCEntry(number string, tags []string, depth, maxDepth int) string {
	if depth >= maxDepth {
		return ""
	}
	tag := ""
	if len(tags) > 0 {
		tag = tags[len(tags)-1]
	}
	return fmt.Sprintf(`<li><a href="#%s">%s %s</a></li>`,
		TagsToID(tags), html.EscapeString(number), html.EscapeString(tag))
}

// renderHeading builds the section heading with its anchor id and the
// caller-supplied section number.
func renderHeading(number string, tags []string, depth int) string {
	h := ValidHTag(depth + 1)
	return fmt.Sprintf(`<h%d id="%s">%s %s </h%d>`,
		h, TagsToID(tags), html.EscapeString(number), html.EscapeString(TagsToTitle(tags)), h)
}
