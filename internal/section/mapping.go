package section

import (
	"fmt"
	"strings"
)

// NamedSection pairs a section with the name it is registered under in its
// parent composite.
type NamedSection struct {
	Name    string
	Section Section
}

// Dict is a composite section owning an ordered, named collection of child
// sections. Children render in insertion order with hierarchical numbering:
// child i of section "2." renders as "2.<i+1>.".
type Dict struct {
	children    []NamedSection
	maxTOCDepth int
}

// NewDict creates a composite section. maxTOCDepth controls how deep the
// table of contents recurses below this section.
func NewDict(children []NamedSection, maxTOCDepth int) *Dict {
	return &Dict{children: children, maxTOCDepth: maxTOCDepth}
}

// MaxTOCDepth returns the depth limit for the table of contents.
func (d *Dict) MaxTOCDepth() int { return d.maxTOCDepth }

// Children returns the child sections in insertion order.
func (d *Dict) Children() []NamedSection {
	out := make([]NamedSection, len(d.children))
	copy(out, d.children)
	return out
}

// Statistics returns a name to bundle mapping mirroring the children.
func (d *Dict) Statistics() map[string]any {
	out := make(map[string]any, len(d.children))
	for _, child := range d.children {
		out[child.Name] = child.Section.Statistics()
	}
	return out
}

func (d *Dict) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	var parts []string
	if d.maxTOCDepth > 0 {
		toc, err := d.renderChildTOC(number, tags, depth, depth+d.maxTOCDepth)
		if err != nil {
			return "", err
		}
		if toc != "" {
			parts = append(parts, "<ul>", toc, "</ul>")
		}
	}
	for i, child := range d.children {
		body, err := child.Section.RenderHTMLBody(
			childNumber(number, i), append(append([]string{}, tags...), child.Name), depth+1)
		if err != nil {
			return "", err
		}
		parts = append(parts, body)
	}
	return strings.Join(parts, "\n"), nil
}

func (d *Dict) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	if depth >= maxDepth {
		return "", nil
	}
	var parts []string
	if len(tags) > 0 {
		parts = append(parts, RenderTOCEntry(number, tags, depth, maxDepth))
	}
	toc, err := d.renderChildTOC(number, tags, depth, maxDepth)
	if err != nil {
		return "", err
	}
	if toc != "" {
		parts = append(parts, "<ul>", toc, "</ul>")
	}
	return strings.Join(parts, "\n"), nil
}

// renderChildTOC concatenates the children's TOC fragments, one nesting
// level down.
func (d *Dict) renderChildTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	var items []string
	for i, child := range d.children {
		item, err := child.Section.RenderHTMLTOC(
			childNumber(number, i), append(append([]string{}, tags...), child.Name), depth+1, maxDepth)
		if err != nil {
			return "", err
		}
		if item != "" {
			items = append(items, item)
		}
	}
	return strings.Join(items, "\n"), nil
}

func childNumber(number string, index int) string {
	return fmt.Sprintf("%s%d.", number, index+1)
}
