package section

// TableOfContentSection wraps another section and prepends a depth-limited
// table of contents to its body. Statistics and TOC entries pass through to
// the wrapped section unchanged.
type TableOfContentSection struct {
	section     Section
	maxTOCDepth int
}

// NewTableOfContentSection wraps section with a table of contents limited
// to maxTOCDepth levels.
func NewTableOfContentSection(section Section, maxTOCDepth int) *TableOfContentSection {
	return &TableOfContentSection{section: section, maxTOCDepth: maxTOCDepth}
}

// MaxTOCDepth returns the depth limit of the inlined table of contents.
func (s *TableOfContentSection) MaxTOCDepth() int { return s.maxTOCDepth }

func (s *TableOfContentSection) Statistics() map[string]any {
	return s.section.Statistics()
}

func (s *TableOfContentSection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	toc, err := s.section.RenderHTMLTOC(number, tags, depth, depth+s.maxTOCDepth)
	if err != nil {
		return "", err
	}
	body, err := s.section.RenderHTMLBody(number, tags, depth)
	if err != nil {
		return "", err
	}
	if toc == "" {
		return body, nil
	}
	return "<ul>\n" + toc + "\n</ul>\n" + body, nil
}

func (s *TableOfContentSection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return s.section.RenderHTMLTOC(number, tags, depth, maxDepth)
}
