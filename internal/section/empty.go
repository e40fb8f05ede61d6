package section

// EmptySection is the sentinel section used when the required input is
// structurally absent, e.g. a missing column. It carries no statistics and
// renders nothing. Substituting it for a real section is a policy, not an
// error path: the report stays generable for partially-incompatible frames.
type EmptySection struct{}

// NewEmptySection creates a new empty section.
func NewEmptySection() *EmptySection {
	return &EmptySection{}
}

func (s *EmptySection) Statistics() map[string]any {
	return map[string]any{}
}

func (s *EmptySection) RenderHTMLBody(number string, tags []string, depth int) (string, error) {
	return "", nil
}

func (s *EmptySection) RenderHTMLTOC(number string, tags []string, depth, maxDepth int) (string, error) {
	return "", nil
}
