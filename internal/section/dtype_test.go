package section

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/domain"
)

func TestDataTypeSectionStatistics(t *testing.T) {
	s, err := NewDataTypeSection(
		map[string]string{"col": "numeric"},
		map[string]map[string]struct{}{"col": {"float": {}, "null": {}}},
	)
	require.NoError(t, err)

	stats := s.Statistics()
	assert.Equal(t, []string{"float", "null"}, stats["col"])
}

func TestDataTypeSectionKeyMismatch(t *testing.T) {
	tests := []struct {
		name   string
		dtypes map[string]string
		types  map[string]map[string]struct{}
	}{
		{
			name:   "dtype without types",
			dtypes: map[string]string{"a": "numeric"},
			types:  map[string]map[string]struct{}{},
		},
		{
			name:   "types without dtype",
			dtypes: map[string]string{},
			types:  map[string]map[string]struct{}{"a": {"float": {}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewDataTypeSection(tt.dtypes, tt.types)
			require.Error(t, err)
			assert.True(t, domain.HasCode(err, domain.ErrCodeInvariant))
		})
	}
}

func TestDataTypeSectionRenderBody(t *testing.T) {
	s, err := NewDataTypeSection(
		map[string]string{"b": "string", "a": "numeric"},
		map[string]map[string]struct{}{
			"b": {"string": {}},
			"a": {"float": {}},
		},
	)
	require.NoError(t, err)

	body, err := s.RenderHTMLBody("1.", []string{"data types"}, 0)
	require.NoError(t, err)

	assert.Contains(t, body, `id="data-types"`)
	assert.Contains(t, body, "numeric")
	assert.Contains(t, body, "string")
}
