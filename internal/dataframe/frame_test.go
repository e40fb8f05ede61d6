package dataframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frameprof/frameprof/domain"
)

func numericSeries(name string, values ...any) *Series {
	return NewSeries(name, KindNumeric, values)
}

func TestNewFrame(t *testing.T) {
	frame, err := New(
		numericSeries("a", 1.0, 2.0),
		numericSeries("b", 3.0, 4.0),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, frame.Columns())
	assert.Equal(t, 2, frame.NumRows())
	assert.Equal(t, 2, frame.NumColumns())
	assert.True(t, frame.HasColumn("a"))
	assert.False(t, frame.HasColumn("missing"))
}

func TestNewFrameDuplicateColumn(t *testing.T) {
	_, err := New(
		numericSeries("a", 1.0),
		numericSeries("a", 2.0),
	)

	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvariant))
}

func TestNewFrameRowMismatch(t *testing.T) {
	_, err := New(
		numericSeries("a", 1.0, 2.0),
		numericSeries("b", 3.0),
	)

	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvariant))
}

func TestSelect(t *testing.T) {
	frame, err := New(
		numericSeries("a", 1.0, 2.0),
		numericSeries("b", 3.0, 4.0),
		numericSeries("c", 5.0, 6.0),
	)
	require.NoError(t, err)

	projected, err := frame.Select("c", "a")
	require.NoError(t, err)

	assert.Equal(t, []string{"c", "a"}, projected.Columns())
	assert.Equal(t, 2, projected.NumRows())
	// the source frame is untouched
	assert.Equal(t, []string{"a", "b", "c"}, frame.Columns())
}

func TestSelectMissingColumn(t *testing.T) {
	frame, err := New(numericSeries("a", 1.0))
	require.NoError(t, err)

	_, err = frame.Select("a", "missing")
	require.Error(t, err)
	assert.True(t, domain.HasCode(err, domain.ErrCodeLookup))
}

func TestRowKey(t *testing.T) {
	frame, err := New(
		numericSeries("a", 1.0, 1.0, nil),
		NewSeries("b", KindString, []any{"x", "x", nil}),
	)
	require.NoError(t, err)

	assert.Equal(t, frame.RowKey(0, []string{"a", "b"}), frame.RowKey(1, []string{"a", "b"}))
	assert.NotEqual(t, frame.RowKey(0, []string{"a", "b"}), frame.RowKey(2, []string{"a", "b"}))
	// null rows compare equal to each other
	assert.Equal(t, frame.RowKey(2, []string{"a", "b"}), frame.RowKey(2, []string{"a", "b"}))
}
