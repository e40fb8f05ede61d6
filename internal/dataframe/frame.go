package dataframe

import (
	"fmt"
	"strings"

	"github.com/frameprof/frameprof/domain"
)

// Frame is an immutable 2D structure of named columns. Columns keep their
// insertion order and may have heterogeneous kinds.
type Frame struct {
	order   []string
	columns map[string]*Series
	numRows int
}

// New creates a frame from the given series, preserving their order. All
// series must have the same length.
func New(series ...*Series) (*Frame, error) {
	f := &Frame{columns: make(map[string]*Series, len(series))}
	for _, s := range series {
		if _, ok := f.columns[s.Name()]; ok {
			return nil, domain.NewInvariantError(fmt.Sprintf("duplicate column name: %s", s.Name()))
		}
		if len(f.order) > 0 && s.Len() != f.numRows {
			return nil, domain.NewInvariantError(fmt.Sprintf(
				"column %s has %d rows, expected %d", s.Name(), s.Len(), f.numRows))
		}
		f.numRows = s.Len()
		f.order = append(f.order, s.Name())
		f.columns[s.Name()] = s
	}
	return f, nil
}

// Columns returns the ordered column names.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int { return f.numRows }

// NumColumns returns the number of columns.
func (f *Frame) NumColumns() int { return len(f.order) }

// HasColumn reports whether the frame has a column with the given name.
func (f *Frame) HasColumn(name string) bool {
	_, ok := f.columns[name]
	return ok
}

// Column returns the named column.
func (f *Frame) Column(name string) (*Series, bool) {
	s, ok := f.columns[name]
	return s, ok
}

// Select projects the frame to exactly the given columns, in the given
// order. The projection shares column storage with the source frame and
// never mutates it.
func (f *Frame) Select(names ...string) (*Frame, error) {
	series := make([]*Series, 0, len(names))
	for _, name := range names {
		s, ok := f.columns[name]
		if !ok {
			return nil, domain.NewLookupError(name)
		}
		series = append(series, s)
	}
	out, err := New(series...)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		out.numRows = f.numRows
	}
	return out, nil
}

// RowKey builds a string key identifying the row values across the given
// columns. Used for duplicate-row detection.
func (f *Frame) RowKey(row int, names []string) string {
	parts := make([]string, 0, len(names))
	for _, name := range names {
		s := f.columns[name]
		if s.IsNull(row) {
			parts = append(parts, "\x00null")
			continue
		}
		parts = append(parts, fmt.Sprintf("%v", s.At(row)))
	}
	return strings.Join(parts, "\x1f")
}
