package dataframe

import (
	"math"
	"time"

	"github.com/frameprof/frameprof/internal/stats"
)

// Kind is the declared logical kind of a column.
type Kind string

const (
	KindNumeric Kind = "numeric"
	KindString  Kind = "string"
	KindTime    Kind = "time"
)

// Series is an ordered sequence of nullable cells of one logical kind.
// Cells are nil (null), float64, string, time.Time or bool. A Series is
// read-only once it is part of a Frame.
type Series struct {
	name  string
	kind  Kind
	cells []any
}

// NewSeries creates a series from raw cells.
func NewSeries(name string, kind Kind, cells []any) *Series {
	return &Series{name: name, kind: kind, cells: cells}
}

// Name returns the column name.
func (s *Series) Name() string { return s.name }

// Kind returns the declared kind of the column.
func (s *Series) Kind() Kind { return s.kind }

// Len returns the number of cells, nulls included.
func (s *Series) Len() int { return len(s.cells) }

// At returns the cell at index i.
func (s *Series) At(i int) any { return s.cells[i] }

// IsNull reports whether the cell at index i is null. NaN floats count as
// null.
func (s *Series) IsNull(i int) bool {
	switch v := s.cells[i].(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	default:
		return false
	}
}

// NullCount returns the number of null cells.
func (s *Series) NullCount() int {
	n := 0
	for i := range s.cells {
		if s.IsNull(i) {
			n++
		}
	}
	return n
}

// Floats converts the series to float64 values, one per cell. Nulls and
// non-numeric cells become NaN.
func (s *Series) Floats() []float64 {
	out := make([]float64, len(s.cells))
	for i, c := range s.cells {
		switch v := c.(type) {
		case float64:
			out[i] = v
		case bool:
			if v {
				out[i] = 1
			}
		case time.Time:
			out[i] = float64(v.Unix())
		default:
			out[i] = math.NaN()
		}
	}
	return out
}

// NUnique counts the distinct values in the series. With dropna false, all
// nulls together count as one category.
func (s *Series) NUnique(dropna bool) int {
	counter := s.ValueCounts(dropna)
	return counter.NUnique()
}

// ValueCounts builds the frequency table of the series in first-encounter
// order. With dropna, null cells are excluded.
func (s *Series) ValueCounts(dropna bool) *stats.Counter {
	counter := stats.NewCounter()
	for i, c := range s.cells {
		if s.IsNull(i) {
			if dropna {
				continue
			}
			counter.Increment(nil)
			continue
		}
		counter.Increment(c)
	}
	return counter
}

// Times returns the non-null time cells with their row indexes.
func (s *Series) Times() (times []time.Time, rows []int) {
	for i, c := range s.cells {
		if t, ok := c.(time.Time); ok {
			times = append(times, t)
			rows = append(rows, i)
		}
	}
	return times, rows
}

// ObservedTypes returns the set of value type names observed in the cells.
func (s *Series) ObservedTypes() map[string]struct{} {
	types := make(map[string]struct{})
	for i, c := range s.cells {
		if s.IsNull(i) {
			types["null"] = struct{}{}
			continue
		}
		switch c.(type) {
		case float64:
			types["float"] = struct{}{}
		case string:
			types["string"] = struct{}{}
		case time.Time:
			types["time"] = struct{}{}
		case bool:
			types["bool"] = struct{}{}
		default:
			types["other"] = struct{}{}
		}
	}
	return types
}
