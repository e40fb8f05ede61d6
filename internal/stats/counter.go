package stats

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Entry is one value/count pair in a frequency table.
type Entry struct {
	Value any
	Count int
}

// Counter is an insertion-ordered frequency table. The null bucket (nil or
// NaN values) is a single category. Iteration order for equal counts is the
// order in which values were first added.
type Counter struct {
	entries []Entry
	index   map[string]int
}

// NewCounter returns an empty frequency table.
func NewCounter() *Counter {
	return &Counter{index: make(map[string]int)}
}

// Add increments the count of value by n.
func (c *Counter) Add(value any, n int) {
	key := valueKey(value)
	if i, ok := c.index[key]; ok {
		c.entries[i].Count += n
		return
	}
	c.index[key] = len(c.entries)
	c.entries = append(c.entries, Entry{Value: normalizeNull(value), Count: n})
}

// Increment adds one occurrence of value.
func (c *Counter) Increment(value any) {
	c.Add(value, 1)
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, e := range c.entries {
		total += e.Count
	}
	return total
}

// NUnique returns the number of distinct values with a positive count.
func (c *Counter) NUnique() int {
	n := 0
	for _, e := range c.entries {
		if e.Count > 0 {
			n++
		}
	}
	return n
}

// MostCommon returns the k entries with the highest counts, sorted by
// descending count. Ties are broken by first-encounter order. k < 0 returns
// all entries.
func (c *Counter) MostCommon(k int) []Entry {
	sorted := make([]Entry, len(c.entries))
	copy(sorted, c.entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Count > sorted[j].Count
	})
	if k >= 0 && k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted
}

// LeastCommon returns the k entries with the lowest counts: the most-common
// table reversed.
func (c *Counter) LeastCommon(k int) []Entry {
	sorted := c.MostCommon(-1)
	for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
		sorted[i], sorted[j] = sorted[j], sorted[i]
	}
	if k >= 0 && k < len(sorted) {
		sorted = sorted[:k]
	}
	return sorted
}

// normalizeNull maps nil to NaN so the null bucket always displays the same
// way.
func normalizeNull(value any) any {
	if value == nil {
		return math.NaN()
	}
	return value
}

// valueKey builds a canonical map key per value. NaN floats and nil share
// one bucket since NaN is not equal to itself.
func valueKey(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case float64:
		if math.IsNaN(v) {
			return "null"
		}
		return fmt.Sprintf("f:%g", v)
	case string:
		return "s:" + v
	case time.Time:
		return "t:" + v.Format(time.RFC3339Nano)
	case bool:
		return fmt.Sprintf("b:%t", v)
	default:
		return fmt.Sprintf("v:%v", v)
	}
}

// FormatValue renders a counter value the way it appears in report tables.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "NaN"
	case float64:
		if math.IsNaN(v) {
			return "NaN"
		}
		return fmt.Sprintf("%g", v)
	case time.Time:
		return v.Format("2006-01-02 15:04:05")
	default:
		return fmt.Sprintf("%v", v)
	}
}
