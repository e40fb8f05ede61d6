package dataframe

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/frameprof/frameprof/domain"
)

// Period is a temporal bucketing granularity for groupby operations.
type Period string

const (
	PeriodYearly  Period = "yearly"
	PeriodMonthly Period = "monthly"
	PeriodWeekly  Period = "weekly"
	PeriodDaily   Period = "daily"
	PeriodHourly  Period = "hourly"
)

// ParsePeriod accepts both long names and pandas-style short codes.
func ParsePeriod(s string) (Period, error) {
	switch strings.ToLower(s) {
	case "y", "yearly", "year":
		return PeriodYearly, nil
	case "m", "monthly", "month":
		return PeriodMonthly, nil
	case "w", "weekly", "week":
		return PeriodWeekly, nil
	case "d", "daily", "day":
		return PeriodDaily, nil
	case "h", "hourly", "hour":
		return PeriodHourly, nil
	default:
		return "", domain.NewConfigError(fmt.Sprintf("unknown period: %s", s), nil)
	}
}

// Bucket returns the label of the period bucket that t falls in.
func (p Period) Bucket(t time.Time) string {
	switch p {
	case PeriodYearly:
		return t.Format("2006")
	case PeriodMonthly:
		return t.Format("2006-01")
	case PeriodWeekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	case PeriodDaily:
		return t.Format("2006-01-02")
	case PeriodHourly:
		return t.Format("2006-01-02 15h")
	default:
		return t.Format("2006-01-02")
	}
}

// Group is one temporal bucket with the indexes of its member rows.
type Group struct {
	Label string
	Rows  []int
}

// GroupByPeriod groups row indexes by the period bucket of the datetime
// column. Rows with a null or non-time cell are skipped. Groups are sorted
// by label, which matches chronological order for every period format.
func (f *Frame) GroupByPeriod(dtColumn string, p Period) ([]Group, error) {
	s, ok := f.columns[dtColumn]
	if !ok {
		return nil, domain.NewLookupError(dtColumn)
	}
	buckets := make(map[string][]int)
	times, rows := s.Times()
	for i, t := range times {
		label := p.Bucket(t)
		buckets[label] = append(buckets[label], rows[i])
	}
	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	groups := make([]Group, 0, len(labels))
	for _, label := range labels {
		groups = append(groups, Group{Label: label, Rows: buckets[label]})
	}
	return groups, nil
}
