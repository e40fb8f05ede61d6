// Package ingest loads CSV files into frames, inferring a logical kind for
// each column.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog/log"
	"github.com/schollz/progressbar/v3"

	"github.com/frameprof/frameprof/domain"
	"github.com/frameprof/frameprof/internal/dataframe"
)

// nullTokens are the cell spellings treated as null.
var nullTokens = map[string]struct{}{
	"":     {},
	"na":   {},
	"n/a":  {},
	"nan":  {},
	"null": {},
	"none": {},
}

// timeLayouts are tried in order when inferring a time column.
var timeLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ExpandPatterns resolves the input paths or glob patterns into a sorted,
// deduplicated list of files. Patterns support doublestar globs, e.g.
// "data/**/*.csv". A pattern matching nothing is an ingest error.
func ExpandPatterns(patterns []string) ([]string, error) {
	seen := map[string]struct{}{}
	var paths []string
	for _, pattern := range patterns {
		if !strings.ContainsAny(pattern, "*?[{") {
			if _, err := os.Stat(pattern); err != nil {
				return nil, domain.NewIngestError(fmt.Sprintf("input file not found: %s", pattern), err)
			}
			if _, ok := seen[pattern]; !ok {
				seen[pattern] = struct{}{}
				paths = append(paths, pattern)
			}
			continue
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, domain.NewIngestError(fmt.Sprintf("invalid input pattern: %s", pattern), err)
		}
		if len(matches) == 0 {
			return nil, domain.NewIngestError(fmt.Sprintf("no file matches pattern: %s", pattern), nil)
		}
		for _, m := range matches {
			if _, ok := seen[m]; !ok {
				seen[m] = struct{}{}
				paths = append(paths, m)
			}
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadCSV loads the given patterns into a single frame. Files must share
// the same header; their rows are concatenated in path order. A progress
// bar is shown when more than one file is loaded.
func LoadCSV(patterns []string) (*dataframe.Frame, error) {
	paths, err := ExpandPatterns(patterns)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, domain.NewIngestError("no input file", nil)
	}

	var bar *progressbar.ProgressBar
	if len(paths) > 1 {
		bar = progressbar.Default(int64(len(paths)), "loading files")
	}

	var header []string
	var raw [][]string
	for _, path := range paths {
		fileHeader, rows, err := readCSVFile(path)
		if err != nil {
			return nil, err
		}
		if header == nil {
			header = fileHeader
		} else if !sameHeader(header, fileHeader) {
			return nil, domain.NewIngestError(
				fmt.Sprintf("file %s has a different header than the first input file", path), nil)
		}
		raw = append(raw, rows...)
		if bar != nil {
			_ = bar.Add(1)
		}
	}
	log.Info().Int("files", len(paths)).Int("rows", len(raw)).Msg("loaded input files")
	return buildFrame(header, raw)
}

func readCSVFile(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, domain.NewIngestError(fmt.Sprintf("failed to open %s", path), err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil, domain.NewIngestError(fmt.Sprintf("file %s is empty", path), nil)
	}
	if err != nil {
		return nil, nil, domain.NewIngestError(fmt.Sprintf("failed to read %s", path), err)
	}
	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, domain.NewIngestError(fmt.Sprintf("failed to read %s", path), err)
		}
		if len(record) != len(header) {
			return nil, nil, domain.NewIngestError(
				fmt.Sprintf("file %s has a row with %d fields, expected %d", path, len(record), len(header)), nil)
		}
		rows = append(rows, record)
	}
	return header, rows, nil
}

func sameHeader(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// buildFrame infers a kind per column and converts the raw cells.
func buildFrame(header []string, raw [][]string) (*dataframe.Frame, error) {
	series := make([]*dataframe.Series, len(header))
	for col, name := range header {
		column := make([]string, len(raw))
		for row := range raw {
			column[row] = raw[row][col]
		}
		series[col] = inferSeries(name, column)
	}
	frame, err := dataframe.New(series...)
	if err != nil {
		return nil, domain.NewIngestError("failed to build frame", err)
	}
	return frame, nil
}

// inferSeries picks the most specific kind every non-null cell satisfies:
// numeric, then time, then string.
func inferSeries(name string, column []string) *dataframe.Series {
	numeric, numericOK := true, false
	temporal, temporalOK := true, false
	for _, cell := range column {
		if isNullToken(cell) {
			continue
		}
		if numeric {
			if _, err := strconv.ParseFloat(strings.TrimSpace(cell), 64); err != nil {
				numeric = false
			} else {
				numericOK = true
			}
		}
		if temporal {
			if _, ok := parseTime(cell); !ok {
				temporal = false
			} else {
				temporalOK = true
			}
		}
	}
	cells := make([]any, len(column))
	switch {
	case numeric && numericOK:
		for i, cell := range column {
			if isNullToken(cell) {
				cells[i] = nil
				continue
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil || math.IsNaN(v) {
				cells[i] = nil
				continue
			}
			cells[i] = v
		}
		return dataframe.NewSeries(name, dataframe.KindNumeric, cells)
	case temporal && temporalOK:
		for i, cell := range column {
			if isNullToken(cell) {
				cells[i] = nil
				continue
			}
			if t, ok := parseTime(cell); ok {
				cells[i] = t
			}
		}
		return dataframe.NewSeries(name, dataframe.KindTime, cells)
	default:
		for i, cell := range column {
			if isNullToken(cell) {
				cells[i] = nil
				continue
			}
			cells[i] = cell
		}
		return dataframe.NewSeries(name, dataframe.KindString, cells)
	}
}

func isNullToken(cell string) bool {
	_, ok := nullTokens[strings.ToLower(strings.TrimSpace(cell))]
	return ok
}

func parseTime(cell string) (time.Time, bool) {
	cell = strings.TrimSpace(cell)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
