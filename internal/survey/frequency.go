package survey

import (
	"sort"
	"strings"
	"sync"

	"surveydash/internal/dataset"
	"surveydash/internal/logging"
)

// Entry is one (token, count) pair of a frequency breakdown.
type Entry struct {
	Label string
	Count int
}

// FrequencyCount is a tally of multi-value tokens ordered by descending
// count, ties broken by first appearance in the flattened token stream.
// Never mutated after creation.
type FrequencyCount []Entry

// Empty reports whether the breakdown has no entries.
func (fc FrequencyCount) Empty() bool { return len(fc) == 0 }

// Top returns the first n entries of the already-sorted breakdown, or
// all of them when fewer exist. Non-positive n yields an empty
// breakdown; n arrives straight from a CLI flag and must not panic.
func (fc FrequencyCount) Top(n int) FrequencyCount {
	if n < 0 {
		n = 0
	}
	if n > len(fc) {
		n = len(fc)
	}
	return fc[:n]
}

type memoKey struct {
	table  *dataset.Table
	column string
}

// Analyzer computes frequency breakdowns and memoizes them by
// (table identity, column). Tables are immutable after load and
// country-filtered views are pointer-stable, so entries never go stale.
type Analyzer struct {
	mu   sync.Mutex
	memo map[memoKey]FrequencyCount
}

// NewAnalyzer returns an Analyzer with an empty memo.
func NewAnalyzer() *Analyzer {
	return &Analyzer{memo: make(map[memoKey]FrequencyCount)}
}

// Frequencies tallies the semicolon-delimited tokens of the named column
// across all rows of the table.
//
// A missing column logs a warning and returns an empty breakdown; the
// caller shows a "no data" state and keeps going. Rows whose cell is
// missing are excluded before tokenizing. Splitting is literal: tokens
// keep surrounding whitespace and consecutive separators produce
// empty-string tokens, preserving the source data as-is.
func (a *Analyzer) Frequencies(table *dataset.Table, column string) FrequencyCount {
	a.mu.Lock()
	if fc, ok := a.memo[memoKey{table, column}]; ok {
		a.mu.Unlock()
		logging.AnalysisDebug("memo hit: column=%s rows=%d", column, table.Len())
		return fc
	}
	a.mu.Unlock()

	timer := logging.StartTimer(logging.CategoryAnalysis, "count "+column)
	fc := countFrequencies(table, column)
	timer.Stop()

	a.mu.Lock()
	a.memo[memoKey{table, column}] = fc
	a.mu.Unlock()
	return fc
}

// Top filters the table to the given country (AllCountries skips the
// filter), tallies the topic's column, and truncates to the first n
// entries. This is the shape the dashboard pages and the analyze
// command consume.
func (a *Analyzer) Top(table *dataset.Table, topic Topic, country string, n int) FrequencyCount {
	filtered := table
	if country != AllCountries {
		filtered = table.FilterCountry(country)
	}
	return a.Frequencies(filtered, topic.Column()).Top(n)
}

func countFrequencies(table *dataset.Table, column string) FrequencyCount {
	col, ok := table.Column(column)
	if !ok {
		logging.AnalysisWarn("column %q not present in table", column)
		return FrequencyCount{}
	}

	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, cell := range col {
		if cell.IsMissing() {
			continue
		}
		for _, token := range strings.Split(cell.String(), ";") {
			if _, seen := counts[token]; !seen {
				firstSeen[token] = order
				order++
			}
			counts[token]++
		}
	}

	fc := make(FrequencyCount, 0, len(counts))
	for token, count := range counts {
		fc = append(fc, Entry{Label: token, Count: count})
	}
	// Descending count, first-seen order among equal counts.
	sort.SliceStable(fc, func(i, j int) bool {
		if fc[i].Count != fc[j].Count {
			return fc[i].Count > fc[j].Count
		}
		return firstSeen[fc[i].Label] < firstSeen[fc[j].Label]
	})

	return fc
}
