package models

import (
	"sort"
	"time"
)

// AggregationResult maps a category key (country or industry) to the summed
// valuation of every company in that category. Keys are unique.
type AggregationResult map[string]float64

// SortedKeys returns the category keys in ascending order, matching the
// order a group-by over the category column produces.
func (r AggregationResult) SortedKeys() []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// TimePoint is one bucket of the cumulative valuation series.
type TimePoint struct {
	Date       time.Time `json:"date"`
	Cumulative float64   `json:"cumulative"`
}

// TimeSeries is ordered by Date ascending; Cumulative never decreases.
type TimeSeries []TimePoint

// Last returns the final cumulative value, or 0 for an empty series.
func (ts TimeSeries) Last() float64 {
	if len(ts) == 0 {
		return 0
	}
	return ts[len(ts)-1].Cumulative
}

// Summary describes the loaded dataset at a glance.
//
// swagger:model Summary
type Summary struct {
	Companies      int        `json:"companies" example:"1074"`
	TotalValuation float64    `json:"total_valuation" example:"3814.32"`
	Countries      int        `json:"countries" example:"46"`
	Industries     int        `json:"industries" example:"16"`
	FirstJoined    *time.Time `json:"first_joined,omitempty"`
	LastJoined     *time.Time `json:"last_joined,omitempty"`
}

// Table is the tabular view of the dataset shown under the overview charts.
type Table struct {
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}
