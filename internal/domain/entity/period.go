package entity

import (
	"strconv"
	"strings"
)

// PeriodFilter narrows reports by calendar fields. Nil fields do not filter.
// A month without a year matches that month in every year.
type PeriodFilter struct {
	Year  *int `json:"year,omitempty"`
	Month *int `json:"month,omitempty"`
}

// ParsePeriodFilter builds a filter from raw query values.
// Values that are not integers are ignored rather than rejected.
func ParsePeriodFilter(year, month string) PeriodFilter {
	var filter PeriodFilter
	if v, err := strconv.Atoi(strings.TrimSpace(year)); err == nil {
		filter.Year = &v
	}
	if v, err := strconv.Atoi(strings.TrimSpace(month)); err == nil {
		filter.Month = &v
	}

	return filter
}

// IsZero reports whether the filter matches everything.
func (f PeriodFilter) IsZero() bool {
	return f.Year == nil && f.Month == nil
}
