package model

import "github.com/mcoot/puzzlesolver/internal/decimal"

// Range is an inclusive interval of IDs. Min <= Max is expected but not
// enforced; an inverted range contains nothing.
type Range struct {
	Min decimal.Value
	Max decimal.Value
}

// Contains returns true if Min <= id <= Max
func (r Range) Contains(id decimal.Value) bool {
	return r.Min.LessOrEqual(id) && id.LessOrEqual(r.Max)
}

func (r Range) String() string {
	return r.Min.String() + "-" + r.Max.String()
}

// FreshnessResult is the outcome of a freshness check
type FreshnessResult struct {
	Fresh  int // IDs outside every range
	Total  int // IDs checked
	Ranges int // ranges parsed
}
