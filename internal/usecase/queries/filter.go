package queries

import (
	"fmt"
	"strings"

	"renthub/internal/pkg/errs"
)

var ErrInvalidFilter = errs.New("invalid booking filter")

// Filter is the closed set of symbolic time/status predicates a subject may
// list bookings by. Free-text filter strings are validated exactly once, at
// the boundary; the rest of the core only ever sees a typed value.
type Filter string

const (
	FilterAll      Filter = "ALL"
	FilterCurrent  Filter = "CURRENT"
	FilterPast     Filter = "PAST"
	FilterFuture   Filter = "FUTURE"
	FilterWaiting  Filter = "WAITING"
	FilterRejected Filter = "REJECTED"
)

var allFilters = []Filter{FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected}

func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range allFilters {
		if f == known {
			return f, nil
		}
	}
	return "", errs.Mark(
		fmt.Errorf("unknown filter %q: must be one of %s", s, filterNames()),
		ErrInvalidFilter,
	)
}

func (f Filter) String() string {
	return string(f)
}

func filterNames() string {
	names := make([]string, len(allFilters))
	for i, f := range allFilters {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}

// Role selects which foreign key of a booking the subject is matched against.
type Role string

const (
	RoleBooker Role = "booker"
	RoleOwner  Role = "owner"
)
