package booking

import (
	"errors"
	"time"
)

var (
	ErrCoincidentPeriod = errors.New("booking period start and end coincide")
	ErrInvertedPeriod   = errors.New("booking period starts after it ends")
)

// Period is the half-open rental window [start, end).
type Period struct {
	start time.Time
	end   time.Time
}

// ReconstructPeriod rebuilds a Period from persistence data (no validation).
func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func NewPeriod(start, end time.Time) (Period, error) {
	if start.Equal(end) {
		return Period{}, ErrCoincidentPeriod
	}
	if start.After(end) {
		return Period{}, ErrInvertedPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

// Contains reports whether now falls inside the window. The end bound is
// exclusive, matching the half-open convention the list filters use.
func (p Period) Contains(now time.Time) bool {
	return !p.start.After(now) && p.end.After(now)
}

// IsPast reports whether the window has already closed. The end bound is
// exclusive, so a period ending exactly at now is past, never current.
func (p Period) IsPast(now time.Time) bool {
	return !p.end.After(now)
}

func (p Period) IsFuture(now time.Time) bool {
	return p.start.After(now)
}
