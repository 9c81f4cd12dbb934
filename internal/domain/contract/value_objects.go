package contract

import (
	"errors"
	"time"
)

var ErrInvalidPeriod = errors.New("end date must not be before start date")

// Period is a whole-day rental range. Both bounds are dates (midnight UTC)
// and the range is inclusive on both ends.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	if end.Before(start) {
		return Period{}, ErrInvalidPeriod
	}
	return Period{start: start, end: end}, nil
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

// Days is the inclusive day count: a rental starting and ending on the same
// date lasts one day.
func (p Period) Days() int {
	return int(p.end.Sub(p.start).Hours()/24) + 1
}
