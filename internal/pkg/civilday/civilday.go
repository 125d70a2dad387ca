// Package civilday maps instants to calendar days in one fixed civil
// timezone. Day boundaries follow the zone's real rules, so a day may be
// 23 or 25 hours long around DST transitions.
package civilday

import (
	"errors"
	"fmt"
	"time"
	_ "time/tzdata" // zone rules for hosts without a system zoneinfo
)

// LabelLayout is the YYYY-MM-DD form used for day labels.
const LabelLayout = "2006-01-02"

var ErrInvalidLabel = errors.New("date label must be YYYY-MM-DD")

type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// New returns a Calendar for the named IANA zone, e.g. "America/Chicago".
func New(zone string) (*Calendar, error) {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return &Calendar{loc: loc, now: time.Now}, nil
}

// WithClock returns a copy of c that reads the current time from now.
func (c *Calendar) WithClock(now func() time.Time) *Calendar {
	return &Calendar{loc: c.loc, now: now}
}

func (c *Calendar) Location() *time.Location { return c.loc }

func (c *Calendar) Now() time.Time { return c.now().UTC() }

// Bounds returns [start, end) in UTC for the civil day containing t.
func (c *Calendar) Bounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.In(c.loc).Date()
	return c.dayBounds(y, m, d)
}

// Today is Bounds(now).
func (c *Calendar) Today() (time.Time, time.Time) {
	return c.Bounds(c.now())
}

// Label returns the civil date of t as YYYY-MM-DD.
func (c *Calendar) Label(t time.Time) string {
	return t.In(c.loc).Format(LabelLayout)
}

// ParseLabel resolves a YYYY-MM-DD label to its [start, end) UTC interval.
func (c *Calendar) ParseLabel(label string) (time.Time, time.Time, error) {
	if len(label) != len(LabelLayout) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	day, err := time.Parse(LabelLayout, label)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidLabel, label)
	}
	start, end := c.dayBounds(day.Date())
	return start, end, nil
}

func (c *Calendar) dayBounds(y int, m time.Month, d int) (time.Time, time.Time) {
	start := time.Date(y, m, d, 0, 0, 0, 0, c.loc)
	// next calendar date, not +24h
	end := time.Date(y, m, d+1, 0, 0, 0, 0, c.loc)
	return start.UTC(), end.UTC()
}
