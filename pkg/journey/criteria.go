package journey

import (
	"fmt"
	"time"
)

type SortOrder string

const (
	SortByPrice SortOrder = "price"
	SortByDate  SortOrder = "date"
)

// ClockTime is a time of day with minute precision, independent of any date.
type ClockTime struct {
	Hour   int
	Minute int
}

// ParseClockTime parses a HH:MM wall-clock time.
func ParseClockTime(value string) (ClockTime, error) {
	parsed, err := time.Parse("15:04", value)
	if err != nil {
		return ClockTime{}, fmt.Errorf("%q is not a valid HH:MM time", value)
	}

	return ClockTime{Hour: parsed.Hour(), Minute: parsed.Minute()}, nil
}

func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute()}
}

func (c ClockTime) Minutes() int {
	return c.Hour*60 + c.Minute
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// Window is an optional [After, Before] bound on a departure time of day.
// A nil bound leaves that side open. Both bounds are inclusive.
type Window struct {
	After  *ClockTime
	Before *ClockTime
}

// Contains reports whether the wall-clock time of t falls inside the window.
// The date component of t is ignored.
func (w Window) Contains(t time.Time) bool {
	minutes := ClockTimeOf(t).Minutes()

	if w.After != nil && minutes < w.After.Minutes() {
		return false
	}
	if w.Before != nil && minutes > w.Before.Minutes() {
		return false
	}

	return true
}

// Criteria describes one matching run. Optional bounds are modelled as
// pointers so an unset bound is distinguishable from a zero value.
type Criteria struct {
	From int
	To   int

	Since          time.Time
	Until          time.Time
	TripLengthDays int
	Weekdays       []time.Weekday

	Adults int

	Outbound Window
	Inbound  Window
	MaxPrice *float64

	SortBy SortOrder
}

// Validate re-checks the invariants the criteria source is expected to have
// enforced already.
func (c Criteria) Validate() error {
	if c.From == c.To {
		return fmt.Errorf("%w: start and finish stations must be different", ErrInvalidCriteria)
	}
	if c.TripLengthDays < 1 {
		return fmt.Errorf("%w: trip length must be at least 1 day, got %d", ErrInvalidCriteria, c.TripLengthDays)
	}
	if c.Adults < 1 {
		return fmt.Errorf("%w: at least 1 adult is required, got %d", ErrInvalidCriteria, c.Adults)
	}
	if c.Until.Before(c.Since) {
		return fmt.Errorf("%w: until date %s is before since date %s",
			ErrInvalidCriteria, c.Until.Format(dateFormat), c.Since.Format(dateFormat))
	}

	return nil
}
