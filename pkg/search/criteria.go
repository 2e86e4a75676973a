package search

import (
	"fmt"
	"strings"
	"time"

	"github.com/railscout/railscout/pkg/journey"
	"github.com/railscout/railscout/pkg/stations"
	"github.com/railscout/railscout/pkg/util"
	"github.com/urfave/cli/v2"
)

const (
	dateFormat = "2006-01-02"

	defaultFrom = "London"
	defaultTo   = "Paris"
)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// criteriaFromContext turns parsed flags into validated engine criteria. The
// engine re-checks its own invariants; everything here is about friendly
// messages for malformed user input.
func criteriaFromContext(c *cli.Context, registry *stations.Registry) (journey.Criteria, error) {
	today := util.TruncateToDate(time.Now())

	fromName := defaultFrom
	if c.Args().Len() > 0 {
		fromName = c.Args().Get(0)
	}
	toName := defaultTo
	if c.Args().Len() > 1 {
		toName = c.Args().Get(1)
	}

	from, err := registry.Lookup(fromName)
	if err != nil {
		return journey.Criteria{}, err
	}
	to, err := registry.Lookup(toName)
	if err != nil {
		return journey.Criteria{}, err
	}

	since, err := parseDate(c.String("since"), today, today)
	if err != nil {
		return journey.Criteria{}, err
	}
	until, err := parseDate(c.String("until"), today.AddDate(0, 0, 14), today)
	if err != nil {
		return journey.Criteria{}, err
	}

	weekdays, err := parseWeekdays(c.StringSlice("weekday"))
	if err != nil {
		return journey.Criteria{}, err
	}

	outbound, err := parseWindow(c.String("out-departure-after"), c.String("out-departure-before"))
	if err != nil {
		return journey.Criteria{}, err
	}
	inbound, err := parseWindow(c.String("in-departure-after"), c.String("in-departure-before"))
	if err != nil {
		return journey.Criteria{}, err
	}

	sortBy, err := parseSortOrder(c.String("sort-by"))
	if err != nil {
		return journey.Criteria{}, err
	}

	criteria := journey.Criteria{
		From:           from,
		To:             to,
		Since:          since,
		Until:          until,
		TripLengthDays: c.Int("days"),
		Weekdays:       weekdays,
		Adults:         c.Int("adults"),
		Outbound:       outbound,
		Inbound:        inbound,
		SortBy:         sortBy,
	}

	if c.IsSet("max-price") {
		maxPrice := c.Float64("max-price")
		criteria.MaxPrice = &maxPrice
	}

	return criteria, criteria.Validate()
}

func parseDate(value string, fallback time.Time, today time.Time) (time.Time, error) {
	if value == "" {
		return fallback, nil
	}

	parsed, err := time.Parse(dateFormat, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a valid YYYY-MM-DD date", value)
	}

	if parsed.Before(today) {
		return time.Time{}, fmt.Errorf("%s is in the past", parsed.Format(dateFormat))
	}

	return parsed, nil
}

func parseWeekdays(names []string) ([]time.Weekday, error) {
	var weekdays []time.Weekday

	for _, name := range names {
		weekday, ok := weekdayNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%q is not a valid weekday name", name)
		}

		weekdays = append(weekdays, weekday)
	}

	return weekdays, nil
}

func parseWindow(after string, before string) (journey.Window, error) {
	var window journey.Window

	if after != "" {
		parsed, err := journey.ParseClockTime(after)
		if err != nil {
			return journey.Window{}, err
		}
		window.After = &parsed
	}
	if before != "" {
		parsed, err := journey.ParseClockTime(before)
		if err != nil {
			return journey.Window{}, err
		}
		window.Before = &parsed
	}

	return window, nil
}

func parseSortOrder(value string) (journey.SortOrder, error) {
	switch strings.ToLower(value) {
	case string(journey.SortByPrice):
		return journey.SortByPrice, nil
	case string(journey.SortByDate):
		return journey.SortByDate, nil
	default:
		return "", fmt.Errorf("%q is not a valid sort order, choose price or date", value)
	}
}
