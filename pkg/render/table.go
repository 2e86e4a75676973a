// Package render turns engine output into fixed-width tables for the
// terminal.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/railscout/railscout/pkg/journey"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

const datetimeFormat = "2006-01-02 15:04"

// JourneyTable writes the ordered pairs as a three column table. The pair
// order is taken as-is; ranking happened in the engine.
func JourneyTable(w io.Writer, pairs []journey.Pair) error {
	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(table, "Outbound (duration)\tInbound (duration)\tPrice")
	for _, pair := range pairs {
		fmt.Fprintf(table, "%s (%s)\t%s (%s)\t%.2f\n",
			pair.Outbound.Departure.Format(datetimeFormat), FormatDuration(pair.Outbound.Duration),
			pair.Inbound.Departure.Format(datetimeFormat), FormatDuration(pair.Inbound.Duration),
			pair.Price,
		)
	}

	return table.Flush()
}

// StationList writes a name/ID listing sorted by station name.
func StationList(w io.Writer, listing map[string]int) error {
	names := maps.Keys(listing)
	slices.Sort(names)

	table := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(table, "Station\tID")
	for _, name := range names {
		fmt.Fprintf(table, "%s\t%d\n", name, listing[name])
	}

	return table.Flush()
}

// FormatDuration renders an elapsed time as hours and minutes, e.g. "2h37m".
func FormatDuration(d time.Duration) string {
	minutes := int(d.Minutes())

	return fmt.Sprintf("%dh%dm", minutes/60, minutes%60)
}
