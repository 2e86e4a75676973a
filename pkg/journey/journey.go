// Package journey implements the round-trip matching engine: it expands a
// date range into candidate travel dates, pairs outbound and inbound legs,
// filters the pairs against the traveller's constraints and ranks the
// survivors deterministically.
package journey

import (
	"time"
)

// Leg is one scheduled directional journey as returned by the provider.
type Leg struct {
	Departure time.Time
	Duration  time.Duration
	Price     float64
}

// Pair combines one outbound and one inbound Leg into a round-trip option.
// Price is the sum of the two leg fares.
type Pair struct {
	Outbound Leg
	Inbound  Leg
	Price    float64
}
