package journey

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc/pool"
)

// Provider supplies the per-date leg listings. One call covers both
// directions of a single candidate date because the upstream search API
// answers round-trip queries; the two lists are still consumed independently.
type Provider interface {
	FetchLegs(ctx context.Context, from int, to int, outboundDate time.Time, inboundDate time.Time, adults int) (outbound []Leg, inbound []Leg, err error)
}

// Fetches are independent per date, so a handful in flight is enough to hide
// provider latency.
const maxConcurrentFetches = 4

// Find runs one complete matching pass: enumerate candidate dates, fetch
// legs for each, pair and filter them, then rank the survivors. Zero
// surviving pairs is a normal outcome with an empty result and a nil error.
// Any fetch failure aborts the whole run.
func Find(ctx context.Context, criteria Criteria, provider Provider) ([]Pair, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	dates := CandidateDates(criteria.Since, criteria.Until, criteria.Weekdays)
	if len(dates) == 0 {
		return nil, nil
	}

	// Each date writes into its own slot so the flattened order never
	// depends on fetch completion order.
	matched := make([][]Pair, len(dates))

	p := pool.New().
		WithMaxGoroutines(maxConcurrentFetches).
		WithErrors().
		WithFirstError().
		WithContext(ctx).
		WithCancelOnError()

	for i, date := range dates {
		p.Go(func(ctx context.Context) error {
			inboundDate := InboundDate(date, criteria.TripLengthDays)

			outbound, inbound, err := provider.FetchLegs(ctx, criteria.From, criteria.To, date, inboundDate, criteria.Adults)
			if err != nil {
				return &ProviderError{Date: date, Err: err}
			}

			log.Debug().
				Str("outbound", date.Format(dateFormat)).
				Str("inbound", inboundDate.Format(dateFormat)).
				Int("outboundlegs", len(outbound)).
				Int("inboundlegs", len(inbound)).
				Msg("Fetched legs")

			matched[i] = FilterPairs(CrossJoin(outbound, inbound), criteria)

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		return nil, err
	}

	var pairs []Pair
	for _, datePairs := range matched {
		pairs = append(pairs, datePairs...)
	}

	SortPairs(pairs, criteria.SortBy)

	return pairs, nil
}
