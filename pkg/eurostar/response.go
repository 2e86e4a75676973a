package eurostar

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/railscout/railscout/pkg/journey"
	"github.com/railscout/railscout/pkg/util"
	"github.com/rs/zerolog/log"
	iso8601 "github.com/senseyeio/duration"
)

type searchResponse struct {
	Outbound *directionListing `json:"outbound"`
	Inbound  *directionListing `json:"inbound"`
}

type directionListing struct {
	Journeys []listedJourney `json:"journey"`
}

type listedJourney struct {
	DepartureTime string      `json:"departureTime"`
	Duration      string      `json:"duration"`
	Classes       []fareClass `json:"class"`
}

type fareClass struct {
	Price *farePrice `json:"price"`
}

type farePrice struct {
	Adult float64 `json:"adult"`
}

func parseSearchResponse(body []byte, outboundDate time.Time, inboundDate time.Time) ([]journey.Leg, []journey.Leg, error) {
	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		log.Debug().Str("body", string(body)).Msg("Invalid JSON")
		return nil, nil, fmt.Errorf("parsing search response: %w", err)
	}

	if decoded.Outbound == nil || decoded.Inbound == nil {
		log.Warn().
			Str("outbound", outboundDate.Format(dateFormat)).
			Str("inbound", inboundDate.Format(dateFormat)).
			Msg("No legs found for date pair")
	}

	outbound, err := decoded.Outbound.legs(outboundDate)
	if err != nil {
		return nil, nil, err
	}
	inbound, err := decoded.Inbound.legs(inboundDate)
	if err != nil {
		return nil, nil, err
	}

	return outbound, inbound, nil
}

func (d *directionListing) legs(date time.Time) ([]journey.Leg, error) {
	if d == nil {
		return nil, nil
	}

	var legs []journey.Leg
	for _, listed := range d.Journeys {
		fare, ok := listed.fare()
		if !ok {
			// Not bookable, nothing to price.
			log.Trace().Str("departure", listed.DepartureTime).Msg("Skipping journey without a priced fare")
			continue
		}

		departureTime, err := time.Parse("15:04", listed.DepartureTime)
		if err != nil {
			return nil, fmt.Errorf("parsing departure time %q: %w", listed.DepartureTime, err)
		}

		elapsed, err := parseISODuration(listed.Duration, util.AddTimeToDate(date, departureTime))
		if err != nil {
			return nil, fmt.Errorf("parsing journey duration %q: %w", listed.Duration, err)
		}

		legs = append(legs, journey.Leg{
			Departure: util.AddTimeToDate(date, departureTime),
			Duration:  elapsed,
			Price:     fare,
		})
	}

	return legs, nil
}

// fare returns the adult price of the journey's first fare class, matching
// how the booking flow prices a single concrete fare per journey.
func (j listedJourney) fare() (float64, bool) {
	if len(j.Classes) == 0 || j.Classes[0].Price == nil {
		return 0, false
	}

	return j.Classes[0].Price.Adult, true
}

func parseISODuration(value string, reference time.Time) (time.Duration, error) {
	parsed, err := iso8601.ParseISO8601(value)
	if err != nil {
		return 0, err
	}

	return parsed.Shift(reference).Sub(reference), nil
}
