package journey

import (
	"github.com/railscout/railscout/pkg/util"
)

// CrossJoin forms every ordered (outbound, inbound) combination of the two
// leg lists. No deduplication; an empty list on either side produces no
// pairs.
func CrossJoin(outbound []Leg, inbound []Leg) []Pair {
	pairs := make([]Pair, 0, len(outbound)*len(inbound))

	for _, outboundLeg := range outbound {
		for _, inboundLeg := range inbound {
			pairs = append(pairs, Pair{
				Outbound: outboundLeg,
				Inbound:  inboundLeg,
				Price:    outboundLeg.Price + inboundLeg.Price,
			})
		}
	}

	return pairs
}

// Matches reports whether a pair satisfies every constraint in the criteria.
// All bounds are inclusive; an unset bound imposes nothing.
func (c Criteria) Matches(pair Pair) bool {
	if !c.Outbound.Contains(pair.Outbound.Departure) {
		return false
	}
	if !c.Inbound.Contains(pair.Inbound.Departure) {
		return false
	}
	if c.MaxPrice != nil && pair.Price > *c.MaxPrice {
		return false
	}

	return true
}

// FilterPairs drops pairs violating the criteria. Rejections are silent.
func FilterPairs(pairs []Pair, criteria Criteria) []Pair {
	util.InPlaceFilter(&pairs, criteria.Matches)

	return pairs
}
