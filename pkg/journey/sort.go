package journey

import (
	"cmp"

	"golang.org/x/exp/slices"
)

// SortPairs orders pairs in place. The full key chains make the order total,
// so identical input always produces identical output regardless of how the
// pairs were accumulated.
func SortPairs(pairs []Pair, order SortOrder) {
	switch order {
	case SortByDate:
		slices.SortStableFunc(pairs, comparePairsByDate)
	default:
		slices.SortStableFunc(pairs, comparePairsByPrice)
	}
}

func comparePairsByPrice(a Pair, b Pair) int {
	if c := cmp.Compare(a.Price, b.Price); c != 0 {
		return c
	}
	if c := a.Outbound.Departure.Compare(b.Outbound.Departure); c != 0 {
		return c
	}

	return a.Inbound.Departure.Compare(b.Inbound.Departure)
}

func comparePairsByDate(a Pair, b Pair) int {
	if c := a.Outbound.Departure.Compare(b.Outbound.Departure); c != 0 {
		return c
	}
	if c := a.Inbound.Departure.Compare(b.Inbound.Departure); c != 0 {
		return c
	}

	return cmp.Compare(a.Price, b.Price)
}
