package routing

import (
	"sort"

	"railplan.onerail.org/internal/models"
)

// Rank orders candidate itineraries by the caller's preference and truncates
// to topK. Duplicate journeys are collapsed and dominated candidates (worse
// or equal on both duration and transfers, strictly worse on one) are pruned
// before ordering. The returned bool reports a cheapest-ranking fallback to
// fastest because fare data was incomplete.
func Rank(itineraries []models.Itinerary, pref Preference, topK int) ([]models.Itinerary, bool) {
	candidates := dedupe(itineraries)
	candidates = pruneDominated(candidates)

	fareIncomplete := false
	if pref == PreferenceCheapest && !allFaresKnown(candidates) {
		pref = PreferenceFastest
		fareIncomplete = true
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return less(&candidates[i], &candidates[j], pref)
	})

	if topK > 0 && len(candidates) > topK {
		candidates = candidates[:topK]
	}
	return candidates, fareIncomplete
}

func dedupe(itineraries []models.Itinerary) []models.Itinerary {
	var out []models.Itinerary
	for i := range itineraries {
		if isNewJourney(out, itineraries[i]) {
			out = append(out, itineraries[i])
		}
	}
	return out
}

// pruneDominated drops every itinerary that another one beats on both
// duration and transfers. Equal pairs survive; only a strict improvement on
// at least one criterion eliminates.
func pruneDominated(itineraries []models.Itinerary) []models.Itinerary {
	var out []models.Itinerary
	for i := range itineraries {
		dominated := false
		for j := range itineraries {
			if i != j && dominates(&itineraries[j], &itineraries[i]) {
				dominated = true
				break
			}
		}
		if !dominated {
			out = append(out, itineraries[i])
		}
	}
	return out
}

func dominates(a, b *models.Itinerary) bool {
	if a.Duration() > b.Duration() || a.Transfers > b.Transfers {
		return false
	}
	return a.Duration() < b.Duration() || a.Transfers < b.Transfers
}

func allFaresKnown(itineraries []models.Itinerary) bool {
	for i := range itineraries {
		if _, known := itineraries[i].Fare(); !known {
			return false
		}
	}
	return true
}

func less(a, b *models.Itinerary, pref Preference) bool {
	switch pref {
	case PreferenceCheapest:
		fa, _ := a.Fare()
		fb, _ := b.Fare()
		if fa != fb {
			return fa < fb
		}
	case PreferenceLeastTransfers:
		if a.Transfers != b.Transfers {
			return a.Transfers < b.Transfers
		}
	}

	if a.Duration() != b.Duration() {
		return a.Duration() < b.Duration()
	}
	if a.Transfers != b.Transfers {
		return a.Transfers < b.Transfers
	}
	if !a.Departure().Equal(b.Departure()) {
		return a.Departure().Before(b.Departure())
	}
	return a.Segments[0].TrainNumber < b.Segments[0].TrainNumber
}
