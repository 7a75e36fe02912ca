package routing

import "railplan.onerail.org/internal/models"

// Outcome distinguishes the three ways a search can end. An exhausted search
// space and a fired deadline are normal results, not errors, so callers can
// render "no trains available" or retry respectively.
type Outcome string

const (
	OutcomeFound        Outcome = "found"
	OutcomeNoRouteFound Outcome = "noRouteFound"
	OutcomeCancelled    Outcome = "cancelled"
)

// Result is the engine's answer to one search invocation.
type Result struct {
	Outcome     Outcome
	Itineraries []models.Itinerary

	// FareDataIncomplete is set when a "cheapest" search fell back to
	// fastest ordering because segments lacked fare data.
	FareDataIncomplete bool

	// Diagnostics lists schedule anomalies skipped during the search.
	Diagnostics []string
}
