package models

import "time"

// Segment is one continuous ride on a single train between a boarding and an
// alighting stop. Times are absolute instants; DayOffset is the boarding
// stop's day offset within the train's run, which pins the run date the
// segment belongs to.
type Segment struct {
	TrainNumber     string
	TrainName       string
	FromStation     string
	FromStationName string
	ToStation       string
	ToStationName   string
	Departure       time.Time
	Arrival         time.Time
	DayOffset       int
	DistanceKm      int
	SeatClasses     []string
	FarePaise       int64
	FareKnown       bool
}

func (s Segment) Duration() time.Duration {
	return s.Arrival.Sub(s.Departure)
}

// RunDate is the calendar day the segment's train left its origin.
func (s Segment) RunDate() time.Time {
	return s.Departure.AddDate(0, 0, -s.DayOffset).Truncate(24 * time.Hour)
}

// Itinerary is an ordered sequence of segments forming one complete journey.
// Each segment alights where the next one boards, and alighting time plus the
// minimum connection buffer never exceeds the next boarding time.
type Itinerary struct {
	Segments  []Segment
	Transfers int
}

func (it Itinerary) Departure() time.Time {
	if len(it.Segments) == 0 {
		return time.Time{}
	}
	return it.Segments[0].Departure
}

func (it Itinerary) Arrival() time.Time {
	if len(it.Segments) == 0 {
		return time.Time{}
	}
	return it.Segments[len(it.Segments)-1].Arrival
}

func (it Itinerary) Duration() time.Duration {
	return it.Arrival().Sub(it.Departure())
}

func (it Itinerary) DistanceKm() int {
	total := 0
	for _, seg := range it.Segments {
		total += seg.DistanceKm
	}
	return total
}

// Fare sums the per-segment estimates. ok is false when any segment lacks
// fare data, in which case the total is not meaningful.
func (it Itinerary) Fare() (int64, bool) {
	var total int64
	for _, seg := range it.Segments {
		if !seg.FareKnown {
			return 0, false
		}
		total += seg.FarePaise
	}
	return total, true
}

// SameJourney reports whether two itineraries ride the same trains between
// the same stops at the same times. Used for deduplication.
func (it Itinerary) SameJourney(other Itinerary) bool {
	if len(it.Segments) != len(other.Segments) {
		return false
	}
	for i, seg := range it.Segments {
		o := other.Segments[i]
		if seg.TrainNumber != o.TrainNumber ||
			seg.FromStation != o.FromStation ||
			seg.ToStation != o.ToStation ||
			!seg.Departure.Equal(o.Departure) ||
			!seg.Arrival.Equal(o.Arrival) {
			return false
		}
	}
	return true
}
