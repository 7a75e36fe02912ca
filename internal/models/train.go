package models

// Stop is one scheduled halt of a train. Seq is strictly increasing within a
// train and matches (DayOffset, Departure) order; DayOffset 0 is the day the
// train leaves its origin.
type Stop struct {
	TrainNumber string
	Seq         int
	StationCode string
	Arrival     ClockTime
	Departure   ClockTime
	DayOffset   int
	DistanceKm  int
	HaltMinutes int
	Platform    string
}

// ArrivalOffset returns the stop's arrival as minutes from the run's origin
// departure day, falling back to the departure reading when the timetable
// lists none. ok is false when the stop has no usable clock time at all.
func (s *Stop) ArrivalOffset() (int, bool) {
	c := s.Arrival
	if !c.Valid() {
		c = s.Departure
	}
	if !c.Valid() {
		return 0, false
	}
	return s.DayOffset*MinutesPerDay + int(c), true
}

// DepartureOffset is the departure counterpart of ArrivalOffset.
func (s *Stop) DepartureOffset() (int, bool) {
	c := s.Departure
	if !c.Valid() {
		c = s.Arrival
	}
	if !c.Valid() {
		return 0, false
	}
	return s.DayOffset*MinutesPerDay + int(c), true
}

// Train is immutable reference data for one scheduled service. Stops are
// ordered by Seq. FarePaisePerKm is the nominal per-kilometre rate used for
// the opaque fare estimate on segments; 0 means no fare data.
type Train struct {
	Number         string
	Name           string
	Type           string
	Classes        []string
	FarePaisePerKm int64
	Stops          []Stop
}

func (t *Train) HasClass(code string) bool {
	for _, c := range t.Classes {
		if c == code {
			return true
		}
	}
	return false
}

// StopAt returns the stop with the given sequence index, or nil.
func (t *Train) StopAt(seq int) *Stop {
	for i := range t.Stops {
		if t.Stops[i].Seq == seq {
			return &t.Stops[i]
		}
	}
	return nil
}

// NextStopAfter returns the first stop with a sequence index greater than
// seq, or nil when seq is at or past the train's last stop.
func (t *Train) NextStopAfter(seq int) *Stop {
	for i := range t.Stops {
		if t.Stops[i].Seq > seq {
			return &t.Stops[i]
		}
	}
	return nil
}
