package routing

import (
	"context"
	"math"
	"time"

	"railplan.onerail.org/internal/geo"
	"railplan.onerail.org/internal/models"
)

// expand derives the outgoing edges of a state on demand. The full
// time-expanded product graph is never materialized; each expansion asks the
// schedule source for exactly the departures and next stops it needs.
//
// A riding traveler can continue to the train's next stop, or alight and
// board a different train after the connection buffer. Boarding the train
// the traveler is already on is never offered; continuation covers it.
func (e *Engine) expand(ctx context.Context, st *searchState, q *query, diags *diagnostics) []*searchState {
	var out []*searchState

	if st.train != nil {
		if next := e.continueRiding(ctx, st, diags); next != nil {
			out = append(out, next)
		}
	}

	out = append(out, e.boardingEdges(ctx, st, q, diags)...)
	return out
}

func (e *Engine) continueRiding(ctx context.Context, st *searchState, diags *diagnostics) *searchState {
	next, err := e.source.NextStop(ctx, st.train.Number, st.stop.Seq)
	if err != nil {
		diags.addf("train %s: next stop after seq %d: %v", st.train.Number, st.stop.Seq, err)
		return nil
	}
	if next == nil {
		return nil // at the train's last stop
	}

	rideMinutes, ok := stopDelta(st.stop, next)
	if !ok {
		diags.addf("train %s: non-chronological stops at seq %d->%d", st.train.Number, st.stop.Seq, next.Seq)
		return nil
	}

	nextStation, err := e.source.Station(ctx, next.StationCode)
	if err != nil {
		diags.addf("train %s: station %s: %v", st.train.Number, next.StationCode, err)
		return nil
	}

	arrival := st.arrival.Add(time.Duration(rideMinutes) * time.Minute)

	path := clonePath(st.path)
	last := &path[len(path)-1]
	last.ToStation = nextStation.Code
	last.ToStationName = nextStation.Name
	last.Arrival = arrival
	last.DistanceKm += segmentDistance(st.stop, next, st.station, nextStation)
	last.FarePaise, last.FareKnown = segmentFare(st.train, last.DistanceKm)

	return &searchState{
		station:   nextStation,
		arrival:   arrival,
		train:     st.train,
		stop:      next,
		g:         st.g + float64(rideMinutes),
		transfers: st.transfers,
		path:      path,
	}
}

func (e *Engine) boardingEdges(ctx context.Context, st *searchState, q *query, diags *diagnostics) []*searchState {
	ready := st.arrival
	atOrigin := len(st.path) == 0
	if !atOrigin {
		ready = ready.Add(e.config.MinConnection)
	}

	departures, err := e.source.DeparturesFrom(ctx, st.station.Code, ready)
	if err != nil {
		diags.addf("station %s: departures: %v", st.station.Code, err)
		return nil
	}

	var out []*searchState
	for _, dep := range departures {
		if st.train != nil && dep.Train.Number == st.train.Number {
			continue // still aboard; continuation handles this train
		}
		if q.opts.SeatClassFilter != "" && !dep.Train.HasClass(q.opts.SeatClassFilter) {
			continue
		}

		next, err := e.source.NextStop(ctx, dep.Train.Number, dep.Stop.Seq)
		if err != nil {
			diags.addf("train %s: next stop after seq %d: %v", dep.Train.Number, dep.Stop.Seq, err)
			continue
		}
		if next == nil {
			continue // boarding at the train's terminus goes nowhere
		}

		rideMinutes, ok := boardDelta(dep.Stop, next)
		if !ok {
			diags.addf("train %s: non-chronological stops at seq %d->%d", dep.Train.Number, dep.Stop.Seq, next.Seq)
			continue
		}

		nextStation, err := e.source.Station(ctx, next.StationCode)
		if err != nil {
			diags.addf("train %s: station %s: %v", dep.Train.Number, next.StationCode, err)
			continue
		}

		transfers := st.transfers
		cost := dep.DepartsAt.Sub(st.arrival).Minutes() + float64(rideMinutes)
		if !atOrigin && dep.Train.Number != st.lastTrainNumber() {
			transfers++
			cost += e.config.TransferPenalty.Minutes()
		}
		if transfers > q.opts.MaxTransfers {
			continue
		}

		arrival := dep.DepartsAt.Add(time.Duration(rideMinutes) * time.Minute)
		distance := segmentDistance(dep.Stop, next, st.station, nextStation)
		fare, fareKnown := segmentFare(dep.Train, distance)

		seg := models.Segment{
			TrainNumber:     dep.Train.Number,
			TrainName:       dep.Train.Name,
			FromStation:     st.station.Code,
			FromStationName: st.station.Name,
			ToStation:       nextStation.Code,
			ToStationName:   nextStation.Name,
			Departure:       dep.DepartsAt,
			Arrival:         arrival,
			DayOffset:       dep.Stop.DayOffset,
			DistanceKm:      distance,
			FarePaise:       fare,
			FareKnown:       fareKnown,
		}

		out = append(out, &searchState{
			station:   nextStation,
			arrival:   arrival,
			train:     dep.Train,
			stop:      next,
			g:         st.g + cost,
			transfers: transfers,
			path:      append(clonePath(st.path), seg),
		})
	}
	return out
}

// stopDelta is the scheduled minutes from arriving at one stop to arriving
// at the next one on the same train, dwell included. ok is false when the
// schedule is not chronologically monotonic.
func stopDelta(from, to *models.Stop) (int, bool) {
	if to.Seq <= from.Seq {
		return 0, false
	}
	fromOff, ok1 := from.ArrivalOffset()
	toOff, ok2 := to.ArrivalOffset()
	if !ok1 || !ok2 || toOff <= fromOff {
		return 0, false
	}
	return toOff - fromOff, true
}

// boardDelta is the scheduled ride minutes from departing a stop to arriving
// at the next one.
func boardDelta(from, to *models.Stop) (int, bool) {
	if to.Seq <= from.Seq {
		return 0, false
	}
	fromOff, ok1 := from.DepartureOffset()
	toOff, ok2 := to.ArrivalOffset()
	if !ok1 || !ok2 || toOff <= fromOff {
		return 0, false
	}
	return toOff - fromOff, true
}

// segmentDistance prefers the timetable's cumulative kilometre posts and
// falls back to great-circle distance when they are absent.
func segmentDistance(from, to *models.Stop, fromStation, toStation *models.Station) int {
	if to.DistanceKm > from.DistanceKm && to.DistanceKm > 0 {
		return to.DistanceKm - from.DistanceKm
	}
	if fromStation.HasCoordinates() && toStation.HasCoordinates() {
		return int(math.Round(geo.HaversineKm(*fromStation.Lat, *fromStation.Lon, *toStation.Lat, *toStation.Lon)))
	}
	return 0
}

func segmentFare(train *models.Train, distanceKm int) (int64, bool) {
	if train.FarePaisePerKm <= 0 || distanceKm <= 0 {
		return 0, false
	}
	return int64(distanceKm) * train.FarePaisePerKm, true
}
