package routing

import (
	"context"
	"time"

	"railplan.onerail.org/internal/models"
)

// Departure is one boardable (train, stop) pair at a station. DepartsAt is
// the absolute instant of the next scheduled departure at or after the
// queried time, with the stop's timetable clock and day offset already
// resolved by the source.
type Departure struct {
	Train     *models.Train
	Stop      *models.Stop
	DepartsAt time.Time
}

// ScheduleSource is the read-only view of the schedule the search engine
// consumes. Implementations must return deterministic orderings; the engine
// guarantees bit-identical results only if the source does too.
type ScheduleSource interface {
	// Station resolves a station code, returning ErrStationNotFound for
	// unknown codes.
	Station(ctx context.Context, code string) (*models.Station, error)

	// DeparturesFrom lists every train with a scheduled departure at the
	// station at or after the given instant, ordered by departure time
	// ascending (ties broken by train number).
	DeparturesFrom(ctx context.Context, stationCode string, after time.Time) ([]Departure, error)

	// NextStop returns the stop immediately following the given sequence
	// index on a train, or nil when the index is at the train's last stop.
	NextStop(ctx context.Context, trainNumber string, currentSeq int) (*models.Stop, error)

	// SeatClassesAvailable returns the seat classes nominally bookable on a
	// train run between two stations. Best-effort: an error here only means
	// the segment goes out without availability data.
	SeatClassesAvailable(ctx context.Context, trainNumber string, runDate time.Time, fromStation, toStation string) ([]string, error)
}
