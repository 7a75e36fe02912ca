package scheduledb

import (
	"context"
	"database/sql"
)

// Queries bundles the read statements the schedule manager issues.
type Queries struct {
	db     *sql.DB
	driver string
}

func newQueries(db *sql.DB, driver string) *Queries {
	return &Queries{db: db, driver: driver}
}

func (q *Queries) GetStation(ctx context.Context, code string) (Station, error) {
	row := q.db.QueryRowContext(ctx,
		rebind(q.driver, "SELECT code, name, lat, lon, zone, state FROM stations WHERE code = ?"),
		code)

	var s Station
	err := row.Scan(&s.Code, &s.Name, &s.Lat, &s.Lon, &s.Zone, &s.State)
	return s, err
}

func (q *Queries) ListStations(ctx context.Context) ([]Station, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT code, name, lat, lon, zone, state FROM stations ORDER BY code")
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var stations []Station
	for rows.Next() {
		var s Station
		if err := rows.Scan(&s.Code, &s.Name, &s.Lat, &s.Lon, &s.Zone, &s.State); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

func (q *Queries) ListTrains(ctx context.Context) ([]Train, error) {
	rows, err := q.db.QueryContext(ctx,
		"SELECT number, name, type, classes, fare_paise_per_km FROM trains ORDER BY number")
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var trains []Train
	for rows.Next() {
		var t Train
		if err := rows.Scan(&t.Number, &t.Name, &t.Type, &t.Classes, &t.FarePaisePerKm); err != nil {
			return nil, err
		}
		trains = append(trains, t)
	}
	return trains, rows.Err()
}

// ListTrainStops returns every stop row ordered by train then sequence, so a
// single pass can group them per train.
func (q *Queries) ListTrainStops(ctx context.Context) ([]TrainStop, error) {
	rows, err := q.db.QueryContext(ctx, `
		SELECT train_number, stop_sequence, station_code, arrival_time,
		       departure_time, day_offset, distance_from_start_km, halt_minutes, platform
		FROM train_stops
		ORDER BY train_number, stop_sequence`)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var stops []TrainStop
	for rows.Next() {
		var s TrainStop
		err := rows.Scan(&s.TrainNumber, &s.StopSequence, &s.StationCode, &s.ArrivalTime,
			&s.DepartureTime, &s.DayOffset, &s.DistanceKm, &s.HaltMinutes, &s.Platform)
		if err != nil {
			return nil, err
		}
		stops = append(stops, s)
	}
	return stops, rows.Err()
}

// GetSeatAvailability returns the availability rows for one train run.
func (q *Queries) GetSeatAvailability(ctx context.Context, trainNumber, runDate string) ([]SeatAvailability, error) {
	rows, err := q.db.QueryContext(ctx,
		rebind(q.driver, `
			SELECT train_number, run_date, seat_class, seats_available
			FROM seat_availability
			WHERE train_number = ? AND run_date = ?
			ORDER BY seat_class`),
		trainNumber, runDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var avail []SeatAvailability
	for rows.Next() {
		var a SeatAvailability
		if err := rows.Scan(&a.TrainNumber, &a.RunDate, &a.SeatClass, &a.SeatsAvailable); err != nil {
			return nil, err
		}
		avail = append(avail, a)
	}
	return avail, rows.Err()
}
