package scheduledb

import "database/sql"

// Station is a railway station row
type Station struct {
	Code  string          // code
	Name  string          // name
	Lat   sql.NullFloat64 // lat
	Lon   sql.NullFloat64 // lon
	Zone  sql.NullString  // zone
	State sql.NullString  // state
}

// Train is a scheduled service row. Classes is a comma-separated list of
// seat class codes (SL, 3A, 2A, 1A, CC, FC).
type Train struct {
	Number         string         // number
	Name           string         // name
	Type           sql.NullString // type
	Classes        sql.NullString // classes
	FarePaisePerKm int64          // fare_paise_per_km
}

// TrainStop is one scheduled halt row. Clock times are "HH:MM" strings as in
// the upstream timetable; empty means the timetable lists none.
type TrainStop struct {
	TrainNumber   string         // train_number
	StopSequence  int            // stop_sequence
	StationCode   string         // station_code
	ArrivalTime   sql.NullString // arrival_time
	DepartureTime sql.NullString // departure_time
	DayOffset     int            // day_offset
	DistanceKm    int            // distance_from_start_km
	HaltMinutes   int            // halt_minutes
	Platform      sql.NullString // platform
}

// SeatAvailability is a per-run seat inventory summary row, maintained by the
// booking subsystem and read here best-effort only.
type SeatAvailability struct {
	TrainNumber    string // train_number
	RunDate        string // run_date (YYYY-MM-DD)
	SeatClass      string // seat_class
	SeatsAvailable int    // seats_available
}
