package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"railplan.onerail.org/internal/appconf"
	"railplan.onerail.org/internal/logging"
	"railplan.onerail.org/internal/models"
	"railplan.onerail.org/internal/routing"
	"railplan.onerail.org/scheduledb"
)

// Config holds configuration options for the schedule Manager.
type Config struct {
	// DSN is passed through to the storage layer.
	DSN string

	// SeedSource is an optional GTFS feed (URL or local file path) imported
	// when the database holds no trains yet. Empty disables seeding.
	SeedSource string

	Env     appconf.Environment
	Verbose bool
}

// Manager owns the in-memory schedule the search engine reads. It loads the
// timetable from the database once at startup (and again on Reload) and
// serves lookups from indexed maps under a read lock, so searches never
// touch the database except for seat availability.
type Manager struct {
	ScheduleDB *scheduledb.Client
	config     Config
	logger     *slog.Logger

	mu         sync.RWMutex
	stations   map[string]*models.Station
	trains     map[string]*models.Train
	departures map[string][]departureEntry
	loadedAt   time.Time
}

// departureEntry is one boardable stop at a station, indexed for
// DeparturesFrom. The clock is the stop's departure reading; the daily
// service model resolves it to an instant per query.
type departureEntry struct {
	train *models.Train
	stop  *models.Stop
}

// InitManager opens the schedule database, seeds it from the configured GTFS
// feed if it is empty, and loads the timetable into memory.
func InitManager(ctx context.Context, config Config, logger *slog.Logger) (*Manager, error) {
	client, err := scheduledb.NewClient(scheduledb.NewConfig(config.DSN, config.Env, config.Verbose))
	if err != nil {
		return nil, fmt.Errorf("error opening schedule database: %w", err)
	}

	manager := &Manager{
		ScheduleDB: client,
		config:     config,
		logger:     logger,
	}

	if config.SeedSource != "" {
		empty, err := client.IsEmpty(ctx)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("error checking schedule database: %w", err)
		}
		if empty {
			if err := client.ImportGTFS(ctx, config.SeedSource); err != nil {
				_ = client.Close()
				return nil, fmt.Errorf("error seeding schedule database: %w", err)
			}
		}
	}

	if err := manager.Reload(ctx); err != nil {
		_ = client.Close()
		return nil, err
	}
	return manager, nil
}

func (m *Manager) Close() error {
	return m.ScheduleDB.Close()
}

// Reload rebuilds the in-memory indexes from the database. Trains whose stop
// rows are unusable (bad clock strings, non-increasing sequences) are dropped
// whole and logged, never partially loaded.
func (m *Manager) Reload(ctx context.Context) error {
	started := time.Now()

	stationRows, err := m.ScheduleDB.Queries.ListStations(ctx)
	if err != nil {
		return fmt.Errorf("error loading stations: %w", err)
	}
	trainRows, err := m.ScheduleDB.Queries.ListTrains(ctx)
	if err != nil {
		return fmt.Errorf("error loading trains: %w", err)
	}
	stopRows, err := m.ScheduleDB.Queries.ListTrainStops(ctx)
	if err != nil {
		return fmt.Errorf("error loading train stops: %w", err)
	}

	stations := make(map[string]*models.Station, len(stationRows))
	for _, row := range stationRows {
		station := stationFromRow(row)
		stations[station.Code] = station
	}

	stopsByTrain := make(map[string][]models.Stop)
	badTrains := make(map[string]bool)
	for _, row := range stopRows {
		if badTrains[row.TrainNumber] {
			continue
		}
		stop, err := stopFromRow(row)
		if err != nil {
			logging.LogScheduleAnomaly(m.logger, row.TrainNumber, err.Error())
			badTrains[row.TrainNumber] = true
			delete(stopsByTrain, row.TrainNumber)
			continue
		}
		stopsByTrain[row.TrainNumber] = append(stopsByTrain[row.TrainNumber], stop)
	}

	trains := make(map[string]*models.Train, len(trainRows))
	departures := make(map[string][]departureEntry)
	for _, row := range trainRows {
		if badTrains[row.Number] {
			continue
		}
		stops := stopsByTrain[row.Number]
		if len(stops) < 2 {
			logging.LogScheduleAnomaly(m.logger, row.Number, "fewer than two usable stops")
			continue
		}
		if detail, ok := checkStopOrder(stops); !ok {
			logging.LogScheduleAnomaly(m.logger, row.Number, detail)
			continue
		}

		train := trainFromRow(row)
		train.Stops = stops
		trains[train.Number] = train

		for i := range train.Stops {
			stop := &train.Stops[i]
			if !stop.Departure.Valid() || train.NextStopAfter(stop.Seq) == nil {
				continue
			}
			departures[stop.StationCode] = append(departures[stop.StationCode], departureEntry{
				train: train,
				stop:  stop,
			})
		}
	}

	for code := range departures {
		entries := departures[code]
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].stop.Departure != entries[j].stop.Departure {
				return entries[i].stop.Departure < entries[j].stop.Departure
			}
			return entries[i].train.Number < entries[j].train.Number
		})
	}

	m.mu.Lock()
	m.stations = stations
	m.trains = trains
	m.departures = departures
	m.loadedAt = time.Now()
	m.mu.Unlock()

	logging.LogOperation(m.logger, "schedule_reload",
		slog.Duration("duration", time.Since(started)),
		slog.Int("stations", len(stations)),
		slog.Int("trains", len(trains)),
		slog.Int("dropped_trains", len(badTrains)),
	)
	return nil
}

// Station implements routing.ScheduleSource.
func (m *Manager) Station(_ context.Context, code string) (*models.Station, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	station, ok := m.stations[code]
	if !ok {
		return nil, fmt.Errorf("%s: %w", code, routing.ErrStationNotFound)
	}
	return station, nil
}

// DeparturesFrom implements routing.ScheduleSource. Services run daily, so
// each timetable clock is resolved to its earliest occurrence at or after the
// queried instant.
func (m *Manager) DeparturesFrom(_ context.Context, stationCode string, after time.Time) ([]routing.Departure, error) {
	m.mu.RLock()
	entries := m.departures[stationCode]
	m.mu.RUnlock()

	day := time.Date(after.Year(), after.Month(), after.Day(), 0, 0, 0, 0, after.Location())

	out := make([]routing.Departure, 0, len(entries))
	for _, entry := range entries {
		at := day.Add(time.Duration(entry.stop.Departure) * time.Minute)
		if at.Before(after) {
			at = at.AddDate(0, 0, 1)
		}
		out = append(out, routing.Departure{
			Train:     entry.train,
			Stop:      entry.stop,
			DepartsAt: at,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].DepartsAt.Equal(out[j].DepartsAt) {
			return out[i].DepartsAt.Before(out[j].DepartsAt)
		}
		return out[i].Train.Number < out[j].Train.Number
	})
	return out, nil
}

// NextStop implements routing.ScheduleSource.
func (m *Manager) NextStop(_ context.Context, trainNumber string, currentSeq int) (*models.Stop, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	train, ok := m.trains[trainNumber]
	if !ok {
		return nil, fmt.Errorf("train %s not found", trainNumber)
	}
	return train.NextStopAfter(currentSeq), nil
}

// SeatClassesAvailable implements routing.ScheduleSource. Classes with seats
// recorded for the run win; with no availability rows at all, the train's
// nominal class list is returned instead.
func (m *Manager) SeatClassesAvailable(ctx context.Context, trainNumber string, runDate time.Time, _, _ string) ([]string, error) {
	rows, err := m.ScheduleDB.Queries.GetSeatAvailability(ctx, trainNumber, runDate.Format("2006-01-02"))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		m.mu.RLock()
		defer m.mu.RUnlock()
		if train, ok := m.trains[trainNumber]; ok {
			return train.Classes, nil
		}
		return nil, nil
	}

	var classes []string
	for _, row := range rows {
		if row.SeatsAvailable > 0 {
			classes = append(classes, row.SeatClass)
		}
	}
	return classes, nil
}

// TrainByNumber returns the loaded train, or nil.
func (m *Manager) TrainByNumber(number string) *models.Train {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.trains[number]
}

// FindStations returns up to limit stations whose code or name contains the
// query, case-insensitively, ordered by code.
func (m *Manager) FindStations(query string, limit int) []*models.Station {
	query = strings.ToUpper(strings.TrimSpace(query))
	if query == "" {
		return nil
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var matches []*models.Station
	for _, station := range m.stations {
		if strings.Contains(station.Code, query) ||
			strings.Contains(strings.ToUpper(station.Name), query) {
			matches = append(matches, station)
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		return matches[i].Code < matches[j].Code
	})
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// Stats summarizes the loaded schedule for health reporting.
type Stats struct {
	Stations int       `json:"stations"`
	Trains   int       `json:"trains"`
	LoadedAt time.Time `json:"loadedAt"`
}

func (m *Manager) Stats() Stats {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return Stats{
		Stations: len(m.stations),
		Trains:   len(m.trains),
		LoadedAt: m.loadedAt,
	}
}

func stationFromRow(row scheduledb.Station) *models.Station {
	station := &models.Station{
		Code: row.Code,
		Name: row.Name,
	}
	if row.Lat.Valid && row.Lon.Valid {
		lat, lon := row.Lat.Float64, row.Lon.Float64
		station.Lat, station.Lon = &lat, &lon
	}
	if row.Zone.Valid {
		station.Zone = row.Zone.String
	}
	if row.State.Valid {
		station.State = row.State.String
	}
	return station
}

func trainFromRow(row scheduledb.Train) *models.Train {
	train := &models.Train{
		Number:         row.Number,
		Name:           row.Name,
		FarePaisePerKm: row.FarePaisePerKm,
	}
	if row.Type.Valid {
		train.Type = row.Type.String
	}
	if row.Classes.Valid && row.Classes.String != "" {
		train.Classes = strings.Split(row.Classes.String, ",")
	}
	return train
}

func stopFromRow(row scheduledb.TrainStop) (models.Stop, error) {
	arrival, err := models.ParseClockTime(row.ArrivalTime.String)
	if err != nil {
		return models.Stop{}, fmt.Errorf("stop %d: %w", row.StopSequence, err)
	}
	departure, err := models.ParseClockTime(row.DepartureTime.String)
	if err != nil {
		return models.Stop{}, fmt.Errorf("stop %d: %w", row.StopSequence, err)
	}
	return models.Stop{
		TrainNumber: row.TrainNumber,
		Seq:         row.StopSequence,
		StationCode: row.StationCode,
		Arrival:     arrival,
		Departure:   departure,
		DayOffset:   row.DayOffset,
		DistanceKm:  row.DistanceKm,
		HaltMinutes: row.HaltMinutes,
		Platform:    row.Platform.String,
	}, nil
}

// checkStopOrder verifies sequences strictly increase and timetable offsets
// never run backwards across a train's stops.
func checkStopOrder(stops []models.Stop) (string, bool) {
	prevOffset := -1
	for i := range stops {
		if i > 0 && stops[i].Seq <= stops[i-1].Seq {
			return fmt.Sprintf("non-increasing stop sequence at index %d", i), false
		}
		offset, ok := stops[i].DepartureOffset()
		if !ok {
			if arr, arrOK := stops[i].ArrivalOffset(); arrOK {
				offset = arr
			} else {
				return fmt.Sprintf("stop %d has no clock times", stops[i].Seq), false
			}
		}
		if offset < prevOffset {
			return fmt.Sprintf("non-chronological timetable at stop %d", stops[i].Seq), false
		}
		prevOffset = offset
	}
	return "", true
}
