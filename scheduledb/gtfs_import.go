package scheduledb

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jamespfennell/gtfs"
)

// ImportGTFS seeds the schedule tables from a static GTFS feed. Many rail
// operators publish their timetable as GTFS; trips become trains, stops
// become stations, and stop_times become train stops with day offsets
// derived from clock values past 24:00. Seat class and fare data are not
// part of GTFS and stay empty.
func (c *Client) ImportGTFS(ctx context.Context, source string) error {
	b, err := rawFeedData(source)
	if err != nil {
		return err
	}

	staticData, err := gtfs.ParseStatic(b, gtfs.ParseStaticOptions{})
	if err != nil {
		return fmt.Errorf("error parsing GTFS data: %w", err)
	}

	stations := make([]Station, 0, len(staticData.Stops))
	seenStations := make(map[string]bool)
	stationCodeByStopID := make(map[string]string)

	for _, s := range staticData.Stops {
		code := s.Code
		if code == "" {
			code = s.Id
		}
		stationCodeByStopID[s.Id] = code
		if seenStations[code] {
			continue
		}
		seenStations[code] = true

		station := Station{Code: code, Name: s.Name}
		if s.Latitude != nil && s.Longitude != nil {
			station.Lat = sql.NullFloat64{Float64: *s.Latitude, Valid: true}
			station.Lon = sql.NullFloat64{Float64: *s.Longitude, Valid: true}
		}
		stations = append(stations, station)
	}

	var trains []Train
	var stops []TrainStop
	seenTrains := make(map[string]bool)

	for _, t := range staticData.Trips {
		number := t.ID
		if t.ShortName != "" {
			number = t.ShortName
		}
		if seenTrains[number] {
			continue
		}
		seenTrains[number] = true

		name := t.Headsign
		if t.Route != nil {
			if t.Route.LongName != "" {
				name = t.Route.LongName
			} else if t.Route.ShortName != "" {
				name = t.Route.ShortName
			}
		}

		trains = append(trains, Train{
			Number: number,
			Name:   name,
		})

		for _, st := range t.StopTimes {
			arrival, arrivalOffset := gtfsClock(st.ArrivalTime)
			departure, departureOffset := gtfsClock(st.DepartureTime)
			dayOffset := departureOffset
			if dayOffset == 0 {
				dayOffset = arrivalOffset
			}

			stops = append(stops, TrainStop{
				TrainNumber:   number,
				StopSequence:  st.StopSequence,
				StationCode:   stationCodeByStopID[st.Stop.Id],
				ArrivalTime:   arrival,
				DepartureTime: departure,
				DayOffset:     dayOffset,
			})
		}
	}

	if err := c.InsertStations(ctx, stations); err != nil {
		return fmt.Errorf("error importing stations: %w", err)
	}
	if err := c.InsertTrains(ctx, trains); err != nil {
		return fmt.Errorf("error importing trains: %w", err)
	}
	if err := c.InsertTrainStops(ctx, stops); err != nil {
		return fmt.Errorf("error importing train stops: %w", err)
	}
	return nil
}

// gtfsClock splits a GTFS time-since-midnight into an "HH:MM" clock string
// and a day offset. GTFS expresses next-day stops as clock values past 24:00.
func gtfsClock(d time.Duration) (sql.NullString, int) {
	if d < 0 {
		return sql.NullString{}, 0
	}
	dayOffset := int(d / (24 * time.Hour))
	within := d % (24 * time.Hour)
	clock := fmt.Sprintf("%02d:%02d", int(within.Hours()), int(within.Minutes())%60)
	return sql.NullString{String: clock, Valid: true}, dayOffset
}

func rawFeedData(source string) ([]byte, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, fmt.Errorf("error downloading GTFS data: %w", err)
		}
		defer resp.Body.Close() // nolint

		b, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("error reading GTFS data: %w", err)
		}
		return b, nil
	}

	b, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("error reading local GTFS file: %w", err)
	}
	return b, nil
}
