package scheduledb

import (
	"context"
	"fmt"
)

// InsertStations adds station rows in one transaction.
func (c *Client) InsertStations(ctx context.Context, stations []Station) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, rebind(c.Queries.driver, `
		INSERT INTO stations (code, name, lat, lon, zone, state)
		VALUES (?, ?, ?, ?, ?, ?)`))
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, s := range stations {
		_, err := stmt.ExecContext(ctx, s.Code, s.Name, s.Lat, s.Lon, s.Zone, s.State)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting station %s: %w", s.Code, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// InsertTrains adds train rows in one transaction.
func (c *Client) InsertTrains(ctx context.Context, trains []Train) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, rebind(c.Queries.driver, `
		INSERT INTO trains (number, name, type, classes, fare_paise_per_km)
		VALUES (?, ?, ?, ?, ?)`))
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, t := range trains {
		_, err := stmt.ExecContext(ctx, t.Number, t.Name, t.Type, t.Classes, t.FarePaisePerKm)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting train %s: %w", t.Number, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// InsertTrainStops adds stop rows in one transaction.
func (c *Client) InsertTrainStops(ctx context.Context, stops []TrainStop) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, rebind(c.Queries.driver, `
		INSERT INTO train_stops (
			train_number, stop_sequence, station_code, arrival_time,
			departure_time, day_offset, distance_from_start_km, halt_minutes, platform
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`))
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, s := range stops {
		_, err := stmt.ExecContext(ctx, s.TrainNumber, s.StopSequence, s.StationCode,
			s.ArrivalTime, s.DepartureTime, s.DayOffset, s.DistanceKm, s.HaltMinutes, s.Platform)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting stop %s/%d: %w", s.TrainNumber, s.StopSequence, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}

// InsertSeatAvailability adds availability rows in one transaction.
func (c *Client) InsertSeatAvailability(ctx context.Context, avail []SeatAvailability) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, rebind(c.Queries.driver, `
		INSERT INTO seat_availability (train_number, run_date, seat_class, seats_available)
		VALUES (?, ?, ?, ?)`))
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	for _, a := range avail {
		_, err := stmt.ExecContext(ctx, a.TrainNumber, a.RunDate, a.SeatClass, a.SeatsAvailable)
		if err != nil {
			tx.Rollback() // nolint:errcheck
			return fmt.Errorf("error inserting availability %s/%s: %w", a.TrainNumber, a.RunDate, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}
	return nil
}
