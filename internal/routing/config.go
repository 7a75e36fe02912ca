package routing

import (
	"time"

	"railplan.onerail.org/internal/geo"
)

// Config holds the engine tunables. Zero values mean "use the default".
type Config struct {
	// MinConnection is the buffer a traveler needs between alighting from
	// one train and boarding the next. Waived at the true origin.
	MinConnection time.Duration

	// TransferPenalty is added to the search cost once per train change, so
	// that a marginally faster two-train journey does not outrank a direct one.
	TransferPenalty time.Duration

	// VisitedBucket is the coarse time granularity of visited-state keys.
	// Larger buckets bound the state space harder at the price of possibly
	// discarding a slightly better revisit.
	VisitedBucket time.Duration

	// Horizon bounds elapsed time from the requested departure. Scaled up by
	// HorizonTransferFactor per allowed transfer before being applied.
	Horizon               time.Duration
	HorizonTransferFactor float64

	// AvgSpeedKmph feeds the remaining-time heuristic. Must stay at or above
	// the practical per-segment maximum speed for the search to stay optimal.
	AvgSpeedKmph float64

	// MaxIterations caps frontier pops regardless of other bounds.
	MaxIterations int
}

func DefaultConfig() Config {
	return Config{
		MinConnection:         30 * time.Minute,
		TransferPenalty:       30 * time.Minute,
		VisitedBucket:         15 * time.Minute,
		Horizon:               12 * time.Hour,
		HorizonTransferFactor: 0.5,
		AvgSpeedKmph:          geo.DefaultAvgSpeedKmph,
		MaxIterations:         200_000,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.MinConnection == 0 {
		c.MinConnection = def.MinConnection
	}
	if c.TransferPenalty == 0 {
		c.TransferPenalty = def.TransferPenalty
	}
	if c.VisitedBucket == 0 {
		c.VisitedBucket = def.VisitedBucket
	}
	if c.Horizon == 0 {
		c.Horizon = def.Horizon
	}
	if c.HorizonTransferFactor == 0 {
		c.HorizonTransferFactor = def.HorizonTransferFactor
	}
	if c.AvgSpeedKmph == 0 {
		c.AvgSpeedKmph = def.AvgSpeedKmph
	}
	if c.MaxIterations == 0 {
		c.MaxIterations = def.MaxIterations
	}
	return c
}

// horizonFor widens the elapsed-time bound for searches allowed more
// transfers, which legitimately take longer journeys.
func (c Config) horizonFor(maxTransfers int) time.Duration {
	scale := 1 + c.HorizonTransferFactor*float64(maxTransfers)
	return time.Duration(float64(c.Horizon) * scale)
}
