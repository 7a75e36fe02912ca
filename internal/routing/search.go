package routing

import (
	"container/heap"
	"context"
	"errors"
	"log/slog"
	"time"

	"railplan.onerail.org/internal/geo"
	"railplan.onerail.org/internal/logging"
	"railplan.onerail.org/internal/models"
)

// Engine runs best-first searches over a schedule source. It is stateless
// across invocations and safe for concurrent use as long as the source is.
type Engine struct {
	source    ScheduleSource
	config    Config
	heuristic geo.Heuristic
	logger    *slog.Logger
}

func NewEngine(source ScheduleSource, config Config, logger *slog.Logger) *Engine {
	config = config.withDefaults()
	return &Engine{
		source:    source,
		config:    config,
		heuristic: geo.NewHeuristic(config.AvgSpeedKmph),
		logger:    logger,
	}
}

// Request describes one itinerary search.
type Request struct {
	From string
	To   string

	// Date is the service date of the requested departure; only its calendar
	// day is used. Time is the earliest acceptable departure clock time.
	Date time.Time
	Time models.ClockTime

	Options Options

	// Now anchors past-date validation. Zero means the wall clock.
	Now time.Time
}

// query carries the resolved, validated request through the search loop.
type query struct {
	origin *models.Station
	dest   *models.Station
	depart time.Time
	opts   Options
}

// Search finds up to TopK itineraries from the requested origin to the
// destination, departing no earlier than the requested instant. Malformed
// requests return *InputError with every failed field reported at once.
// Exhaustion and cancellation are reported through Result.Outcome, not as
// errors.
func (e *Engine) Search(ctx context.Context, req Request) (*Result, error) {
	started := time.Now()

	q, err := e.resolve(ctx, req)
	if err != nil {
		return nil, err
	}

	res := e.run(ctx, q)

	logging.LogOperation(e.logger, "route_search",
		slog.Duration("duration", time.Since(started)),
		slog.String("from", q.origin.Code),
		slog.String("to", q.dest.Code),
		slog.String("outcome", string(res.Outcome)),
		slog.Int("itineraries", len(res.Itineraries)),
	)
	return res, nil
}

func (e *Engine) resolve(ctx context.Context, req Request) (*query, error) {
	inputErr := newInputError()

	opts := req.Options.withDefaults()
	opts.validate(inputErr)

	if !req.Time.Valid() {
		inputErr.add("time", "must be a clock time between 00:00 and 23:59")
	}
	if req.Date.IsZero() {
		inputErr.add("date", "is required")
	} else {
		now := req.Now
		if now.IsZero() {
			now = time.Now()
		}
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		day := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, now.Location())
		if day.Before(today) {
			inputErr.add("date", "must not be in the past")
		}
	}

	q := &query{opts: opts}
	q.origin = e.resolveStation(ctx, req.From, "from", inputErr)
	q.dest = e.resolveStation(ctx, req.To, "to", inputErr)
	if q.origin != nil && q.dest != nil && q.origin.Code == q.dest.Code {
		inputErr.add("to", "must differ from the origin station")
	}

	if inputErr.hasErrors() {
		return nil, inputErr
	}

	q.depart = time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(),
		req.Time.Hour(), req.Time.Minute(), 0, 0, time.UTC)
	return q, nil
}

func (e *Engine) resolveStation(ctx context.Context, code, field string, inputErr *InputError) *models.Station {
	if code == "" {
		inputErr.add(field, "is required")
		return nil
	}
	station, err := e.source.Station(ctx, code)
	if err != nil {
		if errors.Is(err, ErrStationNotFound) {
			inputErr.add(field, "unknown station code")
		} else {
			inputErr.add(field, "could not be resolved")
			logging.LogError(e.logger, "station lookup failed", err, slog.String("code", code))
		}
		return nil
	}
	return station
}

func (e *Engine) run(ctx context.Context, q *query) *Result {
	diags := &diagnostics{}
	deadline := q.depart.Add(e.config.horizonFor(q.opts.MaxTransfers))

	var (
		fr        frontier
		seq       int
		visited   = map[visitedKey]float64{}
		finalized []models.Itinerary
		finalF    []float64
	)
	heap.Init(&fr)

	push := func(st *searchState) {
		f := st.g + e.heuristic.EstimateMinutes(st.station, q.dest)
		key := st.key(q.depart, e.config.VisitedBucket)
		if best, ok := visited[key]; ok && best <= f {
			return
		}
		visited[key] = f
		heap.Push(&fr, &frontierItem{state: st, f: f, g: st.g, seq: seq})
		seq++
	}

	push(&searchState{station: q.origin, arrival: q.depart})

	worstF := func() float64 {
		worst := finalF[0]
		for _, f := range finalF[1:] {
			if f > worst {
				worst = f
			}
		}
		return worst
	}

	cancelled := false
	for iterations := 0; fr.Len() > 0; iterations++ {
		if err := ctx.Err(); err != nil {
			cancelled = true
			break
		}
		if iterations >= e.config.MaxIterations {
			diags.addf("search stopped after %d iterations", iterations)
			break
		}

		item := heap.Pop(&fr).(*frontierItem)
		st := item.state

		if len(finalized) >= q.opts.TopK && item.f >= worstF() {
			break
		}
		if st.arrival.After(deadline) {
			continue
		}
		if best, ok := visited[st.key(q.depart, e.config.VisitedBucket)]; ok && best < item.f {
			continue // superseded while queued
		}

		if st.station.Code == q.dest.Code && len(st.path) > 0 {
			itin := models.Itinerary{Segments: st.path, Transfers: st.transfers}
			if isNewJourney(finalized, itin) {
				e.attachSeatClasses(ctx, &itin, diags)
				finalized = append(finalized, itin)
				finalF = append(finalF, item.f)
			}
			continue
		}

		for _, child := range e.expand(ctx, st, q, diags) {
			if child.arrival.After(deadline) {
				continue
			}
			push(child)
		}
	}

	ranked, fareIncomplete := Rank(finalized, q.opts.Preference, q.opts.TopK)

	res := &Result{
		Outcome:            OutcomeFound,
		Itineraries:        ranked,
		FareDataIncomplete: fareIncomplete,
		Diagnostics:        diags.entries,
	}
	switch {
	case cancelled:
		res.Outcome = OutcomeCancelled
	case len(ranked) == 0:
		res.Outcome = OutcomeNoRouteFound
	}
	return res
}

func isNewJourney(finalized []models.Itinerary, candidate models.Itinerary) bool {
	for i := range finalized {
		if finalized[i].SameJourney(candidate) {
			return false
		}
	}
	return true
}

// attachSeatClasses decorates each finalized segment with the seat classes
// available on its run date. Availability lookups are best effort; a failed
// lookup leaves the segment's classes empty rather than failing the search.
func (e *Engine) attachSeatClasses(ctx context.Context, itin *models.Itinerary, diags *diagnostics) {
	for i := range itin.Segments {
		seg := &itin.Segments[i]
		classes, err := e.source.SeatClassesAvailable(ctx, seg.TrainNumber, seg.RunDate(), seg.FromStation, seg.ToStation)
		if err != nil {
			diags.addf("train %s: seat availability: %v", seg.TrainNumber, err)
			continue
		}
		seg.SeatClasses = classes
	}
}
