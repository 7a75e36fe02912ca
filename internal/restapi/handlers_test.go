package restapi

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"railplan.onerail.org/internal/app"
	"railplan.onerail.org/internal/appconf"
	"railplan.onerail.org/internal/models"
	"railplan.onerail.org/internal/routing"
	"railplan.onerail.org/internal/schedule"
	"railplan.onerail.org/scheduledb"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func newTestAPI(t *testing.T, config appconf.Config) http.Handler {
	t.Helper()
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	manager, err := schedule.InitManager(ctx, schedule.Config{DSN: ":memory:", Env: appconf.Test}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	client := manager.ScheduleDB
	require.NoError(t, client.InsertStations(ctx, []scheduledb.Station{
		{Code: "BCT", Name: "Mumbai Central"},
		{Code: "BRC", Name: "Vadodara Jn"},
		{Code: "NDLS", Name: "New Delhi"},
	}))
	require.NoError(t, client.InsertTrains(ctx, []scheduledb.Train{
		{Number: "12951", Name: "Mumbai Rajdhani", Classes: nullString("1A,2A,3A"), FarePaisePerKm: 150},
	}))
	require.NoError(t, client.InsertTrainStops(ctx, []scheduledb.TrainStop{
		{TrainNumber: "12951", StopSequence: 1, StationCode: "BCT", DepartureTime: nullString("17:00")},
		{TrainNumber: "12951", StopSequence: 2, StationCode: "BRC", ArrivalTime: nullString("21:45"), DepartureTime: nullString("21:55"), DistanceKm: 392},
		{TrainNumber: "12951", StopSequence: 3, StationCode: "NDLS", ArrivalTime: nullString("08:32"), DayOffset: 1, DistanceKm: 1384},
	}))
	require.NoError(t, manager.Reload(ctx))

	application := &app.Application{
		Config:   config,
		Logger:   logger,
		Schedule: manager,
		Engine:   routing.NewEngine(manager, routing.Config{}, logger),
	}
	return NewRestAPI(application).Handler()
}

func get(t *testing.T, handler http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) (int, json.RawMessage) {
	t.Helper()
	var envelope struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Code, envelope.Data
}

func decodeFieldErrors(t *testing.T, rec *httptest.ResponseRecorder) map[string][]string {
	t.Helper()
	var body struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.FieldErrors
}

func TestSearchEndpoint(t *testing.T) {
	handler := newTestAPI(t, appconf.Config{})

	rec := get(t, handler, "/api/v1/search?from=BCT&to=NDLS&date=2030-01-01&time=16:00")
	require.Equal(t, http.StatusOK, rec.Code)

	code, data := decodeEnvelope(t, rec)
	assert.Equal(t, http.StatusOK, code)

	var result searchResponseData
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "found", result.Outcome)
	require.Len(t, result.Itineraries, 1)

	itin := result.Itineraries[0]
	assert.Equal(t, 0, itin.Transfers)
	assert.Equal(t, "2030-01-01T17:00:00Z", itin.Departure)
	assert.Equal(t, "2030-01-02T08:32:00Z", itin.Arrival)
	require.Len(t, itin.Segments, 1)
	assert.Equal(t, "12951", itin.Segments[0].TrainNumber)
	require.NotNil(t, itin.TotalFarePaise)
	assert.Equal(t, int64(1384*150), *itin.TotalFarePaise)
}

func TestSearchEndpointNoRoute(t *testing.T) {
	handler := newTestAPI(t, appconf.Config{})

	// NDLS is the train's terminus; nothing departs from it.
	rec := get(t, handler, "/api/v1/search?from=NDLS&to=BCT&date=2030-01-01")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	var result searchResponseData
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "noRouteFound", result.Outcome)
	assert.Empty(t, result.Itineraries)
}

func TestSearchEndpointValidation(t *testing.T) {
	handler := newTestAPI(t, appconf.Config{})

	tests := []struct {
		name  string
		url   string
		field string
	}{
		{"missing from", "/api/v1/search?to=NDLS&date=2030-01-01", "from"},
		{"lowercase from", "/api/v1/search?from=bct&to=NDLS&date=2030-01-01", "from"},
		{"missing date", "/api/v1/search?from=BCT&to=NDLS", "date"},
		{"bad date", "/api/v1/search?from=BCT&to=NDLS&date=01-01-2030", "date"},
		{"bad time", "/api/v1/search?from=BCT&to=NDLS&date=2030-01-01&time=25:99", "time"},
		{"bad maxTransfers", "/api/v1/search?from=BCT&to=NDLS&date=2030-01-01&maxTransfers=two", "maxTransfers"},
		{"unknown station", "/api/v1/search?from=BCT&to=XXXX&date=2030-01-01", "to"},
		{"past date", "/api/v1/search?from=BCT&to=NDLS&date=2020-01-01", "date"},
		{"bad preference", "/api/v1/search?from=BCT&to=NDLS&date=2030-01-01&preference=scenic", "preference"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(t, handler, tc.url)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decodeFieldErrors(t, rec), tc.field)
		})
	}
}

func TestStationEndpoint(t *testing.T) {
	handler := newTestAPI(t, appconf.Config{})

	rec := get(t, handler, "/api/v1/stations/NDLS")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	var station models.StationResponse
	require.NoError(t, json.Unmarshal(data, &station))
	assert.Equal(t, "New Delhi", station.Name)

	rec = get(t, handler, "/api/v1/stations/NOPE")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = get(t, handler, "/api/v1/stations/nope1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStationSearchEndpoint(t *testing.T) {
	handler := newTestAPI(t, appconf.Config{})

	rec := get(t, handler, "/api/v1/stations?query=delhi")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	var stations []models.StationResponse
	require.NoError(t, json.Unmarshal(data, &stations))
	require.Len(t, stations, 1)
	assert.Equal(t, "NDLS", stations[0].Code)

	rec = get(t, handler, "/api/v1/stations?query=delhi&limit=0")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTrainEndpoint(t *testing.T) {
	handler := newTestAPI(t, appconf.Config{})

	rec := get(t, handler, "/api/v1/trains/12951")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	var train models.TrainResponse
	require.NoError(t, json.Unmarshal(data, &train))
	assert.Equal(t, "Mumbai Rajdhani", train.Name)
	assert.Equal(t, []string{"1A", "2A", "3A"}, train.Classes)
	require.Len(t, train.Stops, 3)
	assert.Equal(t, "17:00", train.Stops[0].Departure)
	assert.Equal(t, 1, train.Stops[2].DayOffset)

	rec = get(t, handler, "/api/v1/trains/99999")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthEndpoint(t *testing.T) {
	handler := newTestAPI(t, appconf.Config{})

	rec := get(t, handler, "/api/v1/health")
	require.Equal(t, http.StatusOK, rec.Code)

	_, data := decodeEnvelope(t, rec)
	var health healthResponseData
	require.NoError(t, json.Unmarshal(data, &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 3, health.Schedule.Stations)
	assert.Equal(t, 1, health.Schedule.Trains)
}

func TestRecoverPanicMiddleware(t *testing.T) {
	api := NewRestAPI(&app.Application{
		Logger: slog.New(slog.NewJSONHandler(io.Discard, nil)),
	})
	handler := api.recoverPanic(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "close", rec.Header().Get("Connection"))
}

func TestAPIKeyEnforcement(t *testing.T) {
	handler := newTestAPI(t, appconf.Config{ApiKeys: []string{"secret"}})

	rec := get(t, handler, "/api/v1/stations/NDLS")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = get(t, handler, "/api/v1/stations/NDLS?key=secret")
	assert.Equal(t, http.StatusOK, rec.Code)

	// Health probes run without credentials.
	rec = get(t, handler, "/api/v1/health")
	assert.Equal(t, http.StatusOK, rec.Code)
}
