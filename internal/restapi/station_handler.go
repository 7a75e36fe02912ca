package restapi

import (
	"errors"
	"net/http"

	"railplan.onerail.org/internal/models"
	"railplan.onerail.org/internal/routing"
	"railplan.onerail.org/internal/utils"
)

// stationHandler serves GET /api/v1/stations/:code.
func (api *RestAPI) stationHandler(w http.ResponseWriter, r *http.Request) {
	code := utils.ExtractParam(r, "code")
	if err := utils.ValidateStationCode(code); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"code": {err.Error()}})
		return
	}

	station, err := api.Schedule.Station(r.Context(), code)
	if err != nil {
		if errors.Is(err, routing.ErrStationNotFound) {
			api.notFoundResponse(w, r)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	api.sendOK(w, models.NewStationResponse(station))
}

// stationSearchHandler serves GET /api/v1/stations?query=...&limit=n.
func (api *RestAPI) stationSearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if err := utils.ValidateQuery(query); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"query": {err.Error()}})
		return
	}

	limit, ok := utils.QueryInt(r, "limit", 20)
	if !ok || limit < 1 || limit > 100 {
		api.validationErrorResponse(w, r, map[string][]string{"limit": {"must be an integer between 1 and 100"}})
		return
	}

	matches := api.Schedule.FindStations(query, limit)
	stations := make([]models.StationResponse, 0, len(matches))
	for _, station := range matches {
		stations = append(stations, models.NewStationResponse(station))
	}

	api.sendOK(w, stations)
}
