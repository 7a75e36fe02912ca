package restapi

import (
	"errors"
	"net/http"
	"time"

	"railplan.onerail.org/internal/models"
	"railplan.onerail.org/internal/routing"
	"railplan.onerail.org/internal/utils"
)

type searchResponseData struct {
	Outcome            string                     `json:"outcome"`
	Itineraries        []models.ItineraryResponse `json:"itineraries"`
	FareDataIncomplete bool                       `json:"fareDataIncomplete,omitempty"`
	Diagnostics        []string                   `json:"diagnostics,omitempty"`
}

// searchHandler serves GET /api/v1/search. Parameter shape errors are caught
// here; semantic errors (unknown stations, past dates) come back from the
// engine as field errors too, so clients see one uniform 400 format.
func (api *RestAPI) searchHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fieldErrors := make(map[string][]string)
	addError := func(field, message string) {
		fieldErrors[field] = append(fieldErrors[field], message)
	}

	from := q.Get("from")
	if err := utils.ValidateStationCode(from); err != nil {
		addError("from", err.Error())
	}
	to := q.Get("to")
	if err := utils.ValidateStationCode(to); err != nil {
		addError("to", err.Error())
	}

	var date time.Time
	if raw := q.Get("date"); raw == "" {
		addError("date", "is required")
	} else if parsed, err := utils.ParseDate(raw); err != nil {
		addError("date", err.Error())
	} else {
		date = parsed
	}

	// Departure time defaults to midnight when omitted.
	var departTime models.ClockTime
	if raw := q.Get("time"); raw != "" {
		parsed, err := models.ParseClockTime(raw)
		if err != nil {
			addError("time", "must be HH:MM")
		} else {
			departTime = parsed
		}
	}

	opts := routing.DefaultOptions()
	if v, ok := utils.QueryInt(r, "maxTransfers", opts.MaxTransfers); !ok {
		addError("maxTransfers", "must be an integer")
	} else {
		opts.MaxTransfers = v
	}
	if v, ok := utils.QueryInt(r, "topK", opts.TopK); !ok {
		addError("topK", "must be an integer")
	} else {
		opts.TopK = v
	}
	if raw := q.Get("preference"); raw != "" {
		opts.Preference = routing.Preference(raw)
	}
	opts.SeatClassFilter = q.Get("seatClass")

	if len(fieldErrors) > 0 {
		api.validationErrorResponse(w, r, fieldErrors)
		return
	}

	result, err := api.Engine.Search(r.Context(), routing.Request{
		From:    from,
		To:      to,
		Date:    date,
		Time:    departTime,
		Options: opts,
	})
	if err != nil {
		var inputErr *routing.InputError
		if errors.As(err, &inputErr) {
			api.validationErrorResponse(w, r, inputErr.FieldErrors)
			return
		}
		api.serverErrorResponse(w, r, err)
		return
	}

	data := searchResponseData{
		Outcome:            string(result.Outcome),
		Itineraries:        make([]models.ItineraryResponse, 0, len(result.Itineraries)),
		FareDataIncomplete: result.FareDataIncomplete,
		Diagnostics:        result.Diagnostics,
	}
	for _, itin := range result.Itineraries {
		data.Itineraries = append(data.Itineraries, models.NewItineraryResponse(itin))
	}

	api.sendOK(w, data)
}
