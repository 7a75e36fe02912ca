package restapi

import (
	"net/http"

	"railplan.onerail.org/internal/models"
	"railplan.onerail.org/internal/utils"
)

// trainHandler serves GET /api/v1/trains/:number.
func (api *RestAPI) trainHandler(w http.ResponseWriter, r *http.Request) {
	number := utils.ExtractParam(r, "number")
	if err := utils.ValidateTrainNumber(number); err != nil {
		api.validationErrorResponse(w, r, map[string][]string{"number": {err.Error()}})
		return
	}

	train := api.Schedule.TrainByNumber(number)
	if train == nil {
		api.notFoundResponse(w, r)
		return
	}

	api.sendOK(w, models.NewTrainResponse(train))
}
