package restapi

import (
	"net/http"

	"railplan.onerail.org/internal/models"
)

// invalidAPIKeyResponse sends a 401 Unauthorized response for requests whose
// key query parameter is missing or unknown.
func (api *RestAPI) invalidAPIKeyResponse(w http.ResponseWriter, _ *http.Request) {
	api.sendJSON(w, http.StatusUnauthorized, models.ResponseModel{
		Code:        http.StatusUnauthorized,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "permission denied",
		Version:     1,
	})
}

func (api *RestAPI) serverErrorResponse(w http.ResponseWriter, _ *http.Request, err error) {
	api.Logger.Error("internal server error", "error", err)
	api.sendJSON(w, http.StatusInternalServerError, models.ResponseModel{
		Code:        http.StatusInternalServerError,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "internal server error",
		Version:     1,
	})
}

func (api *RestAPI) notFoundResponse(w http.ResponseWriter, _ *http.Request) {
	api.sendJSON(w, http.StatusNotFound, models.ResponseModel{
		Code:        http.StatusNotFound,
		CurrentTime: models.ResponseCurrentTime(),
		Text:        "resource not found",
		Version:     1,
	})
}

// validationErrorResponse sends a 400 Bad Request response with
// field-specific validation errors
func (api *RestAPI) validationErrorResponse(w http.ResponseWriter, _ *http.Request, fieldErrors map[string][]string) {
	response := struct {
		FieldErrors map[string][]string `json:"fieldErrors"`
	}{
		FieldErrors: fieldErrors,
	}
	api.sendJSON(w, http.StatusBadRequest, response)
}
