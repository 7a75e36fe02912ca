package restapi

import (
	"encoding/json"
	"net/http"

	"railplan.onerail.org/internal/models"
)

func (api *RestAPI) sendJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		api.Logger.Error("failed to encode response", "error", err)
	}
}

func (api *RestAPI) sendOK(w http.ResponseWriter, data any) {
	api.sendJSON(w, http.StatusOK, models.NewOKResponse(data))
}
