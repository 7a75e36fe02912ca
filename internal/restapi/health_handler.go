package restapi

import (
	"net/http"

	"railplan.onerail.org/internal/schedule"
)

type healthResponseData struct {
	Status   string         `json:"status"`
	Database string         `json:"database"`
	Schedule schedule.Stats `json:"schedule"`
}

// healthHandler serves GET /api/v1/health. It reports degraded rather than
// failing when the database is unreachable, since searches keep working from
// the in-memory schedule.
func (api *RestAPI) healthHandler(w http.ResponseWriter, r *http.Request) {
	data := healthResponseData{
		Status:   "ok",
		Database: "ok",
		Schedule: api.Schedule.Stats(),
	}

	if err := api.Schedule.ScheduleDB.Ping(r.Context()); err != nil {
		data.Status = "degraded"
		data.Database = "unreachable"
	}

	api.sendOK(w, data)
}
