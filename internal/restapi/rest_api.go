package restapi

import (
	"railplan.onerail.org/internal/app"
)

// RestAPI hangs the HTTP handlers off the shared application dependencies.
type RestAPI struct {
	*app.Application
}

func NewRestAPI(app *app.Application) *RestAPI {
	return &RestAPI{Application: app}
}
