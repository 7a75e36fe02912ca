package restapi

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
)

type handlerFunc func(w http.ResponseWriter, r *http.Request)

func validateAPIKey(api *RestAPI, finalHandler handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if api.RequestHasInvalidAPIKey(r) {
			api.invalidAPIKeyResponse(w, r)
			return
		}
		finalHandler(w, r)
	}
}

// Handler builds the full HTTP handler chain: routing, CORS, and request
// logging. The health endpoint skips API key validation so probes need no
// credentials.
func (api *RestAPI) Handler() http.Handler {
	router := httprouter.New()

	router.HandlerFunc(http.MethodGet, "/api/v1/search", validateAPIKey(api, api.searchHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/stations", validateAPIKey(api, api.stationSearchHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/stations/:code", validateAPIKey(api, api.stationHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/trains/:number", validateAPIKey(api, api.trainHandler))
	router.HandlerFunc(http.MethodGet, "/api/v1/health", api.healthHandler)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: api.Config.CORSAllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}).Handler(router)

	return NewRequestLoggingMiddleware(api.Logger)(api.recoverPanic(corsHandler))
}
