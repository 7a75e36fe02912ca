package utils

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a named path parameter from the request context.
func ExtractParam(r *http.Request, name string) string {
	params := httprouter.ParamsFromContext(r.Context())
	return params.ByName(name)
}

// QueryInt parses an integer query parameter, returning def when the
// parameter is absent. ok is false when a value is present but malformed.
func QueryInt(r *http.Request, name string, def int) (value int, ok bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def, false
	}
	return n, true
}
