package app

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"railplan.onerail.org/internal/appconf"
)

func TestBlankKeyIsInvalid(t *testing.T) {
	app := &Application{
		Config: appconf.Config{ApiKeys: []string{"key"}},
	}
	assert.True(t, app.IsInvalidAPIKey(""))
	assert.True(t, app.IsInvalidAPIKey("wrong"))
	assert.False(t, app.IsInvalidAPIKey("key"))
}

func TestEmptyKeyListDisablesCheck(t *testing.T) {
	app := &Application{Config: appconf.Config{}}

	r := httptest.NewRequest("GET", "/api/v1/search", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))
}

func TestRequestKeyExtraction(t *testing.T) {
	app := &Application{
		Config: appconf.Config{ApiKeys: []string{"secret"}},
	}

	r := httptest.NewRequest("GET", "/api/v1/search?key=secret", nil)
	assert.False(t, app.RequestHasInvalidAPIKey(r))

	r = httptest.NewRequest("GET", "/api/v1/search", nil)
	assert.True(t, app.RequestHasInvalidAPIKey(r))
}
