package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestExtractParam(t *testing.T) {
	router := httprouter.New()
	var got string
	router.HandlerFunc(http.MethodGet, "/stations/:code", func(w http.ResponseWriter, r *http.Request) {
		got = ExtractParam(r, "code")
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/stations/NDLS", nil))
	assert.Equal(t, "NDLS", got)
}

func TestQueryInt(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/search?maxTransfers=2&topK=abc", nil)

	value, ok := QueryInt(r, "maxTransfers", 1)
	assert.True(t, ok)
	assert.Equal(t, 2, value)

	value, ok = QueryInt(r, "missing", 7)
	assert.True(t, ok)
	assert.Equal(t, 7, value)

	_, ok = QueryInt(r, "topK", 5)
	assert.False(t, ok)
}
