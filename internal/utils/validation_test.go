package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateStationCode(t *testing.T) {
	assert.NoError(t, ValidateStationCode("NDLS"))
	assert.NoError(t, ValidateStationCode("C"))

	assert.Error(t, ValidateStationCode(""))
	assert.Error(t, ValidateStationCode("ndls"))
	assert.Error(t, ValidateStationCode("NDLS1"))
	assert.Error(t, ValidateStationCode("WAYTOOLONGCODE"))
	assert.Error(t, ValidateStationCode("ND LS"))
}

func TestValidateTrainNumber(t *testing.T) {
	assert.NoError(t, ValidateTrainNumber("12951"))
	assert.NoError(t, ValidateTrainNumber("12951A"))
	assert.NoError(t, ValidateTrainNumber("EMU-401"))

	assert.Error(t, ValidateTrainNumber(""))
	assert.Error(t, ValidateTrainNumber("12951;DROP"))
	assert.Error(t, ValidateTrainNumber("<script>"))
}

func TestValidateQuery(t *testing.T) {
	assert.NoError(t, ValidateQuery(""))
	assert.NoError(t, ValidateQuery("new delhi"))

	long := make([]byte, 201)
	for i := range long {
		long[i] = 'a'
	}
	assert.Error(t, ValidateQuery(string(long)))
	assert.Error(t, ValidateQuery("x--"))
	assert.Error(t, ValidateQuery("<img>"))
}

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC), date)

	_, err = ParseDate("01-09-2026")
	assert.Error(t, err)
	_, err = ParseDate("2026-13-01")
	assert.Error(t, err)
	_, err = ParseDate("")
	assert.Error(t, err)
}
