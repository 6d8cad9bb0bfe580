package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "worktime/pkg/domain-errors"
)

func TestParseDate(t *testing.T) {
	t.Run("accepts calendar date", func(t *testing.T) {
		d, err := ParseDate("2024-03-15")
		require.NoError(t, err)
		assert.Equal(t, DateOf(2024, time.March, 15), d)
		assert.Equal(t, "2024-03-15", d.String())
	})

	t.Run("rejects timestamps", func(t *testing.T) {
		_, err := ParseDate("2024-03-15T10:00:00Z")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects impossible day", func(t *testing.T) {
		_, err := ParseDate("2024-02-30")
		require.Error(t, err)
	})
}

func TestDate_Window(t *testing.T) {
	d := DateOf(2024, time.March, 15)

	start, end := d.Window(nil)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), end)

	madrid, err := time.LoadLocation("Europe/Madrid")
	require.NoError(t, err)
	start, end = d.Window(madrid)
	assert.Equal(t, time.Date(2024, 3, 14, 23, 0, 0, 0, time.UTC), start.UTC())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}

func TestDate_Arithmetic(t *testing.T) {
	d := DateOf(2024, time.January, 1)
	assert.Equal(t, DateOf(2023, time.December, 31), d.AddDays(-1))
	assert.Equal(t, 74, DateOf(2024, time.March, 15).DaysSince(d))
	assert.Equal(t, d, DateOf(2024, time.August, 9).StartOfYear())
	assert.Equal(t, "2024-01", d.YearMonth())
	assert.True(t, d.Before(d.AddDays(1)))
}

func TestDate_JSON(t *testing.T) {
	type payload struct {
		Date Date `json:"date"`
	}
	b, err := json.Marshal(payload{Date: DateOf(2024, time.May, 2)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-05-02"}`, string(b))

	var out payload
	require.NoError(t, json.Unmarshal([]byte(`{"date":"2024-05-03"}`), &out))
	assert.Equal(t, DateOf(2024, time.May, 3), out.Date)

	require.Error(t, json.Unmarshal([]byte(`{"date":"tomorrow"}`), &out))
}
