package model_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/todoman/todoman/engine/todo/model"
)

func TestParseDate(t *testing.T) {
	t.Run("Should accept real calendar dates", func(t *testing.T) {
		for _, input := range []string{"2024-12-31", "2024-02-29", "1999-01-01"} {
			d, err := model.ParseDate(input)
			require.NoError(t, err, input)
			assert.Equal(t, input, d.String())
		}
	})
	t.Run("Should reject anything that is not a valid YYYY-MM-DD date", func(t *testing.T) {
		invalid := []string{
			"2024-13-01",          // month out of range
			"2024-02-30",          // day out of range
			"2023-02-29",          // not a leap year
			"31-12-2024",          // wrong field order
			"2024/12/31",          // slashes
			"2024-12-31T00:00:00", // datetime
			"24-12-31",            // two-digit year
			"20245-12-31",         // five-digit year
			"2024-1-01",           // unpadded month
			"",
		}
		for _, input := range invalid {
			_, err := model.ParseDate(input)
			assert.Error(t, err, input)
		}
	})
}

func TestDate_JSON(t *testing.T) {
	t.Run("Should round-trip through JSON as a YYYY-MM-DD string", func(t *testing.T) {
		d := model.NewDate(2024, time.December, 31)
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.Equal(t, `"2024-12-31"`, string(data))

		var decoded model.Date
		require.NoError(t, json.Unmarshal(data, &decoded))
		assert.Equal(t, d, decoded)
	})
	t.Run("Should reject non-string JSON values", func(t *testing.T) {
		var d model.Date
		assert.Error(t, json.Unmarshal([]byte(`20241231`), &d))
		assert.Error(t, json.Unmarshal([]byte(`true`), &d))
		assert.Error(t, json.Unmarshal([]byte(`["2024-12-31"]`), &d))
	})
}

func TestDate_Scan(t *testing.T) {
	t.Run("Should scan a time.Time from the store", func(t *testing.T) {
		var d model.Date
		require.NoError(t, d.Scan(time.Date(2024, time.June, 1, 13, 45, 0, 0, time.Local)))
		assert.Equal(t, "2024-06-01", d.String())
	})
	t.Run("Should scan a string from the store", func(t *testing.T) {
		var d model.Date
		require.NoError(t, d.Scan("2024-06-01"))
		assert.Equal(t, "2024-06-01", d.String())
	})
	t.Run("Should reject unsupported source types", func(t *testing.T) {
		var d model.Date
		assert.Error(t, d.Scan(20240601))
	})
}
