package entities

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSONRoundTrip(t *testing.T) {
	d := NewDate(time.Date(2026, 8, 30, 15, 4, 5, 0, time.UTC))

	out, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-30"`, string(out))

	var parsed Date
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-30"`), &parsed))
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), parsed.Time)
}

func TestDateUnmarshalRejectsOtherLayouts(t *testing.T) {
	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"30-08-2026"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`"2026-08-30T00:00:00Z"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`42`), &d))
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2026, 8, 30, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, d.Scan("2026-08-30"))
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), d.Time)

	require.NoError(t, d.Scan("2026-08-30 00:00:00+00:00"))
	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), d.Time)

	assert.Error(t, d.Scan("not a date"))
}
