package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSONRoundTrip(t *testing.T) {
	d := NewDate(2030, time.January, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2030-01-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))
}

func TestDate_UnmarshalJSON_Invalid(t *testing.T) {
	var d Date
	err := json.Unmarshal([]byte(`"01/02/2030"`), &d)
	assert.Error(t, err)
}

func TestDate_Scan(t *testing.T) {
	tests := []struct {
		name string
		src  interface{}
		want string
	}{
		{"time value", time.Date(1995, time.July, 20, 13, 45, 0, 0, time.UTC), "1995-07-20"},
		{"date string", "1995-07-20", "1995-07-20"},
		{"timestamp string", "1995-07-20 00:00:00", "1995-07-20"},
		{"byte slice", []byte("1995-07-20"), "1995-07-20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			require.NoError(t, d.Scan(tt.src))
			assert.Equal(t, tt.want, d.String())
		})
	}

	t.Run("unsupported type", func(t *testing.T) {
		var d Date
		assert.Error(t, d.Scan(42))
	})
}

func TestDate_AddDays(t *testing.T) {
	d := NewDate(2026, time.February, 26)

	assert.Equal(t, "2026-03-05", d.AddDays(7).String())
	assert.Equal(t, "2026-02-25", d.AddDays(-1).String())
}

func TestDateOf_TruncatesTime(t *testing.T) {
	d := DateOf(time.Date(2026, time.August, 30, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2026-08-30", d.String())

	h, m, s := d.Clock()
	assert.Zero(t, h)
	assert.Zero(t, m)
	assert.Zero(t, s)
}
