package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	want := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
	}{
		{name: "native object", input: `{"seconds": 1706745600, "nanoseconds": 0}`},
		{name: "export object", input: `{"_seconds": 1706745600, "_nanoseconds": 0}`},
		{name: "epoch millis", input: `1706745600000`},
		{name: "rfc3339", input: `"2024-02-01T00:00:00Z"`},
		{name: "date only", input: `"2024-02-01"`},
		{name: "millis as string", input: `"1706745600000"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ts Timestamp
			require.NoError(t, json.Unmarshal([]byte(tt.input), &ts))
			assert.True(t, want.Equal(ts.Time), "got %s", ts.Time)
		})
	}
}

func TestTimestamp_UnmarshalJSON_Null(t *testing.T) {
	var ts Timestamp
	require.NoError(t, json.Unmarshal([]byte(`null`), &ts))
	assert.True(t, ts.IsZero())
}

func TestTimestamp_UnmarshalJSON_Invalid(t *testing.T) {
	var ts Timestamp
	assert.ErrorIs(t, json.Unmarshal([]byte(`"yesterday"`), &ts), ErrInvalidTimestamp)
	assert.ErrorIs(t, json.Unmarshal([]byte(`{"foo": 1}`), &ts), ErrInvalidTimestamp)
}

func TestTimestamp_Scan(t *testing.T) {
	native := time.Date(2024, 2, 7, 10, 30, 0, 0, time.UTC)

	var ts Timestamp
	require.NoError(t, ts.Scan(native))
	assert.True(t, native.Equal(ts.Time))

	require.NoError(t, ts.Scan([]byte("2024-02-07 10:30:00")))
	assert.True(t, native.Equal(ts.Time))

	require.NoError(t, ts.Scan(native.UnixMilli()))
	assert.True(t, native.Equal(ts.Time))

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.ErrorIs(t, ts.Scan(3.14), ErrInvalidTimestamp)
}

func TestTimestamp_MarshalJSON(t *testing.T) {
	ts := NewTimestamp(time.Date(2024, 2, 1, 9, 0, 0, 0, time.UTC))
	b, err := json.Marshal(ts)
	require.NoError(t, err)
	assert.Equal(t, `"2024-02-01T09:00:00Z"`, string(b))

	b, err = json.Marshal(Timestamp{})
	require.NoError(t, err)
	assert.Equal(t, `null`, string(b))
}
