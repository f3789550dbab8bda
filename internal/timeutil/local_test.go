package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartOfDay(t *testing.T) {
	in := time.Date(2024, time.March, 5, 17, 42, 13, 0, Factory)
	got := StartOfDay(in)
	assert.Equal(t, "2024-03-05 00:00:00", got.Format(DateTimeLayout))
}

func TestStartOfMonth(t *testing.T) {
	in := time.Date(2024, time.March, 5, 17, 42, 13, 0, Factory)
	got := StartOfMonth(in)
	assert.Equal(t, "2024-03-01 00:00:00", got.Format(DateTimeLayout))
}

func TestParseEntryTime(t *testing.T) {
	cases := []struct {
		value string
		ok    bool
	}{
		{"2024-03-05 09:30:00", true},
		{"2024-03-05T09:30:00", true},
		{"2024-03-05", true},
		{"05.03.2024", false},
		{"garbage", false},
		{"", false},
	}
	for _, c := range cases {
		got, ok := ParseEntryTime(c.value)
		assert.Equal(t, c.ok, ok, c.value)
		if ok {
			assert.Equal(t, Factory, got.Location())
		}
	}
}

func TestParseEntryTimeRoundTrip(t *testing.T) {
	in := time.Date(2024, time.March, 5, 9, 30, 0, 0, Factory)
	got, ok := ParseEntryTime(in.Format(DateTimeLayout))
	require.True(t, ok)
	assert.True(t, got.Equal(in))
}
