package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	want := time.Date(2023, time.June, 15, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		input string
	}{
		{"iso date", "2023-06-15"},
		{"padded", "  2023-06-15 "},
		{"rfc3339", "2023-06-15T18:30:00Z"},
		{"rfc3339 with offset keeps local day", "2023-06-15T23:30:00-05:00"},
		{"local datetime", "2023-06-15T08:00:00"},
		{"canonical", "Thu Jun 15 2023"},
		{"long month", "June 15, 2023"},
		{"short month", "Jun 15, 2023"},
		{"us slashes", "06/15/2023"},
		{"unpadded iso", "2023-6-15"},
		{"unpadded us slashes", "6/15/2023"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			require.NoError(t, err)
			assert.True(t, want.Equal(got), "got %v", got)
		})
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, input := range []string{"", "   ", "not a date", "2023-13-01", "2023-02-30", "15/06/2023"} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2023-01-01")
	require.NoError(t, err)
	assert.Equal(t, "Sun Jan 01 2023", got)

	// Canonical strings round-trip unchanged.
	got, err = NormalizeDate("Sun Dec 31 2023")
	require.NoError(t, err)
	assert.Equal(t, "Sun Dec 31 2023", got)

	_, err = NormalizeDate("yesterday")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestNewLogIsEmpty(t *testing.T) {
	l := NewLog(&User{ID: "42", Username: "alice"})
	assert.Equal(t, "42", l.ID)
	assert.Equal(t, "alice", l.Username)
	assert.Equal(t, 0, l.Count)
	assert.NotNil(t, l.Entries)
	assert.Empty(t, l.Entries)
}
