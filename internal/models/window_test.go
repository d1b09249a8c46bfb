package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	tests := []struct {
		input   string
		want    Window
		wantErr bool
	}{
		{input: "today", want: WindowToday},
		{input: "week", want: WindowWeek},
		{input: "month", want: WindowMonth},
		{input: "year", wantErr: true},
		{input: "", wantErr: true},
		{input: "Today", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseWindow(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWindowBoundary(t *testing.T) {
	now := time.Date(2026, time.March, 15, 14, 30, 45, 0, time.UTC)

	assert.Equal(t, time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC), WindowToday.Boundary(now))
	assert.Equal(t, now.AddDate(0, 0, -7), WindowWeek.Boundary(now))
	assert.Equal(t, now.AddDate(0, 0, -30), WindowMonth.Boundary(now))
}

func TestWindowBoundaryMonotonic(t *testing.T) {
	// Wider windows reach further into the past, and no boundary is in
	// the future.
	now := time.Now()

	month := WindowMonth.Boundary(now)
	week := WindowWeek.Boundary(now)
	today := WindowToday.Boundary(now)

	assert.True(t, !month.After(week), "month boundary must not be after week boundary")
	assert.True(t, !week.After(today), "week boundary must not be after today boundary")
	assert.True(t, !today.After(now), "today boundary must not be after now")
}
