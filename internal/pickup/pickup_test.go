package pickup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_Validate(t *testing.T) {
	now := time.Date(2026, 10, 18, 10, 30, 0, 0, time.UTC)
	s := NewScheduler(time.UTC, func() time.Time { return now })

	testCases := []struct {
		name      string
		candidate time.Time
		want      bool
	}{
		{name: "later today", candidate: time.Date(2026, 10, 18, 18, 0, 0, 0, time.UTC), want: true},
		{name: "exactly now", candidate: now, want: true},
		{name: "in the past", candidate: now.Add(-time.Minute), want: false},
		{name: "exactly 08:00", candidate: time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC), want: true},
		{name: "07:59", candidate: time.Date(2026, 10, 19, 7, 59, 0, 0, time.UTC), want: false},
		{name: "exactly 20:00", candidate: time.Date(2026, 10, 19, 20, 0, 0, 0, time.UTC), want: true},
		{name: "20:00:30", candidate: time.Date(2026, 10, 19, 20, 0, 30, 0, time.UTC), want: false},
		{name: "20:00 and a nanosecond", candidate: time.Date(2026, 10, 19, 20, 0, 0, 1, time.UTC), want: false},
		{name: "19:59:59", candidate: time.Date(2026, 10, 19, 19, 59, 59, 0, time.UTC), want: true},
		{name: "20:01", candidate: time.Date(2026, 10, 19, 20, 1, 0, 0, time.UTC), want: false},
		{name: "late night", candidate: time.Date(2026, 10, 19, 23, 0, 0, 0, time.UTC), want: false},
		{name: "six days ahead", candidate: time.Date(2026, 10, 24, 12, 0, 0, 0, time.UTC), want: true},
		{name: "exactly seven days", candidate: now.Add(Horizon), want: true},
		{name: "past the horizon", candidate: now.Add(Horizon + time.Minute), want: false},
		{name: "in ten days", candidate: time.Date(2026, 10, 28, 12, 0, 0, 0, time.UTC), want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.Validate(tc.candidate))
		})
	}
}

func TestScheduler_ValidateUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2026, 10, 18, 6, 0, 0, 0, time.UTC)
	s := NewScheduler(loc, func() time.Time { return now })

	// 06:00 UTC is 09:00 local
	assert.True(t, s.Validate(time.Date(2026, 10, 18, 6, 0, 0, 0, time.UTC)))
	// 18:00 UTC is 21:00 local
	assert.False(t, s.Validate(time.Date(2026, 10, 18, 18, 0, 0, 0, time.UTC)))
}

func TestScheduler_ValidateString(t *testing.T) {
	now := time.Date(2026, 10, 18, 10, 30, 0, 0, time.UTC)
	s := NewScheduler(time.UTC, func() time.Time { return now })

	assert.True(t, s.ValidateString("2026-10-19T12:00:00Z"))
	assert.False(t, s.ValidateString("tomorrow at noon"))
	assert.False(t, s.ValidateString(""))
	assert.False(t, s.ValidateString("2026-10-28T12:00:00Z"))
}

func TestScheduler_Window(t *testing.T) {
	now := time.Date(2026, 10, 18, 10, 30, 0, 0, time.UTC)
	w := NewScheduler(nil, func() time.Time { return now }).Window()

	assert.Equal(t, now, w.Earliest)
	assert.Equal(t, now.Add(7*24*time.Hour), w.Latest)
	assert.Equal(t, 8*time.Hour, w.DailyStart)
	assert.Equal(t, 20*time.Hour, w.DailyEnd)
}
