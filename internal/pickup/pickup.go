package pickup

import "time"

const (
	Horizon    = 7 * 24 * time.Hour
	DailyStart = 8
	DailyEnd   = 20
)

type Window struct {
	Earliest   time.Time
	Latest     time.Time
	DailyStart time.Duration
	DailyEnd   time.Duration
}

// Scheduler validates requested pickup times against a rolling window that
// starts now, spans Horizon, and only allows DailyStart:00 through DailyEnd:00
// in the configured location.
type Scheduler struct {
	loc *time.Location
	now func() time.Time
}

func NewScheduler(loc *time.Location, now func() time.Time) *Scheduler {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &Scheduler{loc: loc, now: now}
}

func (s *Scheduler) Window() Window {
	now := s.now()
	return Window{
		Earliest:   now,
		Latest:     now.Add(Horizon),
		DailyStart: DailyStart * time.Hour,
		DailyEnd:   DailyEnd * time.Hour,
	}
}

func (s *Scheduler) Validate(candidate time.Time) bool {
	w := s.Window()
	if candidate.Before(w.Earliest) || candidate.After(w.Latest) {
		return false
	}

	local := candidate.In(s.loc)
	hour := local.Hour()
	if hour < DailyStart {
		return false
	}
	// 20:00:00 itself is still a valid slot, anything after it is not.
	if hour > DailyEnd {
		return false
	}
	if hour == DailyEnd {
		return local.Minute() == 0 && local.Second() == 0 && local.Nanosecond() == 0
	}
	return true
}

// ValidateString parses an RFC 3339 timestamp; unparseable input is invalid.
func (s *Scheduler) ValidateString(candidate string) bool {
	t, err := time.Parse(time.RFC3339, candidate)
	if err != nil {
		return false
	}
	return s.Validate(t)
}

func (s *Scheduler) Location() *time.Location {
	return s.loc
}
