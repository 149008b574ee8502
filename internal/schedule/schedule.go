// Package schedule evaluates the store's weekly operating hours: whether the
// store is open at a given moment and, when closed, the next opening moment.
// Evaluation is a pure function of (schedule, time) so the public status
// endpoint can poll it at any rate.
package schedule

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Session is one contiguous open/close window within a single day.
// Times are 24-hour "HH:MM" wall-clock strings; a session never spans
// midnight (open < close).
type Session struct {
	Open  string `json:"open" validate:"required"`
	Close string `json:"close" validate:"required"`
}

// Weekly maps each weekday to its ordered session list. An empty (or nil)
// list means closed all day. Field order matches time.Weekday numbering.
type Weekly struct {
	Sunday    []Session `json:"sunday"`
	Monday    []Session `json:"monday"`
	Tuesday   []Session `json:"tuesday"`
	Wednesday []Session `json:"wednesday"`
	Thursday  []Session `json:"thursday"`
	Friday    []Session `json:"friday"`
	Saturday  []Session `json:"saturday"`
}

// NextOpening names the first upcoming session when the store is closed.
type NextOpening struct {
	Day     time.Weekday `json:"day"`
	Session Session      `json:"session"`
}

// Status is the result of evaluating a Weekly schedule at one moment.
type Status struct {
	IsOpen        bool     `json:"isOpen"`
	ActiveSession *Session `json:"activeSession,omitempty"`
	// NextOpen is nil when the schedule has no session in the next 7 days;
	// callers must treat that as closed indefinitely.
	NextOpen *NextOpening `json:"nextOpen,omitempty"`
}

// Day returns the session list for d.
func (w *Weekly) Day(d time.Weekday) []Session {
	switch d {
	case time.Sunday:
		return w.Sunday
	case time.Monday:
		return w.Monday
	case time.Tuesday:
		return w.Tuesday
	case time.Wednesday:
		return w.Wednesday
	case time.Thursday:
		return w.Thursday
	case time.Friday:
		return w.Friday
	default:
		return w.Saturday
	}
}

// Validate checks every session's clock format and the open < close
// invariant. It does not reject overlapping sessions within a day; the
// evaluator simply honors the first match.
func (w *Weekly) Validate() error {
	for d := time.Sunday; d <= time.Saturday; d++ {
		for i, s := range w.Day(d) {
			open, err := parseClock(s.Open)
			if err != nil {
				return fmt.Errorf("%s sesi %d: %w", strings.ToLower(d.String()), i+1, err)
			}
			closeAt, err := parseClock(s.Close)
			if err != nil {
				return fmt.Errorf("%s sesi %d: %w", strings.ToLower(d.String()), i+1, err)
			}
			if open >= closeAt {
				return fmt.Errorf("%s sesi %d: jam buka %s harus sebelum jam tutup %s",
					strings.ToLower(d.String()), i+1, s.Open, s.Close)
			}
		}
	}
	return nil
}

// Evaluate reports the open/closed status at now. A moment exactly at a
// session's open time is open; exactly at its close time is closed
// (half-open interval). When closed, the remaining sessions today and then
// each following day — wrapping after Saturday — are scanned up to 7 days
// ahead for the next opening.
func (w *Weekly) Evaluate(now time.Time) Status {
	day := now.Weekday()
	t := now.Hour()*60 + now.Minute()

	today := w.Day(day)
	for i := range today {
		s := today[i]
		open, err1 := parseClock(s.Open)
		closeAt, err2 := parseClock(s.Close)
		if err1 != nil || err2 != nil {
			continue
		}
		if t >= open && t < closeAt {
			return Status{IsOpen: true, ActiveSession: &s}
		}
	}

	// Closed: first later session today wins.
	for _, s := range today {
		if open, err := parseClock(s.Open); err == nil && open > t {
			return Status{NextOpen: &NextOpening{Day: day, Session: s}}
		}
	}

	// Then the following days, wrapping Saturday → Sunday.
	for offset := 1; offset <= 7; offset++ {
		d := (day + time.Weekday(offset)) % 7
		if sessions := w.Day(d); len(sessions) > 0 {
			return Status{NextOpen: &NextOpening{Day: d, Session: sessions[0]}}
		}
	}

	// No session anywhere in the week.
	return Status{}
}

// parseClock converts "HH:MM" to minutes since midnight.
func parseClock(v string) (int, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("format jam %q tidak valid, gunakan HH:MM", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("format jam %q tidak valid, gunakan HH:MM", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("format jam %q tidak valid, gunakan HH:MM", v)
	}
	return h*60 + m, nil
}

// Default is the schedule seeded for a new store: split morning/afternoon
// sessions on weekdays, a single Saturday session, closed on Sunday.
func Default() Weekly {
	weekday := []Session{{Open: "08:00", Close: "12:00"}, {Open: "16:00", Close: "19:00"}}
	return Weekly{
		Monday:    weekday,
		Tuesday:   weekday,
		Wednesday: weekday,
		Thursday:  weekday,
		Friday:    weekday,
		Saturday:  []Session{{Open: "08:00", Close: "15:00"}},
	}
}
