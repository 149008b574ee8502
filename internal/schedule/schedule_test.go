package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// at builds a time on the given weekday (using a known reference week)
// at hour:min. 2025-06-01 is a Sunday.
func at(day time.Weekday, hour, min int) time.Time {
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, int(day)).Add(
		time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

func splitDay() []Session {
	return []Session{{Open: "08:00", Close: "12:00"}, {Open: "16:00", Close: "19:00"}}
}

func TestEvaluate_OpenDuringSession(t *testing.T) {
	w := Weekly{Monday: splitDay()}

	st := w.Evaluate(at(time.Monday, 10, 0))
	assert.True(t, st.IsOpen)
	require.NotNil(t, st.ActiveSession)
	assert.Equal(t, Session{Open: "08:00", Close: "12:00"}, *st.ActiveSession)
	assert.Nil(t, st.NextOpen)
}

func TestEvaluate_HalfOpenBoundaries(t *testing.T) {
	w := Weekly{Monday: splitDay()}

	// Exactly at open is open.
	assert.True(t, w.Evaluate(at(time.Monday, 8, 0)).IsOpen)
	// Exactly at close is closed.
	st := w.Evaluate(at(time.Monday, 12, 0))
	assert.False(t, st.IsOpen)
	require.NotNil(t, st.NextOpen)
	assert.Equal(t, "16:00", st.NextOpen.Session.Open)
}

func TestEvaluate_BetweenSessionsSameDay(t *testing.T) {
	w := Weekly{Monday: splitDay()}

	st := w.Evaluate(at(time.Monday, 14, 0))
	assert.False(t, st.IsOpen)
	require.NotNil(t, st.NextOpen)
	assert.Equal(t, time.Monday, st.NextOpen.Day)
	assert.Equal(t, Session{Open: "16:00", Close: "19:00"}, st.NextOpen.Session)
}

func TestEvaluate_NextOpenRollsToNextDay(t *testing.T) {
	w := Weekly{
		Monday:  splitDay(),
		Tuesday: []Session{{Open: "09:00", Close: "17:00"}},
	}

	st := w.Evaluate(at(time.Monday, 20, 0))
	assert.False(t, st.IsOpen)
	require.NotNil(t, st.NextOpen)
	assert.Equal(t, time.Tuesday, st.NextOpen.Day)
	assert.Equal(t, "09:00", st.NextOpen.Session.Open)
}

func TestEvaluate_WrapsSaturdayToSunday(t *testing.T) {
	// Open only on Sunday; a Monday query must wrap the whole week
	// forward and land on next Sunday, six days ahead.
	w := Weekly{Sunday: []Session{{Open: "10:00", Close: "14:00"}}}

	st := w.Evaluate(at(time.Monday, 9, 0))
	assert.False(t, st.IsOpen)
	require.NotNil(t, st.NextOpen)
	assert.Equal(t, time.Sunday, st.NextOpen.Day)
	assert.Equal(t, "10:00", st.NextOpen.Session.Open)
}

func TestEvaluate_SameDayNextWeek(t *testing.T) {
	// Open only on Wednesday, queried Wednesday after close: the search
	// wraps a full 7 days back to Wednesday's first session.
	w := Weekly{Wednesday: []Session{{Open: "08:00", Close: "12:00"}}}

	st := w.Evaluate(at(time.Wednesday, 13, 0))
	assert.False(t, st.IsOpen)
	require.NotNil(t, st.NextOpen)
	assert.Equal(t, time.Wednesday, st.NextOpen.Day)
}

func TestEvaluate_FullyClosedSchedule(t *testing.T) {
	w := Weekly{}

	st := w.Evaluate(at(time.Friday, 11, 0))
	assert.False(t, st.IsOpen)
	assert.Nil(t, st.ActiveSession)
	assert.Nil(t, st.NextOpen)
}

func TestEvaluate_EmptyDayIsClosed(t *testing.T) {
	w := Default()
	st := w.Evaluate(at(time.Sunday, 10, 0))
	assert.False(t, st.IsOpen)
	require.NotNil(t, st.NextOpen)
	assert.Equal(t, time.Monday, st.NextOpen.Day)
}

func TestValidate(t *testing.T) {
	ok := Default()
	assert.NoError(t, ok.Validate())

	bad := Weekly{Monday: []Session{{Open: "12:00", Close: "08:00"}}}
	assert.Error(t, bad.Validate())

	malformed := Weekly{Friday: []Session{{Open: "8am", Close: "17:00"}}}
	assert.Error(t, malformed.Validate())

	outOfRange := Weekly{Friday: []Session{{Open: "24:00", Close: "25:00"}}}
	assert.Error(t, outOfRange.Validate())
}

func TestEvaluate_Deterministic(t *testing.T) {
	w := Default()
	moment := at(time.Thursday, 10, 30)
	first := w.Evaluate(moment)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, w.Evaluate(moment))
	}
}
