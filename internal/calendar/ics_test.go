package calendar

import (
	"bytes"
	"testing"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewcal/crewcal/internal/schedule"
)

func sampleEvent() schedule.TrainingEvent {
	return schedule.TrainingEvent{
		Activity:  "AST 1",
		Date:      "28Aug25",
		StartTime: "06:00L",
		EndTime:   "12:30L",
		Location:  "B76FPT1",
		CrewNotes: "CA: PAUL TIMMS\nFO: DEAN TOMLINSON",
	}
}

func TestBuildEmptyInput(t *testing.T) {
	_, _, err := Build(nil)
	assert.ErrorIs(t, err, ErrNoEvents)

	_, _, err = Build([]schedule.TrainingEvent{})
	assert.ErrorIs(t, err, ErrNoEvents)
}

func TestBuildFilename(t *testing.T) {
	filename, _, err := Build([]schedule.TrainingEvent{sampleEvent()})
	require.NoError(t, err)
	assert.Equal(t, "training_schedule_2025-08.ics", filename)
}

func TestBuildRoundTrip(t *testing.T) {
	evt := sampleEvent()
	_, data, err := Build([]schedule.TrainingEvent{evt})
	require.NoError(t, err)

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, cal.Events(), 1)

	ve := cal.Events()[0]
	assert.Equal(t, "AST 1", ve.GetProperty(ics.ComponentPropertySummary).Value)
	assert.Equal(t, "B76FPT1", ve.GetProperty(ics.ComponentPropertyLocation).Value)

	loc, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	wantStart := time.Date(2025, time.August, 28, 6, 0, 0, 0, loc)
	wantEnd := time.Date(2025, time.August, 28, 12, 30, 0, 0, loc)

	start, err := ve.GetStartAt()
	require.NoError(t, err)
	end, err := ve.GetEndAt()
	require.NoError(t, err)
	assert.True(t, start.Equal(wantStart), "start = %v, want %v", start, wantStart)
	assert.True(t, end.Equal(wantEnd), "end = %v, want %v", end, wantEnd)

	desc := ve.GetProperty(ics.ComponentPropertyDescription).Value
	assert.Contains(t, desc, "PAUL TIMMS")
	assert.Contains(t, desc, "DEAN TOMLINSON")
}

func TestBuildSkipsMalformedEvent(t *testing.T) {
	bad := sampleEvent()
	bad.Date = "not-a-date"

	filename, data, err := Build([]schedule.TrainingEvent{bad, sampleEvent()})
	require.NoError(t, err)
	assert.Equal(t, "training_schedule_2025-08.ics", filename)

	cal, err := ics.ParseCalendar(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Len(t, cal.Events(), 1)
}

func TestBuildAllMalformed(t *testing.T) {
	bad := sampleEvent()
	bad.StartTime = "late"

	_, _, err := Build([]schedule.TrainingEvent{bad})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoEvents)
}

func TestBuildDeterministicUIDs(t *testing.T) {
	_, first, err := Build([]schedule.TrainingEvent{sampleEvent()})
	require.NoError(t, err)
	_, second, err := Build([]schedule.TrainingEvent{sampleEvent()})
	require.NoError(t, err)

	calA, err := ics.ParseCalendar(bytes.NewReader(first))
	require.NoError(t, err)
	calB, err := ics.ParseCalendar(bytes.NewReader(second))
	require.NoError(t, err)

	uidA := calA.Events()[0].GetProperty(ics.ComponentPropertyUniqueId).Value
	uidB := calB.Events()[0].GetProperty(ics.ComponentPropertyUniqueId).Value
	assert.Equal(t, uidA, uidB)
}
