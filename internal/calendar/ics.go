// Package calendar serializes training events into an iCalendar document.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	log "github.com/sirupsen/logrus"

	"github.com/crewcal/crewcal/internal/schedule"
)

// MIMEType is the content type for the generated calendar document.
const MIMEType = "text/calendar"

// ErrNoEvents is returned when Build is called with an empty event list.
var ErrNoEvents = errors.New("no events provided")

// zoneName is the fixed civil time zone all schedule times are anchored to.
const zoneName = "America/Chicago"

const (
	dateLayout  = "02Jan06"
	clockLayout = "15:04"
)

// Build serializes events into an iCalendar document. It returns the
// deterministic filename (training_schedule_<YYYY>-<MM>.ics, from the first
// serializable event's month) and the document bytes.
//
// An event whose date or time cannot be parsed is skipped with a warning;
// only an empty input or a batch with no serializable events is an error.
func Build(events []schedule.TrainingEvent) (string, []byte, error) {
	if len(events) == 0 {
		return "", nil, ErrNoEvents
	}

	loc, err := time.LoadLocation(zoneName)
	if err != nil {
		return "", nil, fmt.Errorf("loading time zone %s: %w", zoneName, err)
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//crewcal//crewcal//EN")

	var firstStart time.Time
	for _, evt := range events {
		start, err := parseLocal(evt.Date, evt.StartTime, loc)
		if err != nil {
			log.Warnf("skipping event %q: %v", evt.Activity, err)
			continue
		}
		end, err := parseLocal(evt.Date, evt.EndTime, loc)
		if err != nil {
			log.Warnf("skipping event %q: %v", evt.Activity, err)
			continue
		}

		ve := cal.AddEvent(evt.UID() + "@crewcal")
		ve.SetDtStampTime(time.Now().UTC())
		ve.SetStartAt(start.UTC())
		ve.SetEndAt(end.UTC())
		ve.SetSummary(evt.Activity)
		if evt.Location != "" {
			ve.SetLocation(evt.Location)
		}
		if evt.CrewNotes != "" {
			// RFC 5545 text escaping for the newline-joined crew list.
			ve.SetDescription(strings.ReplaceAll(evt.CrewNotes, "\n", "\\n"))
		}

		if firstStart.IsZero() {
			firstStart = start
		}
	}

	if firstStart.IsZero() {
		return "", nil, errors.New("no serializable events")
	}

	filename := fmt.Sprintf("training_schedule_%s.ics", firstStart.Format("2006-01"))
	return filename, []byte(cal.Serialize()), nil
}

// parseLocal combines a DDMonYY date and an HH:MM clock (trailing locale
// marker stripped) into an instant in the fixed schedule zone.
func parseLocal(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", date, err)
	}
	c, err := time.Parse(clockLayout, strings.TrimSuffix(clock, "L"))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing time %q: %w", clock, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc), nil
}
