package schedule

import (
	"crypto/sha1"
	"fmt"
	"strings"
)

// TrainingEvent is one calendar-ready training event. Times keep the raw
// schedule form ("06:00L"); the date keeps the DDMonYY form ("28Aug25").
// CrewNotes is a newline-joined list of "ROLE: NAME" entries.
type TrainingEvent struct {
	Activity  string `json:"activity"`
	Date      string `json:"date"`
	StartTime string `json:"start"`
	EndTime   string `json:"end"`
	Location  string `json:"location"`
	CrewNotes string `json:"crew_notes"`
}

// CrewLines splits CrewNotes back into individual crew entries.
func (e TrainingEvent) CrewLines() []string {
	if e.CrewNotes == "" {
		return []string{}
	}
	return strings.Split(e.CrewNotes, "\n")
}

// UID creates a deterministic identifier for an event based on its stable
// fields, suitable for use as an iCalendar UID.
func (e TrainingEvent) UID() string {
	h := sha1.New()
	h.Write([]byte(e.Date + "|" + e.StartTime + "|" + e.Activity))
	return fmt.Sprintf("%x", h.Sum(nil))
}

// rawBlock is one time-stamped activity occurrence collected while scanning
// a date's span, before run folding.
type rawBlock struct {
	activity string
	date     string
	start    string
	end      string
	location string
	crew     []string
}
