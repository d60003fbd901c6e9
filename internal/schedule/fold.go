package schedule

import "strings"

const (
	activityBriefing   = "BRF"
	activityDebriefing = "DBRF"

	// defaultActivity names a run that contains only BRF/DBRF blocks.
	defaultActivity = "Training"
)

// runState is the folding state machine: idle, or inside an open BRF run.
type runState int

const (
	runIdle runState = iota
	runOpen
)

// foldRuns merges BRF...DBRF runs into single events and emits blocks outside
// any run as standalone events, preserving block order.
//
// A second BRF while a run is already open restarts the run: the buffered
// blocks are discarded and a fresh run begins at the new BRF. Trailing runs
// with no closing DBRF are dropped unless keepOpen is set.
func foldRuns(blocks []rawBlock, keepOpen bool) []TrainingEvent {
	var out []TrainingEvent

	state := runIdle
	var buffer []rawBlock

	for _, b := range blocks {
		switch {
		case b.activity == activityBriefing:
			state = runOpen
			buffer = []rawBlock{b}
		case b.activity == activityDebriefing && state == runOpen:
			buffer = append(buffer, b)
			out = append(out, mergeRun(buffer))
			state = runIdle
			buffer = nil
		case state == runOpen:
			buffer = append(buffer, b)
		default:
			out = append(out, standaloneEvent(b))
		}
	}

	if state == runOpen && keepOpen {
		out = append(out, mergeRun(buffer))
	}
	return out
}

// mergeRun collapses a buffered run into one event: start from the first
// block, end from the last, activity and location from the first block that
// is neither BRF nor DBRF, and the deduplicated crew union of every block.
func mergeRun(buffer []rawBlock) TrainingEvent {
	first := buffer[0]
	last := buffer[len(buffer)-1]

	activity := defaultActivity
	location := ""
	for _, b := range buffer {
		if b.activity != activityBriefing && b.activity != activityDebriefing {
			activity = b.activity
			location = b.location
			break
		}
	}

	seen := make(map[string]struct{})
	var crew []string
	for _, b := range buffer {
		for _, entry := range b.crew {
			if _, dup := seen[entry]; dup {
				continue
			}
			seen[entry] = struct{}{}
			crew = append(crew, entry)
		}
	}

	return TrainingEvent{
		Activity:  activity,
		Date:      first.date,
		StartTime: first.start,
		EndTime:   last.end,
		Location:  location,
		CrewNotes: strings.Join(crew, "\n"),
	}
}

// standaloneEvent converts a block outside any run directly to an event.
func standaloneEvent(b rawBlock) TrainingEvent {
	return TrainingEvent{
		Activity:  b.activity,
		Date:      b.date,
		StartTime: b.start,
		EndTime:   b.end,
		Location:  b.location,
		CrewNotes: strings.Join(b.crew, "\n"),
	}
}
