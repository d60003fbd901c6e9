package schedule

import (
	"strings"
)

// locationLookahead bounds how far past an activity line the extractor
// searches for a location token.
const locationLookahead = 10

// Options controls extraction behavior.
type Options struct {
	// ExcludeNames drops any crew entry containing one of these names
	// (case-insensitive substring match against the rendered entry).
	ExcludeNames []string

	// KeepOpenRuns emits a trailing BRF run even when no DBRF closes it
	// before the date ends. The default drops such runs, matching the
	// schedule source's behavior, at the cost of losing the partial data.
	KeepOpenRuns bool
}

// Extract parses canonical schedule text into training events. Crew entries
// containing any of excludeNames are filtered out. Malformed lines never
// cause an error; they are skipped, so the worst case is fewer events.
func Extract(text string, excludeNames []string) []TrainingEvent {
	return ExtractWithOptions(text, Options{ExcludeNames: excludeNames})
}

// ExtractWithOptions is Extract with explicit run-folding options.
func ExtractWithOptions(text string, opts Options) []TrainingEvent {
	cur := newCursor(splitLines(text))

	events := []TrainingEvent{}
	for !cur.done() {
		date, ok := anchorDate(cur)
		if !ok {
			// Stray furniture line between date spans.
			cur.advance()
			continue
		}
		blocks := scanBlocks(cur, date, opts.ExcludeNames)
		events = append(events, foldRuns(blocks, opts.KeepOpenRuns)...)
	}
	return events
}

// splitLines breaks text into trimmed, non-blank lines.
func splitLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// anchorDate consumes a day-name + date-token pair, or a bare date token,
// and returns the active date. It consumes nothing on failure.
func anchorDate(c *cursor) (string, bool) {
	line := c.line()
	if isDayName(line) {
		next, ok := c.peek(1)
		if ok && isDateToken(next) {
			c.skip(2)
			return next, true
		}
		return "", false
	}
	if isDateToken(line) {
		c.advance()
		return line, true
	}
	return "", false
}

// scanBlocks collects every time-stamped block under the current date,
// stopping at the next day-name or date-token line.
func scanBlocks(c *cursor, date string, excludeNames []string) []rawBlock {
	var blocks []rawBlock
	for !c.done() && !isDayName(c.line()) && !isDateToken(c.line()) {
		if !isTimeRange(c.line()) {
			c.advance()
			continue
		}

		start, end := splitTimeRange(c.line())
		c.advance()
		if c.done() {
			break
		}

		// The line after a time range is the activity name, verbatim.
		activity := c.line()
		c.advance()

		blocks = append(blocks, rawBlock{
			activity: activity,
			date:     date,
			start:    start,
			end:      end,
			location: findLocation(c),
			crew:     scanCrew(c, excludeNames),
		})
		// The cursor stays just past the activity line; location and crew
		// lines are skipped by the not-a-time-range branch above.
	}
	return blocks
}

// findLocation looks ahead a bounded number of lines for the first location
// token. Absence leaves the location empty.
func findLocation(c *cursor) string {
	for k := 0; k < locationLookahead; k++ {
		line, ok := c.peek(k)
		if !ok {
			break
		}
		if isLocation.matches(line) {
			return line
		}
	}
	return ""
}

// scanCrew walks forward from just after the activity line until the next
// time-range, day-name, or date-token boundary, collecting "ROLE: NAME"
// entries. Duplicates within the block are dropped, as are entries matching
// the exclusion list.
func scanCrew(c *cursor, excludeNames []string) []string {
	var crew []string
	seen := make(map[string]struct{})

	record := func(entry string) {
		if excluded(entry, excludeNames) {
			return
		}
		if _, dup := seen[entry]; dup {
			return
		}
		seen[entry] = struct{}{}
		crew = append(crew, entry)
	}

	for k := 0; ; {
		line, ok := c.peek(k)
		if !ok || isTimeRange(line) || isDayName(line) || isDateToken(line) {
			break
		}

		// Location and activity tokens inside the block are not crew.
		if isLocation.matches(line) || isActivity.matches(line) {
			k++
			continue
		}

		if !isCrewRole.matches(line) {
			k++
			continue
		}

		// Pair the role with the following line as the member's name,
		// unless that line is itself a schedule token.
		name, ok := c.peek(k + 1)
		if ok && !isScheduleToken(name) {
			record(line + ": " + name)
			k += 2
			continue
		}
		record(line)
		k++
	}
	return crew
}

// isScheduleToken reports whether a line is anything other than a plausible
// crew member name.
func isScheduleToken(line string) bool {
	return isTimeRange(line) ||
		isDayName(line) ||
		isDateToken(line) ||
		isLocation.matches(line) ||
		isActivity.matches(line) ||
		isCrewRole.matches(line)
}

// SplitExcludeNames parses a comma-separated exclusion list as supplied by
// the shells, dropping blank entries.
func SplitExcludeNames(s string) []string {
	var names []string
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// excluded reports whether a rendered crew entry contains any excluded name,
// case-insensitively.
func excluded(entry string, excludeNames []string) bool {
	upper := strings.ToUpper(entry)
	for _, name := range excludeNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if strings.Contains(upper, strings.ToUpper(name)) {
			return true
		}
	}
	return false
}
