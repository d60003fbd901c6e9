package schedule

import (
	"regexp"
	"strings"
)

// Line classification is fuzzy text matching, not a grammar: each kind of
// line is recognized by a ranked list of matchers, tried in order. Exact
// vocabulary lookups rank before pattern fallbacks so new facility, activity,
// or role names can be added to the tables without touching the scan loop.

// matcher reports whether a line belongs to a class of schedule tokens.
type matcher interface {
	match(line string) bool
}

// setMatcher is an exact-lookup matcher over a fixed vocabulary.
type setMatcher map[string]struct{}

func newSetMatcher(words ...string) setMatcher {
	s := make(setMatcher, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s setMatcher) match(line string) bool {
	_, ok := s[line]
	return ok
}

// patternMatcher matches a regex family.
type patternMatcher struct {
	re *regexp.Regexp
}

func (p patternMatcher) match(line string) bool {
	return p.re.MatchString(line)
}

// funcMatcher adapts a predicate for matchers that don't fit a set or regex.
type funcMatcher func(line string) bool

func (f funcMatcher) match(line string) bool {
	return f(line)
}

// classifier tries its matchers in rank order; first match wins.
type classifier []matcher

func (c classifier) matches(line string) bool {
	for _, m := range c {
		if m.match(line) {
			return true
		}
	}
	return false
}

var (
	dayNames = newSetMatcher("Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun")

	dateTokenRe = regexp.MustCompile(`^\d{2}[A-Za-z]{3}\d{2}$`)
	timeRangeRe = regexp.MustCompile(`^(\d{2}:\d{2}L)\s*/\s*(\d{2}:\d{2}L)$`)

	// Facility codes like B76FPT1, B77SIM3.
	facilityCodeRe = regexp.MustCompile(`^B\d{2}[A-Z0-9]+$`)
	// Room/building codes like "3905 TRN-02".
	roomCodeRe = regexp.MustCompile(`^\d{4}\s+[A-Z]+-\d{2}$`)

	// Role codes: short uppercase abbreviations ("CA", "INSTR"), suffixed
	// variants ("FO-1", "CA-2"), numbered seats ("MEM 2"), and instructors
	// in training ("IIT Smith").
	rolePatternRes = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2,6}$`),
		regexp.MustCompile(`^[A-Z]+-[A-Z0-9]+$`),
		regexp.MustCompile(`^[A-Z]+ \d$`),
		regexp.MustCompile(`^IIT \S+$`),
	}
)

// isActivity covers the fixed sentinel codes plus activity names observed in
// real schedules. Ranked: exact vocabulary only; anything else that follows a
// time range is accepted verbatim by the scan loop, so no pattern fallback.
var isActivity = classifier{
	newSetMatcher(
		"BRF", "DBRF",
		"AST 1", "AST 2", "AST 3",
		"ASV", "CMT2", "BETA SIM",
		"LOE", "PV", "UPSET RECOVERY",
	),
}

// isLocation ranks a known-facility lookup ahead of the pattern families.
var isLocation = classifier{
	newSetMatcher(
		"B76FPT1", "B76FPT2", "B76FFS1", "B76FFS2", "B77FFS1",
	),
	patternMatcher{facilityCodeRe},
	patternMatcher{roomCodeRe},
	funcMatcher(func(line string) bool {
		for _, prefix := range []string{"BLDG ", "HANGAR "} {
			if strings.HasPrefix(line, prefix) {
				return true
			}
		}
		upper := strings.ToUpper(line)
		return strings.HasSuffix(upper, "BUILDING") || strings.HasSuffix(upper, "ROOM")
	}),
}

// isCrewRole ranks the known role vocabulary ahead of the short-code pattern
// families. The scan loop must test activity and location first: codes like
// "ASV" or "LOE" would otherwise pass the 2-6 uppercase letter fallback.
var isCrewRole = classifier{
	newSetMatcher(
		"CA", "FO", "SUPPORT", "INSTR", "DEVELOPER", "MEM",
		"FO-1", "FO-2",
	),
	patternMatcher{rolePatternRes[0]},
	patternMatcher{rolePatternRes[1]},
	patternMatcher{rolePatternRes[2]},
	patternMatcher{rolePatternRes[3]},
}

func isDayName(line string) bool {
	return dayNames.match(line)
}

func isDateToken(line string) bool {
	return dateTokenRe.MatchString(line)
}

func isTimeRange(line string) bool {
	return timeRangeRe.MatchString(line)
}

// splitTimeRange returns the start and end tokens of a time-range line.
// Callers must check isTimeRange first.
func splitTimeRange(line string) (start, end string) {
	m := timeRangeRe.FindStringSubmatch(line)
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}
