package normalizer

import (
	"regexp"
	"strings"
)

const dayAbbrevs = `(Mon|Tue|Wed|Thu|Fri|Sat|Sun)`

var (
	// Schedule-start signals: a day abbreviation followed by a date token
	// somewhere in the line, or a line that is exactly a day abbreviation.
	startDayDateRe = regexp.MustCompile(dayAbbrevs + `\s+\d{2}[A-Za-z]{3}\d{2}`)
	startBareDayRe = regexp.MustCompile(`^` + dayAbbrevs + `$`)

	// Layout signatures.
	tabularLineRe = regexp.MustCompile(dayAbbrevs + `\t\d{2}[A-Za-z]{3}\d{2}`)
	inlineLineRe  = regexp.MustCompile(`^` + dayAbbrevs + `\s+\d{2}[A-Za-z]{3}\d{2}\s+\d{2}:\d{2}L\s*/\s*\d{2}:\d{2}L`)

	tabularRowRe = regexp.MustCompile(`^` + dayAbbrevs + `\t\d{2}[A-Za-z]{3}\d{2}`)

	timeRangeRe    = regexp.MustCompile(`\d{2}:\d{2}L\s*/\s*\d{2}:\d{2}L`)
	leadTimeRe     = regexp.MustCompile(`^\d{2}:\d{2}L\s*/\s*\d{2}:\d{2}L`)
	dayDateLeadRe  = regexp.MustCompile(`^` + dayAbbrevs + `\s+(\d{2}[A-Za-z]{3}\d{2})`)
	facilityCodeRe = regexp.MustCompile(`B\d{2}[A-Z0-9]+`)
	multiTabRe     = regexp.MustCompile(`\t+`)

	// Activity in an inline row: the run of uppercase words after the time
	// range, up to the first facility code or crew-role keyword.
	inlineActivityRe = regexp.MustCompile(`^([A-Z][A-Z0-9\s]*?)(?:\s+(?:MEM|B\d{2}|Instr|CA|FO|SUPPORT))`)
)

// footerPhrases mark the end of the schedule when pasted with surrounding
// webpage content. Matched case-insensitively.
var footerPhrases = []string{
	"external links",
	"feedback",
	"company links",
	"copyright",
	"privacy policy",
	"sitemap",
	"all rights reserved",
	"fedex.com",
	"terms of use",
}

// Normalize rewrites raw pasted schedule text into canonical one-token-per-line
// form. It never fails: input that matches no known layout is returned with
// lines trimmed and blanks removed.
func Normalize(raw string) string {
	lines := trimBoundaries(strings.Split(StripHTML(raw), "\n"))

	switch {
	case anyLine(lines, isTabularLine):
		return strings.Join(rewriteTabular(lines), "\n")
	case anyLine(lines, isInlineLine):
		return strings.Join(rewriteInline(lines), "\n")
	default:
		return strings.Join(cleanLines(lines), "\n")
	}
}

// trimBoundaries discards page furniture before the first schedule-start
// signal and at/after the first footer phrase. If no start signal is found
// the whole text is kept.
func trimBoundaries(lines []string) []string {
	start := -1
	end := len(lines)

	for i, line := range lines {
		stripped := strings.TrimSpace(line)
		if start == -1 && (startDayDateRe.MatchString(stripped) || startBareDayRe.MatchString(stripped)) {
			start = i
		}
		if isFooterLine(stripped) {
			end = i
			break
		}
	}

	if start == -1 {
		return lines
	}
	return lines[start:end]
}

func isFooterLine(line string) bool {
	lower := strings.ToLower(line)
	for _, phrase := range footerPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

func isTabularLine(line string) bool {
	return strings.Contains(line, "\t") && tabularLineRe.MatchString(strings.TrimSpace(line))
}

func isInlineLine(line string) bool {
	return inlineLineRe.MatchString(strings.TrimSpace(line))
}

func anyLine(lines []string, pred func(string) bool) bool {
	for _, line := range lines {
		if pred(line) {
			return true
		}
	}
	return false
}

// cleanLines trims every line and drops blanks.
func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// rewriteTabular converts the tab-separated export into canonical lines.
// Day and date lines are emitted only when they change, not per row.
func rewriteTabular(lines []string) []string {
	var out []string
	var currentDay, currentDate string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = multiTabRe.ReplaceAllString(line, "\t")

		switch {
		case tabularRowRe.MatchString(line):
			fields := strings.Split(line, "\t")
			if len(fields) < 4 {
				continue
			}
			day, date, timeRange, activity := fields[0], fields[1], fields[2], fields[3]

			if currentDay != day || currentDate != date {
				out = append(out, day, date)
				currentDay, currentDate = day, date
			}
			out = append(out, timeRange, activity)

			// Facility code hides in a trailing field on some rows.
			if len(fields) > 6 {
				if code := facilityCodeRe.FindString(fields[6]); code != "" {
					out = append(out, code)
				}
			}

			if len(fields) > 5 && strings.TrimSpace(fields[5]) != "" {
				role := strings.ToUpper(strings.TrimSpace(fields[5]))
				out = append(out, role)
				if len(fields) > 6 && !facilityCodeRe.MatchString(fields[6]) {
					if name := strings.TrimSpace(fields[6]); name != "" {
						out = append(out, name)
					}
				}
			}

		case strings.Contains(line, "\t"):
			// Crew continuation rows: role <TAB> name.
			fields := strings.Split(line, "\t")
			if len(fields) >= 2 {
				role := strings.TrimSpace(fields[0])
				name := strings.TrimSpace(fields[1])
				if role != "" && name != "" {
					out = append(out, strings.ToUpper(role), name)
				}
			}

		case !leadTimeRe.MatchString(line):
			out = append(out, line)
		}
	}
	return out
}

// rewriteInline converts the original single-line format into canonical
// lines. Continuation lines carry a time range but no day/date.
func rewriteInline(lines []string) []string {
	var out []string

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		switch {
		case inlineLineRe.MatchString(line):
			m := dayDateLeadRe.FindStringSubmatch(line)
			out = append(out, m[1], m[2])
			out = append(out, splitInlineTail(line)...)

		case leadTimeRe.MatchString(line):
			out = append(out, splitInlineTail(line)...)

		default:
			out = append(out, line)
		}
	}
	return out
}

// splitInlineTail emits the time-range line, the activity line, and any
// facility code found after the time range.
func splitInlineTail(line string) []string {
	loc := timeRangeRe.FindStringIndex(line)
	if loc == nil {
		return []string{line}
	}
	out := []string{line[loc[0]:loc[1]]}

	remaining := strings.TrimSpace(line[loc[1]:])
	if remaining == "" {
		return out
	}

	if m := inlineActivityRe.FindStringSubmatch(remaining); m != nil {
		out = append(out, strings.TrimSpace(m[1]))
	} else {
		// No boundary token found: fall back to the first two words.
		words := strings.Fields(remaining)
		if len(words) > 2 {
			words = words[:2]
		}
		out = append(out, strings.Join(words, " "))
	}

	if code := facilityCodeRe.FindString(remaining); code != "" {
		out = append(out, code)
	}
	return out
}
