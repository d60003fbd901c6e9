// Package normalizer rewrites pasted crew training schedules into a
// canonical line-oriented form: one token (day name, date, time range,
// activity, location, or crew role/name) per line.
//
// Three raw layouts are recognized: a tab-separated tabular export, the
// original single-line format, and text that is already canonical. Page
// furniture around the schedule (navigation, footers) is trimmed away, and
// pasted HTML markup is reduced to its visible text first. Normalization
// never fails; unrecognized input passes through trimmed, deferring all
// correctness to the extractor's tolerance.
package normalizer
