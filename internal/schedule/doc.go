// Package schedule extracts training events from a normalized, line-oriented
// crew training schedule.
//
// The extractor walks the canonical lines once: day/date anchor lines open a
// date span, time-range lines open a block, and the lines that follow are
// classified as location or crew via ranked matchers. Briefing/debriefing
// runs (BRF ... DBRF) are folded into a single event spanning the whole run.
package schedule
