// Package cli implements the command-line interface for crewcal.
//
// The cli package provides the Cobra-based CLI that reads a training schedule
// text file, normalizes and parses it, and writes the resulting .ics calendar
// alongside a text or JSON summary of the extracted events.
package cli
