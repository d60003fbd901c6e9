package main

import (
	"fmt"
	"os"

	"github.com/crewcal/crewcal/internal/calendar"
	"github.com/crewcal/crewcal/internal/normalizer"
	"github.com/crewcal/crewcal/internal/schedule"
)

// Manual smoke test: convert a sample schedule and write the .ics next to it.
func main() {
	input := "testdata/fixtures/tabular.txt"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", input, err)
		os.Exit(1)
	}

	events := schedule.Extract(normalizer.Normalize(string(data)), nil)
	if len(events) == 0 {
		fmt.Fprintln(os.Stderr, "No events extracted")
		os.Exit(1)
	}

	filename, doc, err := calendar.Build(events)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error building calendar: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(filename, doc, 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Generated calendar file: %s (%d events)\n\n", filename, len(events))
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(string(doc))
}
