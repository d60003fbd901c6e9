package main

import "github.com/crewcal/crewcal/internal/cli"

func main() {
	cli.Execute()
}
