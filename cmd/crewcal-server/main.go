package main

import (
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/crewcal/crewcal/internal/config"
	"github.com/crewcal/crewcal/internal/server"
)

func init() {
	level := os.Getenv("LOG_LEVEL")
	if level != "" {
		logrusLevel, err := log.ParseLevel(level)
		if err != nil {
			log.Fatal(err)
		}
		log.SetLevel(logrusLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg, err := config.Load("./config.yaml")
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if err := server.New(cfg).Run(); err != nil {
		log.Fatal(err)
	}
}
