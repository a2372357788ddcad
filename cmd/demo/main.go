package main

import (
	"flag"
	"log"
	"os"
	"time"

	jsoniter "github.com/json-iterator/go"

	"library-circulation/internal/config"
	"library-circulation/internal/logger"
	"library-circulation/internal/registry"
	"library-circulation/internal/scenario"
	"library-circulation/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	scenarioPath := flag.String("scenario", "", "Scenario file (overrides config)")
	reportPath := flag.String("report", "", "Write the run report as JSON to this file (overrides config)")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting circulation demo...", "log_level", cfg.Log.Level)

	path := cfg.Demo.ScenarioPath
	if *scenarioPath != "" {
		path = *scenarioPath
	}

	s, err := scenario.Load(path)
	if err != nil {
		logger.Error("Failed to load scenario", "path", path, "error", err)
		log.Fatalf("Failed to load scenario: %v", err)
	}

	clock := scenario.NewClock(time.Now().UTC())
	library := service.NewLibrary(registry.NewMemoryStore(), clock.Now)

	report, err := scenario.NewRunner(library, clock).Run(s)
	if err != nil {
		logger.Error("Scenario run failed", "error", err)
		log.Fatalf("Scenario run failed: %v", err)
	}

	out := cfg.Demo.ReportPath
	if *reportPath != "" {
		out = *reportPath
	}
	if out != "" {
		if err := writeReport(out, report); err != nil {
			logger.Error("Failed to write report", "path", out, "error", err)
			log.Fatalf("Failed to write report: %v", err)
		}
		logger.Info("Report written", "path", out)
	}

	logger.Info("Demo finished", "scenario", report.Scenario)
}

// writeReport encodes the run report as indented JSON
func writeReport(path string, report *scenario.Report) error {
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
