package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"library-circulation/internal/config"
	"library-circulation/internal/jobs"
	"library-circulation/internal/logger"
	"library-circulation/internal/registry"
	"library-circulation/internal/scenario"
	"library-circulation/internal/scheduler"
	"library-circulation/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'circulation-report', 'fine-summary', 'all')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting circulation report runner...", "log_level", cfg.Log.Level)

	// Build in-memory state from the configured scenario. The virtual
	// timeline is anchored so its last day lands on the current time;
	// reports then see realistic days-on-loan values.
	s, err := scenario.Load(cfg.Demo.ScenarioPath)
	if err != nil {
		logger.Error("Failed to load scenario", "path", cfg.Demo.ScenarioPath, "error", err)
		log.Fatalf("Failed to load scenario: %v", err)
	}

	base := time.Now().UTC().AddDate(0, 0, -s.TotalDays())
	clock := scenario.NewClock(base)
	library := service.NewLibrary(registry.NewMemoryStore(), clock.Now)

	if _, err := scenario.NewRunner(library, clock).Run(s); err != nil {
		logger.Error("Failed to build library state", "error", err)
		log.Fatalf("Failed to build library state: %v", err)
	}
	logger.Info("Library state loaded",
		"scenario", s.Name,
		"books", len(library.Books()),
		"borrowers", len(library.Borrowers()))

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(library, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Report scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down report scheduler...")
	cronScheduler.Stop()
	logger.Info("Report scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "circulation-report":
		jobRunner.CirculationReport()
	case "fine-summary":
		jobRunner.FineSummary()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - circulation-report\n")
		fmt.Printf("  - fine-summary\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
