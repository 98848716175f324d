package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"FlowTagger/internal/config"
	"FlowTagger/internal/export"
	"FlowTagger/internal/pipeline"
	"FlowTagger/internal/publish"
	"FlowTagger/internal/report"

	"github.com/spf13/cobra"
)

var (
	configPath string
	logFile    string
	lookupFile string
	outputFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ft-tagger",
		Short: "Tag and count flow log records against a port/protocol lookup table",
		Long: `ft-tagger reads a flow log file and a (dstport, protocol) -> tag lookup
CSV, joins every record against the table, and writes a plain text report
with per-tag and per-(port, protocol) counts.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
		SilenceUsage: true, // Don't show usage on error
	}

	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Flow log file (overrides config)")
	rootCmd.Flags().StringVar(&lookupFile, "lookup-file", "", "Lookup CSV file (overrides config)")
	rootCmd.Flags().StringVar(&outputFile, "output-file", "", "Report output file (overrides config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration and apply flag overrides
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logFile != "" {
		cfg.Tagger.LogFile = logFile
	}
	if lookupFile != "" {
		cfg.Tagger.LookupFile = lookupFile
	}
	if outputFile != "" {
		cfg.Tagger.ReportFile = outputFile
	}

	// 2. Validate inputs before invoking the pipeline
	for _, path := range []string{cfg.Tagger.LogFile, cfg.Tagger.LookupFile} {
		if err := checkRegularFile(path); err != nil {
			return err
		}
	}

	// 3. Run the pipeline and write the report
	timestamp := time.Now().Format(pipeline.TimestampLayout)
	rep, err := pipeline.RunAndWrite(cfg, timestamp)
	if err != nil {
		return err
	}

	// 4. Optional exports
	if cfg.Tagger.Publisher.Enabled {
		publisher, err := publish.NewPublisher(cfg.Tagger.Publisher)
		if err != nil {
			log.Printf("Warning: failed to connect run summary publisher: %v", err)
		} else {
			defer publisher.Close()
			if err := publisher.Publish(rep); err != nil {
				log.Printf("Warning: failed to publish run summary: %v", err)
			}
		}
	}
	if cfg.Tagger.S3.Enabled {
		ctx := context.Background()
		uploader, err := export.NewS3Uploader(ctx, cfg.Tagger.S3)
		if err != nil {
			log.Printf("Warning: failed to create S3 uploader: %v", err)
		} else if err := uploader.UploadReport(ctx, timestamp, []byte(report.Render(rep))); err != nil {
			log.Printf("Warning: failed to upload report to S3: %v", err)
		}
	}

	return nil
}

// checkRegularFile verifies that path points at an existing regular file.
func checkRegularFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("input file '%s' is not readable: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("input file '%s' is not a regular file", path)
	}
	return nil
}
