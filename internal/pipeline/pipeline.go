// Package pipeline orchestrates one tagging pass: materialize both inputs,
// parse, build the lookup table, aggregate, and fan the report out to the
// configured writers.
package pipeline

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"sync"

	"FlowTagger/internal/config"
	"FlowTagger/internal/engine/flowparse"
	"FlowTagger/internal/engine/tagaggregator"
	"FlowTagger/internal/iana"
	"FlowTagger/internal/lookup"
	"FlowTagger/internal/model"
	"FlowTagger/internal/report"

	"github.com/klauspost/compress/gzip"
)

// TimestampLayout names a run in writer output and S3 keys.
const TimestampLayout = "2006-01-02_15-04-05"

// Run executes one tagging pass and returns the report. The two input
// files are read concurrently; the transformation itself is a sequential,
// deterministic computation over the materialized buffers.
func Run(cfg *config.Config) (*model.TagReport, error) {
	var (
		wg        sync.WaitGroup
		logBuf    string
		lookupBuf string
		logErr    error
		lookupErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		logBuf, logErr = readFile(cfg.Tagger.LogFile)
	}()
	go func() {
		defer wg.Done()
		lookupBuf, lookupErr = readFile(cfg.Tagger.LookupFile)
	}()
	wg.Wait()

	if logErr != nil {
		return nil, fmt.Errorf("failed to read flow log file: %w", logErr)
	}
	if lookupErr != nil {
		return nil, fmt.Errorf("failed to read lookup file: %w", lookupErr)
	}

	parser := flowparse.NewParser(cfg.Tagger.FieldLayout, iana.Names())
	records, linesDropped := parser.ParseBuffer(logBuf)
	table, rowsDropped := lookup.Build(lookupBuf)

	rep := tagaggregator.Aggregate(records, table)
	rep.Stats = model.Stats{
		RecordsParsed:     len(records),
		LogLinesDropped:   linesDropped,
		LookupEntries:     table.Len(),
		LookupRowsDropped: rowsDropped,
	}

	log.Printf("Aggregated %d records against %d lookup entries (%d log lines dropped, %d lookup rows dropped)",
		len(records), table.Len(), linesDropped, rowsDropped)
	return rep, nil
}

// RunAndWrite executes one pass and persists the report. The plain text
// report file is the primary contract and its failure is fatal; additional
// enabled writers log a warning and are skipped on failure.
func RunAndWrite(cfg *config.Config, timestamp string) (*model.TagReport, error) {
	rep, err := Run(cfg)
	if err != nil {
		return nil, err
	}

	if err := report.NewTextWriter(cfg.Tagger.ReportFile).Write(rep, timestamp); err != nil {
		return nil, err
	}

	for _, def := range cfg.Tagger.Writers {
		if !def.Enabled {
			continue
		}
		var writer model.Writer
		switch def.Type {
		case "clickhouse":
			writer, err = report.NewClickHouseWriter(def.ClickHouse)
			if err != nil {
				log.Printf("Warning: failed to create writer type '%s': %v, skipping.", def.Type, err)
				continue
			}
		default:
			log.Printf("Warning: unknown writer type '%s' in config, skipping.", def.Type)
			continue
		}
		if err := writer.Write(rep, timestamp); err != nil {
			log.Printf("Warning: writer type '%s' failed: %v", def.Type, err)
		}
	}

	return rep, nil
}

// readFile materializes an input file as a string, transparently
// decompressing files with a .gz suffix.
func readFile(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer file.Close()

	var r io.Reader = file
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(file)
		if err != nil {
			return "", fmt.Errorf("failed to open gzip stream in '%s': %w", path, err)
		}
		defer gz.Close()
		r = gz
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
