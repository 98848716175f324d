package report

import (
	"context"
	"fmt"
	"log"
	"time"

	"FlowTagger/internal/config"
	"FlowTagger/internal/model"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
)

const createTableStatement = `
CREATE TABLE IF NOT EXISTS tag_counts (
    Timestamp DateTime,
    Section   String,
    Key       String,
    Count     UInt64
) ENGINE = MergeTree()
PARTITION BY toYYYYMM(Timestamp)
ORDER BY (Section, Key, Timestamp);
`

// Section labels for the rows inserted into ClickHouse.
const (
	sectionTag       = "tag"
	sectionPortProto = "port_proto"
)

// ClickHouseWriter implements the model.Writer interface for ClickHouse.
// Each run inserts one row per count table entry, keyed by the run
// timestamp so successive runs remain distinguishable.
type ClickHouseWriter struct {
	conn driver.Conn
}

// NewClickHouseWriter creates a new ClickHouse writer and ensures the
// target table exists.
func NewClickHouseWriter(cfg config.ClickHouseConfig) (model.Writer, error) {
	conn, err := connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to clickhouse: %w", err)
	}

	if err := conn.Exec(context.Background(), createTableStatement); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}
	log.Println("Successfully connected to ClickHouse and ensured table exists.")

	return &ClickHouseWriter{conn: conn}, nil
}

func connect(cfg config.ClickHouseConfig) (driver.Conn, error) {
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	conn, err := clickhouse.Open(&clickhouse.Options{
		Addr: []string{addr},
		Auth: clickhouse.Auth{
			Database: cfg.Database,
			Username: cfg.Username,
			Password: cfg.Password,
		},
		Debug: false,
		Compression: &clickhouse.Compression{
			Method: clickhouse.CompressionLZ4,
		},
	})
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(context.Background()); err != nil {
		return nil, fmt.Errorf("failed to ping clickhouse: %w", err)
	}

	return conn, nil
}

// Write batch-inserts both count tables into the tag_counts table.
func (w *ClickHouseWriter) Write(rep *model.TagReport, timestamp string) error {
	batch, err := w.conn.PrepareBatch(context.Background(), "INSERT INTO tag_counts")
	if err != nil {
		return fmt.Errorf("failed to prepare batch: %w", err)
	}

	runTime, err := time.Parse("2006-01-02_15-04-05", timestamp)
	if err != nil {
		runTime = time.Now()
	}

	rows := 0
	for _, entry := range []struct {
		section string
		table   *model.CountTable
	}{
		{sectionTag, rep.TagCounts},
		{sectionPortProto, rep.PortProtoCounts},
	} {
		for _, key := range entry.table.Keys() {
			count, _ := entry.table.Get(key)
			if err := batch.Append(runTime, entry.section, key, count); err != nil {
				return fmt.Errorf("failed to append count to batch: %w", err)
			}
			rows++
		}
	}

	if rows == 0 {
		return nil // Nothing to write
	}

	if err := batch.Send(); err != nil {
		return fmt.Errorf("failed to send batch: %w", err)
	}

	log.Printf("Wrote %d count rows to ClickHouse", rows)
	return nil
}
