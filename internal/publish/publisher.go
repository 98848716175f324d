// Package publish pushes run summaries to NATS so downstream consumers can
// react to finished tagging runs without polling the report file.
package publish

import (
	"log"
	"time"

	"FlowTagger/internal/config"
	"FlowTagger/internal/model"
	"FlowTagger/internal/report"

	"github.com/goccy/go-json"
	"github.com/nats-io/nats.go"
)

// Publisher is responsible for publishing run summaries to a NATS subject.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher creates a new NATS publisher.
func NewPublisher(cfg config.PublisherConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.NATSURL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.NATSURL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish serializes the run summary to JSON and publishes it to the
// configured NATS subject.
func (p *Publisher) Publish(rep *model.TagReport) error {
	summary := report.Summarize(rep, time.Now().UTC().Format(time.RFC3339))

	data, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
