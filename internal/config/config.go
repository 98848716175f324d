package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the corresponding paths are left unset.
const (
	DefaultLogFile    = "data/flows.log"
	DefaultLookupFile = "data/lookup.csv"
	DefaultReportFile = "data/report.txt"
	DefaultListenAddr = ":8080"
)

// ClickHouseConfig holds connection settings for the ClickHouse count writer.
type ClickHouseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Database string `yaml:"database"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// WriterDef defines one additional report writer from the config file. The
// plain text report file is always written and is configured separately.
type WriterDef struct {
	Type       string           `yaml:"type"`
	Enabled    bool             `yaml:"enabled"`
	ClickHouse ClickHouseConfig `yaml:"clickhouse"`
}

// PublisherConfig holds NATS settings for publishing run summaries.
type PublisherConfig struct {
	Enabled bool   `yaml:"enabled"`
	NATSURL string `yaml:"nats_url"`
	Subject string `yaml:"subject"`
}

// S3Config holds settings for uploading the rendered report to S3.
type S3Config struct {
	Enabled bool   `yaml:"enabled"`
	Region  string `yaml:"region"`
	Bucket  string `yaml:"bucket"`
	Prefix  string `yaml:"prefix"`
	Retries int    `yaml:"retries"`
}

// TaggerConfig holds the configuration for the tagging pipeline.
type TaggerConfig struct {
	LogFile    string `yaml:"log_file"`
	LookupFile string `yaml:"lookup_file"`
	ReportFile string `yaml:"report_file"`
	// FieldLayout overrides the default version 2 flow log field order.
	FieldLayout []string        `yaml:"field_layout"`
	Writers     []WriterDef     `yaml:"writers"`
	Publisher   PublisherConfig `yaml:"publisher"`
	S3          S3Config        `yaml:"s3"`
}

// APIConfig holds the configuration for the HTTP API server.
type APIConfig struct {
	ListenAddr string `yaml:"listen_addr"`
}

// Config is the top-level configuration struct for the entire application.
type Config struct {
	Tagger TaggerConfig `yaml:"tagger"`
	API    APIConfig    `yaml:"api"`
}

// LoadConfig reads the configuration from a YAML file and returns a Config
// struct with defaults applied to unset fields.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}

	cfg.ApplyDefaults()
	return &cfg, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in defaults for unset fields.
func (c *Config) ApplyDefaults() {
	if c.Tagger.LogFile == "" {
		c.Tagger.LogFile = DefaultLogFile
	}
	if c.Tagger.LookupFile == "" {
		c.Tagger.LookupFile = DefaultLookupFile
	}
	if c.Tagger.ReportFile == "" {
		c.Tagger.ReportFile = DefaultReportFile
	}
	if c.API.ListenAddr == "" {
		c.API.ListenAddr = DefaultListenAddr
	}
	if c.Tagger.S3.Retries <= 0 {
		c.Tagger.S3.Retries = 3
	}
}
