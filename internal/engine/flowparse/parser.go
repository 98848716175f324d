package flowparse

import (
	"log"
	"strconv"
	"strings"

	"FlowTagger/internal/model"
)

// DefaultFieldLayout is the fixed field order of a version 2 flow log record.
var DefaultFieldLayout = []string{
	"version", "account-id", "interface-id", "srcaddr", "dstaddr",
	"srcport", "dstport", "protocol", "packets", "bytes",
	"start", "end", "action", "log-status",
}

// Parser converts raw flow log text into FlowRecords. It carries the field
// layout and the pre-built protocol number table, and has no other state.
type Parser struct {
	fields    []string
	protocols map[int]string
}

// NewParser creates a parser for the given field layout. An empty layout
// falls back to DefaultFieldLayout. The protocols table maps IANA protocol
// numbers to canonical names.
func NewParser(fields []string, protocols map[int]string) *Parser {
	if len(fields) == 0 {
		fields = DefaultFieldLayout
	}
	return &Parser{fields: fields, protocols: protocols}
}

// ParseLine parses a single log line into a FlowRecord. The line is split
// on runs of whitespace; the token count must equal the field layout length,
// otherwise the line is dropped with a warning and no record is produced.
func (p *Parser) ParseLine(line string) (model.FlowRecord, bool) {
	tokens := strings.Fields(strings.TrimSpace(line))
	if len(tokens) != len(p.fields) {
		log.Printf("Warning: dropping malformed flow log line (%d fields, want %d): %q", len(tokens), len(p.fields), line)
		return nil, false
	}

	record := make(model.FlowRecord, len(p.fields))
	for i, name := range p.fields {
		value := tokens[i]
		if name == "protocol" {
			value = p.translate(value)
		}
		record[name] = value
	}
	return record, true
}

// ParseBuffer parses a whole log buffer, one record per well-formed line.
// Records come back in input order; dropped lines contribute nothing. The
// second return value is the number of dropped lines.
func (p *Parser) ParseBuffer(buf string) ([]model.FlowRecord, int) {
	trimmed := strings.TrimSpace(buf)
	if trimmed == "" {
		return nil, 0
	}

	var records []model.FlowRecord
	dropped := 0
	for _, line := range strings.Split(trimmed, "\n") {
		record, ok := p.ParseLine(line)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}
	return records, dropped
}

// translate maps a numeric protocol token to its IANA name. It is total: a
// token that does not parse as a base-10 integer, or an integer with no
// table entry, comes back unchanged.
func (p *Parser) translate(raw string) string {
	number, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	if name, ok := p.protocols[number]; ok {
		return name
	}
	return raw
}
