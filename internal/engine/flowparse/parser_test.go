package flowparse

import (
	"fmt"
	"testing"

	"FlowTagger/internal/iana"
)

const wellFormedLine = "2 123456789012 eni-0a1b2c3d 10.0.1.10 10.0.2.20 443 49153 6 25 20000 1620140761 1620140821 ACCEPT OK"

func TestParseLine_WellFormed(t *testing.T) {
	parser := NewParser(nil, iana.Names())

	record, ok := parser.ParseLine(wellFormedLine)
	if !ok {
		t.Fatal("Expected a record for a well-formed line")
	}

	checks := map[string]string{
		"version":      "2",
		"account-id":   "123456789012",
		"interface-id": "eni-0a1b2c3d",
		"srcaddr":      "10.0.1.10",
		"dstaddr":      "10.0.2.20",
		"srcport":      "443",
		"dstport":      "49153",
		"protocol":     "tcp", // 6 translated via the IANA table
		"action":       "ACCEPT",
		"log-status":   "OK",
	}
	for field, expected := range checks {
		if record[field] != expected {
			t.Errorf("Field %q: expected %q, got %q", field, expected, record[field])
		}
	}
}

func TestParseLine_FieldCountMismatch(t *testing.T) {
	parser := NewParser(nil, iana.Names())

	if _, ok := parser.ParseLine("2 123456789012 eni-0a1b2c3d"); ok {
		t.Error("Expected no record for a line with too few fields")
	}
	if _, ok := parser.ParseLine(wellFormedLine + " extra"); ok {
		t.Error("Expected no record for a line with too many fields")
	}
}

func TestParseLine_ToleratesExtraWhitespace(t *testing.T) {
	parser := NewParser(nil, iana.Names())

	line := "  2  123456789012   eni-0a1b2c3d 10.0.1.10 10.0.2.20 443 49153 6 25 20000 1620140761 1620140821 ACCEPT OK  "
	record, ok := parser.ParseLine(line)
	if !ok {
		t.Fatal("Expected a record despite repeated whitespace")
	}
	if record["account-id"] != "123456789012" {
		t.Errorf("Expected account-id '123456789012', got %q", record["account-id"])
	}
}

func TestParseLine_ProtocolTranslation(t *testing.T) {
	parser := NewParser(nil, iana.Names())

	base := "2 123456789012 eni-0a1b2c3d 10.0.1.10 10.0.2.20 443 49153 %s 25 20000 1620140761 1620140821 ACCEPT OK"
	cases := []struct {
		token    string
		expected string
	}{
		{"6", "tcp"},   // known number
		{"17", "udp"},  // known number
		{"255", "255"}, // no table entry, raw token retained
		{"tcp", "tcp"}, // not numeric, raw token retained
		{"TCP", "TCP"}, // not numeric, case preserved
		{"6x", "6x"},   // parse failure, raw token retained
	}
	for _, c := range cases {
		record, ok := parser.ParseLine(fmt.Sprintf(base, c.token))
		if !ok {
			t.Fatalf("Expected a record for protocol token %q", c.token)
		}
		if record["protocol"] != c.expected {
			t.Errorf("Protocol token %q: expected %q, got %q", c.token, c.expected, record["protocol"])
		}
	}
}

func TestParseBuffer_DropsMalformedLines(t *testing.T) {
	parser := NewParser(nil, iana.Names())

	buf := wellFormedLine + "\n" +
		"not a flow record\n" +
		"2 123456789012 eni-0a1b2c3d 10.0.1.11 10.0.2.21 1030 22 6 5 500 1620140761 1620140821 REJECT OK\n"

	records, dropped := parser.ParseBuffer(buf)
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if dropped != 1 {
		t.Errorf("Expected 1 dropped line, got %d", dropped)
	}
	// Dropped lines must not disturb adjacent records or their order.
	if records[0]["dstport"] != "49153" || records[1]["dstport"] != "22" {
		t.Errorf("Record order disturbed: got dstports %q, %q", records[0]["dstport"], records[1]["dstport"])
	}
}

func TestParseBuffer_Empty(t *testing.T) {
	parser := NewParser(nil, iana.Names())

	for _, buf := range []string{"", "   \n\t  "} {
		records, dropped := parser.ParseBuffer(buf)
		if len(records) != 0 || dropped != 0 {
			t.Errorf("Expected no records and no drops for buffer %q, got %d/%d", buf, len(records), dropped)
		}
	}
}

func TestNewParser_CustomLayout(t *testing.T) {
	parser := NewParser([]string{"dstport", "protocol"}, iana.Names())

	record, ok := parser.ParseLine("80 6")
	if !ok {
		t.Fatal("Expected a record for the custom layout")
	}
	if record["dstport"] != "80" || record["protocol"] != "tcp" {
		t.Errorf("Unexpected record: %v", record)
	}
}
