// Package lookup builds the (dstport, protocol) to tag mapping from its
// CSV representation and owns the key normalization shared with the
// aggregator's join.
package lookup

import (
	"log"
	"strings"
)

// Table maps a normalized "dstport,protocol" key to its tag.
type Table struct {
	entries map[string]string
}

// Key builds the normalized composite lookup key. Both parts are folded to
// lower case, which is what makes the join case-insensitive.
func Key(dstport, protocol string) string {
	return strings.ToLower(dstport) + "," + strings.ToLower(protocol)
}

// Build constructs a lookup table from a raw CSV buffer. A row must carry
// exactly three non-empty comma-separated fields (dstport, protocol, tag);
// anything else is dropped with a warning. On duplicate keys the later row
// wins. The tag is stored verbatim, not case-folded. The second return
// value is the number of dropped rows.
func Build(buf string) (*Table, int) {
	table := &Table{entries: make(map[string]string)}

	trimmed := strings.TrimSpace(buf)
	if trimmed == "" {
		return table, 0
	}

	dropped := 0
	for _, line := range strings.Split(trimmed, "\n") {
		line = strings.TrimSpace(line)
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			log.Printf("Warning: dropping malformed lookup row (%d fields, want 3): %q", len(parts), line)
			dropped++
			continue
		}
		if parts[0] == "" || parts[1] == "" || parts[2] == "" {
			log.Printf("Warning: dropping lookup row with empty field: %q", line)
			dropped++
			continue
		}
		table.entries[Key(parts[0], parts[1])] = parts[2]
	}
	return table, dropped
}

// Lookup returns the tag for a normalized key.
func (t *Table) Lookup(key string) (string, bool) {
	tag, ok := t.entries[key]
	return tag, ok
}

// Len returns the number of distinct keys in the table.
func (t *Table) Len() int {
	return len(t.entries)
}
