package report

import "FlowTagger/internal/model"

// KeyCount is one ordered counter entry in a run summary.
type KeyCount struct {
	Key   string `json:"key"`
	Count uint64 `json:"count"`
}

// Summary is the JSON view of a finished run, used by the HTTP API and the
// NATS publisher. Counts are arrays, not objects, so first-insertion order
// survives serialization.
type Summary struct {
	Timestamp         string     `json:"timestamp"`
	RecordsParsed     int        `json:"records_parsed"`
	LogLinesDropped   int        `json:"log_lines_dropped"`
	LookupEntries     int        `json:"lookup_entries"`
	LookupRowsDropped int        `json:"lookup_rows_dropped"`
	TagCounts         []KeyCount `json:"tag_counts"`
	PortProtoCounts   []KeyCount `json:"port_proto_counts"`
}

// Summarize flattens a report into the wire summary.
func Summarize(rep *model.TagReport, timestamp string) Summary {
	return Summary{
		Timestamp:         timestamp,
		RecordsParsed:     rep.Stats.RecordsParsed,
		LogLinesDropped:   rep.Stats.LogLinesDropped,
		LookupEntries:     rep.Stats.LookupEntries,
		LookupRowsDropped: rep.Stats.LookupRowsDropped,
		TagCounts:         flatten(rep.TagCounts),
		PortProtoCounts:   flatten(rep.PortProtoCounts),
	}
}

func flatten(table *model.CountTable) []KeyCount {
	out := make([]KeyCount, 0, table.Len())
	for _, key := range table.Keys() {
		count, _ := table.Get(key)
		out = append(out, KeyCount{Key: key, Count: count})
	}
	return out
}
