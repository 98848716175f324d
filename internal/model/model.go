package model

// FlowRecord holds one parsed flow log record as a field-name to value map.
// A record is only ever built from a line whose token count matches the
// configured field layout exactly, and is immutable after parsing.
type FlowRecord map[string]string

// Stats summarizes one run of the tagging pipeline.
type Stats struct {
	RecordsParsed     int
	LogLinesDropped   int
	LookupEntries     int
	LookupRowsDropped int
}

// TagReport is the result of a single aggregation pass: per-tag counts,
// per-(dstport, protocol) counts, and the run stats.
type TagReport struct {
	TagCounts       *CountTable
	PortProtoCounts *CountTable
	Stats           Stats
}
