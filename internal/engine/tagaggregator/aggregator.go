// Package tagaggregator performs the single-pass join of parsed flow
// records against the lookup table, producing the two count tables the
// report is rendered from.
package tagaggregator

import (
	"FlowTagger/internal/lookup"
	"FlowTagger/internal/model"
)

// Untagged is the fallback tag for records whose join key has no lookup
// entry. The tag count table is always seeded with it so the bucket shows
// up in the report even at zero.
const Untagged = "untagged"

// Aggregate consumes the records in order and accumulates per-tag and
// per-(dstport, protocol) counts. Every record lands in exactly one bucket
// of each table; nothing is dropped at this stage. The pass is sequential
// and deterministic, so no locking is involved.
func Aggregate(records []model.FlowRecord, table *lookup.Table) *model.TagReport {
	tagCounts := model.NewCountTable()
	tagCounts.Seed(Untagged)
	portProtoCounts := model.NewCountTable()

	for _, record := range records {
		key := lookup.Key(record["dstport"], record["protocol"])
		tag, ok := table.Lookup(key)
		if !ok {
			tag = Untagged
		}
		tagCounts.Increment(tag)
		portProtoCounts.Increment(key)
	}

	return &model.TagReport{
		TagCounts:       tagCounts,
		PortProtoCounts: portProtoCounts,
	}
}
