// Package report renders a finished TagReport and carries the writers that
// persist it.
package report

import (
	"fmt"
	"strings"

	"FlowTagger/internal/model"
)

// Section headers of the plain text report. These are fixed strings; tools
// downstream grep for them.
const (
	tagHeader       = "Tag counts"
	portProtoHeader = "Dest. Port, Protocol counts"
)

// Render formats the report as plain text: the tag count section, a blank
// line, then the port/protocol count section. Each section lists key=value
// lines in first-insertion order.
func Render(rep *model.TagReport) string {
	var b strings.Builder

	b.WriteString(tagHeader + "\n")
	writeCounts(&b, rep.TagCounts)
	b.WriteString("\n")
	b.WriteString(portProtoHeader + "\n")
	writeCounts(&b, rep.PortProtoCounts)

	return b.String()
}

func writeCounts(b *strings.Builder, table *model.CountTable) {
	for _, key := range table.Keys() {
		count, _ := table.Get(key)
		fmt.Fprintf(b, "%s=%d\n", key, count)
	}
}
