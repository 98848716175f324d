package report

import (
	"os"
	"path/filepath"
	"testing"

	"FlowTagger/internal/model"
)

func sampleReport() *model.TagReport {
	tagCounts := model.NewCountTable()
	tagCounts.Seed("untagged")
	tagCounts.Increment("web")
	tagCounts.Increment("web")
	tagCounts.Increment("ssh")

	portProtoCounts := model.NewCountTable()
	portProtoCounts.Increment("443,tcp")
	portProtoCounts.Increment("443,tcp")
	portProtoCounts.Increment("22,tcp")

	return &model.TagReport{
		TagCounts:       tagCounts,
		PortProtoCounts: portProtoCounts,
		Stats:           model.Stats{RecordsParsed: 3, LookupEntries: 2},
	}
}

func TestRender_Layout(t *testing.T) {
	expected := "Tag counts\n" +
		"untagged=0\n" +
		"web=2\n" +
		"ssh=1\n" +
		"\n" +
		"Dest. Port, Protocol counts\n" +
		"443,tcp=2\n" +
		"22,tcp=1\n"

	if got := Render(sampleReport()); got != expected {
		t.Errorf("Rendered report does not match.\nExpected:\n%q\nGot:\n%q", expected, got)
	}
}

func TestRender_EmptyReportStillHasSections(t *testing.T) {
	tagCounts := model.NewCountTable()
	tagCounts.Seed("untagged")
	rep := &model.TagReport{
		TagCounts:       tagCounts,
		PortProtoCounts: model.NewCountTable(),
	}

	expected := "Tag counts\nuntagged=0\n\nDest. Port, Protocol counts\n"
	if got := Render(rep); got != expected {
		t.Errorf("Expected %q, got %q", expected, got)
	}
}

func TestTextWriter_WritesReportFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "report_test")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tmpDir)

	rep := sampleReport()
	path := filepath.Join(tmpDir, "out", "report.txt")

	writer := NewTextWriter(path)
	if err := writer.Write(rep, "2021-05-04_16-26-01"); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read report file: %v", err)
	}
	if string(data) != Render(rep) {
		t.Errorf("Report file content does not match Render output.\nGot:\n%s", data)
	}
}

func TestSummarize_PreservesOrderAndStats(t *testing.T) {
	summary := Summarize(sampleReport(), "2021-05-04T16:26:01Z")

	if summary.Timestamp != "2021-05-04T16:26:01Z" {
		t.Errorf("Unexpected timestamp %q", summary.Timestamp)
	}
	if summary.RecordsParsed != 3 || summary.LookupEntries != 2 {
		t.Errorf("Stats not carried over: %+v", summary)
	}

	expectedTags := []KeyCount{{"untagged", 0}, {"web", 2}, {"ssh", 1}}
	if len(summary.TagCounts) != len(expectedTags) {
		t.Fatalf("Expected %d tag entries, got %d", len(expectedTags), len(summary.TagCounts))
	}
	for i, expected := range expectedTags {
		if summary.TagCounts[i] != expected {
			t.Errorf("Tag entry %d: expected %+v, got %+v", i, expected, summary.TagCounts[i])
		}
	}

	expectedPorts := []KeyCount{{"443,tcp", 2}, {"22,tcp", 1}}
	for i, expected := range expectedPorts {
		if summary.PortProtoCounts[i] != expected {
			t.Errorf("Port/protocol entry %d: expected %+v, got %+v", i, expected, summary.PortProtoCounts[i])
		}
	}
}
