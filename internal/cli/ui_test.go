package cli

import (
	"strings"
	"testing"
)

func TestPrintHelpersWriteToStatus(t *testing.T) {
	buf := captureStatus(t)

	printSuccess("Cleared %d cached entries", 3)
	printWarning("Removed %d back edge(s)", 1)
	printInfo("Serving on %s", ":8080")
	printDetail("Directory: %s", "/tmp/cache")
	printFile("out.svg")
	printKeyValue("cache", "file")
	printNextStep("Try", "pathcover cover graph.txt")

	out := buf.String()
	for _, want := range []string{
		"Cleared 3 cached entries", "Removed 1 back edge(s)", "Serving on :8080",
		"Directory: /tmp/cache", "out.svg", "cache", "pathcover cover graph.txt",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("status output missing %q", want)
		}
	}
}

func TestPrintStats(t *testing.T) {
	tests := []struct {
		nodes, edges int
		cached       bool
		want         []string
	}{
		{4, 3, false, []string{"4 nodes", "3 edges", iconFresh}},
		{4, 0, true, []string{"4 nodes", iconCached}},
		{0, 0, false, []string{iconFresh}},
	}
	for _, tt := range tests {
		buf := captureStatus(t)
		printStats(tt.nodes, tt.edges, tt.cached)
		for _, w := range tt.want {
			if !strings.Contains(buf.String(), w) {
				t.Errorf("printStats(%d, %d, %v) = %q, missing %q", tt.nodes, tt.edges, tt.cached, buf.String(), w)
			}
		}
	}
}
