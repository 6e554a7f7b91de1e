package nodelink

import (
	"context"
	"net/netip"
	"strings"
	"testing"

	"github.com/matzehuels/netgliffy/pkg/inventory"
	"github.com/matzehuels/netgliffy/pkg/subnet"
)

func sampleGroups() []subnet.NetworkGroup {
	return []subnet.NetworkGroup{
		{
			Network: netip.MustParsePrefix("10.0.0.0/24"),
			Entries: []inventory.DeviceEntry{
				{Name: "core-sw", IP: "10.0.0.1", CIDR: "24", URL: "https://core-sw.example"},
				{Name: "core-sw", IP: "10.0.0.2", CIDR: "24"},
			},
		},
		{
			Network: netip.MustParsePrefix("192.168.1.0/24"),
			Entries: []inventory.DeviceEntry{
				{Name: "edge", IP: "192.168.1.5", CIDR: "24"},
			},
		},
	}
}

func TestToDOT_Clusters(t *testing.T) {
	dot := ToDOT(sampleGroups(), Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	if n := strings.Count(dot, "subgraph \"cluster_"); n != 2 {
		t.Errorf("ToDOT() has %d clusters, want 2", n)
	}
	if !strings.Contains(dot, `10.0.0.0/24\n10.0.0.0 - 10.0.0.255 (2)`) {
		t.Errorf("ToDOT() missing network range label:\n%s", dot)
	}
	for _, id := range []string{`"n0_0"`, `"n0_1"`, `"n1_0"`} {
		if !strings.Contains(dot, id) {
			t.Errorf("ToDOT() missing node %s", id)
		}
	}
	if strings.Index(dot, "cluster_0") > strings.Index(dot, "cluster_1") {
		t.Error("clusters out of group order")
	}
}

func TestToDOT_Links(t *testing.T) {
	dot := ToDOT(sampleGroups(), Options{})
	if strings.Count(dot, "URL=") != 1 {
		t.Errorf("expected exactly one URL attribute:\n%s", dot)
	}
}

func TestToDOT_Detailed(t *testing.T) {
	dot := ToDOT(sampleGroups(), Options{Detailed: true})
	if !strings.Contains(dot, `core-sw\n10.0.0.1/24\nhttps://core-sw.example`) {
		t.Errorf("ToDOT() detailed label missing cidr/url:\n%s", dot)
	}
}

func TestToDOT_Empty(t *testing.T) {
	dot := ToDOT(nil, Options{})
	if strings.Contains(dot, "subgraph") {
		t.Error("ToDOT(nil) should not contain clusters")
	}
}

func TestRenderSVG(t *testing.T) {
	if testing.Short() {
		t.Skip("graphviz rendering skipped in short mode")
	}
	svg, err := RenderSVG(context.Background(), ToDOT(sampleGroups(), Options{}))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output is not SVG")
	}
}
