package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/netgliffy/pkg/subnet"
)

// Options configures preview generation.
type Options struct {
	// Detailed adds the prefix length and URL to device labels.
	Detailed bool
}

// ToDOT converts network groups to Graphviz DOT source. Clusters follow
// group order and devices follow entry order.
func ToDOT(groups []subnet.NetworkGroup, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=12];\n")
	buf.WriteString("  compound=true;\n")

	for gi, g := range groups {
		r := g.Range()
		fmt.Fprintf(&buf, "\n  subgraph \"cluster_%d\" {\n", gi)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("%s\n%s - %s (%d)", g, r.From(), r.To(), g.Len()))
		buf.WriteString("    style=\"rounded,dashed\";\n")
		for i, e := range g.Entries {
			attrs := []string{fmt.Sprintf("label=%q", fmtLabel(e.Name, e.IP, e.CIDR, e.URL, opts.Detailed))}
			if e.URL != "" {
				attrs = append(attrs, fmt.Sprintf("URL=%q", e.URL))
			}
			fmt.Fprintf(&buf, "    %q [%s];\n", nodeID(gi, i), strings.Join(attrs, ", "))
		}
		buf.WriteString("  }\n")
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(group, entry int) string {
	return fmt.Sprintf("n%d_%d", group, entry)
}

func fmtLabel(name, ip, cidr, url string, detailed bool) string {
	if !detailed {
		return name + "\n" + ip
	}
	label := fmt.Sprintf("%s\n%s/%s", name, ip, cidr)
	if url != "" {
		label += "\n" + url
	}
	return label
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
