// Package nodelink renders a subnet grouping as a Graphviz preview.
//
// The Gliffy document is the real output of netgliffy, but it can only be
// inspected by importing it into Gliffy. The preview draws the same grouping
// with Graphviz: one cluster per network, labelled with the network and the
// address range it covers, and one box per device inside it.
//
// # Usage
//
//	dot := nodelink.ToDOT(res.Groups, nodelink.Options{})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering; no Graphviz installation is needed.
package nodelink
