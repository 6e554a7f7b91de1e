package gliffy

import (
	"fmt"

	"github.com/matzehuels/netgliffy/pkg/subnet"
)

// ShapeType is the Gliffy graphic used for every device.
const ShapeType = "com.gliffy.shape.network.cisco.Router"

// SceneDocument is a stage with its positioned shapes.
type SceneDocument struct {
	Width  int
	Height int
	Shapes []Shape
}

// Shape is one device on the stage. Link is empty when the device has no URL.
type Shape struct {
	X, Y          int
	Width, Height int
	Rotation      int
	Title         string
	Description   string
	Link          string
}

// Build places every entry of groups on the grid described by l.
//
// Shapes follow group order and entry order within each group. The grid index
// restarts at zero at the start of every group.
func Build(groups []subnet.NetworkGroup, l Layout) SceneDocument {
	doc := SceneDocument{
		Width:  l.StageWidth,
		Height: l.StageHeight,
	}
	for _, g := range groups {
		network := g.String()
		for i, e := range g.Entries {
			x, y := l.Position(i)
			doc.Shapes = append(doc.Shapes, Shape{
				X:           x,
				Y:           y,
				Width:       l.ShapeWidth,
				Height:      l.ShapeHeight,
				Title:       fmt.Sprintf("%s (%s/%s)", e.Name, e.IP, e.CIDR),
				Description: "Network: " + network,
				Link:        e.URL,
			})
		}
	}
	return doc
}
