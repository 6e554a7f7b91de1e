package gliffy

import (
	"github.com/matzehuels/netgliffy/pkg/errors"
)

// Layout defaults.
const (
	DefaultOriginX     = 100
	DefaultOriginY     = 100
	DefaultSpacing     = 150
	DefaultColumns     = 5
	DefaultShapeWidth  = 120
	DefaultShapeHeight = 60
	DefaultStageWidth  = 1000
	DefaultStageHeight = 1000
)

// Layout describes the grid shapes are placed on.
type Layout struct {
	OriginX     int `toml:"origin_x"`
	OriginY     int `toml:"origin_y"`
	Spacing     int `toml:"spacing"`
	Columns     int `toml:"columns"`
	ShapeWidth  int `toml:"shape_width"`
	ShapeHeight int `toml:"shape_height"`
	StageWidth  int `toml:"stage_width"`
	StageHeight int `toml:"stage_height"`
}

// DefaultLayout returns the standard five-column grid on a 1000×1000 stage.
func DefaultLayout() Layout {
	return Layout{
		OriginX:     DefaultOriginX,
		OriginY:     DefaultOriginY,
		Spacing:     DefaultSpacing,
		Columns:     DefaultColumns,
		ShapeWidth:  DefaultShapeWidth,
		ShapeHeight: DefaultShapeHeight,
		StageWidth:  DefaultStageWidth,
		StageHeight: DefaultStageHeight,
	}
}

// Validate checks that the grid dimensions are usable.
func (l Layout) Validate() error {
	checks := []struct {
		name  string
		value int
	}{
		{"spacing", l.Spacing},
		{"columns", l.Columns},
		{"shape_width", l.ShapeWidth},
		{"shape_height", l.ShapeHeight},
		{"stage_width", l.StageWidth},
		{"stage_height", l.StageHeight},
	}
	for _, c := range checks {
		if c.value <= 0 {
			return errors.New(errors.ErrCodeInvalidConfig, "layout %s must be positive, got %d", c.name, c.value)
		}
	}
	return nil
}

// Position returns the top-left corner of the i-th shape of a group.
func (l Layout) Position(i int) (x, y int) {
	x = l.OriginX + (i%l.Columns)*l.Spacing
	y = l.OriginY + (i/l.Columns)*l.Spacing
	return x, y
}
