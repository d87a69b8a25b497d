package export

import (
	"fmt"

	"github.com/piwi3910/BoxStack/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/drawing"
)

// ExportDXF writes the stack as a 2D CAD drawing: a front elevation (one
// rectangle per level, stacked bottom-up and centered) and a plan view of
// the nested footprints, side by side. Dimensions are taken as drawing units.
func ExportDXF(path string, stack model.Stack) error {
	if len(stack) == 0 {
		return fmt.Errorf("no stack to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("ELEVATION", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add elevation layer: %w", err)
	}

	y := 0.0
	for _, o := range stack {
		w := float64(o.Width)
		h := float64(o.Height)
		if err := drawRect(d, -w/2, y, w, h); err != nil {
			return err
		}
		y += h
	}

	// Plan view placed to the right of the elevation with a gap of half the
	// base width.
	if _, err := d.AddLayer("PLAN", dxf.DefaultColor, dxf.DefaultLineType, true); err != nil {
		return fmt.Errorf("failed to add plan layer: %w", err)
	}

	base := stack[0]
	offsetX := float64(base.Width) * 1.5
	for _, o := range stack {
		w := float64(o.Width)
		dp := float64(o.Depth)
		if err := drawRect(d, offsetX-w/2, -dp/2, w, dp); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}

// drawRect draws an axis-aligned rectangle from its lower-left corner using
// four line entities on the current layer.
func drawRect(d *drawing.Drawing, x, y, w, h float64) error {
	lines := [][4]float64{
		{x, y, x + w, y},
		{x + w, y, x + w, y + h},
		{x + w, y + h, x, y + h},
		{x, y + h, x, y},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return fmt.Errorf("failed to draw line: %w", err)
		}
	}
	return nil
}
