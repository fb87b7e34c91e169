package export

import (
	"fmt"

	"github.com/piwi3910/TileBoard/internal/model"
	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"
	"github.com/yofu/dxf/table"
)

// ExportDXF writes the board as a wireframe drawing in grid units: the
// board outline on layer BOARD and the boundary of every tile on layer
// TILES. The DXF Y axis points up, so rows are flipped to keep row 0 at
// the top like on screen.
func ExportDXF(path string, snap model.BoardSnapshot) error {
	rows := snap.Config.Rows
	if rows <= 0 || snap.Config.Columns <= 0 {
		return fmt.Errorf("no board to export")
	}

	d := dxf.NewDrawing()

	if _, err := d.AddLayer("BOARD", color.White, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to create BOARD layer: %w", err)
	}
	outline := model.TileRect{Row: 0, Column: 0, RowSpan: rows, ColumnSpan: snap.Config.Columns}
	if err := drawRect(d, outline, rows); err != nil {
		return err
	}

	if _, err := d.AddLayer("TILES", color.Cyan, table.LT_CONTINUOUS, true); err != nil {
		return fmt.Errorf("failed to create TILES layer: %w", err)
	}
	for _, tile := range snap.Tiles {
		if err := drawRect(d, tile.Rect, rows); err != nil {
			return err
		}
	}

	return d.SaveAs(path)
}

// drawRect adds the four edges of a tile rectangle as LINE entities,
// flipping the row axis so the drawing matches the on-screen orientation.
func drawRect(d *drawing.Drawing, rect model.TileRect, rows int) error {
	left := float64(rect.Column)
	right := float64(rect.Right())
	top := float64(rows - rect.Row)
	bottom := float64(rows - rect.Bottom())

	lines := [][4]float64{
		{left, top, right, top},
		{right, top, right, bottom},
		{right, bottom, left, bottom},
		{left, bottom, left, top},
	}
	for _, l := range lines {
		if _, err := d.Line(l[0], l[1], 0, l[2], l[3], 0); err != nil {
			return fmt.Errorf("failed to draw tile edge: %w", err)
		}
	}
	return nil
}
