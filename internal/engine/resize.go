package engine

import (
	"fmt"

	"github.com/piwi3910/TileBoard/internal/model"
)

// Resize moves one edge of the tile owning (row, column). The direction
// names the edge being manipulated; positive units push that edge outward
// (growth), negative units pull it inward (shrink). The opposite edge
// never moves.
//
// Growth is clamped at the board boundary, then scanned strip by strip:
// the tile absorbs only fully free strips and stops at the first strip
// containing a filled cell. Shrink is clamped so the span never drops
// below 1; the shed strips go back to being unfilled unit tiles.
//
// A request clamped or blocked down to zero is a silent no-op, not an
// error. The resolver works on tile geometry alone, so resizing an
// unfilled tile is permitted; it just emits no event.
func (b *Board) Resize(row, column int, dir model.Direction, units int) (model.ResizeResult, error) {
	if !b.inBounds(row, column) {
		return model.ResizeResult{}, fmt.Errorf("%w: (%d, %d)", model.ErrOutOfBounds, row, column)
	}

	anchor := b.cells[row][column]
	granted := 0
	if units > 0 {
		var rect model.TileRect
		var cells []model.CellRef
		granted, rect, cells = b.growableStrips(anchor.Rect, dir, units)
		if granted > 0 {
			b.mergeInto(anchor, rect, cells)
		}
	} else if units < 0 {
		var rect model.TileRect
		var cells []model.CellRef
		granted, rect, cells = shedStrips(anchor.Rect, dir, -units)
		if granted > 0 {
			b.splitOut(cells)
			anchor.Rect = rect
		}
	}

	if granted > 0 && anchor.Filled {
		b.emitResized(model.TileEvent{Item: anchor.Item, Rect: anchor.Rect})
	}
	return model.ResizeResult{Granted: granted, Rect: anchor.Rect}, nil
}

// growableStrips clamps the request against the board boundary in dir,
// then walks outward one strip at a time, stopping at the first strip
// with a filled cell. It returns the number of free strips, the grown
// rectangle, and the cells those strips cover. The scan precedes any
// mutation, so a blocked request leaves the board untouched.
func (b *Board) growableStrips(rect model.TileRect, dir model.Direction, units int) (int, model.TileRect, []model.CellRef) {
	var limit int
	switch dir {
	case model.North:
		limit = min(units, rect.Row)
	case model.South:
		limit = min(units, b.rows-rect.Bottom())
	case model.West:
		limit = min(units, rect.Column)
	case model.East:
		limit = min(units, b.columns-rect.Right())
	}

	granted := 0
	var cells []model.CellRef
	for i := 0; i < limit; i++ {
		var strip []model.CellRef
		switch dir {
		case model.North:
			strip = rowStrip(rect, rect.Row-1-i)
		case model.South:
			strip = rowStrip(rect, rect.Bottom()+i)
		case model.West:
			strip = columnStrip(rect, rect.Column-1-i)
		case model.East:
			strip = columnStrip(rect, rect.Right()+i)
		}
		if b.anyFilled(strip) {
			break
		}
		granted++
		cells = append(cells, strip...)
	}
	return granted, grownRect(rect, dir, granted), cells
}

// shedStrips clamps a shrink request so the remaining span stays at least
// 1, and selects the strips nearest the retracting edge. Shrinking the
// north edge sheds the northern strips; the southern edge stays fixed, and
// symmetrically for the other directions.
func shedStrips(rect model.TileRect, dir model.Direction, units int) (int, model.TileRect, []model.CellRef) {
	var granted int
	if dir.Horizontal() {
		granted = min(units, rect.ColumnSpan-1)
	} else {
		granted = min(units, rect.RowSpan-1)
	}
	if granted <= 0 {
		return 0, rect, nil
	}

	var cells []model.CellRef
	for i := 0; i < granted; i++ {
		switch dir {
		case model.North:
			cells = append(cells, rowStrip(rect, rect.Row+i)...)
		case model.South:
			cells = append(cells, rowStrip(rect, rect.Bottom()-1-i)...)
		case model.West:
			cells = append(cells, columnStrip(rect, rect.Column+i)...)
		case model.East:
			cells = append(cells, columnStrip(rect, rect.Right()-1-i)...)
		}
	}
	return granted, shrunkRect(rect, dir, granted), cells
}

// grownRect extends the dir edge of rect outward by units. The origin
// stays the upper-left corner, so north/west growth shifts it backward.
func grownRect(rect model.TileRect, dir model.Direction, units int) model.TileRect {
	switch dir {
	case model.North:
		rect.Row -= units
		rect.RowSpan += units
	case model.South:
		rect.RowSpan += units
	case model.West:
		rect.Column -= units
		rect.ColumnSpan += units
	case model.East:
		rect.ColumnSpan += units
	}
	return rect
}

// shrunkRect pulls the dir edge of rect inward by units.
func shrunkRect(rect model.TileRect, dir model.Direction, units int) model.TileRect {
	switch dir {
	case model.North:
		rect.Row += units
		rect.RowSpan -= units
	case model.South:
		rect.RowSpan -= units
	case model.West:
		rect.Column += units
		rect.ColumnSpan -= units
	case model.East:
		rect.ColumnSpan -= units
	}
	return rect
}

// rowStrip lists the cells of one full-width row strip of rect.
func rowStrip(rect model.TileRect, row int) []model.CellRef {
	strip := make([]model.CellRef, 0, rect.ColumnSpan)
	for column := rect.Column; column < rect.Right(); column++ {
		strip = append(strip, model.CellRef{Row: row, Column: column})
	}
	return strip
}

// columnStrip lists the cells of one full-height column strip of rect.
func columnStrip(rect model.TileRect, column int) []model.CellRef {
	strip := make([]model.CellRef, 0, rect.RowSpan)
	for row := rect.Row; row < rect.Bottom(); row++ {
		strip = append(strip, model.CellRef{Row: row, Column: column})
	}
	return strip
}

func (b *Board) anyFilled(cells []model.CellRef) bool {
	for _, c := range cells {
		if b.cells[c.Row][c.Column].Filled {
			return true
		}
	}
	return false
}
