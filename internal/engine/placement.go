package engine

import (
	"fmt"
	"sort"

	"github.com/piwi3910/TileBoard/internal/model"
)

// IsAreaEmpty reports whether the given rectangle lies fully on the board
// and covers only unfilled tiles. It is the sole admission check for
// placement; a rectangle leaving the board is simply not empty.
func (b *Board) IsAreaEmpty(row, column, rowSpan, columnSpan int) bool {
	if row < 0 || column < 0 || row+rowSpan > b.rows || column+columnSpan > b.columns {
		return false
	}
	for r := row; r < row+rowSpan; r++ {
		for c := column; c < column+columnSpan; c++ {
			if b.cells[r][c].Filled {
				return false
			}
		}
	}
	return true
}

// Place puts item on the board over the given rectangle, merging all
// covered unit tiles into one filled tile anchored at (row, column).
func (b *Board) Place(item model.ItemID, row, column, rowSpan, columnSpan int) (model.TileRect, error) {
	if rowSpan < 1 || columnSpan < 1 {
		return model.TileRect{}, fmt.Errorf("%w: %dx%d", model.ErrBadSpan, rowSpan, columnSpan)
	}
	if _, bound := b.items[item]; bound {
		return model.TileRect{}, fmt.Errorf("%w: %q", model.ErrDuplicateItem, item)
	}
	if !b.IsAreaEmpty(row, column, rowSpan, columnSpan) {
		return model.TileRect{}, fmt.Errorf("%w: (%d, %d) %dx%d", model.ErrAreaOccupied, row, column, rowSpan, columnSpan)
	}

	rect := model.TileRect{Row: row, Column: column, RowSpan: rowSpan, ColumnSpan: columnSpan}
	anchor := b.cells[row][column]
	if rect.Area() > 1 {
		b.mergeInto(anchor, rect, rect.Cells())
	}
	anchor.Filled = true
	anchor.Item = item
	b.items[item] = anchor
	return rect, nil
}

// Remove takes item off the board and hard-splits its tile back into
// unfilled unit tiles. It returns the rectangle that was freed.
func (b *Board) Remove(item model.ItemID) (model.TileRect, error) {
	tile, bound := b.items[item]
	if !bound {
		return model.TileRect{}, fmt.Errorf("%w: %q", model.ErrUnknownItem, item)
	}

	rect := tile.Rect
	// Unconditionally split every covered cell so no compound tile can
	// survive removal, whatever resize history the tile has.
	b.splitOut(rect.Cells())
	delete(b.items, item)
	return rect, nil
}

// HardSplit fully unit-splits the listed cells and returns the fresh unit
// tile now at (row, column), for callers that keep addressing that
// location afterward. The listed cells must include (row, column). This is
// purely structural: it does not touch the item registry, so callers
// splitting a filled tile must unbind its item themselves.
func (b *Board) HardSplit(row, column int, cells []model.CellRef) (model.Tile, error) {
	target := model.CellRef{Row: row, Column: column}
	found := false
	for _, c := range cells {
		if !b.inBounds(c.Row, c.Column) {
			return model.Tile{}, fmt.Errorf("%w: (%d, %d)", model.ErrOutOfBounds, c.Row, c.Column)
		}
		if c == target {
			found = true
		}
	}
	if !found {
		return model.Tile{}, fmt.Errorf("%w: (%d, %d) not among cells to split", model.ErrOutOfBounds, row, column)
	}

	b.splitOut(cells)
	return *b.cells[row][column], nil
}

// MoveItem relocates a placed item so its tile's origin lands on
// (row, column), keeping its span. The item's own cells are freed before
// the target is checked, so a move overlapping the old position succeeds.
// On failure the item is restored at its previous position.
func (b *Board) MoveItem(item model.ItemID, row, column int) error {
	tile, bound := b.items[item]
	if !bound {
		return fmt.Errorf("%w: %q", model.ErrUnknownItem, item)
	}

	prev := tile.Rect
	if _, err := b.Remove(item); err != nil {
		return err
	}
	rect, err := b.Place(item, row, column, prev.RowSpan, prev.ColumnSpan)
	if err != nil {
		// Target blocked or off the board; the old area is necessarily
		// free again, so restoring cannot fail.
		if _, restoreErr := b.Place(item, prev.Row, prev.Column, prev.RowSpan, prev.ColumnSpan); restoreErr != nil {
			return fmt.Errorf("restoring %q after failed move: %w", item, restoreErr)
		}
		return err
	}

	b.emitMoved(model.TileEvent{Item: item, Rect: rect})
	return nil
}

// TileOf returns a copy of the tile hosting item.
func (b *Board) TileOf(item model.ItemID) (model.Tile, error) {
	tile, bound := b.items[item]
	if !bound {
		return model.Tile{}, fmt.Errorf("%w: %q", model.ErrUnknownItem, item)
	}
	return *tile, nil
}

// ItemAt returns the item hosted by the tile owning (row, column), or ""
// when that tile is unfilled.
func (b *Board) ItemAt(row, column int) (model.ItemID, error) {
	tile, err := b.TileAt(row, column)
	if err != nil {
		return "", err
	}
	return tile.Item, nil
}

// Items returns all placed item handles in stable (sorted) order.
func (b *Board) Items() []model.ItemID {
	items := make([]model.ItemID, 0, len(b.items))
	for item := range b.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i] < items[j] })
	return items
}
