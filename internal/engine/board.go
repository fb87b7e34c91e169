// Package engine implements the tile-partition engine: a fixed grid of
// unit cells divided into non-overlapping rectangular tiles, each empty or
// hosting exactly one item. Placement merges unit cells into a compound
// tile, removal splits it back, and directional resize grows or shrinks a
// tile strip by strip against board bounds and occupied neighbors.
//
// A Board is NOT thread-safe. It is owned by a single logical actor;
// callers invoking it from multiple goroutines must serialize access.
package engine

import (
	"fmt"

	"github.com/piwi3910/TileBoard/internal/model"
)

// Board owns the cell-to-tile index and the item registry. Every cell
// always maps to exactly one tile whose rectangle covers it; the union of
// all tile rectangles covers the board exactly once.
type Board struct {
	rows    int
	columns int

	// Display parameters stored for the rendering collaborator. The engine
	// never does pixel math with them beyond TilePixelSize.
	cellWidth  int
	cellHeight int
	spacing    int

	// cells[row][column] points at the owning tile. Many cells share one
	// tile; tile identity is this pointer.
	cells [][]*model.Tile

	items map[model.ItemID]*model.Tile

	onResized []func(model.TileEvent)
	onMoved   []func(model.TileEvent)
}

// New creates a board of unfilled unit tiles, one per cell.
func New(cfg model.BoardConfig) (*Board, error) {
	if cfg.Rows <= 0 || cfg.Columns <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", model.ErrBadConfig, cfg.Rows, cfg.Columns)
	}

	b := &Board{
		rows:       cfg.Rows,
		columns:    cfg.Columns,
		cellWidth:  cfg.CellWidth,
		cellHeight: cfg.CellHeight,
		spacing:    cfg.Spacing,
		items:      make(map[model.ItemID]*model.Tile),
	}

	b.cells = make([][]*model.Tile, cfg.Rows)
	for row := range b.cells {
		b.cells[row] = make([]*model.Tile, cfg.Columns)
		for column := range b.cells[row] {
			b.cells[row][column] = unitTile(row, column)
		}
	}
	return b, nil
}

func unitTile(row, column int) *model.Tile {
	return &model.Tile{
		Rect: model.TileRect{Row: row, Column: column, RowSpan: 1, ColumnSpan: 1},
	}
}

// Rows returns the number of rows.
func (b *Board) Rows() int { return b.rows }

// Columns returns the number of columns.
func (b *Board) Columns() int { return b.columns }

// CellWidth returns the configured unit cell width in pixels.
func (b *Board) CellWidth() int { return b.cellWidth }

// CellHeight returns the configured unit cell height in pixels.
func (b *Board) CellHeight() int { return b.cellHeight }

// Spacing returns the configured gap between adjacent tiles in pixels.
func (b *Board) Spacing() int { return b.spacing }

// SetSpacing updates the gap between adjacent tiles.
func (b *Board) SetSpacing(px int) { b.spacing = px }

// SetCellSize updates the unit cell pixel dimensions.
func (b *Board) SetCellSize(width, height int) {
	b.cellWidth = width
	b.cellHeight = height
}

// TilePixelSize returns the pixel dimensions of a tile rectangle: span
// cells plus the spacing gaps swallowed between them.
func (b *Board) TilePixelSize(rect model.TileRect) (width, height int) {
	width = rect.ColumnSpan*b.cellWidth + (rect.ColumnSpan-1)*b.spacing
	height = rect.RowSpan*b.cellHeight + (rect.RowSpan-1)*b.spacing
	return width, height
}

func (b *Board) inBounds(row, column int) bool {
	return row >= 0 && row < b.rows && column >= 0 && column < b.columns
}

// IsFilled reports whether the tile owning (row, column) hosts an item.
func (b *Board) IsFilled(row, column int) (bool, error) {
	if !b.inBounds(row, column) {
		return false, fmt.Errorf("%w: (%d, %d)", model.ErrOutOfBounds, row, column)
	}
	return b.cells[row][column].Filled, nil
}

// TileAt returns a copy of the tile owning (row, column).
func (b *Board) TileAt(row, column int) (model.Tile, error) {
	if !b.inBounds(row, column) {
		return model.Tile{}, fmt.Errorf("%w: (%d, %d)", model.ErrOutOfBounds, row, column)
	}
	return *b.cells[row][column], nil
}

// TileRectAt returns the rectangle of the tile owning (row, column).
func (b *Board) TileRectAt(row, column int) (model.TileRect, error) {
	tile, err := b.TileAt(row, column)
	if err != nil {
		return model.TileRect{}, err
	}
	return tile.Rect, nil
}

// TileCount returns the number of distinct tiles on the board.
func (b *Board) TileCount() int {
	seen := make(map[*model.Tile]struct{})
	for _, row := range b.cells {
		for _, tile := range row {
			seen[tile] = struct{}{}
		}
	}
	return len(seen)
}

// OnTileResized registers a listener invoked after a filled tile's
// geometry changed through Resize.
func (b *Board) OnTileResized(fn func(model.TileEvent)) {
	b.onResized = append(b.onResized, fn)
}

// OnTileMoved registers a listener invoked after a filled tile was moved
// through MoveItem.
func (b *Board) OnTileMoved(fn func(model.TileEvent)) {
	b.onMoved = append(b.onMoved, fn)
}

func (b *Board) emitResized(ev model.TileEvent) {
	for _, fn := range b.onResized {
		fn(ev)
	}
}

func (b *Board) emitMoved(ev model.TileEvent) {
	for _, fn := range b.onMoved {
		fn(ev)
	}
}

// mergeInto is one of the two structural mutators. It reassigns every cell
// in cells to the anchor tile and updates the anchor's rectangle in place,
// preserving its identity. The caller has already verified that the
// absorbed cells belong to unfilled tiles and that rect stays in bounds.
func (b *Board) mergeInto(anchor *model.Tile, rect model.TileRect, cells []model.CellRef) {
	for _, c := range cells {
		b.cells[c.Row][c.Column] = anchor
	}
	anchor.Rect = rect
}

// splitOut is the other structural mutator. Every listed cell gets a fresh
// unfilled unit tile, dropping its reference to the previous owner.
func (b *Board) splitOut(cells []model.CellRef) {
	for _, c := range cells {
		b.cells[c.Row][c.Column] = unitTile(c.Row, c.Column)
	}
}

// CheckPartition verifies the partition invariant: every cell's owner
// covers that cell, every owner's rectangle lies in bounds and is exactly
// tiled by cells pointing back at it, and the registry agrees with the
// tiles' fill state. It returns nil when the board is consistent.
func (b *Board) CheckPartition() error {
	tiles := make(map[*model.Tile]struct{})
	for row := range b.cells {
		for column, tile := range b.cells[row] {
			if tile == nil {
				return fmt.Errorf("cell (%d, %d) has no owner", row, column)
			}
			if !tile.Rect.Contains(row, column) {
				return fmt.Errorf("cell (%d, %d) owned by tile %+v that does not cover it", row, column, tile.Rect)
			}
			tiles[tile] = struct{}{}
		}
	}

	covered := 0
	for tile := range tiles {
		r := tile.Rect
		if r.Row < 0 || r.Column < 0 || r.Bottom() > b.rows || r.Right() > b.columns {
			return fmt.Errorf("tile %+v exceeds board bounds %dx%d", r, b.rows, b.columns)
		}
		for _, c := range r.Cells() {
			if b.cells[c.Row][c.Column] != tile {
				return fmt.Errorf("tile %+v does not own its cell (%d, %d)", r, c.Row, c.Column)
			}
		}
		if tile.Filled {
			bound, ok := b.items[tile.Item]
			if !ok || bound != tile {
				return fmt.Errorf("filled tile %+v is not registered for item %q", r, tile.Item)
			}
		} else if tile.Item != "" {
			return fmt.Errorf("unfilled tile %+v still references item %q", r, tile.Item)
		}
		covered += r.Area()
	}
	if covered != b.rows*b.columns {
		return fmt.Errorf("tiles cover %d cells, board has %d", covered, b.rows*b.columns)
	}

	for item, tile := range b.items {
		if !tile.Filled || tile.Item != item {
			return fmt.Errorf("registry entry %q points at tile %+v bound to %q", item, tile.Rect, tile.Item)
		}
	}
	return nil
}
