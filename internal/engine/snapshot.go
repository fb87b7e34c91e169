package engine

import "github.com/piwi3910/TileBoard/internal/model"

// Snapshot copies the current partition for rendering and export. Each
// distinct tile appears once, ordered by origin row then column.
func (b *Board) Snapshot() model.BoardSnapshot {
	snap := model.BoardSnapshot{
		Config: model.BoardConfig{
			Rows:       b.rows,
			Columns:    b.columns,
			CellWidth:  b.cellWidth,
			CellHeight: b.cellHeight,
			Spacing:    b.spacing,
		},
	}
	for row := range b.cells {
		for column, tile := range b.cells[row] {
			if tile.Rect.Row == row && tile.Rect.Column == column {
				snap.Tiles = append(snap.Tiles, *tile)
			}
		}
	}
	return snap
}
