package model

// BoardSnapshot is a read-only copy of a board's partition, taken for
// rendering and export. Tiles holds every distinct tile once, ordered by
// origin row then column.
type BoardSnapshot struct {
	Config BoardConfig `json:"config"`
	Tiles  []Tile      `json:"tiles"`
}

// FilledTiles returns the tiles hosting an item, in snapshot order.
func (s BoardSnapshot) FilledTiles() []Tile {
	var filled []Tile
	for _, tile := range s.Tiles {
		if tile.Filled {
			filled = append(filled, tile)
		}
	}
	return filled
}

// FilledCells returns the number of cells covered by filled tiles.
func (s BoardSnapshot) FilledCells() int {
	cells := 0
	for _, tile := range s.Tiles {
		if tile.Filled {
			cells += tile.Rect.Area()
		}
	}
	return cells
}

// FillRatio returns the filled fraction of the board, in [0, 1].
func (s BoardSnapshot) FillRatio() float64 {
	total := s.Config.Rows * s.Config.Columns
	if total == 0 {
		return 0
	}
	return float64(s.FilledCells()) / float64(total)
}
