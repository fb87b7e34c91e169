package model

import "github.com/google/uuid"

// ItemID is an opaque handle for an item hosted on the board. The engine
// never interprets it beyond equality; callers typically wrap a widget or
// panel behind one.
type ItemID string

// NewItemID returns a fresh short random handle.
func NewItemID() ItemID {
	return ItemID(uuid.New().String()[:8])
}

// Direction identifies the edge a resize travels toward.
type Direction int

const (
	North Direction = iota // toward row 0
	South                  // toward the last row
	West                   // toward column 0
	East                   // toward the last column
)

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case West:
		return "West"
	case East:
		return "East"
	default:
		return "Unknown"
	}
}

// Horizontal reports whether the direction runs along the column axis.
func (d Direction) Horizontal() bool {
	return d == West || d == East
}

// TowardOrigin reports whether the direction points at row 0 / column 0.
// Growth in such a direction moves the tile's origin backward.
func (d Direction) TowardOrigin() bool {
	return d == North || d == West
}

// CellRef addresses a single unit cell on the board.
type CellRef struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

// TileRect is a rectangle in grid units. Right and Bottom edges are
// exclusive, so a unit cell at (r, c) is {r, c, 1, 1}.
type TileRect struct {
	Row        int `json:"row"`
	Column     int `json:"column"`
	RowSpan    int `json:"row_span"`
	ColumnSpan int `json:"column_span"`
}

// Right returns the exclusive eastern edge column.
func (r TileRect) Right() int {
	return r.Column + r.ColumnSpan
}

// Bottom returns the exclusive southern edge row.
func (r TileRect) Bottom() int {
	return r.Row + r.RowSpan
}

// Area returns the number of unit cells the rectangle covers.
func (r TileRect) Area() int {
	if r.RowSpan <= 0 || r.ColumnSpan <= 0 {
		return 0
	}
	return r.RowSpan * r.ColumnSpan
}

// Contains reports whether the cell (row, column) lies inside the rectangle.
func (r TileRect) Contains(row, column int) bool {
	return row >= r.Row && row < r.Bottom() && column >= r.Column && column < r.Right()
}

// Cells lists every unit cell the rectangle covers, row-major.
func (r TileRect) Cells() []CellRef {
	cells := make([]CellRef, 0, r.Area())
	for row := r.Row; row < r.Bottom(); row++ {
		for column := r.Column; column < r.Right(); column++ {
			cells = append(cells, CellRef{Row: row, Column: column})
		}
	}
	return cells
}

// Tile is one rectangular region of the board, filled or empty. Many board
// cells may share a single Tile; identity is the pointer held by the
// engine's cell index.
type Tile struct {
	Rect   TileRect `json:"rect"`
	Filled bool     `json:"filled"`
	Item   ItemID   `json:"item,omitempty"` // set only when Filled
}

// TileEvent is delivered to resize/move listeners after a tile's geometry
// changed. Rect is the tile's resulting position and span.
type TileEvent struct {
	Item ItemID
	Rect TileRect
}

// ResizeResult reports the outcome of a directional resize. Granted is the
// number of unit strips actually applied; 0 means the request was clamped
// or blocked down to a no-op.
type ResizeResult struct {
	Granted int
	Rect    TileRect
}

// BoardConfig holds the construction parameters of a board. CellWidth,
// CellHeight and Spacing are pixel values the engine stores for its
// rendering collaborator but never interprets.
type BoardConfig struct {
	Rows       int `json:"rows"`
	Columns    int `json:"columns"`
	CellWidth  int `json:"cell_width"`  // px
	CellHeight int `json:"cell_height"` // px
	Spacing    int `json:"spacing"`     // px between adjacent tiles
}

// DefaultBoardConfig matches the demo window of the original desktop app:
// a 6x4 board of 150x100 px cells with 5 px spacing.
func DefaultBoardConfig() BoardConfig {
	return BoardConfig{
		Rows:       6,
		Columns:    4,
		CellWidth:  150,
		CellHeight: 100,
		Spacing:    5,
	}
}
