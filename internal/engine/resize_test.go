package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/TileBoard/internal/model"
)

func TestResize_GrowEastClampedAtBoardEdge(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("d", 0, 0, 1, 2)
	require.NoError(t, err)

	// Only two columns remain on a 4-column board.
	res, err := b.Resize(0, 0, model.East, 5)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Granted)
	assert.Equal(t, model.TileRect{Row: 0, Column: 0, RowSpan: 1, ColumnSpan: 4}, res.Rect)
	assert.NoError(t, b.CheckPartition())
}

func TestResize_GrowStopsAtFirstOccupiedStrip(t *testing.T) {
	b := newTestBoard(t, 6, 6)

	_, err := b.Place("left", 0, 0, 2, 1)
	require.NoError(t, err)
	_, err = b.Place("right", 0, 4, 2, 1)
	require.NoError(t, err)

	// Columns 1-3 are free, column 4 is blocked: ask for 5, get 3.
	res, err := b.Resize(0, 0, model.East, 5)
	require.NoError(t, err)

	assert.Equal(t, 3, res.Granted)
	assert.Equal(t, model.TileRect{Row: 0, Column: 0, RowSpan: 2, ColumnSpan: 4}, res.Rect)
	assert.NoError(t, b.CheckPartition())
}

func TestResize_GrowBlockedByAdjacentTileGrantsZero(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("left", 0, 0, 1, 1)
	require.NoError(t, err)
	_, err = b.Place("right", 0, 1, 1, 1)
	require.NoError(t, err)

	res, err := b.Resize(0, 0, model.East, 3)
	require.NoError(t, err)

	assert.Zero(t, res.Granted, "neighbor directly adjacent")
	assert.Equal(t, model.TileRect{Row: 0, Column: 0, RowSpan: 1, ColumnSpan: 1}, res.Rect)
}

func TestResize_PartiallyOccupiedStripBlocksWholeStrip(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 0, 0, 2, 1)
	require.NoError(t, err)
	// Block only one of the two cells of the first strip east of a.
	_, err = b.Place("blocker", 1, 1, 1, 1)
	require.NoError(t, err)

	res, err := b.Resize(0, 0, model.East, 1)
	require.NoError(t, err)

	assert.Zero(t, res.Granted, "a strip with any filled cell is not consumable")
	assert.NoError(t, b.CheckPartition())
}

func TestResize_GrowAtBoundaryIsSilentNoOp(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 0, 0, 1, 1)
	require.NoError(t, err)

	res, err := b.Resize(0, 0, model.North, 2)
	require.NoError(t, err, "boundary clamp is not an error")
	assert.Zero(t, res.Granted)

	res, err = b.Resize(0, 0, model.West, 1)
	require.NoError(t, err)
	assert.Zero(t, res.Granted)
}

func TestResize_GrowNorthShiftsOrigin(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 3, 1, 1, 2)
	require.NoError(t, err)

	res, err := b.Resize(3, 1, model.North, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Granted)
	assert.Equal(t, model.TileRect{Row: 1, Column: 1, RowSpan: 3, ColumnSpan: 2}, res.Rect,
		"origin stays the upper-left corner, so it moves up")
	assert.NoError(t, b.CheckPartition())
}

func TestResize_GrowWestShiftsOrigin(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 2, 2, 2, 1)
	require.NoError(t, err)

	res, err := b.Resize(2, 2, model.West, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Granted)
	assert.Equal(t, model.TileRect{Row: 2, Column: 0, RowSpan: 2, ColumnSpan: 3}, res.Rect)
	assert.NoError(t, b.CheckPartition())
}

func TestResize_ShrinkEastShedsEasternStrips(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 1, 0, 2, 4)
	require.NoError(t, err)

	res, err := b.Resize(1, 0, model.East, -2)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Granted)
	assert.Equal(t, model.TileRect{Row: 1, Column: 0, RowSpan: 2, ColumnSpan: 2}, res.Rect,
		"western edge stays fixed")
	assert.True(t, b.IsAreaEmpty(1, 2, 2, 2), "shed cells are unfilled units again")
	assert.NoError(t, b.CheckPartition())
}

func TestResize_ShrinkNorthShedsNorthernStripsAndShiftsOrigin(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 1, 1, 3, 2)
	require.NoError(t, err)

	res, err := b.Resize(1, 1, model.North, -2)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Granted)
	assert.Equal(t, model.TileRect{Row: 3, Column: 1, RowSpan: 1, ColumnSpan: 2}, res.Rect,
		"southern edge stays fixed")
	assert.True(t, b.IsAreaEmpty(1, 1, 2, 2))
	assert.NoError(t, b.CheckPartition())
}

func TestResize_ShrinkClampsAtUnitSpan(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 0, 0, 1, 3)
	require.NoError(t, err)

	// Asking to shed more than span-1 sheds exactly span-1.
	res, err := b.Resize(0, 0, model.East, -5)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Granted)
	assert.Equal(t, model.TileRect{Row: 0, Column: 0, RowSpan: 1, ColumnSpan: 1}, res.Rect)

	// Further shrink in the same direction is a no-op.
	res, err = b.Resize(0, 0, model.East, -1)
	require.NoError(t, err)
	assert.Zero(t, res.Granted)
	assert.Equal(t, 1, res.Rect.ColumnSpan, "span never drops below 1")
	assert.NoError(t, b.CheckPartition())
}

func TestResize_ZeroUnitsIsNoOp(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 0, 0, 2, 2)
	require.NoError(t, err)

	res, err := b.Resize(0, 0, model.South, 0)
	require.NoError(t, err)
	assert.Zero(t, res.Granted)
	assert.Equal(t, model.TileRect{Row: 0, Column: 0, RowSpan: 2, ColumnSpan: 2}, res.Rect)
}

func TestResize_AnchorOutOfBounds(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Resize(6, 0, model.East, 1)
	assert.ErrorIs(t, err, model.ErrOutOfBounds)
}

func TestResize_AddressableByAnyCoveredCell(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 1, 1, 2, 2)
	require.NoError(t, err)

	// (2, 2) is inside the tile but not its origin.
	res, err := b.Resize(2, 2, model.South, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Granted)
	assert.Equal(t, model.TileRect{Row: 1, Column: 1, RowSpan: 3, ColumnSpan: 2}, res.Rect)
}

func TestResize_EmitsEventWithItemAndGeometry(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	var events []model.TileEvent
	b.OnTileResized(func(ev model.TileEvent) { events = append(events, ev) })

	_, err := b.Place("a", 0, 0, 1, 1)
	require.NoError(t, err)

	_, err = b.Resize(0, 0, model.South, 2)
	require.NoError(t, err)

	require.Len(t, events, 1)
	assert.Equal(t, model.ItemID("a"), events[0].Item)
	assert.Equal(t, model.TileRect{Row: 0, Column: 0, RowSpan: 3, ColumnSpan: 1}, events[0].Rect)

	// A clamped-to-zero request emits nothing.
	_, err = b.Resize(0, 0, model.West, 1)
	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestResize_UnfilledTileChangesGeometryWithoutEvent(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	var events int
	b.OnTileResized(func(model.TileEvent) { events++ })

	res, err := b.Resize(2, 2, model.East, 1)
	require.NoError(t, err)

	assert.Equal(t, 1, res.Granted, "the resolver works on geometry, not fill state")
	assert.Equal(t, model.TileRect{Row: 2, Column: 2, RowSpan: 1, ColumnSpan: 2}, res.Rect)
	assert.Zero(t, events, "no bound item, no event")
	assert.NoError(t, b.CheckPartition())
}

func TestResize_GrowShrinkRoundTrip(t *testing.T) {
	b := newTestBoard(t, 6, 4)

	_, err := b.Place("a", 2, 1, 1, 1)
	require.NoError(t, err)

	_, err = b.Resize(2, 1, model.East, 2)
	require.NoError(t, err)
	_, err = b.Resize(2, 1, model.East, -2)
	require.NoError(t, err)

	tile, err := b.TileOf("a")
	require.NoError(t, err)
	assert.Equal(t, model.TileRect{Row: 2, Column: 1, RowSpan: 1, ColumnSpan: 1}, tile.Rect)
	assert.Equal(t, 24, b.TileCount())
	assert.NoError(t, b.CheckPartition())
}
