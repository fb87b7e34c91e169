package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/TileBoard/internal/model"
)

func TestSnapshot_ListsEachTileOnceInOriginOrder(t *testing.T) {
	b := newTestBoard(t, 3, 3)

	_, err := b.Place("a", 0, 0, 2, 2)
	require.NoError(t, err)

	snap := b.Snapshot()

	// One compound tile plus five remaining units.
	require.Len(t, snap.Tiles, 6)
	assert.Equal(t, model.TileRect{Row: 0, Column: 0, RowSpan: 2, ColumnSpan: 2}, snap.Tiles[0].Rect)
	assert.Equal(t, model.TileRect{Row: 0, Column: 2, RowSpan: 1, ColumnSpan: 1}, snap.Tiles[1].Rect)
	assert.Equal(t, model.TileRect{Row: 2, Column: 2, RowSpan: 1, ColumnSpan: 1}, snap.Tiles[5].Rect)
}

func TestSnapshot_IsDetachedFromBoard(t *testing.T) {
	b := newTestBoard(t, 3, 3)

	_, err := b.Place("a", 0, 0, 1, 1)
	require.NoError(t, err)
	snap := b.Snapshot()

	_, err = b.Remove("a")
	require.NoError(t, err)

	require.Len(t, snap.FilledTiles(), 1, "snapshot keeps the pre-removal state")
	assert.Equal(t, model.ItemID("a"), snap.FilledTiles()[0].Item)
}

func TestSnapshot_FillStats(t *testing.T) {
	b := newTestBoard(t, 4, 4)

	_, err := b.Place("a", 0, 0, 2, 2)
	require.NoError(t, err)
	_, err = b.Place("b", 2, 2, 2, 2)
	require.NoError(t, err)

	snap := b.Snapshot()

	assert.Equal(t, 8, snap.FilledCells())
	assert.InDelta(t, 0.5, snap.FillRatio(), 1e-9)
}
