// Package widgets contains the custom fyne widgets of the application.
package widgets

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/TileBoard/internal/engine"
	"github.com/piwi3910/TileBoard/internal/model"
)

// Tile colors — cycle through these for visual distinction.
var tileColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 200},  // green
	{R: 33, G: 150, B: 243, A: 200}, // blue
	{R: 255, G: 152, B: 0, A: 200},  // orange
	{R: 156, G: 39, B: 176, A: 200}, // purple
	{R: 0, G: 188, B: 212, A: 200},  // cyan
	{R: 244, G: 67, B: 54, A: 200},  // red
	{R: 255, G: 235, B: 59, A: 200}, // yellow
	{R: 121, G: 85, B: 72, A: 200},  // brown
}

var idleColor = color.NRGBA{R: 240, G: 240, B: 240, A: 255}

// edgeGrip is the pixel band along a tile border that starts a resize
// drag instead of a move drag.
const edgeGrip = float32(8)

type dragMode int

const (
	dragNone dragMode = iota
	dragMove
	dragResize
)

type dragState struct {
	mode    dragMode
	tile    model.TileRect
	edge    model.Direction // valid for dragResize
	start   fyne.Position
	current fyne.Position
}

// BoardCanvas renders a tile board and translates pointer drags into
// engine move and resize requests. The engine itself stays free of pixel
// math; all of it happens here.
type BoardCanvas struct {
	widget.BaseWidget

	board         *engine.Board
	dragEnabled   bool
	resizeEnabled bool
	cursor        desktop.Cursor
	drag          *dragState

	// OnTileTapped is invoked with the tapped item, or "" for an empty
	// tile.
	OnTileTapped func(item model.ItemID, row, column int)

	// OnBoardChanged is invoked after a successful move or resize.
	OnBoardChanged func()
}

func NewBoardCanvas(board *engine.Board) *BoardCanvas {
	bc := &BoardCanvas{
		board:         board,
		dragEnabled:   true,
		resizeEnabled: true,
		cursor:        desktop.DefaultCursor,
	}
	bc.ExtendBaseWidget(bc)
	return bc
}

// SetDragEnabled controls whether tiles can be dragged to a new position.
func (bc *BoardCanvas) SetDragEnabled(enabled bool) { bc.dragEnabled = enabled }

// SetResizeEnabled controls whether tile edges can be dragged to resize.
func (bc *BoardCanvas) SetResizeEnabled(enabled bool) { bc.resizeEnabled = enabled }

func (bc *BoardCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &boardCanvasRenderer{bc: bc}
	r.rebuild()
	return r
}

// stepX and stepY are the pixel pitch of one grid unit including the gap.
func (bc *BoardCanvas) stepX() float32 {
	return float32(bc.board.CellWidth() + bc.board.Spacing())
}

func (bc *BoardCanvas) stepY() float32 {
	return float32(bc.board.CellHeight() + bc.board.Spacing())
}

// tilePixelRect returns the widget-space rectangle of a tile.
func (bc *BoardCanvas) tilePixelRect(rect model.TileRect) (pos fyne.Position, size fyne.Size) {
	w, h := bc.board.TilePixelSize(rect)
	pos = fyne.NewPos(float32(rect.Column)*bc.stepX(), float32(rect.Row)*bc.stepY())
	return pos, fyne.NewSize(float32(w), float32(h))
}

// cellAt maps a widget-space position to grid coordinates, clamped to the
// board.
func (bc *BoardCanvas) cellAt(pos fyne.Position) (row, column int) {
	row = int(pos.Y / bc.stepY())
	column = int(pos.X / bc.stepX())
	row = max(0, min(row, bc.board.Rows()-1))
	column = max(0, min(column, bc.board.Columns()-1))
	return row, column
}

// edgeAt reports which tile edge, if any, the position grips.
func (bc *BoardCanvas) edgeAt(rect model.TileRect, pos fyne.Position) (model.Direction, bool) {
	tilePos, tileSize := bc.tilePixelRect(rect)
	switch {
	case pos.X-tilePos.X <= edgeGrip:
		return model.West, true
	case tilePos.X+tileSize.Width-pos.X <= edgeGrip:
		return model.East, true
	case pos.Y-tilePos.Y <= edgeGrip:
		return model.North, true
	case tilePos.Y+tileSize.Height-pos.Y <= edgeGrip:
		return model.South, true
	}
	return model.North, false
}

func (bc *BoardCanvas) Tapped(ev *fyne.PointEvent) {
	if bc.OnTileTapped == nil {
		return
	}
	row, column := bc.cellAt(ev.Position)
	item, err := bc.board.ItemAt(row, column)
	if err != nil {
		return
	}
	bc.OnTileTapped(item, row, column)
}

func (bc *BoardCanvas) Dragged(ev *fyne.DragEvent) {
	if bc.drag == nil {
		bc.startDrag(ev)
	}
	if bc.drag != nil {
		bc.drag.current = ev.Position
	}
}

func (bc *BoardCanvas) startDrag(ev *fyne.DragEvent) {
	start := fyne.NewPos(ev.Position.X-ev.Dragged.DX, ev.Position.Y-ev.Dragged.DY)
	row, column := bc.cellAt(start)
	tile, err := bc.board.TileAt(row, column)
	if err != nil || !tile.Filled {
		return
	}

	state := &dragState{tile: tile.Rect, start: start, current: ev.Position}
	if edge, ok := bc.edgeAt(tile.Rect, start); ok && bc.resizeEnabled {
		state.mode = dragResize
		state.edge = edge
	} else if bc.dragEnabled {
		state.mode = dragMove
	} else {
		return
	}
	bc.drag = state
}

func (bc *BoardCanvas) DragEnd() {
	drag := bc.drag
	bc.drag = nil
	if drag == nil || drag.mode == dragNone {
		return
	}

	dx := drag.current.X - drag.start.X
	dy := drag.current.Y - drag.start.Y
	changed := false

	switch drag.mode {
	case dragMove:
		row := drag.tile.Row + roundSteps(dy, bc.stepY())
		column := drag.tile.Column + roundSteps(dx, bc.stepX())
		if row == drag.tile.Row && column == drag.tile.Column {
			break
		}
		item, err := bc.board.ItemAt(drag.tile.Row, drag.tile.Column)
		if err != nil || item == "" {
			break
		}
		// A blocked move restores the tile; the drop just snaps back.
		changed = bc.board.MoveItem(item, row, column) == nil

	case dragResize:
		// Outward pointer motion on the gripped edge means growth.
		var units int
		switch drag.edge {
		case model.West:
			units = -roundSteps(dx, bc.stepX())
		case model.East:
			units = roundSteps(dx, bc.stepX())
		case model.North:
			units = -roundSteps(dy, bc.stepY())
		case model.South:
			units = roundSteps(dy, bc.stepY())
		}
		res, err := bc.board.Resize(drag.tile.Row, drag.tile.Column, drag.edge, units)
		changed = err == nil && res.Granted > 0
	}

	if changed {
		bc.Refresh()
		if bc.OnBoardChanged != nil {
			bc.OnBoardChanged()
		}
	}
}

// roundSteps converts a pixel delta to whole grid units.
func roundSteps(delta, step float32) int {
	if step <= 0 {
		return 0
	}
	steps := delta / step
	if steps >= 0 {
		return int(steps + 0.5)
	}
	return -int(-steps + 0.5)
}

func (bc *BoardCanvas) MouseIn(*desktop.MouseEvent) {}

func (bc *BoardCanvas) MouseOut() {
	bc.cursor = desktop.DefaultCursor
}

// MouseMoved updates the cursor shape: resize arrows on a filled tile's
// edges, a pointer over its interior.
func (bc *BoardCanvas) MouseMoved(ev *desktop.MouseEvent) {
	cursor := desktop.DefaultCursor
	row, column := bc.cellAt(ev.Position)
	if tile, err := bc.board.TileAt(row, column); err == nil && tile.Filled {
		if edge, ok := bc.edgeAt(tile.Rect, ev.Position); ok && bc.resizeEnabled {
			if edge.Horizontal() {
				cursor = desktop.HResizeCursor
			} else {
				cursor = desktop.VResizeCursor
			}
		} else if bc.dragEnabled {
			cursor = desktop.PointerCursor
		}
	}
	bc.cursor = cursor
}

func (bc *BoardCanvas) Cursor() desktop.Cursor {
	return bc.cursor
}

type boardCanvasRenderer struct {
	bc      *BoardCanvas
	objects []fyne.CanvasObject
}

func (r *boardCanvasRenderer) rebuild() {
	r.objects = nil
	bc := r.bc

	for _, tile := range bc.board.Snapshot().Tiles {
		pos, size := bc.tilePixelRect(tile.Rect)

		fill := idleColor
		if tile.Filled {
			fill = colorForItem(tile.Item)
		}
		rect := canvas.NewRectangle(fill)
		rect.Resize(size)
		rect.Move(pos)
		r.objects = append(r.objects, rect)

		border := canvas.NewRectangle(color.Transparent)
		border.StrokeColor = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
		border.StrokeWidth = 1
		border.Resize(size)
		border.Move(pos)
		r.objects = append(r.objects, border)

		if tile.Filled {
			label := canvas.NewText(string(tile.Item), color.Black)
			label.TextSize = 12
			label.TextStyle = fyne.TextStyle{Bold: true}
			textSize := fyne.MeasureText(label.Text, label.TextSize, label.TextStyle)
			label.Move(fyne.NewPos(
				pos.X+(size.Width-textSize.Width)/2,
				pos.Y+(size.Height-textSize.Height)/2,
			))
			r.objects = append(r.objects, label)
		}
	}
}

// colorForItem picks a stable palette color for an item handle.
func colorForItem(item model.ItemID) color.NRGBA {
	sum := 0
	for _, b := range []byte(item) {
		sum += int(b)
	}
	return tileColors[sum%len(tileColors)]
}

func (r *boardCanvasRenderer) MinSize() fyne.Size {
	bc := r.bc
	w, h := bc.board.TilePixelSize(model.TileRect{
		RowSpan:    bc.board.Rows(),
		ColumnSpan: bc.board.Columns(),
	})
	return fyne.NewSize(float32(w), float32(h))
}

func (r *boardCanvasRenderer) Layout(fyne.Size) {}

func (r *boardCanvasRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.bc)
}

func (r *boardCanvasRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardCanvasRenderer) Destroy() {}
