// Package export writes board layouts to external file formats: a PDF
// diagram, QR-coded tile labels, an XLSX inventory, and a DXF wireframe.
package export

import (
	"fmt"
	"math"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/TileBoard/internal/model"
)

// tileColor represents an RGB color for a filled tile.
type tileColor struct {
	R, G, B int
}

// tileColors mirrors the color scheme used in the UI board widget.
var tileColors = []tileColor{
	{R: 76, G: 175, B: 80},  // green
	{R: 33, G: 150, B: 243}, // blue
	{R: 255, G: 152, B: 0},  // orange
	{R: 156, G: 39, B: 176}, // purple
	{R: 0, G: 188, B: 212},  // cyan
	{R: 244, G: 67, B: 54},  // red
	{R: 255, G: 235, B: 59}, // yellow
	{R: 121, G: 85, B: 72},  // brown
}

// Page layout constants (A4 landscape in mm).
const (
	pageWidth    = 297.0
	pageHeight   = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 15.0
	headerHeight = 12.0
	statsHeight  = 8.0
	drawAreaTop  = marginTop + headerHeight + statsHeight
)

// ExportPDF renders the board layout as a one-page PDF diagram: the grid
// of unfilled cells, each filled tile as a colored rectangle labeled with
// its item handle, and a stats line.
func ExportPDF(path string, snap model.BoardSnapshot) error {
	if snap.Config.Rows <= 0 || snap.Config.Columns <= 0 {
		return fmt.Errorf("no board to export")
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AddPage()

	// Title
	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetXY(marginLeft, marginTop)
	title := fmt.Sprintf("Tile board %dx%d", snap.Config.Rows, snap.Config.Columns)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, headerHeight, title, "", 0, "L", false, 0, "")

	// Stats line
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetXY(marginLeft, marginTop+headerHeight)
	stats := fmt.Sprintf("Items: %d | Tiles: %d | Filled: %.0f%%",
		len(snap.FilledTiles()), len(snap.Tiles), snap.FillRatio()*100)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, stats, "", 0, "L", false, 0, "")

	// Scale the board into the drawing area, one grid unit per cell.
	drawWidth := pageWidth - marginLeft - marginRight
	drawHeight := pageHeight - drawAreaTop - marginBottom
	scale := math.Min(drawWidth/float64(snap.Config.Columns), drawHeight/float64(snap.Config.Rows))

	boardW := float64(snap.Config.Columns) * scale
	boardH := float64(snap.Config.Rows) * scale
	offsetX := marginLeft + (drawWidth-boardW)/2
	offsetY := drawAreaTop

	// Board background
	pdf.SetFillColor(240, 240, 240)
	pdf.SetDrawColor(100, 100, 100)
	pdf.SetLineWidth(0.5)
	pdf.Rect(offsetX, offsetY, boardW, boardH, "FD")

	// Tile outlines; filled tiles get a color and their item handle.
	colorIdx := 0
	for _, tile := range snap.Tiles {
		x := offsetX + float64(tile.Rect.Column)*scale
		y := offsetY + float64(tile.Rect.Row)*scale
		w := float64(tile.Rect.ColumnSpan) * scale
		h := float64(tile.Rect.RowSpan) * scale

		if tile.Filled {
			col := tileColors[colorIdx%len(tileColors)]
			colorIdx++
			pdf.SetFillColor(col.R, col.G, col.B)
			pdf.SetDrawColor(30, 30, 30)
			pdf.SetLineWidth(0.3)
			pdf.Rect(x, y, w, h, "FD")

			pdf.SetFont("Helvetica", "B", 9)
			pdf.SetTextColor(0, 0, 0)
			label := string(tile.Item)
			if labelW := pdf.GetStringWidth(label); labelW < w-2 {
				pdf.SetXY(x+(w-labelW)/2, y+h/2-2)
				pdf.CellFormat(labelW, 4, label, "", 0, "C", false, 0, "")
			}
		} else {
			pdf.SetDrawColor(200, 200, 200)
			pdf.SetLineWidth(0.1)
			pdf.Rect(x, y, w, h, "D")
		}
	}

	return pdf.OutputFileAndClose(path)
}
