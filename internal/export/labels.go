package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/piwi3910/TileBoard/internal/model"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each tile label's QR code.
type LabelInfo struct {
	Item       model.ItemID `json:"item"`
	Row        int          `json:"row"`
	Column     int          `json:"column"`
	RowSpan    int          `json:"row_span"`
	ColumnSpan int          `json:"column_span"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// ExportLabels generates a PDF of QR-coded labels, one per placed item.
// Each label shows the item handle and its grid geometry, with the same
// data encoded as JSON in the QR code.
func ExportLabels(path string, snap model.BoardSnapshot) error {
	tiles := snap.FilledTiles()
	if len(tiles) == 0 {
		return fmt.Errorf("no items placed to generate labels for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, tile := range tiles {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		info := LabelInfo{
			Item:       tile.Item,
			Row:        tile.Rect.Row,
			Column:     tile.Rect.Column,
			RowSpan:    tile.Rect.RowSpan,
			ColumnSpan: tile.Rect.ColumnSpan,
		}
		if err := renderLabel(pdf, x, y, info); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", info.Item, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single label at the given position.
func renderLabel(pdf *fpdf.Fpdf, x, y float64, info LabelInfo) error {
	// Draw light border for cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	// Generate QR code PNG bytes
	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	// Register QR image with a unique name
	imgName := fmt.Sprintf("qr_%s_%d_%d", info.Item, info.Row, info.Column)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	// Place QR code on the right side of the label
	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	// Text area (left side of label)
	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	// Item handle (bold, larger)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)

	item := string(info.Item)
	if pdf.GetStringWidth(item) > textW {
		for len(item) > 0 && pdf.GetStringWidth(item+"...") > textW {
			item = item[:len(item)-1]
		}
		item += "..."
	}
	pdf.CellFormat(textW, 4.5, item, "", 1, "L", false, 0, "")

	// Span
	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	span := fmt.Sprintf("%d x %d cells", info.RowSpan, info.ColumnSpan)
	pdf.CellFormat(textW, 3.5, span, "", 1, "L", false, 0, "")

	// Position
	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	position := fmt.Sprintf("Origin (%d, %d)", info.Row, info.Column)
	pdf.CellFormat(textW, 3, position, "", 1, "L", false, 0, "")

	return nil
}
