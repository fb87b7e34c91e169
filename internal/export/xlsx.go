package export

import (
	"fmt"

	"github.com/piwi3910/TileBoard/internal/model"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX writes the board to a spreadsheet with two sheets: "Tiles"
// lists every placed item with its geometry and pixel size, and "Board"
// shows the grid with one spreadsheet cell per board cell holding the
// owning item handle.
func ExportXLSX(path string, snap model.BoardSnapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	const tilesSheet = "Tiles"
	if err := f.SetSheetName("Sheet1", tilesSheet); err != nil {
		return err
	}

	headers := []string{"Item", "Row", "Column", "Row span", "Column span", "Width (px)", "Height (px)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(tilesSheet, cell, h); err != nil {
			return err
		}
	}

	cfg := snap.Config
	for i, tile := range snap.FilledTiles() {
		pxW := tile.Rect.ColumnSpan*cfg.CellWidth + (tile.Rect.ColumnSpan-1)*cfg.Spacing
		pxH := tile.Rect.RowSpan*cfg.CellHeight + (tile.Rect.RowSpan-1)*cfg.Spacing
		values := []interface{}{
			string(tile.Item),
			tile.Rect.Row,
			tile.Rect.Column,
			tile.Rect.RowSpan,
			tile.Rect.ColumnSpan,
			pxW,
			pxH,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(tilesSheet, cell, v); err != nil {
				return err
			}
		}
	}

	const boardSheet = "Board"
	if _, err := f.NewSheet(boardSheet); err != nil {
		return err
	}
	for _, tile := range snap.Tiles {
		if !tile.Filled {
			continue
		}
		for _, c := range tile.Rect.Cells() {
			cell, err := excelize.CoordinatesToCellName(c.Column+1, c.Row+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(boardSheet, cell, string(tile.Item)); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet: %w", err)
	}
	return nil
}
