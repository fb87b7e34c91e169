// Package ui builds the fyne application around the tile board engine.
package ui

import (
	"fmt"
	"log"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/TileBoard/internal/engine"
	"github.com/piwi3910/TileBoard/internal/export"
	"github.com/piwi3910/TileBoard/internal/model"
	"github.com/piwi3910/TileBoard/internal/project"
	"github.com/piwi3910/TileBoard/internal/ui/widgets"
)

// demoNames seed the labels of newly added items.
var demoNames = []string{
	"clock", "notes", "chart", "weather", "calendar", "music", "news", "tasks",
}

// App holds all application state and UI references.
type App struct {
	fyneApp fyne.App
	window  fyne.Window
	config  model.AppConfig

	board  *engine.Board
	canvas *widgets.BoardCanvas

	status   *widget.Label
	selected model.ItemID
	nameIdx  int
}

func NewApp(application fyne.App, window fyne.Window) *App {
	config, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		log.Printf("loading app config: %v (using defaults)", err)
		config = model.DefaultAppConfig()
	}

	board, err := engine.New(config.BoardConfig())
	if err != nil {
		log.Printf("invalid saved board defaults: %v (using built-ins)", err)
		config = model.DefaultAppConfig()
		board, _ = engine.New(config.BoardConfig())
	}

	a := &App{
		fyneApp: application,
		window:  window,
		config:  config,
		board:   board,
		status:  widget.NewLabel("Ready"),
	}

	a.canvas = widgets.NewBoardCanvas(board)
	a.canvas.SetDragEnabled(config.DragAndDrop)
	a.canvas.SetResizeEnabled(config.Resizing)
	a.canvas.OnTileTapped = a.selectTile
	a.canvas.OnBoardChanged = func() { a.refreshStatus() }

	board.OnTileResized(func(ev model.TileEvent) {
		a.status.SetText(fmt.Sprintf("%s resized to %dx%d at (%d, %d)",
			ev.Item, ev.Rect.RowSpan, ev.Rect.ColumnSpan, ev.Rect.Row, ev.Rect.Column))
	})
	board.OnTileMoved(func(ev model.TileEvent) {
		a.status.SetText(fmt.Sprintf("%s moved to (%d, %d)", ev.Item, ev.Rect.Row, ev.Rect.Column))
	})

	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Export Diagram (PDF)...", func() {
			a.exportVia("board.pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Labels (PDF)...", func() {
			a.exportVia("labels.pdf", export.ExportLabels)
		}),
		fyne.NewMenuItem("Export Inventory (XLSX)...", func() {
			a.exportVia("board.xlsx", export.ExportXLSX)
		}),
		fyne.NewMenuItem("Export Wireframe (DXF)...", func() {
			a.exportVia("board.dxf", export.ExportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Add Item", func() {
			a.addItem()
		}),
		fyne.NewMenuItem("Remove Selected Item", func() {
			a.removeSelected()
		}),
		fyne.NewMenuItem("Clear Board", func() {
			a.clearBoard()
		}),
	)

	settingsMenu := fyne.NewMenu("Settings",
		fyne.NewMenuItem("Preferences...", func() {
			a.showPreferencesDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, settingsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About TileBoard",
		"TileBoard — Drag-and-Drop Tile Grid\n\n"+
			"A desktop dashboard board where items can be placed,\n"+
			"dragged around and resized on a fixed grid of tiles.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	addBtn := widget.NewButtonWithIcon("Add Item", theme.ContentAddIcon(), func() {
		a.addItem()
	})
	removeBtn := widget.NewButtonWithIcon("Remove Selected", theme.ContentRemoveIcon(), func() {
		a.removeSelected()
	})

	toolbar := container.NewHBox(
		widget.NewLabelWithStyle("Tile Board", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		addBtn,
		removeBtn,
	)

	return container.NewBorder(
		toolbar,
		a.status,
		nil, nil,
		container.NewCenter(a.canvas),
	)
}

// selectTile records the tapped item so Remove Selected has a target.
func (a *App) selectTile(item model.ItemID, row, column int) {
	a.selected = item
	if item == "" {
		a.status.SetText(fmt.Sprintf("Empty tile at (%d, %d)", row, column))
		return
	}
	a.status.SetText(fmt.Sprintf("Selected %s", item))
}

// addItem places a new 1x1 item on the first free cell, like the demo
// window of the original application spawning colored widgets.
func (a *App) addItem() {
	name := demoNames[a.nameIdx%len(demoNames)]
	a.nameIdx++
	item := model.ItemID(fmt.Sprintf("%s-%s", name, model.NewItemID()[:4]))

	for row := 0; row < a.board.Rows(); row++ {
		for column := 0; column < a.board.Columns(); column++ {
			if !a.board.IsAreaEmpty(row, column, 1, 1) {
				continue
			}
			if _, err := a.board.Place(item, row, column, 1, 1); err != nil {
				dialog.ShowError(err, a.window)
				return
			}
			a.canvas.Refresh()
			a.status.SetText(fmt.Sprintf("Placed %s at (%d, %d)", item, row, column))
			return
		}
	}
	dialog.ShowInformation("Board full", "There is no free tile left on the board.", a.window)
}

func (a *App) removeSelected() {
	if a.selected == "" {
		dialog.ShowInformation("No selection", "Tap a filled tile first, then remove it.", a.window)
		return
	}
	if _, err := a.board.Remove(a.selected); err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.status.SetText(fmt.Sprintf("Removed %s", a.selected))
	a.selected = ""
	a.canvas.Refresh()
}

func (a *App) clearBoard() {
	for _, item := range a.board.Items() {
		if _, err := a.board.Remove(item); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
	}
	a.selected = ""
	a.status.SetText("Board cleared")
	a.canvas.Refresh()
}

func (a *App) refreshStatus() {
	snap := a.board.Snapshot()
	a.status.SetText(fmt.Sprintf("%d items | %d tiles | %.0f%% filled",
		len(snap.FilledTiles()), len(snap.Tiles), snap.FillRatio()*100))
}

// exportVia shows a save dialog and hands the chosen path to one of the
// export functions.
func (a *App) exportVia(defaultName string, exportFn func(string, model.BoardSnapshot) error) {
	snap := a.board.Snapshot()
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := exportFn(path, snap); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to %s", path), a.window)
	}, a.window)
	d.SetFileName(defaultName)
	d.Show()
}

func (a *App) showPreferencesDialog() {
	dragCheck := widget.NewCheck("Allow dragging tiles", nil)
	dragCheck.SetChecked(a.config.DragAndDrop)
	resizeCheck := widget.NewCheck("Allow resizing tiles", nil)
	resizeCheck.SetChecked(a.config.Resizing)

	spacingEntry := widget.NewEntry()
	spacingEntry.SetText(fmt.Sprintf("%d", a.config.DefaultSpacing))

	form := dialog.NewForm("Preferences", "Apply", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("", dragCheck),
			widget.NewFormItem("", resizeCheck),
			widget.NewFormItem("Tile spacing (px)", spacingEntry),
		},
		func(confirmed bool) {
			if !confirmed {
				return
			}
			a.config.DragAndDrop = dragCheck.Checked
			a.config.Resizing = resizeCheck.Checked

			var spacing int
			if _, err := fmt.Sscanf(strings.TrimSpace(spacingEntry.Text), "%d", &spacing); err == nil && spacing >= 0 {
				a.config.DefaultSpacing = spacing
				a.board.SetSpacing(spacing)
			}

			a.canvas.SetDragEnabled(a.config.DragAndDrop)
			a.canvas.SetResizeEnabled(a.config.Resizing)
			a.canvas.Refresh()

			if err := project.SaveAppConfig(project.DefaultConfigPath(), a.config); err != nil {
				log.Printf("saving app config: %v", err)
			}
		},
		a.window,
	)
	form.Show()
}
