// TileBoard — Drag-and-Drop Tile Grid
//
// A cross-platform desktop dashboard board: items are placed on a fixed
// grid of tiles and can be dragged to new positions or resized by their
// edges, with the freed cells splitting back into unit tiles.
//
// Build:
//   go build -o tileboard ./cmd/tileboard
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o tileboard.exe ./cmd/tileboard
//   GOOS=darwin  GOARCH=amd64 go build -o tileboard-darwin ./cmd/tileboard

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/piwi3910/TileBoard/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.tileboard")

	window := application.NewWindow("TileBoard — Drag-and-Drop Tile Grid")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(900, 700))
	window.CenterOnScreen()
	window.Show()

	application.Run()
}
