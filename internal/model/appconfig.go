package model

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Default board geometry applied when creating a new board
	DefaultRows       int `json:"default_rows"`
	DefaultColumns    int `json:"default_columns"`
	DefaultCellWidth  int `json:"default_cell_width"`
	DefaultCellHeight int `json:"default_cell_height"`
	DefaultSpacing    int `json:"default_spacing"`

	// Application preferences
	DragAndDrop bool   `json:"drag_and_drop"`
	Resizing    bool   `json:"resizing"`
	Theme       string `json:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultBoardConfig().
func DefaultAppConfig() AppConfig {
	defaults := DefaultBoardConfig()
	return AppConfig{
		DefaultRows:       defaults.Rows,
		DefaultColumns:    defaults.Columns,
		DefaultCellWidth:  defaults.CellWidth,
		DefaultCellHeight: defaults.CellHeight,
		DefaultSpacing:    defaults.Spacing,
		DragAndDrop:       true,
		Resizing:          true,
		Theme:             "system",
	}
}

// BoardConfig builds the construction parameters for a new board from the
// user's saved defaults.
func (c AppConfig) BoardConfig() BoardConfig {
	return BoardConfig{
		Rows:       c.DefaultRows,
		Columns:    c.DefaultColumns,
		CellWidth:  c.DefaultCellWidth,
		CellHeight: c.DefaultCellHeight,
		Spacing:    c.DefaultSpacing,
	}
}
