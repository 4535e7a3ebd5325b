// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines = 2

	// RowGutterWidth is the selection bar plus its padding in front of a feed row.
	RowGutterWidth = 2
	RowSpacing     = 1

	ViewportPaddingX = 1

	ImageMaxWidth = 48
	ImageMinWidth = 8
)
