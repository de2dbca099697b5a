package tui

import (
	catppuccin "github.com/catppuccin/go"
	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha palette.
var flavor = catppuccin.Mocha

// Color constants extracted from the Mocha palette for convenience.
var (
	colorBase     = lipgloss.Color(flavor.Base().Hex)
	colorMantle   = lipgloss.Color(flavor.Mantle().Hex)
	colorSurface0 = lipgloss.Color(flavor.Surface0().Hex)
	colorSurface1 = lipgloss.Color(flavor.Surface1().Hex)
	colorText     = lipgloss.Color(flavor.Text().Hex)
	colorSubtext0 = lipgloss.Color(flavor.Subtext0().Hex)
	colorBlue     = lipgloss.Color(flavor.Blue().Hex)
	colorYellow   = lipgloss.Color(flavor.Yellow().Hex)
	colorMauve    = lipgloss.Color(flavor.Mauve().Hex)
	colorOverlay0 = lipgloss.Color(flavor.Overlay0().Hex)
)

// Trigger button styles.
var (
	// TriggerStyle is the closed trigger button.
	TriggerStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Background(colorSurface0).
			Padding(0, 2)

	// TriggerActiveStyle is the trigger button while the panel is open.
	TriggerActiveStyle = lipgloss.NewStyle().
				Foreground(colorBase).
				Background(colorBlue).
				Padding(0, 2).
				Bold(true)
)

// Panel styles.
var (
	// PanelStyle is the border and background of the dropdown panel.
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Background(colorMantle).
			Foreground(colorText).
			Padding(0, 1)

	// SearchIconStyle renders the glyph in front of the search field.
	SearchIconStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// ClearButtonStyle renders the clear-search button.
	ClearButtonStyle = lipgloss.NewStyle().
				Foreground(colorSubtext0).
				Bold(true)

	// DividerStyle is the thin line under the search field.
	DividerStyle = lipgloss.NewStyle().
			Foreground(colorSurface1)
)

// Tab styles.
var (
	// ActiveTabStyle is the selected, disabled tab.
	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(colorBase).
			Background(colorMauve).
			Padding(0, 1).
			Bold(true)

	// InactiveTabStyle is a clickable tab.
	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorText).
				Background(colorSurface0).
				Padding(0, 1)
)

// List row styles.
var (
	// RowStyle is an unselected list row.
	RowStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// CursorRowStyle is the row under the keyboard cursor.
	CursorRowStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	// StarOnStyle is the star of a favorite.
	StarOnStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	// StarOffStyle is the star of a non-favorite.
	StarOffStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0)

	// ScrollTrackStyle and ScrollThumbStyle draw the list scrollbar.
	ScrollTrackStyle = lipgloss.NewStyle().Foreground(colorSurface1)
	ScrollThumbStyle = lipgloss.NewStyle().Foreground(colorOverlay0)

	// EmptyListStyle renders the placeholder when nothing matches.
	EmptyListStyle = lipgloss.NewStyle().
			Foreground(colorOverlay0).
			Italic(true)
)

// Status bar styles.
var (
	// StatusBarStyle is the base style for the bottom status bar.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(colorSubtext0).
			Background(colorSurface0).
			Padding(0, 1)

	// StatusBarNoticeStyle highlights the last action in the status bar.
	StatusBarNoticeStyle = lipgloss.NewStyle().
				Foreground(colorYellow).
				Background(colorSurface0).
				Bold(true)
)
