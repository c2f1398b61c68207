package common

import "charm.land/lipgloss/v2"

// Styles contains all the application styles
type Styles struct {
	// Layout - Pane borders and structure
	Pane        lipgloss.Style
	FocusedPane lipgloss.Style
	PaneTitle   lipgloss.Style

	// Text hierarchy
	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	// Grid
	GridHeader    lipgloss.Style
	GridRowNumber lipgloss.Style
	GridCell      lipgloss.Style
	GridEmpty     lipgloss.Style
	GridSelected  lipgloss.Style
	GridCursor    lipgloss.Style

	// Chart
	ChartAxis  lipgloss.Style
	ChartCurve lipgloss.Style
	ChartPoint lipgloss.Style
	ChartTitle lipgloss.Style
	Tooltip    lipgloss.Style

	// Toolbar and popups
	Button           lipgloss.Style
	Suggestion       lipgloss.Style
	ActiveSuggestion lipgloss.Style
	Menu             lipgloss.Style

	// Help bar
	Help          lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	HelpSeparator lipgloss.Style

	// Feedback
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Toast notifications
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastWarning lipgloss.Style
	ToastInfo    lipgloss.Style
}

// DefaultStyles returns the application styles for the current theme.
func DefaultStyles() Styles {
	toast := lipgloss.NewStyle().Padding(0, 1).Foreground(ColorBackground())
	return Styles{
		Pane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder()),
		FocusedPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorderFocused()),
		PaneTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary()),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary()),
		Body: lipgloss.NewStyle().
			Foreground(ColorForeground()),
		Muted: lipgloss.NewStyle().
			Foreground(ColorMuted()),
		Bold: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground()),

		GridHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary()).
			Background(ColorSurface1()),
		GridRowNumber: lipgloss.NewStyle().
			Foreground(ColorMuted()).
			Background(ColorSurface1()),
		GridCell: lipgloss.NewStyle().
			Foreground(ColorForeground()),
		GridEmpty: lipgloss.NewStyle().
			Foreground(ColorMuted()),
		GridSelected: lipgloss.NewStyle().
			Foreground(ColorForeground()).
			Background(ColorSelection()),
		GridCursor: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorBackground()).
			Background(ColorPrimary()),

		ChartAxis: lipgloss.NewStyle().
			Foreground(ColorMuted()),
		ChartCurve: lipgloss.NewStyle().
			Foreground(ColorInfo()),
		ChartPoint: lipgloss.NewStyle().
			Foreground(ColorWarning()),
		ChartTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorForeground()),
		Tooltip: lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorBackground()).
			Background(ColorSecondary()),

		Button: lipgloss.NewStyle().
			Foreground(ColorPrimary()).
			Background(ColorSurface2()),
		Suggestion: lipgloss.NewStyle().
			Foreground(ColorHighlight()),
		ActiveSuggestion: lipgloss.NewStyle().
			Foreground(ColorBackground()).
			Background(ColorPrimary()),
		Menu: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorSecondary()).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted()),
		HelpKey: lipgloss.NewStyle().
			Foreground(ColorPrimary()),
		HelpDesc: lipgloss.NewStyle().
			Foreground(ColorMuted()),
		HelpSeparator: lipgloss.NewStyle().
			Foreground(ColorBorder()),

		Error: lipgloss.NewStyle().
			Foreground(ColorError()),
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess()),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning()),
		Info: lipgloss.NewStyle().
			Foreground(ColorInfo()),

		ToastSuccess: toast.Background(ColorSuccess()),
		ToastError:   toast.Background(ColorError()),
		ToastWarning: toast.Background(ColorWarning()),
		ToastInfo:    toast.Background(ColorInfo()),
	}
}

// HelpItem is one key hint in the help bar.
type HelpItem struct {
	Key  string
	Desc string
}

// RenderHelpBar renders a help bar with the given key-description pairs
func RenderHelpBar(s Styles, items []HelpItem, width int) string {
	var parts []string
	sep := s.HelpSeparator.Render(" │ ")
	for i, item := range items {
		if i > 0 {
			parts = append(parts, sep)
		}
		parts = append(parts, s.HelpKey.Render(item.Key)+" "+s.HelpDesc.Render(item.Desc))
	}
	joined := lipgloss.JoinHorizontal(lipgloss.Center, parts...)
	return s.Help.Width(width).MaxWidth(width).Render(joined)
}
