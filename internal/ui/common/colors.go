package common

import "image/color"

// Accessors for the active theme's palette.

func ColorBackground() color.Color    { return currentTheme.Colors.Background }
func ColorForeground() color.Color    { return currentTheme.Colors.Foreground }
func ColorMuted() color.Color         { return currentTheme.Colors.Muted }
func ColorBorder() color.Color        { return currentTheme.Colors.Border }
func ColorBorderFocused() color.Color { return currentTheme.Colors.BorderFocused }
func ColorPrimary() color.Color       { return currentTheme.Colors.Primary }
func ColorSecondary() color.Color     { return currentTheme.Colors.Secondary }
func ColorSuccess() color.Color       { return currentTheme.Colors.Success }
func ColorWarning() color.Color       { return currentTheme.Colors.Warning }
func ColorError() color.Color         { return currentTheme.Colors.Error }
func ColorInfo() color.Color          { return currentTheme.Colors.Info }
func ColorSurface1() color.Color      { return currentTheme.Colors.Surface1 }
func ColorSurface2() color.Color      { return currentTheme.Colors.Surface2 }
func ColorSelection() color.Color     { return currentTheme.Colors.Selection }
func ColorHighlight() color.Color     { return currentTheme.Colors.Highlight }
