package common

import (
	"strings"
	"testing"
)

func TestGetThemeFallsBack(t *testing.T) {
	if got := GetTheme("missing").ID; got != ThemeTokyoNight {
		t.Fatalf("fallback theme = %q", got)
	}
	if got := GetTheme(ThemeNord).Name; got != "Nord" {
		t.Fatalf("nord name = %q", got)
	}
}

func TestSetCurrentTheme(t *testing.T) {
	t.Cleanup(func() { SetCurrentTheme(ThemeTokyoNight) })

	SetCurrentTheme(ThemeGruvboxLight)
	if CurrentTheme().ID != ThemeGruvboxLight {
		t.Fatalf("current theme = %q", CurrentTheme().ID)
	}
	if ColorBackground() != GetTheme(ThemeGruvboxLight).Colors.Background {
		t.Fatalf("palette accessor did not follow the theme")
	}
}

func TestHighlightJSONKeepsText(t *testing.T) {
	src := "{\n  \"3\": \"X\"\n}"
	out := HighlightJSON(src)
	for _, part := range []string{`"3"`, `"X"`} {
		if !strings.Contains(out, part) {
			t.Fatalf("highlighted output lost %s: %q", part, out)
		}
	}
	if HighlightJSON("") != "" {
		t.Fatalf("empty source should stay empty")
	}
}

func TestScrollDeltaForHeight(t *testing.T) {
	for _, tt := range []struct{ height, factor, want int }{
		{20, 5, 4},
		{3, 5, 1},
		{0, 5, 1},
	} {
		if got := ScrollDeltaForHeight(tt.height, tt.factor); got != tt.want {
			t.Fatalf("ScrollDeltaForHeight(%d, %d) = %d, want %d", tt.height, tt.factor, got, tt.want)
		}
	}
}

func TestNextThemeWraps(t *testing.T) {
	themes := AvailableThemes()
	if got := NextTheme(themes[0].ID); got != themes[1].ID {
		t.Fatalf("NextTheme(first) = %q", got)
	}
	if got := NextTheme(themes[len(themes)-1].ID); got != themes[0].ID {
		t.Fatalf("NextTheme(last) = %q, want wrap to %q", got, themes[0].ID)
	}
	if got := NextTheme("missing"); got != themes[0].ID {
		t.Fatalf("NextTheme(unknown) = %q", got)
	}
}
