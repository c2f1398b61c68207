package messages

import (
	"errors"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	err := Error{Err: errors.New("boom"), Context: "context"}
	if err.Error() != "context: boom" {
		t.Fatalf("unexpected formatted error: %q", err.Error())
	}

	err = Error{Err: errors.New("boom")}
	if err.Error() != "boom" {
		t.Fatalf("unexpected formatted error without context: %q", err.Error())
	}
}

func TestPaneTypeString(t *testing.T) {
	tests := map[PaneType]string{
		PaneGrid:     "grid",
		PaneSearch:   "search",
		PaneChart:    "chart",
		PaneCode:     "code",
		PaneConsole:  "console",
		PaneType(42): "unknown",
	}
	for pane, want := range tests {
		if got := pane.String(); got != want {
			t.Errorf("PaneType(%d).String() = %q, want %q", pane, got, want)
		}
	}
}
