package common

import (
	"errors"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/andyrewlee/gridpad/internal/messages"
)

func TestSafeCmdRecoversPanic(t *testing.T) {
	cmd := SafeCmd(func() tea.Msg { panic("kaboom") })
	msg := cmd()
	errMsg, ok := msg.(messages.Error)
	if !ok {
		t.Fatalf("expected messages.Error, got %T", msg)
	}
	if errMsg.Context != "command" || !errMsg.Logged {
		t.Fatalf("unexpected error message %+v", errMsg)
	}
}

func TestSafeCmdPassesThrough(t *testing.T) {
	cmd := SafeCmd(func() tea.Msg { return messages.ToggleHelp{} })
	if _, ok := cmd().(messages.ToggleHelp); !ok {
		t.Fatalf("expected wrapped message")
	}
	if SafeCmd(nil) != nil {
		t.Fatalf("SafeCmd(nil) should be nil")
	}
	if SafeBatch(nil, nil) != nil {
		t.Fatalf("SafeBatch of nils should be nil")
	}
}

func TestReportError(t *testing.T) {
	if ReportError("copy", nil, "") != nil {
		t.Fatalf("nil error should produce no command")
	}
	if ReportError("copy", errors.New("no clipboard"), "") == nil {
		t.Fatalf("expected a command for a real error")
	}
}
