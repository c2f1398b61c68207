package poll

import (
	"errors"
	"testing"

	"github.com/zalando/go-keyring"
)

func TestTokenRoundTrip(t *testing.T) {
	keyring.MockInit()

	if token, err := LoadTokenOptional("ci"); err != nil || token != "" {
		t.Fatalf("expected empty token, got %q (%v)", token, err)
	}
	if err := StoreToken("ci", "abc"); err != nil {
		t.Fatalf("StoreToken: %v", err)
	}
	token, err := LoadToken("ci")
	if err != nil || token != "abc" {
		t.Fatalf("LoadToken = %q, %v", token, err)
	}
	if err := DeleteToken("ci"); err != nil {
		t.Fatalf("DeleteToken: %v", err)
	}
	if _, err := LoadToken("ci"); !errors.Is(err, keyring.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTokenRejectsEmptyAccount(t *testing.T) {
	keyring.MockInit()
	if err := StoreToken("", "abc"); !errors.Is(err, keyring.ErrNotFound) {
		t.Fatalf("StoreToken: %v", err)
	}
	if _, err := LoadToken(""); !errors.Is(err, keyring.ErrNotFound) {
		t.Fatalf("LoadToken: %v", err)
	}
}
