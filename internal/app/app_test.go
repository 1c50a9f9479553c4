package app

import (
	"testing"

	"github.com/cardexdev/cardex/internal/config"
)

func TestStartupCardID(t *testing.T) {
	cfg := config.Config{DefaultCard: "swsh3-136"}

	if got := startupCardID(cfg, ""); got != "swsh3-136" {
		t.Fatalf("startupCardID = %q, want configured default", got)
	}
	if got := startupCardID(cfg, "  base1-4  "); got != "base1-4" {
		t.Fatalf("startupCardID = %q, want trimmed override", got)
	}
}
