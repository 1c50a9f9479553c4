package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/cardexdev/cardex/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override cardex config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	cardID := flag.String("card", "", "card id to show at startup (optional)")
	flag.Parse()

	logFile := setupLogging()
	if logFile != nil {
		defer func() { _ = logFile.Close() }()
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		CardID:     *cardID,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "cardex: %v\n", err)
		return 1
	}
	return 0
}

// setupLogging sends the standard logger to a file; stdout belongs to the
// TUI. Logging is best-effort: any failure silences it instead of breaking
// the screen.
func setupLogging() *os.File {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	path := filepath.Join(dir, "cardex", "cardex.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(file)
	return file
}
