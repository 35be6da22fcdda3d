package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexisbeaulieu97/showreel/internal/deck"
)

func validateDeckPath(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("deck file is required")
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve deck path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fmt.Errorf("deck file does not exist: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("deck path %s is a directory", abs)
	}

	return nil
}

func validatePlayOptions(opts playOptions) error {
	if err := validateDeckPath(opts.DeckPath); err != nil {
		return err
	}
	if opts.Gate != "" {
		if _, err := deck.ParseGate(opts.Gate); err != nil {
			return fmt.Errorf("--gate: %w", err)
		}
	}
	return nil
}

// defaultSeenFile is where the welcome flag lives when --seen-file is not given.
func defaultSeenFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "showreel", "seen.json")
}
