// Command registrygen regenerates the organization registry table from the
// chain's reserve and provincial bank node constants.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

func main() {
	primitives := flag.String("primitives", "primitives/src", "directory holding reserve_nodes_const.rs and shengbank_nodes_const.rs")
	out := flag.String("out", "registry/table_gen.go", "output Go file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(*primitives, *out); err != nil {
		logger.Error("registry generation failed", "error", err)
		os.Exit(1)
	}
}

func run(primitives, out string) error {
	reserve, err := os.ReadFile(filepath.Join(primitives, "reserve_nodes_const.rs"))
	if err != nil {
		return fmt.Errorf("read reserve nodes: %w", err)
	}
	bank, err := os.ReadFile(filepath.Join(primitives, "shengbank_nodes_const.rs"))
	if err != nil {
		return fmt.Errorf("read bank nodes: %w", err)
	}

	items := buildItems(parseBlocks(string(reserve)), parseBlocks(string(bank)))
	src, err := render(items)
	if err != nil {
		return fmt.Errorf("format table: %w", err)
	}

	if err := os.WriteFile(out, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}

	slog.Info("generated organization registry", "records", len(items), "out", out)
	return nil
}
