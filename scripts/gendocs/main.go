// Package main generates the dupcheck reference documentation from the
// command tree, the format registry and the configuration schema.
//
// Usage:
//
//	go run ./scripts/gendocs --gen=cli --outdir=docs/cli
//	go run ./scripts/gendocs --gen=formats --outdir=docs
//	go run ./scripts/gendocs --gen=config --outdir=docs
//	go run ./scripts/gendocs --gen=all
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/leapstack-labs/dupcheck/internal/logging"
	"github.com/spf13/pflag"
)

// generator writes one part of the documentation into outDir.
type generator struct {
	defaultDir string // relative to the project root
	run        func(logger *slog.Logger, outDir string) error
}

var generators = map[string]generator{
	"cli":     {defaultDir: filepath.Join("docs", "cli"), run: generateCLIDocs},
	"formats": {defaultDir: "docs", run: generateFormatsDocs},
	"config":  {defaultDir: "docs", run: generateConfigDocs},
}

func main() {
	fs := pflag.NewFlagSet("gendocs", pflag.ExitOnError)
	gen := fs.String("gen", "all", "what to generate: "+strings.Join(generatorNames(), ", ")+", all")
	outDir := fs.String("outdir", "", "output directory (defaults based on gen type)")
	_ = fs.Parse(os.Args[1:])

	logger := logging.New(os.Stderr, logging.Options{Verbose: true})

	// Find project root (where go.mod is)
	projectRoot, err := findProjectRoot()
	if err != nil {
		logger.Error("failed to find project root", "error", err)
		os.Exit(1)
	}
	logger.Info("project root", "path", projectRoot)

	if err := run(logger, *gen, projectRoot, *outDir); err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done")
}

// run executes the named generator, or every generator for "all". outDir
// overrides the default location only for a single generator.
func run(logger *slog.Logger, gen, projectRoot, outDir string) error {
	if gen == "all" {
		for _, name := range generatorNames() {
			g := generators[name]
			if err := g.run(logger, filepath.Join(projectRoot, g.defaultDir)); err != nil {
				return fmt.Errorf("failed to generate %s docs: %w", name, err)
			}
		}
		return nil
	}

	g, ok := generators[gen]
	if !ok {
		return fmt.Errorf("unknown --gen value: %s (use: %s, all)", gen, strings.Join(generatorNames(), ", "))
	}
	if outDir == "" {
		outDir = filepath.Join(projectRoot, g.defaultDir)
	}
	if err := g.run(logger, outDir); err != nil {
		return fmt.Errorf("failed to generate %s docs: %w", gen, err)
	}
	return nil
}

func generatorNames() []string {
	names := make([]string, 0, len(generators))
	for name := range generators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// findProjectRoot walks up from current directory to find go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}
