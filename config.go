package cukejunit

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"

	"cukejunit/flags"
)

// Config holds the application configuration
type Config struct {
	ResultsFiles []string // Cucumber JSON results files to ingest
	OutputDir    string   // Directory the JUnit reports are written into
	SearchRoots  []string // Roots used to shorten feature paths into classnames
	Summary      bool     // Print the per-feature summary table
	Log          *log.Logger
}

// NewConfig creates a new Config from cli context, merging in the optional
// YAML config file. Flag values take precedence over file values.
func NewConfig(ctx *cli.Context, logger *log.Logger) (*Config, error) {
	if err := flags.CheckRequired(ctx); err != nil {
		return nil, fmt.Errorf("missing required flags: %w", err)
	}

	resultsFiles := ctx.StringSlice(flags.Results.Name)
	if len(resultsFiles) == 0 {
		return nil, errors.New("at least one results file is required")
	}

	fileCfg, err := resolveFileConfig(ctx)
	if err != nil {
		return nil, err
	}

	outputDir := ctx.String(flags.OutputDir.Name)
	if !ctx.IsSet(flags.OutputDir.Name) && fileCfg.OutputDir != "" {
		outputDir = fileCfg.OutputDir
	}
	outputDir, err = filepath.Abs(outputDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path for output directory: %w", err)
	}

	searchRoots := ctx.StringSlice(flags.SearchRoot.Name)
	if len(searchRoots) == 0 {
		searchRoots = fileCfg.SearchRoots
	}

	summary := ctx.Bool(flags.Summary.Name)
	if !ctx.IsSet(flags.Summary.Name) && fileCfg.Summary != nil {
		summary = *fileCfg.Summary
	}

	if logger == nil {
		logger = log.Default()
	}

	return &Config{
		ResultsFiles: resultsFiles,
		OutputDir:    outputDir,
		SearchRoots:  searchRoots,
		Summary:      summary,
		Log:          logger,
	}, nil
}

// resolveFileConfig loads the config file named by --config, or the default
// file when it exists. A missing default file is not an error.
func resolveFileConfig(ctx *cli.Context) (*fileConfig, error) {
	path := ctx.String(flags.ConfigFile.Name)
	if path != "" {
		return loadFileConfig(path)
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return loadFileConfig(DefaultConfigFile)
	}
	return &fileConfig{}, nil
}
