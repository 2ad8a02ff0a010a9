package flags

import (
	"fmt"

	"github.com/urfave/cli/v2"
)

const EnvVarPrefix = "CUKEJUNIT"

func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	Results = &cli.StringSliceFlag{
		Name:     "results",
		Required: true,
		EnvVars:  prefixEnvVars("RESULTS"),
		Usage:    "Path to a Cucumber JSON results file (repeatable)",
	}
	OutputDir = &cli.StringFlag{
		Name:    "output-dir",
		Value:   "reports",
		EnvVars: prefixEnvVars("OUTPUT_DIR"),
		Usage:   "Directory the JUnit XML reports are written into (created if missing)",
	}
	SearchRoot = &cli.StringSliceFlag{
		Name:    "search-root",
		EnvVars: prefixEnvVars("SEARCH_ROOT"),
		Usage:   "Feature search root used to shorten feature paths into classnames (repeatable)",
	}
	ConfigFile = &cli.StringFlag{
		Name:    "config",
		EnvVars: prefixEnvVars("CONFIG"),
		Usage:   "Path to an optional YAML config file (eg. 'cukejunit.yaml')",
	}
	Summary = &cli.BoolFlag{
		Name:    "summary",
		Value:   true,
		EnvVars: prefixEnvVars("SUMMARY"),
		Usage:   "Print a per-feature summary table after writing the reports",
	}
	LogLevel = &cli.StringFlag{
		Name:    "log-level",
		Value:   "info",
		EnvVars: prefixEnvVars("LOG_LEVEL"),
		Usage:   "Log level (debug, info, warn, error)",
	}
)

var requiredFlags = []cli.Flag{
	Results,
}

var optionalFlags = []cli.Flag{
	OutputDir,
	SearchRoot,
	ConfigFile,
	Summary,
	LogLevel,
}

var Flags []cli.Flag

func init() {
	Flags = append(requiredFlags, optionalFlags...)
}

func CheckRequired(ctx *cli.Context) error {
	for _, f := range requiredFlags {
		if !ctx.IsSet(f.Names()[0]) {
			return fmt.Errorf("flag %s is required", f.Names()[0])
		}
	}
	return nil
}
