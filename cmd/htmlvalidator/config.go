package main

import (
	"flag"
	"fmt"
	"io"
)

const (
	formatText = "text"
	formatJSON = "json"

	defaultSamples = "provided.yaml"
)

type cliConfig struct {
	File    string
	Suite   string
	Format  string
	Output  string
	Samples string
	Context int
	Workers int
	Verbose bool
}

func parseFlags(args []string, stderr io.Writer) (cliConfig, error) {
	cfg := cliConfig{}

	fs := flag.NewFlagSet("htmlvalidator", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&cfg.File, "file", "", "Path to the HTML document to validate")
	fs.StringVar(&cfg.Suite, "suite", "", "Path to a suite YAML listing documents and expected outcomes")
	fs.StringVar(&cfg.Format, "format", formatText, "Output format: text or json")
	fs.StringVar(&cfg.Output, "output", "", "Also write the JSON report to this path")
	fs.StringVar(&cfg.Samples, "samples", defaultSamples, "Suite whose documents are listed before the file name prompt")
	fs.IntVar(&cfg.Context, "context", 0, "Source lines printed up to and including the error line (0 prints every line before it)")
	fs.IntVar(&cfg.Workers, "workers", 0, "Documents validated concurrently in suite mode (0 uses all CPUs)")
	fs.BoolVar(&cfg.Verbose, "v", false, "Enable debug logging")

	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.File == "" && fs.NArg() > 0 {
		cfg.File = fs.Arg(0)
	}
	if cfg.File != "" && cfg.Suite != "" {
		return cfg, usageFailure(fs, fmt.Errorf("-file and -suite are mutually exclusive"))
	}
	if cfg.Format != formatText && cfg.Format != formatJSON {
		return cfg, usageFailure(fs, fmt.Errorf("unknown format %q, expected %s or %s", cfg.Format, formatText, formatJSON))
	}
	if cfg.Context < 0 {
		return cfg, usageFailure(fs, fmt.Errorf("context must not be negative, got %d", cfg.Context))
	}
	return cfg, nil
}

// usageFailure reports err the way the flag package reports its own parse
// errors: the message followed by the usage text.
func usageFailure(fs *flag.FlagSet, err error) error {
	_, _ = fmt.Fprintln(fs.Output(), err)
	fs.Usage()
	return err
}
