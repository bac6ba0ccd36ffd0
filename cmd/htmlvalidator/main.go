package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/html-validator/internal/reader"
	"github.com/DjordjeVuckovic/html-validator/internal/report"
	"github.com/DjordjeVuckovic/html-validator/internal/suite"
	"github.com/DjordjeVuckovic/html-validator/internal/token"
	"github.com/DjordjeVuckovic/html-validator/internal/validator"
)

const (
	exitValid     = 0
	exitMalformed = 1
	exitUsage     = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	if cfg.Suite != "" {
		return runSuite(ctx, cfg, stdout)
	}

	if cfg.File == "" {
		cfg.File, err = reader.PromptFileName(stdin, stdout, sampleChoices(cfg.Samples)...)
		if err != nil {
			slog.Error("No file to validate", "error", err)
			return exitUsage
		}
	}

	return runFile(cfg, stdout)
}

// sampleChoices lists the documents of the samples suite with their expected
// outcomes. A missing suite yields no choices.
func sampleChoices(path string) []reader.Choice {
	if path == "" {
		return nil
	}
	loaded, err := suite.LoadFromFile(path)
	if err != nil {
		slog.Debug("No sample documents to list", "path", path, "error", err)
		return nil
	}

	choices := make([]reader.Choice, 0, len(loaded.Suite.Documents))
	for _, d := range loaded.Suite.Documents {
		choices = append(choices, reader.Choice{Name: d.File, Note: d.Expect.Describe()})
	}
	return choices
}

func runFile(cfg cliConfig, stdout io.Writer) int {
	if cfg.Format == formatText {
		_, _ = fmt.Fprintf(stdout, "Validating %s...\n", cfg.File)
	}

	doc, err := reader.ReadFile(cfg.File)
	if err != nil {
		if werr := writeReport(cfg, stdout, cfg.File, "", err); werr != nil {
			slog.Error("Failed to write report", "error", werr)
		}
		return exitUsage
	}

	verr := validator.NewDefault().Validate(token.Tokenize(doc.Text))
	if err := writeReport(cfg, stdout, doc.Name, doc.Text, verr); err != nil {
		slog.Error("Failed to write report", "error", err)
		return exitUsage
	}

	if verr != nil {
		return exitMalformed
	}
	return exitValid
}

func writeReport(cfg cliConfig, w io.Writer, source, text string, verr error) error {
	rep := report.New(source, text, verr)

	if cfg.Output != "" {
		if err := report.WriteJSONFile(rep, cfg.Output); err != nil {
			return err
		}
		slog.Debug("Report written", "path", cfg.Output)
	}

	if cfg.Format == formatJSON {
		return report.WriteJSON(rep, w)
	}
	return report.WriteText(w, source, text, verr, report.TextOptions{Context: cfg.Context})
}

func runSuite(ctx context.Context, cfg cliConfig, stdout io.Writer) int {
	loaded, err := suite.LoadFromFile(cfg.Suite)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.Suite, "error", err)
		return exitUsage
	}

	summary, err := suite.New(cfg.Workers).Run(ctx, loaded)
	if err != nil {
		slog.Error("Suite run failed", "error", err)
		return exitUsage
	}

	if cfg.Output != "" {
		if err := report.WriteJSONFile(summary, cfg.Output); err != nil {
			slog.Error("Failed to write suite report", "path", cfg.Output, "error", err)
			return exitUsage
		}
	}

	if cfg.Format == formatJSON {
		if err := report.WriteJSON(summary, stdout); err != nil {
			slog.Error("Failed to write suite report", "error", err)
			return exitUsage
		}
	} else {
		suite.WriteTable(summary, stdout)
	}

	if !summary.Passed() {
		return exitMalformed
	}
	return exitValid
}
