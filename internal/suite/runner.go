package suite

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/DjordjeVuckovic/html-validator/internal/reader"
	"github.com/DjordjeVuckovic/html-validator/internal/report"
	"github.com/DjordjeVuckovic/html-validator/internal/token"
	"github.com/DjordjeVuckovic/html-validator/internal/validator"
	"golang.org/x/sync/errgroup"
)

type Runner struct {
	workers   int
	validator *validator.StackValidator
}

// New creates a runner validating at most workers documents at once.
// Non-positive values fall back to the number of CPUs.
func New(workers int) *Runner {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		workers:   workers,
		validator: validator.NewDefault(),
	}
}

// Run validates every suite document in isolation. Results keep suite order.
func (r *Runner) Run(ctx context.Context, ls *LoadedSuite) (*Summary, error) {
	docs := ls.Suite.Documents
	results := make([]Result, len(docs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, doc := range docs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = r.runOne(doc, ls.Resolve(doc.File))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{Name: ls.Suite.Name, Results: results}, nil
}

func (r *Runner) runOne(doc Document, path string) Result {
	start := time.Now()

	var rep *report.Report
	d, err := reader.ReadFile(path)
	if err != nil {
		rep = report.New(path, "", err)
	} else {
		rep = report.New(path, d.Text, r.validator.Validate(token.Tokenize(d.Text)))
	}

	actual := OutcomeOf(rep)
	res := Result{
		Document: doc,
		Path:     path,
		Actual:   actual,
		Passed:   actual == doc.Expect,
		Report:   rep,
		Duration: time.Since(start),
	}

	if !res.Passed {
		slog.Warn("Suite document failed", "file", doc.File, "expected", doc.Expect, "actual", actual)
	}
	return res
}
