package suite

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/DjordjeVuckovic/html-validator/pkg/utils"
)

func WriteTable(s *Summary, w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Suite: %s ===\n\n", s.Name)

	header := []string{"File", "Expected", "Actual", "Result", "Time (ms)", "Detail"}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	for _, r := range s.Results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		row := []string{
			r.Document.File,
			string(r.Document.Expect),
			string(r.Actual),
			status,
			fmtMillis(r.Duration),
			detail(r),
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}

	fmt.Fprintf(tw, "\n%d/%d passed\n", len(s.Results)-s.Failed(), len(s.Results))
	tw.Flush()
}

func detail(r Result) string {
	rep := r.Report
	switch {
	case rep == nil || rep.Valid:
		return ""
	case rep.Error != "":
		return rep.Error
	case rep.Location != nil:
		return fmt.Sprintf("line %d: %s %s", rep.Location.Line, rep.Token, rep.Reason)
	default:
		return rep.Token + " " + rep.Reason
	}
}

func fmtMillis(d time.Duration) string {
	return fmt.Sprintf("%.3f", utils.RoundDecimal(float64(d)/float64(time.Millisecond), 3))
}
