package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/wdtools/wdreuse/pkg/classify"
)

// WriteTSV writes the summary report: a header row, the evaluated total,
// the aggregate wbc_entity_usage estimate, then one row per family.
func WriteTSV(path string, a *Aggregate) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating report: %w", err)
	}

	w := bufio.NewWriter(f)
	writeTSV(w, a)
	if err := w.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing report: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing report: %w", err)
	}
	return nil
}

func writeTSV(w io.Writer, a *Aggregate) {
	fmt.Fprintf(w, "type\ttransclusion\ttracking\n")
	fmt.Fprintf(w, "total:%d\t\t\n", a.Evaluated)
	fmt.Fprintf(w, "wbc_estimate\t%d\t%d\n", a.Confirmed, a.Probable-a.Confirmed)
	for _, fam := range classify.Families {
		c := a.Counts[fam]
		fmt.Fprintf(w, "%s\t%d\t%d\n", fam, c.Transclusion, c.Tracking)
	}
}
