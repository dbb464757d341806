// Package report accumulates classification counts and writes the final
// tab-separated summary.
package report

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/wdtools/wdreuse/pkg/classify"
)

// FamilyCount holds per-family invocation tallies.
type FamilyCount struct {
	Transclusion int
	Tracking     int
}

// Aggregate is the single mutable state of a run: per-family counters plus
// page-level totals. Updated in place as the scan proceeds, never reset.
type Aggregate struct {
	Pages     int64 // every page record seen, matched or not
	Evaluated int   // mainspace non-redirect pages
	Probable  int   // pages with at least one matched invocation
	Confirmed int   // pages where a matched invocation was a transclusion

	Counts map[classify.Family]*FamilyCount
}

// NewAggregate returns zeroed counters for every family.
func NewAggregate() *Aggregate {
	a := &Aggregate{Counts: make(map[classify.Family]*FamilyCount, len(classify.Families))}
	for _, fam := range classify.Families {
		a.Counts[fam] = &FamilyCount{}
	}
	return a
}

// Record counts one classified invocation. An invocation is either
// tracking or transclusion for its family, never both.
func (a *Aggregate) Record(fam classify.Family, trackingOnly bool) {
	if trackingOnly {
		a.Counts[fam].Tracking++
	} else {
		a.Counts[fam].Transclusion++
	}
}

// FinishPage folds one evaluated page into the run totals. A page is
// probable Wikidata usage if any invocation matched; it confirms usage
// only when the page had a transclusion-classified invocation.
func (a *Aggregate) FinishPage(matched, trackingOnly bool) {
	a.Evaluated++
	if matched {
		a.Probable++
		if !trackingOnly {
			a.Confirmed++
		}
	}
}

// StatusLines formats the per-family transclusion percentages.
func (a *Aggregate) StatusLines() []string {
	lines := make([]string, 0, len(classify.Families))
	for _, fam := range classify.Families {
		c := a.Counts[fam]
		n := c.Transclusion + c.Tracking
		if n > 0 {
			lines = append(lines, fmt.Sprintf("%s (n=%d):\t%.1f%% transclusion",
				fam, n, float64(c.Transclusion)*100/float64(n)))
		} else {
			lines = append(lines, fmt.Sprintf("%s (n=%d): --", fam, n))
		}
	}
	return lines
}

// Progress renders the running-statistics line printed during the scan
// and again at the end.
func (a *Aggregate) Progress() string {
	probPct, actPct := 0.0, 0.0
	if a.Evaluated > 0 {
		probPct = float64(a.Probable) * 100 / float64(a.Evaluated)
		actPct = float64(a.Confirmed) * 100 / float64(a.Evaluated)
	}
	return fmt.Sprintf(
		"%s pages processed. %d evaluated. %d (%.1f%%) likely on wbc_entity_usage. %d (%.1f%%) legitimately on wbc_entity_usage. Status:\n%s",
		humanize.Comma(a.Pages), a.Evaluated,
		a.Probable, probPct,
		a.Confirmed, actPct,
		strings.Join(a.StatusLines(), "\n"))
}
