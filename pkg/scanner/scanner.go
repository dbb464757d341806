// Package scanner drives the single forward pass over a dump: extract
// template invocations per article, classify them, and fold the results
// into the aggregate.
package scanner

import (
	"fmt"
	"io"
	"os"

	"github.com/wdtools/wdreuse/pkg/classify"
	"github.com/wdtools/wdreuse/pkg/dump"
	"github.com/wdtools/wdreuse/pkg/report"
	"github.com/wdtools/wdreuse/pkg/wikitext"
)

// Scanner is configured once and run over one dump stream.
type Scanner struct {
	Rules classify.RuleSet
	Agg   *report.Aggregate

	// ProgressEvery prints a progress line every N page records
	// (matched or not). Zero disables progress output.
	ProgressEvery int

	// Out receives progress lines; defaults to stdout.
	Out io.Writer
}

// Run consumes the parser to EOF. Only mainspace, non-redirect pages are
// evaluated; everything else still counts toward the page total.
func (s *Scanner) Run(p *dump.Parser) error {
	out := s.Out
	if out == nil {
		out = os.Stdout
	}

	for {
		page, err := p.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("decoding dump record: %w", err)
		}

		s.Agg.Pages++
		if page.IsArticle() {
			s.scanPage(page)
		}

		if s.ProgressEvery > 0 && s.Agg.Pages%int64(s.ProgressEvery) == 0 {
			fmt.Fprintln(out, s.Agg.Progress())
		}
	}
}

func (s *Scanner) scanPage(page *dump.Page) {
	matched := false
	trackingOnly := true

	for _, t := range wikitext.Extract(page.Revision.Text) {
		for _, fam := range classify.Families {
			rule := s.Rules[fam]
			if !rule.Contains(t.Name) {
				continue
			}
			matched = true
			if rule.TrackingOnly(t) {
				s.Agg.Record(fam, true)
			} else {
				s.Agg.Record(fam, false)
				trackingOnly = false
			}
		}
	}

	s.Agg.FinishPage(matched, trackingOnly)
}
