package scanner

import (
	"bytes"
	"strings"
	"testing"

	"github.com/wdtools/wdreuse/pkg/classify"
	"github.com/wdtools/wdreuse/pkg/dump"
	"github.com/wdtools/wdreuse/pkg/report"
)

const miniDump = `<mediawiki xml:lang="en">
  <siteinfo>
    <sitename>Wikipedia</sitename>
    <dbname>enwiki</dbname>
  </siteinfo>
  <page>
    <title>Castle A</title>
    <ns>0</ns>
    <id>1</id>
    <revision><id>10</id><text>A castle. {{Coord|51.5|-0.1}}</text></revision>
  </page>
  <page>
    <title>Author B</title>
    <ns>0</ns>
    <id>2</id>
    <revision><id>11</id><text>A person. {{Authority control|VIAF=1|LCCN=2}}</text></revision>
  </page>
  <page>
    <title>Author C</title>
    <ns>0</ns>
    <id>3</id>
    <revision><id>12</id><text>Another person. {{Authority control|QID=Q1}}</text></revision>
  </page>
  <page>
    <title>Redirect D</title>
    <ns>0</ns>
    <id>4</id>
    <redirect title="Castle A" />
    <revision><id>13</id><text>#REDIRECT [[Castle A]] {{Coord|1.0|2.0}}</text></revision>
  </page>
  <page>
    <title>Template:Coord</title>
    <ns>10</ns>
    <id>5</id>
    <revision><id>14</id><text>{{Coord|3.0|4.0}}</text></revision>
  </page>
</mediawiki>`

func newTestScanner() *Scanner {
	rules := classify.NewRuleSet()
	rules[classify.Coordinates].Add("coord")
	rules[classify.AuthorityControl].Add("authority_control")
	return &Scanner{Rules: rules, Agg: report.NewAggregate()}
}

func TestScanMiniDump(t *testing.T) {
	p, err := dump.NewParser(strings.NewReader(miniDump))
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	s := newTestScanner()
	if err := s.Run(p); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	a := s.Agg
	if a.Pages != 5 {
		t.Errorf("Pages = %d, want 5", a.Pages)
	}
	if a.Evaluated != 3 {
		t.Errorf("Evaluated = %d, want 3 (redirect and template page skipped)", a.Evaluated)
	}

	cd := a.Counts[classify.Coordinates]
	if cd.Tracking != 1 || cd.Transclusion != 0 {
		t.Errorf("cd = %+v, want tracking=1 transclusion=0", cd)
	}
	ac := a.Counts[classify.AuthorityControl]
	if ac.Tracking != 1 || ac.Transclusion != 1 {
		t.Errorf("ac = %+v, want tracking=1 transclusion=1", ac)
	}

	if a.Probable != 3 {
		t.Errorf("Probable = %d, want 3", a.Probable)
	}
	// only the page whose sole invocation was a transclusion confirms usage
	if a.Confirmed != 1 {
		t.Errorf("Confirmed = %d, want 1", a.Confirmed)
	}
}

func TestScanProgressOutput(t *testing.T) {
	p, err := dump.NewParser(strings.NewReader(miniDump))
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	var buf bytes.Buffer
	s := newTestScanner()
	s.ProgressEvery = 2
	s.Out = &buf

	if err := s.Run(p); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	// 5 pages with a line every 2 pages: lines at 2 and 4
	lines := strings.Count(buf.String(), "pages processed.")
	if lines != 2 {
		t.Errorf("got %d progress lines, want 2:\n%s", lines, buf.String())
	}
	if !strings.Contains(buf.String(), "likely on wbc_entity_usage") {
		t.Errorf("progress line missing totals: %s", buf.String())
	}
}
