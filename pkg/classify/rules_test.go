package classify

import (
	"testing"

	"github.com/wdtools/wdreuse/pkg/wikitext"
)

func inv(params ...wikitext.Param) wikitext.Template {
	return wikitext.Template{Name: "x", Params: params}
}

func p(name, value string) wikitext.Param {
	return wikitext.Param{Name: name, Value: value}
}

func TestZeroParamsAreTrackingOnly(t *testing.T) {
	rules := NewRuleSet()
	for _, fam := range []Family{AuthorityControl, Taxonbar, ExternalLink, BirthDate} {
		if !rules[fam].TrackingOnly(inv()) {
			t.Errorf("%s: zero-parameter invocation should be tracking-only", fam)
		}
	}
}

func TestCoordinates(t *testing.T) {
	pred := NewRuleSet()[Coordinates].TrackingOnly
	tests := []struct {
		name string
		t    wikitext.Template
		want bool
	}{
		{"no params", inv(), false},
		{"float value", inv(p("1", "51.5")), true},
		{"float with whitespace", inv(p("1", " 51.5 ")), true},
		{"latitude in name", inv(p("latitude=", "not a number")), true},
		{"dd in name", inv(p("dd=", "N")), true},
		{"caption only", inv(p("caption", "a castle")), false},
		{"mixed", inv(p("caption", "a castle"), p("2", "-0.12")), true},
	}
	for _, tt := range tests {
		if got := pred(tt.t); got != tt.want {
			t.Errorf("%s: coordTracking = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestAuthorityControl(t *testing.T) {
	pred := NewRuleSet()[AuthorityControl].TrackingOnly
	tests := []struct {
		name string
		t    wikitext.Template
		want bool
	}{
		{"no params", inv(), true},
		{"single qid", inv(p("qid", "Q42")), false},
		{"single QID mixed case", inv(p(" QID ", "Q42")), false},
		{"single other", inv(p("VIAF", "1")), true},
		{"qid plus extra", inv(p("qid", "Q42"), p("VIAF", "1")), true},
		{"two identifiers", inv(p("VIAF", "1"), p("LCCN", "2")), true},
	}
	for _, tt := range tests {
		if got := pred(tt.t); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestTaxonbar(t *testing.T) {
	pred := NewRuleSet()[Taxonbar].TrackingOnly
	if pred(inv(p("from", "Q1"))) {
		t.Error("single from= parameter should be a transclusion")
	}
	if !pred(inv(p("qid", "Q1"))) {
		t.Error("taxonbar does not recognize qid=")
	}
	if !pred(inv(p("from", "Q1"), p("from2", "Q2"))) {
		t.Error("multiple parameters should be tracking-only")
	}
}

func TestBirthDateAlwaysTracking(t *testing.T) {
	pred := NewRuleSet()[BirthDate].TrackingOnly
	if !pred(inv()) {
		t.Error("zero params should be tracking-only")
	}
	if !pred(inv(p("1", "1985"), p("2", "3"), p("3", "14"), p("df", "yes"))) {
		t.Error("many params should still be tracking-only")
	}
}

func TestExternalLink(t *testing.T) {
	pred := NewRuleSet()[ExternalLink].TrackingOnly
	if pred(inv(p("name", "Example"))) {
		t.Error("single name= parameter should be a transclusion")
	}
	if !pred(inv(p("name", "Example"), p("url", "http://example.org"))) {
		t.Error("name plus url should be tracking-only")
	}
	if !pred(inv()) {
		t.Error("zero params should be tracking-only")
	}
}

func TestRuleNameSets(t *testing.T) {
	rules := NewRuleSet()
	r := rules[Coordinates]
	r.Add("coord")
	r.Add("coor")
	r.Add("coord") // duplicate
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
	if !r.Contains("coord") || r.Contains("location") {
		t.Error("Contains() mismatch")
	}
}
