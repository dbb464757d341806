// Package classify decides whether a template invocation is tracking-only
// Wikidata usage or a genuine content transclusion.
//
// The predicates are hand-written heuristics tied to the known semantics of
// a handful of template families on Wikipedia. They are deliberately simple
// and make no attempt at general wikitext analysis.
package classify

import (
	"strconv"
	"strings"

	"github.com/wdtools/wdreuse/pkg/wikitext"
)

// Family tags one of the tracked template families.
type Family string

const (
	Coordinates      Family = "cd"
	AuthorityControl Family = "ac"
	Taxonbar         Family = "tb"
	BirthDate        Family = "bd"
	ExternalLink     Family = "el"
)

// Families lists every family in report order.
var Families = []Family{Coordinates, AuthorityControl, Taxonbar, BirthDate, ExternalLink}

// Predicate reports whether an invocation is tracking-only.
type Predicate func(t wikitext.Template) bool

// Rule binds a family's recognized template names to its predicate.
type Rule struct {
	names        map[string]struct{}
	TrackingOnly Predicate
}

// Add registers a normalized template name with the rule.
func (r *Rule) Add(name string) {
	r.names[name] = struct{}{}
}

// Contains reports whether a normalized name belongs to this family.
func (r *Rule) Contains(name string) bool {
	_, ok := r.names[name]
	return ok
}

// Len returns the number of registered names.
func (r *Rule) Len() int {
	return len(r.names)
}

// Names returns the registered names in no particular order.
func (r *Rule) Names() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	return names
}

// RuleSet maps each family to its rule. Name sets start empty and are
// filled once at startup; read-only during the scan.
type RuleSet map[Family]*Rule

// NewRuleSet builds the fixed family-to-predicate table.
func NewRuleSet() RuleSet {
	return RuleSet{
		Coordinates:      {names: map[string]struct{}{}, TrackingOnly: coordTracking},
		AuthorityControl: {names: map[string]struct{}{}, TrackingOnly: singleOverrideParam("qid")},
		Taxonbar:         {names: map[string]struct{}{}, TrackingOnly: singleOverrideParam("from")},
		BirthDate:        {names: map[string]struct{}{}, TrackingOnly: alwaysTracking},
		ExternalLink:     {names: map[string]struct{}{}, TrackingOnly: singleOverrideParam("name")},
	}
}

// coordTracking: anything that looks like a latitude/longitude means the
// coordinates came from the article, so the Wikidata link only tracks.
func coordTracking(t wikitext.Template) bool {
	for _, p := range t.Params {
		if _, err := strconv.ParseFloat(strings.TrimSpace(p.Value), 64); err == nil {
			return true
		}
		if strings.Contains(p.Name, "latitude=") || strings.Contains(p.Name, "dd=") {
			return true
		}
	}
	return false
}

// singleOverrideParam treats an invocation as a transclusion only when it
// carries exactly one parameter and that parameter names the Wikidata item
// override (qid= for authority control, from= for taxonbar, name= for
// external-link templates). Everything else, including a bare invocation,
// is tracking-only.
func singleOverrideParam(override string) Predicate {
	return func(t wikitext.Template) bool {
		return !(len(t.Params) == 1 && wikitext.NormalizeParamName(t.Params[0].Name) == override)
	}
}

// Birth-date templates never render Wikidata content.
func alwaysTracking(wikitext.Template) bool {
	return true
}
