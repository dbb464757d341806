// Package wikitext extracts template invocations from raw wiki markup.
//
// This is not a general wikitext parser. It handles exactly what the
// classifier needs: locating {{...}} invocations (including nested ones),
// splitting their parameters, and normalizing names for matching.
package wikitext

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	commentRE = regexp.MustCompile(`(?ms)<!--.*?-->`)
	nowikiRE  = regexp.MustCompile(`(?ms)<nowiki>.*?</nowiki>`)
	// {{{name}}} is a template argument, not an invocation
	argRE = regexp.MustCompile(`\{\{\{[^{}]*\}\}\}`)
)

// Template is a single template invocation as it appears in source.
type Template struct {
	Name   string // normalized
	Params []Param
}

// Param is one template parameter. Positional parameters get 1-based
// ordinal names ("1", "2", ...) like MediaWiki assigns them.
type Param struct {
	Name  string
	Value string
}

// Normalize standardizes a template name for matching: trimmed,
// lowercased, spaces replaced with underscores. Idempotent.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// StripNamespace drops a leading namespace prefix ("Template:Coord" -> "Coord").
func StripNamespace(title string) string {
	if i := strings.Index(title, ":"); i >= 0 {
		return title[i+1:]
	}
	return title
}

// NormalizeParamName standardizes a parameter name for matching.
func NormalizeParamName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Extract returns every template invocation in text, outermost first,
// then any invocations nested inside parameter values. Comments,
// nowiki spans and triple-brace arguments are stripped beforehand.
func Extract(text string) []Template {
	cleaned := nowikiRE.ReplaceAllString(commentRE.ReplaceAllString(text, ""), "")
	cleaned = argRE.ReplaceAllString(cleaned, "")
	return extract(cleaned)
}

func extract(text string) []Template {
	var rv []Template
	for i := 0; i < len(text); {
		j := strings.Index(text[i:], "{{")
		if j < 0 {
			break
		}
		start := i + j
		end := matchBraces(text, start)
		if end < 0 {
			// unbalanced, skip the opener
			i = start + 2
			continue
		}
		inner := text[start+2 : end]
		if t, ok := parseInvocation(inner); ok {
			rv = append(rv, t)
		}
		rv = append(rv, extract(inner)...)
		i = end + 2
	}
	return rv
}

// matchBraces returns the index of the "}}" closing the "{{" at start,
// or -1 if it never closes.
func matchBraces(s string, start int) int {
	depth := 0
	for i := start; i+1 < len(s); i++ {
		switch {
		case s[i] == '{' && s[i+1] == '{':
			depth++
			i++
		case s[i] == '}' && s[i+1] == '}':
			depth--
			if depth == 0 {
				return i
			}
			i++
		}
	}
	return -1
}

func parseInvocation(inner string) (Template, bool) {
	segs := splitTop(inner, '|')
	name := Normalize(segs[0])
	if name == "" {
		return Template{}, false
	}
	t := Template{Name: name}
	pos := 0
	for _, seg := range segs[1:] {
		if k := indexTop(seg, '='); k >= 0 {
			t.Params = append(t.Params, Param{Name: seg[:k], Value: seg[k+1:]})
		} else {
			pos++
			t.Params = append(t.Params, Param{Name: strconv.Itoa(pos), Value: seg})
		}
	}
	return t, true
}

// splitTop splits s on sep, ignoring occurrences inside nested
// {{...}} templates and [[...]] links.
func splitTop(s string, sep byte) []string {
	var parts []string
	depth, last := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case i+1 < len(s) && (s[i:i+2] == "{{" || s[i:i+2] == "[["):
			depth++
			i++
		case i+1 < len(s) && (s[i:i+2] == "}}" || s[i:i+2] == "]]"):
			depth--
			i++
		case s[i] == sep && depth == 0:
			parts = append(parts, s[last:i])
			last = i + 1
		}
	}
	return append(parts, s[last:])
}

// indexTop finds the first top-level occurrence of sep in s, or -1.
func indexTop(s string, sep byte) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch {
		case i+1 < len(s) && (s[i:i+2] == "{{" || s[i:i+2] == "[["):
			depth++
			i++
		case i+1 < len(s) && (s[i:i+2] == "}}" || s[i:i+2] == "]]"):
			depth--
			i++
		case s[i] == sep && depth == 0:
			return i
		}
	}
	return -1
}
