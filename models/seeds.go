package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FamilySeeds names the starting points for one template family in one
// language: canonical template titles, and categories whose
// template-namespace members should all be included.
type FamilySeeds struct {
	Templates  []string `yaml:"templates,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
}

// Seeds maps family tag -> language code -> seeds.
type Seeds map[string]map[string]FamilySeeds

// DefaultSeeds returns the built-in English Wikipedia seed table. Other
// languages need a seeds file (--seeds).
func DefaultSeeds() Seeds {
	return Seeds{
		"cd": {"en": {Templates: []string{"Template:Coord"}}},
		"ac": {"en": {Templates: []string{"Template:Authority control"}}},
		"tb": {"en": {Templates: []string{"Template:Taxonbar"}}},
		"bd": {"en": {Templates: []string{
			"Template:Birth_date",
			"Template:Birth_date_and_age",
			"Template:Birth_year_and_age",
			"Template:Birth-date",
			"Template:Birth-date_and_age",
		}}},
		"el": {"en": {Categories: []string{
			"Category:External_link_templates_using_Wikidata",
		}}},
	}
}

// LoadSeeds reads a seed table from a YAML file.
func LoadSeeds(path string) (Seeds, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading seeds file: %w", err)
	}

	var s Seeds
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing seeds file: %w", err)
	}
	return s, nil
}

// ForLang looks up one family's seeds for a language.
func (s Seeds) ForLang(family, lang string) (FamilySeeds, bool) {
	langs, ok := s[family]
	if !ok {
		return FamilySeeds{}, false
	}
	fs, ok := langs[lang]
	if !ok || (len(fs.Templates) == 0 && len(fs.Categories) == 0) {
		return FamilySeeds{}, false
	}
	return fs, true
}
