package models

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSeeds(t *testing.T) {
	s := DefaultSeeds()

	fs, ok := s.ForLang("cd", "en")
	if !ok || len(fs.Templates) != 1 || fs.Templates[0] != "Template:Coord" {
		t.Errorf("cd/en seeds = %+v, ok=%v", fs, ok)
	}

	fs, ok = s.ForLang("bd", "en")
	if !ok || len(fs.Templates) != 5 {
		t.Errorf("bd/en seeds = %+v, ok=%v", fs, ok)
	}

	fs, ok = s.ForLang("el", "en")
	if !ok || len(fs.Categories) != 1 {
		t.Errorf("el/en seeds = %+v, ok=%v", fs, ok)
	}

	if _, ok := s.ForLang("cd", "de"); ok {
		t.Error("no built-in seeds expected for de")
	}
	if _, ok := s.ForLang("xx", "en"); ok {
		t.Error("unknown family should not resolve")
	}
}

func TestLoadSeeds(t *testing.T) {
	content := `cd:
  de:
    templates:
      - Vorlage:Coordinate
ac:
  de:
    templates:
      - Vorlage:Normdaten
    categories:
      - Kategorie:Vorlage:mit Wikidata
`
	path := filepath.Join(t.TempDir(), "seeds.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSeeds(path)
	if err != nil {
		t.Fatalf("LoadSeeds() error = %v", err)
	}

	fs, ok := s.ForLang("cd", "de")
	if !ok || fs.Templates[0] != "Vorlage:Coordinate" {
		t.Errorf("cd/de = %+v, ok=%v", fs, ok)
	}
	fs, ok = s.ForLang("ac", "de")
	if !ok || len(fs.Categories) != 1 {
		t.Errorf("ac/de = %+v, ok=%v", fs, ok)
	}
}

func TestLoadSeedsMissingFile(t *testing.T) {
	if _, err := LoadSeeds(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestResolveDumpPath(t *testing.T) {
	c := &ScanConfig{Lang: "en"}
	want := "/mnt/data/xmldatadumps/public/enwiki/latest/enwiki-latest-pages-articles.xml.bz2"
	if got := c.ResolveDumpPath(); got != want {
		t.Errorf("ResolveDumpPath() = %q, want %q", got, want)
	}

	c.DumpPath = "/tmp/mini.xml"
	if got := c.ResolveDumpPath(); got != "/tmp/mini.xml" {
		t.Errorf("ResolveDumpPath() override = %q", got)
	}
}
