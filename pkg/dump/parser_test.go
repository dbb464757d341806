package dump

import (
	"io"
	"strings"
	"testing"
)

const testDump = `<mediawiki xml:lang="en">
  <siteinfo>
    <sitename>Wikipedia</sitename>
    <dbname>enwiki</dbname>
    <base>https://en.wikipedia.org/wiki/Main_Page</base>
    <generator>MediaWiki 1.43</generator>
    <namespaces>
      <namespace key="0" />
      <namespace key="10">Template</namespace>
    </namespaces>
  </siteinfo>
  <page>
    <title>London</title>
    <ns>0</ns>
    <id>1</id>
    <revision>
      <id>100</id>
      <timestamp>2024-01-01T00:00:00Z</timestamp>
      <text>{{Coord|51.5|-0.1}} London is a city.</text>
    </revision>
  </page>
  <page>
    <title>LDN</title>
    <ns>0</ns>
    <id>2</id>
    <redirect title="London" />
    <revision>
      <id>101</id>
      <text>#REDIRECT [[London]]</text>
    </revision>
  </page>
  <page>
    <title>Template:Coord</title>
    <ns>10</ns>
    <id>3</id>
    <revision>
      <id>102</id>
      <text>template body</text>
    </revision>
  </page>
</mediawiki>`

func TestParser(t *testing.T) {
	p, err := NewParser(strings.NewReader(testDump))
	if err != nil {
		t.Fatalf("NewParser() error = %v", err)
	}

	if p.SiteInfo.DBName != "enwiki" {
		t.Errorf("SiteInfo.DBName = %q, want enwiki", p.SiteInfo.DBName)
	}

	var pages []*Page
	for {
		page, err := p.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		pages = append(pages, page)
	}

	if len(pages) != 3 {
		t.Fatalf("got %d pages, want 3", len(pages))
	}

	if pages[0].Title != "London" || !pages[0].IsArticle() {
		t.Errorf("first page = %+v, want mainspace article London", pages[0])
	}
	if !strings.Contains(pages[0].Revision.Text, "{{Coord|51.5|-0.1}}") {
		t.Errorf("revision text not preserved: %q", pages[0].Revision.Text)
	}

	if pages[1].Redirect == nil || pages[1].IsArticle() {
		t.Errorf("second page should be a redirect: %+v", pages[1])
	}
	if pages[1].Redirect.Title != "London" {
		t.Errorf("redirect target = %q, want London", pages[1].Redirect.Title)
	}

	if pages[2].NS != 10 || pages[2].IsArticle() {
		t.Errorf("third page should be template namespace: %+v", pages[2])
	}
}

func TestParserEmptyInput(t *testing.T) {
	if _, err := NewParser(strings.NewReader("")); err == nil {
		t.Error("expected error for empty input")
	}
}
