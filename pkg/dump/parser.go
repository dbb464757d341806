// Package dump streams pages out of a MediaWiki XML dump.
package dump

import (
	"compress/bzip2"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"
)

// SiteInfo is the toplevel metadata block describing the dump.
type SiteInfo struct {
	SiteName   string `xml:"sitename"`
	DBName     string `xml:"dbname"`
	Base       string `xml:"base"`
	Generator  string `xml:"generator"`
	Namespaces []struct {
		Key   string `xml:"key,attr"`
		Value string `xml:",chardata"`
	} `xml:"namespaces>namespace"`
}

// Redirect marks a page as a redirect and carries its target title.
type Redirect struct {
	Title string `xml:"title,attr"`
}

// Revision is the latest revision of a page as stored in the dump.
type Revision struct {
	ID        uint64 `xml:"id"`
	Timestamp string `xml:"timestamp"`
	Text      string `xml:"text"`
}

// Page is one <page> record.
type Page struct {
	Title    string    `xml:"title"`
	NS       int       `xml:"ns"`
	ID       uint64    `xml:"id"`
	Redirect *Redirect `xml:"redirect"`
	Revision Revision  `xml:"revision"`
}

// IsArticle reports whether the page is mainspace content rather than a
// redirect or a page in another namespace.
func (p *Page) IsArticle() bool {
	return p.NS == 0 && p.Redirect == nil
}

// Parser emits pages from a dump stream.
type Parser struct {
	SiteInfo SiteInfo
	x        *xml.Decoder
}

// NewParser reads the dump header and siteinfo, leaving the decoder
// positioned at the first page.
func NewParser(r io.Reader) (*Parser, error) {
	d := xml.NewDecoder(r)
	if _, err := d.Token(); err != nil {
		return nil, fmt.Errorf("reading dump root element: %w", err)
	}

	si := SiteInfo{}
	if err := d.Decode(&si); err != nil {
		return nil, fmt.Errorf("decoding siteinfo: %w", err)
	}

	return &Parser{SiteInfo: si, x: d}, nil
}

// Next decodes the next page. Returns io.EOF at end of dump.
func (p *Parser) Next() (*Page, error) {
	rv := new(Page)
	if err := p.x.Decode(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

// OpenFile opens a dump file for streaming, decompressing bzip2 input by
// extension. The returned close function releases the underlying file.
func OpenFile(path string) (*Parser, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening dump: %w", err)
	}

	var r io.Reader = f
	if strings.HasSuffix(path, ".bz2") {
		r = bzip2.NewReader(f)
	}

	p, err := NewParser(r)
	if err != nil {
		_ = f.Close()
		return nil, nil, err
	}
	return p, f.Close, nil
}
