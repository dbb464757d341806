// Package models defines runtime configuration for scan runs and the
// seed-template tables that drive name resolution.
package models

import "fmt"

// ScanConfig holds one scan's settings. All values come from CLI flags.
type ScanConfig struct {
	Lang          string
	DumpPath      string
	OutputTSV     string
	Offline       bool
	ProgressEvery int
}

// ResolveDumpPath returns the explicit dump path, or the standard
// Wikimedia dumps location for the configured language.
func (c *ScanConfig) ResolveDumpPath() string {
	if c.DumpPath != "" {
		return c.DumpPath
	}
	return fmt.Sprintf(
		"/mnt/data/xmldatadumps/public/%swiki/latest/%swiki-latest-pages-articles.xml.bz2",
		c.Lang, c.Lang)
}
