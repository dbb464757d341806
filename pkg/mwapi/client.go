// Package mwapi is a minimal read-only MediaWiki API client covering the
// two queries this tool needs: template redirects and category members.
package mwapi

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/wdtools/wdreuse/pkg/caching"
	"github.com/wdtools/wdreuse/pkg/wikitext"
)

const (
	userAgent = "wdreuse template-reuse analysis (https://github.com/wdtools/wdreuse)"

	// templateNamespace is MediaWiki namespace 10.
	templateNamespace = "10"

	// queryLimit bounds result pages; the API caps anonymous clients at 500.
	queryLimit = "500"
)

// Client issues queries against one wiki's api.php endpoint.
type Client struct {
	// BaseURL is the api.php endpoint, e.g. https://en.wikipedia.org/w/api.php.
	BaseURL string

	// Delay is inserted before every uncached request as a courtesy to
	// the remote service.
	Delay time.Duration

	// Cache, when set, short-circuits repeated queries. ForceFetch
	// bypasses cache reads but still populates it.
	Cache      *caching.Cache
	ForceFetch bool

	http *http.Client
	last time.Time
}

// NewClient builds a client for the given Wikipedia language edition.
func NewClient(lang string) *Client {
	return &Client{
		BaseURL: fmt.Sprintf("https://%s.wikipedia.org/w/api.php", lang),
		Delay:   500 * time.Millisecond,
		http:    &http.Client{},
	}
}

// Redirects resolves a canonical template title into the set of
// equivalent names: the title itself plus every template-namespace
// redirect pointing at it. All returned names are normalized with the
// namespace prefix stripped.
func (c *Client) Redirects(title string) ([]string, error) {
	params := url.Values{
		"action":        {"query"},
		"prop":          {"redirects"},
		"titles":        {title},
		"rdnamespace":   {templateNamespace},
		"rdlimit":       {queryLimit},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	body, err := c.get(params)
	if err != nil {
		return nil, fmt.Errorf("resolving redirects for %q: %w", title, err)
	}

	var res struct {
		Query struct {
			Pages []struct {
				Title     string `json:"title"`
				Redirects []struct {
					Title string `json:"title"`
				} `json:"redirects"`
			} `json:"pages"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decoding redirects for %q: %w", title, err)
	}
	if len(res.Query.Pages) == 0 {
		return nil, fmt.Errorf("no pages in redirects response for %q", title)
	}

	page := res.Query.Pages[0]
	names := []string{normalizeTitle(page.Title)}
	for _, r := range page.Redirects {
		names = append(names, normalizeTitle(r.Title))
	}
	return names, nil
}

// CategoryMembers lists up to 500 template-namespace members of a
// category. Titles are returned raw; normalization happens during
// matching.
func (c *Client) CategoryMembers(category string) ([]string, error) {
	params := url.Values{
		"action":        {"query"},
		"list":          {"categorymembers"},
		"cmtitle":       {category},
		"cmnamespace":   {templateNamespace},
		"cmlimit":       {queryLimit},
		"cmprop":        {"title"},
		"format":        {"json"},
		"formatversion": {"2"},
	}

	body, err := c.get(params)
	if err != nil {
		return nil, fmt.Errorf("listing members of %q: %w", category, err)
	}

	var res struct {
		Query struct {
			CategoryMembers []struct {
				Title string `json:"title"`
			} `json:"categorymembers"`
		} `json:"query"`
	}
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("decoding members of %q: %w", category, err)
	}

	titles := make([]string, 0, len(res.Query.CategoryMembers))
	for _, m := range res.Query.CategoryMembers {
		titles = append(titles, m.Title)
	}
	return titles, nil
}

func (c *Client) get(params url.Values) ([]byte, error) {
	requestURL := c.BaseURL + "?" + params.Encode()

	if c.Cache != nil && !c.ForceFetch {
		if body, ok := c.Cache.Get(requestURL); ok {
			return body, nil
		}
	}

	c.throttle()

	req, err := http.NewRequest(http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if c.Cache != nil {
		if err := c.Cache.Set(requestURL, body); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// throttle enforces the fixed inter-request delay.
func (c *Client) throttle() {
	if c.Delay <= 0 {
		return
	}
	if wait := c.Delay - time.Since(c.last); wait > 0 {
		time.Sleep(wait)
	}
	c.last = time.Now()
}

func normalizeTitle(title string) string {
	return wikitext.Normalize(wikitext.StripNamespace(title))
}
