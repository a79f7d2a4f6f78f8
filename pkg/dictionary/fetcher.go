// Package dictionary retrieves word definitions by scraping the Oxford
// Learners Dictionaries website.
package dictionary

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// NotFound is the user-visible result for any lookup that produced no
// definition, including non-200 responses from the dictionary site.
const NotFound = "Definition not found."

const defaultBaseURL = "https://www.oxfordlearnersdictionaries.com/definition/english/"

// Some dictionary sites reject requests without a browser User-Agent.
const userAgent = "Mozilla/5.0"

// Fetcher scrapes definitions from a dictionary site. Lookup failures
// are never returned as errors: the caller always gets displayable
// text, and the underlying cause is logged here.
type Fetcher struct {
	baseURL string
	client  *http.Client
	log     *slog.Logger
}

func NewFetcher(log *slog.Logger) *Fetcher {
	return &Fetcher{
		baseURL: defaultBaseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		log:     log,
	}
}

// NewFetcherWithBaseURL is used by tests to point at a stub server.
func NewFetcherWithBaseURL(log *slog.Logger, baseURL string) *Fetcher {
	f := NewFetcher(log)
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	f.baseURL = baseURL
	return f
}

// Fetch looks up a single word, already normalized to lowercase.
// The result is the trimmed definition text, NotFound, or an "Error:"
// string describing a transport failure.
func (f *Fetcher) Fetch(ctx context.Context, word string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+url.PathEscape(word), nil)
	if err != nil {
		f.log.Warn("dictionary request build failed", "word", word, "err", err)
		return "Error: " + err.Error()
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		f.log.Warn("dictionary fetch failed", "word", word, "err", err)
		return "Error: " + err.Error()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		f.log.Warn("dictionary returned non-200", "word", word, "status", resp.StatusCode)
		return NotFound
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		f.log.Warn("dictionary parse failed", "word", word, "err", err)
		return "Error: " + err.Error()
	}

	def := strings.TrimSpace(doc.Find("span.def").First().Text())
	if def == "" {
		return NotFound
	}
	return def
}
