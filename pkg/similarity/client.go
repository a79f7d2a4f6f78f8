// Package similarity ranks candidate words against a query using the
// HuggingFace sentence-similarity inference API.
package similarity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sort"
	"time"
)

const defaultAPIURL = "https://api-inference.huggingface.co/models/sentence-transformers/all-MiniLM-L6-v2"

// DefaultLimit is the number of suggestions returned when the caller
// does not ask for a specific count.
const DefaultLimit = 5

// Client calls the remote similarity service. A missing token is a
// supported configuration: Suggest then degrades to zero suggestions
// rather than failing.
type Client struct {
	token  string
	apiURL string
	words  []string
	client *http.Client
	log    *slog.Logger
}

// request mirrors the inference API body:
// {"inputs":{"source_sentence":q,"sentences":[...]}}.
type request struct {
	Inputs inputs `json:"inputs"`
}

type inputs struct {
	SourceSentence string   `json:"source_sentence"`
	Sentences      []string `json:"sentences"`
}

func NewClient(token string, words []string, log *slog.Logger) *Client {
	return &Client{
		token:  token,
		apiURL: defaultAPIURL,
		words:  words,
		client: &http.Client{Timeout: 15 * time.Second},
		log:    log,
	}
}

// NewClientWithAPIURL is used by tests to point at a stub server.
func NewClientWithAPIURL(token string, words []string, log *slog.Logger, apiURL string) *Client {
	c := NewClient(token, words, log)
	c.apiURL = apiURL
	return c
}

// Suggest returns up to limit words ranked by similarity to query,
// best first. Equal scores keep their word-list order. Any failure —
// transport, bad status, a response that is not a float array parallel
// to the word list — yields an empty slice and a log entry.
func (c *Client) Suggest(ctx context.Context, query string, limit int) []string {
	if c.token == "" || len(c.words) == 0 {
		return nil
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	scores, err := c.score(ctx, query)
	if err != nil {
		c.log.Warn("similarity scoring failed", "query", query, "err", err)
		return nil
	}

	type scored struct {
		word  string
		score float64
	}
	ranked := make([]scored, len(c.words))
	for i, w := range c.words {
		ranked[i] = scored{word: w, score: scores[i]}
	}
	// Stable: ties preserve word-list order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > len(ranked) {
		limit = len(ranked)
	}
	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = ranked[i].word
	}
	return out
}

func (c *Client) score(ctx context.Context, query string) ([]float64, error) {
	body, err := json.Marshal(request{Inputs: inputs{
		SourceSentence: query,
		Sentences:      c.words,
	}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("similarity API returned status %d", resp.StatusCode)
	}

	var scores []float64
	if err := json.NewDecoder(resp.Body).Decode(&scores); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if len(scores) != len(c.words) {
		return nil, fmt.Errorf("expected %d scores, got %d", len(c.words), len(scores))
	}
	return scores, nil
}
