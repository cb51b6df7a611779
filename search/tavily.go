package search

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/smhanov/bioflow"
)

// Tavily calls the Tavily search API.
type Tavily struct {
	APIKey string
	// Depth controls Tavily's search_depth parameter (basic or advanced).
	Depth string
	// MaxResults caps the number of results requested per query.
	MaxResults int
	// IncludeRawContent asks Tavily for the full page text of each result.
	IncludeRawContent bool
	// Endpoint overrides the Tavily API URL, mainly for tests.
	Endpoint string
	client   *http.Client
}

// NewTavily constructs a Tavily provider with the settings the biography
// researcher uses: advanced depth, ten results per query, raw page content
// included, no generated answer, no images.
func NewTavily(apiKey string) *Tavily {
	return NewTavilyWithClient(apiKey, &http.Client{Timeout: 30 * time.Second})
}

// NewTavilyWithClient constructs a Tavily provider using the supplied HTTP
// client. This is useful for overriding the default timeout.
func NewTavilyWithClient(apiKey string, client *http.Client) *Tavily {
	return &Tavily{
		APIKey:            apiKey,
		Depth:             "advanced",
		MaxResults:        10,
		IncludeRawContent: true,
		client:            client,
	}
}

const defaultEndpoint = "https://api.tavily.com/search"

// Search posts a query to Tavily.
func (t *Tavily) Search(ctx context.Context, query string) ([]bioflow.SearchResult, error) {
	if strings.TrimSpace(t.APIKey) == "" {
		return nil, errors.New("tavily: API key is missing")
	}

	endpoint := t.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	depth := t.Depth
	if depth == "" {
		depth = "basic"
	}
	maxResults := t.MaxResults
	if maxResults <= 0 {
		maxResults = 10
	}

	body := map[string]any{
		"query":               query,
		"api_key":             t.APIKey,
		"search_depth":        depth,
		"max_results":         maxResults,
		"include_answer":      false,
		"include_raw_content": t.IncludeRawContent,
		"include_images":      false,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	var resp *http.Response
	delay := 1 * time.Second
	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err = t.client.Do(req)
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			break
		}
		resp.Body.Close()

		// Back off and retry on 429, doubling the delay each time up to 30 s.
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
		if delay < 30*time.Second {
			delay *= 2
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily http %d", resp.StatusCode)
	}

	var response struct {
		Results []struct {
			Title      string `json:"title"`
			URL        string `json:"url"`
			Content    string `json:"content"`
			RawContent string `json:"raw_content"`
		} `json:"results"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, err
	}

	results := make([]bioflow.SearchResult, 0, len(response.Results))
	for _, r := range response.Results {
		results = append(results, bioflow.SearchResult{
			Title:      r.Title,
			URL:        r.URL,
			Snippet:    r.Content,
			RawContent: r.RawContent,
		})
		if len(results) >= maxResults {
			break
		}
	}
	return results, nil
}
