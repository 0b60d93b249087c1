// Package define provides an optional dictionary lookup for the answer
// word. It is only consulted after a game ends; failures surface as a
// missing definition and never affect game state.
package define

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the free dictionaryapi.dev entry endpoint.
	DefaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

	defaultTimeout = 5 * time.Second
)

// Client is a dictionaryapi.dev client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Definition is the first meaning found for a word.
type Definition struct {
	Word         string
	PartOfSpeech string
	Meaning      string
}

// entry mirrors the relevant parts of the dictionaryapi.dev response.
type entry struct {
	Word     string `json:"word"`
	Meanings []struct {
		PartOfSpeech string `json:"partOfSpeech"`
		Definitions  []struct {
			Definition string `json:"definition"`
		} `json:"definitions"`
	} `json:"meanings"`
}

// NewClient creates a lookup client. Empty baseURL and zero timeout use
// the defaults.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Lookup fetches the first definition of a word.
func (c *Client) Lookup(word string) (*Definition, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, strings.ToLower(strings.TrimSpace(word)))

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("define: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("define: unexpected status %d for %q", resp.StatusCode, word)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("define: cannot read response: %w", err)
	}

	var entries []entry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("define: cannot parse response: %w", err)
	}

	for _, e := range entries {
		for _, m := range e.Meanings {
			for _, d := range m.Definitions {
				if d.Definition == "" {
					continue
				}
				return &Definition{
					Word:         e.Word,
					PartOfSpeech: m.PartOfSpeech,
					Meaning:      d.Definition,
				}, nil
			}
		}
	}

	return nil, fmt.Errorf("define: no definition found for %q", word)
}
