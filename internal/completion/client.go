// Package completion calls a remote text-generation endpoint that accepts
// {"inputs": ..., "parameters": {...}} and answers with a list of
// {"generated_text": ...} objects.
package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
)

const DefaultURL = "https://api-inference.huggingface.co/models/gpt2"

var (
	ErrNoCredential    = errors.New("completion: no api credential configured")
	ErrEmptyCompletion = errors.New("completion: empty generated text")
	ErrRemote          = errors.New("completion: remote error")
)

// StatusError is returned for non-2xx responses.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("completion: unexpected status %d", e.Code)
	}
	return fmt.Sprintf("completion: unexpected status %d: %s", e.Code, e.Body)
}

type Parameters struct {
	MaxLength      int     `json:"max_length"`
	Temperature    float64 `json:"temperature"`
	DoSample       bool    `json:"do_sample"`
	ReturnFullText bool    `json:"return_full_text"`
}

func DefaultParameters() Parameters {
	return Parameters{
		MaxLength:      100,
		Temperature:    0.7,
		DoSample:       true,
		ReturnFullText: false,
	}
}

type Request struct {
	Inputs     string     `json:"inputs"`
	Parameters Parameters `json:"parameters"`
}

type Generation struct {
	GeneratedText string `json:"generated_text"`
	Error         string `json:"error,omitempty"`
}

type Options struct {
	URL    string
	APIKey string
	// HTTPClient supplies the base transport and timeout. Nil means
	// http.DefaultClient.
	HTTPClient *http.Client
}

type Client struct {
	url        string
	params     Parameters
	httpClient *http.Client
	configured bool
}

func New(opts Options) *Client {
	url := strings.TrimSpace(opts.URL)
	if url == "" {
		url = DefaultURL
	}
	base := opts.HTTPClient
	if base == nil {
		base = http.DefaultClient
	}
	c := &Client{url: url, params: DefaultParameters()}

	key := strings.TrimSpace(opts.APIKey)
	if key == "" {
		c.httpClient = base
		return c
	}
	c.configured = true
	c.httpClient = &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: key, TokenType: "Bearer"}),
			Base:   base.Transport,
		},
		Timeout: base.Timeout,
	}
	return c
}

func (c *Client) Configured() bool {
	return c != nil && c.configured
}

func (c *Client) URL() string {
	return c.url
}

// Complete sends one generation request. It never retries.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	if !c.Configured() {
		return "", ErrNoCredential
	}
	payload, err := json.Marshal(Request{Inputs: prompt, Parameters: c.params})
	if err != nil {
		return "", fmt.Errorf("completion: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("completion: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(snippet))}
	}

	var gens []Generation
	if err := json.NewDecoder(resp.Body).Decode(&gens); err != nil {
		return "", fmt.Errorf("completion: decode response: %w", err)
	}
	if len(gens) == 0 {
		return "", ErrEmptyCompletion
	}
	if gens[0].Error != "" {
		return "", fmt.Errorf("%w: %s", ErrRemote, gens[0].Error)
	}
	text := strings.TrimSpace(gens[0].GeneratedText)
	if text == "" {
		return "", ErrEmptyCompletion
	}
	return text, nil
}
