package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"golang.org/x/net/context/ctxhttp"
)

const (
	DefaultBaseURL   = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel     = "llama-3.1-8b-instant"
	DefaultMaxTokens = 500
	DefaultTimeout   = 30 * time.Second

	// NoKeyReply is returned by Ask without touching the network when no
	// credential is configured.
	NoKeyReply = "API key ayarlanmamış. Ayarlar ekranından Groq API key'ini gir! 🔑"

	maxErrorLen = 50
)

var ErrNoAPIKey = errors.New("api key not configured")

// APIError is an error reported by the provider in the response body.
type APIError struct {
	Message string
}

func (e *APIError) Error() string {
	return "provider error: " + e.Message
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type Options struct {
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
	UserName  string
}

// Client talks to an OpenAI-compatible chat completions endpoint. The API
// key can be swapped while requests are in flight.
type Client struct {
	BaseURL   string
	Model     string
	MaxTokens int
	HTTP      *http.Client
	Prompts   Prompts

	mu     sync.RWMutex
	apiKey string
}

func New(apiKey string, opts Options) *Client {
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	if opts.MaxTokens <= 0 {
		opts.MaxTokens = DefaultMaxTokens
	}
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:   opts.BaseURL,
		Model:     opts.Model,
		MaxTokens: opts.MaxTokens,
		HTTP:      &http.Client{Timeout: opts.Timeout},
		Prompts:   NewPrompts(opts.UserName),
		apiKey:    apiKey,
	}
}

func (c *Client) APIKey() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.apiKey
}

func (c *Client) SetAPIKey(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.apiKey = key
}

// Active reports whether a credential is configured.
func (c *Client) Active() bool {
	return c.APIKey() != ""
}

type completionRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []Message `json:"messages"`
}

type completionResponse struct {
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// Complete sends system, history and prompt as one conversation and returns
// the first choice. An empty system message selects the default persona.
func (c *Client) Complete(ctx context.Context, prompt, system string, history []Message) (string, error) {
	key := c.APIKey()
	if key == "" {
		return "", ErrNoAPIKey
	}
	if system == "" {
		system = c.Prompts.Persona()
	}

	messages := make([]Message, 0, len(history)+2)
	messages = append(messages, Message{Role: "system", Content: system})
	messages = append(messages, history...)
	messages = append(messages, Message{Role: "user", Content: prompt})

	body, err := json.Marshal(completionRequest{
		Model:     c.Model,
		MaxTokens: c.MaxTokens,
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.BaseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	res, err := ctxhttp.Do(ctx, c.HTTP, req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var out completionResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decode response (status %d): %w", res.StatusCode, err)
	}
	if out.Error != nil {
		msg := out.Error.Message
		if msg == "" {
			msg = "bilinmeyen"
		}
		return "", &APIError{Message: msg}
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("no choices in response (status %d)", res.StatusCode)
	}
	return out.Choices[0].Message.Content, nil
}

// Ask is Complete for callers that embed the answer in a response: every
// failure comes back as a readable string instead of an error.
func (c *Client) Ask(ctx context.Context, prompt, system string, history []Message) string {
	text, err := c.Complete(ctx, prompt, system, history)
	if err == nil {
		return text
	}

	var apiErr *APIError
	switch {
	case errors.Is(err, ErrNoAPIKey):
		return NoKeyReply
	case errors.As(err, &apiErr):
		slog.Warn("completion rejected by provider", "error", apiErr.Message)
		return "AI hatası: " + apiErr.Message
	default:
		slog.Warn("completion failed", "error", err)
		return "Bağlantı hatası: " + truncate(err.Error(), maxErrorLen)
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
