// Package inference calls an OpenAI-compatible chat-completions endpoint.
package inference

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/BerylCAtieno/career-feedback-api/internal/utils"
)

// ErrInferenceFailed wraps transport, provider and malformed-response failures.
var ErrInferenceFailed = errors.New("inference failed")

// maxErrorBody bounds how much of a failed response body is logged.
const maxErrorBody = 2048

// Generator returns the model's completion for prompt.
type Generator interface {
	Generate(ctx context.Context, model, prompt string) (string, error)
}

type Client struct {
	apiKey  string
	baseURL string
	logger  *utils.Logger
	client  *http.Client
}

type ChatRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatResponse struct {
	Choices []Choice `json:"choices"`
	Error   *struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error,omitempty"`
}

type Choice struct {
	Message Message `json:"message"`
}

// NewClient builds a client for baseURL. A zero timeout leaves the transport defaults in place.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *utils.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) Generate(ctx context.Context, model, prompt string) (string, error) {
	start := time.Now()

	reqBody := ChatRequest{
		Model: model,
		Messages: []Message{
			{
				Role:    "user",
				Content: prompt,
			},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("%w: failed to marshal request: %w", ErrInferenceFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("%w: failed to create request: %w", ErrInferenceFailed, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: failed to send request: %w", ErrInferenceFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: failed to read response: %w", ErrInferenceFailed, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Inference API error",
			"status", resp.StatusCode,
			"model", model,
			"body", truncate(string(body), maxErrorBody))
		return "", fmt.Errorf("%w: API returned status %d", ErrInferenceFailed, resp.StatusCode)
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", fmt.Errorf("%w: failed to unmarshal response: %w", ErrInferenceFailed, err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("%w: API error: %s", ErrInferenceFailed, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", ErrInferenceFailed)
	}

	content := chatResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: empty completion", ErrInferenceFailed)
	}

	c.logger.Debug("Inference completed",
		"model", model,
		"prompt_length", len(prompt),
		"completion_length", len(content),
		"elapsed_ms", time.Since(start).Milliseconds())

	return content, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
