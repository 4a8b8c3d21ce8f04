package completion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/jack-barr3tt/railchat/src/common/types"
	"go.uber.org/zap"
)

const (
	defaultBaseURL = "https://api.anthropic.com/v1/messages"
	defaultModel   = "claude-3-5-sonnet-20241022"

	apiVersion = "2023-06-01"
	maxTokens  = 1024
)

// Completer is the narrow surface the pipeline depends on, so stages can be
// tested against a substitute implementation.
type Completer interface {
	Complete(ctx context.Context, system string, user string) (string, error)
}

type Client struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
	logger  *zap.SugaredLogger
}

func NewClient(logger *zap.SugaredLogger) (*Client, error) {
	apiKey := os.Getenv("ANTHROPIC_API_KEY")
	if apiKey == "" {
		return nil, errors.New("ANTHROPIC_API_KEY is not set")
	}

	baseURL := os.Getenv("ANTHROPIC_API_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	model := os.Getenv("ANTHROPIC_MODEL")
	if model == "" {
		model = defaultModel
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 30 * time.Second},
		logger:  logger,
	}, nil
}

func (c *Client) Complete(ctx context.Context, system string, user string) (string, error) {
	payload := types.CompletionRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		System:    system,
		Messages: []types.CompletionMessage{
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &types.UpstreamError{Service: "completion", Body: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &types.UpstreamError{Service: "completion", StatusCode: resp.StatusCode, Body: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &types.UpstreamError{Service: "completion", StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	var result types.CompletionResponse
	if err := json.Unmarshal(respBody, &result); err != nil {
		return "", &types.UpstreamError{Service: "completion", StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	if len(result.Content) == 0 {
		return "", &types.UpstreamError{Service: "completion", StatusCode: resp.StatusCode, Body: "response contained no content blocks"}
	}

	c.logger.Debugw("completion call finished", "model", c.model, "chars", len(result.Content[0].Text))

	return result.Content[0].Text, nil
}
