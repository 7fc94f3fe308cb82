package enrich

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// ErrorKind classifies a transport failure so the retry policy can branch on
// structure instead of error-message text.
type ErrorKind int

const (
	KindOther ErrorKind = iota
	KindRateLimited
	KindTimeout
	KindUnavailable
	KindNetwork
)

func (k ErrorKind) String() string {
	switch k {
	case KindRateLimited:
		return "rate_limited"
	case KindTimeout:
		return "timeout"
	case KindUnavailable:
		return "unavailable"
	case KindNetwork:
		return "network"
	default:
		return "other"
	}
}

// APIError is a classified failure from the enrichment service.
type APIError struct {
	Kind    ErrorKind
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("enrichment service %s (HTTP %d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("enrichment service %s: %s", e.Kind, e.Message)
}

// Retryable reports whether the failure is transient.
func (e *APIError) Retryable() bool {
	switch e.Kind {
	case KindRateLimited, KindTimeout, KindUnavailable, KindNetwork:
		return true
	default:
		return false
	}
}

// Transport issues chat-completion requests to an OpenAI-compatible endpoint.
type Transport struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewTransport creates a transport for the given endpoint and credential.
func NewTransport(endpoint, apiKey, model string, timeout time.Duration) *Transport {
	return &Transport{
		endpoint: endpoint,
		apiKey:   apiKey,
		model:    model,
		client:   &http.Client{Timeout: timeout},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete sends one user prompt and returns the model's text payload.
func (t *Transport) Complete(ctx context.Context, prompt string, temperature float64, maxTokens int) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model:       t.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", classifyTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", &APIError{
			Kind:    classifyStatus(resp.StatusCode),
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(payload)),
		}
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(decoded.Choices) == 0 || decoded.Choices[0].Message.Content == "" {
		return "", errors.New("no response from model")
	}

	return decoded.Choices[0].Message.Content, nil
}

func classifyStatus(status int) ErrorKind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status == http.StatusServiceUnavailable,
		status == http.StatusBadGateway,
		status == http.StatusGatewayTimeout:
		return KindUnavailable
	case status >= http.StatusInternalServerError:
		return KindUnavailable
	default:
		return KindOther
	}
}

func classifyTransportError(err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return &APIError{Kind: KindTimeout, Message: err.Error()}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &APIError{Kind: KindTimeout, Message: err.Error()}
	case errors.Is(err, context.Canceled):
		return &APIError{Kind: KindOther, Message: err.Error()}
	default:
		return &APIError{Kind: KindNetwork, Message: err.Error()}
	}
}
