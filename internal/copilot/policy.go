package copilot

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// Fallback strings. The controller relies on every policy resolving with
// non-empty text, so all failure paths fold into these.
const (
	FallbackApology  = "Sorry, I couldn't reach the studio copilot just now. Please try again in a moment."
	FallbackNoAnswer = "No answer generated."
)

const (
	// DefaultMaxHistory bounds how many recent turns are sent upstream.
	DefaultMaxHistory = 20
	// DefaultTimeout bounds a single remote reply attempt.
	DefaultTimeout = 20 * time.Second
)

// ReplyPolicy computes the assistant text for the accumulated history.
// A policy never fails: every error path resolves to a user-safe string.
type ReplyPolicy interface {
	Reply(ctx context.Context, turns []ChatTurn) string
}

type exchangeRequest struct {
	Messages []ChatTurn `json:"messages"`
}

type exchangeResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

// RemotePolicy delegates reply generation to the copilot proxy endpoint.
// One attempt per call, no retry.
type RemotePolicy struct {
	Endpoint   string
	HTTPClient *http.Client
	MaxHistory int
	Timeout    time.Duration
}

func NewRemotePolicy(endpoint string) *RemotePolicy {
	return &RemotePolicy{
		Endpoint:   endpoint,
		HTTPClient: &http.Client{},
		MaxHistory: DefaultMaxHistory,
		Timeout:    DefaultTimeout,
	}
}

func (p *RemotePolicy) Reply(ctx context.Context, turns []ChatTurn) string {
	turns = CapHistory(turns, p.MaxHistory)

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	payload, err := json.Marshal(exchangeRequest{Messages: turns})
	if err != nil {
		return FallbackApology
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return FallbackApology
	}
	req.Header.Set("Content-Type", "application/json")

	client := p.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return FallbackApology
	}
	defer resp.Body.Close()

	var body exchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return FallbackApology
	}
	if resp.StatusCode != http.StatusOK {
		// A failing endpoint still carries a safe reply; use it if present.
		if strings.TrimSpace(body.Reply) != "" {
			return body.Reply
		}
		return FallbackApology
	}
	if strings.TrimSpace(body.Reply) == "" {
		return FallbackNoAnswer
	}
	return body.Reply
}

// CapHistory keeps the most recent max turns. Capping bounds request size
// and cost for long conversations.
func CapHistory(turns []ChatTurn, max int) []ChatTurn {
	if max <= 0 {
		max = DefaultMaxHistory
	}
	if len(turns) > max {
		return turns[len(turns)-max:]
	}
	return turns
}
