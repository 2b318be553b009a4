package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"kolekta.io/kolekta/internal/config"
)

// Gateway delivers SMS messages to a provider.
type Gateway interface {
	Send(ctx context.Context, recipients []string, messageText string) error
}

// maxErrorBodyBytes bounds how much of a provider error response is kept
// for the error message.
const maxErrorBodyBytes = 512

// EngageSparkGateway sends messages through the EngageSpark HTTP API.
type EngageSparkGateway struct {
	apiURL         string
	apiKey         string
	organizationID int
	httpClient     *http.Client
}

// NewEngageSparkGateway creates a gateway from configuration.
func NewEngageSparkGateway(cfg config.SMSConfig) *EngageSparkGateway {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EngageSparkGateway{
		apiURL:         cfg.APIURL,
		apiKey:         cfg.APIKey,
		organizationID: cfg.OrganizationID,
		httpClient:     &http.Client{Timeout: timeout},
	}
}

type engageSparkRequest struct {
	OrganizationID int      `json:"organizationId"`
	Recipients     []string `json:"recipients"`
	MessageText    string   `json:"messageText"`
}

// Send posts the message to the provider. Any non-2xx response is an
// error carrying a bounded slice of the response body.
func (g *EngageSparkGateway) Send(ctx context.Context, recipients []string, messageText string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("sms send: no recipients")
	}

	payload, err := json.Marshal(engageSparkRequest{
		OrganizationID: g.organizationID,
		Recipients:     recipients,
		MessageText:    messageText,
	})
	if err != nil {
		return fmt.Errorf("marshal sms request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+g.apiKey)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post sms to provider: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return fmt.Errorf("sms provider returned %d: %s", resp.StatusCode, string(body))
	}
	return nil
}
