package payhero

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"shop-payment-reconciler/config"
	"shop-payment-reconciler/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client implements ports.ChannelRegistrar against the PayHero channel API.
// One attempt per call; retry policy belongs to the caller.
type Client struct {
	baseURL    string
	apiKey     string
	accountID  string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a PayHero API client.
func NewClient(cfg config.PayheroConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		accountID:  cfg.AccountID,
		httpClient: httpClient,
		log:        log,
	}
}

type channelRequest struct {
	ChannelType   string `json:"channel_type"`
	AccountID     string `json:"account_id"`
	ShortCode     string `json:"short_code"`
	AccountNumber string `json:"account_number"`
	Description   string `json:"description"`
}

type channelResponse struct {
	ID           json.Number `json:"id"`
	ErrorMessage string      `json:"error_message"`
	Message      string      `json:"message"`
}

// RegisterChannel creates a payment channel and returns its identifier.
func (c *Client) RegisterChannel(ctx context.Context, reg ports.ChannelRegistration) (string, error) {
	body := channelRequest{
		ChannelType:   reg.Type,
		AccountID:     c.accountID,
		ShortCode:     reg.ShortCode,
		AccountNumber: reg.AccountNumber,
		Description:   reg.Name,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshal channel request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/payment_channels", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create channel request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Basic "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("payhero channel request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read payhero response: %w", err)
	}

	var parsed channelResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("decode payhero response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Prefer the aggregator's own error text when it sends one.
		msg := parsed.ErrorMessage
		if msg == "" {
			msg = parsed.Message
		}
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		c.log.Warn().
			Int("status", resp.StatusCode).
			Str("short_code", reg.ShortCode).
			Str("error", msg).
			Msg("payhero channel registration rejected")
		return "", fmt.Errorf("payhero: %s", msg)
	}

	if parsed.ID.String() == "" {
		return "", fmt.Errorf("payhero response missing channel id")
	}

	channelID := parsed.ID.String()
	c.log.Info().
		Str("channel_id", channelID).
		Str("short_code", reg.ShortCode).
		Str("channel_type", reg.Type).
		Msg("payhero channel registered")

	return channelID, nil
}
