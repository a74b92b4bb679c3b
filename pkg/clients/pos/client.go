package pos

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/SmekensRuben/RevenuePilot-sub001/internal/config"
	"github.com/SmekensRuben/RevenuePilot-sub001/internal/domain/models"
)

// Client exposes the point-of-sale API operations used by the application.
type Client interface {
	FetchSalesCounts(ctx context.Context, from, to time.Time) ([]models.SalesCount, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a POS API client using the provided configuration values.
func NewClient(cfg config.POSConfig) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(strings.TrimSuffix(cfg.BaseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	if cfg.APIKey != "" {
		restyClient.SetHeader("Authorization", fmt.Sprintf("Bearer %s", cfg.APIKey))
	}

	return &APIClient{httpClient: restyClient}
}

// salesCountsResponse mirrors the successful response of the counts endpoint.
type salesCountsResponse struct {
	Counts []models.SalesCount `json:"counts"`
}

// apiError represents a POS API error payload.
type apiError struct {
	Error struct {
		Message string `json:"message"`
		Code    int    `json:"code"`
	} `json:"error"`
}

// FetchSalesCounts returns units sold per product within [from, to].
func (c *APIClient) FetchSalesCounts(ctx context.Context, from, to time.Time) ([]models.SalesCount, error) {
	result := new(salesCountsResponse)
	apiErr := new(apiError)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("from", from.Format("2006-01-02")).
		SetQueryParam("to", to.Format("2006-01-02")).
		SetResult(result).
		SetError(apiErr).
		Get("/sales/counts")
	if err != nil {
		return nil, fmt.Errorf("fetch pos sales counts: %w", err)
	}

	if resp.IsError() {
		if apiErr.Error.Message != "" {
			return nil, fmt.Errorf("pos api error %d: %s", resp.StatusCode(), apiErr.Error.Message)
		}
		return nil, fmt.Errorf("pos api error %d", resp.StatusCode())
	}

	return result.Counts, nil
}
