// Package fixer implements the currency converter port against a fixer.io
// style exchange rate API.
package fixer

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// serviceName identifies this collaborator in upstream failure errors.
const serviceName = "currency-api"

// Client converts monetary amounts to EUR using the exchange rate API.
// Rates are quoted against EUR, so a stored amount in currency X becomes
// amount / rate(X). Conversion from EUR itself never leaves the process.
type Client struct {
	httpClient *http.Client
	baseURL    string
	accessKey  string
}

// NewClient creates a converter client. The timeout bounds every rate
// lookup; a request that exceeds it fails as an upstream failure.
func NewClient(baseURL, accessKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		accessKey:  accessKey,
	}
}

// ratesResponse is the wire shape of the latest-rates endpoint.
type ratesResponse struct {
	Success bool               `json:"success"`
	Rates   map[string]float64 `json:"rates"`
}

// ConvertToEUR converts amount from the given currency into EUR.
func (c *Client) ConvertToEUR(
	ctx context.Context, amount float64, code kernel.CurrencyCode,
) (float64, error) {
	if code == kernel.CurrencyEUR {
		return amount, nil
	}

	query := url.Values{}
	query.Set("access_key", c.accessKey)
	query.Set("base", kernel.CurrencyEUR.String())
	query.Set("symbols", code.String())

	endpoint := c.baseURL + "/latest?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, errs.NewUpstreamFailureError(serviceName, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, errs.NewUpstreamFailureError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errs.NewUpstreamFailureError(serviceName,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var rates ratesResponse
	if err = json.NewDecoder(resp.Body).Decode(&rates); err != nil {
		return 0, errs.NewUpstreamFailureError(serviceName, err)
	}

	if !rates.Success {
		return 0, errs.NewUpstreamFailureError(serviceName,
			fmt.Errorf("rate lookup rejected for %s", code))
	}

	rate, ok := rates.Rates[code.String()]
	if !ok || rate <= 0 {
		return 0, errs.NewUpstreamFailureError(serviceName,
			fmt.Errorf("no usable rate for %s", code))
	}

	return amount / rate, nil
}
