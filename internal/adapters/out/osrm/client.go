// Package osrm implements the distance estimator port against an OSRM
// routing server.
package osrm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"transport/internal/core/domain/model/kernel"
	"transport/internal/pkg/errs"
)

// serviceName identifies this collaborator in upstream failure errors.
const serviceName = "routing-api"

// Client estimates driving distance between two coordinates using OSRM's
// route service.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a routing client. The timeout bounds every distance
// lookup; a request that exceeds it fails as an upstream failure.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// routeResponse is the wire shape of the route endpoint.
type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
	} `json:"routes"`
}

// EstimateDistance returns the driving distance in meters from start to end.
// "No route between the points" is an upstream failure: a transport order
// between unroutable coordinates cannot be priced.
func (c *Client) EstimateDistance(
	ctx context.Context, start, end kernel.GeoPoint,
) (float64, error) {
	// OSRM coordinates go longitude first.
	endpoint := fmt.Sprintf("%s/route/v1/driving/%s,%s;%s,%s?overview=false&steps=false",
		c.baseURL,
		formatCoord(start.Longitude()), formatCoord(start.Latitude()),
		formatCoord(end.Longitude()), formatCoord(end.Latitude()))

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

	var result routeResponse
	if err = json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, errs.NewUpstreamFailureError(serviceName, err)
	}

	if result.Code != "Ok" || len(result.Routes) == 0 {
		return 0, errs.NewUpstreamFailureError(serviceName,
			fmt.Errorf("no route between %s and %s", start, end))
	}

	return result.Routes[0].Distance, nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
