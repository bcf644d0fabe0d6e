package portalsdk

import (
	"context"
	"net/http"
)

// HealthChecks reports the state of each critical dependency.
type HealthChecks struct {
	Database  string `json:"database"`
	Directory string `json:"directory"`
}

// HealthResponse is the body of the health probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// Livez checks that the service process is up.
func (c *SDKClient) Livez(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/livez", nil, &resp); err != nil {
		return HealthResponse{}, err
	}
	return resp, nil
}

// Readyz checks the service and its dependencies. A degraded service returns
// both the response body and an *APIError with status 503.
func (c *SDKClient) Readyz(ctx context.Context) (HealthResponse, error) {
	var resp HealthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/readyz", nil, &resp); err != nil {
		return HealthResponse{}, err
	}
	return resp, nil
}
