package httpapi

import (
	"github.com/aretw0/introspection"
	"golang.org/x/time/rate"
)

// ClientState exposes internal state for observability.
type ClientState struct {
	BaseURL       string `json:"base_url"`
	RateLimited   bool   `json:"rate_limited"`
	HasTokens     bool   `json:"has_token_source"`
	Has401Handler bool   `json:"has_unauthorized_hook"`
}

// State implements introspection.Introspectable.
func (c *Client) State() any {
	return ClientState{
		BaseURL:       c.baseURL,
		RateLimited:   c.limiter.Limit() != rate.Inf,
		HasTokens:     c.tokens != nil,
		Has401Handler: c.onUnauthorized != nil,
	}
}

// ComponentType implements introspection.Component.
func (c *Client) ComponentType() string {
	return "httpapi"
}

var _ introspection.Introspectable = (*Client)(nil)
var _ introspection.Component = (*Client)(nil)
