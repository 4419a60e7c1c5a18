// Package identity talks to the hosted authentication provider. Creating an
// identity for a fresh signup is strictly best-effort: the profile write is
// the primary operation and must never fail because this call did.
package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Ref points at a user inside the auth provider.
type Ref struct {
	UserID string `json:"id"`
}

type Provider interface {
	// EnsureUser creates (or finds) an auth user for the email and returns
	// its reference.
	EnsureUser(ctx context.Context, email, fullName string) (*Ref, error)
}

// HTTPProvider calls the provider's admin API with a service key.
type HTTPProvider struct {
	baseURL    string
	serviceKey string
	client     *http.Client
}

func NewHTTPProvider(baseURL, serviceKey string) *HTTPProvider {
	return &HTTPProvider{
		baseURL:    baseURL,
		serviceKey: serviceKey,
		client:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (p *HTTPProvider) EnsureUser(ctx context.Context, email, fullName string) (*Ref, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"email":         email,
		"email_confirm": true,
		"user_metadata": map[string]string{"full_name": fullName},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/admin/users", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.serviceKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("auth provider returned %d: %s", resp.StatusCode, string(body))
	}

	var ref Ref
	if err := json.Unmarshal(body, &ref); err != nil {
		return nil, err
	}
	if ref.UserID == "" {
		return nil, fmt.Errorf("auth provider response missing user id")
	}
	return &ref, nil
}

// Noop is used when no admin credentials are configured. Signups then simply
// stay unlinked.
type Noop struct{}

func (Noop) EnsureUser(ctx context.Context, email, fullName string) (*Ref, error) {
	return nil, fmt.Errorf("identity provider not configured")
}
