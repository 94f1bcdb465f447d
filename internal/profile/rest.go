package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// ErrBaseURLRequired is returned when the REST source has no base URL.
var ErrBaseURLRequired = errors.New("profile base URL is required")

// RESTSource fetches discount profiles from the account REST backend.
type RESTSource struct {
	baseURL string
	client  *http.Client
}

type profileResponse struct {
	BirthDate   string `json:"birth_date"` // YYYY-MM-DD, may be empty
	EmailDomain string `json:"email_domain"`
	PromoCode   string `json:"promo_code"`
}

// NewRESTSource creates a profile source backed by the account REST API.
func NewRESTSource(baseURL string) (*RESTSource, error) {
	if baseURL == "" {
		return nil, ErrBaseURLRequired
	}

	return &RESTSource{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Current fetches the discount profile for an owner. Missing or malformed
// profile fields degrade to "rule does not apply" rather than an error.
func (s *RESTSource) Current(ctx context.Context, ownerKey string) (*DiscountProfile, error) {
	if ownerKey == "" {
		return nil, nil
	}

	endpoint := fmt.Sprintf("%s/users/%s/discount-profile", s.baseURL, url.PathEscape(ownerKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create profile request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected profile response status: %d", resp.StatusCode)
	}

	var body profileResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}

	p := &DiscountProfile{
		EmailDomain: body.EmailDomain,
		PromoCode:   body.PromoCode,
	}
	if body.BirthDate != "" {
		if birth, err := time.Parse("2006-01-02", body.BirthDate); err == nil {
			p.BirthDate = &birth
		}
	}

	return p, nil
}
