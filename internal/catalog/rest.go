package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// RESTSource fetches stock facts from the catalog REST backend.
type RESTSource struct {
	baseURL string
	client  *http.Client
}

type stockResponse struct {
	ProductCode    string `json:"product_code"`
	AvailableStock int    `json:"available_stock"`
	IsActive       bool   `json:"is_active"`
}

// NewRESTSource creates a stock source backed by the catalog REST API.
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

// Lookup fetches the stock fact for one product code.
func (s *RESTSource) Lookup(ctx context.Context, productCode string) (*StockFact, error) {
	endpoint := fmt.Sprintf("%s/products/%s/stock", s.baseURL, url.PathEscape(productCode))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create stock request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, ErrSourceUnavailable
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusNotFound:
		return nil, ErrProductNotFound
	default:
		return nil, ErrUnexpectedStatus(resp.StatusCode)
	}

	var body stockResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode stock response: %w", err)
	}

	return &StockFact{
		ProductCode:    body.ProductCode,
		AvailableStock: body.AvailableStock,
		IsActive:       body.IsActive,
	}, nil
}
