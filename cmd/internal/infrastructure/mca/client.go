package mca

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"compliancedesk/cmd/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("not found")
)

// Client fetches company master data from an MCA (Ministry of Corporate
// Affairs) data provider. The base URL is provider-specific and comes
// from configuration.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient() *Client {
	base := os.Getenv("MCA_API_BASE_URL")
	if base == "" {
		base = "https://www.mca.gov.in/mcafoportal/companyLLPMasterData.do?cin="
	}
	return &Client{
		baseURL:    base,
		httpClient: &http.Client{},
	}
}

func (c *Client) GetByCIN(ctx context.Context, cin string) (*entity.Company, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+cin, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("mca lookup failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var company companyResponse
	err = json.Unmarshal(body, &company)
	if err != nil {
		return nil, err
	}
	return company.ToDomain(), nil
}
