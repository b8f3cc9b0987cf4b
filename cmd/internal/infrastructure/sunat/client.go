package sunat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"reclamalibro/cmd/internal/domain/entity"
)

var (
	ErrNotFound = errors.New("not found")
)

// Client queries the public SUNAT taxpayer registry through the
// apis.net.pe gateway. The optional SUNAT_API_TOKEN raises the rate
// limit for registered consumers.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

func NewClient() *Client {
	return &Client{
		baseURL:    "https://api.apis.net.pe/v1/ruc",
		token:      os.Getenv("SUNAT_API_TOKEN"),
		httpClient: &http.Client{},
	}
}

func (c *Client) GetByRUC(ctx context.Context, ruc string) (*entity.FichaRUC, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?numero="+ruc, nil)
	if err != nil {
		return nil, err
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
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
		return nil, fmt.Errorf("sunat lookup failed with status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var ficha fichaResponse
	err = json.Unmarshal(body, &ficha)
	if err != nil {
		return nil, err
	}
	return ficha.ToDomain(), nil
}
