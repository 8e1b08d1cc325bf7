// Package brasilapi implementa la consulta de CNPJ contra BrasilAPI.
package brasilapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hspsystem/gestor-api/internal/application/ports"
	"github.com/hspsystem/gestor-api/internal/domain"
)

var _ ports.CompanyRegistry = (*Client)(nil)

// Client cliente HTTP de BrasilAPI.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient construye el cliente. baseURL suele ser https://brasilapi.com.br.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Lookup consulta GET /api/cnpj/v1/{cnpj}. Un 404 del registro se traduce a
// domain.ErrNotFound; el caller ya validó formato y dígitos verificadores.
func (c *Client) Lookup(ctx context.Context, cnpj string) (*ports.CompanyRecord, error) {
	url := fmt.Sprintf("%s/api/cnpj/v1/%s", c.baseURL, cnpj)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("brasilapi: crear request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("brasilapi: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: CNPJ %s no registrado", domain.ErrNotFound, cnpj)
	default:
		return nil, fmt.Errorf("brasilapi: HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return nil, fmt.Errorf("brasilapi: leer respuesta: %w", err)
	}

	var record ports.CompanyRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return nil, fmt.Errorf("brasilapi: deserializar respuesta: %w", err)
	}
	return &record, nil
}
