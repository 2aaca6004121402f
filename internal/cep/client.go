package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrNotFound covers both a missing code and a directory that answered with
// its "erro" marker; callers treat the two identically.
var ErrNotFound = errors.New("cep not found")

// Address is the subset of the directory response the order form consumes.
type Address struct {
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
}

// Client queries a ViaCEP-compatible endpoint.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// NewClient points at the given base URL, e.g. https://viacep.com.br.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
	}
}

type lookupResponse struct {
	Address
	Erro json.RawMessage `json:"erro"`
}

// Lookup resolves a complete, normalized CEP. Transport failures and
// not-found both come back as errors; the caller clears the dependent
// address fields either way.
func (c *Client) Lookup(ctx context.Context, digits string) (Address, error) {
	if !Complete(digits) {
		return Address{}, fmt.Errorf("cep %q is incomplete", digits)
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.BaseURL, digits)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Address{}, err
	}

	res, err := c.HTTP.Do(req)
	if err != nil {
		return Address{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return Address{}, fmt.Errorf("cep lookup returned status %d", res.StatusCode)
	}

	var payload lookupResponse
	if err := json.NewDecoder(res.Body).Decode(&payload); err != nil {
		return Address{}, err
	}
	// ViaCEP signals an unknown code with {"erro": true} (older deployments
	// send the string "true"); any value at all means not found.
	if len(payload.Erro) > 0 && string(payload.Erro) != "false" && string(payload.Erro) != `"false"` {
		return Address{}, ErrNotFound
	}

	return payload.Address, nil
}
