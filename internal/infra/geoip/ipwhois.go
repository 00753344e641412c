package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"shipway/internal/domain/service"

	"github.com/pkg/errors"
)

// ipwhoisProvider queries https://ipwho.is, the secondary geolocation provider.
type ipwhoisProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPWhoisProvider creates the ipwho.is geolocation provider.
func NewIPWhoisProvider() service.GeolocationProvider {
	return &ipwhoisProvider{
		baseURL:    "https://ipwho.is",
		httpClient: &http.Client{},
	}
}

func (p *ipwhoisProvider) Name() string {
	return "ipwho.is"
}

func (p *ipwhoisProvider) Lookup(ctx context.Context, ip string) (string, error) {
	url := fmt.Sprintf("%s/%s", p.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ipwhois request failed")
	}
	defer resp.Body.Close()

	var body struct {
		Success bool   `json:"success"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "decode ipwhois response")
	}

	if !body.Success || body.Country == "" {
		return "", errors.New("ipwhois lookup unsuccessful")
	}

	return body.Country, nil
}
