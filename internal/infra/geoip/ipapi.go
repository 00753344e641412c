// Package geoip resolves shopper countries from IP addresses using external
// geolocation providers with a TTL cache and a configured fallback country.
package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"shipway/internal/domain/service"

	"github.com/pkg/errors"
)

// ipapiProvider queries https://ipapi.co, the primary geolocation provider.
type ipapiProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewIPAPIProvider creates the ipapi.co geolocation provider.
func NewIPAPIProvider() service.GeolocationProvider {
	return &ipapiProvider{
		baseURL:    "https://ipapi.co",
		httpClient: &http.Client{},
	}
}

func (p *ipapiProvider) Name() string {
	return "ipapi.co"
}

func (p *ipapiProvider) Lookup(ctx context.Context, ip string) (string, error) {
	url := fmt.Sprintf("%s/%s/json/", p.baseURL, ip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", errors.WithStack(err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "ipapi request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("ipapi returned status %d", resp.StatusCode)
	}

	var body struct {
		CountryName string `json:"country_name"`
		Country     string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", errors.Wrap(err, "decode ipapi response")
	}

	country := body.CountryName
	if country == "" {
		country = body.Country
	}
	if country == "" {
		return "", errors.New("ipapi response carried no country")
	}

	return country, nil
}
