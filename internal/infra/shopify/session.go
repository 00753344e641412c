package shopify

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"shipway/config"
	domainErrs "shipway/internal/domain/errors"
	"shipway/internal/domain/service"
)

// sessionVerifier validates embedded-app session tokens. The host platform
// signs them with the app's API secret using HS256; the dest claim names the
// shop the admin user is working in.
type sessionVerifier struct {
	apiKey    string
	apiSecret string
}

// NewSessionVerifier is the constructor for sessionVerifier.
func NewSessionVerifier(cfg *config.Config) (service.SessionVerifier, error) {
	if cfg.Shopify == nil || cfg.Shopify.APISecret == "" {
		return nil, errors.New("app api secret must be provided")
	}

	return &sessionVerifier{
		apiKey:    cfg.Shopify.APIKey,
		apiSecret: cfg.Shopify.APISecret,
	}, nil
}

func (s *sessionVerifier) VerifyShop(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.apiSecret), nil
	})
	if err != nil || !token.Valid {
		return "", domainErrs.ErrSessionTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domainErrs.ErrSessionTokenInvalid
	}

	if s.apiKey != "" {
		aud, err := claims.GetAudience()
		if err != nil || !containsAudience(aud, s.apiKey) {
			return "", domainErrs.ErrSessionTokenInvalid
		}
	}

	dest, _ := claims["dest"].(string)
	shop := strings.TrimPrefix(dest, "https://")
	if shop == "" {
		return "", domainErrs.ErrSessionTokenInvalid
	}

	return shop, nil
}

func containsAudience(aud jwt.ClaimStrings, apiKey string) bool {
	for _, a := range aud {
		if a == apiKey {
			return true
		}
	}

	return false
}
