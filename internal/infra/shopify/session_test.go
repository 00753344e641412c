package shopify

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipway/config"
)

func newTestVerifier(t *testing.T) *sessionVerifier {
	t.Helper()

	v, err := NewSessionVerifier(&config.Config{
		Shopify: &config.ShopifyConfig{APIKey: "test-key", APISecret: "test-secret"},
	})
	require.NoError(t, err)

	return v.(*sessionVerifier)
}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}

func TestSessionVerifier_VerifyShop(t *testing.T) {
	v := newTestVerifier(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"dest": "https://demo-store.myshopify.com",
		"aud":  "test-key",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})

	shop, err := v.VerifyShop(token)

	require.NoError(t, err)
	assert.Equal(t, "demo-store.myshopify.com", shop)
}

func TestSessionVerifier_RejectsWrongSecret(t *testing.T) {
	v := newTestVerifier(t)

	token := signToken(t, "other-secret", jwt.MapClaims{
		"dest": "https://demo-store.myshopify.com",
		"aud":  "test-key",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})

	_, err := v.VerifyShop(token)

	assert.Error(t, err)
}

func TestSessionVerifier_RejectsExpired(t *testing.T) {
	v := newTestVerifier(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"dest": "https://demo-store.myshopify.com",
		"aud":  "test-key",
		"exp":  time.Now().Add(-time.Minute).Unix(),
	})

	_, err := v.VerifyShop(token)

	assert.Error(t, err)
}

func TestSessionVerifier_RejectsWrongAudience(t *testing.T) {
	v := newTestVerifier(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"dest": "https://demo-store.myshopify.com",
		"aud":  "someone-else",
		"exp":  time.Now().Add(time.Minute).Unix(),
	})

	_, err := v.VerifyShop(token)

	assert.Error(t, err)
}

func TestSessionVerifier_RejectsMissingDest(t *testing.T) {
	v := newTestVerifier(t)

	token := signToken(t, "test-secret", jwt.MapClaims{
		"aud": "test-key",
		"exp": time.Now().Add(time.Minute).Unix(),
	})

	_, err := v.VerifyShop(token)

	assert.Error(t, err)
}
