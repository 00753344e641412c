package service

// SessionVerifier authenticates embedded-app session tokens issued by the
// host platform and extracts the shop domain they were minted for.
type SessionVerifier interface {
	// VerifyShop validates the token signature and expiry and returns the
	// shop domain from its destination claim.
	VerifyShop(token string) (string, error)
}
