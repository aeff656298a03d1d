package signer

// Signer signs published catalog files
type Signer interface {
	// SignDetached creates an armored detached signature (catalog.json.asc)
	SignDetached(data []byte) ([]byte, error)

	// GetPublicKey returns the armored public key matching the signatures
	GetPublicKey() ([]byte, error)
}
