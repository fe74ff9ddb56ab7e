package models

import (
	"crypto/subtle"
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Credential is the device token resolved into a comparable digest. The raw
// token never leaves the request that carried it; only the digest is stored.
type Credential struct {
	digest []byte
}

func NewCredential(deviceToken string) Credential {
	sum := blake2b.Sum256([]byte(deviceToken))
	return Credential{digest: sum[:]}
}

// Digest returns the hex form persisted in the user document.
func (c Credential) Digest() string {
	return hex.EncodeToString(c.digest)
}

// Matches compares the credential against a stored digest in constant time.
func (c Credential) Matches(storedDigest string) bool {
	stored, err := hex.DecodeString(storedDigest)
	if err != nil {
		return false
	}
	return subtle.ConstantTimeCompare(c.digest, stored) == 1
}
