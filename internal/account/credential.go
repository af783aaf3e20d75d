// Package account models the single per-device family account: the PIN
// credential guarding it, the profiles it contains, and the serialized
// record exchanged with the account store.
package account

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/tobim/famvault/internal/common"
)

const saltLength = 16

// PinCredential holds the one-way hashed PIN secret. All PIN comparisons
// funnel through Matches so the hashing strategy stays in one place.
type PinCredential struct {
	salt []byte
	hash []byte
}

// NewPinCredential derives a credential from a raw PIN with a fresh random
// salt. Returns common.ErrInvalidCredentialInput for an empty PIN.
func NewPinCredential(pin string) (*PinCredential, error) {
	if pin == "" {
		return nil, common.ErrInvalidCredentialInput
	}
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("error generating salt: %w", err)
	}
	return &PinCredential{salt: salt, hash: deriveHash(pin, salt)}, nil
}

func deriveHash(pin string, salt []byte) []byte {
	return argon2.IDKey([]byte(pin), salt, 1, 64*1024, 4, 32)
}

// Matches reports whether the candidate PIN equals the stored secret.
// Comparison is exact, no prefix matching, constant time over the hash.
func (c *PinCredential) Matches(candidate string) bool {
	if candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare(c.hash, deriveHash(candidate, c.salt)) == 1
}

// Update derives a replacement credential from newPin. The old secret is
// not retained; the new credential gets its own salt.
func (c *PinCredential) Update(newPin string) (*PinCredential, error) {
	return NewPinCredential(newPin)
}

// Encode renders the secret in its persisted form: base64(salt)$base64(hash).
func (c *PinCredential) Encode() string {
	return base64.RawStdEncoding.EncodeToString(c.salt) + "$" +
		base64.RawStdEncoding.EncodeToString(c.hash)
}

// DecodePinCredential parses the persisted form produced by Encode.
func DecodePinCredential(encoded string) (*PinCredential, error) {
	parts := strings.SplitN(encoded, "$", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("malformed pin secret: %w", common.ErrInvalidCredentialInput)
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[0])
	if err != nil {
		return nil, fmt.Errorf("malformed pin secret salt: %w", common.ErrInvalidCredentialInput)
	}
	hash, err := base64.RawStdEncoding.DecodeString(parts[1])
	if err != nil {
		return nil, fmt.Errorf("malformed pin secret hash: %w", common.ErrInvalidCredentialInput)
	}
	return &PinCredential{salt: salt, hash: hash}, nil
}

func (c *PinCredential) clone() *PinCredential {
	return &PinCredential{
		salt: append([]byte(nil), c.salt...),
		hash: append([]byte(nil), c.hash...),
	}
}
