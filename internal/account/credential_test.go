package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tobim/famvault/internal/common"
)

func TestNewPinCredential(t *testing.T) {
	cred, err := NewPinCredential("1234")
	require.NoError(t, err)

	assert.True(t, cred.Matches("1234"))
	assert.False(t, cred.Matches("0000"))
	assert.False(t, cred.Matches("123"), "no prefix matching")
	assert.False(t, cred.Matches("12345"))
	assert.False(t, cred.Matches(""))
}

func TestNewPinCredential_Empty(t *testing.T) {
	_, err := NewPinCredential("")
	require.ErrorIs(t, err, common.ErrInvalidCredentialInput)
}

func TestPinCredential_Update(t *testing.T) {
	cred, err := NewPinCredential("1234")
	require.NoError(t, err)

	updated, err := cred.Update("5555")
	require.NoError(t, err)

	assert.True(t, updated.Matches("5555"))
	assert.False(t, updated.Matches("1234"), "old secret is not retained")

	_, err = cred.Update("")
	require.ErrorIs(t, err, common.ErrInvalidCredentialInput)
}

func TestPinCredential_EncodeDecode(t *testing.T) {
	cred, err := NewPinCredential("1234")
	require.NoError(t, err)

	decoded, err := DecodePinCredential(cred.Encode())
	require.NoError(t, err)

	assert.True(t, decoded.Matches("1234"))
	assert.False(t, decoded.Matches("4321"))
}

func TestDecodePinCredential_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "no separator", encoded: "deadbeef"},
		{name: "bad salt", encoded: "!!!$AAAA"},
		{name: "bad hash", encoded: "AAAA$!!!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePinCredential(tt.encoded)
			require.ErrorIs(t, err, common.ErrInvalidCredentialInput)
		})
	}
}

func TestPinCredential_SaltsDiffer(t *testing.T) {
	a, err := NewPinCredential("1234")
	require.NoError(t, err)
	b, err := NewPinCredential("1234")
	require.NoError(t, err)

	assert.NotEqual(t, a.Encode(), b.Encode(), "each credential gets its own salt")
}
