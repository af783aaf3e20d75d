package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPinPrompt_Validated(t *testing.T) {
	stubPin(t, "1234")

	var out bytes.Buffer
	prompt := NewPinPrompt(func(pin string) bool { return pin == "1234" }, &out)

	var gotOK, validatedCalled, cancelledCalled bool
	err := prompt.Present(
		func(ok bool) { validatedCalled = true; gotOK = ok },
		func() { cancelledCalled = true },
	)
	require.NoError(t, err)
	assert.True(t, validatedCalled)
	assert.True(t, gotOK)
	assert.False(t, cancelledCalled)
}

func TestPinPrompt_WrongPin(t *testing.T) {
	stubPin(t, "0000")

	var out bytes.Buffer
	prompt := NewPinPrompt(func(pin string) bool { return pin == "1234" }, &out)

	var gotOK bool
	err := prompt.Present(func(ok bool) { gotOK = ok }, nil)
	require.NoError(t, err)
	assert.False(t, gotOK)
}

func TestPinPrompt_Cancelled(t *testing.T) {
	stubPin(t, "")

	var out bytes.Buffer
	verifierCalled := false
	prompt := NewPinPrompt(func(pin string) bool { verifierCalled = true; return false }, &out)

	var validatedCalled, cancelledCalled bool
	err := prompt.Present(
		func(ok bool) { validatedCalled = true },
		func() { cancelledCalled = true },
	)
	require.NoError(t, err)
	assert.True(t, cancelledCalled)
	assert.False(t, validatedCalled)
	assert.False(t, verifierCalled, "empty entry never reaches the verifier")
}
