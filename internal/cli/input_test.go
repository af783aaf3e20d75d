package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPin(t *testing.T, pin string) {
	t.Helper()
	orig := readPassword
	readPassword = func(fd int) ([]byte, error) { return []byte(pin), nil }
	t.Cleanup(func() { readPassword = orig })
}

func TestGetSimpleText(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("  Ada \n"))

	text, err := GetSimpleText(reader, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "Ada", text)
	assert.Contains(t, out.String(), "Name")
}

func TestGetSimpleText_EOFAfterPartialLine(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("partial"))

	text, err := GetSimpleText(reader, "Name", &out)
	require.NoError(t, err)
	assert.Equal(t, "partial", text)
}

func TestGetPin(t *testing.T) {
	stubPin(t, " 1234 ")
	var out bytes.Buffer

	pin, err := GetPin("PIN", &out)
	require.NoError(t, err)
	assert.Equal(t, "1234", pin)
	assert.Contains(t, out.String(), "PIN")
}

func TestGetInt_RepromptsUntilNumber(t *testing.T) {
	var out bytes.Buffer
	reader := bufio.NewReader(strings.NewReader("abc\n7\n"))

	n, err := GetInt(reader, "Avatar id", &out)
	require.NoError(t, err)
	assert.Equal(t, 7, n)
	assert.Contains(t, out.String(), "Please enter a number")
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Yes\n", want: true},
		{input: "n\n", want: false},
		{input: "whatever\n", want: false},
	}

	for _, tt := range tests {
		var out bytes.Buffer
		reader := bufio.NewReader(strings.NewReader(tt.input))
		got, err := GetYesNo(reader, "Child?", &out)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}
