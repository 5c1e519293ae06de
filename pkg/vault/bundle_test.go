package vault

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBundle() Bundle {
	return Bundle{
		Nonce:      bytes.Repeat([]byte{0xaa}, NonceSize),
		Ciphertext: []byte{1, 2, 3, 4, 5, 6},
	}
}

func TestBundle_MarshalBinary(t *testing.T) {
	raw, err := testBundle().MarshalBinary()
	require.NoError(t, err)

	expected := []byte{bundleFormat, NonceSize, 0, 0, 0, 0, 0, 0, 0, 6}
	expected = append(expected, bytes.Repeat([]byte{0xaa}, NonceSize)...)
	expected = append(expected, 1, 2, 3, 4, 5, 6)
	assert.Equal(t, expected, raw)

	var decoded Bundle
	require.NoError(t, decoded.UnmarshalBinary(raw))
	assert.Equal(t, testBundle(), decoded)
}

func TestBundle_MarshalBinary_Invalid(t *testing.T) {
	_, err := Bundle{Nonce: []byte{1}, Ciphertext: []byte{1}}.MarshalBinary()
	assert.ErrorIs(t, err, ErrInvalidBundle)
	_, err = Bundle{Nonce: make([]byte, NonceSize)}.MarshalBinary()
	assert.ErrorIs(t, err, ErrInvalidBundle)
	assert.Empty(t, Bundle{}.String())
}

func TestBundle_UnmarshalBinary_Invalid(t *testing.T) {
	valid, err := testBundle().MarshalBinary()
	require.NoError(t, err)

	tests := map[string]func() []byte{
		"Empty": func() []byte { return nil },
		"Header only": func() []byte {
			return valid[:headerLen]
		},
		"Unknown format": func() []byte {
			data := bytes.Clone(valid)
			data[0] = 9
			return data
		},
		"Wrong nonce length": func() []byte {
			data := bytes.Clone(valid)
			data[1] = NonceSize + 1
			return data
		},
		"Truncated": func() []byte {
			return valid[:len(valid)-1]
		},
		"Trailing data": func() []byte {
			return append(bytes.Clone(valid), 0)
		},
	}
	for name, fn := range tests {
		t.Run(name, func(t *testing.T) {
			var b Bundle
			assert.ErrorIs(t, b.UnmarshalBinary(fn()), ErrInvalidBundle)
		})
	}
}

func TestParseBundle(t *testing.T) {
	text, err := testBundle().MarshalText()
	require.NoError(t, err)

	parsed, err := ParseBundle(" " + string(text) + "\n")
	require.NoError(t, err)
	assert.Equal(t, testBundle(), parsed)

	_, err = ParseBundle("not base64!")
	assert.ErrorIs(t, err, ErrInvalidBundle)
	_, err = ParseBundle(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, ErrInvalidBundle)
}
