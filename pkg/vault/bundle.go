package vault

import (
	"bytes"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
)

const (
	bundleFormat uint8 = 1
	headerLen          = 1 + 1 + 8
)

var (
	ErrInvalidBundle = errors.New("invalid encrypted bundle")
)

// Bundle is the nonce and ciphertext of one encrypted secret.
type Bundle struct {
	Nonce      []byte
	Ciphertext []byte
}

type bundleHeader struct {
	format        uint8
	nonceLen      uint8
	ciphertextLen uint64
}

func (h *bundleHeader) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Byte(&h.format),
		bin.Byte(&h.nonceLen),
		bin.Int(&h.ciphertextLen),
	)
}

// MarshalBinary encodes the Bundle as a big endian header followed by the nonce and ciphertext.
func (b Bundle) MarshalBinary() ([]byte, error) {
	if len(b.Nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidBundle, NonceSize, len(b.Nonce))
	}
	if len(b.Ciphertext) == 0 {
		return nil, fmt.Errorf("%w: empty ciphertext", ErrInvalidBundle)
	}
	var buf bytes.Buffer
	h := bundleHeader{
		format:        bundleFormat,
		nonceLen:      uint8(len(b.Nonce)),
		ciphertextLen: uint64(len(b.Ciphertext)),
	}
	if err := h.mapper().Write(&buf, binary.BigEndian); err != nil {
		return nil, err
	}
	buf.Write(b.Nonce)
	buf.Write(b.Ciphertext)
	return buf.Bytes(), nil
}

// UnmarshalBinary decodes data produced by MarshalBinary.
func (b *Bundle) UnmarshalBinary(data []byte) error {
	if len(data) <= headerLen {
		return fmt.Errorf("%w: too short", ErrInvalidBundle)
	}
	var h bundleHeader
	r := bytes.NewReader(data)
	if err := h.mapper().Read(r, binary.BigEndian); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	if h.format != bundleFormat {
		return fmt.Errorf("%w: unknown format %d", ErrInvalidBundle, h.format)
	}
	if int(h.nonceLen) != NonceSize {
		return fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidBundle, NonceSize, h.nonceLen)
	}
	if h.ciphertextLen == 0 || uint64(r.Len()) != uint64(h.nonceLen)+h.ciphertextLen {
		return fmt.Errorf("%w: length mismatch", ErrInvalidBundle)
	}
	nonce := make([]byte, h.nonceLen)
	ciphertext := make([]byte, h.ciphertextLen)
	if _, err := io.ReadFull(r, nonce); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	if _, err := io.ReadFull(r, ciphertext); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	b.Nonce = nonce
	b.Ciphertext = ciphertext
	return nil
}

// MarshalText encodes the Bundle as standard base64 of its binary form.
func (b Bundle) MarshalText() ([]byte, error) {
	raw, err := b.MarshalBinary()
	if err != nil {
		return nil, err
	}
	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out, nil
}

// UnmarshalText decodes text produced by MarshalText.
func (b *Bundle) UnmarshalText(text []byte) error {
	raw := make([]byte, base64.StdEncoding.DecodedLen(len(text)))
	n, err := base64.StdEncoding.Decode(raw, bytes.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBundle, err)
	}
	return b.UnmarshalBinary(raw[:n])
}

// String returns the text form of the Bundle, or an empty string if it isn't valid.
func (b Bundle) String() string {
	text, err := b.MarshalText()
	if err != nil {
		return ""
	}
	return string(text)
}

// ParseBundle decodes the text form of a Bundle.
func ParseBundle(s string) (Bundle, error) {
	var b Bundle
	if err := b.UnmarshalText([]byte(s)); err != nil {
		return Bundle{}, err
	}
	return b, nil
}
