package vault

import (
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"

	"github.com/saylorsolutions/gompw/pkg/mpw"
	"github.com/saylorsolutions/gompw/pkg/secret"
	"golang.org/x/crypto/chacha20poly1305"
)

const (
	// NonceSize is the length of the nonce generated for every encryption.
	NonceSize = chacha20poly1305.NonceSize
	// PadLen is the minimum length secrets are padded to before encryption.
	// It matches the longest generated password, and must stay below 256.
	PadLen = 20
)

var (
	ErrAuthenticationFailed = errors.New("incorrect master password or corrupted entry")
	ErrEmptySecret          = errors.New("cannot store an empty secret")
	ErrInvalidPadding       = errors.New("invalid secret padding")
)

func newAEAD(key *mpw.MasterKey, siteName string) (cipher.AEAD, error) {
	storageKey, err := key.SiteSeed(mpw.Site{Name: siteName}, mpw.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to derive storage key: %w", err)
	}
	defer storageKey.Wipe()
	return chacha20poly1305.New(storageKey)
}

// Encrypt seals plaintext under the storage key for siteName.
// A new random nonce is generated for every call.
// plaintext is not modified.
func Encrypt(key *mpw.MasterKey, siteName string, plaintext []byte) (ciphertext, nonce []byte, err error) {
	if len(plaintext) == 0 {
		return nil, nil, ErrEmptySecret
	}
	aead, err := newAEAD(key, siteName)
	if err != nil {
		return nil, nil, err
	}

	padded := pad(plaintext)
	defer padded.Wipe()

	nonce = make([]byte, NonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, nil, fmt.Errorf("failed to generate nonce: %w", err)
	}
	ciphertext = aead.Seal(nil, nonce, padded, []byte(siteName))
	return ciphertext, nonce, nil
}

// Decrypt opens a ciphertext sealed by Encrypt for the same site.
// ErrAuthenticationFailed is returned if the tag doesn't verify, in which case nothing is decrypted.
func Decrypt(key *mpw.MasterKey, siteName string, ciphertext, nonce []byte) (secret.Buffer, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce must be %d bytes, got %d", ErrInvalidBundle, NonceSize, len(nonce))
	}
	aead, err := newAEAD(key, siteName)
	if err != nil {
		return nil, err
	}
	opened, err := aead.Open(nil, nonce, ciphertext, []byte(siteName))
	if err != nil {
		return nil, ErrAuthenticationFailed
	}
	padded := secret.Buffer(opened)
	defer padded.Wipe()

	plaintext, err := unpad(padded)
	if err != nil {
		return nil, err
	}
	return secret.Clone(plaintext), nil
}

// Seal encrypts plaintext into a Bundle.
func Seal(key *mpw.MasterKey, siteName string, plaintext []byte) (Bundle, error) {
	ciphertext, nonce, err := Encrypt(key, siteName, plaintext)
	if err != nil {
		return Bundle{}, err
	}
	return Bundle{Nonce: nonce, Ciphertext: ciphertext}, nil
}

// Open decrypts a Bundle produced by Seal.
func Open(key *mpw.MasterKey, siteName string, bundle Bundle) (secret.Buffer, error) {
	return Decrypt(key, siteName, bundle.Ciphertext, bundle.Nonce)
}

func paddedLen(n int) int {
	return max(n+1, PadLen)
}

// pad copies data into a buffer of paddedLen bytes.
// Short data is filled with the byte value of the pad length, and data of PadLen or more gets a single zero byte.
func pad(data []byte) secret.Buffer {
	buf := secret.New(paddedLen(len(data)))
	copy(buf, data)
	var padByte byte
	if len(data) < PadLen {
		padByte = byte(PadLen - len(data))
	}
	for i := len(data); i < len(buf); i++ {
		buf[i] = padByte
	}
	return buf
}

// unpad returns the data in buf without its padding.
// The returned slice shares memory with buf.
func unpad(buf []byte) ([]byte, error) {
	if len(buf) < PadLen {
		return nil, fmt.Errorf("%w: %d bytes is shorter than %d", ErrInvalidPadding, len(buf), PadLen)
	}
	padByte := buf[len(buf)-1]
	size := int(padByte)
	if padByte == 0 {
		size = 1
	}
	if size > PadLen {
		return nil, fmt.Errorf("%w: pad length %d", ErrInvalidPadding, size)
	}
	for _, b := range buf[len(buf)-size:] {
		if b != padByte {
			return nil, ErrInvalidPadding
		}
	}
	return buf[:len(buf)-size], nil
}
