package mpw

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/saylorsolutions/gompw/pkg/secret"
	"golang.org/x/crypto/scrypt"
)

const (
	// KeySize is the length of a MasterKey in bytes.
	KeySize = 64
	// SeedSize is the length of a site seed in bytes.
	SeedSize = sha256.Size
	// DefaultCounter is the counter used when a site doesn't specify one.
	DefaultCounter uint32 = 1
)

var (
	ErrUnsupportedVersion = errors.New("unsupported algorithm version")
	ErrUnsupportedClass   = errors.New("unsupported password class")
	ErrUnsupportedPurpose = errors.New("unsupported purpose")
	ErrSeedTooShort       = errors.New("seed too short for template")
	ErrInvalidTemplate    = errors.New("invalid template")
	ErrNameTooLong        = errors.New("name too long")
	ErrInvalidKey         = errors.New("invalid master key")
)

// MasterKey is the stretched secret of one user for one Version.
// It's safe for concurrent use until Wipe is called.
type MasterKey struct {
	version Version
	key     secret.Buffer
}

// NewMasterKey stretches masterPassword into a MasterKey using scrypt, salted with the full name.
// This is deliberately expensive, and takes a noticeable fraction of a second.
// masterPassword is wiped before NewMasterKey returns, whether it succeeds or not.
func NewMasterKey(fullName, masterPassword []byte, v Version) (*MasterKey, error) {
	defer secret.Wipe(masterPassword)
	p, err := v.params()
	if err != nil {
		return nil, err
	}
	salt, err := masterKeySalt(p, fullName)
	if err != nil {
		return nil, err
	}
	key, err := scrypt.Key(masterPassword, salt, p.scryptN, p.scryptR, p.scryptP, p.keyLen)
	if err != nil {
		return nil, fmt.Errorf("failed to stretch master password: %w", err)
	}
	return &MasterKey{version: v, key: key}, nil
}

func masterKeySalt(p *versionParams, fullName []byte) ([]byte, error) {
	n, err := p.fullNameLength.count(fullName)
	if err != nil {
		return nil, fmt.Errorf("full name: %w", err)
	}
	scope := p.scopes[Authentication]
	salt := make([]byte, 0, len(scope)+4+len(fullName))
	salt = append(salt, scope...)
	salt = binary.BigEndian.AppendUint32(salt, n)
	salt = append(salt, fullName...)
	return salt, nil
}

// Version returns the Version the key was stretched with.
func (k *MasterKey) Version() Version {
	return k.version
}

// Bytes returns the key material itself.
// The returned slice is owned by the MasterKey and must not be modified.
func (k *MasterKey) Bytes() []byte {
	return k.key
}

// ID returns a hex fingerprint of the key, which is safe to log and compare.
func (k *MasterKey) ID() string {
	sum := sha256.Sum256(k.key)
	return hex.EncodeToString(sum[:])
}

// Wipe zeroes the key material.
// Any use of the MasterKey afterward fails with ErrInvalidKey.
func (k *MasterKey) Wipe() {
	if k == nil {
		return
	}
	k.key.Wipe()
	k.key = nil
}

func (k *MasterKey) validate() error {
	if k == nil || len(k.key) != KeySize {
		return ErrInvalidKey
	}
	return nil
}

// SiteSeed derives the seed for site in the scope of purpose.
// The site's Class is ignored.
func (k *MasterKey) SiteSeed(site Site, purpose Purpose) (secret.Buffer, error) {
	if err := k.validate(); err != nil {
		return nil, err
	}
	return DeriveSeed(k.key, site.Name, site.counter(), k.version, purpose, site.Context)
}

// Password derives and renders the password for site.
func (k *MasterKey) Password(site Site) (secret.Buffer, error) {
	seed, err := k.SiteSeed(site, site.Purpose)
	if err != nil {
		return nil, err
	}
	defer seed.Wipe()
	return Render(seed, site.class(), k.version)
}
