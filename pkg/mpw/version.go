package mpw

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Version selects the parameters and tables of the algorithm.
type Version uint8

const (
	V1 Version = iota + 1
	V2
	V3

	// Latest is the version used when none is specified.
	Latest = V3
)

const (
	scryptN   = 32768
	scryptR   = 8
	scryptP   = 2
	scopeBase = "com.lyndir.masterpassword"
)

// lengthRule determines how a string's length is encoded into a salt.
type lengthRule uint8

const (
	byteLength lengthRule = iota
	runeLength
)

func (r lengthRule) count(data []byte) (uint32, error) {
	n := len(data)
	if r == runeLength {
		n = utf8.RuneCount(data)
	}
	if uint64(n) > math.MaxUint32 {
		return 0, ErrNameTooLong
	}
	return uint32(n), nil
}

type versionParams struct {
	fullNameLength lengthRule
	siteNameLength lengthRule
	scryptN        int
	scryptR        int
	scryptP        int
	keyLen         int
	scopes         map[Purpose]string
	templates      map[Class][]string
	identicon      *identiconTable
}

var (
	scopes = map[Purpose]string{
		Authentication: scopeBase,
		Identification: scopeBase + ".login",
		Recovery:       scopeBase + ".answer",
		Storage:        scopeBase + ".storage",
	}

	versions = map[Version]*versionParams{
		V1: {
			fullNameLength: runeLength,
			siteNameLength: runeLength,
			scryptN:        scryptN,
			scryptR:        scryptR,
			scryptP:        scryptP,
			keyLen:         KeySize,
			scopes:         scopes,
			templates:      templates,
			identicon:      &identicons,
		},
		V2: {
			fullNameLength: runeLength,
			siteNameLength: byteLength,
			scryptN:        scryptN,
			scryptR:        scryptR,
			scryptP:        scryptP,
			keyLen:         KeySize,
			scopes:         scopes,
			templates:      templates,
			identicon:      &identicons,
		},
		V3: {
			fullNameLength: byteLength,
			siteNameLength: byteLength,
			scryptN:        scryptN,
			scryptR:        scryptR,
			scryptP:        scryptP,
			keyLen:         KeySize,
			scopes:         scopes,
			templates:      templates,
			identicon:      &identicons,
		},
	}
)

func (v Version) params() (*versionParams, error) {
	p, ok := versions[v]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, uint8(v))
	}
	return p, nil
}

// Validate returns ErrUnsupportedVersion if v has no defined parameters.
func (v Version) Validate() error {
	_, err := v.params()
	return err
}

func (v Version) String() string {
	return "v" + strconv.Itoa(int(v))
}

// Versions returns every supported Version, oldest first.
func Versions() []Version {
	return []Version{V1, V2, V3}
}

// ParseVersion accepts a version number with an optional "v" prefix, like "3" or "v3".
// An empty string yields Latest.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "v")
	if s == "" {
		return Latest, nil
	}
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedVersion, s)
	}
	v := Version(n)
	if err := v.Validate(); err != nil {
		return 0, err
	}
	return v, nil
}
