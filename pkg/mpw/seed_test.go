package mpw

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveSeed(t *testing.T) {
	key := newTestKey(t, johnDoe, johnPassword, V3)
	seed, err := key.SiteSeed(Site{Name: "github.com"}, Authentication)
	require.NoError(t, err)
	assert.Len(t, seed, SeedSize)
	assert.Equal(t, "56b8f4695b0a1453d0a039ad56ea44d82141b6e326f42e01266c21fe725bdbe2", hex.EncodeToString(seed))

	again, err := DeriveSeed(key.Bytes(), "github.com", 1, V3, Authentication, "")
	require.NoError(t, err)
	assert.Equal(t, seed, again, "Seed derivation must be deterministic")
}

func TestDeriveSeed_Counter(t *testing.T) {
	key := newTestKey(t, johnDoe, johnPassword, V3)
	one, err := DeriveSeed(key.Bytes(), "site.com", 1, V3, Authentication, "")
	require.NoError(t, err)
	two, err := DeriveSeed(key.Bytes(), "site.com", 2, V3, Authentication, "")
	require.NoError(t, err)
	assert.NotEqual(t, one, two)

	defaulted, err := key.SiteSeed(Site{Name: "site.com"}, Authentication)
	require.NoError(t, err)
	assert.Equal(t, one, defaulted, "A zero counter means the default counter")
}

func TestDeriveSeed_PurposeIndependence(t *testing.T) {
	key := newTestKey(t, johnDoe, johnPassword, V3)
	seen := map[string]Purpose{}
	for _, purpose := range []Purpose{Authentication, Identification, Recovery, Storage} {
		seed, err := key.SiteSeed(Site{Name: "github.com"}, purpose)
		require.NoError(t, err)
		encoded := hex.EncodeToString(seed)
		other, ok := seen[encoded]
		assert.False(t, ok, "%s seed collides with %s", purpose, other)
		seen[encoded] = purpose
	}
}

func TestDeriveSeed_Context(t *testing.T) {
	key := newTestKey(t, johnDoe, johnPassword, V3)
	plain, err := key.SiteSeed(Site{Name: "github.com"}, Recovery)
	require.NoError(t, err)
	withContext, err := key.SiteSeed(Site{Name: "github.com", Context: "mother"}, Recovery)
	require.NoError(t, err)
	assert.NotEqual(t, plain, withContext)
}

func TestDeriveSeed_Errors(t *testing.T) {
	key := make([]byte, KeySize)
	_, err := DeriveSeed(nil, "github.com", 1, V3, Authentication, "")
	assert.ErrorIs(t, err, ErrInvalidKey)
	_, err = DeriveSeed(key, "github.com", 1, Version(9), Authentication, "")
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
	_, err = DeriveSeed(key, "github.com", 1, V3, Purpose(42), "")
	assert.ErrorIs(t, err, ErrUnsupportedPurpose)
}

func TestSeedMessage(t *testing.T) {
	tests := map[string]struct {
		version  Version
		site     string
		counter  uint32
		context  string
		expected string
	}{
		"V3": {
			version:  V3,
			site:     "山东大学.cn",
			counter:  1,
			expected: scopeBase + "\x00\x00\x00\x0f山东大学.cn\x00\x00\x00\x01",
		},
		"V2": {
			version:  V2,
			site:     "山东大学.cn",
			counter:  2,
			expected: scopeBase + "\x00\x00\x00\x0f山东大学.cn\x00\x00\x00\x02",
		},
		"V1": {
			version:  V1,
			site:     "山东大学.cn",
			counter:  1,
			expected: scopeBase + "\x00\x00\x00\x07山东大学.cn\x00\x00\x00\x01",
		},
		"Context": {
			version:  V3,
			site:     "a.b",
			counter:  1,
			context:  "pet",
			expected: scopeBase + "\x00\x00\x00\x03a.b\x00\x00\x00\x01\x00\x00\x00\x03pet",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, err := tc.version.params()
			require.NoError(t, err)
			msg, err := seedMessage(p, Authentication, []byte(tc.site), tc.counter, []byte(tc.context))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(msg))
		})
	}
}
