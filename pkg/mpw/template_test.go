package mpw

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword_Golden(t *testing.T) {
	key := newTestKey(t, johnDoe, johnPassword, V3)
	tests := map[string]struct {
		site     Site
		expected string
	}{
		"Default":        {site: Site{Name: "github.com"}, expected: "VubeNazoRihe4("},
		"Google":         {site: Site{Name: "google.com"}, expected: "QubnJuvaMoke2~"},
		"Counter":        {site: Site{Name: "github.com", Counter: 2}, expected: "JaviJoyb7&Nero"},
		"Maximum":        {site: Site{Name: "github.com", Class: ClassMaximum}, expected: "X4:MBNC#J5YGL&Ad$kCk"},
		"Long":           {site: Site{Name: "github.com", Class: ClassLong}, expected: "VubeNazoRihe4("},
		"Medium":         {site: Site{Name: "github.com", Class: ClassMedium}, expected: "Vub1-Zoy"},
		"Basic":          {site: Site{Name: "github.com", Class: ClassBasic}, expected: "XhE10NbA"},
		"Short":          {site: Site{Name: "github.com", Class: ClassShort}, expected: "Vub1"},
		"PIN":            {site: Site{Name: "github.com", Class: ClassPIN}, expected: "4451"},
		"Name":           {site: Site{Name: "github.com", Class: ClassName}, expected: "vubkazoya"},
		"Phrase":         {site: Site{Name: "github.com", Class: ClassPhrase}, expected: "vu kazzo tod heqaswo"},
		"Login":          {site: Site{Name: "github.com", Purpose: Identification}, expected: "mihgomiye"},
		"Answer":         {site: Site{Name: "github.com", Purpose: Recovery}, expected: "wir cunfiruve fofi"},
		"Answer context": {site: Site{Name: "github.com", Purpose: Recovery, Context: "mother"}, expected: "sic xebgifavu nuca"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			password, err := key.Password(tc.site)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, string(password))
		})
	}
}

func TestPassword_Versions(t *testing.T) {
	tests := map[string]struct {
		fullName string
		password string
		site     string
		expected map[Version]string
	}{
		"Unicode full name": {
			fullName: "Max Müller",
			password: "passwort",
			site:     "de.wikipedia.org",
			expected: map[Version]string{
				V1: "ColuQakeKuyi4$",
				V2: "ColuQakeKuyi4$",
				V3: "DaknJezb6,Zula",
			},
		},
		"Unicode site name": {
			fullName: "Zhang Wei",
			password: "password",
			site:     "山东大学.cn",
			expected: map[Version]string{
				V1: "Zazo5?ViytTujd",
				V2: "ZajmGabl0~Zoza",
				V3: "ZajmGabl0~Zoza",
			},
		},
		"ASCII": {
			fullName: johnDoe,
			password: johnPassword,
			site:     "github.com",
			expected: map[Version]string{
				V1: "VubeNazoRihe4(",
				V2: "VubeNazoRihe4(",
				V3: "VubeNazoRihe4(",
			},
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for v, expected := range tc.expected {
				key := newTestKey(t, tc.fullName, tc.password, v)
				password, err := key.Password(Site{Name: tc.site})
				require.NoError(t, err)
				assert.Equal(t, expected, string(password), "Version %s", v)
			}
		})
	}
}

func TestRender_TemplateBoundary(t *testing.T) {
	seed := make([]byte, SeedSize)

	seed[0] = 0
	password, err := Render(seed, ClassLong, V3)
	require.NoError(t, err)
	assert.Equal(t, "Baba0@BabaBaba", string(password), "Selector 0 must pick the first template")

	seed[0] = 255
	password, err = Render(seed, ClassLong, V3)
	require.NoError(t, err)
	assert.Equal(t, "Babb0@BabaBaba", string(password), "Selector 255 must pick template 255 mod 21")

	password, err = Render(seed, ClassMedium, V3)
	require.NoError(t, err)
	assert.Equal(t, "BabBab0@", string(password))
}

func TestRender_OneByteEach(t *testing.T) {
	seed := make([]byte, SeedSize)
	for i := 1; i < len(seed); i++ {
		seed[i] = byte(i - 1)
	}
	password, err := Render(seed, ClassPIN, V3)
	require.NoError(t, err)
	assert.Equal(t, "0123", string(password))
}

func TestRender_Errors(t *testing.T) {
	_, err := Render(make([]byte, 14), ClassLong, V3)
	assert.ErrorIs(t, err, ErrSeedTooShort)
	_, err = Render(nil, ClassLong, V3)
	assert.ErrorIs(t, err, ErrSeedTooShort)
	_, err = Render(make([]byte, 15), ClassLong, V3)
	assert.NoError(t, err)

	_, err = Render(make([]byte, SeedSize), Class(0), V3)
	assert.ErrorIs(t, err, ErrUnsupportedClass)
	_, err = Render(make([]byte, SeedSize), ClassLong, Version(0))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestTemplates_FitSeed(t *testing.T) {
	for _, v := range Versions() {
		for _, class := range Classes() {
			list, err := Templates(class, v)
			require.NoError(t, err)
			require.NotEmpty(t, list)
			for _, tmpl := range list {
				assert.Less(t, len(tmpl), SeedSize, "%s %s template %q is too long", v, class, tmpl)
				for i := 0; i < len(tmpl); i++ {
					assert.Contains(t, characterClasses, tmpl[i])
				}
			}
		}
	}
}

func TestClass_Entropy(t *testing.T) {
	minimum := map[Class]float64{
		ClassMaximum: 118.4,
		ClassLong:    48.1,
		ClassMedium:  30.1,
		ClassBasic:   38.4,
		ClassShort:   14.4,
		ClassPIN:     13.2,
		ClassName:    31.2,
		ClassPhrase:  55.7,
	}
	for class, bits := range minimum {
		got, err := class.Entropy(Latest)
		require.NoError(t, err)
		assert.Greater(t, got, bits, class.String())
	}
}

func TestRandomPassword(t *testing.T) {
	a, err := RandomPassword(ClassMaximum, Latest)
	require.NoError(t, err)
	b, err := RandomPassword(ClassMaximum, Latest)
	require.NoError(t, err)
	assert.Len(t, a, 20)
	assert.False(t, bytes.Equal(a, b))

	_, err = RandomPassword(Class(99), Latest)
	assert.ErrorIs(t, err, ErrUnsupportedClass)
}

func TestParseClass(t *testing.T) {
	tests := map[string]Class{
		"x": ClassMaximum, "max": ClassMaximum, "maximum": ClassMaximum,
		"l": ClassLong, "long": ClassLong, "LONG": ClassLong,
		"m": ClassMedium, "med": ClassMedium, "medium": ClassMedium,
		"b": ClassBasic, "basic": ClassBasic,
		"s": ClassShort, "short": ClassShort,
		"i": ClassPIN, "pin": ClassPIN,
		"n": ClassName, "name": ClassName,
		"p": ClassPhrase, "phrase": ClassPhrase,
	}
	for input, expected := range tests {
		class, err := ParseClass(input)
		assert.NoError(t, err, input)
		assert.Equal(t, expected, class, input)
	}
	for _, class := range Classes() {
		parsed, err := ParseClass(class.String())
		assert.NoError(t, err)
		assert.Equal(t, class, parsed)
	}
	_, err := ParseClass("stored")
	assert.ErrorIs(t, err, ErrUnsupportedClass)
}
