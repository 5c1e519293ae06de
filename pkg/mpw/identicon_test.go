package mpw

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdenticon(t *testing.T) {
	tests := map[string]struct {
		fullName string
		password string
		glyphs   string
		color    Color
	}{
		"ASCII": {
			fullName: johnDoe,
			password: johnPassword,
			glyphs:   "╔░╝⌚",
			color:    ColorRed,
		},
		"Unicode full name": {
			fullName: "Max Müller",
			password: "passwort",
			glyphs:   "═▒╝♚",
			color:    ColorCyan,
		},
		"Other user": {
			fullName: "Zhang Wei",
			password: "password",
			glyphs:   "╔░╗◒",
			color:    ColorRed,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			for _, v := range Versions() {
				icon, err := NewIdenticon([]byte(tc.fullName), []byte(tc.password), v)
				require.NoError(t, err)
				assert.Equal(t, tc.glyphs, icon.String())
				assert.Equal(t, tc.color, icon.Color)
			}
		})
	}
}

func TestNewIdenticon_Indices(t *testing.T) {
	icon, err := NewIdenticon([]byte(johnDoe), []byte(johnPassword), Latest)
	require.NoError(t, err)
	assert.Equal(t, 0, icon.LeftArm)
	assert.Equal(t, 1, icon.Body)
	assert.Equal(t, 1, icon.RightArm)
	assert.Equal(t, 21, icon.Accessory)

	left, body, right, accessory := icon.Glyphs()
	assert.Equal(t, "╔", left)
	assert.Equal(t, "░", body)
	assert.Equal(t, "╝", right)
	assert.Equal(t, "⌚", accessory)

	var zero Identicon
	assert.Equal(t, "╔█╗◈", zero.String())
}

func TestNewIdenticon_LeavesPassword(t *testing.T) {
	password := []byte(johnPassword)
	_, err := NewIdenticon([]byte(johnDoe), password, Latest)
	require.NoError(t, err)
	assert.Equal(t, johnPassword, string(password))
}

func TestNewIdenticon_IndependentOfSite(t *testing.T) {
	before, err := NewIdenticon([]byte(johnDoe), []byte(johnPassword), V3)
	require.NoError(t, err)

	key := newTestKey(t, johnDoe, johnPassword, V3)
	for _, site := range []Site{{Name: "a.com"}, {Name: "b.com", Counter: 7}} {
		_, err := key.Password(site)
		require.NoError(t, err)
		after, err := NewIdenticon([]byte(johnDoe), []byte(johnPassword), V3)
		require.NoError(t, err)
		assert.Equal(t, before.String(), after.String())
		assert.Equal(t, before.Color, after.Color)
	}
}

func TestNewIdenticon_UnsupportedVersion(t *testing.T) {
	_, err := NewIdenticon([]byte(johnDoe), []byte(johnPassword), Version(0))
	assert.ErrorIs(t, err, ErrUnsupportedVersion)
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "red", ColorRed.String())
	assert.Equal(t, "white", ColorWhite.String())
	assert.Equal(t, "color(9)", Color(9).String())
}
