package mpw

import (
	"fmt"
	"strings"
)

// Color is the color an Identicon should be rendered in.
type Color uint8

const (
	ColorRed Color = iota
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
)

func (c Color) String() string {
	switch c {
	case ColorRed:
		return "red"
	case ColorGreen:
		return "green"
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorMagenta:
		return "magenta"
	case ColorCyan:
		return "cyan"
	case ColorWhite:
		return "white"
	default:
		return fmt.Sprintf("color(%d)", uint8(c))
	}
}

type identiconTable struct {
	leftArm   []string
	body      []string
	rightArm  []string
	accessory []string
	colors    []Color
}

var identicons = identiconTable{
	leftArm:  []string{"╔", "╚", "╰", "═"},
	body:     []string{"█", "░", "▒", "▓", "☺", "☻"},
	rightArm: []string{"╗", "╝", "╯", "═"},
	accessory: []string{
		"◈", "◎", "◐", "◑", "◒", "◓", "☀", "☁", "☂", "☃", "☄", "★", "☆", "☎",
		"☏", "⎈", "⌂", "☘", "☢", "☣", "☕", "⌚", "⌛", "⏰", "⚡", "⛄", "⛅", "☔",
		"♔", "♕", "♖", "♗", "♘", "♙", "♚", "♛", "♜", "♝", "♞", "♟", "♨", "♩",
		"♪", "♫", "⚐", "⚑", "⚔", "⚖", "⚙", "⚠", "⌘", "⏎", "✄", "✆", "✈", "✉", "✌",
	},
	colors: []Color{ColorRed, ColorGreen, ColorYellow, ColorBlue, ColorMagenta, ColorCyan, ColorWhite},
}

// Identicon is a small visual fingerprint of a full name and master password.
// Each field is an index into the glyph tables of the Version it was derived with.
type Identicon struct {
	LeftArm   int
	Body      int
	RightArm  int
	Accessory int
	Color     Color

	table *identiconTable
}

// NewIdenticon derives the Identicon for a full name and master password.
// It doesn't stretch the master password, so it's cheap enough to show before NewMasterKey is called.
// masterPassword is not modified.
func NewIdenticon(fullName, masterPassword []byte, v Version) (Identicon, error) {
	p, err := v.params()
	if err != nil {
		return Identicon{}, err
	}
	seed := keyedHash(masterPassword, fullName)
	defer seed.Wipe()

	t := p.identicon
	return Identicon{
		LeftArm:   int(seed[0]) % len(t.leftArm),
		Body:      int(seed[1]) % len(t.body),
		RightArm:  int(seed[2]) % len(t.rightArm),
		Accessory: int(seed[3]) % len(t.accessory),
		Color:     t.colors[int(seed[4])%len(t.colors)],
		table:     t,
	}, nil
}

// Glyphs returns the left arm, body, right arm, and accessory glyphs.
func (i Identicon) Glyphs() (leftArm, body, rightArm, accessory string) {
	t := i.table
	if t == nil {
		t = &identicons
	}
	return t.leftArm[i.LeftArm], t.body[i.Body], t.rightArm[i.RightArm], t.accessory[i.Accessory]
}

func (i Identicon) String() string {
	left, body, right, accessory := i.Glyphs()
	var sb strings.Builder
	sb.WriteString(left)
	sb.WriteString(body)
	sb.WriteString(right)
	sb.WriteString(accessory)
	return sb.String()
}
