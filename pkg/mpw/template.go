package mpw

import (
	"crypto/rand"
	"fmt"
	"math"
	"strings"

	"github.com/saylorsolutions/gompw/pkg/secret"
)

// Class is a named group of templates that shapes a generated password.
type Class uint8

const (
	// ClassMaximum is 20 characters, and contains symbols.
	ClassMaximum Class = iota + 1
	// ClassLong is copy-friendly, 14 characters, and contains symbols.
	ClassLong
	// ClassMedium is copy-friendly, 8 characters, and contains symbols.
	ClassMedium
	// ClassBasic is 8 characters with no symbols.
	ClassBasic
	// ClassShort is copy-friendly, 4 characters, with no symbols.
	ClassShort
	// ClassPIN is 4 digits.
	ClassPIN
	// ClassName is a 9 letter name.
	ClassName
	// ClassPhrase is a 20 character sentence.
	ClassPhrase
)

var classNames = map[Class]string{
	ClassMaximum: "maximum",
	ClassLong:    "long",
	ClassMedium:  "medium",
	ClassBasic:   "basic",
	ClassShort:   "short",
	ClassPIN:     "pin",
	ClassName:    "name",
	ClassPhrase:  "phrase",
}

func (c Class) String() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return fmt.Sprintf("class(%d)", uint8(c))
}

// Classes returns every Class in order of decreasing strength.
func Classes() []Class {
	return []Class{ClassMaximum, ClassLong, ClassMedium, ClassBasic, ClassShort, ClassPIN, ClassName, ClassPhrase}
}

// ParseClass parses a class name or one of its short aliases, like "x", "max", "l", or "pin".
func ParseClass(s string) (Class, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x", "max", "maximum":
		return ClassMaximum, nil
	case "l", "long":
		return ClassLong, nil
	case "m", "med", "medium":
		return ClassMedium, nil
	case "b", "basic":
		return ClassBasic, nil
	case "s", "short":
		return ClassShort, nil
	case "i", "pin":
		return ClassPIN, nil
	case "n", "name":
		return ClassName, nil
	case "p", "phrase":
		return ClassPhrase, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedClass, s)
	}
}

// Character class codes used in templates:
//
//	V  uppercase vowel
//	C  uppercase consonant
//	v  lowercase vowel
//	c  lowercase consonant
//	A  uppercase letter
//	a  letter of either case
//	n  digit
//	o  symbol
//	x  letter, digit, or symbol
var characterClasses = map[byte]string{
	'V': "AEIOU",
	'C': "BCDFGHJKLMNPQRSTVWXYZ",
	'v': "aeiou",
	'c': "bcdfghjklmnpqrstvwxyz",
	'A': "AEIOUBCDFGHJKLMNPQRSTVWXYZ",
	'a': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz",
	'n': "0123456789",
	'o': "@&%?,=[]_:-+*$#!'^~;()/.",
	'x': "AEIOUaeiouBCDFGHJKLMNPQRSTVWXYZbcdfghjklmnpqrstvwxyz0123456789!@#$%^&*()",
	' ': " ",
}

var templates = map[Class][]string{
	ClassMaximum: {
		"anoxxxxxxxxxxxxxxxxx", "axxxxxxxxxxxxxxxxxno",
	},
	ClassLong: {
		"CvcvnoCvcvCvcv", "CvcvCvcvnoCvcv", "CvcvCvcvCvcvno", "CvccnoCvcvCvcv",
		"CvccCvcvnoCvcv", "CvccCvcvCvcvno", "CvcvnoCvccCvcv", "CvcvCvccnoCvcv",
		"CvcvCvccCvcvno", "CvcvnoCvcvCvcc", "CvcvCvcvnoCvcc", "CvcvCvcvCvccno",
		"CvccnoCvccCvcv", "CvccCvccnoCvcv", "CvccCvccCvcvno", "CvcvnoCvccCvcc",
		"CvcvCvccnoCvcc", "CvcvCvccCvccno", "CvccnoCvcvCvcc", "CvccCvcvnoCvcc",
		"CvccCvcvCvccno",
	},
	ClassMedium: {
		"CvcnoCvc", "CvcCvcno",
	},
	ClassBasic: {
		"aaanaaan", "aannaaan", "aaannaaa",
	},
	ClassShort: {
		"Cvcn",
	},
	ClassPIN: {
		"nnnn",
	},
	ClassName: {
		"cvccvcvcv",
	},
	ClassPhrase: {
		"cvcc cvc cvccvcv cvc", "cvc cvccvcvcv cvcv", "cv cvccv cvc cvcvccv",
	},
}

func (p *versionParams) templatesFor(class Class) ([]string, error) {
	list := p.templates[class]
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedClass, class)
	}
	return list, nil
}

// Templates returns a copy of the ordered template list for class in version v.
func Templates(class Class, v Version) ([]string, error) {
	p, err := v.params()
	if err != nil {
		return nil, err
	}
	list, err := p.templatesFor(class)
	if err != nil {
		return nil, err
	}
	return append([]string(nil), list...), nil
}

// Render encodes seed as a password of the given class.
// The first seed byte selects the template, and each following byte selects one character.
// ErrSeedTooShort is returned when the selected template needs more bytes than seed holds, which indicates a broken template table.
func Render(seed []byte, class Class, v Version) (secret.Buffer, error) {
	p, err := v.params()
	if err != nil {
		return nil, err
	}
	list, err := p.templatesFor(class)
	if err != nil {
		return nil, err
	}
	if len(seed) == 0 {
		return nil, fmt.Errorf("%w: empty seed", ErrSeedTooShort)
	}
	tmpl := list[int(seed[0])%len(list)]
	if len(tmpl) >= len(seed) {
		return nil, fmt.Errorf("%w: template needs %d bytes, got %d", ErrSeedTooShort, len(tmpl)+1, len(seed))
	}

	out := secret.New(len(tmpl))
	for i := 0; i < len(tmpl); i++ {
		chars, ok := characterClasses[tmpl[i]]
		if !ok {
			out.Wipe()
			return nil, fmt.Errorf("%w: unknown character class %q", ErrInvalidTemplate, tmpl[i])
		}
		out[i] = chars[int(seed[i+1])%len(chars)]
	}
	return out, nil
}

// RandomPassword renders a password of the given class from a random seed instead of a derived one.
// This is useful for choosing a fresh secret to store.
func RandomPassword(class Class, v Version) (secret.Buffer, error) {
	p, err := v.params()
	if err != nil {
		return nil, err
	}
	list, err := p.templatesFor(class)
	if err != nil {
		return nil, err
	}
	longest := 0
	for _, tmpl := range list {
		longest = max(longest, len(tmpl))
	}
	seed := secret.New(longest + 1)
	defer seed.Wipe()
	if _, err := rand.Read(seed); err != nil {
		return nil, fmt.Errorf("failed to read random seed: %w", err)
	}
	return Render(seed, class, v)
}

// Entropy returns the bits of entropy of the weakest template in class for version v.
func (c Class) Entropy(v Version) (float64, error) {
	p, err := v.params()
	if err != nil {
		return 0, err
	}
	list, err := p.templatesFor(c)
	if err != nil {
		return 0, err
	}
	least := math.Inf(1)
	for _, tmpl := range list {
		var bits float64
		for i := 0; i < len(tmpl); i++ {
			bits += math.Log2(float64(len(characterClasses[tmpl[i]])))
		}
		least = math.Min(least, bits)
	}
	return least, nil
}
