package mpw

import (
	"fmt"
	"strings"
)

// Purpose selects the scope a seed is derived in.
// Seeds derived for different purposes are independent, even when every other input is the same.
type Purpose uint8

const (
	// Authentication derives passwords to log in with.
	Authentication Purpose = iota
	// Identification derives login names to log in as.
	Identification
	// Recovery derives answers to security questions.
	Recovery
	// Storage derives keys to encrypt stored secrets with.
	// It isn't user-selectable.
	Storage
)

func (p Purpose) String() string {
	switch p {
	case Authentication:
		return "password"
	case Identification:
		return "login"
	case Recovery:
		return "answer"
	case Storage:
		return "storage"
	default:
		return fmt.Sprintf("purpose(%d)", uint8(p))
	}
}

// ParsePurpose parses the user-selectable purposes, accepting "p", "password", "l", "login", "a", and "answer".
// An empty string yields Authentication.
func ParsePurpose(s string) (Purpose, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "p", "password":
		return Authentication, nil
	case "l", "login":
		return Identification, nil
	case "a", "answer":
		return Recovery, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedPurpose, s)
	}
}

// DefaultClass returns the Class used for p when none is specified.
func DefaultClass(p Purpose) Class {
	switch p {
	case Identification:
		return ClassName
	case Recovery:
		return ClassPhrase
	default:
		return ClassLong
	}
}
