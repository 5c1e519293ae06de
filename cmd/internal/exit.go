package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/saylorsolutions/gompw/pkg/config"
	"github.com/saylorsolutions/gompw/pkg/mpw"
	"github.com/saylorsolutions/gompw/pkg/vault"
)

// Exit codes shared by commands.
const (
	ExitOK = iota
	ExitFailure
	ExitUsage
	ExitAuth
	ExitIO
)

// UsageError indicates that a command was invoked incorrectly.
type UsageError struct {
	err error
}

func (e *UsageError) Error() string {
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}

// Usagef creates a UsageError with a formatted message.
// Wrapped errors with %w are preserved.
func Usagef(msg string, args ...any) error {
	return &UsageError{err: fmt.Errorf(msg, args...)}
}

// ExitCode classifies err into one of the exit codes.
func ExitCode(err error) int {
	var usage *UsageError
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &usage):
		return ExitUsage
	case errors.Is(err, vault.ErrAuthenticationFailed),
		errors.Is(err, vault.ErrInvalidPadding),
		errors.Is(err, mpw.ErrInvalidKey),
		errors.Is(err, mpw.ErrSeedTooShort),
		errors.Is(err, mpw.ErrInvalidTemplate):
		return ExitAuth
	case errors.Is(err, config.ErrConfigMalformed),
		errors.Is(err, config.ErrConflict),
		errors.Is(err, config.ErrSiteExists),
		errors.Is(err, config.ErrSiteNotFound),
		errors.Is(err, vault.ErrInvalidBundle),
		errors.As(err, &pathErr):
		return ExitIO
	default:
		return ExitFailure
	}
}

// Fatal will Echo the message and os.Exit with the given code.
func Fatal(code int, msg string, args ...any) {
	Echo(msg, args...)
	os.Exit(code)
}

// Echo will emit the given message without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}
