package secret

import (
	"crypto/subtle"
	"runtime"
)

// Buffer holds sensitive bytes that must be wiped when no longer needed.
type Buffer []byte

// New allocates a zeroed Buffer of length n.
func New(n int) Buffer {
	return make(Buffer, n)
}

// Clone copies data into a new Buffer, leaving data untouched.
func Clone(data []byte) Buffer {
	buf := make(Buffer, len(data))
	copy(buf, data)
	return buf
}

// Wipe overwrites every byte of the Buffer with zero.
func (b Buffer) Wipe() {
	Wipe(b)
}

// Len returns the number of bytes held.
func (b Buffer) Len() int {
	return len(b)
}

// Equal reports whether a and b hold the same bytes, in constant time.
func (b Buffer) Equal(other []byte) bool {
	return Equal(b, other)
}

// Wipe overwrites each of the given slices with zeros.
func Wipe(bufs ...[]byte) {
	for _, buf := range bufs {
		for i := range buf {
			buf[i] = 0
		}
		runtime.KeepAlive(buf)
	}
}

// Use calls fn with buf and wipes buf afterward, even if fn returns an error or panics.
func Use(buf Buffer, fn func(Buffer) error) error {
	defer buf.Wipe()
	return fn(buf)
}

// Equal compares a and b in constant time.
// Slices of different lengths are never equal.
func Equal(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	return subtle.ConstantTimeCompare(a, b) == 1
}

// IsZero reports whether every byte in buf is zero.
func IsZero(buf []byte) bool {
	var acc byte
	for _, b := range buf {
		acc |= b
	}
	return acc == 0
}
