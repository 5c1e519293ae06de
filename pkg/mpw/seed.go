package mpw

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/saylorsolutions/gompw/pkg/secret"
)

// Site identifies what to derive for one site.
type Site struct {
	Name string
	// Counter mints a new password for the same site. Zero means DefaultCounter.
	Counter uint32
	// Class shapes the rendered password. Zero means DefaultClass(Purpose).
	Class   Class
	Purpose Purpose
	// Context narrows a derivation further, like a keyword of a security question. It's usually empty.
	Context string
}

func (s Site) counter() uint32 {
	if s.Counter == 0 {
		return DefaultCounter
	}
	return s.Counter
}

func (s Site) class() Class {
	if s.Class == 0 {
		return DefaultClass(s.Purpose)
	}
	return s.Class
}

// DeriveSeed computes HMAC-SHA256 keyed by key over the purpose scope, site name, counter, and optional context.
// Every purpose has its own scope, so seeds for different purposes never coincide.
func DeriveSeed(key []byte, siteName string, counter uint32, v Version, purpose Purpose, context string) (secret.Buffer, error) {
	if len(key) == 0 {
		return nil, ErrInvalidKey
	}
	p, err := v.params()
	if err != nil {
		return nil, err
	}
	msg, err := seedMessage(p, purpose, []byte(siteName), counter, []byte(context))
	if err != nil {
		return nil, err
	}
	return keyedHash(key, msg), nil
}

// seedMessage builds scope || len(name) || name || counter [|| len(context) || context], with big endian lengths.
func seedMessage(p *versionParams, purpose Purpose, name []byte, counter uint32, context []byte) ([]byte, error) {
	scope, ok := p.scopes[purpose]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedPurpose, purpose)
	}
	n, err := p.siteNameLength.count(name)
	if err != nil {
		return nil, fmt.Errorf("site name: %w", err)
	}
	msg := make([]byte, 0, len(scope)+len(name)+len(context)+12)
	msg = append(msg, scope...)
	msg = binary.BigEndian.AppendUint32(msg, n)
	msg = append(msg, name...)
	msg = binary.BigEndian.AppendUint32(msg, counter)
	if len(context) > 0 {
		if uint64(len(context)) > math.MaxUint32 {
			return nil, fmt.Errorf("context: %w", ErrNameTooLong)
		}
		msg = binary.BigEndian.AppendUint32(msg, uint32(len(context)))
		msg = append(msg, context...)
	}
	return msg, nil
}

func keyedHash(key, msg []byte) secret.Buffer {
	mac := hmac.New(sha256.New, key)
	mac.Write(msg)
	return mac.Sum(nil)
}
