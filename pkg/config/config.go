package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/saylorsolutions/gompw/pkg/mpw"
	"github.com/saylorsolutions/gompw/pkg/vault"
)

var (
	ErrConfigMalformed = errors.New("configuration is malformed")
	ErrSiteExists      = errors.New("site already exists")
	ErrSiteNotFound    = errors.New("site not found")
	ErrConflict        = errors.New("conflicting configuration")
)

// Kind is how a site's password is produced.
type Kind string

const (
	KindGenerated Kind = "generated"
	KindStored    Kind = "stored"
)

// Config is the whole document.
type Config struct {
	FullName string      `toml:"full_name,omitempty" yaml:"full_name,omitempty"`
	Sites    []SiteEntry `toml:"sites,omitempty" yaml:"sites,omitempty"`
}

// SiteEntry is the record of one site.
type SiteEntry struct {
	Name string `toml:"name" yaml:"name"`
	// Type is empty or KindGenerated for generated sites, and KindStored for stored ones.
	Type    Kind   `toml:"type,omitempty" yaml:"type,omitempty"`
	Class   string `toml:"class,omitempty" yaml:"class,omitempty"`
	Counter uint32 `toml:"counter,omitempty" yaml:"counter,omitempty"`
	Variant string `toml:"variant,omitempty" yaml:"variant,omitempty"`
	Context string `toml:"context,omitempty" yaml:"context,omitempty"`
	// Encrypted is the text form of a vault.Bundle, and is only set for stored sites.
	Encrypted string `toml:"encrypted,omitempty" yaml:"encrypted,omitempty"`
}

// Kind returns the site's Kind, applying the default.
func (s SiteEntry) Kind() Kind {
	if s.Type == "" {
		return KindGenerated
	}
	return s.Type
}

// IsStored reports whether the site's password is an encrypted secret.
func (s SiteEntry) IsStored() bool {
	return s.Kind() == KindStored
}

// EffectiveCounter returns the site's counter, applying the default.
func (s SiteEntry) EffectiveCounter() uint32 {
	if s.Counter == 0 {
		return mpw.DefaultCounter
	}
	return s.Counter
}

// SetCounter sets the counter, leaving it unset when n is the default so it's omitted on save.
func (s *SiteEntry) SetCounter(n uint32) {
	if n == mpw.DefaultCounter {
		n = 0
	}
	s.Counter = n
}

// Site resolves the entry into the parameters for deriving its password.
func (s SiteEntry) Site() (mpw.Site, error) {
	purpose, err := mpw.ParsePurpose(s.Variant)
	if err != nil {
		return mpw.Site{}, fmt.Errorf("%w: site %q: %w", ErrConfigMalformed, s.Name, err)
	}
	site := mpw.Site{
		Name:    s.Name,
		Counter: s.EffectiveCounter(),
		Purpose: purpose,
		Context: s.Context,
	}
	if s.Class != "" {
		if site.Class, err = mpw.ParseClass(s.Class); err != nil {
			return mpw.Site{}, fmt.Errorf("%w: site %q: %w", ErrConfigMalformed, s.Name, err)
		}
	}
	return site, nil
}

// Bundle decodes the encrypted secret of a stored site.
func (s SiteEntry) Bundle() (vault.Bundle, error) {
	if !s.IsStored() {
		return vault.Bundle{}, fmt.Errorf("%w: site %q is not stored", ErrConfigMalformed, s.Name)
	}
	bundle, err := vault.ParseBundle(s.Encrypted)
	if err != nil {
		return vault.Bundle{}, fmt.Errorf("%w: site %q: %w", ErrConfigMalformed, s.Name, err)
	}
	return bundle, nil
}

// SetBundle makes the site a stored site holding bundle.
func (s *SiteEntry) SetBundle(bundle vault.Bundle) error {
	text, err := bundle.MarshalText()
	if err != nil {
		return err
	}
	s.Type = KindStored
	s.Encrypted = string(text)
	return nil
}

// Validate checks that the entry is internally consistent.
func (s SiteEntry) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("%w: site without a name", ErrConfigMalformed)
	}
	switch s.Kind() {
	case KindGenerated:
		if s.Encrypted != "" {
			return fmt.Errorf("%w: generated site %q has an encrypted secret", ErrConfigMalformed, s.Name)
		}
		_, err := s.Site()
		return err
	case KindStored:
		if s.Encrypted == "" {
			return fmt.Errorf("%w: stored site %q has no encrypted secret", ErrConfigMalformed, s.Name)
		}
		_, err := s.Bundle()
		return err
	default:
		return fmt.Errorf("%w: site %q has unknown type %q", ErrConfigMalformed, s.Name, s.Type)
	}
}

// Validate checks every site, and that no site name appears twice.
func (c *Config) Validate() error {
	seen := make(map[string]struct{}, len(c.Sites))
	for _, site := range c.Sites {
		if err := site.Validate(); err != nil {
			return err
		}
		if _, ok := seen[site.Name]; ok {
			return fmt.Errorf("%w: site %q is listed more than once", ErrConfigMalformed, site.Name)
		}
		seen[site.Name] = struct{}{}
	}
	return nil
}

func (c *Config) index(name string) int {
	for i, site := range c.Sites {
		if site.Name == name {
			return i
		}
	}
	return -1
}

// Find returns the entry with the given name.
func (c *Config) Find(name string) (SiteEntry, bool) {
	i := c.index(name)
	if i < 0 {
		return SiteEntry{}, false
	}
	return c.Sites[i], true
}

// Add appends a new entry, failing with ErrSiteExists if one with the same name is already present.
func (c *Config) Add(entry SiteEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if c.index(entry.Name) >= 0 {
		return fmt.Errorf("%w: %s", ErrSiteExists, entry.Name)
	}
	c.Sites = append(c.Sites, entry)
	return nil
}

// Put adds entry, or replaces the entry with the same name in place.
// This is the only way to change the Kind of an existing site.
func (c *Config) Put(entry SiteEntry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if i := c.index(entry.Name); i >= 0 {
		c.Sites[i] = entry
		return nil
	}
	c.Sites = append(c.Sites, entry)
	return nil
}

// Remove deletes the entry with the given name.
func (c *Config) Remove(name string) error {
	i := c.index(name)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrSiteNotFound, name)
	}
	c.Sites = append(c.Sites[:i], c.Sites[i+1:]...)
	return nil
}

// Merge folds other into c, preferring values set in other.
// Sites with the same name are merged field by field, and sites only in other are appended.
// c is left unchanged if an ErrConflict is returned.
func (c *Config) Merge(other *Config) error {
	if other == nil {
		return nil
	}
	merged := Config{FullName: c.FullName, Sites: append([]SiteEntry(nil), c.Sites...)}
	if other.FullName != "" {
		if merged.FullName != "" && merged.FullName != other.FullName {
			return fmt.Errorf("%w: full names %q and %q differ", ErrConflict, merged.FullName, other.FullName)
		}
		merged.FullName = other.FullName
	}
	for _, site := range other.Sites {
		i := merged.index(site.Name)
		if i < 0 {
			merged.Sites = append(merged.Sites, site)
			continue
		}
		combined, err := mergeSite(merged.Sites[i], site)
		if err != nil {
			return err
		}
		merged.Sites[i] = combined
	}
	*c = merged
	return nil
}

func mergeSite(base, other SiteEntry) (SiteEntry, error) {
	if base.Encrypted != "" && other.Encrypted != "" {
		return SiteEntry{}, fmt.Errorf("%w: site %q has two encrypted secrets", ErrConflict, base.Name)
	}
	base.Type = prefer(base.Type, other.Type)
	base.Class = prefer(base.Class, other.Class)
	base.Counter = prefer(base.Counter, other.Counter)
	base.Variant = prefer(base.Variant, other.Variant)
	base.Context = prefer(base.Context, other.Context)
	base.Encrypted = prefer(base.Encrypted, other.Encrypted)
	if base.Encrypted != "" && base.Kind() != KindStored {
		return SiteEntry{}, fmt.Errorf("%w: generated site %q has an encrypted secret", ErrConflict, base.Name)
	}
	return base, nil
}

func prefer[T comparable](current, next T) T {
	var zero T
	if next != zero {
		return next
	}
	return current
}
