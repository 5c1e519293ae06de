package app

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/saylorsolutions/gompw/cmd/internal"
	"github.com/saylorsolutions/gompw/pkg/config"
	"github.com/saylorsolutions/gompw/pkg/mpw"
	"github.com/saylorsolutions/gompw/pkg/secret"
	"github.com/saylorsolutions/gompw/pkg/vault"
	flag "github.com/spf13/pflag"
	"golang.org/x/term"
)

var identiconColors = map[mpw.Color]color.Attribute{
	mpw.ColorRed:     color.FgRed,
	mpw.ColorGreen:   color.FgGreen,
	mpw.ColorYellow:  color.FgYellow,
	mpw.ColorBlue:    color.FgBlue,
	mpw.ColorMagenta: color.FgMagenta,
	mpw.ColorCyan:    color.FgCyan,
	mpw.ColorWhite:   color.FgWhite,
}

func paintIdenticon(icon mpw.Identicon) string {
	return color.New(identiconColors[icon.Color]).Sprint(icon.String())
}

// configPath returns the configuration file to use, which may not exist.
func (a *App) configPath() (string, error) {
	if a.opts.configPath != "" {
		return a.opts.configPath, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", fmt.Errorf("failed to locate the configuration directory: %w", err)
	}
	return path, nil
}

// loadConfig loads the configuration, or returns an empty one if the file doesn't exist yet.
func (a *App) loadConfig() (*config.Config, string, error) {
	path, err := a.configPath()
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			a.log.Debugf("No configuration found at %s", path)
			return new(config.Config), path, nil
		}
		return nil, "", err
	}
	a.log.Debugf("Loaded %d site(s) from %s", len(cfg.Sites), path)
	return cfg, path, nil
}

func (a *App) version() (mpw.Version, error) {
	v, err := mpw.ParseVersion(a.opts.algorithm)
	if err != nil {
		return 0, internal.Usagef("invalid --algorithm: %w", err)
	}
	return v, nil
}

func (a *App) fullName(cfg *config.Config) (string, error) {
	switch {
	case a.opts.fullName != "":
		return a.opts.fullName, nil
	case cfg.FullName != "":
		return cfg.FullName, nil
	default:
		return "", internal.Usagef("a full name is required, pass --full-name or set full_name in the configuration")
	}
}

// adoptFullName records the --full-name flag in cfg before it's saved.
func (a *App) adoptFullName(cfg *config.Config) error {
	if a.opts.fullName == "" {
		return nil
	}
	if cfg.FullName != "" && cfg.FullName != a.opts.fullName {
		return fmt.Errorf("%w: configuration belongs to %q", config.ErrConflict, cfg.FullName)
	}
	cfg.FullName = a.opts.fullName
	return nil
}

// siteEntry returns the configured entry for name, or a new generated one, with any site flags applied.
func (a *App) siteEntry(cfg *config.Config, flags *flag.FlagSet, name string) (config.SiteEntry, error) {
	entry, ok := cfg.Find(name)
	if !ok {
		entry = config.SiteEntry{Name: name}
	}
	if flags.Changed("type") {
		class, err := mpw.ParseClass(a.opts.class)
		if err != nil {
			return entry, internal.Usagef("invalid --type: %w", err)
		}
		entry.Class = class.String()
	}
	if flags.Changed("counter") {
		entry.SetCounter(a.opts.counter)
	}
	if flags.Changed("variant") {
		purpose, err := mpw.ParsePurpose(a.opts.variant)
		if err != nil {
			return entry, internal.Usagef("invalid --variant: %w", err)
		}
		entry.Variant = ""
		if purpose != mpw.Authentication {
			entry.Variant = purpose.String()
		}
	}
	if flags.Changed("context") {
		entry.Context = a.opts.context
	}
	return entry, nil
}

func (a *App) readMasterPassword() ([]byte, error) {
	password, err := a.prompt.ReadSecret("Master password: ")
	if err != nil {
		return nil, fmt.Errorf("failed to read master password: %w", err)
	}
	if len(password) == 0 {
		return nil, internal.Usagef("a master password is required")
	}
	return password, nil
}

// unlock prompts for the master password, shows its identicon, and stretches it into a key.
func (a *App) unlock(fullName string, v mpw.Version) (*mpw.MasterKey, error) {
	password, err := a.readMasterPassword()
	if err != nil {
		return nil, err
	}
	icon, err := mpw.NewIdenticon([]byte(fullName), password, v)
	if err != nil {
		secret.Wipe(password)
		return nil, err
	}
	_, _ = fmt.Fprintf(a.errOut, "%s %s\n", fullName, paintIdenticon(icon))

	stop := a.startSpinner("Stretching master password")
	key, err := mpw.NewMasterKey([]byte(fullName), password, v)
	stop()
	if err != nil {
		return nil, err
	}
	a.log.Debugf("Derived %s master key %s", v, key.ID())
	return key, nil
}

// startSpinner shows a spinner if errOut is a terminal.
func (a *App) startSpinner(msg string) (stop func()) {
	f, ok := a.errOut.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		a.log.Infof("%s", msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(f))
	s.Suffix = " " + msg
	s.Start()
	return s.Stop
}

// sitePassword generates the password of a generated site, or decrypts the secret of a stored one.
func sitePassword(key *mpw.MasterKey, entry config.SiteEntry) (secret.Buffer, error) {
	if entry.IsStored() {
		bundle, err := entry.Bundle()
		if err != nil {
			return nil, err
		}
		return vault.Open(key, entry.Name, bundle)
	}
	site, err := entry.Site()
	if err != nil {
		return nil, err
	}
	return key.Password(site)
}

func (a *App) printSecret(label string, value []byte) error {
	if label != "" {
		if _, err := fmt.Fprintf(a.out, "%s: ", label); err != nil {
			return err
		}
	}
	if _, err := a.out.Write(value); err != nil {
		return err
	}
	_, err := fmt.Fprintln(a.out)
	return err
}
