package app

import (
	"fmt"

	"github.com/saylorsolutions/gompw/cmd/internal"
	"github.com/saylorsolutions/gompw/pkg/mpw"
	"github.com/saylorsolutions/gompw/pkg/secret"
	"github.com/saylorsolutions/gompw/pkg/vault"
	"github.com/spf13/cobra"
)

func (a *App) storeCommand() *cobra.Command {
	var generate bool
	cmd := &cobra.Command{
		Use:   "store SITE",
		Short: "Encrypt a secret for SITE into the configuration",
		Long: `Prompts for a secret and stores it encrypted under a key derived from the master password.
This is for sites where the password can't be changed to a generated one.
With --generate, a random password of the --type class is stored and printed instead.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runStore(cmd, args[0], generate)
		},
	}
	cmd.Flags().BoolVarP(&generate, "generate", "g", false, "Store a random password instead of prompting for one.")
	return cmd
}

func (a *App) runStore(cmd *cobra.Command, name string, generate bool) error {
	cfg, path, err := a.loadConfig()
	if err != nil {
		return err
	}
	if err := a.adoptFullName(cfg); err != nil {
		return err
	}
	fullName, err := a.fullName(cfg)
	if err != nil {
		return err
	}
	v, err := a.version()
	if err != nil {
		return err
	}
	entry, err := a.siteEntry(cfg, cmd.Flags(), name)
	if err != nil {
		return err
	}
	class := mpw.ClassLong
	if entry.Class != "" {
		if class, err = mpw.ParseClass(entry.Class); err != nil {
			return err
		}
	}

	key, err := a.unlock(fullName, v)
	if err != nil {
		return err
	}
	defer key.Wipe()

	var plaintext secret.Buffer
	if generate {
		plaintext, err = mpw.RandomPassword(class, v)
		if err != nil {
			return err
		}
	} else {
		input, err := a.prompt.ReadSecret(fmt.Sprintf("Secret for %s: ", name))
		if err != nil {
			return fmt.Errorf("failed to read secret: %w", err)
		}
		plaintext = input
	}
	defer plaintext.Wipe()
	if len(plaintext) == 0 {
		return internal.Usagef("%w", vault.ErrEmptySecret)
	}

	bundle, err := vault.Seal(key, name, plaintext)
	if err != nil {
		return err
	}
	if err := entry.SetBundle(bundle); err != nil {
		return err
	}
	if err := cfg.Put(entry); err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	a.log.Infof("Stored secret for %s in %s", name, path)
	if generate {
		return a.printSecret("", plaintext)
	}
	return nil
}
