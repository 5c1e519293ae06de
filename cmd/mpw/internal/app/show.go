package app

import (
	"fmt"

	"github.com/saylorsolutions/gompw/cmd/internal"
	"github.com/saylorsolutions/gompw/pkg/config"
	"github.com/spf13/cobra"
)

func (a *App) runShow(cmd *cobra.Command, args []string) error {
	cfg, _, err := a.loadConfig()
	if err != nil {
		return err
	}
	v, err := a.version()
	if err != nil {
		return err
	}
	fullName, err := a.fullName(cfg)
	if err != nil {
		return err
	}
	names := args
	if len(names) == 0 {
		for _, site := range cfg.Sites {
			names = append(names, site.Name)
		}
	}
	if len(names) == 0 {
		return internal.Usagef("no SITE given, and none are configured")
	}
	entries := make([]config.SiteEntry, len(names))
	for i, name := range names {
		if entries[i], err = a.siteEntry(cfg, cmd.Flags(), name); err != nil {
			return err
		}
	}

	key, err := a.unlock(fullName, v)
	if err != nil {
		return err
	}
	defer key.Wipe()

	for _, entry := range entries {
		password, err := sitePassword(key, entry)
		if err != nil {
			return fmt.Errorf("site %s: %w", entry.Name, err)
		}
		var label string
		if len(entries) > 1 {
			label = entry.Name
		}
		err = a.printSecret(label, password)
		password.Wipe()
		if err != nil {
			return err
		}
	}
	return nil
}
