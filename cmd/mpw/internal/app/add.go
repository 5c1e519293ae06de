package app

import (
	"github.com/saylorsolutions/gompw/pkg/config"
	"github.com/spf13/cobra"
)

func (a *App) addCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add SITE...",
		Short: "Add generated sites to the configuration",
		Long: `Adds each SITE to the configuration with the current --type, --counter, --variant, and --context.
The master password isn't needed, since nothing is derived until the site is shown.`,
		Args: usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err := a.adoptFullName(cfg); err != nil {
				return err
			}
			for _, name := range args {
				entry, err := a.siteEntry(new(config.Config), cmd.Flags(), name)
				if err != nil {
					return err
				}
				if err := cfg.Add(entry); err != nil {
					return err
				}
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			a.log.Infof("Added %d site(s) to %s", len(args), path)
			return nil
		},
	}
}
