package app

import (
	"github.com/saylorsolutions/gompw/pkg/config"
	"github.com/spf13/cobra"
)

func (a *App) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Merge another configuration file into the configuration",
		Long: `Merges the sites of FILE into the configuration, preferring the values in FILE.
FILE may be TOML or YAML, so this also converts between the two formats.
Nothing is changed if the full names differ, or if both files store a secret for the same site.`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			other, err := config.Load(args[0])
			if err != nil {
				return err
			}
			cfg, path, err := a.loadConfig()
			if err != nil {
				return err
			}
			if err := a.adoptFullName(cfg); err != nil {
				return err
			}
			if err := cfg.Merge(other); err != nil {
				return err
			}
			if err := cfg.Save(path); err != nil {
				return err
			}
			a.log.Infof("Imported %d site(s) from %s into %s", len(other.Sites), args[0], path)
			return nil
		},
	}
}
