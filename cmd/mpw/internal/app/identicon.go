package app

import (
	"fmt"

	"github.com/saylorsolutions/gompw/pkg/mpw"
	"github.com/saylorsolutions/gompw/pkg/secret"
	"github.com/spf13/cobra"
)

func (a *App) identiconCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "identicon",
		Short: "Show the identicon of a full name and master password",
		Long: `Prints the identicon without stretching the master password.
A typo in the full name or master password shows a different identicon, so it's worth remembering yours.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.loadConfig()
			if err != nil {
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
			password, err := a.readMasterPassword()
			if err != nil {
				return err
			}
			defer secret.Wipe(password)
			icon, err := mpw.NewIdenticon([]byte(fullName), password, v)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, paintIdenticon(icon))
			return err
		},
	}
}
