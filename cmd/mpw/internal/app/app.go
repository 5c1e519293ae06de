// Package app is the command tree of the mpw executable.
package app

import (
	"io"

	"github.com/saylorsolutions/gompw/cmd/internal"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

// App holds the streams and state of one invocation.
type App struct {
	// Version is reported by --version.
	Version string

	in     io.Reader
	out    io.Writer
	errOut io.Writer
	prompt Prompter
	log    internal.Logger
	opts   options
}

// New creates an App reading input from in, writing results to out, and everything else to errOut.
func New(in io.Reader, out, errOut io.Writer) *App {
	return &App{
		Version: "dev",
		in:      in,
		out:     out,
		errOut:  errOut,
		prompt:  NewPrompter(in, errOut),
		log:     internal.Logger{Out: errOut},
	}
}

// Run executes the command line in args, not including the program name.
func (a *App) Run(args []string) error {
	root := a.rootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	return root.Execute()
}

type options struct {
	fullName   string
	class      string
	counter    uint32
	variant    string
	context    string
	configPath string
	algorithm  string
	verbose    bool
	debug      bool
}

func (o *options) bindFlags(flags *flag.FlagSet) {
	flags.StringVarP(&o.fullName, "full-name", "u", "", "Full name of the user, overriding the configured one.")
	flags.StringVarP(&o.class, "type", "t", "", "Password type: maximum, long, medium, basic, short, pin, name, or phrase.")
	flags.Uint32VarP(&o.counter, "counter", "c", 1, "Site counter, increment it to get a new password for the same site.")
	flags.StringVarP(&o.variant, "variant", "v", "", "Password variant: password, login, or answer.")
	flags.StringVarP(&o.context, "context", "C", "", "Context to narrow the derivation, like the keyword of a security question.")
	flags.StringVarP(&o.configPath, "config", "f", "", "Path of the configuration file, TOML unless it ends in .yaml or .yml.")
	flags.StringVarP(&o.algorithm, "algorithm", "a", "", "Algorithm version to use, from 1 to 3. Defaults to the latest.")
	flags.BoolVar(&o.verbose, "verbose", false, "Enable verbose output.")
	flags.BoolVar(&o.debug, "debug", false, "Enable debug output.")
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(check cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := check(cmd, args); err != nil {
			return internal.Usagef("%w", err)
		}
		return nil
	}
}

func (a *App) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "mpw [SITE...]",
		Short: "Derive site passwords from a full name and a master password",
		Long: `mpw derives the password of each SITE from your full name and master password, so nothing needs to be synchronized.
When no SITE is given, every site in the configuration is shown.
Sites that were stored with "mpw store" are decrypted instead of generated.`,
		Version:       a.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.log.Verbose = a.opts.verbose
			a.log.Debug = a.opts.debug
			a.log.Debugf("Running %s with verbose=%t, debug=%t", cmd.CommandPath(), a.opts.verbose, a.opts.debug)
		},
		RunE: a.runShow,
	}
	a.opts.bindFlags(root.PersistentFlags())
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return internal.Usagef("%w", err)
	})
	root.AddCommand(
		a.addCommand(),
		a.storeCommand(),
		a.importCommand(),
		a.identiconCommand(),
	)
	return root
}
