package cmd

import (
	"context"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/browser"
	"github.com/felixgeelhaar/accountctl/internal/tui"
	"github.com/felixgeelhaar/accountctl/internal/ux"
)

// Env is everything a command touches outside the process: streams,
// terminal detection, the browser and the network.
type Env struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Interactive reports whether forms may be shown.
	Interactive func() bool
	// DarkBackground overrides terminal background detection.
	DarkBackground func() bool
	// OpenURL overrides the system browser launcher.
	OpenURL browser.Opener
	// HTTPClient overrides the API transport.
	HTTPClient *http.Client
	// Getenv reads the process environment.
	Getenv func(string) string
}

// DefaultEnv is the real terminal.
func DefaultEnv() Env {
	return Env{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Interactive: tui.ShouldPrompt,
		Getenv:      os.Getenv,
	}
}

func (e *Env) fill() {
	d := DefaultEnv()
	if e.In == nil {
		e.In = d.In
	}
	if e.Out == nil {
		e.Out = d.Out
	}
	if e.Err == nil {
		e.Err = d.Err
	}
	if e.Interactive == nil {
		e.Interactive = d.Interactive
	}
	if e.Getenv == nil {
		e.Getenv = d.Getenv
	}
}

// NewRootCommand builds the accountctl command tree.
func NewRootCommand(env Env) *cobra.Command {
	root, _ := newRoot(env)
	return root
}

// runner owns the App of one execution.
type runner struct {
	env Env
	app *App
}

func (r *runner) close(err error) {
	if r.app != nil {
		r.app.Close(err)
		r.app = nil
	}
}

func newRoot(env Env) (*cobra.Command, *runner) {
	env.fill()
	r := &runner{env: env}

	rootCmd := &cobra.Command{
		Use:   "accountctl",
		Short: "Account, billing and product pages for the SaaS platform",
		Long: `accountctl is the terminal client for the SaaS platform. It shows the
product and pricing pages, signs you in, and manages your profile,
preferences and Stripe subscription.

Forms are shown when a required flag is missing and the terminal is
interactive; in scripts pass every value as a flag.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[annotationNoApp] == "true" {
				return nil
			}
			cc, err := NewCommandContext(cmd)
			if err != nil {
				return err
			}
			app, err := newApp(cmd.Context(), cc, r.env, cmd.CommandPath())
			if err != nil {
				return err
			}
			r.app = app
			cmd.SetContext(withApp(app.ctx, app))
			return nil
		},
	}
	rootCmd.SetFlagErrorFunc(flagError)
	rootCmd.SetIn(env.In)
	rootCmd.SetOut(env.Out)
	rootCmd.SetErr(env.Err)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default is $ACCOUNTCTL_HOME/config.yaml)")
	flags.String("home", "", "accountctl home directory (default is ~/.accountctl)")
	flags.StringP("format", "f", ux.FormatText, "output format: text, json or yaml")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "", "log level: debug, info, warn or error")
	flags.String("lang", "", "interface language: en or pl")
	flags.String("theme", "", "color theme: light or dark")

	rootCmd.AddCommand(
		newHomeCmd(),
		newPricingCmd(),
		newAuthCmd(),
		newProfileCmd(),
		newSubscriptionCmd(),
		newPremiumCmd(),
		newPrefsCmd(),
		newConfigCmd(),
		newDoctorCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return rootCmd, r
}

// Run executes args against a fresh command tree and releases what the
// command opened, also when it failed.
func Run(ctx context.Context, env Env, args []string) error {
	root, r := newRoot(env)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	r.close(err)
	return err
}

// ExecuteContext runs the root command with the process arguments.
func ExecuteContext(ctx context.Context) error {
	return Run(ctx, DefaultEnv(), os.Args[1:])
}
