package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "View or edit accountctl configuration",
		Long: `Manage the configuration stored at ~/.accountctl/config.yaml.

Every key can also be set through the environment with the ACCOUNTCTL_
prefix, dots replaced by underscores (ACCOUNTCTL_API_URL for api.url).
Environment values win over the file.`,
		Example: `  accountctl config view
  accountctl config get api.url
  accountctl config set api.url https://api.example.com
  accountctl config path`,
	}

	cmd.AddCommand(
		newConfigViewCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigPathCmd(),
	)
	return cmd
}

type configView struct {
	path     string
	settings map[string]any
}

func (v configView) RenderText() string {
	keys := make([]string, 0, len(v.settings))
	for k := range v.settings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	fmt.Fprintf(&b, "Configuration file: %s\n\n", v.path)
	for _, k := range keys {
		fmt.Fprintf(&b, "%-24s %v\n", k, v.settings[k])
	}
	return strings.TrimRight(b.String(), "\n")
}

func newConfigViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Display the effective configuration",
		Long:  "Display every setting after defaults, the config file and the environment are merged. Secrets are masked.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			view := configView{path: app.Config.Path, settings: app.Config.View()}
			return app.output(view.settings, view.RenderText)
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "get <key>",
		Short:     "Print one configuration value",
		Args:      cobra.ExactArgs(1),
		ValidArgs: config.Keys(),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			value, err := app.Config.Get(args[0])
			if err != nil {
				return err
			}
			return app.output(map[string]any{args[0]: value}, func() string {
				return fmt.Sprint(value)
			})
		},
	}
}

// Set and path run before the App is built so that a broken config file
// can still be repaired.
func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "set <key> <value>",
		Short:       "Write one configuration value to the config file",
		Args:        cobra.ExactArgs(2),
		ValidArgs:   config.Keys(),
		Annotations: map[string]string{annotationNoApp: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := configPaths(cmd)
			if err != nil {
				return err
			}
			if err := config.Set(path, args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

func newConfigPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "path",
		Short:       "Show the configuration file path",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoApp: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			_, path, err := configPaths(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
}

func configPaths(cmd *cobra.Command) (home, path string, err error) {
	cc, err := NewCommandContext(cmd)
	if err != nil {
		return "", "", err
	}
	return config.Options{Home: cc.Home, File: cc.ConfigFile}.Resolve()
}
