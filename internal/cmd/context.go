package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandContext is the parsed set of persistent flags. Commands get it
// from NewCommandContext rather than package variables, so each tree built
// by newRoot is independent and tests can run several side by side.
type CommandContext struct {
	Format  string
	NoColor bool

	Lang  string
	Theme string

	Home       string
	ConfigFile string
	LogLevel   string
}

// flagReader keeps the first lookup error so NewCommandContext can read
// every flag and check once.
type flagReader struct {
	flags *pflag.FlagSet
	err   error
}

func (r *flagReader) str(name string) string {
	if r.err != nil {
		return ""
	}
	v, err := r.flags.GetString(name)
	r.err = err
	return v
}

func (r *flagReader) boolean(name string) bool {
	if r.err != nil {
		return false
	}
	v, err := r.flags.GetBool(name)
	r.err = err
	return v
}

func NewCommandContext(cmd *cobra.Command) (*CommandContext, error) {
	r := &flagReader{flags: cmd.Flags()}
	cc := &CommandContext{
		Format:     r.str("format"),
		NoColor:    r.boolean("no-color"),
		Lang:       r.str("lang"),
		Theme:      r.str("theme"),
		Home:       r.str("home"),
		ConfigFile: r.str("config"),
		LogLevel:   r.str("log-level"),
	}
	if r.err != nil {
		return nil, r.err
	}
	return cc, nil
}
