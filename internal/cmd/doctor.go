package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/api"
	"github.com/felixgeelhaar/accountctl/internal/health"
	"github.com/felixgeelhaar/accountctl/internal/session"
)

type doctorData struct {
	Status health.Status    `json:"status" yaml:"status"`
	Checks []*health.Result `json:"checks" yaml:"checks"`
}

func newDoctorCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check configuration, storage, API and session",
		Long: `Run diagnostics: whether the config file is in use, the home directory
is writable, the API answers and the stored session is still accepted.

Degraded checks leave commands working; an unhealthy check explains why
a command fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			results := app.doctor(timeout).Check(app.ctx)
			data := doctorData{Status: health.OverallStatus(results), Checks: results}
			for _, r := range results {
				app.Logger.Debug("health check", "name", r.Name, "status", r.Status, "latency", r.Latency)
			}
			return app.output(data, func() string { return app.renderDoctor(data) })
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", health.DefaultTimeout, "timeout for each check")
	return cmd
}

func (a *App) doctor(timeout time.Duration) *health.Manager {
	cfg := a.Config.Config

	probe := health.NewHTTPChecker("api", cfg.API.URL, a.env.HTTPClient)
	if cfg.API.Key != "" {
		probe.WithHeader(api.HeaderAPIKey, cfg.API.Key)
	}

	m := health.NewManager().WithTimeout(timeout)
	m.AddChecker(health.NewConfigChecker(a.Config.Path))
	m.AddChecker(health.NewStorageChecker(a.storage, a.Config.Home))
	m.AddChecker(probe)
	m.AddChecker(health.NewCheckFunc("session", a.checkSession))
	return m
}

// checkSession validates the stored token. A rejected token is cleared,
// exactly as any protected command would.
func (a *App) checkSession(ctx context.Context) *health.Result {
	err := a.Session.Init(ctx)
	snap := a.Session.Snapshot()
	switch {
	case snap.IsAuthenticated:
		r := health.Healthy("logged in as " + snap.User.Email)
		if exp, ok := a.Session.TokenExpiry(); ok {
			r.WithDetail("token_expires_at", exp.Format(time.RFC3339))
		}
		return r
	case err != nil && snap.State == session.Anonymous && snap.Error != "":
		return health.Degraded(snap.Error).WithDetail("error", err.Error())
	case err != nil:
		return health.Unhealthy("session check failed").WithDetail("error", err.Error())
	default:
		return health.Degraded("not logged in")
	}
}

func (a *App) renderDoctor(data doctorData) string {
	s := a.Styles
	var b strings.Builder
	for _, r := range data.Checks {
		icon := s.Success.Render("✓")
		switch r.Status {
		case health.StatusDegraded:
			icon = s.Warning.Render("!")
		case health.StatusUnhealthy:
			icon = s.Error.Render("✗")
		}
		fmt.Fprintf(&b, "%s %-8s %s", icon, r.Name, r.Message)
		if path, ok := r.Details["path"]; ok {
			b.WriteString(s.Muted.Render(fmt.Sprintf(" (%v)", path)))
		}
		if msg, ok := r.Details["error"]; ok && r.Status != health.StatusHealthy {
			b.WriteString("\n           " + s.Muted.Render(fmt.Sprint(msg)))
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nOverall: %s", data.Status)
	return b.String()
}
