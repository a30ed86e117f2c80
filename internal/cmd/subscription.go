package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/tui"
)

func newSubscriptionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "subscription",
		Aliases: []string{"sub", "billing"},
		Short:   "Manage your subscription",
		Long: `Show the subscription status, start a checkout or a free trial, and open
the Stripe billing portal.

Checkout and the billing portal open in your browser. When you finish or
abandon a checkout, 'accountctl subscription success' and
'accountctl subscription cancel' show the matching page.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			st, err := app.Subscriptions.Status(app.ctx)
			if err != nil {
				return err
			}
			return app.output(st, func() string { return app.Renderer.SubscriptionManagement(st) })
		},
	}

	cmd.AddCommand(
		newSubscriptionStatusCmd(),
		newCheckoutCmd(),
		newPortalCmd(),
		newTrialCmd(),
		newCheckoutResultCmd("success", "Show the page for a completed checkout", true),
		newCheckoutResultCmd("cancel", "Show the page for an abandoned checkout", false),
	)
	return cmd
}

func newSubscriptionStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current subscription",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			st, err := app.Subscriptions.Status(app.ctx)
			if err != nil {
				return err
			}
			return app.output(st, func() string { return app.Renderer.SubscriptionStatus(st) })
		},
	}
}

type redirectData struct {
	URL    string `json:"url" yaml:"url"`
	Opened bool   `json:"opened" yaml:"opened"`
}

func newCheckoutCmd() *cobra.Command {
	var (
		plan      string
		noBrowser bool
	)

	cmd := &cobra.Command{
		Use:   "checkout",
		Short: "Subscribe to a monthly or yearly plan",
		Example: `  accountctl subscription checkout --plan monthly
  accountctl subscription checkout --plan yearly --no-browser`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}

			if plan == "" && app.Interactive() {
				picked, err := tui.PromptForSelect(app.ctx, app.Tr.T("subscription.title"), []tui.Option{
					{Label: app.Tr.T("subscription.subscribeMonthly"), Value: string(domain.PlanMonthly)},
					{Label: app.Tr.T("subscription.subscribeYearly"), Value: string(domain.PlanYearly)},
				})
				if err != nil {
					return err
				}
				plan = picked
			}
			p, err := domain.NewPlan(plan)
			if err != nil {
				return errors.NewInvalidChoiceError("plan", plan, string(domain.PlanMonthly), string(domain.PlanYearly))
			}

			if p == domain.PlanYearly {
				app.say("subscription.checkoutLoadingYearly")
			} else {
				app.say("subscription.checkoutLoading")
			}
			site := app.Config.Config.Site
			url, err := app.Subscriptions.Checkout(app.ctx, p, site.CheckoutSuccessURL(), site.CheckoutCancelURL())
			if err != nil {
				return err
			}
			return app.redirect(url, noBrowser)
		},
	}
	cmd.Flags().StringVar(&plan, "plan", "", "billing plan: monthly or yearly")
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "print the checkout URL without opening a browser")
	return cmd
}

func newPortalCmd() *cobra.Command {
	var noBrowser bool

	cmd := &cobra.Command{
		Use:   "portal",
		Short: "Open the Stripe billing portal",
		Long: `Open the Stripe billing portal, where you can update payment methods,
download invoices and change or cancel the plan.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			app.say("subscription.loading")
			url, err := app.Subscriptions.BillingPortal(app.ctx, app.Config.Config.Site.PortalReturnURL())
			if err != nil {
				return err
			}
			return app.redirect(url, noBrowser)
		},
	}
	cmd.Flags().BoolVar(&noBrowser, "no-browser", false, "print the portal URL without opening a browser")
	return cmd
}

// redirect sends the user to a Stripe page. A failed launch is not an
// error since the URL is printed for manual use.
func (a *App) redirect(url string, noBrowser bool) error {
	data := redirectData{URL: url}
	if noBrowser {
		return a.output(data, func() string { return url })
	}

	a.say("subscription.openingBrowser", url)
	err := a.Browser.Open(a.ctx, url)
	switch {
	case err == nil:
		data.Opened = true
	case errors.HasPrefix(err, "VAL"):
		return err
	default:
		a.say("subscription.openManually", url)
	}

	if a.structured() {
		return a.output(data, nil)
	}
	return nil
}

type trialData struct {
	Success bool   `json:"success" yaml:"success"`
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

func newTrialCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "trial",
		Short: "Start a free trial",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			if _, err := app.requireAuth(); err != nil {
				return err
			}
			app.say("subscription.trialLoading")
			res, err := app.Subscriptions.StartTrial(app.ctx)
			if err != nil {
				return err
			}
			if !app.structured() {
				return nil
			}
			return app.output(trialData{Success: res.Success, Message: res.Message}, nil)
		},
	}
}

type checkoutResultData struct {
	Success bool   `json:"success" yaml:"success"`
	Title   string `json:"title" yaml:"title"`
	Message string `json:"message" yaml:"message"`
}

func newCheckoutResultCmd(use, short string, success bool) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			page := "subscription." + use
			data := checkoutResultData{
				Success: success,
				Title:   app.Tr.T(page + ".title"),
				Message: app.Tr.T(page + ".message"),
			}
			return app.output(data, func() string { return app.Renderer.CheckoutResult(success) })
		},
	}
}
