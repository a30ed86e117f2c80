package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/content"
	"github.com/felixgeelhaar/accountctl/internal/domain"
)

type premiumData struct {
	HasAccess bool          `json:"has_access" yaml:"has_access"`
	Status    domain.Status `json:"status" yaml:"status"`
	Features  []string      `json:"features" yaml:"features"`
}

func newPremiumCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "premium",
		Short: "Show premium features",
		Long: `Show the premium area. It is unlocked by an active subscription or a
running trial; otherwise the upgrade options are listed.`,
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

			data := premiumData{HasAccess: st.HasPremium(), Status: st.Status, Features: []string{}}
			if data.HasAccess {
				for _, key := range content.PremiumFeatureKeys {
					data.Features = append(data.Features, app.Tr.T(key))
				}
			}
			return app.output(data, func() string { return app.Renderer.Premium(st) })
		},
	}
}
