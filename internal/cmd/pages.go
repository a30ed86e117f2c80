package cmd

import (
	"github.com/spf13/cobra"

	"github.com/felixgeelhaar/accountctl/internal/content"
	"github.com/felixgeelhaar/accountctl/internal/i18n"
)

type featureData struct {
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type metricData struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

type testimonialData struct {
	Author   string `json:"author" yaml:"author"`
	Position string `json:"position" yaml:"position"`
	Quote    string `json:"quote" yaml:"quote"`
	Rating   int    `json:"rating" yaml:"rating"`
}

type homeData struct {
	Title        string            `json:"title" yaml:"title"`
	Subtitle     string            `json:"subtitle" yaml:"subtitle"`
	Features     []featureData     `json:"features" yaml:"features"`
	Metrics      []metricData      `json:"metrics" yaml:"metrics"`
	Testimonials []testimonialData `json:"testimonials" yaml:"testimonials"`
}

type planData struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Price       int      `json:"price" yaml:"price"`
	Currency    string   `json:"currency" yaml:"currency"`
	Billing     string   `json:"billing" yaml:"billing"`
	Popular     bool     `json:"popular" yaml:"popular"`
	Features    []string `json:"features" yaml:"features"`
}

type faqData struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

type pricingData struct {
	Annual bool         `json:"annual" yaml:"annual"`
	Plans  []planData   `json:"plans" yaml:"plans"`
	Stats  []metricData `json:"stats" yaml:"stats"`
	FAQ    []faqData    `json:"faq" yaml:"faq"`
}

func newHomeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Show the product overview",
		Long:  `Show the product overview: features, the analytics dashboard, customer testimonials and how to get started.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			return app.output(buildHome(app.Tr), app.Renderer.Home)
		},
	}
}

func buildHome(tr *i18n.Translator) homeData {
	data := homeData{
		Title:    tr.T("home.hero.title"),
		Subtitle: tr.T("home.hero.subtitle"),
	}
	for _, f := range content.Features {
		data.Features = append(data.Features, featureData{Title: tr.T(f.TitleKey), Description: tr.T(f.DescriptionKey)})
	}
	for _, m := range content.DashboardMetrics {
		data.Metrics = append(data.Metrics, metricData{Value: m.Value, Label: tr.T(m.LabelKey)})
	}
	for _, t := range content.Testimonials {
		data.Testimonials = append(data.Testimonials, testimonialData{
			Author:   t.Author,
			Position: tr.T(t.PositionKey),
			Quote:    tr.T(t.QuoteKey),
			Rating:   t.Rating,
		})
	}
	return data
}

func newPricingCmd() *cobra.Command {
	var annual bool

	cmd := &cobra.Command{
		Use:   "pricing",
		Short: "Show plans and prices",
		Long: `Show the Basic, Professional and Enterprise plans with their features,
followed by company statistics and the pricing FAQ.

Prices are per month. With --annual the discounted monthly price for
yearly billing is shown.`,
		Example: `  accountctl pricing
  accountctl pricing --annual --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := appFrom(cmd.Context())
			return app.output(buildPricing(app.Tr, annual), func() string {
				return app.Renderer.Pricing(annual)
			})
		},
	}
	cmd.Flags().BoolVar(&annual, "annual", false, "show prices for yearly billing")
	return cmd
}

func buildPricing(tr *i18n.Translator, annual bool) pricingData {
	billing := "monthly"
	if annual {
		billing = "annual"
	}

	data := pricingData{Annual: annual}
	for _, p := range content.Plans {
		data.Plans = append(data.Plans, planData{
			ID:          p.ID,
			Title:       tr.T(p.TitleKey()),
			Description: tr.T(p.DescriptionKey()),
			Price:       p.Price(annual),
			Currency:    "USD",
			Billing:     billing,
			Popular:     p.Popular,
			Features:    tr.L(p.FeaturesKey()),
		})
	}
	for _, s := range content.Stats {
		data.Stats = append(data.Stats, metricData{Value: s.Value, Label: tr.T(s.LabelKey)})
	}
	for _, f := range content.FAQs {
		data.FAQ = append(data.FAQ, faqData{Question: tr.T(f.QuestionKey), Answer: tr.T(f.AnswerKey)})
	}
	return data
}
