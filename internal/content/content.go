// Package content is the static marketing copy: home page sections, the
// pricing table, FAQ and the premium feature list. Text is referenced by
// i18n key; numbers and proper names are not translated.
package content

import "fmt"

// Feature is a home page feature tile.
type Feature struct {
	Icon           string
	TitleKey       string
	DescriptionKey string
}

// Metric is a headline number with a translated label.
type Metric struct {
	Value    string
	LabelKey string
}

// Stat is a pricing page statistic.
type Stat struct {
	Value          string
	LabelKey       string
	DescriptionKey string
}

// Testimonial is a customer quote.
type Testimonial struct {
	QuoteKey    string
	Author      string
	PositionKey string
	Rating      int
	Mark        string
}

// FAQ is one question and answer.
type FAQ struct {
	QuestionKey string
	AnswerKey   string
}

// Plan is a pricing tier. Prices are whole US dollars per month; the
// annual price is the monthly equivalent when billed yearly.
type Plan struct {
	ID           string
	MonthlyPrice int
	AnnualPrice  int
	Popular      bool
}

// TitleKey returns the i18n key of the plan name.
func (p Plan) TitleKey() string { return p.key("title") }

// DescriptionKey returns the i18n key of the plan blurb.
func (p Plan) DescriptionKey() string { return p.key("description") }

// CTAKey returns the i18n key of the call to action.
func (p Plan) CTAKey() string { return p.key("cta") }

// FeaturesKey returns the i18n list key of the plan features.
func (p Plan) FeaturesKey() string { return p.key("features") }

func (p Plan) key(field string) string {
	return fmt.Sprintf("pricing.plans.%s.%s", p.ID, field)
}

// Price returns the per-month price for the chosen billing period.
func (p Plan) Price(annual bool) int {
	if annual {
		return p.AnnualPrice
	}
	return p.MonthlyPrice
}

// AnnualSavingsPercent is the discount for yearly billing, rounded down.
func (p Plan) AnnualSavingsPercent() int {
	if p.MonthlyPrice == 0 {
		return 0
	}
	return (p.MonthlyPrice - p.AnnualPrice) * 100 / p.MonthlyPrice
}

// Home page
var (
	Features = []Feature{
		{Icon: "⚡", TitleKey: "home.features.feature1.title", DescriptionKey: "home.features.feature1.description"},
		{Icon: "📊", TitleKey: "home.features.feature2.title", DescriptionKey: "home.features.feature2.description"},
		{Icon: "🔒", TitleKey: "home.features.feature3.title", DescriptionKey: "home.features.feature3.description"},
		{Icon: "🤝", TitleKey: "home.features.feature4.title", DescriptionKey: "home.features.feature4.description"},
	}

	DashboardMetrics = []Metric{
		{Value: "99.9%", LabelKey: "home.features.dashboard.uptime"},
		{Value: "14M+", LabelKey: "home.features.dashboard.dataPoints"},
		{Value: "30%", LabelKey: "home.features.dashboard.efficiency"},
	}

	Testimonials = []Testimonial{
		{QuoteKey: "home.testimonials.1.quote", Author: "Sarah Johnson", PositionKey: "home.testimonials.1.position", Rating: 5, Mark: "✦"},
		{QuoteKey: "home.testimonials.2.quote", Author: "Michael Chen", PositionKey: "home.testimonials.2.position", Rating: 5, Mark: "◆"},
		{QuoteKey: "home.testimonials.3.quote", Author: "Emma Rodriguez", PositionKey: "home.testimonials.3.position", Rating: 5, Mark: "⬢"},
	}
)

// Pricing page
var (
	Plans = []Plan{
		{ID: "basic", MonthlyPrice: 29, AnnualPrice: 23},
		{ID: "pro", MonthlyPrice: 79, AnnualPrice: 63, Popular: true},
		{ID: "enterprise", MonthlyPrice: 199, AnnualPrice: 159},
	}

	Stats = []Stat{
		{Value: "100+", LabelKey: "pricing.stats.countries", DescriptionKey: "pricing.stats.global"},
		{Value: "99.9%", LabelKey: "pricing.stats.uptime", DescriptionKey: "pricing.stats.reliable"},
		{Value: "15+", LabelKey: "pricing.stats.awards", DescriptionKey: "pricing.stats.recognized"},
		{Value: "10k+", LabelKey: "pricing.stats.customers", DescriptionKey: "pricing.stats.trusted"},
	}

	FAQs = []FAQ{
		{QuestionKey: "pricing.faq.q1", AnswerKey: "pricing.faq.a1"},
		{QuestionKey: "pricing.faq.q2", AnswerKey: "pricing.faq.a2"},
		{QuestionKey: "pricing.faq.q3", AnswerKey: "pricing.faq.a3"},
		{QuestionKey: "pricing.faq.q4", AnswerKey: "pricing.faq.a4"},
		{QuestionKey: "pricing.faq.q5", AnswerKey: "pricing.faq.a5"},
	}

	Companies = []string{"Company A", "Company B", "Company C", "Company D", "Company E", "Company F"}
)

// Premium area
var (
	PremiumFeatureKeys = []string{
		"premium.features.analytics",
		"premium.features.reports",
		"premium.features.integrations",
		"premium.features.support",
		"premium.features.storage",
		"premium.features.customization",
	}

	PremiumMetrics = []Metric{
		{Value: "87%", LabelKey: "premium.demo.efficiency"},
		{Value: "12.3k", LabelKey: "premium.demo.dataPoints"},
	}
)

// PlanByID looks up a pricing tier.
func PlanByID(id string) (Plan, bool) {
	for _, p := range Plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Keys returns every i18n key referenced by the content, for checking that
// the translation tables are complete.
func Keys() []string {
	var keys []string
	for _, f := range Features {
		keys = append(keys, f.TitleKey, f.DescriptionKey)
	}
	for _, m := range DashboardMetrics {
		keys = append(keys, m.LabelKey)
	}
	for _, t := range Testimonials {
		keys = append(keys, t.QuoteKey, t.PositionKey)
	}
	for _, p := range Plans {
		keys = append(keys, p.TitleKey(), p.DescriptionKey(), p.CTAKey(), p.FeaturesKey())
	}
	for _, s := range Stats {
		keys = append(keys, s.LabelKey, s.DescriptionKey)
	}
	for _, f := range FAQs {
		keys = append(keys, f.QuestionKey, f.AnswerKey)
	}
	keys = append(keys, PremiumFeatureKeys...)
	for _, m := range PremiumMetrics {
		keys = append(keys, m.LabelKey)
	}
	return keys
}
