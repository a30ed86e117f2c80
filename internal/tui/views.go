package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/felixgeelhaar/accountctl/internal/content"
	"github.com/felixgeelhaar/accountctl/internal/domain"
	"github.com/felixgeelhaar/accountctl/internal/i18n"
	"github.com/felixgeelhaar/accountctl/internal/theme"
)

// DateLayout is how dates are shown on every page.
const DateLayout = "2006-01-02"

// Renderer turns content and account data into terminal pages.
type Renderer struct {
	tr     *i18n.Translator
	styles theme.Styles
}

// NewRenderer creates a page renderer.
func NewRenderer(tr *i18n.Translator, styles theme.Styles) *Renderer {
	return &Renderer{tr: tr, styles: styles}
}

// Styles returns the active styles.
func (r *Renderer) Styles() theme.Styles {
	return r.styles
}

// Home renders the landing page: hero, features, dashboard metrics,
// testimonials and the closing call to action.
func (r *Renderer) Home() string {
	s := r.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(r.tr.T("home.hero.title")) + "\n")
	b.WriteString(s.Muted.Render(r.tr.T("home.hero.subtitle")) + "\n\n")
	b.WriteString(fmt.Sprintf("%s  %s\n", s.Warning.Render("★★★★★"), r.tr.T("home.hero.rating")))
	b.WriteString(r.tr.T("home.hero.customers") + "\n")
	b.WriteString(r.hint(r.tr.T("home.hero.cta"), "accountctl auth register"))
	b.WriteString("\n")

	b.WriteString(s.Muted.Render(r.tr.T("home.features.sectionTitle")) + "\n")
	b.WriteString(s.Subtitle.Render(r.tr.T("home.features.title")) + "\n")
	b.WriteString(r.tr.T("home.features.subtitle") + "\n\n")
	for _, f := range content.Features {
		b.WriteString(fmt.Sprintf("%s %s\n", f.Icon, s.Subtitle.Render(r.tr.T(f.TitleKey))))
		b.WriteString("   " + r.tr.T(f.DescriptionKey) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Muted.Render(r.tr.T("home.features.dashboard.title")) + "\n")
	b.WriteString(s.Subtitle.Render(r.tr.T("home.features.dashboard.heading")) + "\n")
	b.WriteString(r.tr.T("home.features.dashboard.description") + "\n\n")
	b.WriteString(r.metrics(content.DashboardMetrics) + "\n\n")

	b.WriteString(s.Subtitle.Render(r.tr.T("home.testimonials.title")) + "\n")
	b.WriteString(s.Muted.Render(r.tr.T("home.testimonials.subtitle")) + "\n\n")
	for _, t := range content.Testimonials {
		stars := strings.Repeat("★", t.Rating)
		b.WriteString(s.Card.Render(fmt.Sprintf("%s\n“%s”\n\n%s %s\n%s",
			s.Warning.Render(stars),
			r.tr.T(t.QuoteKey),
			t.Mark,
			s.Subtitle.Render(t.Author),
			s.Muted.Render(r.tr.T(t.PositionKey)),
		)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Highlighted.Render(fmt.Sprintf("%s\n%s\n\n%s  %s",
		s.Title.Render(r.tr.T("home.cta.title")),
		r.tr.T("home.cta.description"),
		s.Badge.Render(r.tr.T("home.cta.primaryBtn")),
		s.Muted.Render(r.tr.T("home.cta.secondaryBtn")),
	)) + "\n")
	b.WriteString(r.hint(r.tr.T("cta.getStarted"), "accountctl auth register"))

	return b.String()
}

// Pricing renders the pricing page with monthly or annual prices.
func (r *Renderer) Pricing(annual bool) string {
	s := r.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(r.tr.T("pricing.title")) + "\n")
	b.WriteString(s.Muted.Render(r.tr.T("pricing.subtitle")) + "\n\n")

	monthly, yearly := r.tr.T("pricing.monthly"), r.tr.T("pricing.annually")
	if annual {
		yearly = s.ActiveTab.Render(yearly)
	} else {
		monthly = s.ActiveTab.Render(monthly)
	}
	b.WriteString(fmt.Sprintf("%s | %s  %s\n\n", monthly, yearly, s.Success.Render(r.tr.T("pricing.save"))))

	for _, p := range content.Plans {
		b.WriteString(r.planCard(p, annual) + "\n")
	}
	b.WriteString("\n")

	stats := make([]string, 0, len(content.Stats))
	for _, st := range content.Stats {
		stats = append(stats, s.Card.Render(fmt.Sprintf("%s\n%s\n%s",
			s.Price.Render(st.Value),
			s.Subtitle.Render(r.tr.T(st.LabelKey)),
			s.Muted.Render(r.tr.T(st.DescriptionKey)),
		)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, stats...) + "\n\n")

	b.WriteString(s.Subtitle.Render(r.tr.T("pricing.faq.title")) + "\n")
	for _, f := range content.FAQs {
		b.WriteString("\n" + s.Text.Bold(true).Render(r.tr.T(f.QuestionKey)) + "\n")
		b.WriteString(r.tr.T(f.AnswerKey) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Muted.Render(r.tr.T("pricing.companies.trustedBy")) + "\n")
	b.WriteString(strings.Join(content.Companies, "  ·  ") + "\n")

	return b.String()
}

func (r *Renderer) planCard(p content.Plan, annual bool) string {
	s := r.styles
	var b strings.Builder

	title := s.Subtitle.Render(r.tr.T(p.TitleKey()))
	if p.Popular {
		title += "  " + s.Badge.Render(r.tr.T("pricing.plans.pro.popular"))
	}
	b.WriteString(title + "\n")
	b.WriteString(s.Muted.Render(r.tr.T(p.DescriptionKey())) + "\n\n")

	price := s.Price.Render(fmt.Sprintf("$%d", p.Price(annual))) + s.Muted.Render(r.tr.T("pricing.period"))
	if annual {
		price += " " + s.Muted.Render(r.tr.T("pricing.billedAnnually"))
	}
	b.WriteString(price + "\n\n")

	for _, feature := range r.tr.L(p.FeaturesKey()) {
		b.WriteString(s.Success.Render("✓") + " " + feature + "\n")
	}
	b.WriteString("\n" + s.Badge.Render(r.tr.T(p.CTAKey())))

	if p.Popular {
		return s.Highlighted.Render(b.String())
	}
	return s.Card.Render(b.String())
}

// SubscriptionStatus renders the status card. A nil or inactive status
// shows the "no subscription" notice.
func (r *Renderer) SubscriptionStatus(st *domain.SubscriptionStatus) string {
	s := r.styles
	if !st.HasSubscription() {
		return s.Muted.Render("ℹ "+r.tr.T("subscription.status.noSubscription")) + "\n"
	}

	var rows [][2]string
	rows = append(rows, [2]string{r.tr.T("subscription.status.status"), r.statusChip(st.Status)})
	if st.PlanName != "" {
		plan := st.PlanName
		if st.PlanInterval != "" {
			plan += " " + s.Muted.Render("("+r.tr.T("subscription.status."+string(st.PlanInterval)+"ly")+")")
		}
		rows = append(rows, [2]string{r.tr.T("subscription.status.plan"), plan})
	}
	if end := st.PeriodEnd(); !end.IsZero() {
		label := "subscription.status.renewsOn"
		if st.CancelAtPeriodEnd {
			label = "subscription.status.expiresOn"
		}
		rows = append(rows, [2]string{r.tr.T(label), end.Format(DateLayout)})
	}
	if trialEnd, ok := st.TrialEndsAt(); ok {
		rows = append(rows, [2]string{r.tr.T("subscription.status.trialEnds"), trialEnd.Format(DateLayout)})
	}

	var b strings.Builder
	b.WriteString(s.Subtitle.Render(r.tr.T("subscription.status.title")) + "\n")
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("%s %s\n", s.Muted.Render(fmt.Sprintf("%-16s", row[0]+":")), row[1]))
	}
	if st.CancelAtPeriodEnd {
		b.WriteString(s.Warning.Render("! "+r.tr.T("subscription.status.cancelAtPeriodEnd")) + "\n")
	}
	return s.Card.Render(strings.TrimRight(b.String(), "\n")) + "\n"
}

func (r *Renderer) statusChip(status domain.Status) string {
	label := r.tr.T("subscription.status." + string(status))
	switch status {
	case domain.StatusActive:
		return r.styles.Success.Render(label)
	case domain.StatusTrial:
		return r.styles.Title.Render(label)
	case domain.StatusPastDue:
		return r.styles.Warning.Render(label)
	case domain.StatusCancelled, domain.StatusInactive:
		return r.styles.Error.Render(label)
	default:
		return label
	}
}

// SubscriptionManagement renders the subscription tab: status card plus
// the actions available for it.
func (r *Renderer) SubscriptionManagement(st *domain.SubscriptionStatus) string {
	s := r.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(r.tr.T("subscription.title")) + "\n")
	b.WriteString(s.Muted.Render(r.tr.T("subscription.description")) + "\n\n")
	b.WriteString(r.SubscriptionStatus(st) + "\n")

	if st.HasSubscription() {
		b.WriteString(s.Subtitle.Render(r.tr.T("subscription.whatCanYouDo")) + "\n")
		for _, item := range r.tr.L("subscription.features") {
			b.WriteString("• " + item + "\n")
		}
		b.WriteString("\n" + s.Muted.Render(r.tr.T("subscription.billingPortalInfo")) + "\n")
		b.WriteString(r.hint(r.tr.T("subscription.manageSubscription"), "accountctl subscription portal"))
		return b.String()
	}

	b.WriteString(s.Muted.Render(r.tr.T("subscription.checkoutInfo")) + "\n")
	b.WriteString(r.hint(r.tr.T("subscription.subscribeMonthly"), "accountctl subscription checkout --plan monthly"))
	b.WriteString(r.hint(r.tr.T("subscription.subscribeYearly"), "accountctl subscription checkout --plan yearly"))
	b.WriteString(r.hint(r.tr.T("subscription.startTrial"), "accountctl subscription trial"))
	return b.String()
}

// Premium renders the premium area. Without access only the locked notice
// and the upgrade paths are shown.
func (r *Renderer) Premium(st *domain.SubscriptionStatus) string {
	s := r.styles
	var b strings.Builder

	b.WriteString(s.Title.Render(r.tr.T("premium.title")) + "\n")
	b.WriteString(s.Muted.Render(r.tr.T("premium.description")) + "\n\n")

	if !st.HasPremium() {
		b.WriteString(s.Card.Render(fmt.Sprintf("🔒 %s\n%s\n\n%s",
			s.Error.Render(r.tr.T("premium.accessDenied")),
			r.tr.T("premium.accessDeniedMessage"),
			s.Muted.Render(r.tr.T("premium.locked")),
		)) + "\n")
		b.WriteString(r.hint(r.tr.T("premium.upgradeNow"), "accountctl subscription checkout --plan monthly"))
		b.WriteString(r.hint(r.tr.T("premium.startTrial"), "accountctl subscription trial"))
		return b.String()
	}

	chip := "subscription.status.active"
	if st.Status == domain.StatusTrial {
		chip = "subscription.status.trial"
	}
	b.WriteString(s.Badge.Render(r.tr.T(chip)) + "\n\n")

	for _, key := range content.PremiumFeatureKeys {
		b.WriteString(s.Success.Render("✓") + " " + r.tr.T(key) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(s.Subtitle.Render(r.tr.T("premium.demo.title")) + "\n")
	b.WriteString(r.tr.T("premium.demo.description") + "\n\n")
	b.WriteString(r.metrics(content.PremiumMetrics) + "\n\n")
	b.WriteString(s.Muted.Render(r.tr.T("premium.demo.available")) + "\n")
	for _, item := range r.tr.L("premium.demo.features") {
		b.WriteString("  " + item + "\n")
	}
	return b.String()
}

// CheckoutResult renders the page the user lands on after Stripe Checkout.
func (r *Renderer) CheckoutResult(success bool) string {
	s := r.styles
	if success {
		return s.Highlighted.Render(fmt.Sprintf("%s\n%s",
			s.Success.Render("✓ "+r.tr.T("subscription.success.title")),
			r.tr.T("subscription.success.message"),
		)) + "\n" + r.hint(r.tr.T("subscription.success.goToProfile"), "accountctl profile")
	}
	return s.Card.Render(fmt.Sprintf("%s\n%s",
		s.Warning.Render(r.tr.T("subscription.cancel.title")),
		r.tr.T("subscription.cancel.message"),
	)) + "\n" +
		r.hint(r.tr.T("subscription.cancel.tryAgain"), "accountctl subscription checkout") +
		r.hint(r.tr.T("subscription.cancel.goToProfile"), "accountctl profile")
}

// Profile renders the personal information tab.
func (r *Renderer) Profile(user *domain.UserRecord) string {
	s := r.styles
	if user == nil {
		return s.Muted.Render(r.tr.T("profile.loading")) + "\n"
	}

	var b strings.Builder
	b.WriteString(s.Subtitle.Render(r.tr.T("profile.personalInfo")) + "\n")
	b.WriteString(r.field("profile.fullName", user.Name))
	b.WriteString(r.field("profile.email", user.Email))
	b.WriteString("\n" + s.Subtitle.Render(r.tr.T("profile.accountInfo")) + "\n")
	b.WriteString(r.field("profile.accountId", user.ID))
	if since := user.MemberSince(); !since.IsZero() {
		b.WriteString(r.field("profile.memberSince", since.Format(DateLayout)))
	}
	return b.String()
}

// Security renders the password tab.
func (r *Renderer) Security() string {
	s := r.styles
	return s.Subtitle.Render(r.tr.T("profile.security")) + "\n" +
		s.Muted.Render(r.tr.T("profile.changePasswordInfo")) + "\n" +
		r.hint(r.tr.T("profile.changePassword"), "accountctl profile password")
}

// Preferences renders the preferences tab.
func (r *Renderer) Preferences(mode theme.Mode, lang i18n.Lang) string {
	s := r.styles
	themeLabel := r.tr.T("themeToggle.lightMode")
	if mode == theme.Dark {
		themeLabel = r.tr.T("themeToggle.darkMode")
	}

	var b strings.Builder
	b.WriteString(s.Subtitle.Render(r.tr.T("profile.preferences")) + "\n")
	b.WriteString(s.Muted.Render(r.tr.T("profile.preferencesInfo")) + "\n\n")
	b.WriteString(r.field("profile.theme", themeLabel))
	b.WriteString(s.Muted.Render(r.tr.T("profile.themePreference")) + "\n")
	b.WriteString(r.field("profile.language", r.tr.T("language."+string(lang))))
	return b.String()
}

// TokenExpiry renders the expiry line for auth status.
func (r *Renderer) TokenExpiry(exp, now time.Time) string {
	if exp.Before(now) {
		return r.styles.Warning.Render(r.tr.Tf("auth.tokenExpired", exp.Format(time.RFC3339)))
	}
	return r.styles.Muted.Render(r.tr.Tf("auth.tokenExpires", exp.Format(time.RFC3339)))
}

func (r *Renderer) metrics(ms []content.Metric) string {
	cells := make([]string, 0, len(ms))
	for _, m := range ms {
		cells = append(cells, r.styles.Card.Render(fmt.Sprintf("%s\n%s",
			r.styles.Price.Render(m.Value),
			r.styles.Muted.Render(r.tr.T(m.LabelKey)),
		)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (r *Renderer) field(labelKey, value string) string {
	return fmt.Sprintf("%s %s\n", r.styles.Muted.Render(fmt.Sprintf("%-16s", r.tr.T(labelKey)+":")), value)
}

func (r *Renderer) hint(label, command string) string {
	return fmt.Sprintf("%s %s\n", r.styles.Text.Render("→ "+label+":"), r.styles.Muted.Render(command))
}
