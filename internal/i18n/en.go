package i18n

var enMessages = map[string]string{
	"appName": "accountctl",

	"navigation.home":    "Home",
	"navigation.pricing": "Pricing",
	"navigation.login":   "Log in",
	"navigation.signup":  "Sign up",
	"navigation.profile": "Profile",

	"toasts.loginSuccess":          "Successfully logged in",
	"toasts.loginError":            "Failed to log in",
	"toasts.registerSuccess":       "Account created successfully",
	"toasts.registerError":         "Failed to create account",
	"toasts.logoutSuccess":         "Successfully logged out",
	"toasts.forgotPasswordSuccess": "Password reset link has been sent to your email",
	"toasts.resetPasswordSuccess":  "Your password has been reset successfully",
	"toasts.unauthorizedError":     "You are not authorized to access this resource",
	"toasts.sessionExpired":        "Your session has expired. Please log in again",
	"toasts.generalError":          "An error occurred. Please try again",

	"auth.login":                      "Log in",
	"auth.loginSubtitle":              "Welcome back! Please enter your credentials to access your account.",
	"auth.register":                   "Register",
	"auth.createAccount":              "Create account",
	"auth.registerSubtitle":           "Get started with your free account today.",
	"auth.emailAddress":               "Email address",
	"auth.password":                   "Password",
	"auth.confirmPassword":            "Confirm password",
	"auth.newPassword":                "New password",
	"auth.confirmNewPassword":         "Confirm new password",
	"auth.fullName":                   "Full name",
	"auth.forgotPassword":             "Forgot password?",
	"auth.resetPassword":              "Reset password",
	"auth.resetToken":                 "Reset token",
	"auth.resetPasswordInstructions":  "Enter your new password below.",
	"auth.forgotPasswordInstructions": "Enter your email address and we'll send you a link to reset your password.",
	"auth.sendResetLink":              "Send reset link",
	"auth.resetPasswordSuccess":       "Your password has been reset successfully. Redirecting to login...",
	"auth.forgotPasswordSuccess":      "If an account with that email exists, we've sent a password reset link.",
	"auth.alreadyHaveAccount":         "Already have an account?",
	"auth.noAccount":                  "Don't have an account?",
	"auth.logout":                     "Log out",
	"auth.backToLogin":                "Back to login",
	"auth.invalidResetLink":           "Invalid reset link",
	"auth.resetLinkInvalidOrExpired":  "The reset link is invalid or has expired. Please request a new one.",
	"auth.requestNewLink":             "Request new link",
	"auth.loggedInAs":                 "Logged in as %s <%s>",
	"auth.notLoggedIn":                "Not logged in",
	"auth.tokenExpires":               "Token expires %s",
	"auth.tokenExpired":               "Token expired %s",
	"auth.registeredPleaseLogin":      "Your account is ready. Log in to continue: accountctl auth login",
	"auth.loginRequired":              "Please log in to continue",

	"validation.nameRequired":            "Name is required",
	"validation.emailRequired":           "Email is required",
	"validation.emailInvalid":            "Please enter a valid email address",
	"validation.passwordRequired":        "Password is required",
	"validation.passwordTooShort":        "Password must be at least 8 characters long",
	"validation.confirmPasswordRequired": "Please confirm your password",
	"validation.passwordsDoNotMatch":     "Passwords do not match",
	"validation.tokenRequired":           "Reset token is required",

	"profile.title":                   "Profile",
	"profile.loading":                 "Loading profile information...",
	"profile.memberSince":             "Member since",
	"profile.editProfile":             "Edit profile",
	"profile.personalInfo":            "Personal information",
	"profile.accountInfo":             "Account information",
	"profile.security":                "Security & password",
	"profile.preferences":             "Preferences",
	"profile.fullName":                "Name",
	"profile.email":                   "Email",
	"profile.accountId":               "Account ID",
	"profile.changePassword":          "Change password",
	"profile.changePasswordInfo":      "For security reasons, you need to use a strong password that you're not using elsewhere.",
	"profile.preferencesInfo":         "Customize your experience with personal preferences.",
	"profile.tabs.personalInfo":       "Profile",
	"profile.tabs.security":           "Security",
	"profile.tabs.preferences":        "Preferences",
	"profile.tabs.subscription":       "Subscription",
	"profile.tabs.premium":            "Premium",
	"profile.tabs.help":               "←/→ switch tabs • e edit • p password • t theme • l language • q quit",
	"profile.saveChanges":             "Save changes",
	"profile.updateSuccess":           "Profile updated successfully",
	"profile.updateError":             "Failed to update profile",
	"profile.currentPassword":         "Current password",
	"profile.currentPasswordRequired": "Current password is required",
	"profile.newPassword":             "New password",
	"profile.confirmNewPassword":      "Confirm new password",
	"profile.passwordChangeSuccess":   "Password changed successfully",
	"profile.passwordChangeError":     "Failed to change password",
	"profile.language":                "Language",
	"profile.theme":                   "Theme",
	"profile.themePreference":         "Choose between light and dark theme for your interface.",
	"profile.nothingToUpdate":         "Nothing to update: pass --name and/or --email",

	"premium.title":                  "Premium Features",
	"premium.description":            "Access to advanced features available only for users with an active subscription or trial.",
	"premium.accessDenied":           "Access Denied",
	"premium.accessDeniedMessage":    "This feature is only available to users with an active subscription or trial.",
	"premium.upgradeNow":             "Upgrade Now",
	"premium.startTrial":             "Start Trial",
	"premium.features.analytics":     "Advanced Analytics",
	"premium.features.reports":       "Detailed Reports",
	"premium.features.integrations":  "Premium Integrations",
	"premium.features.support":       "Priority Support",
	"premium.features.storage":       "Increased Storage",
	"premium.features.customization": "Advanced Customization",
	"premium.demo.title":             "Premium Features Demo",
	"premium.demo.description":       "This is a sample premium feature. In a real application, this would contain advanced tools and functionality.",
	"premium.demo.efficiency":        "Efficiency Improvement",
	"premium.demo.dataPoints":        "Data Points Analyzed",
	"premium.demo.available":         "Available Premium Features",
	"premium.locked":                 "Premium analytics dashboard with advanced metrics and reporting capabilities.",

	"subscription.title":                 "Subscription Management",
	"subscription.description":           "Manage your subscription, billing information, and payment methods through our secure billing portal.",
	"subscription.manageSubscription":    "Manage Subscription",
	"subscription.subscribeMonthly":      "Subscribe Monthly",
	"subscription.subscribeYearly":       "Subscribe Yearly",
	"subscription.startTrial":            "Start Trial",
	"subscription.popularBadge":          "Popular",
	"subscription.loading":               "Opening billing portal...",
	"subscription.checkoutLoading":       "Creating checkout session...",
	"subscription.checkoutLoadingYearly": "Creating yearly checkout session...",
	"subscription.trialLoading":          "Starting trial...",
	"subscription.billingPortalInfo":     "You will be redirected to a secure Stripe billing portal where you can safely manage your subscription.",
	"subscription.checkoutInfo":          "Start your subscription with our monthly plan. You'll be redirected to a secure Stripe checkout.",
	"subscription.billingPortalError":    "Failed to open billing portal. Please try again.",
	"subscription.checkoutError":         "Failed to create checkout session. Please try again.",
	"subscription.trialStartSuccess":     "Trial started successfully! Welcome to your free trial.",
	"subscription.trialStartError":       "Failed to start trial. Please try again.",
	"subscription.whatCanYouDo":          "What can you do in the billing portal?",
	"subscription.openingBrowser":        "Opening %s in your browser",
	"subscription.openManually":          "If the browser did not open, visit: %s",

	"subscription.status.title":             "Subscription Status",
	"subscription.status.loading":           "Loading subscription status...",
	"subscription.status.error":             "Failed to load subscription status",
	"subscription.status.noSubscription":    "No active subscription",
	"subscription.status.status":            "Status",
	"subscription.status.active":            "Active",
	"subscription.status.inactive":          "Inactive",
	"subscription.status.cancelled":         "Cancelled",
	"subscription.status.past_due":          "Past Due",
	"subscription.status.trialing":          "Trial",
	"subscription.status.plan":              "Plan",
	"subscription.status.interval":          "Billing Cycle",
	"subscription.status.monthly":           "Monthly",
	"subscription.status.yearly":            "Yearly",
	"subscription.status.currentPeriod":     "Current Period",
	"subscription.status.renewsOn":          "Renews on",
	"subscription.status.expiresOn":         "Expires on",
	"subscription.status.trialEnds":         "Trial ends on",
	"subscription.status.cancelAtPeriodEnd": "Will cancel at period end",
	"subscription.status.free":              "Free Plan",
	"subscription.status.trial":             "Trial Plan",

	"subscription.success.title":       "Subscription Successful!",
	"subscription.success.message":     "Thank you for subscribing! Your account has been activated.",
	"subscription.success.goToProfile": "Go to Profile",
	"subscription.cancel.title":        "Subscription Cancelled",
	"subscription.cancel.message":      "Your subscription process was cancelled. You can try again anytime.",
	"subscription.cancel.tryAgain":     "Try Again",
	"subscription.cancel.goToProfile":  "Go to Profile",

	"footer.description": "Modern SaaS platform for efficient business management. Simplify your operations and focus on growth.",
	"footer.copyright":   "© 2025 accountctl. All rights reserved.",
	"footer.email":       "hello@example.com",

	"cta.getStarted":   "Get Started",
	"cta.tryFree":      "Try for free",
	"cta.learnMore":    "Learn more",
	"cta.contactSales": "Contact Sales",

	"themeToggle.lightMode": "Light mode",
	"themeToggle.darkMode":  "Dark mode",
	"prefs.themeSet":        "Theme set to %s",
	"prefs.languageSet":     "Language set to %s",
	"language.en":           "English",
	"language.pl":           "Polish",

	"home.hero.title":     "Simplify your business with our SaaS solution",
	"home.hero.subtitle":  "All-in-one platform that helps you manage your business efficiently",
	"home.hero.cta":       "Start your 14-day free trial",
	"home.hero.rating":    "5.0 Rating on G2",
	"home.hero.customers": "500+ Happy Customers",

	"home.features.title":                 "Features designed for modern businesses",
	"home.features.subtitle":              "Everything you need to streamline your operations",
	"home.features.sectionTitle":          "POWERFUL FEATURES",
	"home.features.feature1.title":        "Powerful Analytics",
	"home.features.feature1.description":  "Get insights into your business with advanced analytics and reporting tools.",
	"home.features.feature2.title":        "Team Collaboration",
	"home.features.feature2.description":  "Work together seamlessly with integrated communication and project management.",
	"home.features.feature3.title":        "Secure Cloud Storage",
	"home.features.feature3.description":  "Keep your data safe with enterprise-grade security and reliable cloud storage.",
	"home.features.feature4.title":        "Automation Tools",
	"home.features.feature4.description":  "Save time with intelligent automation for routine tasks and workflows.",
	"home.features.dashboard.title":       "ANALYTICS DASHBOARD",
	"home.features.dashboard.heading":     "Make data-driven decisions",
	"home.features.dashboard.description": "Our comprehensive analytics dashboard gives you full visibility into your business performance. Track KPIs, monitor trends, and generate custom reports to optimize your decision-making.",
	"home.features.dashboard.uptime":      "System uptime",
	"home.features.dashboard.dataPoints":  "Data points analyzed",
	"home.features.dashboard.efficiency":  "Efficiency increase",

	"home.testimonials.title":      "What our customers say",
	"home.testimonials.subtitle":   "Join thousands of satisfied businesses using our platform",
	"home.testimonials.trustedBy":  "Trusted by companies worldwide",
	"home.testimonials.1.quote":    "This platform has transformed how we manage our projects. The efficiency gains are remarkable.",
	"home.testimonials.1.position": "Operations Director, TechCorp",
	"home.testimonials.2.quote":    "The analytics features have given us insights we never had before. Our decision-making has improved tremendously.",
	"home.testimonials.2.position": "CEO, GrowthMetrics",
	"home.testimonials.3.quote":    "The customer support team is exceptional. They're always quick to help with any questions we have.",
	"home.testimonials.3.position": "Product Manager, InnovateX",

	"home.cta.title":        "Ready to transform your business with AI?",
	"home.cta.description":  "Join thousands of businesses already using our platform to increase productivity and drive growth.",
	"home.cta.primaryBtn":   "Start Free Trial",
	"home.cta.secondaryBtn": "Contact Sales",

	"pricing.title":               "Simple, transparent pricing",
	"pricing.subtitle":            "No contracts. No surprise fees.",
	"pricing.monthly":             "Monthly",
	"pricing.annually":            "Annually",
	"pricing.save":                "Save 20%",
	"pricing.period":              "/mo",
	"pricing.billedAnnually":      "billed annually",
	"pricing.companies.trustedBy": "Trusted by leading companies",
	"pricing.stats.countries":     "Countries",
	"pricing.stats.global":        "Global customers worldwide",
	"pricing.stats.uptime":        "Uptime",
	"pricing.stats.reliable":      "Reliable service guarantee",
	"pricing.stats.awards":        "Awards",
	"pricing.stats.recognized":    "Industry recognition",
	"pricing.stats.customers":     "Customers",
	"pricing.stats.trusted":       "Trust our platform",

	"pricing.plans.basic.title":            "Basic",
	"pricing.plans.basic.description":      "Perfect for small teams getting started",
	"pricing.plans.basic.cta":              "Start with Basic",
	"pricing.plans.pro.title":              "Professional",
	"pricing.plans.pro.description":        "Great for growing teams and businesses",
	"pricing.plans.pro.cta":                "Start with Pro",
	"pricing.plans.pro.popular":            "Most Popular",
	"pricing.plans.enterprise.title":       "Enterprise",
	"pricing.plans.enterprise.description": "For large organizations with specific needs",
	"pricing.plans.enterprise.cta":         "Contact Sales",

	"pricing.faq.title": "Frequently Asked Questions",
	"pricing.faq.q1":    "How does the 14-day trial work?",
	"pricing.faq.a1":    "You can use all features of the Professional plan for 14 days. No credit card required. At the end of the trial, you can choose to subscribe or downgrade to the free plan.",
	"pricing.faq.q2":    "Can I change plans later?",
	"pricing.faq.a2":    "Yes, you can upgrade, downgrade, or cancel your plan at any time. If you upgrade, the changes take effect immediately. If you downgrade, the changes take effect at the end of your billing cycle.",
	"pricing.faq.q3":    "Is there a long-term contract?",
	"pricing.faq.a3":    "No, all plans are month-to-month or annual subscriptions. You're not locked into a long-term contract.",
	"pricing.faq.q4":    "Do you offer discounts for non-profits or educational institutions?",
	"pricing.faq.a4":    "Yes, we offer special pricing for eligible non-profits and educational institutions. Please contact our sales team for details.",
	"pricing.faq.q5":    "What payment methods do you accept?",
	"pricing.faq.a5":    "We accept all major credit cards, PayPal, and bank transfers for annual plans.",
}

var enLists = map[string][]string{
	"pricing.plans.basic.features": {
		"Up to 5 team members",
		"10 GB storage",
		"Basic analytics",
		"24/7 email support",
		"API access",
	},
	"pricing.plans.pro.features": {
		"Up to 20 team members",
		"50 GB storage",
		"Advanced analytics",
		"Priority support",
		"API access",
		"Custom integrations",
	},
	"pricing.plans.enterprise.features": {
		"Unlimited team members",
		"1 TB storage",
		"Premium analytics",
		"Dedicated support manager",
		"Advanced security",
		"Custom solutions",
		"On-premise option",
	},
	"subscription.features": {
		"Update your payment method and billing details",
		"Download invoices and billing history",
		"Upgrade or downgrade your subscription plan",
		"Cancel your subscription at any time",
		"View detailed billing and payment history",
	},
	"premium.demo.features": {
		"📊 Advanced Analytics Dashboards",
		"🔧 Custom API Integrations",
		"📈 Detailed Business Reports",
		"🛠️ Advanced Admin Tools",
		"🔐 Enhanced Security Features",
	},
}
