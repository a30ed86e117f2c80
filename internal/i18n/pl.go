package i18n

var plMessages = map[string]string{
	"appName": "accountctl",

	"navigation.home":    "Strona główna",
	"navigation.pricing": "Cennik",
	"navigation.login":   "Logowanie",
	"navigation.signup":  "Rejestracja",
	"navigation.profile": "Profil",

	"toasts.loginSuccess":          "Zalogowano pomyślnie",
	"toasts.loginError":            "Nie udało się zalogować",
	"toasts.registerSuccess":       "Konto zostało utworzone pomyślnie",
	"toasts.registerError":         "Nie udało się utworzyć konta",
	"toasts.logoutSuccess":         "Wylogowano pomyślnie",
	"toasts.forgotPasswordSuccess": "Link do resetowania hasła został wysłany na Twój e-mail",
	"toasts.resetPasswordSuccess":  "Twoje hasło zostało zresetowane pomyślnie",
	"toasts.unauthorizedError":     "Nie masz uprawnień do dostępu do tego zasobu",
	"toasts.sessionExpired":        "Twoja sesja wygasła. Zaloguj się ponownie",
	"toasts.generalError":          "Wystąpił błąd. Proszę spróbuj ponownie",

	"auth.login":                      "Logowanie",
	"auth.loginSubtitle":              "Witamy z powrotem! Wprowadź swoje dane, aby uzyskać dostęp do konta.",
	"auth.register":                   "Rejestracja",
	"auth.createAccount":              "Utwórz konto",
	"auth.registerSubtitle":           "Rozpocznij korzystanie z darmowego konta już dziś.",
	"auth.emailAddress":               "Adres e-mail",
	"auth.password":                   "Hasło",
	"auth.confirmPassword":            "Potwierdź hasło",
	"auth.newPassword":                "Nowe hasło",
	"auth.confirmNewPassword":         "Potwierdź nowe hasło",
	"auth.fullName":                   "Imię i nazwisko",
	"auth.forgotPassword":             "Zapomniałeś hasła?",
	"auth.resetPassword":              "Zresetuj hasło",
	"auth.resetToken":                 "Token resetowania",
	"auth.resetPasswordInstructions":  "Wprowadź nowe hasło poniżej.",
	"auth.forgotPasswordInstructions": "Wprowadź swój adres e-mail, a wyślemy Ci link do zresetowania hasła.",
	"auth.sendResetLink":              "Wyślij link do resetowania",
	"auth.resetPasswordSuccess":       "Twoje hasło zostało pomyślnie zresetowane. Przekierowywanie do logowania...",
	"auth.forgotPasswordSuccess":      "Jeśli istnieje konto z tym adresem e-mail, wysłaliśmy link do resetowania hasła.",
	"auth.alreadyHaveAccount":         "Masz już konto?",
	"auth.noAccount":                  "Nie masz konta?",
	"auth.logout":                     "Wyloguj",
	"auth.backToLogin":                "Powrót do logowania",
	"auth.invalidResetLink":           "Nieprawidłowy link resetowania",
	"auth.resetLinkInvalidOrExpired":  "Link do resetowania jest nieprawidłowy lub wygasł. Poproś o nowy.",
	"auth.requestNewLink":             "Poproś o nowy link",
	"auth.loggedInAs":                 "Zalogowano jako %s <%s>",
	"auth.notLoggedIn":                "Nie zalogowano",
	"auth.tokenExpires":               "Token wygasa %s",
	"auth.tokenExpired":               "Token wygasł %s",
	"auth.registeredPleaseLogin":      "Twoje konto jest gotowe. Zaloguj się, aby kontynuować: accountctl auth login",
	"auth.loginRequired":              "Zaloguj się, aby kontynuować",

	"validation.nameRequired":            "Imię jest wymagane",
	"validation.emailRequired":           "E-mail jest wymagany",
	"validation.emailInvalid":            "Wprowadź poprawny adres e-mail",
	"validation.passwordRequired":        "Hasło jest wymagane",
	"validation.passwordTooShort":        "Hasło musi mieć co najmniej 8 znaków",
	"validation.confirmPasswordRequired": "Potwierdź hasło",
	"validation.passwordsDoNotMatch":     "Hasła nie pasują do siebie",
	"validation.tokenRequired":           "Token resetowania jest wymagany",

	"profile.title":                   "Profil",
	"profile.loading":                 "Ładowanie informacji o profilu...",
	"profile.memberSince":             "Członek od",
	"profile.editProfile":             "Edytuj profil",
	"profile.personalInfo":            "Informacje osobiste",
	"profile.accountInfo":             "Informacje o koncie",
	"profile.security":                "Bezpieczeństwo i hasło",
	"profile.preferences":             "Preferencje",
	"profile.fullName":                "Imię",
	"profile.email":                   "E-mail",
	"profile.accountId":               "ID konta",
	"profile.changePassword":          "Zmień hasło",
	"profile.changePasswordInfo":      "Ze względów bezpieczeństwa użyj silnego hasła, którego nie używasz gdzie indziej.",
	"profile.preferencesInfo":         "Dostosuj swoje doświadczenie z osobistymi preferencjami.",
	"profile.tabs.personalInfo":       "Profil",
	"profile.tabs.security":           "Bezpieczeństwo",
	"profile.tabs.preferences":        "Preferencje",
	"profile.tabs.subscription":       "Subskrypcja",
	"profile.tabs.premium":            "Premium",
	"profile.tabs.help":               "←/→ zmiana zakładki • e edycja • p hasło • t motyw • l język • q wyjście",
	"profile.saveChanges":             "Zapisz zmiany",
	"profile.updateSuccess":           "Profil zaktualizowany pomyślnie",
	"profile.updateError":             "Nie udało się zaktualizować profilu",
	"profile.currentPassword":         "Aktualne hasło",
	"profile.currentPasswordRequired": "Aktualne hasło jest wymagane",
	"profile.newPassword":             "Nowe hasło",
	"profile.confirmNewPassword":      "Potwierdź nowe hasło",
	"profile.passwordChangeSuccess":   "Hasło zostało zmienione pomyślnie",
	"profile.passwordChangeError":     "Nie udało się zmienić hasła",
	"profile.language":                "Język",
	"profile.theme":                   "Motyw",
	"profile.themePreference":         "Wybierz między jasnym i ciemnym motywem dla swojego interfejsu.",
	"profile.nothingToUpdate":         "Brak zmian: podaj --name i/lub --email",

	"premium.title":                  "Funkcje Premium",
	"premium.description":            "Dostęp do zaawansowanych funkcji dostępnych tylko dla użytkowników z aktywną subskrypcją lub okresem próbnym.",
	"premium.accessDenied":           "Dostęp zabroniony",
	"premium.accessDeniedMessage":    "Ta funkcja jest dostępna tylko dla użytkowników z aktywną subskrypcją lub okresem próbnym.",
	"premium.upgradeNow":             "Ulepsz teraz",
	"premium.startTrial":             "Rozpocznij okres próbny",
	"premium.features.analytics":     "Zaawansowana analityka",
	"premium.features.reports":       "Szczegółowe raporty",
	"premium.features.integrations":  "Integracje premium",
	"premium.features.support":       "Priorytetowe wsparcie",
	"premium.features.storage":       "Zwiększona pamięć",
	"premium.features.customization": "Zaawansowana personalizacja",
	"premium.demo.title":             "Demo funkcji Premium",
	"premium.demo.description":       "To jest przykładowa funkcja premium. W rzeczywistej aplikacji tutaj znajdowałyby się zaawansowane narzędzia i funkcje.",
	"premium.demo.efficiency":        "Wzrost wydajności",
	"premium.demo.dataPoints":        "Przeanalizowanych punktów danych",
	"premium.demo.available":         "Dostępne funkcje Premium",
	"premium.locked":                 "Panel analityczny premium z zaawansowanymi metrykami i raportowaniem.",

	"subscription.title":                 "Zarządzanie subskrypcją",
	"subscription.description":           "Zarządzaj swoją subskrypcją, informacjami rozliczeniowymi i metodami płatności przez nasz bezpieczny portal rozliczeniowy.",
	"subscription.manageSubscription":    "Zarządzaj subskrypcją",
	"subscription.subscribeMonthly":      "Subskrybuj miesięcznie",
	"subscription.subscribeYearly":       "Subskrybuj rocznie",
	"subscription.startTrial":            "Rozpocznij okres próbny",
	"subscription.popularBadge":          "Popularne",
	"subscription.loading":               "Otwieranie portalu rozliczeniowego...",
	"subscription.checkoutLoading":       "Tworzenie sesji płatności...",
	"subscription.checkoutLoadingYearly": "Tworzenie rocznej sesji płatności...",
	"subscription.trialLoading":          "Rozpoczynanie okresu próbnego...",
	"subscription.billingPortalInfo":     "Zostaniesz przekierowany do bezpiecznego portalu rozliczeniowego Stripe, gdzie będziesz mógł bezpiecznie zarządzać swoją subskrypcją.",
	"subscription.checkoutInfo":          "Rozpocznij subskrypcję z naszym miesięcznym planem. Zostaniesz przekierowany do bezpiecznej płatności Stripe.",
	"subscription.billingPortalError":    "Nie udało się otworzyć portalu rozliczeniowego. Spróbuj ponownie.",
	"subscription.checkoutError":         "Nie udało się utworzyć sesji płatności. Spróbuj ponownie.",
	"subscription.trialStartSuccess":     "Okres próbny rozpoczęty pomyślnie! Witaj w darmowym okresie próbnym.",
	"subscription.trialStartError":       "Nie udało się rozpocząć okresu próbnego. Spróbuj ponownie.",
	"subscription.whatCanYouDo":          "Co możesz zrobić w portalu rozliczeniowym?",
	"subscription.openingBrowser":        "Otwieranie %s w przeglądarce",
	"subscription.openManually":          "Jeśli przeglądarka się nie otworzyła, odwiedź: %s",

	"subscription.status.title":             "Status subskrypcji",
	"subscription.status.loading":           "Ładowanie statusu subskrypcji...",
	"subscription.status.error":             "Nie udało się załadować statusu subskrypcji",
	"subscription.status.noSubscription":    "Brak aktywnej subskrypcji",
	"subscription.status.status":            "Status",
	"subscription.status.active":            "Aktywna",
	"subscription.status.inactive":          "Nieaktywna",
	"subscription.status.cancelled":         "Anulowana",
	"subscription.status.past_due":          "Zaległość",
	"subscription.status.trialing":          "Okres próbny",
	"subscription.status.plan":              "Plan",
	"subscription.status.interval":          "Cykl rozliczeniowy",
	"subscription.status.monthly":           "Miesięczny",
	"subscription.status.yearly":            "Roczny",
	"subscription.status.currentPeriod":     "Bieżący okres",
	"subscription.status.renewsOn":          "Odnawia się",
	"subscription.status.expiresOn":         "Wygasa",
	"subscription.status.trialEnds":         "Okres próbny kończy się",
	"subscription.status.cancelAtPeriodEnd": "Zostanie anulowana na koniec okresu",
	"subscription.status.free":              "Darmowy",
	"subscription.status.trial":             "Okres próbny",

	"subscription.success.title":       "Subskrypcja pomyślna!",
	"subscription.success.message":     "Dziękujemy za subskrypcję! Twoje konto zostało aktywowane.",
	"subscription.success.goToProfile": "Przejdź do profilu",
	"subscription.cancel.title":        "Subskrypcja anulowana",
	"subscription.cancel.message":      "Proces subskrypcji został anulowany. Możesz spróbować ponownie w dowolnym momencie.",
	"subscription.cancel.tryAgain":     "Spróbuj ponownie",
	"subscription.cancel.goToProfile":  "Przejdź do profilu",

	"footer.description": "Nowoczesna platforma SaaS do efektywnego zarządzania biznesem. Uprość swoje operacje i skup się na rozwoju.",
	"footer.copyright":   "© 2025 accountctl. Wszelkie prawa zastrzeżone.",
	"footer.email":       "hello@example.com",

	"cta.getStarted":   "Rozpocznij",
	"cta.tryFree":      "Wypróbuj za darmo",
	"cta.learnMore":    "Dowiedz się więcej",
	"cta.contactSales": "Kontakt z działem sprzedaży",

	"themeToggle.lightMode": "Tryb jasny",
	"themeToggle.darkMode":  "Tryb ciemny",
	"prefs.themeSet":        "Ustawiono motyw: %s",
	"prefs.languageSet":     "Ustawiono język: %s",
	"language.en":           "Angielski",
	"language.pl":           "Polski",

	"home.hero.title":     "Uprość swój biznes z naszym rozwiązaniem SaaS",
	"home.hero.subtitle":  "Kompleksowa platforma, która pomaga skutecznie zarządzać Twoim biznesem",
	"home.hero.cta":       "Rozpocznij 14-dniowy okres próbny",
	"home.hero.rating":    "5.0 ocena na G2",
	"home.hero.customers": "500+ zadowolonych klientów",

	"home.features.title":                 "Funkcje zaprojektowane dla nowoczesnych firm",
	"home.features.subtitle":              "Wszystko, czego potrzebujesz, aby usprawnić swoją działalność",
	"home.features.sectionTitle":          "ZAAWANSOWANE FUNKCJE",
	"home.features.feature1.title":        "Zaawansowana analityka",
	"home.features.feature1.description":  "Poznaj swój biznes dzięki zaawansowanym narzędziom analitycznym i raportującym.",
	"home.features.feature2.title":        "Współpraca zespołowa",
	"home.features.feature2.description":  "Pracujcie razem bez zakłóceń dzięki zintegrowanej komunikacji i zarządzaniu projektami.",
	"home.features.feature3.title":        "Bezpieczna pamięć w chmurze",
	"home.features.feature3.description":  "Chroń swoje dane dzięki bezpieczeństwu klasy korporacyjnej i niezawodnej pamięci w chmurze.",
	"home.features.feature4.title":        "Narzędzia automatyzacji",
	"home.features.feature4.description":  "Oszczędzaj czas dzięki inteligentnej automatyzacji rutynowych zadań i procesów.",
	"home.features.dashboard.title":       "PANEL ANALITYCZNY",
	"home.features.dashboard.heading":     "Podejmuj decyzje w oparciu o dane",
	"home.features.dashboard.description": "Nasz kompleksowy panel analityczny daje Ci pełną widoczność wyników Twojego biznesu. Śledź KPI, monitoruj trendy i generuj niestandardowe raporty, aby zoptymalizować podejmowanie decyzji.",
	"home.features.dashboard.uptime":      "Dostępność systemu",
	"home.features.dashboard.dataPoints":  "Przeanalizowanych punktów danych",
	"home.features.dashboard.efficiency":  "Wzrost wydajności",

	"home.testimonials.title":      "Co mówią nasi klienci",
	"home.testimonials.subtitle":   "Dołącz do tysięcy zadowolonych firm korzystających z naszej platformy",
	"home.testimonials.trustedBy":  "Zaufały nam firmy na całym świecie",
	"home.testimonials.1.quote":    "Ta platforma zmieniła sposób, w jaki zarządzamy naszymi projektami. Zyski w wydajności są niezwykłe.",
	"home.testimonials.1.position": "Dyrektor operacyjny, TechCorp",
	"home.testimonials.2.quote":    "Funkcje analityczne dały nam wgląd, którego nigdy wcześniej nie mieliśmy. Nasze podejmowanie decyzji znacznie się poprawiło.",
	"home.testimonials.2.position": "CEO, GrowthMetrics",
	"home.testimonials.3.quote":    "Zespół obsługi klienta jest wyjątkowy. Zawsze szybko pomagają nam w przypadku jakichkolwiek pytań.",
	"home.testimonials.3.position": "Menedżer produktu, InnovateX",

	"home.cta.title":        "Gotowy na transformację swojego biznesu z pomocą AI?",
	"home.cta.description":  "Dołącz do tysięcy firm, które już korzystają z naszej platformy, aby zwiększyć produktywność i napędzać wzrost.",
	"home.cta.primaryBtn":   "Rozpocznij darmowy okres próbny",
	"home.cta.secondaryBtn": "Kontakt z działem sprzedaży",

	"pricing.title":               "Proste, przejrzyste ceny",
	"pricing.subtitle":            "Bez umów. Bez niespodziewanych opłat.",
	"pricing.monthly":             "Miesięcznie",
	"pricing.annually":            "Rocznie",
	"pricing.save":                "Oszczędź 20%",
	"pricing.period":              "/mies.",
	"pricing.billedAnnually":      "płatne rocznie",
	"pricing.companies.trustedBy": "Zaufały nam wiodące firmy",
	"pricing.stats.countries":     "Krajów",
	"pricing.stats.global":        "Klienci na całym świecie",
	"pricing.stats.uptime":        "Dostępność",
	"pricing.stats.reliable":      "Gwarancja niezawodnej usługi",
	"pricing.stats.awards":        "Nagród",
	"pricing.stats.recognized":    "Uznanie w branży",
	"pricing.stats.customers":     "Klientów",
	"pricing.stats.trusted":       "Zaufało naszej platformie",

	"pricing.plans.basic.title":            "Podstawowy",
	"pricing.plans.basic.description":      "Idealny dla małych zespołów rozpoczynających działalność",
	"pricing.plans.basic.cta":              "Wybierz Podstawowy",
	"pricing.plans.pro.title":              "Profesjonalny",
	"pricing.plans.pro.description":        "Świetny dla rozwijających się zespołów i firm",
	"pricing.plans.pro.cta":                "Wybierz Pro",
	"pricing.plans.pro.popular":            "Najpopularniejszy",
	"pricing.plans.enterprise.title":       "Enterprise",
	"pricing.plans.enterprise.description": "Dla dużych organizacji o specyficznych potrzebach",
	"pricing.plans.enterprise.cta":         "Kontakt z działem sprzedaży",

	"pricing.faq.title": "Często zadawane pytania",
	"pricing.faq.q1":    "Jak działa 14-dniowy okres próbny?",
	"pricing.faq.a1":    "Możesz korzystać ze wszystkich funkcji planu Profesjonalnego przez 14 dni. Karta kredytowa nie jest wymagana. Pod koniec okresu próbnego możesz wybrać subskrypcję lub przejść na plan darmowy.",
	"pricing.faq.q2":    "Czy mogę później zmienić plan?",
	"pricing.faq.a2":    "Tak, możesz podwyższyć, obniżyć lub anulować swój plan w dowolnym momencie. W przypadku podwyższenia zmiany zaczną obowiązywać natychmiast. W przypadku obniżenia zmiany zaczną obowiązywać na koniec okresu rozliczeniowego.",
	"pricing.faq.q3":    "Czy jest długoterminowa umowa?",
	"pricing.faq.a3":    "Nie, wszystkie plany to miesięczne lub roczne subskrypcje. Nie jesteś związany długoterminową umową.",
	"pricing.faq.q4":    "Czy oferujecie zniżki dla organizacji non-profit lub instytucji edukacyjnych?",
	"pricing.faq.a4":    "Tak, oferujemy specjalne ceny dla kwalifikujących się organizacji non-profit i instytucji edukacyjnych. Skontaktuj się z naszym działem sprzedaży, aby uzyskać szczegółowe informacje.",
	"pricing.faq.q5":    "Jakie metody płatności akceptujecie?",
	"pricing.faq.a5":    "Akceptujemy wszystkie główne karty kredytowe, PayPal oraz przelewy bankowe dla planów rocznych.",
}

var plLists = map[string][]string{
	"pricing.plans.basic.features": {
		"Do 5 członków zespołu",
		"10 GB pamięci",
		"Podstawowa analityka",
		"Wsparcie e-mail 24/7",
		"Dostęp do API",
	},
	"pricing.plans.pro.features": {
		"Do 20 członków zespołu",
		"50 GB pamięci",
		"Zaawansowana analityka",
		"Priorytetowe wsparcie",
		"Dostęp do API",
		"Niestandardowe integracje",
	},
	"pricing.plans.enterprise.features": {
		"Nieograniczona liczba członków zespołu",
		"1 TB pamięci",
		"Analityka premium",
		"Dedykowany menedżer wsparcia",
		"Zaawansowane bezpieczeństwo",
		"Rozwiązania niestandardowe",
		"Opcja on-premise",
	},
	"subscription.features": {
		"Zaktualizuj metodę płatności i dane rozliczeniowe",
		"Pobierz faktury i historię rozliczeń",
		"Podnieś lub obniż plan subskrypcji",
		"Anuluj subskrypcję w dowolnym momencie",
		"Zobacz szczegółową historię rozliczeń i płatności",
	},
	"premium.demo.features": {
		"📊 Zaawansowane dashboardy analityczne",
		"🔧 Niestandardowe integracje API",
		"📈 Szczegółowe raporty biznesowe",
		"🛠️ Zaawansowane narzędzia administracyjne",
		"🔐 Zwiększone funkcje bezpieczeństwa",
	},
}
