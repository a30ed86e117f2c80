package cmd

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/felixgeelhaar/accountctl/internal/account"
	"github.com/felixgeelhaar/accountctl/internal/api"
	"github.com/felixgeelhaar/accountctl/internal/browser"
	"github.com/felixgeelhaar/accountctl/internal/config"
	"github.com/felixgeelhaar/accountctl/internal/errors"
	"github.com/felixgeelhaar/accountctl/internal/i18n"
	"github.com/felixgeelhaar/accountctl/internal/log"
	"github.com/felixgeelhaar/accountctl/internal/metrics"
	"github.com/felixgeelhaar/accountctl/internal/notify"
	"github.com/felixgeelhaar/accountctl/internal/session"
	"github.com/felixgeelhaar/accountctl/internal/telemetry"
	"github.com/felixgeelhaar/accountctl/internal/theme"
	"github.com/felixgeelhaar/accountctl/internal/tokenstore"
	"github.com/felixgeelhaar/accountctl/internal/tui"
	"github.com/felixgeelhaar/accountctl/internal/ux"
)

// annotationNoApp marks commands that run without configuration, storage
// or network, such as completion.
const annotationNoApp = "accountctl/no-app"

// App is the object graph of one command execution.
type App struct {
	ctx     context.Context
	env     Env
	cc      *CommandContext
	command string
	started time.Time

	Config *config.Loaded
	Logger *log.Logger

	Registry *prometheus.Registry
	Metrics  *metrics.Metrics
	span     trace.Span
	flush    func()

	Store         *tokenstore.Store
	storage       tokenstore.Backend
	Bus           *notify.Bus
	API           *api.Client
	Session       *session.Controller
	Profiles      *account.Profiles
	Subscriptions *account.Subscriptions
	Browser       *browser.Browser

	Lang     i18n.Lang
	Tr       *i18n.Translator
	Mode     theme.Mode
	Styles   theme.Styles
	Renderer *tui.Renderer
	Forms    *tui.Forms
	noColor  bool
}

func newApp(ctx context.Context, cc *CommandContext, env Env, command string) (*App, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, err := ux.NewFormatter(cc.Format, nil); err != nil {
		return nil, err
	}

	loaded, err := config.Load(config.Options{Home: cc.Home, File: cc.ConfigFile})
	if err != nil {
		return nil, err
	}
	cfg := loaded.Config

	logger := setupLogging(cfg, cc.LogLevel, env.Err)
	flush := setupTelemetry(ctx, cfg, logger, env.Getenv)
	registry, m := metrics.NewRegistry()

	backend, err := openStorage(loaded)
	if err != nil {
		flush()
		return nil, err
	}
	store := tokenstore.New(backend, logger)

	lang := i18n.Detect(cc.Lang, preference(store, tokenstore.KeyLanguage), locale(env.Getenv))
	tr := i18n.New(lang)
	mode := theme.Detect(cc.Theme, store, env.DarkBackground)
	noColor := cc.NoColor || env.Getenv("NO_COLOR") != ""
	styles := theme.New(mode, noColor)

	bus := notify.NewBus()

	client := api.New(api.Options{
		BaseURL:    cfg.API.URL,
		APIKey:     cfg.API.Key,
		HTTPClient: env.HTTPClient,
		Timeout:    cfg.API.Timeout,
		Tokens:     store,
		Notifier:   bus,
		Logger:     logger,
		Metrics:    m,
		Tracer:     telemetry.Tracer("api"),
	})

	ctrl := session.New(session.Deps{
		API:      client,
		Store:    store,
		Notifier: bus,
		Logger:   logger,
		Metrics:  m,
	})

	deps := account.Deps{API: client, Tokens: store, Notifier: bus, Logger: logger}

	spanCtx, span := telemetry.StartCommandSpan(ctx, command)

	app := &App{
		ctx:           spanCtx,
		env:           env,
		cc:            cc,
		command:       command,
		started:       time.Now(),
		Config:        loaded,
		Logger:        logger,
		Registry:      registry,
		Metrics:       m,
		span:          span,
		flush:         flush,
		Store:         store,
		storage:       backend,
		Bus:           bus,
		API:           client,
		Session:       ctrl,
		Profiles:      account.NewProfiles(deps),
		Subscriptions: account.NewSubscriptions(deps),
		Browser:       browser.New(env.OpenURL, env.Err, logger),
		Lang:          lang,
		Tr:            tr,
		Mode:          mode,
		Styles:        styles,
		Renderer:      tui.NewRenderer(tr, styles),
		Forms:         tui.NewForms(tr, mode, noColor, env.Getenv("ACCESSIBLE") != ""),
		noColor:       noColor,
	}
	bus.Subscribe(notify.NewConsole(env.Err, app, app.styleNotification).Handle)
	bus.Subscribe(ctrl.HandleNotification)
	logger.Debug("command started", "command", command, "lang", lang, "theme", mode)
	return app, nil
}

func openStorage(loaded *config.Loaded) (tokenstore.Backend, error) {
	var backend tokenstore.Backend = tokenstore.NewFileBackend(loaded.Home)
	if loaded.Config.Storage.Encrypt {
		enc, err := tokenstore.NewEncryptedBackend(backend, loaded.Config.Storage.Passphrase)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeStorageRead, "cannot open encrypted storage", err).
				WithSuggestion("Set ACCOUNTCTL_STORAGE_PASSPHRASE or disable storage.encrypt")
		}
		backend = enc
	}
	return backend, nil
}

func preference(store *tokenstore.Store, key string) string {
	v, _ := store.Preference(key)
	return v
}

// locale returns the first locale variable set, in POSIX precedence.
func locale(getenv func(string) string) string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v := getenv(name); v != "" {
			return v
		}
	}
	return ""
}

// Close records the command outcome and flushes metrics and traces.
func (a *App) Close(err error) {
	code := ""
	if err != nil {
		if c, ok := errors.CodeOf(err); ok {
			code = string(c)
		} else {
			code = "unknown"
		}
		telemetry.RecordError(a.span, err)
	} else {
		telemetry.RecordSuccess(a.span)
	}
	a.span.End()

	a.Metrics.RecordCommand(a.command, time.Since(a.started), code)
	a.Session.Dispose()
	pushMetrics(a.Config.Config, a.Registry, a.Logger)
	a.flush()
}

// T translates with the current language, which prefs commands may change
// mid-run. It lets the console notifier follow that change.
func (a *App) T(key string) string {
	return a.Tr.T(key)
}

func (a *App) styleNotification(k notify.Kind, line string) string {
	return a.Styles.Notification(k, line)
}

// restyle rebuilds everything derived from language and theme.
func (a *App) restyle() {
	a.Tr = i18n.New(a.Lang)
	a.Styles = theme.New(a.Mode, a.noColor)
	a.Renderer = tui.NewRenderer(a.Tr, a.Styles)
	a.Forms = tui.NewForms(a.Tr, a.Mode, a.noColor, a.env.Getenv("ACCESSIBLE") != "")
}

type appKey struct{}

func withApp(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appKey{}, app)
}

// appFrom returns the App built by the root command's pre-run hook.
func appFrom(ctx context.Context) *App {
	app, _ := ctx.Value(appKey{}).(*App)
	if app == nil {
		panic("accountctl: command ran without an App")
	}
	return app
}

// Out is the command output stream.
func (a *App) Out() io.Writer {
	return a.env.Out
}

// Interactive reports whether forms may be shown. Structured output
// never prompts.
func (a *App) Interactive() bool {
	return !a.structured() && a.env.Interactive()
}

func (a *App) structured() bool {
	return ux.IsStructured(a.cc.Format)
}

// textView adapts a page renderer to ux.TextRenderer.
type textView func() string

func (v textView) RenderText() string { return v() }

// output writes data in the selected format; text uses the page renderer.
func (a *App) output(data any, text func() string) error {
	formatter, err := ux.NewFormatter(a.cc.Format, &ux.FormatterOptions{
		Writer:  a.env.Out,
		NoColor: a.cc.NoColor,
	})
	if err != nil {
		return err
	}
	if a.structured() {
		return formatter.Format(data)
	}
	return formatter.Format(textView(text))
}

// say prints a translated message in text mode. Structured output stays
// limited to the command's data.
func (a *App) say(key string, args ...any) {
	if a.structured() {
		return
	}
	msg := a.Tr.T(key)
	if len(args) > 0 {
		msg = a.Tr.Tf(key, args...)
	}
	fmt.Fprintln(a.env.Out, msg)
}

// requireAuth is the route guard of protected commands. It validates the
// stored session against the server before the command runs.
func (a *App) requireAuth() (session.Session, error) {
	initErr := a.Session.Init(a.ctx)
	snap := a.Session.Snapshot()
	if snap.IsAuthenticated {
		return snap, nil
	}
	if initErr != nil {
		return snap, errors.NewSessionExpiredError(snap.Error)
	}
	return snap, errors.NewAuthRequiredError()
}
