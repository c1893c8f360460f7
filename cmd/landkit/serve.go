package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/landkit/handler"
	contactmod "github.com/dmitrymomot/landkit/modules/contact"
	sitemod "github.com/dmitrymomot/landkit/modules/site"
	"github.com/dmitrymomot/landkit/pkg/clientip"
	"github.com/dmitrymomot/landkit/pkg/environment"
	"github.com/dmitrymomot/landkit/pkg/httpserver"
	"github.com/dmitrymomot/landkit/pkg/logger"
	"github.com/dmitrymomot/landkit/pkg/metrics"
	"github.com/dmitrymomot/landkit/pkg/ratelimiter"
	redisconn "github.com/dmitrymomot/landkit/pkg/redis"
	"github.com/dmitrymomot/landkit/pkg/requestid"
	"github.com/dmitrymomot/landkit/pkg/theme"
	sitesvc "github.com/dmitrymomot/landkit/svc/site"
	"github.com/dmitrymomot/landkit/views"
)

const formPruneInterval = time.Minute

var serveFlags struct {
	addr      string
	sitesFile string
	themesDir string
	staticDir string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the landing sites",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serveFlags.addr != "" {
			cfg.Server.Addr = serveFlags.addr
		}
		if serveFlags.sitesFile != "" {
			cfg.SitesFile = serveFlags.sitesFile
		}
		if serveFlags.themesDir != "" {
			cfg.ThemesDir = serveFlags.themesDir
		}
		if serveFlags.staticDir != "" {
			cfg.StaticDir = serveFlags.staticDir
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg)
	},
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&serveFlags.addr, "addr", "", "listen address, overrides HTTP_ADDR")
	f.StringVar(&serveFlags.sitesFile, "sites", "", "site catalogue YAML, overrides SITES_FILE")
	f.StringVar(&serveFlags.themesDir, "themes", "", "directory of theme manifests, overrides THEMES_DIR")
	f.StringVar(&serveFlags.staticDir, "static", "", "static assets directory, overrides STATIC_DIR")
}

func serve(ctx context.Context, cfg appConfig) error {
	env := environment.Parse(cfg.Env)
	if err := cfg.Log.Validate(); err != nil {
		return err
	}
	log := logger.New(
		logger.WithEnvironment(env, cfg.Name),
		logger.WithConfig(cfg.Log),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	catalog, err := loadCatalog(cfg.SitesFile)
	if err != nil {
		return fmt.Errorf("load sites: %w", err)
	}
	registry, err := loadThemes(cfg.ThemesDir)
	if err != nil {
		return fmt.Errorf("load themes: %w", err)
	}
	themes, err := views.NewThemes(registry, catalog)
	if err != nil {
		return err
	}

	checks := map[string]httpserver.CheckFunc{}

	submitter, release, err := buildSubmitter(ctx, cfg, catalog, log, checks)
	defer release()
	if err != nil {
		return fmt.Errorf("configure delivery: %w", err)
	}

	limiter, closeLimiter, err := buildRateLimiter(ctx, cfg, log, checks)
	if err != nil {
		return fmt.Errorf("configure rate limiting: %w", err)
	}
	defer closeLimiter()

	errorHandler := handler.NewErrorHandler(log, handler.ErrorHandlerConfig{
		ErrorPage: func(p handler.ErrorPageParams) templ.Component {
			return views.Component(views.ErrorPage(themes.Default(), p))
		},
		ErrorToast: func(p handler.ErrorToastParams) templ.Component {
			return views.Component(views.ErrorToast(themes.Default(), p))
		},
		ToastTarget: "#" + views.ToastContainerID,
	})

	var m *metrics.Metrics
	contactOpts := []contactmod.Option{
		contactmod.WithLogger(log),
		contactmod.WithRateLimiter(limiter),
		contactmod.WithErrorHandler(errorHandler),
	}
	siteOpts := []sitemod.Option{
		sitemod.WithLogger(log),
		sitemod.WithErrorHandler(errorHandler),
	}
	if cfg.Metrics.Enabled {
		m = metrics.New(cfg.Metrics.Namespace)
		contactOpts = append(contactOpts, contactmod.WithMetrics(m))
		siteOpts = append(siteOpts, sitemod.WithPageViewRecorder(m))
	}

	contact := contactmod.NewService(cfg.Contact, catalog, themes, submitter, contactOpts...)
	defer contact.Close()
	contact.StartPruning(ctx, formPruneInterval)

	sites := sitemod.NewService(catalog, themes, contact, siteOpts...)

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.Middleware(trustedHeaders(cfg.BehindProxy)),
		environment.Middleware(env),
		middleware.Recoverer,
		requestLogger(log),
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, checks))
	if m != nil {
		r.Handle(cfg.Metrics.Path, m.Handler())
	}
	if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
		r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	}

	sites.Routes(r)
	contact.Routes(r)

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		errorHandler(handler.NewContext(w, req), handler.ErrNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		errorHandler(handler.NewContext(w, req), handler.ErrMethodNotAllowed)
	})

	log.InfoContext(ctx, "sites loaded",
		slog.Any("sites", catalog.Slugs()),
		slog.String("default", catalog.Default().Slug),
		slog.String("delivery", cfg.Delivery.Mode),
	)

	srv := httpserver.NewFromConfig(cfg.Server,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(addr string) {
			log.Info("landkit is listening", slog.String("addr", addr))
		}),
	)
	return srv.Run(ctx, r)
}

func loadCatalog(path string) (*sitesvc.Catalog, error) {
	if path == "" {
		return sitesvc.Builtin()
	}
	return sitesvc.LoadFile(path)
}

func loadThemes(dir string) (*theme.Registry, error) {
	if dir == "" {
		return theme.DefaultRegistry()
	}
	return theme.LoadRegistry(os.DirFS(dir))
}

// buildRateLimiter uses Redis when configured so limits hold across
// replicas, and process memory otherwise.
func buildRateLimiter(ctx context.Context, cfg appConfig, log *slog.Logger, checks map[string]httpserver.CheckFunc) (ratelimiter.RateLimiter, func(), error) {
	if cfg.Redis.Enabled() {
		client, err := redisconn.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, func() {}, err
		}
		checks["redis"] = redisconn.Healthcheck(client)
		bucket, err := ratelimiter.NewBucket(ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(cfg.Name+":ratelimit:")), cfg.RateLimit)
		if err != nil {
			_ = client.Close()
			return nil, func() {}, err
		}
		log.Info("rate limiting backed by redis")
		return bucket, func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close redis client", logger.Error(err))
			}
		}, nil
	}

	store := ratelimiter.NewMemoryStore()
	bucket, err := ratelimiter.NewBucket(store, cfg.RateLimit)
	if err != nil {
		store.Close()
		return nil, func() {}, err
	}
	return bucket, store.Close, nil
}

func trustedHeaders(behindProxy bool) []string {
	if behindProxy {
		return nil
	}
	return []string{}
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			level := slog.LevelDebug
			if ww.Status() >= http.StatusInternalServerError {
				level = slog.LevelWarn
			}
			log.Log(r.Context(), level, "http request",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				logger.Status(ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}
