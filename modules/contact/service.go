package contact

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dmitrymomot/landkit/handler"
	"github.com/dmitrymomot/landkit/pkg/binder"
	"github.com/dmitrymomot/landkit/pkg/cache"
	"github.com/dmitrymomot/landkit/pkg/clientip"
	"github.com/dmitrymomot/landkit/pkg/logger"
	"github.com/dmitrymomot/landkit/pkg/ratelimiter"
	contactsvc "github.com/dmitrymomot/landkit/svc/contact"
	"github.com/dmitrymomot/landkit/svc/site"
	"github.com/dmitrymomot/landkit/views"
)

// ErrFormExpired is returned for unknown or evicted form IDs.
var ErrFormExpired = handler.NewHTTPError(http.StatusGone, "form_expired")

// Service owns the mounted forms and their HTTP endpoints.
type Service struct {
	cfg          Config
	catalog      *site.Catalog
	themes       *views.Themes
	submitter    contactsvc.Submitter
	forms        *cache.LRUCache[string, *contactsvc.Form]
	limiter      ratelimiter.RateLimiter
	metrics      Metrics
	logger       *slog.Logger
	errorHandler handler.ErrorHandler
	newID        func() string
}

// Option configures a Service.
type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRateLimiter limits submit requests per client IP.
func WithRateLimiter(l ratelimiter.RateLimiter) Option {
	return func(s *Service) {
		s.limiter = l
	}
}

func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

// WithFormIDGenerator replaces uuid.NewString for form IDs.
func WithFormIDGenerator(gen func() string) Option {
	return func(s *Service) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// NewService creates the contact module. Submissions of every form go to
// submitter.
func NewService(cfg Config, catalog *site.Catalog, themes *views.Themes, submitter contactsvc.Submitter, opts ...Option) *Service {
	s := &Service{
		cfg:       cfg.withDefaults(),
		catalog:   catalog,
		themes:    themes,
		submitter: submitter,
		metrics:   nopMetrics{},
		logger:    slog.New(slog.DiscardHandler),
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("contact_module"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{})
	}

	s.forms = cache.NewLRUCache(s.cfg.MaxForms,
		cache.WithTTL[string, *contactsvc.Form](s.cfg.FormTTL),
		cache.WithEvictCallback(func(_ string, f *contactsvc.Form) {
			f.Close()
			s.metrics.SetActiveForms(s.forms.Len())
		}),
	)
	return s
}

// Handle returns a router serving only the module routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

// Routes registers the module routes on r.
func (s *Service) Routes(r chi.Router) {
	r.Get("/contact", handler.Wrap(s.page,
		handler.WithBinders[pageRequest](binder.Query()),
		handler.WithErrorHandler[pageRequest](s.errorHandler),
	))

	r.Post("/contact/{formID}/change", handler.Wrap(s.change,
		handler.WithBinders[changeRequest](
			binder.Path(chi.URLParam),
			binder.Query(),
			binder.Require(binder.Signals(), binder.JSON(), binder.Form()),
		),
		handler.WithErrorHandler[changeRequest](s.errorHandler),
	))

	r.With(s.limit("contact_submit")).Post("/contact/{formID}/submit", handler.Wrap(s.submit,
		handler.WithBinders[submitRequest](
			binder.Path(chi.URLParam),
			binder.Require(binder.Signals(), binder.JSON(), binder.Form()),
		),
		handler.WithErrorHandler[submitRequest](s.errorHandler),
	))

	r.With(s.limit("api_contact")).Post("/api/contact", handler.Wrap(s.api,
		handler.WithBinders[apiRequest](binder.Require(binder.JSON(), binder.Form())),
		handler.WithErrorHandler[apiRequest](s.errorHandler),
	))
}

// Mount creates a form for a page of st and returns its ID and initial state.
func (s *Service) Mount(r *http.Request, st site.Site) (string, contactsvc.State) {
	id := s.newID()
	form := s.newForm(r, st)
	s.forms.Put(id, form)
	s.metrics.SetActiveForms(s.forms.Len())
	return id, form.State()
}

// ActiveForms reports the number of mounted forms.
func (s *Service) ActiveForms() int {
	return s.forms.Len()
}

// StartPruning drops idle forms every interval until ctx is done.
func (s *Service) StartPruning(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if n := s.forms.Prune(); n > 0 {
					s.logger.DebugContext(ctx, "pruned idle contact forms", slog.Int("count", n))
				}
			}
		}
	}()
}

// Close discards every mounted form.
func (s *Service) Close() {
	s.forms.Clear()
}

func (s *Service) newForm(r *http.Request, st site.Site) *contactsvc.Form {
	ip := clientip.GetIPFromContext(r.Context())
	if ip == "" {
		ip = clientip.GetIP(r)
	}
	return contactsvc.NewForm(s.submitter,
		contactsvc.WithResetDelay(s.cfg.ResetDelay),
		contactsvc.WithLogger(s.logger),
		contactsvc.WithMeta(contactsvc.Meta{
			Site:      st.Slug,
			IP:        ip,
			UserAgent: r.UserAgent(),
			Referer:   r.Referer(),
		}),
		contactsvc.WithObserver(transitionObserver(s.metrics)),
		contactsvc.WithRecorder(recorder{m: s.metrics}),
	)
}

func (s *Service) lookupSite(slug string) (site.Site, bool) {
	if slug == "" {
		return s.catalog.Default(), true
	}
	st, err := s.catalog.Lookup(slug)
	return st, err == nil
}

func (s *Service) pageConfig(st site.Site) views.PageConfig {
	return views.PageConfig{Site: st, Theme: s.themes.For(st.Slug)}
}

func (s *Service) limit(route string) func(http.Handler) http.Handler {
	if s.limiter == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return ratelimiter.Middleware(s.limiter, ratelimiter.KeyByIP(),
		ratelimiter.WithOnLimited(func(r *http.Request, _ *ratelimiter.Result) {
			s.metrics.ObserveRateLimited(route)
			s.logger.WarnContext(r.Context(), "contact submission rate limited", slog.String("route", route))
		}),
		ratelimiter.WithDeniedHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s.errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
		})),
		ratelimiter.WithErrorHandler(func(w http.ResponseWriter, r *http.Request, err error) {
			s.logger.ErrorContext(r.Context(), "rate limiter unavailable", logger.Error(err))
			s.errorHandler(handler.NewContext(w, r), err)
		}),
	)
}
