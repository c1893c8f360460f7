// Package site serves the landing page of every site variant.
package site

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/landkit/handler"
	"github.com/dmitrymomot/landkit/pkg/binder"
	"github.com/dmitrymomot/landkit/pkg/logger"
	contactsvc "github.com/dmitrymomot/landkit/svc/contact"
	sitesvc "github.com/dmitrymomot/landkit/svc/site"
	"github.com/dmitrymomot/landkit/views"
)

// FormMounter creates the contact form embedded in a landing page.
// *contact.Service from modules/contact implements it.
type FormMounter interface {
	Mount(r *http.Request, s sitesvc.Site) (string, contactsvc.State)
}

// PageViewRecorder counts rendered pages.
type PageViewRecorder interface {
	ObservePageView(site string)
}

type Service struct {
	catalog      *sitesvc.Catalog
	themes       *views.Themes
	forms        FormMounter
	views        PageViewRecorder
	logger       *slog.Logger
	errorHandler handler.ErrorHandler
}

type Option func(*Service)

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

func WithPageViewRecorder(r PageViewRecorder) Option {
	return func(s *Service) {
		s.views = r
	}
}

func WithErrorHandler(h handler.ErrorHandler) Option {
	return func(s *Service) {
		if h != nil {
			s.errorHandler = h
		}
	}
}

func NewService(catalog *sitesvc.Catalog, themes *views.Themes, forms FormMounter, opts ...Option) *Service {
	s := &Service{
		catalog: catalog,
		themes:  themes,
		forms:   forms,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With(logger.Component("site_module"))
	if s.errorHandler == nil {
		s.errorHandler = handler.NewErrorHandler(s.logger, handler.ErrorHandlerConfig{})
	}
	return s
}

// Handle returns a router serving only the module routes.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	s.Routes(r)
	return r
}

// Routes registers "/" and "/s/{slug}" on r.
func (s *Service) Routes(r chi.Router) {
	r.Get("/", handler.Wrap(s.landing,
		handler.WithErrorHandler[landingRequest](s.errorHandler),
	))
	r.Get("/s/{slug}", handler.Wrap(s.landing,
		handler.WithBinders[landingRequest](binder.Path(chi.URLParam)),
		handler.WithErrorHandler[landingRequest](s.errorHandler),
	))
}

type landingRequest struct {
	Slug string `path:"slug"`
}

func (s *Service) landing(ctx handler.Context, req landingRequest) handler.Response {
	st := s.catalog.Default()
	if req.Slug != "" {
		var err error
		if st, err = s.catalog.Lookup(req.Slug); err != nil {
			s.logger.DebugContext(ctx, "unknown site requested", logger.Site(req.Slug))
			return handler.Error(handler.ErrNotFound)
		}
	}

	formID, state := s.forms.Mount(ctx.Request(), st)
	if s.views != nil {
		s.views.ObservePageView(st.Slug)
	}

	return handler.Templ(views.Component(views.LandingPage(
		views.PageConfig{Site: st, Theme: s.themes.For(st.Slug)},
		formID,
		state,
	)))
}
