// Package handler turns typed functions into http.HandlerFuncs.
//
// A HandlerFunc receives a Context and a request struct filled by binders
// and returns a Response. Responses adapt to the client: Templ and
// TemplPartial send datastar element patches to datastar requests and plain
// HTML to everyone else, JSON serves API clients and SSE streams several
// patches over one response.
//
//	r.Post("/contact/{formID}/submit", handler.Wrap(m.submit,
//		handler.WithBinders[submitRequest](
//			binder.Path(chi.URLParam),
//			binder.Require(binder.Signals(), binder.JSON(), binder.Form()),
//		),
//		handler.WithErrorHandler[submitRequest](errorHandler),
//	))
//
// Errors returned from binders or renderers, and errors wrapped with Error,
// go to the route's ErrorHandler. NewErrorHandler classifies them:
// HTTPError keeps its status, validator.ValidationErrors become 422 and
// binder failures become 400 or 415.
package handler
