// Package binder decodes HTTP requests into typed request structs.
//
// Each binder reads one payload kind and reports ErrBinderNotApplicable when
// the request carries something else, so several binders can be listed for
// one endpoint and the first applicable one wins:
//
//	type submitRequest struct {
//		FormID string `path:"formID"`
//		Name   string `form:"name" json:"name"`
//		Email  string `form:"email" json:"email"`
//	}
//
//	handler.Wrap(submit, handler.WithBinders[submitRequest](
//		binder.Path(chi.URLParam),
//		binder.Require(binder.Signals(), binder.JSON(), binder.Form()),
//	))
//
// Signals reads datastar signals, JSON reads strict JSON bodies and Form
// reads urlencoded or multipart forms for clients without JavaScript. Path
// and Query read router parameters and the query string.
package binder
