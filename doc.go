// Package rhino implements an HTTP request-dispatch core: a URL template
// compiler, an ordered route table with nested-mapper dispatch and
// symbolic URL reversal, per-resource content negotiation, a conditional-
// request (ETag/Last-Modified) engine, and a per-request context
// carrying config, properties and phase callbacks.
//
// A Mapper is the entry point. Routes are added with Mapper.Route, bound
// either to a nested *Mapper or to a *Resource built with NewResource (or
// Wrap, for types that implement MetaProvider). A Mapper implements
// http.Handler directly:
//
//	m := rhino.NewMapper()
//	res := rhino.NewResource().Handle(rhino.Meta(http.MethodGet, "", handler))
//	m.Route("home", "/", res)
//	http.ListenAndServe(":8080", m)
package rhino

import "github.com/arkd0ng/rhino/internal/version"

// Version is the package version, sourced from cfg/app.yaml the same way
// the ambient logging/errorutil packages source theirs.
var Version = version.Get()
