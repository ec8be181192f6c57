package rhino

import (
	"net/http"
	"strings"
)

// Handler is the callable a resource invokes once content negotiation has
// picked a winner (spec.md 6 "Handler contract"). It receives the
// negotiated request and returns either a value coerced into a 200
// response or an error (an *HTTPError or any other error, both handled by
// the mapper per spec.md 7).
type Handler func(req *Request, ctx *Context) (any, error)

// HandlerMeta is one registered (verb, view, media-range) entry on a
// resource (spec.md 3 "handler-metadata"). Accepts is matched against the
// request Content-Type and Provides against the request Accept header.
type HandlerMeta struct {
	Verb     string
	View     string
	Accepts  string // media range the handler accepts on the request body
	Provides string // concrete media type the handler provides in the response

	Deserialize func(body []byte) (any, error)
	Serialize   func(v any) ([]byte, error)

	handler Handler
}

// Meta constructs a HandlerMeta bound to fn. verb is uppercased on
// registration; view "" means the default (unsuffixed) view.
func Meta(verb, view string, fn Handler) HandlerMeta {
	return HandlerMeta{Verb: strings.ToUpper(verb), View: view, handler: fn}
}

// WithAccepts sets the media range this handler accepts on request
// bodies.
func (h HandlerMeta) WithAccepts(mediaRange string) HandlerMeta { h.Accepts = mediaRange; return h }

// WithProvides sets the concrete media type this handler provides in
// responses.
func (h HandlerMeta) WithProvides(mediaType string) HandlerMeta { h.Provides = mediaType; return h }

// WithDeserialize installs a request-body deserializer for this handler.
func (h HandlerMeta) WithDeserialize(fn func([]byte) (any, error)) HandlerMeta {
	h.Deserialize = fn
	return h
}

// WithSerialize installs a response-body serializer for this handler.
func (h HandlerMeta) WithSerialize(fn func(any) ([]byte, error)) HandlerMeta {
	h.Serialize = fn
	return h
}

// MetaProvider lets a value register its own handlers when wrapped by
// Wrap, standing in for spec.md 4.5 form 1 ("wrap an instance: scan its
// attributes for callables bearing handler-metadata"). Go has no runtime
// decorator/attribute scanning, so the scan is replaced with an explicit
// method the wrapped value implements (spec.md 9 "Multiple handler
// metadata on one callable... model as a list of metadata records
// attached via a registration step").
type MetaProvider interface {
	RhinoHandlers() []HandlerMeta
}

// viewTable is the per-view verb→candidates table (spec.md 3
// "(view, verb) → [handler-metadata…] table").
type viewTable map[string]map[string][]HandlerMeta

// Resource holds a (view, verb) → handler table and implements Target,
// so it can be bound directly to a Route (spec.md 3/4.5).
type Resource struct {
	views    viewTable
	fromURL  func(req *Request, routingArgs map[string]string) (map[string]string, error)
	buildURL func(tpl *Template, params map[string]string, ranges Ranges) (string, error)
}

// NewResource builds an empty resource; handlers are added with Handle
// (spec.md 4.5 form 3: "Empty: handlers are added via explicit decorators
// on the resource instance").
func NewResource() *Resource {
	return &Resource{views: viewTable{}}
}

// Wrap builds a Resource from a value implementing MetaProvider
// (spec.md 4.5 form 1: wrap an instance, scanning for handler-metadata —
// realized here as an explicit interface rather than reflection, per
// spec.md 9's own guidance). The value must already be constructed; Wrap
// does not instantiate a type lazily.
func Wrap(v MetaProvider) *Resource {
	r := NewResource()
	for _, m := range v.RhinoHandlers() {
		r.add(m)
	}
	return r
}

// Handle registers a handler-metadata entry directly (spec.md 4.5 form 3).
func (r *Resource) Handle(m HandlerMeta) *Resource {
	r.add(m)
	return r
}

func (r *Resource) add(m HandlerMeta) {
	if r.views[m.View] == nil {
		r.views[m.View] = map[string][]HandlerMeta{}
	}
	r.views[m.View][m.Verb] = append(r.views[m.View][m.Verb], m)
}

// SetFromURL installs a filter over the route's routing-args before they
// become handler kwargs (spec.md 4.5 "if the resource exposes a from_url
// filter, call it with (request, **routing-args) and use its return
// value").
func (r *Resource) SetFromURL(fn func(req *Request, routingArgs map[string]string) (map[string]string, error)) {
	r.fromURL = fn
}

// SetBuildURL installs a BuildURLer override for routes targeting this
// resource (spec.md 4.2 "If the target resource exposes its own
// build_url method...").
func (r *Resource) SetBuildURL(fn func(tpl *Template, params map[string]string, ranges Ranges) (string, error)) {
	r.buildURL = fn
}

// BuildURL implements BuildURLer when SetBuildURL was called; otherwise it
// falls back to the template's own builder.
func (r *Resource) BuildURL(tpl *Template, params map[string]string, ranges Ranges) (string, error) {
	if r.buildURL != nil {
		return r.buildURL(tpl, params, ranges)
	}
	return tpl.Build(params, ranges)
}

// identity implements Target: a Resource's identity is itself.
func (r *Resource) identity() any { return r }

// viewOf derives the view name from a route's name (spec.md 4.5 step 1):
// the suffix after the first ';', or "" (none) if there is no ';'.
func viewOf(routeName string) string {
	idx := strings.IndexByte(routeName, ';')
	if idx < 0 {
		return ""
	}
	return routeName[idx+1:]
}

// Dispatch implements the resource dispatch algorithm, spec.md 4.5 steps
// 1-7, plus handler invocation and post-processing.
func (r *Resource) Dispatch(req *Request, ctx *Context) (*Response, error) {
	frame := req.topFrame()
	routeName := ""
	if frame != nil && frame.Route != nil {
		routeName = frame.Route.Name
	}
	view := viewOf(routeName)

	verbTable, ok := r.views[view]
	if !ok {
		return nil, NotFound("no such view")
	}

	verb := req.Method()
	candidates, ok := verbTable[verb]
	if !ok {
		if verb == http.MethodHead {
			if get, hasGet := verbTable[http.MethodGet]; hasGet {
				candidates, verb = get, http.MethodGet
				ok = true
			}
		}
	}
	if !ok {
		return nil, r.methodNotAllowed(verbTable, req)
	}

	varyAccept, varyContentType := negotiationVary(candidates)

	if ct := req.Header().Get(HeaderContentType); ct != "" {
		filtered, err := filterByAccepts(candidates, ct)
		if err != nil {
			return nil, err
		}
		candidates = filtered
	}

	if accept := req.Header().Get(HeaderAccept); accept != "" {
		filtered, err := filterByProvides(candidates, accept)
		if err != nil {
			return nil, err
		}
		candidates = filtered
	}

	if len(candidates) == 0 {
		return nil, NotAcceptable("no handler satisfies the request")
	}
	winner := candidates[0]

	if winner.Deserialize != nil {
		req.SetDeserializer(winner.Deserialize)
	}

	if r.fromURL != nil {
		filtered, err := r.fromURL(req, req.RoutingArgs())
		if err != nil {
			return nil, err
		}
		req.setRoutingArgs(filtered)
	}

	ctx.fireEnter(req)
	result, err := winner.handler(req, ctx)
	if err != nil {
		return nil, err
	}
	resp, err := coerceResponse(result)
	if err != nil {
		return nil, err
	}
	ctx.fireLeave(req, resp)

	if winner.Serialize != nil {
		encoded, err := winner.Serialize(resp.Body)
		if err != nil {
			return nil, err
		}
		resp.Body = encoded
	}
	if winner.Provides != "" && resp.Header.Get(HeaderContentType) == "" {
		resp.Header.Set(HeaderContentType, winner.Provides)
	}

	var varyNames []string
	if varyAccept {
		varyNames = append(varyNames, HeaderAccept)
	}
	if varyContentType {
		varyNames = append(varyNames, HeaderContentType)
	}
	if len(varyNames) > 0 {
		mergeVary(resp, varyNames)
	}

	return resp, nil
}

// coerceResponse turns a handler's return value into a *Response
// (spec.md 6 "they return either a response or a value coerced into a 200
// response. Returning nothing is an error").
func coerceResponse(v any) (*Response, error) {
	switch t := v.(type) {
	case nil:
		return nil, ErrNoResult
	case *Response:
		return t, nil
	default:
		return OK(t), nil
	}
}

// negotiationVary reports whether more than one distinct Provides or
// Accepts value exists among candidates (spec.md 4.5 step 4), which later
// drives the Vary header.
func negotiationVary(candidates []HandlerMeta) (varyAccept, varyContentType bool) {
	provides := map[string]bool{}
	accepts := map[string]bool{}
	for _, c := range candidates {
		if c.Provides != "" {
			provides[c.Provides] = true
		}
		if c.Accepts != "" {
			accepts[c.Accepts] = true
		}
	}
	return len(provides) > 1, len(accepts) > 1
}

// filterByAccepts keeps only candidates whose Accepts range best-fits the
// request Content-Type (spec.md 4.5 step 5).
func filterByAccepts(candidates []HandlerMeta, contentType string) ([]HandlerMeta, error) {
	best := -1
	bestFitness := -2
	bestQuality := 0.0
	ranges := ParseAcceptHeader(contentType)
	for i, c := range candidates {
		if c.Accepts == "" {
			continue
		}
		f, q := FitnessAndQuality(c.Accepts, ranges)
		if f > bestFitness || (f == bestFitness && q > bestQuality) {
			bestFitness, bestQuality, best = f, q, i
		}
	}
	if best < 0 {
		return candidates, nil
	}
	if bestFitness <= 0 || bestQuality <= 0 {
		return nil, UnsupportedMediaType("unsupported " + HeaderContentType + ": " + contentType)
	}
	return []HandlerMeta{candidates[best]}, nil
}

// filterByProvides keeps only the candidate whose Provides value best
// matches the request Accept header (spec.md 4.5 step 6).
func filterByProvides(candidates []HandlerMeta, accept string) ([]HandlerMeta, error) {
	var provided []string
	for _, c := range candidates {
		if c.Provides != "" {
			provided = append(provided, c.Provides)
		}
	}
	if len(provided) == 0 {
		return candidates, nil
	}
	best, err := BestMatch(provided, accept)
	if err != nil {
		return nil, NotAcceptable("no acceptable media type")
	}
	var out []HandlerMeta
	for _, c := range candidates {
		if c.Provides == best {
			out = append(out, c)
		}
	}
	return out, nil
}

// mergeVary merges names into the response's Vary header, case-
// insensitively deduplicated and alphabetized (spec.md 4.5
// post-processing).
func mergeVary(resp *Response, names []string) {
	existing := resp.Header.Values(HeaderVary)
	var all []string
	for _, v := range existing {
		for _, part := range strings.Split(v, ",") {
			if p := strings.TrimSpace(part); p != "" {
				all = append(all, p)
			}
		}
	}
	all = append(all, names...)
	resp.Header.Set(HeaderVary, strings.Join(sortedUnique(all), ", "))
}

// methodNotAllowed builds the 405 (or, for OPTIONS, a synthesized 200)
// response described in spec.md 4.5 step 3 and the OPTIONS default.
func (r *Resource) methodNotAllowed(verbTable map[string][]HandlerMeta, req *Request) error {
	allow := allowedVerbs(verbTable)
	if req.Method() == http.MethodOptions {
		return &optionsShortCircuit{allow: allow}
	}
	return MethodNotAllowedError("method not allowed", allow)
}

// allowedVerbs computes the Allow header value for a view's verb table,
// adding HEAD when GET is present and always including OPTIONS
// (spec.md 4.5 step 3 and "OPTIONS default").
func allowedVerbs(verbTable map[string][]HandlerMeta) string {
	seen := map[string]bool{}
	var verbs []string
	for v := range verbTable {
		if !seen[v] {
			seen[v] = true
			verbs = append(verbs, v)
		}
	}
	if seen[http.MethodGet] && !seen[http.MethodHead] {
		verbs = append(verbs, http.MethodHead)
	}
	if !seen[http.MethodOptions] {
		verbs = append(verbs, http.MethodOptions)
	}
	return strings.Join(sortedUnique(verbs), ", ")
}

// optionsShortCircuit is a sentinel error unwrapped by Mapper.runDispatch
// into a plain 200 response — an OPTIONS request against a view with no
// explicit OPTIONS handler synthesizes a 200 rather than a 405
// (spec.md 4.5 "OPTIONS default").
type optionsShortCircuit struct{ allow string }

func (e *optionsShortCircuit) Error() string { return "rhino: options short-circuit" }

// Response builds the synthesized 200 for an OPTIONS short-circuit.
func (e *optionsShortCircuit) Response() *Response {
	resp := NewResponse(http.StatusOK)
	resp.Header.Set(HeaderAllow, e.allow)
	return resp
}
