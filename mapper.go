package rhino

import (
	"net/http"
	"strings"
	"sync"

	"github.com/arkd0ng/rhino/logging"
)

// Dispatcher is anything that can turn a request+context into a response:
// a Mapper, a Resource, or a wrapper-produced decorator around either
// (spec.md 9 "Wrappers & middleware... express as a chain of interfaces
// each holding the inner").
type Dispatcher interface {
	Dispatch(req *Request, ctx *Context) (*Response, error)
}

// DispatchFunc adapts a plain function to Dispatcher.
type DispatchFunc func(req *Request, ctx *Context) (*Response, error)

// Dispatch implements Dispatcher.
func (f DispatchFunc) Dispatch(req *Request, ctx *Context) (*Response, error) { return f(req, ctx) }

// Wrapper wraps a Dispatcher with another, producing middleware
// composition (spec.md 4.3 add_wrapper). The wrapper added last runs
// outermost.
type Wrapper func(Dispatcher) Dispatcher

// contextProperty is one (name, factory, cached) triple a Mapper installs
// into every Context it dispatches through (spec.md 3/4.3).
type contextProperty struct {
	name    string
	factory ContextFactory
	cached  bool
}

// Mapper is an ordered route table that may nest other mappers
// (spec.md 3/4.3). It implements Target (so it can itself be routed to)
// and http.Handler (the server boundary, spec.md 6).
type Mapper struct {
	mu sync.RWMutex

	routes   []*Route
	byName   map[string]*Route
	byTarget map[any]*Route

	ranges     Ranges
	properties []contextProperty
	propNames  map[string]bool
	wrappers   []Wrapper

	logger *logging.Logger
	config map[string]any
}

// MapperOption configures a Mapper at construction time.
type MapperOption func(*Mapper)

// WithRanges overrides the mapper's range table; entries are merged over
// DefaultRanges.
func WithRanges(extra Ranges) MapperOption {
	return func(m *Mapper) {
		for k, v := range extra {
			m.ranges[k] = v
		}
	}
}

// WithLogger installs a structured logger used for the error-taxonomy
// logging requirement in spec.md 4.8/7 ("logged to the environment's
// error stream").
func WithLogger(l *logging.Logger) MapperOption {
	return func(m *Mapper) { m.logger = l }
}

// WithConfig seeds the mapper's ambient configuration, copied into every
// Context it builds (see newContext).
func WithConfig(cfg map[string]any) MapperOption {
	return func(m *Mapper) { m.config = cfg }
}

// NewMapper builds an empty Mapper with the default range table.
func NewMapper(opts ...MapperOption) *Mapper {
	m := &Mapper{
		byName:    make(map[string]*Route),
		byTarget:  make(map[any]*Route),
		ranges:    DefaultRanges(),
		propNames: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// identity implements Target: a Mapper's identity is itself.
func (m *Mapper) identity() any { return m }

// SetLogger installs or replaces the mapper's logger.
func (m *Mapper) SetLogger(l *logging.Logger) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.logger = l
}

// Route compiles template and adds a new route to the table
// (spec.md 3/4.2). name may be "" for an unnamed route; route names must
// be unique within this mapper.
func (m *Mapper) Route(name, template string, target Target) (*Route, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if name != "" {
		if _, dup := m.byName[name]; dup {
			return nil, &ArgumentError{Reason: "duplicate route name " + name}
		}
	}
	r, err := NewRoute(name, template, target, m.ranges)
	if err != nil {
		return nil, err
	}
	m.routes = append(m.routes, r)
	if name != "" {
		m.byName[name] = r
	}
	if _, bound := m.byTarget[target.identity()]; !bound {
		m.byTarget[target.identity()] = r
	}
	return r, nil
}

// Use appends a wrapper to the chain (spec.md 4.3 add_wrapper).
func (m *Mapper) Use(w Wrapper) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wrappers = append(m.wrappers, w)
}

// AddContextProperty records a (name, factory, cached) triple installed
// into every context this mapper dispatches through (spec.md 4.3). Names
// must be unique within the mapper.
func (m *Mapper) AddContextProperty(name string, factory ContextFactory, cached bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.propNames[name] {
		return &ArgumentError{Reason: "duplicate context property name " + name}
	}
	m.propNames[name] = true
	m.properties = append(m.properties, contextProperty{name: name, factory: factory, cached: cached})
	return nil
}

func (m *Mapper) installProperties(ctx *Context) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, p := range m.properties {
		ctx.register(p.name, p.factory, p.cached)
	}
}

func (m *Mapper) chain() Dispatcher {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var d Dispatcher = DispatchFunc(m.dispatchCore)
	for _, w := range m.wrappers {
		d = w(d)
	}
	return d
}

// Dispatch implements spec.md 4.3's dispatch: push a routing-context
// frame, install this mapper's context properties, then run the route
// table through the wrapper chain.
func (m *Mapper) Dispatch(req *Request, ctx *Context) (*Response, error) {
	req.pushFrame(m)
	m.installProperties(ctx)
	return m.chain().Dispatch(req, ctx)
}

// dispatchCore is the unwrapped route-matching loop (spec.md 4.3): the
// first route whose template matches the remaining path-info wins; a
// prefix (non-anchored) match advances script-name/path-info for the
// nested target.
func (m *Mapper) dispatchCore(req *Request, ctx *Context) (*Response, error) {
	m.mu.RLock()
	routes := m.routes
	m.mu.RUnlock()

	frame := req.topFrame()
	for _, route := range routes {
		result, ok := route.Match(req.PathInfo())
		if !ok {
			continue
		}
		frame.Route = route
		for k, v := range result.args {
			req.routingArgs[k] = v
		}
		if !route.Template.Anchored() {
			prefix := req.PathInfo()[:result.consumed]
			req.scriptName += prefix
			req.pathInfo = req.PathInfo()[result.consumed:]
		}
		return route.Target.Dispatch(req, ctx)
	}
	return nil, NotFound("no route matches " + req.PathInfo())
}

// PathFor implements spec.md 4.3's URL reverser path(target, positional,
// keyed). target may be a *Route bound to this mapper, a route name
// (optionally colon-chained into a nested mapper), or an arbitrary target
// identity looked up via the target-identity index.
func (m *Mapper) PathFor(target any, positional []string, keyed map[string]string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	switch t := target.(type) {
	case *Route:
		for _, r := range m.routes {
			if r == t {
				return r.Path(positional, keyed, m.ranges)
			}
		}
		return "", &ArgumentError{Reason: "route not bound to this mapper"}
	case string:
		if idx := strings.IndexByte(t, ':'); idx >= 0 {
			return m.pathChainLocked(t[:idx], t[idx+1:], positional, keyed)
		}
		r, ok := m.byName[t]
		if !ok {
			return "", &ArgumentError{Reason: "unknown route name " + t}
		}
		return r.Path(positional, keyed, m.ranges)
	default:
		r, ok := m.byTarget[t]
		if !ok {
			return "", &ArgumentError{Reason: "unknown target"}
		}
		return r.Path(positional, keyed, m.ranges)
	}
}

// pathChainLocked resolves a compound "head:rest" reverser name: the head
// segment's route contributes its own built path segment, then resolution
// recurses into the nested mapper it targets for the remainder
// (spec.md 4.3 "Concatenates the built path segments"). Caller holds m.mu.
func (m *Mapper) pathChainLocked(head, rest string, positional []string, keyed map[string]string) (string, error) {
	r, ok := m.byName[head]
	if !ok {
		return "", &ArgumentError{Reason: "unknown route name " + head}
	}
	segment, err := r.Path(positional, keyed, m.ranges)
	if err != nil {
		return "", err
	}
	nested, ok := r.Target.(*Mapper)
	if !ok {
		return "", &ArgumentError{Reason: head + " does not target a nested mapper"}
	}
	tail, err := nested.PathFor(rest, positional, keyed)
	if err != nil {
		return "", err
	}
	return segment + tail, nil
}

// buildURL implements spec.md 4.3's build_url: symbolic resolution of a
// reverser target against the routing-context stack built up over nested
// dispatch. Called by Request.URLFor.
func buildURL(frames []*Frame, target string, positional []string, keyed map[string]string) (string, error) {
	if len(frames) == 0 {
		return "", &ArgumentError{Reason: "url_for: empty routing-context stack"}
	}
	top := frames[len(frames)-1]

	switch {
	case target == ".":
		if top.Route == nil {
			return "", &ArgumentError{Reason: "url_for '.': no route matched yet"}
		}
		p, err := top.Mapper.PathFor(top.Route, positional, keyed)
		if err != nil {
			return "", err
		}
		return top.Root + p, nil

	case target == "/":
		root := frames[0].Root
		if root == "" {
			root = "/"
		}
		return root, nil

	case strings.HasPrefix(target, "/"):
		bottom := frames[0]
		p, err := bottom.Mapper.PathFor(target[1:], positional, keyed)
		if err != nil {
			return "", err
		}
		return bottom.Root + p, nil

	case strings.HasPrefix(target, "."):
		dots := 0
		for dots < len(target) && target[dots] == '.' {
			dots++
		}
		name := target[dots:]
		level := dots - 1
		idx := len(frames) - 1 - level
		if idx < 0 {
			return "", &ArgumentError{Reason: "url_for: relative reference exceeds routing-context depth"}
		}
		frame := frames[idx]
		p, err := frame.Mapper.PathFor(name, positional, keyed)
		if err != nil {
			return "", err
		}
		return frame.Root + p, nil

	default:
		p, err := top.Mapper.PathFor(target, positional, keyed)
		if err != nil {
			return "", err
		}
		return top.Root + p, nil
	}
}

// ServeHTTP is the server boundary (spec.md 6): build a Request/Context,
// run dispatch, apply the conditional engine, and write the response —
// the Go-native replacement for the source's WSGI entry point.
func (m *Mapper) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req := NewRequest(r)
	ctx := newContext(m.config)
	ctx.Request = req

	resp := m.runDispatch(req, ctx)
	resp = applyConditional(req, resp)

	ctx.fireFinalize(req, resp)
	if err := resp.writeTo(w, req); err != nil && m.logger != nil {
		m.logger.Error("rhino: failed writing response", "method", req.Method(), "path", r.URL.Path, "error", err.Error())
	}
	ctx.fireTeardown()
	ctx.fireClose()
}

// runDispatch executes Dispatch, converting any HTTP exception, recovered
// panic, or other error into its canonical response (spec.md 7).
func (m *Mapper) runDispatch(req *Request, ctx *Context) (resp *Response) {
	defer func() {
		if rec := recover(); rec != nil {
			if m.logger != nil {
				m.logger.Error("rhino: recovered panic in dispatch", "method", req.Method(), "path", req.raw.URL.Path, "panic", rec)
			}
			resp = InternalServerError("internal server error").Response()
		}
	}()

	result, err := m.Dispatch(req, ctx)
	if err != nil {
		if he, ok := err.(*HTTPError); ok {
			return he.Response()
		}
		if opt, ok := err.(*optionsShortCircuit); ok {
			return opt.Response()
		}
		if m.logger != nil {
			m.logger.Error("rhino: unhandled error in dispatch", "method", req.Method(), "path", req.raw.URL.Path, "error", err.Error())
		}
		return InternalServerError("internal server error").Response()
	}
	return result
}
