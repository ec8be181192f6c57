package rhino

import "strings"

// Target is the polymorphic thing a Route points at (spec.md 9
// "Polymorphic targets"): either a nested *Mapper or a *Resource. Both
// satisfy Dispatcher (invoked with a request+context) and may optionally
// customize URL construction via BuildURLer.
type Target interface {
	Dispatcher

	// identity returns the comparable value used by the Mapper's
	// target-identity index (spec.md 3 "secondary index from target
	// identity → first route bound to that target").
	identity() any
}

// BuildURLer lets a target override URL construction for its own routes
// (spec.md 4.2 "If the target resource exposes its own build_url method,
// it is called with the template builder as first argument..."). tpl is
// the template whose Build the target may call directly or replace.
type BuildURLer interface {
	BuildURL(tpl *Template, params map[string]string, ranges Ranges) (string, error)
}

// Route binds a compiled Template to a Target, with an optional symbolic
// name (spec.md 3). Routes are immutable after NewRoute.
type Route struct {
	Name     string
	Template *Template
	Target   Target
}

// NewRoute compiles template against ranges and validates the route
// invariants from spec.md 3: the name (if present) contains no ':' or '/'
// and does not start with '.'; no parameter name is "ctx" or starts with
// "_".
func NewRoute(name, template string, target Target, ranges Ranges) (*Route, error) {
	if name != "" {
		if strings.ContainsAny(name, ":/") {
			return nil, &ArgumentError{Reason: "route name " + name + " must not contain ':' or '/'"}
		}
		if strings.HasPrefix(name, ".") {
			return nil, &ArgumentError{Reason: "route name " + name + " must not start with '.'"}
		}
	}
	tpl, err := Compile(template, ranges)
	if err != nil {
		return nil, err
	}
	for _, p := range tpl.Params() {
		if p == "ctx" {
			return nil, &TemplateError{Template: template, Reason: "parameter name 'ctx' is reserved"}
		}
		if strings.HasPrefix(p, "_") {
			return nil, &TemplateError{Template: template, Reason: "parameter names must not start with '_'"}
		}
	}
	return &Route{Name: name, Template: tpl, Target: target}, nil
}

// matchResult is what a successful Route.Match produces: the routing
// arguments captured from the path, plus (for prefix templates) how much
// of the path was consumed.
type matchResult struct {
	args     map[string]string
	consumed int
}

// Match attempts to match path against the route's template
// (spec.md 4.2 match). ok is false when the template does not match.
func (r *Route) Match(path string) (matchResult, bool) {
	args, consumed, ok := r.Template.Match(path)
	if !ok {
		return matchResult{}, false
	}
	return matchResult{args: args, consumed: consumed}, true
}

// Path builds a concrete path string for this route (spec.md 4.2 path):
// keyed values take precedence, then positional values are consumed in
// template-declared order; leftover positional values are an argument
// error. Keyed values the template does not reference are not an error:
// the template's own builder ignores them, and a BuildURLer target
// receives them with the rest. If the target implements BuildURLer, it is
// delegated to for the final construction.
func (r *Route) Path(positional []string, keyed map[string]string, ranges Ranges) (string, error) {
	params := map[string]string{}
	for k, v := range keyed {
		params[k] = v
	}
	used := map[string]bool{}
	for k := range keyed {
		used[k] = true
	}

	posIdx := 0
	for _, name := range r.Template.Params() {
		if used[name] {
			continue
		}
		if posIdx < len(positional) {
			params[name] = positional[posIdx]
			used[name] = true
			posIdx++
		}
	}
	if posIdx < len(positional) {
		return "", &ArgumentError{Reason: "too many positional parameters for route"}
	}

	if b, ok := r.Target.(BuildURLer); ok {
		extra := map[string]string{}
		for k, v := range params {
			extra[k] = v
		}
		return b.BuildURL(r.Template, extra, ranges)
	}
	return r.Template.Build(params, ranges)
}
