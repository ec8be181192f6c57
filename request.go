package rhino

import (
	"bytes"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Frame is one entry in a request's routing-context stack (spec.md 3):
// it remembers the script-name prefix in effect when a mapper was
// entered, the mapper itself, and — once matching succeeds — the route
// that was selected. Frames are appended when entering a mapper and
// amended in place when its route matches (spec.md 4.3 dispatch).
type Frame struct {
	Root   string
	Mapper *Mapper
	Route  *Route
}

// Request is a read-mostly view over an incoming *http.Request
// (spec.md 3/4.6): uppercased method, script-name/path-info split,
// case-insensitive headers (reused directly from net/http, see DESIGN.md),
// a cached raw-body accessor, a cached parsed-form accessor, and the
// routing-context stack consumed by URL reversal.
type Request struct {
	raw *http.Request

	scriptName string
	pathInfo   string

	routingArgs map[string]string
	frames      []*Frame

	bodyRead     bool
	bodyBytes    []byte
	bodyErr      error
	deserializer func([]byte) (any, error)

	formRead   bool
	formValues url.Values
	formErr    error
}

// NewRequest wraps an inbound *http.Request. scriptName/pathInfo start as
// ""/r.URL.Path; a mapper's dispatch mutates them as prefix templates are
// consumed (spec.md 4.2 match: "the remainder of the path past the match
// becomes the new path-info... consumed prefix is appended to
// script-name").
func NewRequest(r *http.Request) *Request {
	return &Request{
		raw:         r,
		pathInfo:    r.URL.Path,
		routingArgs: map[string]string{},
	}
}

// Raw returns the underlying *http.Request, for handlers that need direct
// access to transport-level detail this package does not model.
func (req *Request) Raw() *http.Request { return req.raw }

// Method returns the uppercased HTTP method.
func (req *Request) Method() string { return strings.ToUpper(req.raw.Method) }

// ScriptName returns the path prefix consumed by nested mapper dispatch
// so far.
func (req *Request) ScriptName() string { return req.scriptName }

// PathInfo returns the remaining, not-yet-matched path suffix.
func (req *Request) PathInfo() string { return req.pathInfo }

// Header returns the request's headers. net/http.Header is already the
// idiomatic case-insensitive multimap for Go (canonical casing on
// read/write via textproto.CanonicalMIMEHeaderKey) — see DESIGN.md for why
// this package does not introduce a second header type to satisfy
// spec.md 9 "Case-insensitive headers" when the standard library already
// provides one.
func (req *Request) Header() http.Header { return req.raw.Header }

// Query returns the parsed query-string multimap.
func (req *Request) Query() url.Values { return req.raw.URL.Query() }

// URL returns the request's own URL, used as the base for relative
// Location resolution (response.go normalizeLocation) and for
// scheme+host-stripping in URLFor.
func (req *Request) URL() *url.URL { return req.raw.URL }

// RoutingArgs returns the named parameters captured by the route that
// matched this request, populated during dispatch.
func (req *Request) RoutingArgs() map[string]string { return req.routingArgs }

// setRoutingArgs replaces the routing-args map, used when a resource's
// from_url filter (spec.md 4.5) produces a replacement kwargs set.
func (req *Request) setRoutingArgs(args map[string]string) { req.routingArgs = args }

// SetDeserializer installs a request-body reader invoked by Body instead
// of the raw bytes (spec.md 4.5 "If the winner carries a deserializer,
// install it as the request-body reader").
func (req *Request) SetDeserializer(fn func([]byte) (any, error)) { req.deserializer = fn }

// Body reads and caches the full request body (spec.md 4.6 "body reads
// exactly content-length bytes from input on first access and caches").
// If a deserializer was installed, its result is returned instead of the
// raw bytes, still memoized.
func (req *Request) Body() (any, error) {
	if !req.bodyRead {
		req.bodyBytes, req.bodyErr = io.ReadAll(req.raw.Body)
		req.bodyRead = true
	}
	if req.bodyErr != nil {
		return nil, req.bodyErr
	}
	if req.deserializer != nil {
		return req.deserializer(req.bodyBytes)
	}
	return req.bodyBytes, nil
}

// RawBody returns the cached raw body bytes, bypassing any installed
// deserializer.
func (req *Request) RawBody() ([]byte, error) {
	if !req.bodyRead {
		req.bodyBytes, req.bodyErr = io.ReadAll(req.raw.Body)
		req.bodyRead = true
	}
	return req.bodyBytes, req.bodyErr
}

// Form parses and caches the request body as a URL-encoded or
// multipart form (spec.md 4.6 "form re-parses input as a
// multipart/url-encoded form... to avoid query-string contamination").
func (req *Request) Form() (url.Values, error) {
	if req.formRead {
		return req.formValues, req.formErr
	}
	req.formRead = true
	body, err := req.RawBody()
	if err != nil {
		req.formErr = err
		return nil, err
	}
	ct := req.Header().Get(HeaderContentType)
	if ct == ContentTypeForm || ct == "" {
		vals, err := url.ParseQuery(string(body))
		req.formValues, req.formErr = vals, err
		return vals, err
	}
	// multipart form bodies are parsed via the stdlib's own multipart
	// reader, reusing raw.ParseMultipartForm against a reconstructed
	// body so the original io.Reader (already drained into body above)
	// is not required twice.
	clone := req.raw.Clone(req.raw.Context())
	clone.Body = io.NopCloser(bytes.NewReader(body))
	if err := clone.ParseMultipartForm(32 << 20); err != nil {
		req.formErr = err
		return nil, err
	}
	req.formValues, req.formErr = clone.PostForm, nil
	return clone.PostForm, nil
}

// Cookie returns a named cookie, mirroring http.Request.Cookie.
func (req *Request) Cookie(name string) (*http.Cookie, error) {
	return req.raw.Cookie(name)
}

// pushFrame appends a new routing-context frame for mapper m, rooted at
// the request's current script-name (spec.md 4.3 "append a routing-context
// frame (root=script-name at entry, mapper=self, route=none)").
func (req *Request) pushFrame(m *Mapper) *Frame {
	f := &Frame{Root: req.scriptName, Mapper: m}
	req.frames = append(req.frames, f)
	return f
}

// popFrame removes the most recently pushed frame, restoring the caller's
// view of the routing-context stack once a nested dispatch returns.
func (req *Request) popFrame() {
	req.frames = req.frames[:len(req.frames)-1]
}

// topFrame returns the innermost routing-context frame, or nil if none has
// been pushed yet.
func (req *Request) topFrame() *Frame {
	if len(req.frames) == 0 {
		return nil
	}
	return req.frames[len(req.frames)-1]
}

// URLFor delegates to the mapper URL reverser using the current
// routing-context stack (spec.md 4.6 "url_for delegates to the mapper URL
// reverser using the current routing-context stack"). target follows the
// symbolic reference grammar of spec.md 4.3 build_url; query, if non-nil,
// is appended as a query string.
func (req *Request) URLFor(target string, positional []string, keyed map[string]string, query url.Values) (string, error) {
	if len(req.frames) == 0 {
		return "", &ArgumentError{Reason: "url_for: no active routing context"}
	}
	path, err := buildURL(req.frames, target, positional, keyed)
	if err != nil {
		return "", err
	}
	if len(query) > 0 {
		path += "?" + query.Encode()
	}
	return path, nil
}
