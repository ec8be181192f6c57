package rhino

import (
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"

	"github.com/arkd0ng/rhino/errorutil"
)

// HTTPError is the carrier for spec.md 4.8's HTTP exception taxonomy: an
// error that already knows the canonical response it should produce.
//
// HTTPError satisfies errorutil's NumericCoder and Contexter shapes
// (Code() int, Context() map[string]any) so that application code written
// against errorutil.GetNumericCode / errorutil.HasNumericCode keeps working
// unmodified against errors raised by this package — the HTTP exception
// hierarchy is a concrete instance of the teacher's coded-error idiom, not
// a competing error type. WithCause goes further and actually wraps the
// underlying cause through errorutil.WrapWithNumericCode, so the cause
// itself carries a real NumericCoder/Unwrapper pair that
// errorutil.GetNumericCode/HasNumericCode can walk to.
type HTTPError struct {
	StatusCode int
	Message    string
	Details    string
	Header     http.Header
	cause      error
}

// Error implements the error interface.
func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%d %s: %s", e.StatusCode, http.StatusText(e.StatusCode), e.Message)
}

// Code implements errorutil.NumericCoder.
func (e *HTTPError) Code() int { return e.StatusCode }

// Unwrap implements errorutil.Unwrapper.
func (e *HTTPError) Unwrap() error { return e.cause }

// Context implements errorutil.Contexter.
func (e *HTTPError) Context() map[string]any {
	ctx := map[string]any{"status": e.StatusCode}
	if e.Details != "" {
		ctx["details"] = e.Details
	}
	return ctx
}

// Response builds the canonical pre-built response for this exception
// (spec.md 4.8: "produce a canonical pre-built response").
func (e *HTTPError) Response() *Response {
	resp := NewResponse(e.StatusCode)
	for k, vs := range e.Header {
		for _, v := range vs {
			resp.Header.Add(k, v)
		}
	}
	if e.StatusCode == http.StatusNoContent || e.StatusCode == http.StatusNotModified {
		return resp
	}
	resp.Header.Set(HeaderContentType, ContentTypeHTML)
	resp.Body = renderErrorHTML(e.StatusCode, e.Message, e.Details)
	return resp
}

func renderErrorHTML(code int, message, details string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<html><head><title>%d %s</title></head><body>\n", code, html.EscapeString(http.StatusText(code)))
	fmt.Fprintf(&b, "<h1>%d %s</h1>\n", code, html.EscapeString(http.StatusText(code)))
	if message != "" {
		fmt.Fprintf(&b, "<p>%s</p>\n", html.EscapeString(message))
	}
	if details != "" {
		fmt.Fprintf(&b, "<pre>%s</pre>\n", html.EscapeString(details))
	}
	b.WriteString("</body></html>\n")
	return b.String()
}

// NewHTTPError builds a generic HTTP exception for the given status code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{StatusCode: code, Message: message}
}

// WithDetails attaches a details block rendered in the default error body.
func (e *HTTPError) WithDetails(details string) *HTTPError {
	e.Details = details
	return e
}

// WithCause records the underlying error that triggered this exception. The
// cause is wrapped with errorutil.WrapWithNumericCode before being stored,
// so errors.Unwrap(e) yields an errorutil-constructed error carrying e's
// status code, retrievable by errorutil.GetNumericCode/HasNumericCode
// walking the chain.
func (e *HTTPError) WithCause(cause error) *HTTPError {
	if cause == nil {
		e.cause = nil
		return e
	}
	e.cause = errorutil.WrapWithNumericCode(cause, e.StatusCode, e.Message)
	return e
}

// Redirection constructs a 301/302/303/307 response; location is required
// (spec.md 4.8 "Redirections ... require a location argument").
func Redirection(code int, location, message string) *HTTPError {
	switch code {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther, http.StatusTemporaryRedirect:
	default:
		panic(fmt.Sprintf("rhino: %d is not a supported redirection status", code))
	}
	if location == "" {
		panic("rhino: redirection requires a non-empty location")
	}
	e := NewHTTPError(code, message)
	e.Header = http.Header{HeaderLocation: []string{location}}
	return e
}

// BadRequest is a 400.
func BadRequest(message string) *HTTPError { return NewHTTPError(http.StatusBadRequest, message) }

// Unauthorized is a 401; scheme and params render into WWW-Authenticate
// (spec.md 4.8).
func Unauthorized(message, scheme string, params map[string]string) *HTTPError {
	e := NewHTTPError(http.StatusUnauthorized, message)
	e.Header = http.Header{HeaderWWWAuthenticate: []string{renderChallenge(scheme, params)}}
	return e
}

func renderChallenge(scheme string, params map[string]string) string {
	if len(params) == 0 {
		return scheme
	}
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf(`%s=%q`, k, params[k]))
	}
	return scheme + " " + strings.Join(parts, ", ")
}

// Forbidden is a 403.
func Forbidden(message string) *HTTPError { return NewHTTPError(http.StatusForbidden, message) }

// NotFound is a 404.
func NotFound(message string) *HTTPError { return NewHTTPError(http.StatusNotFound, message) }

// MethodNotAllowedError is a 405; allow lists the permitted verbs
// (spec.md 4.8 "MethodNotAllowed requires an Allow string").
func MethodNotAllowedError(message, allow string) *HTTPError {
	e := NewHTTPError(http.StatusMethodNotAllowed, message)
	e.Header = http.Header{HeaderAllow: []string{allow}}
	return e
}

// NotAcceptable is a 406.
func NotAcceptable(message string) *HTTPError {
	return NewHTTPError(http.StatusNotAcceptable, message)
}

// Gone is a 410.
func Gone(message string) *HTTPError { return NewHTTPError(http.StatusGone, message) }

// UnsupportedMediaType is a 415.
func UnsupportedMediaType(message string) *HTTPError {
	return NewHTTPError(http.StatusUnsupportedMediaType, message)
}

// InternalServerError is a 500, used when the mapper converts an
// unexpected error or recovered panic (spec.md 7).
func InternalServerError(message string) *HTTPError {
	return NewHTTPError(http.StatusInternalServerError, message)
}

// ErrNoResult is returned (wrapped in an HTTPError-free plain error) when a
// handler returns a nil value and nil error — spec.md 6: "Returning nothing
// is an error".
var ErrNoResult = fmt.Errorf("rhino: handler returned no result")

// ErrNoSuchProperty is returned by Context.Get for an unregistered
// property name (spec.md 4.4: "an unknown name is an attribute-missing
// error").
type ErrNoSuchProperty struct{ Name string }

func (e *ErrNoSuchProperty) Error() string {
	return fmt.Sprintf("rhino: context has no property %q", e.Name)
}

// TemplateError reports a malformed template grammar (spec.md 7:
// "raised at mapper construction; must not occur during request
// handling").
type TemplateError struct {
	Template string
	Reason   string
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("rhino: invalid template %q: %s", e.Template, e.Reason)
}

// ArgumentError reports a problem building a URL from parameters: a
// missing required parameter, a value that fails its range pattern, or
// leftover arguments (spec.md 7).
type ArgumentError struct {
	Reason string
}

func (e *ArgumentError) Error() string { return "rhino: " + e.Reason }
