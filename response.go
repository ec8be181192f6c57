package rhino

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Cookie mirrors http.Cookie; kept as a distinct alias so response.go does
// not force callers to import net/http just to set a cookie.
type Cookie = http.Cookie

// Response is the mutable, in-progress answer a handler builds before the
// mapper writes it to the wire (spec.md 4.6). Handlers are free to mutate
// StatusCode/Header/Body/Cookies right up until the response is finalized.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       any
	Cookies    []*Cookie

	// callbacks run, in order, after the body has been written to the
	// client — spec.md 4.4's "finalize" phase hook surfaced on the
	// response itself for handlers that want a post-write action
	// (closing a file, releasing a lock) without registering a full
	// context callback.
	callbacks []func()
}

// NewResponse builds a Response with the given status code and an empty
// header set. Body is left nil (spec.md 4.6: "a nil body is valid and
// renders as empty").
func NewResponse(code int) *Response {
	return &Response{StatusCode: code, Header: make(http.Header)}
}

// OK builds a 200 response wrapping body.
func OK(body any) *Response {
	r := NewResponse(http.StatusOK)
	r.Body = body
	return r
}

// Created builds a 201 response with a Location header.
func Created(location string, body any) *Response {
	r := NewResponse(http.StatusCreated)
	r.Header.Set(HeaderLocation, location)
	r.Body = body
	return r
}

// NoContent builds a 204 response with no body.
func NoContent() *Response {
	return NewResponse(http.StatusNoContent)
}

// SetCookie appends a cookie to be emitted on the response.
func (r *Response) SetCookie(c *Cookie) {
	r.Cookies = append(r.Cookies, c)
}

// AddCallback registers a function to run once the response body has been
// written to the client.
func (r *Response) AddCallback(fn func()) {
	r.callbacks = append(r.callbacks, fn)
}

// runCallbacks invokes and clears the post-write callbacks, in registration
// order (spec.md 4.4).
func (r *Response) runCallbacks() {
	for _, fn := range r.callbacks {
		fn()
	}
	r.callbacks = nil
}

// bodyBytes renders Body into a byte slice; an *Entity body also has its
// headers merged into the response. Supported body modes (spec.md 4.6):
// nil, string, []byte, *Entity, fmt.Stringer, or a func() (any, error)
// thunk evaluated lazily at finalize time.
func (r *Response) bodyBytes() ([]byte, error) {
	body := r.Body
	if thunk, ok := body.(func() (any, error)); ok {
		v, err := thunk()
		if err != nil {
			return nil, err
		}
		body = v
	}
	switch v := body.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	case *Entity:
		r.applyEntity(v)
		return v.Bytes(), nil
	case fmt.Stringer:
		return []byte(v.String()), nil
	default:
		return nil, &ArgumentError{Reason: fmt.Sprintf("response body has unsupported type %T", body)}
	}
}

// applyEntity merges an Entity's headers into the response without
// overriding anything already set explicitly (spec.md 4.6 "assigning an
// Entity as body merges its headers without overriding explicit ones").
func (r *Response) applyEntity(e *Entity) {
	for k, vs := range e.Header {
		if r.Header.Get(k) != "" {
			continue
		}
		for _, v := range vs {
			r.Header.Add(k, v)
		}
	}
}

// finalize normalizes the response immediately before it is written:
// Content-Length for byte/string bodies, a default Content-Type, Location
// header escaping/normalization, and the forced-empty-body rule for
// 204/304 and HEAD requests (spec.md 4.6).
func (r *Response) finalize(req *Request) ([]byte, error) {
	data, err := r.bodyBytes()
	if err != nil {
		return nil, err
	}

	if loc := r.Header.Get(HeaderLocation); loc != "" {
		r.Header.Set(HeaderLocation, normalizeLocation(loc, req))
	}

	forceEmpty := r.StatusCode == http.StatusNoContent ||
		r.StatusCode == http.StatusNotModified ||
		(req != nil && req.Method() == http.MethodHead)

	if forceEmpty {
		r.Header.Del(HeaderContentLength)
		return nil, nil
	}

	if r.Header.Get(HeaderContentType) == "" {
		r.Header.Set(HeaderContentType, DefaultContentType)
	}
	r.Header.Set(HeaderContentLength, strconv.Itoa(len(data)))
	return data, nil
}

// normalizeLocation resolves a relative Location against the request's own
// URL and re-escapes it, mirroring the reference server's behavior of
// accepting handler-supplied relative redirect targets.
func normalizeLocation(loc string, req *Request) string {
	u, err := url.Parse(loc)
	if err != nil {
		return loc
	}
	if req != nil && !u.IsAbs() {
		base := req.URL()
		u = base.ResolveReference(u)
	}
	return u.String()
}

// writeTo writes the finalized response to w. Called once per request by
// Mapper.ServeHTTP after dispatch has produced a terminal *Response.
func (r *Response) writeTo(w http.ResponseWriter, req *Request) error {
	data, err := r.finalize(req)
	if err != nil {
		return err
	}
	for _, c := range r.Cookies {
		http.SetCookie(w, c)
	}
	header := w.Header()
	for k, vs := range r.Header {
		header[k] = vs
	}
	w.WriteHeader(r.StatusCode)
	if len(data) > 0 {
		if _, err := w.Write(data); err != nil {
			return err
		}
	}
	r.runCallbacks()
	return nil
}
