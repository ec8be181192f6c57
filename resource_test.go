package rhino

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func withRoute(t *testing.T, r *Resource, routeName, template string) *Mapper {
	t.Helper()
	m := NewMapper()
	if _, err := m.Route(routeName, template, r); err != nil {
		t.Fatalf("Route() error = %v", err)
	}
	return m
}

func TestResourceDispatchViewFromRouteName(t *testing.T) {
	r := NewResource().
		Handle(Meta(http.MethodGet, "", func(req *Request, ctx *Context) (any, error) {
			return OK("default"), nil
		})).
		Handle(Meta(http.MethodGet, "edit", func(req *Request, ctx *Context) (any, error) {
			return OK("edit"), nil
		}))
	m := withRoute(t, r, "item;edit", "/items/edit")

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/edit", nil))
	if rec.Body.String() != "edit" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "edit")
	}
}

func TestResourceDispatchUnknownViewIsNotFound(t *testing.T) {
	r := NewResource().Handle(Meta(http.MethodGet, "", func(req *Request, ctx *Context) (any, error) {
		return OK("ok"), nil
	}))
	m := withRoute(t, r, "item;missing", "/items/missing")

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestResourceDispatchHeadFallsBackToGet(t *testing.T) {
	r := NewResource().Handle(Meta(http.MethodGet, "", func(req *Request, ctx *Context) (any, error) {
		return OK("body"), nil
	}))
	m := withRoute(t, r, "item", "/items")

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/items", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty for a HEAD request", rec.Body.String())
	}
}

func TestResourceDispatchMethodNotAllowed(t *testing.T) {
	r := NewResource().Handle(Meta(http.MethodGet, "", func(req *Request, ctx *Context) (any, error) {
		return OK("ok"), nil
	}))
	m := withRoute(t, r, "item", "/items")

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/items", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	allow := rec.Header().Get(HeaderAllow)
	if allow != "GET, HEAD, OPTIONS" {
		t.Errorf("Allow = %q, want %q", allow, "GET, HEAD, OPTIONS")
	}
}

func TestResourceDispatchOptionsDefault(t *testing.T) {
	r := NewResource().Handle(Meta(http.MethodGet, "", func(req *Request, ctx *Context) (any, error) {
		return OK("ok"), nil
	}))
	m := withRoute(t, r, "item", "/items")

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/items", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for the synthesized OPTIONS default", rec.Code)
	}
	if rec.Header().Get(HeaderAllow) != "GET, HEAD, OPTIONS" {
		t.Errorf("Allow = %q, want %q", rec.Header().Get(HeaderAllow), "GET, HEAD, OPTIONS")
	}
}

func TestResourceDispatchContentTypeFiltering(t *testing.T) {
	r := NewResource().
		Handle(Meta(http.MethodPost, "", func(req *Request, ctx *Context) (any, error) {
			return OK("json"), nil
		}).WithAccepts("application/json")).
		Handle(Meta(http.MethodPost, "", func(req *Request, ctx *Context) (any, error) {
			return OK("text"), nil
		}).WithAccepts("text/plain"))
	m := withRoute(t, r, "item", "/items")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", nil)
	req.Header.Set(HeaderContentType, "application/json")
	m.ServeHTTP(rec, req)
	if rec.Body.String() != "json" {
		t.Errorf("body = %q, want %q", rec.Body.String(), "json")
	}
	if vary := rec.Header().Get(HeaderVary); vary != HeaderContentType {
		t.Errorf("Vary = %q, want %q", vary, HeaderContentType)
	}
}

func TestResourceDispatchUnsupportedMediaType(t *testing.T) {
	r := NewResource().Handle(Meta(http.MethodPost, "", func(req *Request, ctx *Context) (any, error) {
		return OK("json"), nil
	}).WithAccepts("application/json"))
	m := withRoute(t, r, "item", "/items")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/items", nil)
	req.Header.Set(HeaderContentType, "text/plain")
	m.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Errorf("status = %d, want 415", rec.Code)
	}
}

func TestResourceDispatchNotAcceptable(t *testing.T) {
	r := NewResource().Handle(Meta(http.MethodGet, "", func(req *Request, ctx *Context) (any, error) {
		return OK("ok"), nil
	}).WithProvides("application/json"))
	m := withRoute(t, r, "item", "/items")

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/items", nil)
	req.Header.Set(HeaderAccept, "text/html")
	m.ServeHTTP(rec, req)
	if rec.Code != http.StatusNotAcceptable {
		t.Errorf("status = %d, want 406", rec.Code)
	}
}

func TestResourceDispatchSetsContentTypeFromProvides(t *testing.T) {
	r := NewResource().Handle(Meta(http.MethodGet, "", func(req *Request, ctx *Context) (any, error) {
		return OK("{}"), nil
	}).WithProvides("application/json"))
	m := withRoute(t, r, "item", "/items")

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items", nil))
	if ct := rec.Header().Get(HeaderContentType); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestResourceDispatchFromURLFiltersRoutingArgs(t *testing.T) {
	r := NewResource().Handle(Meta(http.MethodGet, "", func(req *Request, ctx *Context) (any, error) {
		return OK(req.RoutingArgs()["id"]), nil
	}))
	r.SetFromURL(func(req *Request, routingArgs map[string]string) (map[string]string, error) {
		return map[string]string{"id": "filtered-" + routingArgs["id"]}, nil
	})
	m := withRoute(t, r, "item", "/items/{id}")

	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/items/7", nil))
	if rec.Body.String() != "filtered-7" {
		t.Errorf("body = %q, want %q: from_url filter must replace routing args", rec.Body.String(), "filtered-7")
	}
}

func TestCoerceResponseNilIsError(t *testing.T) {
	if _, err := coerceResponse(nil); err != ErrNoResult {
		t.Errorf("coerceResponse(nil) error = %v, want ErrNoResult", err)
	}
}

func TestCoerceResponsePlainValueBecomes200(t *testing.T) {
	resp, err := coerceResponse("hello")
	if err != nil {
		t.Fatalf("coerceResponse() error = %v", err)
	}
	if resp.StatusCode != http.StatusOK || resp.Body != "hello" {
		t.Errorf("coerceResponse() = %+v, want 200/hello", resp)
	}
}

func TestCoerceResponsePassesThroughResponse(t *testing.T) {
	in := NoContent()
	resp, err := coerceResponse(in)
	if err != nil {
		t.Fatalf("coerceResponse() error = %v", err)
	}
	if resp != in {
		t.Error("coerceResponse() did not pass the *Response through unchanged")
	}
}
