package rhino

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
)

func TestRequestBodyIsCachedAcrossReads(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader("hello"))
	req := NewRequest(r)

	first, err := req.RawBody()
	if err != nil {
		t.Fatalf("RawBody() error = %v", err)
	}
	if string(first) != "hello" {
		t.Fatalf("RawBody() = %q, want hello", first)
	}

	second, err := req.RawBody()
	if err != nil {
		t.Fatalf("RawBody() (cached) error = %v", err)
	}
	if string(second) != "hello" {
		t.Errorf("RawBody() (cached) = %q, want hello", second)
	}
}

func TestRequestBodyUsesInstalledDeserializer(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader("3"))
	req := NewRequest(r)
	req.SetDeserializer(func(b []byte) (any, error) {
		return "decoded:" + string(b), nil
	})

	v, err := req.Body()
	if err != nil {
		t.Fatalf("Body() error = %v", err)
	}
	if v != "decoded:3" {
		t.Errorf("Body() = %v, want decoded:3", v)
	}
}

func TestRequestFormParsesURLEncodedBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/", strings.NewReader("name=bob&age=5"))
	r.Header.Set(HeaderContentType, ContentTypeForm)
	req := NewRequest(r)

	form, err := req.Form()
	if err != nil {
		t.Fatalf("Form() error = %v", err)
	}
	if form.Get("name") != "bob" || form.Get("age") != "5" {
		t.Errorf("Form() = %v, want name=bob age=5", form)
	}
}

func TestRequestFormDoesNotReadQueryString(t *testing.T) {
	r := httptest.NewRequest("POST", "/?name=fromquery", strings.NewReader("name=frombody"))
	r.Header.Set(HeaderContentType, ContentTypeForm)
	req := NewRequest(r)

	form, err := req.Form()
	if err != nil {
		t.Fatalf("Form() error = %v", err)
	}
	if form.Get("name") != "frombody" {
		t.Errorf("Form()[name] = %q, want frombody (query string must not contaminate form)", form.Get("name"))
	}
}

func TestRequestPushPopTopFrame(t *testing.T) {
	req := NewRequest(httptest.NewRequest("GET", "/", nil))
	if req.topFrame() != nil {
		t.Fatal("topFrame() before any push = non-nil, want nil")
	}

	m1 := NewMapper()
	f1 := req.pushFrame(m1)
	if req.topFrame() != f1 {
		t.Error("topFrame() after one push != that frame")
	}

	m2 := NewMapper()
	f2 := req.pushFrame(m2)
	if req.topFrame() != f2 {
		t.Error("topFrame() after second push != latest frame")
	}

	req.popFrame()
	if req.topFrame() != f1 {
		t.Error("topFrame() after pop != the remaining frame")
	}
}

func TestRequestURLForNoActiveRoutingContext(t *testing.T) {
	req := NewRequest(httptest.NewRequest("GET", "/", nil))
	if _, err := req.URLFor(".", nil, nil, nil); err == nil {
		t.Error("URLFor() error = nil, want error with no routing-context frames pushed")
	}
}

func TestRequestURLForAppendsQuery(t *testing.T) {
	m := NewMapper()
	if _, err := m.Route("item", "/items/{id}", NewResource().Handle(Meta("GET", "", func(req *Request, ctx *Context) (any, error) {
		return OK("ok"), nil
	}))); err != nil {
		t.Fatalf("Route() error = %v", err)
	}

	req := NewRequest(httptest.NewRequest("GET", "/items/5", nil))
	frame := req.pushFrame(m)
	frame.Route = m.byName["item"]

	path, err := req.URLFor(".", []string{"5"}, nil, url.Values{"q": {"1"}})
	if err != nil {
		t.Fatalf("URLFor() error = %v", err)
	}
	if path != "/items/5?q=1" {
		t.Errorf("URLFor() = %q, want /items/5?q=1", path)
	}
}
