package rhino

import "net/http"

// Entity pairs a body with headers that describe it — content type,
// caching validators, content-encoding — without committing to a status
// code (spec.md 4.6). A handler returns an *Entity when it wants to
// describe the payload precisely but let the mapper/resource pick the
// final status (200 on first access, 304 on a conditional revalidation).
type Entity struct {
	Header http.Header
	Data   []byte

	// ETag and LastModified, when set, feed the conditional engine
	// (spec.md 4.7) before the entity is ever turned into bytes.
	ETag         string
	LastModified string
}

// NewEntity builds an Entity from raw bytes and a content type.
func NewEntity(data []byte, contentType string) *Entity {
	e := &Entity{Header: make(http.Header), Data: data}
	if contentType != "" {
		e.Header.Set(HeaderContentType, contentType)
	}
	return e
}

// WithETag attaches a strong validator, mirrored into the Header so that
// both the conditional engine and applyEntity's header merge see it.
func (e *Entity) WithETag(tag string) *Entity {
	e.ETag = tag
	e.Header.Set(HeaderETag, tag)
	return e
}

// WithLastModified attaches an HTTP-date validator.
func (e *Entity) WithLastModified(httpDate string) *Entity {
	e.LastModified = httpDate
	e.Header.Set(HeaderLastModified, httpDate)
	return e
}

// Bytes returns the entity's payload.
func (e *Entity) Bytes() []byte { return e.Data }
