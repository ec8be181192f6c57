package rhino

// HTTP header name constants used throughout the dispatch pipeline.
//
// Go's net/http canonicalizes header names on write, but we spell them out
// explicitly here — the same way the teacher package spells out its own
// header name constants — so call sites read as header semantics rather
// than magic strings.
const (
	HeaderAccept            = "Accept"
	HeaderAllow             = "Allow"
	HeaderCacheControl      = "Cache-Control"
	HeaderContentLength     = "Content-Length"
	HeaderContentLocation   = "Content-Location"
	HeaderContentType       = "Content-Type"
	HeaderCookie            = "Cookie"
	HeaderDate              = "Date"
	HeaderETag              = "ETag"
	HeaderExpires           = "Expires"
	HeaderIfModifiedSince   = "If-Modified-Since"
	HeaderIfNoneMatch       = "If-None-Match"
	HeaderLastModified      = "Last-Modified"
	HeaderLocation          = "Location"
	HeaderSetCookie         = "Set-Cookie"
	HeaderVary              = "Vary"
	HeaderWWWAuthenticate   = "WWW-Authenticate"
	HeaderXForwardedForIETF = "X-Forwarded-For"
)

// Content-Type values used as defaults and in examples.
const (
	ContentTypeText       = "text/plain; charset=utf-8"
	ContentTypeHTML       = "text/html; charset=utf-8"
	ContentTypeJSON       = "application/json; charset=utf-8"
	ContentTypeForm       = "application/x-www-form-urlencoded"
	ContentTypeMultipart  = "multipart/form-data"
	ContentTypeOctetRange = "application/octet-stream"
)

// DefaultEncoding is the encoding used to turn text bodies into bytes
// when no explicit charset is requested.
const DefaultEncoding = "utf-8"

// DefaultContentType is assigned to a Response whose Content-Type header
// is still unset at finalization time.
const DefaultContentType = ContentTypeText

// conditionalHeaderWhitelist is the header subset a 304 reduction is
// allowed to carry forward from the original 200 response (spec.md 4.7).
var conditionalHeaderWhitelist = map[string]bool{
	HeaderDate:            true,
	HeaderETag:            true,
	HeaderContentLocation: true,
	HeaderExpires:         true,
	HeaderCacheControl:    true,
	HeaderVary:            true,
}
