// Package session adds a session property to a rhino context, grounded on
// the original rhino.ext.session extension (a Beaker-backed session
// object installed as a cached context property and persisted on the
// finalize phase callback). Go has no Beaker equivalent in the example
// corpus, so persistence is implemented directly against two concrete
// backends: an in-process map and Redis.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/arkd0ng/rhino"
	"github.com/arkd0ng/rhino/random"
)

// PropertyName is the context property name handlers use to fetch the
// current request's session: rhino.Prop[*session.Session](ctx, session.PropertyName).
const PropertyName = "session"

const cookieName = "rhino_session"

// Store is the persistence backend a Session saves to and loads from.
// Implementations must be safe for concurrent use.
type Store interface {
	Load(ctx context.Context, id string) (map[string]string, error)
	Save(ctx context.Context, id string, values map[string]string, ttl time.Duration) error
}

// Session is the per-request session handle installed as a cached context
// property. It mirrors the source's SessionObject: a lazily-persisted
// key/value bag, saved once on the finalize callback only if it was
// actually touched (spec's ext/session "accessed()" check).
type Session struct {
	id       string
	isNew    bool
	store    Store
	ttl      time.Duration
	values   map[string]string
	accessed bool
	mu       sync.Mutex
}

// Get reads a session value.
func (s *Session) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessed = true
	v, ok := s.values[key]
	return v, ok
}

// Set writes a session value.
func (s *Session) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessed = true
	s.values[key] = value
}

// ID returns the session's cookie-carried identifier.
func (s *Session) ID() string { return s.id }

func (s *Session) touched() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.accessed
}

// Install registers the "session" context property on m and arranges for
// the session to be loaded from the request's cookie (or created fresh)
// on first access, and saved back to store on the finalize phase if it
// was touched during the request — grounded on
// rhino.ext.session.BeakerSession.__call__/finalize.
func Install(m *rhino.Mapper, store Store, ttl time.Duration) error {
	return m.AddContextProperty(PropertyName, func(ctx *rhino.Context) (any, error) {
		req := ctx.Request
		id, isNew := "", true
		if c, err := req.Cookie(cookieName); err == nil && c.Value != "" {
			id, isNew = c.Value, false
		}
		if id == "" {
			generated, err := random.GenString.Hex(32)
			if err != nil {
				return nil, err
			}
			id = generated
		}

		values := map[string]string{}
		if !isNew {
			loaded, err := store.Load(req.Raw().Context(), id)
			if err == nil {
				values = loaded
			}
		}

		sess := &Session{id: id, isNew: isNew, store: store, ttl: ttl, values: values}

		ctx.OnFinalize(func(_ *rhino.Request, resp *rhino.Response) {
			if !sess.touched() {
				return
			}
			if err := store.Save(req.Raw().Context(), sess.id, sess.values, sess.ttl); err != nil {
				return
			}
			resp.SetCookie(&http.Cookie{
				Name:     cookieName,
				Value:    sess.id,
				Path:     "/",
				HttpOnly: true,
				MaxAge:   int(sess.ttl.Seconds()),
			})
		})

		return sess, nil
	}, true)
}

// MemStore is an in-process Store backed by a mutex-guarded map, the
// default when no external store is configured.
type MemStore struct {
	mu   sync.Mutex
	data map[string]map[string]string
}

// NewMemStore builds an empty in-process session store.
func NewMemStore() *MemStore {
	return &MemStore{data: map[string]map[string]string{}}
}

// Load implements Store.
func (s *MemStore) Load(_ context.Context, id string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[id]
	if !ok {
		return map[string]string{}, nil
	}
	cp := make(map[string]string, len(v))
	for k, val := range v {
		cp[k] = val
	}
	return cp, nil
}

// Save implements Store.
func (s *MemStore) Save(_ context.Context, id string, values map[string]string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[id] = values
	return nil
}

// RedisStore is a Store backed by github.com/redis/go-redis/v9, for
// deployments that need sessions shared across multiple server processes
// (the concern the source addresses with Beaker's pluggable backends).
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore builds a Store against an existing Redis client. Session
// values are stored as a Redis hash under prefix+id.
func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	if prefix == "" {
		prefix = "rhino:session:"
	}
	return &RedisStore{client: client, prefix: prefix}
}

// Load implements Store.
func (s *RedisStore) Load(ctx context.Context, id string) (map[string]string, error) {
	res, err := s.client.HGetAll(ctx, s.prefix+id).Result()
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Save implements Store.
func (s *RedisStore) Save(ctx context.Context, id string, values map[string]string, ttl time.Duration) error {
	key := s.prefix + id
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)
	if len(values) > 0 {
		args := make(map[string]any, len(values))
		for k, v := range values {
			args[k] = v
		}
		pipe.HSet(ctx, key, args)
	}
	if ttl > 0 {
		pipe.Expire(ctx, key, ttl)
	}
	_, err := pipe.Exec(ctx)
	return err
}
