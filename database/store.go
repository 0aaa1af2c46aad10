package database

import (
	"context"
	"sync"
	"time"

	"prolink/config"
	"prolink/utils"
)

// Logical entity names resolved through the configuration gate.
const (
	EntityUsers         = "users"
	EntityProfessionals = "professionals"
	EntityBookings      = "bookings"
	EntityMessages      = "messages"
	EntityConversations = "conversations"
	EntityTranslations  = "translations"
)

// Store is the process-wide in-memory collection layer. Access is routed
// through configuration-resolved collection names so the physical backing
// name stays decoupled from the logical entity.
type Store struct {
	byLogical map[string]*Collection
}

// Collection holds one entity's records behind a single-writer lock. Every
// operation models a network call: it returns only after an artificial
// delay, and can be switched to fail with an Unavailable error to simulate
// upstream outage.
type Collection struct {
	name    string
	latency time.Duration

	mu          sync.Mutex
	docs        []any
	unavailable bool
}

// NewStore builds the collection set from the loaded configuration. It
// fails fast if the configuration gate has not completed.
func NewStore() (*Store, error) {
	if !config.Loaded() {
		return nil, utils.ConfigurationError("entity store requires a loaded configuration", nil)
	}
	cfg := config.AppConfig
	names := map[string]string{
		EntityUsers:         cfg.Collections.Users,
		EntityProfessionals: cfg.Collections.Professionals,
		EntityBookings:      cfg.Collections.Bookings,
		EntityMessages:      cfg.Collections.Messages,
		EntityConversations: cfg.Collections.Conversations,
		EntityTranslations:  cfg.Collections.Translations,
	}
	s := &Store{byLogical: make(map[string]*Collection, len(names))}
	for logical, backing := range names {
		s.byLogical[logical] = &Collection{name: backing, latency: cfg.SimLatency()}
	}
	return s, nil
}

// Resolve maps a logical entity name to its collection handle.
func (s *Store) Resolve(logical string) (*Collection, error) {
	col, ok := s.byLogical[logical]
	if !ok {
		return nil, utils.ConfigurationError("no collection bound for logical entity "+logical, nil)
	}
	return col, nil
}

// Name returns the configured backing collection identifier.
func (c *Collection) Name() string {
	return c.name
}

// SetUnavailable toggles simulated upstream outage. While set, every
// operation fails with an Unavailable error after the usual delay.
func (c *Collection) SetUnavailable(down bool) {
	c.mu.Lock()
	c.unavailable = down
	c.mu.Unlock()
}

// simulate injects the artificial network delay and reports outage. It is
// called before the collection lock is taken so concurrent readers wait
// without serializing on each other.
func (c *Collection) simulate(ctx context.Context) error {
	if c.latency > 0 {
		select {
		case <-time.After(c.latency):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	c.mu.Lock()
	down := c.unavailable
	c.mu.Unlock()
	if down {
		return utils.UnavailableError(c.name + " collection is unavailable")
	}
	return nil
}

// FindAll returns copies of all records matching the predicate. A nil
// predicate matches everything.
func (c *Collection) FindAll(ctx context.Context, pred func(any) bool) ([]any, error) {
	if err := c.simulate(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []any
	for _, doc := range c.docs {
		if pred == nil || pred(doc) {
			out = append(out, doc)
		}
	}
	return out, nil
}

// FindOne returns the first record matching the predicate, or nil when
// nothing matches. Absence is not an error; callers decide.
func (c *Collection) FindOne(ctx context.Context, pred func(any) bool) (any, error) {
	if err := c.simulate(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if pred(doc) {
			return doc, nil
		}
	}
	return nil, nil
}

// Append adds a record. Records are stored by value; the collection never
// aliases caller memory.
func (c *Collection) Append(ctx context.Context, doc any) error {
	if err := c.simulate(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.docs = append(c.docs, doc)
	return nil
}

// Update replaces every record matching the predicate with the result of
// fn and returns how many were touched.
func (c *Collection) Update(ctx context.Context, pred func(any) bool, fn func(any) any) (int, error) {
	if err := c.simulate(ctx); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i, doc := range c.docs {
		if pred(doc) {
			c.docs[i] = fn(doc)
			n++
		}
	}
	return n, nil
}

// Count returns the number of stored records.
func (c *Collection) Count(ctx context.Context) (int, error) {
	if err := c.simulate(ctx); err != nil {
		return 0, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs), nil
}

// AppendLocked runs fn under the collection's writer lock and appends its
// result, so server-assigned fields (ids, timestamps) are computed inside
// the critical section and a single reader observes them in append order.
func (c *Collection) AppendLocked(ctx context.Context, fn func() any) (any, error) {
	if err := c.simulate(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	doc := fn()
	c.docs = append(c.docs, doc)
	return doc, nil
}
