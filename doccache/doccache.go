// Package doccache memoizes jsontree.Canonical over a pluggable byte store.
//
// Canonicalization is pure, so entries are content-addressed: the storage
// key is a hash of the input document and never needs invalidation. Stored
// frames carry a magic/version header (internal/wire); entries that fail
// validation are treated as foreign or corrupt and deleted on read.
package doccache

import (
	"context"
	"fmt"
	"time"

	"github.com/unkn0wn-root/jsontree"
	"github.com/unkn0wn-root/jsontree/internal/util"
	"github.com/unkn0wn-root/jsontree/internal/wire"
	pr "github.com/unkn0wn-root/jsontree/provider"
)

// Options tune the cache. Only Namespace and Provider are required; the
// rest have zero-value defaults.
type Options struct {
	// Required
	Namespace string // logical namespace to avoid collisions, e.g. "api", "config"
	Provider  pr.Provider

	Logger   Logger        // nil => NopLogger
	Hooks    Hooks         // nil => NopHooks
	TTL      time.Duration // 0 => 10m
	MaxDoc   int           // max accepted input size in bytes; 0 => unlimited
	Disabled bool          // bypass the store; every call canonicalizes

	// Codec settings for the canonicalization itself.
	Decoder jsontree.Decoder
	Encoder jsontree.Encoder
}

type Cache struct {
	ns       string
	provider pr.Provider
	log      Logger
	hooks    Hooks
	ttl      time.Duration
	maxDoc   int
	enabled  bool
	dec      jsontree.Decoder
	enc      jsontree.Encoder
}

func New(opts Options) (*Cache, error) {
	if opts.Namespace == "" {
		return nil, fmt.Errorf("doccache: namespace is required")
	}
	if opts.Provider == nil && !opts.Disabled {
		return nil, fmt.Errorf("doccache: provider is required")
	}
	return &Cache{
		ns:       opts.Namespace,
		provider: opts.Provider,
		log:      coalesce[Logger](opts.Logger, NopLogger{}),
		hooks:    coalesce[Hooks](opts.Hooks, NopHooks{}),
		ttl:      coalesce[time.Duration](opts.TTL, 10*time.Minute),
		maxDoc:   opts.MaxDoc,
		enabled:  !opts.Disabled,
		dec:      opts.Decoder,
		enc:      opts.Encoder,
	}, nil
}

func (c *Cache) Enabled() bool { return c.enabled }

func (c *Cache) Close(ctx context.Context) error {
	if c.provider != nil {
		return c.provider.Close(ctx)
	}
	return nil
}

// Canonicalize returns the canonical form of doc, served from the store
// when a valid entry exists. Parse errors pass through unwrapped and are
// never cached; provider errors degrade to a plain canonicalization.
func (c *Cache) Canonicalize(ctx context.Context, doc string) (string, error) {
	if c.maxDoc > 0 && len(doc) > c.maxDoc {
		return "", fmt.Errorf("doccache: document too large: %d > %d", len(doc), c.maxDoc)
	}
	if !c.enabled {
		return c.canonical(doc)
	}

	key := c.key(doc)
	raw, ok, err := c.provider.Get(ctx, key)
	switch {
	case err != nil:
		c.log.Warn("provider get error", Fields{"key": key, "err": err})
	case ok:
		if out, err := wire.Decode(raw); err == nil {
			return out, nil
		}
		// self-heal: the entry is foreign or corrupt
		_ = c.provider.Del(ctx, key)
		c.hooks.SelfHeal(key, "corrupt")
		c.log.Debug("dropped corrupt entry", Fields{"key": key})
	}

	out, err := c.canonical(doc)
	if err != nil {
		return "", err
	}
	frame := wire.Encode(out)
	ok, err = c.provider.Set(ctx, key, frame, int64(len(frame)), c.ttl)
	if err != nil {
		c.log.Warn("provider set error", Fields{"key": key, "err": err})
		return out, nil
	}
	if !ok {
		c.hooks.SetRejected(key)
		c.log.Debug("set rejected by provider (pressure)", Fields{"key": key})
	}
	return out, nil
}

func (c *Cache) canonical(doc string) (string, error) {
	v, err := c.dec.Decode(doc)
	if err != nil {
		return "", err
	}
	return c.enc.Encode(v)
}

func (c *Cache) key(doc string) string {
	// isolate by namespace
	return util.DocKey("canon:"+c.ns, doc)
}
