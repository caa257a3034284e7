package fieldpath

import (
	"log/slog"
	"maps"
	"sync"
	"sync/atomic"

	"github.com/samber/lo"
)

type descriptorCache map[Key]*Descriptor

func (c descriptorCache) Clone() descriptorCache {
	newCache := make(descriptorCache, len(c)+1)
	maps.Copy(newCache, c)
	return newCache
}

// Resolver turns declarations into cached descriptors. It is safe for
// concurrent use; lookups of known members never take a lock.
type Resolver struct {
	mu      sync.Mutex                      // serializes cache writes
	cache   atomic.Pointer[descriptorCache] // copy-on-write cache
	catalog Catalog
	logger  *slog.Logger
}

// DefaultResolver backs the package-level helpers.
var DefaultResolver = NewResolver()

func NewResolver(opts ...Option) *Resolver {
	cfg := config{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Resolver{catalog: cfg.catalog, logger: cfg.logger}
	cache := make(descriptorCache, len(cfg.seed))
	for _, a := range cfg.seed {
		if err := a.validate(); err != nil {
			r.logger.Warn("fieldpath: skipping invalid seed", slog.String("path", a.String()), slog.Any("error", err))
			continue
		}
		r.build(a.key(), cache)
	}
	r.cache.Store(&cache)
	return r
}

// Resolve returns the descriptor for a. Declarations that are not a simple
// member or index access fail with *InvalidPathError and leave the cache
// untouched.
func (r *Resolver) Resolve(a Access) (*Descriptor, error) {
	if err := a.validate(); err != nil {
		invalidPathInc("access")
		r.logger.Debug("fieldpath: rejected declaration", slog.String("path", a.String()), slog.Any("error", err))
		return nil, err
	}
	return r.loadOrBuild(a.key()), nil
}

// Segment resolves a and binds its index into a path segment.
func (r *Resolver) Segment(a Access) (Segment, error) {
	d, err := r.Resolve(a)
	if err != nil {
		return Segment{}, err
	}
	seg := Segment{desc: d}
	if a.Index != nil {
		seg.index, seg.indexed = *a.Index, true
	}
	return seg, nil
}

// MustSegment is like Segment but panics on an invalid declaration. It is
// meant for declarations written in source.
func (r *Resolver) MustSegment(a Access) Segment {
	seg, err := r.Segment(a)
	if err != nil {
		panic(err)
	}
	return seg
}

// Segments resolves every declaration in order. The first invalid one aborts.
func (r *Resolver) Segments(accesses ...Access) ([]Segment, error) {
	segs := make([]Segment, 0, len(accesses))
	for _, a := range accesses {
		seg, err := r.Segment(a)
		if err != nil {
			return nil, err
		}
		segs = append(segs, seg)
	}
	return segs, nil
}

// ResolvePath parses a textual path such as Order.Lines[2].Sku and resolves
// each step under owner.
func (r *Resolver) ResolvePath(owner, path string) ([]Segment, error) {
	accesses, err := ParseAccess(path)
	if err != nil {
		return nil, err
	}
	return r.Segments(lo.Map(accesses, func(a Access, _ int) Access {
		a.Owner = owner
		return a
	})...)
}

// Len reports the number of cached descriptors.
func (r *Resolver) Len() int {
	return len(*r.cache.Load())
}

// Reset drops every cached descriptor. Descriptors already handed out stay
// valid; later lookups build fresh, equal ones.
func (r *Resolver) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	cache := descriptorCache{}
	r.cache.Store(&cache)
	r.logger.Debug("fieldpath: descriptor cache reset")
}

func (r *Resolver) loadOrBuild(key Key) *Descriptor {
	if d, ok := (*r.cache.Load())[key]; ok {
		descriptorLookupInc(true)
		return d
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cache := *r.cache.Load()
	if d, ok := cache[key]; ok { // TOCTOU
		descriptorLookupInc(true)
		return d
	}
	descriptorLookupInc(false)
	newCache := cache.Clone()
	d := r.build(key, newCache)
	r.cache.Store(&newCache)
	r.logger.Debug("fieldpath: descriptor cached", slog.String("member", key.String()), slog.Int("size", len(newCache)))
	return d
}

func (r *Resolver) build(key Key, cache descriptorCache) *Descriptor {
	if d, ok := cache[key]; ok {
		return d
	}
	d := newDescriptor(key, r.catalog)
	cache[key] = d
	return d
}

// Resolve resolves a with DefaultResolver.
func Resolve(a Access) (*Descriptor, error) {
	return DefaultResolver.Resolve(a)
}

// NewSegment resolves a with DefaultResolver.
func NewSegment(a Access) (Segment, error) {
	return DefaultResolver.Segment(a)
}

// MustSegment resolves a with DefaultResolver and panics if it is invalid.
func MustSegment(a Access) Segment {
	return DefaultResolver.MustSegment(a)
}
