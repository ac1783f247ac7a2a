package catalog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/cloudbind/cloudbind/pkg/binding"
	"github.com/cloudbind/cloudbind/pkg/errors"
	"github.com/cloudbind/cloudbind/pkg/source"
)

// flightKey guards the one build pass shared by concurrent first callers.
const flightKey = "build"

// defaultRefreshInterval is the minimum spacing between explicit refreshes.
const defaultRefreshInterval = 10 * time.Second

// Option configures a Catalog.
type Option func(*Catalog)

// WithSkipMalformed controls the malformed-entry policy. The default (false)
// aborts the whole build on the first malformed binding, since a partial
// catalog is worse than none. With skip enabled, malformed entries are
// dropped with a warning and the rest of the catalog builds.
func WithSkipMalformed(skip bool) Option {
	return func(c *Catalog) {
		c.skipMalformed = skip
	}
}

// WithRefreshInterval sets the minimum interval between explicit Refresh
// calls. Default is 10s.
func WithRefreshInterval(d time.Duration) Option {
	return func(c *Catalog) {
		c.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// Catalog is the process-wide mapping from service id to its typed
// descriptor. It is populated lazily from the platform's raw binding data on
// first access and read-only afterwards; Refresh swaps in a complete new
// mapping or leaves the previous one untouched.
type Catalog struct {
	src           source.Source
	skipMalformed bool
	limiter       *rate.Limiter

	flight singleflight.Group

	mu      sync.RWMutex
	built   bool
	entries map[string]binding.ServiceInfo
	order   []string
}

// New creates a catalog over the given raw binding source.
func New(src source.Source, opts ...Option) *Catalog {
	c := &Catalog{
		src:     src,
		limiter: rate.NewLimiter(rate.Every(defaultRefreshInterval), 1),
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Resolve returns the full mapping from id to service info, triggering the
// one-time fetch-and-parse pass on first call. Concurrent first callers share
// exactly one pass and observe the same completed catalog or the same
// failure. The returned map is a copy; the catalog itself stays immutable.
func (c *Catalog) Resolve(ctx context.Context) (map[string]binding.ServiceInfo, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]binding.ServiceInfo, len(c.entries))
	for id, info := range c.entries {
		out[id] = info
	}
	return out, nil
}

// LookupByID returns the service info bound under id, or an UNKNOWN_SERVICE
// error when the id is not bound.
func (c *Catalog) LookupByID(ctx context.Context, id string) (binding.ServiceInfo, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	info, ok := c.entries[id]
	if !ok {
		return nil, errors.NewWithContext(errors.CodeUnknownService,
			"no service bound under id", map[string]any{"id": id})
	}
	return info, nil
}

// LookupByLabel returns all service infos of the given kind in first-seen
// order. No match is an empty result, not an error.
func (c *Catalog) LookupByLabel(ctx context.Context, label string) ([]binding.ServiceInfo, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matches []binding.ServiceInfo
	for _, id := range c.order {
		if info := c.entries[id]; info.Label() == label {
			matches = append(matches, info)
		}
	}
	return matches, nil
}

// IDs returns the bound service ids in first-seen order.
func (c *Catalog) IDs(ctx context.Context) ([]string, error) {
	if err := c.ensure(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]string, len(c.order))
	copy(out, c.order)
	return out, nil
}

// Refresh rebuilds the catalog from the source. On failure the previously
// cached catalog is retained. Refreshes are throttled; a throttled call
// fails without touching the source.
func (c *Catalog) Refresh(ctx context.Context) error {
	if !c.limiter.Allow() {
		return errors.New(errors.CodeCatalogUnavailable,
			"refresh throttled, previous catalog retained")
	}

	_, err, _ := c.flight.Do(flightKey, func() (any, error) {
		return nil, c.build(ctx)
	})
	return err
}

// ensure runs the lazy one-time build, single-flighted so at most one
// fetch-and-parse pass executes under concurrent first access.
func (c *Catalog) ensure(ctx context.Context) error {
	c.mu.RLock()
	built := c.built
	c.mu.RUnlock()
	if built {
		return nil
	}

	_, err, _ := c.flight.Do(flightKey, func() (any, error) {
		// a racing caller may have completed the build already
		c.mu.RLock()
		built := c.built
		c.mu.RUnlock()
		if built {
			return nil, nil
		}
		return nil, c.build(ctx)
	})
	return err
}

// build fetches the raw bindings, parses every entry, and swaps the complete
// result in. No partial catalog is ever exposed.
func (c *Catalog) build(ctx context.Context) error {
	buildID := uuid.New().String()
	start := time.Now()
	defer func() {
		buildDuration.Observe(time.Since(start).Seconds())
	}()

	slog.Debug("building service catalog",
		slog.String("build", buildID),
		slog.String("source", c.src.Name()),
	)

	raw, err := c.src.Fetch(ctx)
	if err != nil {
		builds.WithLabelValues("failure").Inc()
		return errors.Wrap(errors.CodeCatalogUnavailable,
			"failed to fetch platform bindings", err)
	}

	entries := make(map[string]binding.ServiceInfo, len(raw))
	order := make([]string, 0, len(raw))

	for _, rb := range raw {
		info, err := parseEntry(rb)
		if err == nil {
			if _, dup := entries[info.ID()]; dup {
				err = errors.NewWithContext(errors.CodeMalformedCredential,
					"duplicate service id", map[string]any{"id": info.ID()})
			}
		}
		if err != nil {
			if c.skipMalformed {
				slog.Warn("skipping malformed binding",
					slog.String("build", buildID),
					slog.String("id", rb.ID),
					slog.String("uri", binding.StripCredentials(rb.URI)),
					slog.Any("error", err),
				)
				continue
			}
			builds.WithLabelValues("failure").Inc()
			return errors.WrapWithContext(errors.CodeCatalogUnavailable,
				"malformed binding entry", err, map[string]any{"id": rb.ID})
		}

		entries[info.ID()] = info
		order = append(order, info.ID())
	}

	c.mu.Lock()
	c.entries = entries
	c.order = order
	c.built = true
	c.mu.Unlock()

	builds.WithLabelValues("success").Inc()
	catalogEntries.Set(float64(len(entries)))

	slog.Debug("service catalog built",
		slog.String("build", buildID),
		slog.Int("entries", len(entries)),
		slog.Duration("duration", time.Since(start)),
	)
	return nil
}

// parseEntry turns one raw binding into its typed service info.
func parseEntry(rb source.RawBinding) (binding.ServiceInfo, error) {
	desc, err := binding.ParseURI(rb.URI, rb.Scheme)
	if err != nil {
		return nil, err
	}
	return binding.NewInfo(rb.Kind, rb.ID, desc)
}
