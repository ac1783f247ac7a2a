package source

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Multi fans in raw bindings from several sources. Sources are fetched in
// parallel; the combined result preserves the order sources were given, then
// each source's own order. Any source failing fails the whole fetch, so the
// catalog never builds from a partial picture of the platform.
type Multi struct {
	sources []Source
}

// NewMulti creates a fan-in source over the given sources.
func NewMulti(sources ...Source) *Multi {
	return &Multi{sources: sources}
}

// Name identifies the source.
func (m *Multi) Name() string { return "multi" }

// Fetch gathers all sources concurrently.
func (m *Multi) Fetch(ctx context.Context) ([]RawBinding, error) {
	results := make([][]RawBinding, len(m.sources))

	g, gctx := errgroup.WithContext(ctx)
	for i, src := range m.sources {
		i, src := i, src
		g.Go(func() error {
			bindings, err := src.Fetch(gctx)
			if err != nil {
				return err
			}
			results[i] = bindings
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var combined []RawBinding
	for _, bindings := range results {
		combined = append(combined, bindings...)
	}
	return combined, nil
}
