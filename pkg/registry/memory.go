package registry

import (
	"context"
	"sync"

	"github.com/cloudbind/cloudbind/pkg/binding"
	"github.com/cloudbind/cloudbind/pkg/errors"
)

// MemorySink is an in-process registration sink for applications without a
// dependency-injection container. It rejects duplicate ids, retrieves
// entries by id or label, and invokes each entry's factory at most once.
type MemorySink struct {
	mu      sync.Mutex
	entries map[string]*memoryEntry
	order   []string
}

type memoryEntry struct {
	info    binding.ServiceInfo
	factory Factory

	once   sync.Once
	object any
	err    error
}

// NewMemorySink creates an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{entries: make(map[string]*memoryEntry)}
}

// Register implements Sink. Duplicate ids are rejected.
func (s *MemorySink) Register(id string, info binding.ServiceInfo, factory Factory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[id]; exists {
		return errors.NewWithContext(errors.CodeRegistrationFailed,
			"id already registered", map[string]any{"id": id})
	}

	s.entries[id] = &memoryEntry{info: info, factory: factory}
	s.order = append(s.order, id)
	return nil
}

// Get returns the client configuration object registered under id,
// constructing it on first request. A factory failure is returned to every
// caller; the factory is not retried.
func (s *MemorySink) Get(ctx context.Context, id string) (any, error) {
	s.mu.Lock()
	entry, ok := s.entries[id]
	s.mu.Unlock()

	if !ok {
		return nil, errors.NewWithContext(errors.CodeUnknownService,
			"no service registered under id", map[string]any{"id": id})
	}

	entry.once.Do(func() {
		entry.object, entry.err = entry.factory(ctx)
	})
	return entry.object, entry.err
}

// Info returns the service info registered under id.
func (s *MemorySink) Info(id string) (binding.ServiceInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[id]
	if !ok {
		return nil, errors.NewWithContext(errors.CodeUnknownService,
			"no service registered under id", map[string]any{"id": id})
	}
	return entry.info, nil
}

// InfosByLabel returns the registered service infos of one kind, in
// registration order.
func (s *MemorySink) InfosByLabel(label string) []binding.ServiceInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	var matches []binding.ServiceInfo
	for _, id := range s.order {
		if entry := s.entries[id]; entry.info.Label() == label {
			matches = append(matches, entry.info)
		}
	}
	return matches
}

// IDs returns the registered ids in registration order.
func (s *MemorySink) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}
