package registry

import (
	"context"
	goerrors "errors"
	"log/slog"
	"sort"

	"github.com/cloudbind/cloudbind/pkg/binding"
	"github.com/cloudbind/cloudbind/pkg/catalog"
	"github.com/cloudbind/cloudbind/pkg/errors"
)

// Factory is a deferred constructor for one service's client configuration
// object. The sink stores it at registration time and invokes it only when
// the object is first requested.
type Factory func(ctx context.Context) (any, error)

// Sink receives one registration per catalog entry. A dependency-injection
// container adapts this interface; applications without a container can use
// MemorySink.
type Sink interface {
	Register(id string, info binding.ServiceInfo, factory Factory) error
}

// Registrar publishes every catalog entry into a registration sink, pairing
// each descriptor with a kind-appropriate connector factory.
type Registrar struct {
	connectors *ConnectorTable
}

// New creates a registrar with the default connector table.
func New() *Registrar {
	return NewWithConnectors(DefaultConnectors())
}

// NewWithConnectors creates a registrar with a custom connector table.
func NewWithConnectors(table *ConnectorTable) *Registrar {
	return &Registrar{connectors: table}
}

// RegisterAll registers every catalog entry with the sink, in id order.
// Registration is not transactional: a rejected entry is reported and the
// remaining entries are still attempted. The returned error joins one
// REGISTRATION_FAILED error per rejected id, or is nil when all entries
// registered.
func (r *Registrar) RegisterAll(ctx context.Context, cat *catalog.Catalog, sink Sink) error {
	infos, err := cat.Resolve(ctx)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(infos))
	for id := range infos {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var failures []error
	for _, id := range ids {
		info := infos[id]
		factory := r.connectors.FactoryFor(info)

		if err := sink.Register(id, info, factory); err != nil {
			slog.Warn("sink rejected service registration",
				slog.String("id", id),
				slog.String("label", info.Label()),
				slog.Any("error", err),
			)
			failures = append(failures, errors.WrapWithContext(
				errors.CodeRegistrationFailed, "failed to register service", err,
				map[string]any{"id": id}))
			continue
		}

		slog.Debug("registered service",
			slog.String("id", id),
			slog.String("label", info.Label()),
		)
	}

	return goerrors.Join(failures...)
}
