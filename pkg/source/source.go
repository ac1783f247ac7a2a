package source

import (
	"context"
)

// RawBinding is one service binding as exposed by the hosting platform,
// before any parsing: a stable id, the scheme the connection string is
// expected to carry, the raw connection string itself, and a kind hint
// (the platform's service tag, e.g. "oracle" or "redis").
type RawBinding struct {
	ID     string `json:"id" yaml:"id"`
	Scheme string `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	URI    string `json:"uri" yaml:"uri"`
	Kind   string `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Source exposes the platform's raw binding data. The catalog calls Fetch
// exactly once per (re)build; implementations own any retry or timeout
// policy for reaching the platform.
//
// The order of the returned slice is the first-seen order the catalog
// preserves for label lookups, so implementations must return a
// deterministic order.
type Source interface {
	// Name identifies the source in logs and errors.
	Name() string
	// Fetch returns the raw bindings. Failures are classified as
	// SOURCE_UNAVAILABLE.
	Fetch(ctx context.Context) ([]RawBinding, error)
}

// Factory creates sources with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateEnvSource() Source
	CreateFileSource(path string) Source
	CreateDirSource() Source
	CreateKubernetesSource() Source
}

// DefaultFactory creates sources with production dependencies.
type DefaultFactory struct {
	// Namespace scopes the kubernetes source. Empty means "default".
	Namespace string
	// Kubeconfig is an explicit kubeconfig path for the kubernetes source.
	// Empty means automatic discovery.
	Kubeconfig string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory() *DefaultFactory {
	return &DefaultFactory{}
}

// CreateEnvSource creates a source reading the CLOUD_SERVICES env document.
func (f *DefaultFactory) CreateEnvSource() Source {
	return NewEnvSource()
}

// CreateFileSource creates a source reading a YAML binding manifest.
func (f *DefaultFactory) CreateFileSource(path string) Source {
	return NewFileSource(path)
}

// CreateDirSource creates a source reading the SERVICE_BINDING_ROOT layout.
func (f *DefaultFactory) CreateDirSource() Source {
	return NewDirSource("")
}

// CreateKubernetesSource creates a source reading labeled Secrets.
func (f *DefaultFactory) CreateKubernetesSource() Source {
	return &KubernetesSource{
		Namespace:  f.Namespace,
		Kubeconfig: f.Kubeconfig,
	}
}
