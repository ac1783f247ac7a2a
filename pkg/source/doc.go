// Package source exposes the platform's raw service-binding data to the
// catalog.
//
// A Source returns the bound services as raw (id, scheme, uri, kind) tuples
// without interpreting them; parsing into typed descriptors happens in the
// catalog. Four implementations cover the common hosting surfaces:
//
//   - EnvSource: a JSON document in the CLOUD_SERVICES environment variable
//   - FileSource: a YAML manifest on disk
//   - DirSource: the SERVICE_BINDING_ROOT projected-volume layout
//   - KubernetesSource: labeled Secrets read through the Kubernetes API
//
// Multi fans in several sources at once. The Factory interface creates
// sources with their dependencies and enables injection for testing.
package source
