// Package binding defines the typed credential descriptors for bound backing
// services and the parser that produces them from raw connection strings.
//
// A Descriptor holds the structured connection fields (scheme, host, port,
// path, user name, password). ServiceInfo wraps a Descriptor with a service
// kind: each kind carries a fixed label ("oracle", "redis", ...) and knows how
// to render a kind-specific connection string, such as a JDBC thin-driver URL
// for Oracle or a canonical URI for redis and rabbitmq.
//
// The kind-to-label association is a static table. Adding a new backing
// service kind means adding a variant and its label constant; the parser and
// the catalog do not change.
package binding
