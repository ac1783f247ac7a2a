// Package registry publishes resolved service bindings into a registration
// sink as named, lazily constructible connector configurations.
//
// The Registrar walks the catalog in id order and hands each entry to the
// sink together with a deferred factory; the factory builds the
// kind-appropriate configuration object (a driver URL for relational kinds,
// address and credentials for redis, a broker URL for rabbitmq) only when
// the sink first asks for it. Registration is best-effort: one rejected
// entry does not stop the rest.
package registry
