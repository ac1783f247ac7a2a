// Package cli implements the cloudbind command line interface.
//
// Commands:
//   - services: list the bound backing services (redacted)
//   - get: show one bound service by id
//   - check: verify that the platform bindings resolve
//
// All commands select a binding source via --source (env, file, dir,
// kubernetes, all) and render output as JSON, YAML, or a table.
package cli
