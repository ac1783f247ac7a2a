// Package serializer renders resolved service bindings to various output
// formats.
//
// Three formats are supported:
//   - JSON: machine-readable structured data with indentation
//   - YAML: human-readable configuration format
//   - Table: human-readable tabular output with flattened keys
//
// Credential material never reaches the writer: callers serialize the
// redacted views built by Views, not the descriptors themselves.
//
// Usage:
//
//	writer := serializer.NewWriter(serializer.FormatJSON, os.Stdout)
//	defer writer.Close()
//	if err := writer.Serialize(ctx, serializer.Views(infos)); err != nil {
//		return err
//	}
package serializer

import "context"

// Serializer is an interface for rendering binding data. Implementations
// serialize to various formats such as JSON, YAML, or a table.
type Serializer interface {
	Serialize(ctx context.Context, data any) error
}

// Closer is an optional interface that Serializers can implement if they
// need to release resources (e.g., close file handles).
type Closer interface {
	Close() error
}
