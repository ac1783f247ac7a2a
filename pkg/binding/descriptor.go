package binding

import (
	"fmt"
)

// redactedPlaceholder replaces the password field in redacted views.
const redactedPlaceholder = "REDACTED"

// Descriptor is the structured, immutable representation of one bound
// service's connection information. A zero port means unset; optional string
// fields are empty, never nil-like sentinels.
//
// Descriptor is a value type: treat instances as read-only once constructed
// and copy them freely.
type Descriptor struct {
	// ID is the stable service identifier, unique within a catalog.
	ID string
	// Scheme is the connection scheme token from the raw binding (e.g. "oracle").
	Scheme string
	// Host is the server host name or address.
	Host string
	// Port is the server port. Zero means unset.
	Port int
	// Path is the resource path without the leading slash (database name,
	// vhost, key prefix).
	Path string
	// UserName is the account used to authenticate.
	UserName string
	// Password is the secret used to authenticate. Sensitive: never logged,
	// never included in error messages.
	Password string
}

// Redacted returns a copy of the descriptor with the password replaced by a
// fixed placeholder when one is set. Use this for logs and human output.
func (d Descriptor) Redacted() Descriptor {
	if d.Password != "" {
		d.Password = redactedPlaceholder
	}
	return d
}

// String renders the descriptor without credential material.
func (d Descriptor) String() string {
	return fmt.Sprintf("%s{scheme: %s, host: %s, port: %d, path: %s, user: %s}",
		d.ID, d.Scheme, d.Host, d.Port, d.Path, d.UserName)
}
