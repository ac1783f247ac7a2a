package binding

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/cloudbind/cloudbind/pkg/errors"
)

const schemeSeparator = "://"

// ParseURI maps a raw connection string of the general shape
//
//	scheme://[user[:password]@]host[:port][/path]
//
// into a Descriptor. The scheme token must match expectedScheme when one is
// given. Percent-encoded user and password segments are decoded before
// storage. Missing optional components default to empty string / zero.
//
// The returned Descriptor carries no ID; the catalog assigns the id from the
// raw binding record. On any mismatch the error is classified as
// MALFORMED_CREDENTIAL and carries the raw string with the credential segment
// stripped.
func ParseURI(raw, expectedScheme string) (Descriptor, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Descriptor{}, errors.New(errors.CodeMalformedCredential,
			"connection string is empty")
	}

	parts := strings.SplitN(trimmed, schemeSeparator, 2)
	if len(parts) != 2 || parts[0] == "" {
		return Descriptor{}, malformed("missing scheme separator", trimmed)
	}

	scheme := strings.ToLower(parts[0])
	if expectedScheme != "" && scheme != strings.ToLower(expectedScheme) {
		return Descriptor{}, malformed("scheme does not match expected "+strconv.Quote(expectedScheme), trimmed)
	}

	rest := parts[1]

	// Split authority from path at the first slash.
	authority := rest
	path := ""
	if i := strings.Index(rest, "/"); i >= 0 {
		authority = rest[:i]
		path = rest[i+1:]
	}

	// Credentials, if any, precede the last "@" in the authority.
	userName := ""
	password := ""
	hostPort := authority
	if i := strings.LastIndex(authority, "@"); i >= 0 {
		userInfo := authority[:i]
		hostPort = authority[i+1:]

		user, pass, _ := strings.Cut(userInfo, ":")
		var err error
		if userName, err = url.PathUnescape(user); err != nil {
			return Descriptor{}, malformed("invalid user encoding", trimmed)
		}
		if password, err = url.PathUnescape(pass); err != nil {
			return Descriptor{}, malformed("invalid password encoding", trimmed)
		}
	}

	host := hostPort
	port := 0
	if i := strings.LastIndex(hostPort, ":"); i >= 0 {
		host = hostPort[:i]
		p, err := strconv.Atoi(hostPort[i+1:])
		if err != nil || p < 0 {
			return Descriptor{}, malformed("port is not a valid number", trimmed)
		}
		port = p
	}

	return Descriptor{
		Scheme:   scheme,
		Host:     host,
		Port:     port,
		Path:     path,
		UserName: userName,
		Password: password,
	}, nil
}

// malformed builds a MALFORMED_CREDENTIAL error carrying the offending raw
// string with any credential segment stripped.
func malformed(message, raw string) error {
	return errors.NewWithContext(errors.CodeMalformedCredential, message,
		map[string]any{"uri": StripCredentials(raw)})
}

// StripCredentials removes the user-info segment from a raw connection string
// so it can be attached to errors and logs without leaking secrets. Strings
// without a credential segment are returned unchanged.
func StripCredentials(raw string) string {
	parts := strings.SplitN(raw, schemeSeparator, 2)
	if len(parts) != 2 {
		return raw
	}

	rest := parts[1]
	end := len(rest)
	if i := strings.Index(rest, "/"); i >= 0 {
		end = i
	}

	authority := rest[:end]
	i := strings.LastIndex(authority, "@")
	if i < 0 {
		return raw
	}

	return parts[0] + schemeSeparator + rest[i+1:]
}
