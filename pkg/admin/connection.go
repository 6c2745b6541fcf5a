package admin

import (
	"fmt"
	"strings"
)

// ConnectionSettings holds the parsed parts of a namespace connection
// string.
type ConnectionSettings struct {
	Endpoint string
	KeyName  string
	Key      string
}

// ParseConnectionString parses a namespace connection string of the form
//
//	Endpoint=sb://ns.example.net/;SharedAccessKeyName=admin;SharedAccessKey=secret
//
// Pair order is not significant and a trailing semicolon is tolerated.
// All three parts are required; anything else fails with a format error.
// Parsing happens at client construction time, before any reconciler call,
// so malformed credentials fail fast.
func ParseConnectionString(s string) (*ConnectionSettings, error) {
	settings := &ConnectionSettings{}

	for _, pair := range strings.Split(s, ";") {
		if pair == "" {
			continue
		}
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("malformed connection string: segment %q is not key=value", pair)
		}
		switch key {
		case "Endpoint":
			settings.Endpoint = value
		case "SharedAccessKeyName":
			settings.KeyName = value
		case "SharedAccessKey":
			settings.Key = value
		default:
			return nil, fmt.Errorf("malformed connection string: unknown segment %q", key)
		}
	}

	if settings.Endpoint == "" {
		return nil, fmt.Errorf("malformed connection string: missing Endpoint")
	}
	if settings.KeyName == "" {
		return nil, fmt.Errorf("malformed connection string: missing SharedAccessKeyName")
	}
	if settings.Key == "" {
		return nil, fmt.Errorf("malformed connection string: missing SharedAccessKey")
	}

	return settings, nil
}
