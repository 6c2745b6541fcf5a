package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConnectionString(t *testing.T) {
	settings, err := ParseConnectionString(
		"Endpoint=sb://shop.example.net/;SharedAccessKeyName=admin;SharedAccessKey=secret")
	require.NoError(t, err)

	assert.Equal(t, "sb://shop.example.net/", settings.Endpoint)
	assert.Equal(t, "admin", settings.KeyName)
	assert.Equal(t, "secret", settings.Key)
}

func TestParseConnectionStringTrailingSemicolon(t *testing.T) {
	settings, err := ParseConnectionString(
		"Endpoint=sb://shop.example.net/;SharedAccessKeyName=admin;SharedAccessKey=secret;")
	require.NoError(t, err)
	assert.Equal(t, "secret", settings.Key)
}

func TestParseConnectionStringKeyWithPadding(t *testing.T) {
	// base64 keys end in '=' which must survive the key=value split
	settings, err := ParseConnectionString(
		"Endpoint=sb://shop.example.net/;SharedAccessKeyName=admin;SharedAccessKey=YWJjMTIzCg==")
	require.NoError(t, err)
	assert.Equal(t, "YWJjMTIzCg==", settings.Key)
}

func TestParseConnectionStringMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "garbage", input: "not a connection string"},
		{name: "missing endpoint", input: "SharedAccessKeyName=admin;SharedAccessKey=secret"},
		{name: "missing key name", input: "Endpoint=sb://x/;SharedAccessKey=secret"},
		{name: "missing key", input: "Endpoint=sb://x/;SharedAccessKeyName=admin"},
		{name: "unknown segment", input: "Endpoint=sb://x/;SharedAccessKeyName=a;SharedAccessKey=s;Bogus=1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConnectionString(tt.input)
			assert.Error(t, err)
		})
	}
}
