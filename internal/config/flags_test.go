package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantHost string
		wantPort int
		wantErr  bool
	}{
		{name: "localhost with port", input: "localhost:8080", wantHost: "localhost", wantPort: 8080},
		{name: "ip with port", input: "127.0.0.1:9090", wantHost: "127.0.0.1", wantPort: 9090},
		{name: "wildcard ip", input: "0.0.0.0:80", wantHost: "0.0.0.0", wantPort: 80},
		{name: "missing port", input: "localhost", wantErr: true},
		{name: "too many parts", input: "a:b:c", wantErr: true},
		{name: "non-numeric port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "negative port", input: "localhost:-1", wantErr: true},
		{name: "bad hostname", input: "not-an-ip:8080", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(test.input)

			if test.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.wantHost, addr.Host)
			assert.Equal(t, test.wantPort, addr.Port)
		})
	}
}

func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name string
		addr NetAddress
		want string
	}{
		{name: "host and port", addr: NetAddress{Host: "localhost", Port: 8080}, want: "localhost:8080"},
		{name: "empty address", addr: NetAddress{}, want: ""},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, test.addr.String())
		})
	}
}
