package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/modfetch-io/modrinth-client/internal/client"
	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := New(nil)
	require.ErrorIs(t, err, modrinth.ErrConfigRequired)
}

func TestNew_RequiresAppName(t *testing.T) {
	t.Parallel()

	_, err := New(&modrinth.Config{})
	require.ErrorIs(t, err, modrinth.ErrAppNameRequired)
}

func TestNew_AcceptsUserAgentOverrideWithoutAppName(t *testing.T) {
	t.Parallel()

	client, err := New(&modrinth.Config{UserAgent: "custom-agent/2.0"})
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNew_InitializesResourceClients(t *testing.T) {
	t.Parallel()

	client, err := New(&modrinth.Config{AppName: "test-app"})
	require.NoError(t, err)

	assert.NotNil(t, client.Projects())
	assert.NotNil(t, client.Versions())
	assert.NotNil(t, client.Users())
	assert.NotNil(t, client.Tags())
}

func TestNew_UserAgentAssembly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		config   modrinth.Config
		expected string
	}{
		{
			name:     "name only",
			config:   modrinth.Config{AppName: "my-tool"},
			expected: "my-tool",
		},
		{
			name:     "name and version",
			config:   modrinth.Config{AppName: "my-tool", AppVersion: "1.2.0"},
			expected: "my-tool/1.2.0",
		},
		{
			name:     "name, version, and contact",
			config:   modrinth.Config{AppName: "my-tool", AppVersion: "1.2.0", Contact: "me@example.com"},
			expected: "my-tool/1.2.0 (me@example.com)",
		},
		{
			name:     "explicit override wins",
			config:   modrinth.Config{AppName: "my-tool", AppVersion: "1.2.0", UserAgent: "override/9"},
			expected: "override/9",
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.expected, request.Header.Get("User-Agent"))

				_ = json.NewEncoder(writer).Encode(modrinth.Project{ID: "AANobbMI"})
			}))
			defer server.Close()

			config := testCase.config
			config.BaseURL = server.URL

			client, err := New(&config)
			require.NoError(t, err)

			_, err = client.Projects().Get(context.Background(), "AANobbMI")
			require.NoError(t, err)
		})
	}
}
