package modrinthclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
	"github.com/modfetch-io/modrinth-client/pkg/modrinthclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresConfig(t *testing.T) {
	t.Parallel()

	_, err := modrinthclient.New(nil)
	require.ErrorIs(t, err, modrinth.ErrConfigRequired)
}

func TestNew_RequiresAppName(t *testing.T) {
	t.Parallel()

	_, err := modrinthclient.New(&modrinth.Config{})
	require.ErrorIs(t, err, modrinth.ErrAppNameRequired)
}

func TestNew_DoesNotMutateCallerConfig(t *testing.T) {
	t.Parallel()

	config := &modrinth.Config{AppName: "my-tool", BaseURL: "staging-api.modrinth.com/v2/"}

	_, err := modrinthclient.New(config)
	require.NoError(t, err)
	assert.Equal(t, "staging-api.modrinth.com/v2/", config.BaseURL)
}

func TestNew_NormalizesBaseURL(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/project/AANobbMI", request.URL.Path)

		_ = json.NewEncoder(writer).Encode(modrinth.Project{ID: "AANobbMI", Title: "Sodium"})
	}))
	defer server.Close()

	// Trailing slash is trimmed before paths are joined.
	client, err := modrinthclient.New(&modrinth.Config{
		AppName: "my-tool",
		BaseURL: server.URL + "/",
	})
	require.NoError(t, err)

	project, err := client.Projects().Get(context.Background(), "AANobbMI")
	require.NoError(t, err)
	assert.Equal(t, "Sodium", project.Title)
}

func TestNew_DefaultsToProductionBaseURL(t *testing.T) {
	t.Parallel()

	client, err := modrinthclient.New(&modrinth.Config{AppName: "my-tool"})
	require.NoError(t, err)
	assert.NotNil(t, client)
	assert.Equal(t, "https://api.modrinth.com/v2", modrinthclient.DefaultBaseURL)
}
