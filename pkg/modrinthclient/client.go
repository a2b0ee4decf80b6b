package modrinthclient

import (
	"fmt"
	"strings"

	"github.com/modfetch-io/modrinth-client/internal/client"
	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
)

// DefaultBaseURL is the production API root used when the config does not
// override it.
const DefaultBaseURL = client.DefaultBaseURL

// New creates a new Modrinth API client.
func New(config *modrinth.Config) (modrinth.Client, error) {
	if config == nil {
		return nil, modrinth.ErrConfigRequired
	}

	if config.AppName == "" && config.UserAgent == "" {
		return nil, modrinth.ErrAppNameRequired
	}

	// Normalize the base URL without mutating the caller's config.
	normalized := *config
	normalized.BaseURL = normalizeBaseURL(config.BaseURL)

	apiClient, err := client.New(&normalized)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

func normalizeBaseURL(baseURL string) string {
	if baseURL == "" {
		return DefaultBaseURL
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}
