package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/modfetch-io/modrinth-client/internal/http"
	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
)

// VersionsClient implements modrinth.VersionsClient
type VersionsClient struct {
	httpClient *http.Client
}

// NewVersionsClient creates a new versions client
func NewVersionsClient(httpClient *http.Client) *VersionsClient {
	return &VersionsClient{
		httpClient: httpClient,
	}
}

// ListVersions implements modrinth.VersionsClient.ListVersions
func (c *VersionsClient) ListVersions(ctx context.Context, projectID string, opts *modrinth.ListVersionsOptions) ([]modrinth.Version, error) {
	if err := modrinth.ValidateSlugOrID(projectID); err != nil {
		return nil, err
	}

	query, err := listVersionsQuery(opts)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("project", projectID, "version"), query)
	if err != nil {
		return nil, fmt.Errorf("listing versions: %w", err)
	}

	var versions []modrinth.Version
	if err := json.Unmarshal(resp.Body, &versions); err != nil {
		return nil, fmt.Errorf("parsing versions response: %w", err)
	}

	return versions, nil
}

// listVersionsQuery encodes the optional listing filters. The loaders and
// game_versions filters are JSON-encoded arrays, matching the ids parameter
// convention.
func listVersionsQuery(opts *modrinth.ListVersionsOptions) (url.Values, error) {
	if opts == nil {
		return nil, nil
	}

	query := url.Values{}

	if len(opts.Loaders) > 0 {
		encoded, err := json.Marshal(opts.Loaders)
		if err != nil {
			return nil, fmt.Errorf("encoding loaders filter: %w", err)
		}

		query.Set("loaders", string(encoded))
	}

	if len(opts.GameVersions) > 0 {
		encoded, err := json.Marshal(opts.GameVersions)
		if err != nil {
			return nil, fmt.Errorf("encoding game versions filter: %w", err)
		}

		query.Set("game_versions", string(encoded))
	}

	if opts.Featured != nil {
		query.Set("featured", strconv.FormatBool(*opts.Featured))
	}

	if len(query) == 0 {
		return nil, nil
	}

	return query, nil
}

// Get implements modrinth.VersionsClient.Get
func (c *VersionsClient) Get(ctx context.Context, id string) (*modrinth.Version, error) {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("version", id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting version: %w", err)
	}

	var version modrinth.Version
	if err := json.Unmarshal(resp.Body, &version); err != nil {
		return nil, fmt.Errorf("parsing version response: %w", err)
	}

	return &version, nil
}

// GetMultiple implements modrinth.VersionsClient.GetMultiple
func (c *VersionsClient) GetMultiple(ctx context.Context, ids []string) ([]modrinth.Version, error) {
	if err := modrinth.ValidateSlugsOrIDs(ids); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encoding version ids: %w", err)
	}

	query := url.Values{"ids": []string{string(encoded)}}

	resp, err := c.httpClient.Get(ctx, "/versions", query)
	if err != nil {
		return nil, fmt.Errorf("getting versions: %w", err)
	}

	var versions []modrinth.Version
	if err := json.Unmarshal(resp.Body, &versions); err != nil {
		return nil, fmt.Errorf("parsing versions response: %w", err)
	}

	return versions, nil
}

// GetFromHash implements modrinth.VersionsClient.GetFromHash
func (c *VersionsClient) GetFromHash(ctx context.Context, sha1 string) (*modrinth.Version, error) {
	if err := modrinth.ValidateSHA1(sha1); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("version_file", sha1), nil)
	if err != nil {
		return nil, fmt.Errorf("getting version from hash: %w", err)
	}

	var version modrinth.Version
	if err := json.Unmarshal(resp.Body, &version); err != nil {
		return nil, fmt.Errorf("parsing version response: %w", err)
	}

	return &version, nil
}
