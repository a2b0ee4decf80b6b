// Package client implements the modrinth.Client interface.
package client

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/modfetch-io/modrinth-client/internal/http"
	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
)

// DefaultBaseURL is the production API root.
const DefaultBaseURL = "https://api.modrinth.com/v2"

// Client implements the modrinth.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string

	// Resource clients
	projects modrinth.ProjectsClient
	versions modrinth.VersionsClient
	users    modrinth.UsersClient
	tags     modrinth.TagsClient
}

// New creates a new Modrinth API client from config. The base URL must
// already be normalized; pkg/modrinthclient does that for callers.
func New(config *modrinth.Config) (*Client, error) {
	if config == nil {
		return nil, modrinth.ErrConfigRequired
	}

	if config.AppName == "" && config.UserAgent == "" {
		return nil, modrinth.ErrAppNameRequired
	}

	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpOpts := []http.Option{
		http.WithUserAgent(userAgent(config)),
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	client := &Client{
		httpClient: http.NewClient(baseURL, config.Token, httpOpts...),
		baseURL:    baseURL,
	}

	client.initializeResourceClients()

	return client, nil
}

// userAgent assembles "name/version (contact)" from the config, or returns
// the explicit override.
func userAgent(config *modrinth.Config) string {
	if config.UserAgent != "" {
		return config.UserAgent
	}

	agent := config.AppName
	if config.AppVersion != "" {
		agent = fmt.Sprintf("%s/%s", agent, config.AppVersion)
	}

	if config.Contact != "" {
		agent = fmt.Sprintf("%s (%s)", agent, config.Contact)
	}

	return agent
}

// Projects implements modrinth.Client.Projects.
func (c *Client) Projects() modrinth.ProjectsClient {
	return c.projects
}

// Versions implements modrinth.Client.Versions.
func (c *Client) Versions() modrinth.VersionsClient {
	return c.versions
}

// Users implements modrinth.Client.Users.
func (c *Client) Users() modrinth.UsersClient {
	return c.users
}

// Tags implements modrinth.Client.Tags.
func (c *Client) Tags() modrinth.TagsClient {
	return c.tags
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.versions = NewVersionsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
}

// joinPath joins literal and user-supplied path segments into a request
// path, percent-encoding each segment.
func joinPath(segments ...string) string {
	escaped := make([]string, len(segments))
	for i, segment := range segments {
		escaped[i] = url.PathEscape(segment)
	}

	return "/" + strings.Join(escaped, "/")
}
