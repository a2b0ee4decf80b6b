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

// ProjectsClient implements modrinth.ProjectsClient
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// Get implements modrinth.ProjectsClient.Get
func (c *ProjectsClient) Get(ctx context.Context, id string) (*modrinth.Project, error) {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("project", id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project modrinth.Project
	if err := json.Unmarshal(resp.Body, &project); err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// GetMultiple implements modrinth.ProjectsClient.GetMultiple
func (c *ProjectsClient) GetMultiple(ctx context.Context, ids []string) ([]modrinth.Project, error) {
	if err := modrinth.ValidateSlugsOrIDs(ids); err != nil {
		return nil, err
	}

	// The ids query parameter is a JSON-encoded array of strings.
	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encoding project ids: %w", err)
	}

	query := url.Values{"ids": []string{string(encoded)}}

	resp, err := c.httpClient.Get(ctx, "/projects", query)
	if err != nil {
		return nil, fmt.Errorf("getting projects: %w", err)
	}

	var projects []modrinth.Project
	if err := json.Unmarshal(resp.Body, &projects); err != nil {
		return nil, fmt.Errorf("parsing projects response: %w", err)
	}

	return projects, nil
}

// GetRandom implements modrinth.ProjectsClient.GetRandom
func (c *ProjectsClient) GetRandom(ctx context.Context, count int) ([]modrinth.Project, error) {
	query := url.Values{"count": []string{strconv.Itoa(count)}}

	resp, err := c.httpClient.Get(ctx, "/projects_random", query)
	if err != nil {
		return nil, fmt.Errorf("getting random projects: %w", err)
	}

	var projects []modrinth.Project
	if err := json.Unmarshal(resp.Body, &projects); err != nil {
		return nil, fmt.Errorf("parsing projects response: %w", err)
	}

	return projects, nil
}

// CheckExists implements modrinth.ProjectsClient.CheckExists
func (c *ProjectsClient) CheckExists(ctx context.Context, id string) (string, error) {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return "", err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("project", id, "check"), nil)
	if err != nil {
		return "", fmt.Errorf("checking project: %w", err)
	}

	var identifier modrinth.ProjectIdentifier
	if err := json.Unmarshal(resp.Body, &identifier); err != nil {
		return "", fmt.Errorf("parsing check response: %w", err)
	}

	return identifier.ID, nil
}

// GetDependencies implements modrinth.ProjectsClient.GetDependencies
func (c *ProjectsClient) GetDependencies(ctx context.Context, id string) (*modrinth.ProjectDependencies, error) {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("project", id, "dependencies"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting project dependencies: %w", err)
	}

	var dependencies modrinth.ProjectDependencies
	if err := json.Unmarshal(resp.Body, &dependencies); err != nil {
		return nil, fmt.Errorf("parsing dependencies response: %w", err)
	}

	return &dependencies, nil
}

// Follow implements modrinth.ProjectsClient.Follow
func (c *ProjectsClient) Follow(ctx context.Context, id string) error {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return err
	}

	_, err := c.httpClient.Post(ctx, joinPath("project", id, "follow"), nil)
	if err != nil {
		return fmt.Errorf("following project: %w", err)
	}

	return nil
}

// Unfollow implements modrinth.ProjectsClient.Unfollow
func (c *ProjectsClient) Unfollow(ctx context.Context, id string) error {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return err
	}

	_, err := c.httpClient.Delete(ctx, joinPath("project", id, "follow"))
	if err != nil {
		return fmt.Errorf("unfollowing project: %w", err)
	}

	return nil
}

// AddGalleryImage implements modrinth.ProjectsClient.AddGalleryImage
func (c *ProjectsClient) AddGalleryImage(ctx context.Context, id string, image []byte, ext modrinth.FileExt, featured bool, title, description *string) error {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return err
	}

	query := url.Values{
		"ext":      []string{ext.String()},
		"featured": []string{strconv.FormatBool(featured)},
	}

	if title != nil {
		query.Set("title", *title)
	}

	if description != nil {
		query.Set("description", *description)
	}

	contentType := fmt.Sprintf("image/%s", ext)

	_, err := c.httpClient.PostRaw(ctx, joinPath("project", id, "gallery"), query, image, contentType)
	if err != nil {
		return fmt.Errorf("adding gallery image: %w", err)
	}

	return nil
}
