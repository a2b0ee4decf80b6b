package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/modfetch-io/modrinth-client/internal/http"
	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
)

// UsersClient implements modrinth.UsersClient
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// Get implements modrinth.UsersClient.Get
func (c *UsersClient) Get(ctx context.Context, id string) (*modrinth.User, error) {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("user", id), nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user modrinth.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// GetCurrent implements modrinth.UsersClient.GetCurrent
func (c *UsersClient) GetCurrent(ctx context.Context) (*modrinth.User, error) {
	resp, err := c.httpClient.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var user modrinth.User
	if err := json.Unmarshal(resp.Body, &user); err != nil {
		return nil, fmt.Errorf("parsing user response: %w", err)
	}

	return &user, nil
}

// GetMultiple implements modrinth.UsersClient.GetMultiple
func (c *UsersClient) GetMultiple(ctx context.Context, ids []string) ([]modrinth.User, error) {
	if err := modrinth.ValidateSlugsOrIDs(ids); err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("encoding user ids: %w", err)
	}

	query := url.Values{"ids": []string{string(encoded)}}

	resp, err := c.httpClient.Get(ctx, "/users", query)
	if err != nil {
		return nil, fmt.Errorf("getting users: %w", err)
	}

	var users []modrinth.User
	if err := json.Unmarshal(resp.Body, &users); err != nil {
		return nil, fmt.Errorf("parsing users response: %w", err)
	}

	return users, nil
}

// GetProjects implements modrinth.UsersClient.GetProjects
func (c *UsersClient) GetProjects(ctx context.Context, id string) ([]modrinth.Project, error) {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("user", id, "projects"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting user projects: %w", err)
	}

	var projects []modrinth.Project
	if err := json.Unmarshal(resp.Body, &projects); err != nil {
		return nil, fmt.Errorf("parsing projects response: %w", err)
	}

	return projects, nil
}

// GetFollowedProjects implements modrinth.UsersClient.GetFollowedProjects
func (c *UsersClient) GetFollowedProjects(ctx context.Context, id string) ([]modrinth.Project, error) {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("user", id, "follows"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting followed projects: %w", err)
	}

	var projects []modrinth.Project
	if err := json.Unmarshal(resp.Body, &projects); err != nil {
		return nil, fmt.Errorf("parsing projects response: %w", err)
	}

	return projects, nil
}

// GetNotifications implements modrinth.UsersClient.GetNotifications
func (c *UsersClient) GetNotifications(ctx context.Context, id string) ([]modrinth.Notification, error) {
	if err := modrinth.ValidateSlugOrID(id); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, joinPath("user", id, "notifications"), nil)
	if err != nil {
		return nil, fmt.Errorf("getting notifications: %w", err)
	}

	var notifications []modrinth.Notification
	if err := json.Unmarshal(resp.Body, &notifications); err != nil {
		return nil, fmt.Errorf("parsing notifications response: %w", err)
	}

	return notifications, nil
}
