package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modfetch-io/modrinth-client/internal/http"
	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
)

// TagsClient implements modrinth.TagsClient
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

// Categories implements modrinth.TagsClient.Categories
func (c *TagsClient) Categories(ctx context.Context) ([]modrinth.CategoryTag, error) {
	var categories []modrinth.CategoryTag
	if err := c.getTag(ctx, "category", &categories); err != nil {
		return nil, err
	}

	return categories, nil
}

// Loaders implements modrinth.TagsClient.Loaders
func (c *TagsClient) Loaders(ctx context.Context) ([]modrinth.LoaderTag, error) {
	var loaders []modrinth.LoaderTag
	if err := c.getTag(ctx, "loader", &loaders); err != nil {
		return nil, err
	}

	return loaders, nil
}

// GameVersions implements modrinth.TagsClient.GameVersions
func (c *TagsClient) GameVersions(ctx context.Context) ([]modrinth.GameVersionTag, error) {
	var gameVersions []modrinth.GameVersionTag
	if err := c.getTag(ctx, "game_version", &gameVersions); err != nil {
		return nil, err
	}

	return gameVersions, nil
}

// Licenses implements modrinth.TagsClient.Licenses
func (c *TagsClient) Licenses(ctx context.Context) ([]modrinth.LicenseTag, error) {
	var licenses []modrinth.LicenseTag
	if err := c.getTag(ctx, "license", &licenses); err != nil {
		return nil, err
	}

	return licenses, nil
}

// DonationPlatforms implements modrinth.TagsClient.DonationPlatforms
func (c *TagsClient) DonationPlatforms(ctx context.Context) ([]modrinth.DonationPlatformTag, error) {
	var platforms []modrinth.DonationPlatformTag
	if err := c.getTag(ctx, "donation_platform", &platforms); err != nil {
		return nil, err
	}

	return platforms, nil
}

// ReportTypes implements modrinth.TagsClient.ReportTypes
func (c *TagsClient) ReportTypes(ctx context.Context) ([]string, error) {
	var reportTypes []string
	if err := c.getTag(ctx, "report_type", &reportTypes); err != nil {
		return nil, err
	}

	return reportTypes, nil
}

// getTag fetches one of the fixed tag lists into out.
func (c *TagsClient) getTag(ctx context.Context, name string, out interface{}) error {
	resp, err := c.httpClient.Get(ctx, joinPath("tag", name), nil)
	if err != nil {
		return fmt.Errorf("getting %s tags: %w", name, err)
	}

	if err := json.Unmarshal(resp.Body, out); err != nil {
		return fmt.Errorf("parsing %s tags response: %w", name, err)
	}

	return nil
}
