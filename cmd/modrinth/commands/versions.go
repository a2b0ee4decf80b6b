package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
)

// NewVersionsCommand creates the versions command group.
func NewVersionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "versions",
		Short: "Work with project versions",
		Long:  "List and fetch Modrinth project versions",
	}

	cmd.AddCommand(newVersionsListCommand())
	cmd.AddCommand(newVersionsGetCommand())
	cmd.AddCommand(newVersionsFromHashCommand())

	return cmd
}

// VersionsListOptions holds the options for listing versions.
type VersionsListOptions struct {
	Loaders      []string
	GameVersions []string
	FeaturedOnly bool
}

func newVersionsListCommand() *cobra.Command {
	var opts VersionsListOptions

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID_OR_SLUG",
		Short: "List the versions of a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			var listOpts *modrinth.ListVersionsOptions
			if len(opts.Loaders) > 0 || len(opts.GameVersions) > 0 || opts.FeaturedOnly {
				listOpts = &modrinth.ListVersionsOptions{
					Loaders:      opts.Loaders,
					GameVersions: opts.GameVersions,
				}
				if opts.FeaturedOnly {
					featured := true
					listOpts.Featured = &featured
				}
			}

			versions, err := client.Versions().ListVersions(context.Background(), args[0], listOpts)
			if err != nil {
				return err
			}

			return outputVersions(versions)
		},
	}

	cmd.Flags().StringSliceVar(&opts.Loaders, "loader", nil, "filter by loader (repeatable)")
	cmd.Flags().StringSliceVar(&opts.GameVersions, "game-version", nil, "filter by game version (repeatable)")
	cmd.Flags().BoolVar(&opts.FeaturedOnly, "featured", false, "only featured versions")

	return cmd
}

func newVersionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get VERSION_ID",
		Short: "Get a version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			version, err := client.Versions().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputVersion(version)
		},
	}
}

func newVersionsFromHashCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "from-hash SHA1",
		Short: "Find the version containing the file with the given SHA-1 hash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			version, err := client.Versions().GetFromHash(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputVersion(version)
		},
	}
}

func outputVersion(version *modrinth.Version) error {
	if handled, err := renderStructured(version); handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", version.ID)
	_ = table.Append("Project", version.ProjectID)
	_ = table.Append("Name", version.Name)
	_ = table.Append("Version", version.VersionNumber)
	_ = table.Append("Channel", string(version.VersionType))
	_ = table.Append("Featured", fmt.Sprintf("%t", version.Featured))
	_ = table.Append("Downloads", fmt.Sprintf("%d", version.Downloads))
	_ = table.Append("Loaders", joinOrNA(version.Loaders))
	_ = table.Append("Game versions", joinOrNA(version.GameVersions))
	_ = table.Append("Published", version.DatePublished.Format("2006-01-02"))

	for _, file := range version.Files {
		name := file.Filename
		if file.Primary {
			name += " (primary)"
		}

		_ = table.Append("File", fmt.Sprintf("%s sha1=%s", name, file.Hashes.SHA1))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputVersions(versions []modrinth.Version) error {
	if handled, err := renderStructured(versions); handled {
		return err
	}

	if len(versions) == 0 {
		fmt.Println("No versions found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Version", "Channel", "Loaders", "Game Versions", "Downloads")

	for _, version := range versions {
		_ = table.Append(version.ID, version.VersionNumber, string(version.VersionType),
			strings.Join(version.Loaders, ","), strings.Join(version.GameVersions, ","),
			fmt.Sprintf("%d", version.Downloads))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
