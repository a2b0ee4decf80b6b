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

// NewProjectCommand creates the project command group.
func NewProjectCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "project",
		Aliases: []string{"projects", "mod"},
		Short:   "Work with projects",
		Long:    "Fetch, check, follow, and manage Modrinth projects",
	}

	cmd.AddCommand(newProjectGetCommand())
	cmd.AddCommand(newProjectMultiCommand())
	cmd.AddCommand(newProjectRandomCommand())
	cmd.AddCommand(newProjectCheckCommand())
	cmd.AddCommand(newProjectDependenciesCommand())
	cmd.AddCommand(newProjectFollowCommand())
	cmd.AddCommand(newProjectUnfollowCommand())
	cmd.AddCommand(newProjectGalleryAddCommand())

	return cmd
}

func newProjectGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID_OR_SLUG",
		Short: "Get a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputProject(project)
		},
	}
}

func newProjectMultiCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "multi ID [ID...]",
		Short: "Get multiple projects by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			projects, err := client.Projects().GetMultiple(context.Background(), args)
			if err != nil {
				return err
			}

			return outputProjects(projects)
		},
	}
}

func newProjectRandomCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Get random projects",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			projects, err := client.Projects().GetRandom(context.Background(), count)
			if err != nil {
				return err
			}

			return outputProjects(projects)
		},
	}

	cmd.Flags().IntVar(&count, "count", 5, "number of projects to fetch")

	return cmd
}

func newProjectCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check ID_OR_SLUG",
		Short: "Check whether a project exists and print its canonical id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			id, err := client.Projects().CheckExists(context.Background(), args[0])
			if err != nil {
				if modrinth.IsNotFound(err) {
					return fmt.Errorf("project %q does not exist", args[0])
				}

				return err
			}

			fmt.Println(id)

			return nil
		},
	}
}

func newProjectDependenciesCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "dependencies ID_OR_SLUG",
		Aliases: []string{"deps"},
		Short:   "Get the dependency closure of a project",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			deps, err := client.Projects().GetDependencies(context.Background(), args[0])
			if err != nil {
				return err
			}

			if handled, err := renderStructured(deps); handled {
				return err
			}

			if len(deps.Projects) == 0 {
				fmt.Println("No dependencies")

				return nil
			}

			return outputProjects(deps.Projects)
		},
	}
}

func newProjectFollowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "follow ID_OR_SLUG",
		Short: "Follow a project (requires a token)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			if err := client.Projects().Follow(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Following %s\n", args[0])

			return nil
		},
	}
}

func newProjectUnfollowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unfollow ID_OR_SLUG",
		Short: "Unfollow a project (requires a token)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			if err := client.Projects().Unfollow(context.Background(), args[0]); err != nil {
				return err
			}

			fmt.Printf("Unfollowed %s\n", args[0])

			return nil
		},
	}
}

// GalleryAddOptions holds the options for the gallery-add command.
type GalleryAddOptions struct {
	File        string
	Ext         string
	Featured    bool
	Title       string
	Description string
}

func newProjectGalleryAddCommand() *cobra.Command {
	var opts GalleryAddOptions

	cmd := &cobra.Command{
		Use:   "gallery-add ID_OR_SLUG",
		Short: "Upload a gallery image to a project (requires a token)",
		Long: `Upload an image to a project's gallery.

The image may be at most 5 MiB; the limit is enforced by the API.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectGalleryAddCommand(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.File, "file", "", "path to the image file (required)")
	cmd.Flags().StringVar(&opts.Ext, "ext", "", "image extension: png, jpg, jpeg, bmp, gif, webp (defaults to the file extension)")
	cmd.Flags().BoolVar(&opts.Featured, "featured", false, "feature the image")
	cmd.Flags().StringVar(&opts.Title, "title", "", "image title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "image description")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func runProjectGalleryAddCommand(cmd *cobra.Command, id string, opts GalleryAddOptions) error {
	ext := opts.Ext
	if ext == "" {
		dot := strings.LastIndex(opts.File, ".")
		if dot < 0 || dot == len(opts.File)-1 {
			return fmt.Errorf("%w: cannot determine extension of %q", modrinth.ErrUnsupportedImageExt, opts.File)
		}

		ext = strings.ToLower(opts.File[dot+1:])
	}

	fileExt, err := parseFileExt(ext)
	if err != nil {
		return err
	}

	image, err := os.ReadFile(opts.File)
	if err != nil {
		return fmt.Errorf("reading image: %w", err)
	}

	client, err := CreateClient(cmd.Root().Version)
	if err != nil {
		return err
	}

	var title, description *string
	if opts.Title != "" {
		title = &opts.Title
	}

	if opts.Description != "" {
		description = &opts.Description
	}

	err = client.Projects().AddGalleryImage(context.Background(), id, image, fileExt, opts.Featured, title, description)
	if err != nil {
		return err
	}

	fmt.Printf("Uploaded %s to %s\n", opts.File, id)

	return nil
}

func parseFileExt(ext string) (modrinth.FileExt, error) {
	switch modrinth.FileExt(ext) {
	case modrinth.FileExtPNG, modrinth.FileExtJPG, modrinth.FileExtJPEG,
		modrinth.FileExtBMP, modrinth.FileExtGIF, modrinth.FileExtWEBP:
		return modrinth.FileExt(ext), nil
	default:
		return "", fmt.Errorf("%w: %q", modrinth.ErrUnsupportedImageExt, ext)
	}
}

func outputProject(project *modrinth.Project) error {
	if handled, err := renderStructured(project); handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", project.ID)
	_ = table.Append("Slug", project.Slug)
	_ = table.Append("Title", project.Title)
	_ = table.Append("Type", string(project.ProjectType))
	_ = table.Append("Status", string(project.Status))
	_ = table.Append("Description", truncate(project.Description, 80))
	_ = table.Append("Downloads", fmt.Sprintf("%d", project.Downloads))
	_ = table.Append("Followers", fmt.Sprintf("%d", project.Followers))
	_ = table.Append("Categories", joinOrNA(project.Categories))
	_ = table.Append("Client side", string(project.ClientSide))
	_ = table.Append("Server side", string(project.ServerSide))
	_ = table.Append("License", project.License.Name)
	_ = table.Append("Source", optional(project.SourceURL))
	_ = table.Append("Updated", project.Updated.Format("2006-01-02"))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputProjects(projects []modrinth.Project) error {
	if handled, err := renderStructured(projects); handled {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No projects found")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Slug", "Title", "Type", "Downloads")

	for _, project := range projects {
		_ = table.Append(project.ID, project.Slug, truncate(project.Title, 40),
			string(project.ProjectType), fmt.Sprintf("%d", project.Downloads))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
