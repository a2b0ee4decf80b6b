package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// NewTagsCommand creates the tags command group.
func NewTagsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tags",
		Short: "List platform tags",
		Long:  "List the categories, loaders, game versions, and other tag sets the platform knows about",
	}

	cmd.AddCommand(newTagsCategoriesCommand())
	cmd.AddCommand(newTagsLoadersCommand())
	cmd.AddCommand(newTagsGameVersionsCommand())
	cmd.AddCommand(newTagsLicensesCommand())
	cmd.AddCommand(newTagsDonationPlatformsCommand())
	cmd.AddCommand(newTagsReportTypesCommand())

	return cmd
}

func newTagsCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List project categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			categories, err := client.Tags().Categories(context.Background())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(categories); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Project Type", "Header")

			for _, category := range categories {
				_ = table.Append(category.Name, category.ProjectType, category.Header)
			}

			return renderTable(table)
		},
	}
}

func newTagsLoadersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "loaders",
		Short: "List mod loaders",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			loaders, err := client.Tags().Loaders(context.Background())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(loaders); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Name", "Supported Project Types")

			for _, loader := range loaders {
				_ = table.Append(loader.Name, strings.Join(loader.SupportedProjectTypes, ", "))
			}

			return renderTable(table)
		},
	}
}

func newTagsGameVersionsCommand() *cobra.Command {
	var majorOnly bool

	cmd := &cobra.Command{
		Use:   "game-versions",
		Short: "List game versions",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			gameVersions, err := client.Tags().GameVersions(context.Background())
			if err != nil {
				return err
			}

			if majorOnly {
				filtered := gameVersions[:0]
				for _, gameVersion := range gameVersions {
					if gameVersion.Major {
						filtered = append(filtered, gameVersion)
					}
				}

				gameVersions = filtered
			}

			if handled, err := renderStructured(gameVersions); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Version", "Type", "Major", "Date")

			for _, gameVersion := range gameVersions {
				_ = table.Append(gameVersion.Version, gameVersion.VersionType,
					fmt.Sprintf("%t", gameVersion.Major), gameVersion.Date.Format("2006-01-02"))
			}

			return renderTable(table)
		},
	}

	cmd.Flags().BoolVar(&majorOnly, "major", false, "only major versions")

	return cmd
}

func newTagsLicensesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "licenses",
		Short: "List selectable licenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			licenses, err := client.Tags().Licenses(context.Background())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(licenses); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Short", "Name")

			for _, license := range licenses {
				_ = table.Append(license.Short, license.Name)
			}

			return renderTable(table)
		},
	}
}

func newTagsDonationPlatformsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "donation-platforms",
		Short: "List donation platforms",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			platforms, err := client.Tags().DonationPlatforms(context.Background())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(platforms); handled {
				return err
			}

			table := tablewriter.NewWriter(os.Stdout)
			table.Header("Short", "Name")

			for _, platform := range platforms {
				_ = table.Append(platform.Short, platform.Name)
			}

			return renderTable(table)
		},
	}
}

func newTagsReportTypesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report-types",
		Short: "List report types",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			reportTypes, err := client.Tags().ReportTypes(context.Background())
			if err != nil {
				return err
			}

			if handled, err := renderStructured(reportTypes); handled {
				return err
			}

			for _, reportType := range reportTypes {
				fmt.Println(reportType)
			}

			return nil
		},
	}
}

func renderTable(table *tablewriter.Table) error {
	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
