package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
)

// NewUserCommand creates the user command group.
func NewUserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "user",
		Aliases: []string{"users"},
		Short:   "Work with users",
		Long:    "Fetch Modrinth users and their projects",
	}

	cmd.AddCommand(newUserGetCommand())
	cmd.AddCommand(newUserMeCommand())
	cmd.AddCommand(newUserProjectsCommand())
	cmd.AddCommand(newUserFollowsCommand())
	cmd.AddCommand(newUserNotificationsCommand())

	return cmd
}

func newUserGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get ID_OR_USERNAME",
		Short: "Get a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			user, err := client.Users().Get(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputUser(user)
		},
	}
}

func newUserMeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "me",
		Short: "Get the user the configured token belongs to",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			user, err := client.Users().GetCurrent(context.Background())
			if err != nil {
				if modrinth.IsUnauthorized(err) {
					return fmt.Errorf("not logged in: %w", err)
				}

				return err
			}

			return outputUser(user)
		},
	}
}

func newUserProjectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "projects ID_OR_USERNAME",
		Short: "List a user's projects",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			projects, err := client.Users().GetProjects(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputProjects(projects)
		},
	}
}

func newUserFollowsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "follows ID_OR_USERNAME",
		Short: "List the projects a user follows (requires a token)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			projects, err := client.Users().GetFollowedProjects(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputProjects(projects)
		},
	}
}

func newUserNotificationsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notifications ID_OR_USERNAME",
		Short: "List a user's notifications (requires a token)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd.Root().Version)
			if err != nil {
				return err
			}

			notifications, err := client.Users().GetNotifications(context.Background(), args[0])
			if err != nil {
				return err
			}

			return outputNotifications(notifications)
		},
	}
}

func outputUser(user *modrinth.User) error {
	if handled, err := renderStructured(user); handled {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Property", "Value")

	_ = table.Append("ID", user.ID)
	_ = table.Append("Username", user.Username)
	_ = table.Append("Name", optional(user.Name))
	_ = table.Append("Role", string(user.Role))
	_ = table.Append("Bio", truncate(optional(user.Bio), 80))
	_ = table.Append("Created", user.Created.Format("2006-01-02"))

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

func outputNotifications(notifications []modrinth.Notification) error {
	if handled, err := renderStructured(notifications); handled {
		return err
	}

	if len(notifications) == 0 {
		fmt.Println("No notifications")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Read", "Created")

	for _, notification := range notifications {
		_ = table.Append(notification.ID, truncate(notification.Title, 50),
			fmt.Sprintf("%t", notification.Read), notification.Created.Format("2006-01-02"))
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
