package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
	"github.com/modfetch-io/modrinth-client/pkg/modrinthclient"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store an authentication token",
		Long: `Store a Modrinth personal access token in the CLI configuration.

The token is verified against the API before it is saved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if token == "" {
				token = viper.GetString("token")
			}

			if token == "" {
				fmt.Print("Token: ")

				byteToken, err := term.ReadPassword(int(syscall.Stdin))
				if err != nil {
					return fmt.Errorf("failed to read token: %w", err)
				}

				token = string(byteToken)

				fmt.Println()
			}

			if token == "" {
				return modrinth.ErrTokenRequired
			}

			// Verify the token before persisting it.
			client, err := modrinthclient.New(&modrinth.Config{
				AppName: cliAppName,
				Token:   token,
				BaseURL: viper.GetString("base-url"),
			})
			if err != nil {
				return err
			}

			user, err := client.Users().GetCurrent(context.Background())
			if err != nil {
				if modrinth.IsUnauthorized(err) {
					return fmt.Errorf("token rejected by the API: %w", err)
				}

				return fmt.Errorf("verifying token: %w", err)
			}

			viper.Set("token", token)

			if err := writeConfig(); err != nil {
				return err
			}

			fmt.Printf("Logged in as %s\n", user.Username)

			return nil
		},
	}

	cmd.Flags().StringVar(&token, "with-token", "", "token value (prompted when omitted)")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored authentication token",
		RunE: func(cmd *cobra.Command, args []string) error {
			viper.Set("token", "")

			if err := writeConfig(); err != nil {
				return err
			}

			fmt.Println("Logged out")

			return nil
		},
	}
}

// writeConfig persists the current viper state to the config file, creating
// it on first use.
func writeConfig() error {
	if err := viper.WriteConfig(); err == nil {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	path := filepath.Join(home, ".modrinth", "config.yml")
	if err := viper.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
