package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/modfetch-io/modrinth-client/pkg/modrinth"
	"github.com/modfetch-io/modrinth-client/pkg/modrinthclient"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

// cliAppName identifies this CLI in the user agent sent to the API.
const cliAppName = "modrinth-cli"

// CreateClient builds a modrinth.Client from the effective viper
// configuration.
func CreateClient(version string) (modrinth.Client, error) {
	config := &modrinth.Config{
		AppName:    cliAppName,
		AppVersion: version,
		Token:      viper.GetString("token"),
		BaseURL:    viper.GetString("base-url"),
	}

	client, err := modrinthclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return client, nil
}

// outputJSON renders v as indented JSON on stdout.
func outputJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as JSON: %w", err)
	}

	return nil
}

// outputYAML renders v as YAML on stdout.
func outputYAML(v interface{}) error {
	encoder := yaml.NewEncoder(os.Stdout)

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode as YAML: %w", err)
	}

	return nil
}

// renderStructured renders v as JSON or YAML when the configured output
// format asks for one, reporting whether it handled the output.
func renderStructured(v interface{}) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return true, outputJSON(v)
	case OutputFormatYAML:
		return true, outputYAML(v)
	default:
		return false, nil
	}
}

// optional renders a possibly-nil string field for table output.
func optional(s *string) string {
	if s == nil || *s == "" {
		return NotAvailable
	}

	return *s
}

// truncate shortens s for table cells.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}

	return s[:max-3] + "..."
}

// joinOrNA renders a string slice for table output.
func joinOrNA(ss []string) string {
	if len(ss) == 0 {
		return NotAvailable
	}

	return strings.Join(ss, ", ")
}
