// Package modrinthclient provides the main entry point for creating
// Modrinth API clients.
//
// Use New with a modrinth.Config to obtain a modrinth.Client:
//
//	cli, err := modrinthclient.New(&modrinth.Config{
//	  AppName:    "my-tool",
//	  AppVersion: "1.2.0",
//	  Contact:    "me@example.com",
//	})
//
// New normalizes the base URL, applies the production default when none is
// configured, and wires the transport. The returned client is immutable and
// safe for concurrent use.
package modrinthclient
