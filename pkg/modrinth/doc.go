// Package modrinth provides the domain types, client interfaces, error
// taxonomy, and identifier validators for the Modrinth V2 API.
//
// # Overview
//
// The modrinth package defines the response types returned by the API
// (e.g., Project, Version, User) and the interfaces for resource-oriented
// clients (e.g., ProjectsClient, VersionsClient). A concrete implementation
// of these clients is provided by the modrinthclient package, which wires
// configuration and transport. Most consumers should import modrinthclient
// to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/modfetch-io/modrinth-client/pkg/modrinth"
//	  "github.com/modfetch-io/modrinth-client/pkg/modrinthclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := modrinthclient.New(&modrinth.Config{AppName: "my-tool"})
//	  if err != nil { log.Fatal(err) }
//
//	  sodium, err := cli.Projects().Get(ctx, "AANobbMI")
//	  if err != nil { log.Fatal(err) }
//	  log.Println(sodium.Title)
//	}
//
// Every call is a single, stateless request/response round trip. The client
// holds no mutable state beyond its configuration, which is immutable after
// construction, so a single client is safe for any number of concurrent
// in-flight calls. The library performs no retries, no caching, and no rate
// limiting; those concerns belong to the caller or the remote service.
package modrinth
