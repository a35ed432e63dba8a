// Package tcclient provides the primary entry point for constructing a
// TeamCity REST API client that implements the teamcity.Client interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the teamcity package. Most
// applications should import tcclient to build a client, then use the
// returned teamcity.Client to access resource-specific clients, for example
// Projects(), Builds(), Logs(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/Daghis/tcapi/pkg/tcclient"
//	  "github.com/Daghis/tcapi/pkg/teamcity"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: just a server URL (guest access).
//	  cli, err := tcclient.New(&teamcity.Config{ServerURL: "https://teamcity.example.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or with an access token you already have:
//	  cli, err = tcclient.New(&teamcity.Config{
//	    ServerURL: "https://teamcity.example.com",
//	    Token:     "eyJ0eXAiOi...", // bearer token
//	  })
//
//	  // Or with username/password basic auth against /httpAuth:
//	  cli, err = tcclient.New(&teamcity.Config{
//	    ServerURL: "https://teamcity.example.com",
//	    Username:  "user",
//	    Password:  "pass",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the teamcity.Client interface
//	  builds, err := cli.Builds().List(ctx,
//	    teamcity.NewLocator().With("state", "running"), teamcity.PageRequest{Count: 10})
//	  if err != nil { log.Fatal(err) }
//	  _ = builds
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithEndpoint,
// NewWithToken, and NewWithPassword that wrap New with the appropriate
// configuration.
package tcclient
