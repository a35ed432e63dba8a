// Package teamcity provides types, interfaces, and helpers for working with
// the TeamCity REST API.
//
// # Overview
//
// The teamcity package defines the domain types (Project, Build, BuildType,
// Agent, ...) and the interfaces for resource-oriented clients. A concrete
// implementation is provided by the tcclient package, which wires
// configuration, transport, authentication, and caching. Most consumers
// should import tcclient to construct a client and then interact with the
// resource client interfaces exposed here.
//
// Getting a client
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
//	  cli, err := tcclient.NewWithToken("https://teamcity.example.com", "token")
//	  if err != nil { log.Fatal(err) }
//
//	  // List the first page of projects
//	  page, err := cli.Projects().List(ctx, nil, teamcity.PageRequest{Count: 50})
//	  if err != nil { log.Fatal(err) }
//	  _ = page
//	}
//
// # Locators and pagination
//
// List requests are filtered with Locator expressions and addressed with
// (start, count) cursors. Every resource client offers List for one page and
// ListAll for auto-fetch-all with an optional page budget:
//
//	all, err := cli.Builds().ListAll(ctx,
//	  teamcity.NewLocator().WithNested("buildType", teamcity.NewLocator().With("id", "BT_X")),
//	  &teamcity.FetchAllOptions{PageSize: 100, MaxPages: 5})
//	if err != nil { /* handle error */ }
//	_ = all.Truncated // true when the page budget stopped the listing early
//
// # Errors
//
// API errors carry the upstream HTTP status in APIError. Helpers such as
// IsNotFound, IsAccessDenied, and IsAmbiguous make it easy to branch on the
// common cases without parsing message text.
//
// # Caching
//
// Composite lookups (build status and results) are cached per
// (build, option set) with a fixed TTL, but only once the build has reached
// a terminal state. Backends are pluggable: in-process memory (default),
// NATS JetStream KV for cross-process sharing, or none.
package teamcity
