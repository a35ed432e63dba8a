package client

import (
	"context"
	"fmt"

	"github.com/Daghis/tcapi/internal/constants"
	"github.com/Daghis/tcapi/pkg/teamcity"
)

// ambiguityProbeSize bounds the direct number-locator query. Anything past
// the second match only improves the error message.
const ambiguityProbeSize = 10

// resolveBuildID resolves a BuildRef to an internal build id. A plain id
// passes through. A build number is resolved by a direct locator query,
// optionally scoped by build type; more than one match without a build type
// is an ambiguity error, never a guess. When the direct query finds nothing
// but a build type is known, a bounded window of that build type's most
// recent builds is scanned for an exact number match before giving up.
func resolveBuildID(ctx context.Context, builds teamcity.BuildsClient, ref teamcity.BuildRef) (int64, error) {
	if ref.BuildID > 0 {
		return ref.BuildID, nil
	}

	if ref.BuildNumber == "" {
		return 0, teamcity.ErrBuildRefRequired
	}

	loc := teamcity.NewLocator().With("number", ref.BuildNumber)
	if ref.BuildTypeID != "" {
		loc.WithNested("buildType", teamcity.NewLocator().With("id", ref.BuildTypeID))
	}

	page, err := builds.List(ctx, loc, teamcity.PageRequest{Count: ambiguityProbeSize})
	if err != nil {
		return 0, fmt.Errorf("looking up build number %q: %w", ref.BuildNumber, err)
	}

	if len(page.Items) > 1 && ref.BuildTypeID == "" {
		matchIDs := make([]int64, 0, len(page.Items))
		for _, build := range page.Items {
			matchIDs = append(matchIDs, build.ID)
		}

		return 0, &teamcity.AmbiguousBuildError{Number: ref.BuildNumber, MatchIDs: matchIDs}
	}

	if len(page.Items) > 0 {
		return page.Items[0].ID, nil
	}

	if ref.BuildTypeID != "" {
		id, found, err := scanRecentBuilds(ctx, builds, ref)
		if err != nil {
			return 0, err
		}

		if found {
			return id, nil
		}
	}

	return 0, fmt.Errorf("%w: number %q", teamcity.ErrBuildNotFound, ref.BuildNumber)
}

// scanRecentBuilds looks for an exact number match among the most recent
// builds of the ref's build type. The number locator misses builds the
// server's default filtering hides (personal, canceled, non-default branch);
// the recent window catches those.
func scanRecentBuilds(ctx context.Context, builds teamcity.BuildsClient, ref teamcity.BuildRef) (int64, bool, error) {
	loc := teamcity.NewLocator().
		WithNested("buildType", teamcity.NewLocator().With("id", ref.BuildTypeID)).
		With("defaultFilter", "false")

	page, err := builds.List(ctx, loc, teamcity.PageRequest{Count: constants.RecentBuildsWindow})
	if err != nil {
		return 0, false, fmt.Errorf("scanning recent builds of %s: %w", ref.BuildTypeID, err)
	}

	for _, build := range page.Items {
		if build.Number == ref.BuildNumber {
			return build.ID, true, nil
		}
	}

	return 0, false, nil
}
