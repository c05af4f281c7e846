package catalog_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/scopeplanner/internal/catalog"
)

func TestTrackKeysFollowCanonicalOrder(testInstance *testing.T) {
	require.Equal(testInstance,
		[]string{"protocol", "circuits", "implementation", "infra", "governance"},
		catalog.TrackKeys(),
	)
}

func TestLookupTrack(testInstance *testing.T) {
	testCases := []struct {
		name             string
		key              string
		expectedBaseDays float64
		expectNotFound   bool
	}{
		{name: "Protocol", key: catalog.TrackProtocol, expectedBaseDays: 10},
		{name: "Circuits", key: catalog.TrackCircuits, expectedBaseDays: 12},
		{name: "Implementation", key: catalog.TrackImplementation, expectedBaseDays: 14},
		{name: "Infra", key: catalog.TrackInfra, expectedBaseDays: 6},
		{name: "Governance", key: catalog.TrackGovernance, expectedBaseDays: 4},
		{name: "Unknown", key: "oracle", expectNotFound: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(testInstance *testing.T) {
			track, lookupError := catalog.LookupTrack(testCase.key)
			if testCase.expectNotFound {
				require.Error(testInstance, lookupError)
				require.True(testInstance, errors.Is(lookupError, catalog.ErrNotFound))
				require.Contains(testInstance, lookupError.Error(), testCase.key)
				return
			}
			require.NoError(testInstance, lookupError)
			require.Equal(testInstance, testCase.key, track.Key)
			require.Equal(testInstance, testCase.expectedBaseDays, track.BaseDays)
			require.NotEmpty(testInstance, track.Name)
			require.NotEmpty(testInstance, track.Description)
		})
	}
}

func TestLookupStyle(testInstance *testing.T) {
	profile, lookupError := catalog.LookupStyle(catalog.DefaultStyleKey)
	require.NoError(testInstance, lookupError)
	require.Equal(testInstance, "Aztec-style privacy rollup", profile.Name)
	require.Equal(testInstance, 1.5, profile.Multiplier(catalog.TrackCircuits))

	_, missingError := catalog.LookupStyle("foo")
	var notFoundError *catalog.NotFoundError
	require.ErrorAs(testInstance, missingError, &notFoundError)
	require.Equal(testInstance, "foo", notFoundError.Key)
	require.ErrorIs(testInstance, missingError, catalog.ErrNotFound)
}

func TestStylesSupplyPositiveMultiplierPerTrack(testInstance *testing.T) {
	styles := catalog.Styles()
	require.GreaterOrEqual(testInstance, len(styles), 3)
	require.Equal(testInstance, catalog.DefaultStyleKey, styles[0].Key)

	for _, profile := range styles {
		for _, trackKey := range catalog.TrackKeys() {
			require.Greater(testInstance, profile.Multiplier(trackKey), 0.0, "%s/%s", profile.Key, trackKey)
		}
	}
	require.Equal(testInstance, 1.0, styles[0].Multiplier("unknown"))
}

func TestCatalogAccessorsReturnCopies(testInstance *testing.T) {
	tracks := catalog.Tracks()
	tracks[0].BaseDays = 999
	styles := catalog.Styles()
	styles[0].Multipliers.Circuits = 999

	freshTrack, _ := catalog.LookupTrack(catalog.TrackProtocol)
	require.Equal(testInstance, 10.0, freshTrack.BaseDays)
	freshStyle, _ := catalog.LookupStyle(catalog.DefaultStyleKey)
	require.Equal(testInstance, 1.5, freshStyle.Multipliers.Circuits)
}
