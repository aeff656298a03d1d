// Package support classifies JDK feature releases into support tiers.
package support

import (
	"fmt"

	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/version"
)

// mtsDistribution is the only vendor offering medium term support releases
const mtsDistribution = models.Zulu

func checkFeature(feature int) error {
	if feature < 1 {
		return &models.CatalogError{
			Type: models.ErrInvalidArgument,
			Err:  fmt.Errorf("feature version must be at least 1, got %d", feature),
		}
	}
	return nil
}

// IsLTS reports whether a feature release is long term supported:
// every release up to 8, then 11 and every sixth release after it.
func IsLTS(feature int) (bool, error) {
	if err := checkFeature(feature); err != nil {
		return false, err
	}
	return isLTS(feature), nil
}

// IsMTS reports whether a feature release qualifies for medium term support
func IsMTS(feature int) (bool, error) {
	if err := checkFeature(feature); err != nil {
		return false, err
	}
	return isMTS(feature), nil
}

// IsSTS reports whether a feature release is short term supported
func IsSTS(feature int) (bool, error) {
	if err := checkFeature(feature); err != nil {
		return false, err
	}
	return isSTS(feature), nil
}

func isLTS(feature int) bool {
	if feature <= 8 {
		return true
	}
	if feature < 11 {
		return false
	}
	return (feature-11)%6 == 0
}

func isMTS(feature int) bool {
	return feature >= 13 && !isLTS(feature) && feature%2 != 0
}

func isSTS(feature int) bool {
	if feature < 9 {
		return false
	}
	if feature == 9 || feature == 10 {
		return true
	}
	return !isLTS(feature)
}

// Classify returns the support tier of a feature release, without vendor refinement
func Classify(feature int) (models.TermOfSupport, error) {
	if err := checkFeature(feature); err != nil {
		return models.TermOfSupportNotFound, err
	}
	switch {
	case isLTS(feature):
		return models.LTS, nil
	case isMTS(feature):
		return models.MTS, nil
	case isSTS(feature):
		return models.STS, nil
	default:
		return models.TermOfSupportNotFound, nil
	}
}

// ClassifyFor returns the support tier a distribution gives a feature release.
// Medium term support is only honored by Zulu; other vendors treat those
// releases as short term.
func ClassifyFor(feature int, distribution models.Distribution) (models.TermOfSupport, error) {
	tos, err := Classify(feature)
	if err != nil {
		return tos, err
	}
	if tos == models.MTS && distribution != mtsDistribution {
		return models.STS, nil
	}
	return tos, nil
}

// ClassifyVersion classifies a version number's feature release for a distribution
func ClassifyVersion(v version.Number, distribution models.Distribution) (models.TermOfSupport, error) {
	feature, ok := v.Feature().Get()
	if !ok {
		return models.TermOfSupportNotFound, &models.CatalogError{
			Type: models.ErrInvalidArgument,
			Err:  fmt.Errorf("version number has no feature version"),
		}
	}
	return ClassifyFor(feature, distribution)
}

// IsReleaseTermOfSupport reports whether a feature release belongs to the given tier
func IsReleaseTermOfSupport(feature int, tos models.TermOfSupport) (bool, error) {
	switch tos {
	case models.LTS:
		return IsLTS(feature)
	case models.MTS:
		return IsMTS(feature)
	case models.STS:
		return IsSTS(feature)
	default:
		return false, checkFeature(feature)
	}
}
