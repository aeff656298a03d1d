package version

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidVersion is returned when a version number is constructed from invalid components
var ErrInvalidVersion = errors.New("invalid version number")

const (
	idxFeature = iota
	idxInterim
	idxUpdate
	idxPatch
	idxFifth
	idxSixth
	componentCount
)

// Number is a structured JDK version number: feature.interim.update.patch.fifth.sixth
// plus an optional build number, release status and early access pre-build.
//
// Every component carries explicit presence. An absent component means
// "unspecified", which each comparison treats differently.
type Number struct {
	parts    [componentCount]Optional
	build    Optional
	status   ReleaseStatus
	preBuild Optional
}

// New creates a version number from a feature version and up to five further
// components. Components that are not given stay absent.
func New(feature int, components ...int) (Number, error) {
	var n Number
	if feature < 1 {
		return n, fmt.Errorf("%w: feature must be positive, got %d", ErrInvalidVersion, feature)
	}
	if len(components) > componentCount-1 {
		return n, fmt.Errorf("%w: at most %d components after feature, got %d", ErrInvalidVersion, componentCount-1, len(components))
	}
	n.parts[idxFeature] = Of(feature)
	for i, c := range components {
		if c < 0 {
			return Number{}, fmt.Errorf("%w: component %d is negative (%d)", ErrInvalidVersion, i+1, c)
		}
		n.parts[i+1] = Of(c)
	}
	return n, nil
}

// MustNew is like New but panics on invalid input
func MustNew(feature int, components ...int) Number {
	n, err := New(feature, components...)
	if err != nil {
		panic(err)
	}
	return n
}

// Feature returns the feature component
func (n Number) Feature() Optional { return n.parts[idxFeature] }

// Interim returns the interim component
func (n Number) Interim() Optional { return n.parts[idxInterim] }

// Update returns the update component
func (n Number) Update() Optional { return n.parts[idxUpdate] }

// Patch returns the patch component
func (n Number) Patch() Optional { return n.parts[idxPatch] }

// Fifth returns the fifth component
func (n Number) Fifth() Optional { return n.parts[idxFifth] }

// Sixth returns the sixth component
func (n Number) Sixth() Optional { return n.parts[idxSixth] }

// Build returns the vendor build number
func (n Number) Build() Optional { return n.build }

// ReleaseStatus returns the release status
func (n Number) ReleaseStatus() ReleaseStatus { return n.status }

// PreBuild returns the early access pre-build number
func (n Number) PreBuild() Optional { return n.preBuild }

// IsEmpty reports whether the number has no feature version, which is how
// unparseable input is represented.
func (n Number) IsEmpty() bool {
	return !n.parts[idxFeature].IsPresent()
}

// IsEA reports whether the release status is early access
func (n Number) IsEA() bool {
	return n.status == StatusEA
}

// hasEAPreBuild reports whether the number is early access with a pre-build
func (n Number) hasEAPreBuild() bool {
	return n.status == StatusEA && n.preBuild.IsPresent()
}

// NumbersAvailable returns 1 plus the number of present components after feature
func (n Number) NumbersAvailable() int {
	count := 1
	for i := idxInterim; i < componentCount; i++ {
		if n.parts[i].IsPresent() {
			count++
		}
	}
	return count
}

// WithBuild returns a copy with the build number set
func (n Number) WithBuild(build int) (Number, error) {
	if build < 0 {
		return n, fmt.Errorf("%w: build is negative (%d)", ErrInvalidVersion, build)
	}
	n.build = Of(build)
	return n, nil
}

// WithReleaseStatus returns a copy with the release status set
func (n Number) WithReleaseStatus(status ReleaseStatus) Number {
	n.status = status
	return n
}

// WithPreBuild returns a copy with the pre-build number set. The pre-build is
// only taken into account when the release status is early access.
func (n Number) WithPreBuild(preBuild int) (Number, error) {
	if preBuild < 0 {
		return n, fmt.Errorf("%w: pre-build is negative (%d)", ErrInvalidVersion, preBuild)
	}
	n.preBuild = Of(preBuild)
	return n, nil
}

// ZeroFilled returns a copy where every absent component after feature is a present zero.
// An empty number is returned unchanged.
func (n Number) ZeroFilled() Number {
	if n.IsEmpty() {
		return n
	}
	for i := idxInterim; i < componentCount; i++ {
		if !n.parts[i].IsPresent() {
			n.parts[i] = Of(0)
		}
	}
	return n
}

// MajorVersion returns the feature version as a MajorVersion
func (n Number) MajorVersion() (MajorVersion, bool) {
	f, ok := n.parts[idxFeature].Get()
	if !ok {
		return MajorVersion{}, false
	}
	return MajorVersion{feature: f}, true
}

// set backfills a component during parsing
func (n *Number) set(idx, value int) {
	n.parts[idx] = Of(value)
}

// MajorVersion identifies a feature release line, e.g. 17
type MajorVersion struct {
	feature int
}

// NewMajorVersion creates a MajorVersion, rejecting feature versions below 1
func NewMajorVersion(feature int) (MajorVersion, error) {
	if feature < 1 {
		return MajorVersion{}, fmt.Errorf("%w: feature must be positive, got %d", ErrInvalidVersion, feature)
	}
	return MajorVersion{feature: feature}, nil
}

// Feature returns the feature version
func (m MajorVersion) Feature() int {
	return m.feature
}

// Number returns a version number holding only the feature version.
// It matches every release of the line under CompareForFilter.
func (m MajorVersion) Number() Number {
	var n Number
	n.parts[idxFeature] = Of(m.feature)
	return n
}

func (m MajorVersion) String() string {
	return strconv.Itoa(m.feature)
}
