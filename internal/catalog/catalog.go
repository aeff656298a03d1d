// Package catalog assembles JDK packages into a queryable catalog and
// persists it as JSON.
package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/support"
	"github.com/ralt/pkgdisco/internal/utils"
	"github.com/ralt/pkgdisco/internal/version"
	"github.com/sirupsen/logrus"
)

// Catalog is an immutable snapshot of packages, unique by id. Updates
// produce a new snapshot.
type Catalog struct {
	packages []models.Package
	index    map[string]int
}

// New builds a catalog from packages. Packages whose id was already seen are
// dropped and the latest build flag is recomputed.
func New(packages []models.Package) *Catalog {
	pkgs := utils.Deduplicate(packages)
	if dropped := len(packages) - len(pkgs); dropped > 0 {
		logrus.Debugf("Dropped %d duplicate packages", dropped)
	}
	markLatestBuilds(pkgs)

	slices.SortStableFunc(pkgs, func(a, b models.Package) int {
		if c := cmp.Compare(a.Distribution, b.Distribution); c != 0 {
			return c
		}
		if c := b.Version.Compare(a.Version); c != 0 {
			return c
		}
		return cmp.Compare(a.Filename, b.Filename)
	})

	index := make(map[string]int, len(pkgs))
	for i, p := range pkgs {
		index[utils.PackageID(p)] = i
	}

	return &Catalog{packages: pkgs, index: index}
}

// markLatestBuilds flags every package whose version is the highest of its
// feature release among packages with the same build dimensions
func markLatestBuilds(packages []models.Package) {
	for i := range packages {
		best, ok := utils.MaxVersionFor(packages, packages[i])
		packages[i].LatestBuildAvailable = ok && best.Version.Compare(packages[i].Version) == 0
	}
}

// Len returns the number of packages in the catalog
func (c *Catalog) Len() int {
	return len(c.packages)
}

// Packages returns a copy of all packages
func (c *Catalog) Packages() []models.Package {
	return slices.Clone(c.packages)
}

// Find returns the package with the given id
func (c *Catalog) Find(id string) (models.Package, bool) {
	i, ok := c.index[id]
	if !ok {
		return models.Package{}, false
	}
	return c.packages[i], true
}

// Merge returns a new catalog holding the packages of c plus newPackages.
// New packages whose id already exists are not added and are returned as
// conflicts.
func (c *Catalog) Merge(newPackages []models.Package) (*Catalog, []models.Package) {
	conflicts := utils.DetectConflicts(c.packages, newPackages)
	for _, p := range conflicts {
		logrus.Warnf("Package %s already in catalog, keeping existing entry", p.Filename)
	}

	combined := make([]models.Package, 0, len(c.packages)+len(newPackages))
	combined = append(combined, c.packages...)
	combined = append(combined, newPackages...)

	return New(combined), conflicts
}

// AllBuildsOf returns the other artifacts of the build of the package with the given id
func (c *Catalog) AllBuildsOf(id string) ([]models.Package, error) {
	pkg, ok := c.Find(id)
	if !ok {
		return nil, &models.CatalogError{
			Type: models.ErrInvalidArgument,
			Err:  fmt.Errorf("no package with id %s", id),
		}
	}
	return utils.AllBuildsOf(c.packages, pkg), nil
}

// Query selects packages. Zero valued fields match everything.
type Query struct {
	Version         version.Number
	Distribution    models.Distribution
	OperatingSystem models.OperatingSystem
	Architecture    models.Architecture
	LibCType        models.LibCType
	PackageType     models.PackageType
	ArchiveType     models.ArchiveType
	ReleaseStatus   version.ReleaseStatus
	TermOfSupport   models.TermOfSupport
	JavaFXBundled   *bool

	// LatestOnly keeps only the latest build of each feature release
	LatestOnly bool
}

// Matches reports whether a package satisfies the query. Versions match when
// they agree on the components both of them spell out, so 17 matches 17.0.2.
func (q Query) Matches(p models.Package) bool {
	switch {
	case !q.Version.IsEmpty() && p.Version.CompareForFilter(q.Version) != 0:
		return false
	case q.Distribution != models.DistributionUnknown && p.Distribution != q.Distribution:
		return false
	case q.OperatingSystem != models.OSUnknown && p.OperatingSystem != q.OperatingSystem:
		return false
	case q.Architecture != models.ArchUnknown && p.Architecture != q.Architecture:
		return false
	case q.LibCType != models.LibCUnknown && p.LibCType != q.LibCType:
		return false
	case q.PackageType != models.PackageTypeUnknown && p.PackageType != q.PackageType:
		return false
	case q.ArchiveType != models.ArchiveUnknown && p.ArchiveType != q.ArchiveType:
		return false
	case q.ReleaseStatus != version.StatusNone && p.ReleaseStatus != q.ReleaseStatus:
		return false
	case q.TermOfSupport != models.TermOfSupportNone && !q.matchesTermOfSupport(p):
		return false
	case q.JavaFXBundled != nil && p.JavaFXBundled != *q.JavaFXBundled:
		return false
	case q.LatestOnly && !p.LatestBuildAvailable:
		return false
	}
	return true
}

// matchesTermOfSupport compares the package's own tier. Packages without one,
// such as early access builds, match by the tier of their feature release.
func (q Query) matchesTermOfSupport(p models.Package) bool {
	if p.TermOfSupport != models.TermOfSupportNone {
		return p.TermOfSupport == q.TermOfSupport
	}
	ok, err := support.IsReleaseTermOfSupport(p.Version.Feature().OrElse(0), q.TermOfSupport)
	return err == nil && ok
}

// Search returns the packages matching the query, in catalog order
func (c *Catalog) Search(q Query) []models.Package {
	var out []models.Package
	for _, p := range c.packages {
		if q.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// MajorVersionInfo summarizes one feature release line of the catalog
type MajorVersionInfo struct {
	MajorVersion    version.MajorVersion
	TermOfSupport   models.TermOfSupport
	Latest          version.Number
	EarlyAccessOnly bool
	Packages        int
}

// MajorVersions lists the feature releases present in the catalog, newest first
func (c *Catalog) MajorVersions() []MajorVersionInfo {
	latest := utils.LatestVersions(c.packages)

	byFeature := make(map[int]*MajorVersionInfo, len(latest))
	for _, p := range c.packages {
		feature, ok := p.Version.Feature().Get()
		if !ok {
			continue
		}

		info, seen := byFeature[feature]
		if !seen {
			major, err := version.NewMajorVersion(feature)
			if err != nil {
				continue
			}
			tos, err := support.Classify(feature)
			if err != nil {
				continue
			}
			info = &MajorVersionInfo{
				MajorVersion:    major,
				TermOfSupport:   tos,
				Latest:          latest[feature],
				EarlyAccessOnly: true,
			}
			byFeature[feature] = info
		}

		info.Packages++
		if p.ReleaseStatus != version.StatusEA {
			info.EarlyAccessOnly = false
		}
	}

	out := make([]MajorVersionInfo, 0, len(byFeature))
	for _, info := range byFeature {
		out = append(out, *info)
	}
	slices.SortFunc(out, func(a, b MajorVersionInfo) int {
		return cmp.Compare(b.MajorVersion.Feature(), a.MajorVersion.Feature())
	})
	return out
}
