package utils

import (
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/version"
)

// PackageID returns the content addressed identifier of a package: the MD5 of
// its direct download URI, or of the download URI plus filename when the
// package is only reachable through a download site.
func PackageID(pkg models.Package) string {
	source := pkg.DirectDownloadURI
	if !pkg.DirectlyDownloadable {
		source += pkg.Filename
	}
	id, _ := CalculateChecksum([]byte(source), "md5")
	return id
}

// sameRelease compares every build dimension except version and filename
func sameRelease(a, b models.Package) bool {
	return a.Distribution == b.Distribution &&
		a.Architecture == b.Architecture &&
		a.Bitness == b.Bitness &&
		a.OperatingSystem == b.OperatingSystem &&
		a.LibCType == b.LibCType &&
		a.ArchiveType == b.ArchiveType &&
		a.PackageType == b.PackageType &&
		a.ReleaseStatus == b.ReleaseStatus &&
		a.JavaFXBundled == b.JavaFXBundled &&
		a.TermOfSupport == b.TermOfSupport
}

// IsDifferentBuild reports whether two packages describe different builds.
// Packages that agree on everything but their filename are the same build.
func IsDifferentBuild(a, b models.Package) bool {
	return !sameRelease(a, b) || a.Version.Compare(b.Version) != 0
}

// AllBuildsOf returns the sibling artifacts of pkg: packages of the same build
// published under a different filename.
func AllBuildsOf(packages []models.Package, pkg models.Package) []models.Package {
	var builds []models.Package
	for _, p := range packages {
		if p.Filename != pkg.Filename && !IsDifferentBuild(p, pkg) {
			builds = append(builds, p)
		}
	}
	return builds
}

// MaxVersionFor returns the package with the highest version among those
// sharing pkg's feature release and build dimensions.
func MaxVersionFor(packages []models.Package, pkg models.Package) (models.Package, bool) {
	feature, ok := pkg.Version.Feature().Get()
	if !ok {
		return models.Package{}, false
	}

	var best models.Package
	found := false
	for _, p := range packages {
		if !sameRelease(p, pkg) {
			continue
		}
		if f, ok := p.Version.Feature().Get(); !ok || f != feature {
			continue
		}
		if !found || p.Version.Compare(best.Version) > 0 {
			best, found = p, true
		}
	}
	return best, found
}

// LatestVersions returns the highest version of each feature release found in packages
func LatestVersions(packages []models.Package) map[int]version.Number {
	latest := make(map[int]version.Number)
	for _, p := range packages {
		feature, ok := p.Version.Feature().Get()
		if !ok {
			continue
		}
		if cur, seen := latest[feature]; !seen || p.Version.Compare(cur) > 0 {
			latest[feature] = p.Version
		}
	}
	return latest
}

// DetectConflicts returns packages from newPackages whose identifier already exists
func DetectConflicts(existing, newPackages []models.Package) []models.Package {
	existingMap := make(map[string]bool)
	for _, pkg := range existing {
		existingMap[PackageID(pkg)] = true
	}

	var conflicts []models.Package
	for _, pkg := range newPackages {
		if existingMap[PackageID(pkg)] {
			conflicts = append(conflicts, pkg)
		}
	}
	return conflicts
}

// Deduplicate drops every package whose identifier was already seen, keeping the first
func Deduplicate(packages []models.Package) []models.Package {
	seen := make(map[string]bool, len(packages))
	out := make([]models.Package, 0, len(packages))
	for _, pkg := range packages {
		id := PackageID(pkg)
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, pkg)
	}
	return out
}
