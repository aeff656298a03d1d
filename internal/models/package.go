package models

import "github.com/ralt/pkgdisco/internal/version"

// Package is one downloadable JDK artifact of a distribution
type Package struct {
	Distribution        Distribution
	Version             version.Number
	JavaVersion         version.Number
	DistributionVersion version.Number

	Architecture    Architecture
	Bitness         Bitness
	OperatingSystem OperatingSystem
	LibCType        LibCType
	PackageType     PackageType
	ReleaseStatus   version.ReleaseStatus
	ArchiveType     ArchiveType
	TermOfSupport   TermOfSupport

	JavaFXBundled        bool
	DirectlyDownloadable bool
	LatestBuildAvailable bool

	// Download locations
	Filename          string
	DirectDownloadURI string
	DownloadSiteURI   string

	// File information, only known for locally scanned packages
	Size      int64
	SHA256Sum string
}

// MajorVersion returns the feature release line of the package
func (p Package) MajorVersion() (version.MajorVersion, bool) {
	return p.Version.MajorVersion()
}
