package catalog

import (
	"fmt"

	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/utils"
	"github.com/ralt/pkgdisco/internal/version"
)

// Entry is the JSON form of a catalog package
type Entry struct {
	ID                   string `json:"id"`
	ArchiveType          string `json:"archive_type"`
	Distribution         string `json:"distribution"`
	MajorVersion         int    `json:"major_version"`
	Version              string `json:"version"`
	JavaVersion          string `json:"java_version"`
	DistributionVersion  string `json:"distribution_version"`
	LatestBuildAvailable bool   `json:"latest_build_available"`
	ReleaseStatus        string `json:"release_status"`
	TermOfSupport        string `json:"term_of_support"`
	OperatingSystem      string `json:"operating_system"`
	LibCType             string `json:"lib_c_type"`
	Architecture         string `json:"architecture"`
	PackageType          string `json:"package_type"`
	JavaFXBundled        bool   `json:"javafx_bundled"`
	DirectlyDownloadable bool   `json:"directly_downloadable"`
	Filename             string `json:"filename"`
	DirectDownloadURI    string `json:"direct_download_uri"`
	DownloadSiteURI      string `json:"download_site_uri"`
	Size                 int64  `json:"size,omitempty"`
	SHA256               string `json:"sha256,omitempty"`
}

// NewEntry converts a package to its JSON form
func NewEntry(p models.Package) Entry {
	return Entry{
		ID:                   utils.PackageID(p),
		ArchiveType:          p.ArchiveType.String(),
		Distribution:         p.Distribution.String(),
		MajorVersion:         p.Version.Feature().OrElse(0),
		Version:              p.Version.Canonical(),
		JavaVersion:          p.JavaVersion.Render(version.FormatReduced, true, true),
		DistributionVersion:  p.DistributionVersion.Render(version.FormatReduced, false, false),
		LatestBuildAvailable: p.LatestBuildAvailable,
		ReleaseStatus:        p.ReleaseStatus.String(),
		TermOfSupport:        p.TermOfSupport.String(),
		OperatingSystem:      p.OperatingSystem.String(),
		LibCType:             p.LibCType.String(),
		Architecture:         p.Architecture.String(),
		PackageType:          p.PackageType.String(),
		JavaFXBundled:        p.JavaFXBundled,
		DirectlyDownloadable: p.DirectlyDownloadable,
		Filename:             p.Filename,
		DirectDownloadURI:    p.DirectDownloadURI,
		DownloadSiteURI:      p.DownloadSiteURI,
		Size:                 p.Size,
		SHA256:               p.SHA256Sum,
	}
}

// Package converts the entry back to a package. The version is read from the
// lossless version field, or from java_version for entries written without
// one, so the entry must carry a readable version in either.
func (e Entry) Package() (models.Package, error) {
	field, text := "version", e.Version
	if text == "" {
		field, text = "java_version", e.JavaVersion
	}
	javaVersion := version.Parse(text)
	if javaVersion.IsEmpty() {
		return models.Package{}, &models.CatalogError{
			Type:    models.ErrCatalogRead,
			Package: e.Filename,
			Err:     fmt.Errorf("invalid %s %q", field, text),
		}
	}

	distributionVersion := javaVersion
	if e.DistributionVersion != "" {
		if v := version.Parse(e.DistributionVersion); !v.IsEmpty() {
			distributionVersion = v
		}
	}

	arch := models.ParseArchitecture(e.Architecture)

	return models.Package{
		Distribution:         models.ParseDistribution(e.Distribution),
		Version:              javaVersion,
		JavaVersion:          javaVersion,
		DistributionVersion:  distributionVersion,
		Architecture:         arch,
		Bitness:              arch.Bitness(),
		OperatingSystem:      models.ParseOperatingSystem(e.OperatingSystem),
		LibCType:             models.ParseLibCType(e.LibCType),
		PackageType:          models.ParsePackageType(e.PackageType),
		ReleaseStatus:        version.ParseReleaseStatus(e.ReleaseStatus),
		ArchiveType:          models.ParseArchiveType(e.ArchiveType),
		TermOfSupport:        models.ParseTermOfSupport(e.TermOfSupport),
		JavaFXBundled:        e.JavaFXBundled,
		DirectlyDownloadable: e.DirectlyDownloadable,
		LatestBuildAvailable: e.LatestBuildAvailable,
		Filename:             e.Filename,
		DirectDownloadURI:    e.DirectDownloadURI,
		DownloadSiteURI:      e.DownloadSiteURI,
		Size:                 e.Size,
		SHA256Sum:            e.SHA256,
	}, nil
}
