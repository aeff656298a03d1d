package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ralt/pkgdisco/internal/metadata"
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/scanner"
	"github.com/ralt/pkgdisco/internal/support"
	"github.com/ralt/pkgdisco/internal/utils"
	"github.com/ralt/pkgdisco/internal/version"
	"github.com/sirupsen/logrus"
)

// Builder turns the scanned files of one source into catalog packages
type Builder struct {
	source       models.SourceConfig
	distribution models.Distribution
}

// NewBuilder creates a builder for the packages of a source
func NewBuilder(source models.SourceConfig) (*Builder, error) {
	distribution := models.ParseDistribution(source.Distribution)
	if distribution == models.DistributionUnknown {
		return nil, &models.CatalogError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("unknown distribution %q", source.Distribution),
		}
	}

	return &Builder{source: source, distribution: distribution}, nil
}

// Build creates the catalog package for a scanned file. The version is read
// from the package's embedded metadata when it has any, from the filename
// otherwise.
func (b *Builder) Build(scanned scanner.ScannedPackage) (models.Package, error) {
	filename := filepath.Base(scanned.Path)
	attrs := scanner.DetectAttributes(filename)

	versionText, match := filename, b.source.VersionMatch
	if scanned.Format != scanner.FormatArchive {
		info, err := metadata.Read(scanned.Path, scanned.Format)
		if err != nil {
			logrus.Warnf("Failed to read metadata of %s, using filename: %v", filename, err)
		} else {
			versionText, match = info.VersionText(), 0
			if attrs.Architecture == models.ArchUnknown {
				attrs.Architecture = models.ParseArchitecture(info.Architecture)
			}
		}
	}

	javaVersion := version.ParseMatch(versionText, match)
	if javaVersion.IsEmpty() {
		return models.Package{}, &models.CatalogError{
			Type:    models.ErrPackageParse,
			Package: filename,
			Err:     fmt.Errorf("no version number in %q", versionText),
		}
	}
	if attrs.ReleaseStatus == version.StatusEA && !javaVersion.IsEA() {
		javaVersion = javaVersion.WithReleaseStatus(version.StatusEA)
	}

	distributionVersion := version.ParseMatch(filename, b.source.DistributionVersionMatch)
	if distributionVersion.IsEmpty() {
		distributionVersion = javaVersion
	}

	pkg := models.Package{
		Distribution:         b.distribution,
		Version:              javaVersion,
		JavaVersion:          javaVersion,
		DistributionVersion:  distributionVersion,
		Architecture:         attrs.Architecture,
		Bitness:              attrs.Architecture.Bitness(),
		OperatingSystem:      attrs.OperatingSystem,
		LibCType:             attrs.LibCType,
		PackageType:          attrs.PackageType,
		ReleaseStatus:        version.StatusGA,
		ArchiveType:          scanned.ArchiveType,
		TermOfSupport:        models.TermOfSupportNone,
		JavaFXBundled:        attrs.JavaFXBundled,
		DirectlyDownloadable: b.source.IsDirectlyDownloadable(),
		Filename:             filename,
		DirectDownloadURI:    joinURI(b.source.BaseURL, scanned.RelPath),
		DownloadSiteURI:      b.source.DownloadSite,
		Size:                 scanned.Size,
	}

	// Early access builds have no term of support
	if javaVersion.IsEA() {
		pkg.ReleaseStatus = version.StatusEA
	} else {
		tos, err := support.ClassifyVersion(javaVersion, b.distribution)
		if err != nil {
			return models.Package{}, &models.CatalogError{Type: models.ErrPackageParse, Package: filename, Err: err}
		}
		pkg.TermOfSupport = tos
	}

	digest, err := utils.DigestFile(scanned.Path)
	if err != nil {
		return models.Package{}, &models.CatalogError{
			Type:    models.ErrFileOp,
			Package: filename,
			Err:     fmt.Errorf("failed to calculate checksum: %w", err),
		}
	}
	pkg.SHA256Sum = digest.SHA256
	pkg.Size = digest.Size

	if pkg.OperatingSystem == models.OSUnknown || pkg.Architecture == models.ArchUnknown {
		logrus.Warnf("Could not tell operating system and architecture of %s (%s, %s)", filename, pkg.OperatingSystem, pkg.Architecture)
	}
	logrus.Debugf("Built %s %s %s from %s", pkg.Distribution, pkg.JavaVersion, pkg.PackageType, filename)

	return pkg, nil
}

func joinURI(base, relPath string) string {
	if base == "" {
		return relPath
	}
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(relPath, "/")
}
