package scanner

import (
	"context"

	"github.com/ralt/pkgdisco/internal/models"
)

// Format tells where the version of a package file is read from
type Format int

const (
	FormatUnknown Format = iota
	FormatDeb
	FormatRpm
	FormatApk
	FormatPacman
	// FormatArchive is a plain archive or installer whose version is only in its filename
	FormatArchive
)

// String returns the string representation of Format
func (f Format) String() string {
	switch f {
	case FormatDeb:
		return "deb"
	case FormatRpm:
		return "rpm"
	case FormatApk:
		return "apk"
	case FormatPacman:
		return "pacman"
	case FormatArchive:
		return "archive"
	default:
		return "unknown"
	}
}

// ScannedPackage represents a package file found during scanning
type ScannedPackage struct {
	Path        string
	RelPath     string // Path relative to the scanned directory, slash separated
	Format      Format
	ArchiveType models.ArchiveType
	Size        int64
}

// Scanner interface for detecting and scanning packages
type Scanner interface {
	// Scan recursively scans a directory for packages
	Scan(ctx context.Context, dir string) ([]ScannedPackage, error)

	// DetectType determines the format and archive type of a file
	DetectType(path string) (Format, models.ArchiveType, error)
}
