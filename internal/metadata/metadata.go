// Package metadata reads the name, version and architecture embedded in
// native Linux packages (.deb, .rpm, .apk and pacman packages).
package metadata

import (
	"fmt"
	"strings"

	"github.com/ralt/pkgdisco/internal/scanner"
)

// Info is the metadata embedded in a native package
type Info struct {
	Name         string
	Version      string
	Release      string // RPM release or pacman pkgrel, if separate from Version
	Architecture string
}

// VersionText returns the upstream version with any epoch prefix ("1:") removed
func (i *Info) VersionText() string {
	v := i.Version
	if idx := strings.Index(v, ":"); idx >= 0 && isDigits(v[:idx]) {
		v = v[idx+1:]
	}
	return v
}

// Read extracts the metadata of a native package of the given format
func Read(path string, format scanner.Format) (*Info, error) {
	switch format {
	case scanner.FormatDeb:
		return ReadDeb(path)
	case scanner.FormatRpm:
		return ReadRpm(path)
	case scanner.FormatApk:
		return ReadApk(path)
	case scanner.FormatPacman:
		return ReadPacman(path)
	default:
		return nil, fmt.Errorf("no embedded metadata in %s packages", format)
	}
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
