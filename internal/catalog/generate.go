package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/scanner"
	"github.com/sirupsen/logrus"
)

type sourceBuilder struct {
	dir     string
	builder *Builder
}

// BuildPackages scans the input directory and builds a package for every
// file below a configured source. Files that cannot be attributed or parsed
// are skipped with a warning.
func BuildPackages(ctx context.Context, config *models.CatalogConfig) ([]models.Package, error) {
	if len(config.Sources) == 0 {
		return nil, &models.CatalogError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("at least one source is required"),
		}
	}

	builders := make([]sourceBuilder, 0, len(config.Sources))
	for _, src := range config.Sources {
		b, err := NewBuilder(src)
		if err != nil {
			return nil, err
		}
		builders = append(builders, sourceBuilder{dir: path.Clean("/" + src.Dir)[1:], builder: b})
	}

	logrus.Infof("Scanning directory: %s", config.InputDir)
	scanned, err := scanner.NewFileSystemScanner().Scan(ctx, config.InputDir)
	if err != nil {
		return nil, &models.CatalogError{
			Type: models.ErrFileOp,
			Err:  fmt.Errorf("failed to scan directory: %w", err),
		}
	}

	var packages []models.Package
	for _, sp := range scanned {
		b := builderFor(builders, sp.RelPath)
		if b == nil {
			logrus.Debugf("No source configured for %s", sp.RelPath)
			continue
		}

		pkg, err := b.Build(sp)
		if err != nil {
			logrus.Warnf("Skipping %s: %v", sp.RelPath, err)
			continue
		}
		packages = append(packages, pkg)
	}

	logrus.Infof("Built %d packages from %d files", len(packages), len(scanned))
	return packages, nil
}

// builderFor returns the builder of the most specific source containing relPath
func builderFor(builders []sourceBuilder, relPath string) *Builder {
	var best *sourceBuilder
	for i := range builders {
		sb := &builders[i]
		if sb.dir != "" && relPath != sb.dir && !strings.HasPrefix(relPath, sb.dir+"/") {
			continue
		}
		if best == nil || len(sb.dir) > len(best.dir) {
			best = sb
		}
	}
	if best == nil {
		return nil
	}
	return best.builder
}
