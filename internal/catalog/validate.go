package catalog

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/utils"
	"github.com/ralt/pkgdisco/internal/version"
)

// ValidatePackages checks that packages can be published, reporting every
// problem found rather than stopping at the first one
func ValidatePackages(packages []models.Package) error {
	var result error
	seen := make(map[string]string, len(packages))

	for _, p := range packages {
		if err := validatePackage(p); err != nil {
			result = multierror.Append(result, err)
			continue
		}

		id := utils.PackageID(p)
		if other, ok := seen[id]; ok {
			result = multierror.Append(result, &models.CatalogError{
				Type:    models.ErrInvalidArgument,
				Package: p.Filename,
				Err:     fmt.Errorf("same id %s as %s", id, other),
			})
			continue
		}
		seen[id] = p.Filename
	}

	return result
}

func validatePackage(p models.Package) error {
	invalid := func(format string, args ...any) error {
		return &models.CatalogError{
			Type:    models.ErrInvalidArgument,
			Package: p.Filename,
			Err:     fmt.Errorf(format, args...),
		}
	}

	switch {
	case p.Filename == "":
		return invalid("filename is required")
	case p.Version.IsEmpty():
		return invalid("version is required")
	case p.Distribution == models.DistributionUnknown:
		return invalid("distribution is required")
	case p.ArchiveType == models.ArchiveUnknown:
		return invalid("unknown archive type")
	case p.DirectDownloadURI == "":
		return invalid("download URI is required")
	case p.ReleaseStatus == version.StatusEA && p.TermOfSupport != models.TermOfSupportNone:
		return invalid("early access build cannot have term of support %s", p.TermOfSupport)
	}
	return nil
}
