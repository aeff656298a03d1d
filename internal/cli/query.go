package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ralt/pkgdisco/internal/catalog"
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/utils"
	"github.com/ralt/pkgdisco/internal/version"
	"github.com/spf13/cobra"
)

type queryOptions struct {
	catalogPath   string
	version       string
	distribution  string
	os            string
	arch          string
	packageType   string
	archiveType   string
	releaseStatus string
	termOfSupport string
	latest        bool
	buildsOf      string
	majors        bool
}

// NewQueryCmd creates the query command
func NewQueryCmd() *cobra.Command {
	var opts queryOptions

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Search a package catalog",
		Long: `Lists the catalog packages matching all given filters. A version filter
matches every version starting with it, so --version 17 finds 17.0.2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := loadCatalog(opts.catalogPath)
			if err != nil {
				return err
			}

			switch {
			case opts.majors:
				renderMajors(cmd, c.MajorVersions())
				return nil
			case opts.buildsOf != "":
				builds, err := c.AllBuildsOf(opts.buildsOf)
				if err != nil {
					return err
				}
				renderPackages(cmd, builds)
				return nil
			}

			q, err := opts.query()
			if err != nil {
				return err
			}
			renderPackages(cmd, c.Search(q))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.catalogPath, "catalog", "./catalog", "Catalog file or directory")
	cmd.Flags().StringVar(&opts.version, "version", "", "Version prefix, e.g. 17 or 11.0.2")
	cmd.Flags().StringVar(&opts.distribution, "distro", "", "Distribution")
	cmd.Flags().StringVar(&opts.os, "os", "", "Operating system")
	cmd.Flags().StringVar(&opts.arch, "arch", "", "Architecture")
	cmd.Flags().StringVar(&opts.packageType, "package-type", "", "jdk or jre")
	cmd.Flags().StringVar(&opts.archiveType, "archive-type", "", "Archive type, e.g. tar.gz")
	cmd.Flags().StringVar(&opts.releaseStatus, "release-status", "", "ea or ga")
	cmd.Flags().StringVar(&opts.termOfSupport, "tos", "", "Support tier: lts, mts or sts")
	cmd.Flags().BoolVar(&opts.latest, "latest", false, "Only the latest build of each release")
	cmd.Flags().StringVar(&opts.buildsOf, "builds-of", "", "List the other artifacts of the build with this package id")
	cmd.Flags().BoolVar(&opts.majors, "majors", false, "List the major versions in the catalog")

	return cmd
}

func invalidFilter(name, value string) error {
	return &models.CatalogError{
		Type: models.ErrInvalidArgument,
		Err:  fmt.Errorf("invalid %s %q", name, value),
	}
}

// unknownDistribution reports a distribution name with the list of known ones
func unknownDistribution(name string) error {
	known := make([]string, 0, len(models.Distributions()))
	for _, d := range models.Distributions() {
		known = append(known, d.String())
	}
	return fmt.Errorf("unknown distribution %q, expected one of %s", name, strings.Join(known, ", "))
}

func (o queryOptions) query() (catalog.Query, error) {
	q := catalog.Query{LatestOnly: o.latest}

	if o.version != "" {
		q.Version = version.Parse(o.version)
		if q.Version.IsEmpty() {
			return q, invalidFilter("version", o.version)
		}
	}
	if o.distribution != "" {
		if q.Distribution = models.ParseDistribution(o.distribution); q.Distribution == models.DistributionUnknown {
			return q, &models.CatalogError{Type: models.ErrInvalidArgument, Err: unknownDistribution(o.distribution)}
		}
	}
	if o.os != "" {
		if q.OperatingSystem = models.ParseOperatingSystem(o.os); q.OperatingSystem == models.OSUnknown {
			return q, invalidFilter("operating system", o.os)
		}
	}
	if o.arch != "" {
		if q.Architecture = models.ParseArchitecture(o.arch); q.Architecture == models.ArchUnknown {
			return q, invalidFilter("architecture", o.arch)
		}
	}
	if o.packageType != "" {
		if q.PackageType = models.ParsePackageType(o.packageType); q.PackageType == models.PackageTypeUnknown {
			return q, invalidFilter("package type", o.packageType)
		}
	}
	if o.archiveType != "" {
		if q.ArchiveType = models.ParseArchiveType(o.archiveType); q.ArchiveType == models.ArchiveUnknown {
			return q, invalidFilter("archive type", o.archiveType)
		}
	}
	if o.releaseStatus != "" {
		if q.ReleaseStatus = version.ParseReleaseStatus(o.releaseStatus); q.ReleaseStatus == version.StatusNotFound {
			return q, invalidFilter("release status", o.releaseStatus)
		}
	}
	if o.termOfSupport != "" {
		switch q.TermOfSupport = models.ParseTermOfSupport(o.termOfSupport); q.TermOfSupport {
		case models.LTS, models.MTS, models.STS:
		default:
			return q, invalidFilter("term of support", o.termOfSupport)
		}
	}

	return q, nil
}

// loadCatalog reads a catalog directory or a single catalog file
func loadCatalog(path string) (*catalog.Catalog, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &models.CatalogError{Type: models.ErrCatalogRead, Err: err}
	}
	if info.IsDir() {
		return catalog.Load(path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &models.CatalogError{Type: models.ErrCatalogRead, Err: err}
	}
	return catalog.Unmarshal(data)
}

func renderPackages(cmd *cobra.Command, packages []models.Package) {
	rows := make([][]string, 0, len(packages))
	for _, p := range packages {
		rows = append(rows, []string{
			utils.PackageID(p),
			p.Distribution.String(),
			p.JavaVersion.Render(version.FormatReduced, true, true),
			p.OperatingSystem.String(),
			p.Architecture.String(),
			p.PackageType.String(),
			p.ArchiveType.String(),
			p.ReleaseStatus.String(),
			p.TermOfSupport.String(),
			strconv.FormatBool(p.LatestBuildAvailable),
			p.Filename,
		})
	}

	renderTable(cmd.OutOrStdout(),
		[]string{"Id", "Distribution", "Version", "OS", "Arch", "Type", "Archive", "Status", "Support", "Latest", "Filename"}, rows)
}

func renderMajors(cmd *cobra.Command, majors []catalog.MajorVersionInfo) {
	rows := make([][]string, 0, len(majors))
	for _, m := range majors {
		rows = append(rows, []string{
			m.MajorVersion.String(),
			m.TermOfSupport.String(),
			m.Latest.Render(version.FormatReduced, true, true),
			strconv.FormatBool(m.EarlyAccessOnly),
			strconv.Itoa(m.Packages),
		})
	}

	renderTable(cmd.OutOrStdout(), []string{"Major", "Support", "Latest", "EA only", "Packages"}, rows)
}
