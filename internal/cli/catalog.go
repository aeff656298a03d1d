package cli

import (
	"context"
	"fmt"

	"github.com/ralt/pkgdisco/internal/catalog"
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/signer"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type catalogOptions struct {
	configPath           string
	config               models.CatalogConfig
	source               models.SourceConfig
	directlyDownloadable bool
}

// NewCatalogCmd creates the catalog command
func NewCatalogCmd() *cobra.Command {
	var opts catalogOptions

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Build a package catalog",
		Long: `Scans the input directory for JDK packages and writes a JSON catalog
describing them, optionally compressed and signed.

Sources are read from a YAML configuration file; the source flags override
the first configured source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := resolveConfig(cmd, &opts)
			if err != nil {
				return err
			}

			// Validate configuration
			if err := validateConfig(config); err != nil {
				return err
			}

			logrus.Info("Starting catalog generation...")
			logrus.Debugf("Configuration: %+v", *config)

			return runCatalog(cmd.Context(), config)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "YAML file describing the package sources")

	// Input/Output flags
	cmd.Flags().StringVarP(&opts.config.InputDir, "input-dir", "i", ".", "Input directory to scan")
	cmd.Flags().StringVarP(&opts.config.OutputDir, "output-dir", "o", "./catalog", "Output directory")
	cmd.Flags().BoolVar(&opts.config.Gzip, "gzip", false, "Also write a gzip compressed catalog")
	cmd.Flags().BoolVar(&opts.config.Incremental, "incremental", false, "Merge packages into the existing catalog")

	// GPG signing flags
	cmd.Flags().StringVarP(&opts.config.GPGKeyPath, "gpg-key", "k", "", "Path to GPG private key")
	cmd.Flags().StringVarP(&opts.config.GPGPassphrase, "gpg-passphrase", "p", "", "GPG key passphrase")

	// Source flags
	cmd.Flags().StringVar(&opts.source.Distribution, "distro", "", "Distribution of the packages, e.g. zulu or temurin")
	cmd.Flags().StringVar(&opts.source.BaseURL, "base-url", "", "URL the input directory is published under")
	cmd.Flags().StringVar(&opts.source.DownloadSite, "download-site", "", "Landing page of the distribution")
	cmd.Flags().IntVar(&opts.source.VersionMatch, "version-match", 0, "Which version number in the filename is the Java version (0 based)")
	cmd.Flags().IntVar(&opts.source.DistributionVersionMatch, "distro-version-match", 0, "Which version number in the filename is the distribution version (0 based)")
	cmd.Flags().BoolVar(&opts.directlyDownloadable, "directly-downloadable", true, "Whether the base URL serves the files directly")

	return cmd
}

// resolveConfig loads the configuration file, if any, and applies the flags the user set on top of it
func resolveConfig(cmd *cobra.Command, opts *catalogOptions) (*models.CatalogConfig, error) {
	config := &models.CatalogConfig{}
	if opts.configPath != "" {
		loaded, err := models.LoadCatalogConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	flags := cmd.Flags()
	override := func(name string, dst *string, value string) {
		if flags.Changed(name) || *dst == "" {
			*dst = value
		}
	}
	override("input-dir", &config.InputDir, opts.config.InputDir)
	override("output-dir", &config.OutputDir, opts.config.OutputDir)
	override("gpg-key", &config.GPGKeyPath, opts.config.GPGKeyPath)
	config.GPGPassphrase = opts.config.GPGPassphrase
	config.Gzip = config.Gzip || opts.config.Gzip
	config.Incremental = config.Incremental || opts.config.Incremental

	sourceFlags := []string{"distro", "base-url", "download-site", "version-match", "distro-version-match", "directly-downloadable"}
	changed := false
	for _, name := range sourceFlags {
		changed = changed || flags.Changed(name)
	}
	if !changed {
		return config, nil
	}

	if len(config.Sources) == 0 {
		config.Sources = append(config.Sources, models.SourceConfig{})
	}
	src := &config.Sources[0]
	if flags.Changed("distro") {
		src.Distribution = opts.source.Distribution
	}
	if flags.Changed("base-url") {
		src.BaseURL = opts.source.BaseURL
	}
	if flags.Changed("download-site") {
		src.DownloadSite = opts.source.DownloadSite
	}
	if flags.Changed("version-match") {
		src.VersionMatch = opts.source.VersionMatch
	}
	if flags.Changed("distro-version-match") {
		src.DistributionVersionMatch = opts.source.DistributionVersionMatch
	}
	if flags.Changed("directly-downloadable") {
		directly := opts.directlyDownloadable
		src.DirectlyDownloadable = &directly
	}

	return config, nil
}

func validateConfig(config *models.CatalogConfig) error {
	if config.InputDir == "" {
		return &models.CatalogError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("input-dir is required"),
		}
	}

	if config.OutputDir == "" {
		return &models.CatalogError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("output-dir is required"),
		}
	}

	if len(config.Sources) == 0 {
		return &models.CatalogError{
			Type: models.ErrInvalidConfig,
			Err:  fmt.Errorf("no sources configured, use --distro or --config"),
		}
	}

	for i, src := range config.Sources {
		if models.ParseDistribution(src.Distribution) == models.DistributionUnknown {
			return &models.CatalogError{
				Type: models.ErrInvalidConfig,
				Err:  fmt.Errorf("source %d: %w", i, unknownDistribution(src.Distribution)),
			}
		}
	}

	return nil
}

func runCatalog(ctx context.Context, config *models.CatalogConfig) error {
	// Step 1: Scan and build packages
	packages, err := catalog.BuildPackages(ctx, config)
	if err != nil {
		return err
	}

	if len(packages) == 0 {
		logrus.Warn("No packages found in input directory")
		return nil
	}

	// Step 2: Validate
	if err := catalog.ValidatePackages(packages); err != nil {
		return &models.CatalogError{
			Type: models.ErrInvalidArgument,
			Err:  fmt.Errorf("package validation failed: %w", err),
		}
	}

	// Step 3: Initialize signer
	var catalogSigner signer.Signer
	if config.GPGKeyPath != "" {
		gpgSigner, err := signer.NewGPGSigner(config.GPGKeyPath, config.GPGPassphrase)
		if err != nil {
			return err
		}
		catalogSigner = gpgSigner
		logrus.Info("GPG signer initialized")
	}

	// Step 4: Merge with the existing catalog in incremental mode
	result := catalog.New(packages)
	if config.Incremental {
		existing, err := catalog.Load(config.OutputDir)
		if err != nil {
			return err
		}

		var conflicts []models.Package
		result, conflicts = existing.Merge(packages)
		logrus.Infof("Merged %d new packages into %d existing (%d already present)",
			len(packages)-len(conflicts), existing.Len(), len(conflicts))
	}

	// Step 5: Write
	if err := catalog.Save(config.OutputDir, result, catalog.WriteOptions{Gzip: config.Gzip, Signer: catalogSigner}); err != nil {
		return err
	}

	logrus.Info("Catalog generation completed successfully!")
	logrus.Infof("Output directory: %s", config.OutputDir)

	return nil
}
