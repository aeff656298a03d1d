package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pkgdisco",
		Short: "Build and query catalogs of JDK packages",
		Long: `Pkgdisco reads the version, platform and support tier of JDK packages
from their filenames and embedded metadata, and publishes them as a
searchable JSON catalog.

Supported package files:
  - Archives and installers (.tar.gz, .zip, .msi, .dmg, .pkg, ...)
  - Debian/APT (.deb packages)
  - Yum/RPM (.rpm packages)
  - Alpine/APK (.apk packages)
  - Arch Linux (.pkg.tar.* packages)`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewCatalogCmd())
	rootCmd.AddCommand(NewParseCmd())
	rootCmd.AddCommand(NewQueryCmd())

	return rootCmd
}
