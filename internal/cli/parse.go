package cli

import (
	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/support"
	"github.com/ralt/pkgdisco/internal/version"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewParseCmd creates the parse command
func NewParseCmd() *cobra.Command {
	var (
		match  int
		distro string
	)

	cmd := &cobra.Command{
		Use:   "parse TEXT...",
		Short: "Parse version numbers from text",
		Long: `Extracts the version number from each argument, such as a filename or a
release tag, and prints its renderings, release status, build and the
support tier of its feature release.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			distribution := models.DistributionUnknown
			if distro != "" {
				distribution = models.ParseDistribution(distro)
				if distribution == models.DistributionUnknown {
					return &models.CatalogError{Type: models.ErrInvalidArgument, Err: unknownDistribution(distro)}
				}
			}

			rows := make([][]string, 0, len(args))
			for _, text := range args {
				rows = append(rows, parseRow(text, match, distribution))
			}

			renderTable(cmd.OutOrStdout(),
				[]string{"Input", "Version", "Reduced", "Normalized", "Status", "Pre-build", "Build", "Support"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&match, "match", "m", 0, "Which version number in the text to use (0 based)")
	cmd.Flags().StringVar(&distro, "distro", "", "Distribution used to refine the support tier")

	return cmd
}

func parseRow(text string, match int, distribution models.Distribution) []string {
	n := version.ParseMatch(text, match)
	normalized, err := n.Normalized()
	if err != nil {
		logrus.Warnf("No version in %q", text)
		return []string{text, "-", "-", "-", "-", "-", "-", "-"}
	}

	tos := models.TermOfSupportNone
	if !n.IsEA() {
		if distribution == models.DistributionUnknown {
			tos, err = support.Classify(n.Feature().OrElse(0))
		} else {
			tos, err = support.ClassifyVersion(n, distribution)
		}
		if err != nil {
			logrus.Warnf("Cannot classify %q: %v", text, err)
		}
	}

	status := version.StatusGA
	if n.IsEA() {
		status = version.StatusEA
	}

	return []string{
		text,
		n.String(),
		n.Render(version.FormatReduced, false, true),
		normalized,
		status.String(),
		n.PreBuild().String(),
		n.Build().String(),
		tos.String(),
	}
}
