package version

import "strings"

// ReleaseStatus distinguishes early access builds from general availability ones
type ReleaseStatus int

const (
	// StatusNone means no release status was determined
	StatusNone ReleaseStatus = iota
	StatusEA
	StatusGA
	StatusNotFound
)

// String returns the string representation of ReleaseStatus
func (s ReleaseStatus) String() string {
	switch s {
	case StatusEA:
		return "ea"
	case StatusGA:
		return "ga"
	case StatusNotFound:
		return "not_found"
	default:
		return ""
	}
}

// ParseReleaseStatus maps a textual status back to a ReleaseStatus
func ParseReleaseStatus(text string) ReleaseStatus {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "ea", "early_access", "early-access":
		return StatusEA
	case "ga", "general_availability", "release":
		return StatusGA
	case "":
		return StatusNone
	default:
		return StatusNotFound
	}
}

// OutputFormat selects how many components Render emits
type OutputFormat int

const (
	// FormatFull renders every present component
	FormatFull OutputFormat = iota
	// FormatReduced drops trailing zero components down to the most significant non-zero one
	FormatReduced
)

// String returns the string representation of OutputFormat
func (f OutputFormat) String() string {
	switch f {
	case FormatReduced:
		return "reduced"
	default:
		return "full"
	}
}
