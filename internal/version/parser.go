package version

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// versionPattern matches a feature version followed by either an update
	// (8u262) or up to five dotted components, an optional _N or bN marker and
	// an optional qualifier introduced by '-', '+' or '.'.
	versionPattern = regexp.MustCompile(`([1-9]\d*)((u(\d+))|(\.?(\d+)?\.?(\d+)?\.?(\d+)?\.?(\d+)?\.(\d+)))?((_|b)(\d+))?((-|\+|\.)([a-zA-Z0-9\-\+]+)(\.[0-9]+)?)?`)

	eaPattern         = regexp.MustCompile(`(ea|EA)((\.|\+|-)([0-9]+))?`)
	eaTrailingPattern = regexp.MustCompile(`^\.?([0-9]+)`)
	buildPattern      = regexp.MustCompile(`\+?(b|B)([0-9]+)`)
	leadingDigits     = regexp.MustCompile(`^[0-9]+`)
)

// Capture groups of versionPattern
const (
	grpFeature         = 1
	grpTail            = 2
	grpUpdateBranch    = 3
	grpUpdate          = 4
	grpDotted          = 5
	grpDot1            = 6
	grpDot4            = 9
	grpLastDot         = 10
	grpMarker          = 11
	grpMarkerSep       = 12
	grpMarkerDigits    = 13
	grpQualifierSep    = 15
	grpQualifierText   = 16
	grpQualifierNumber = 17
)

// occurrence is one match of versionPattern within the normalized text
type occurrence struct {
	text string
	idx  []int
}

func (o occurrence) has(g int) bool {
	return o.idx[2*g] >= 0
}

func (o occurrence) group(g int) string {
	if !o.has(g) {
		return ""
	}
	return o.text[o.idx[2*g]:o.idx[2*g+1]]
}

func (o occurrence) number(g int) (int, bool) {
	if !o.has(g) {
		return 0, false
	}
	v, err := strconv.Atoi(o.group(g))
	if err != nil {
		return 0, false
	}
	return v, true
}

// numbers reads the given groups in order, failing if any is absent or not a number
func (o occurrence) numbers(groups ...int) ([]int, bool) {
	out := make([]int, 0, len(groups))
	for _, g := range groups {
		v, ok := o.number(g)
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

// shape is one way of reading the components after feature out of an occurrence
type shape struct {
	name    string
	matches func(o occurrence) bool
	resolve func(o occurrence) ([]int, bool)
}

// shapes lists the recognised layouts. resolveShape picks the matching shape
// that yields the most components; on a tie the earlier entry wins.
var shapes = []shape{
	{
		// 17
		name:    "feature",
		matches: func(o occurrence) bool { return !o.has(grpTail) },
		resolve: func(o occurrence) ([]int, bool) { return nil, true },
	},
	{
		// 8u262
		name:    "feature-update",
		matches: func(o occurrence) bool { return o.has(grpUpdateBranch) },
		resolve: func(o occurrence) ([]int, bool) {
			u, ok := o.number(grpUpdate)
			return []int{0, u}, ok
		},
	},
	{
		// 8.0_262
		name: "feature.interim_update",
		matches: func(o occurrence) bool {
			if !o.has(grpDotted) || !o.has(grpMarker) || o.group(grpMarkerSep) != "_" {
				return false
			}
			for g := grpDot1; g <= grpDot4; g++ {
				if o.has(g) {
					return false
				}
			}
			return true
		},
		resolve: func(o occurrence) ([]int, bool) {
			return o.numbers(grpLastDot, grpMarkerDigits)
		},
	},
	{
		// 11.0.2, 7.5.4.3.2.1
		name:    "dotted",
		matches: func(o occurrence) bool { return o.has(grpDotted) },
		resolve: func(o occurrence) ([]int, bool) {
			groups := make([]int, 0, 5)
			for g := grpDot1; g <= grpDot4; g++ {
				if o.has(g) {
					groups = append(groups, g)
				}
			}
			return o.numbers(append(groups, grpLastDot)...)
		},
	},
}

func resolveShape(o occurrence) (string, []int) {
	best, bestName, found := []int(nil), "", false
	for _, s := range shapes {
		if !s.matches(o) {
			continue
		}
		components, ok := s.resolve(o)
		if !ok {
			continue
		}
		if !found || len(components) > len(best) {
			best, bestName, found = components, s.name, true
		}
	}
	return bestName, best
}

// Parse extracts a version number from free text such as a filename or tag,
// using the first occurrence found. See ParseMatch.
func Parse(text string) Number {
	return ParseMatch(text, 0)
}

// ParseMatch extracts a version number from free text. Noisy text may contain
// several candidate version numbers; whichMatch selects the occurrence to use
// (zero based) and falls back to the first one when out of range.
//
// Parsing never fails: text without any version number yields the empty
// Number, for which IsEmpty reports true. Components after feature that the
// text does not specify are zero.
func ParseMatch(text string, whichMatch int) Number {
	if text == "" {
		logrus.Warn("Cannot parse version number from empty text")
		return Number{}
	}

	// Feature versions up to 8 were historically published as 1.x
	normalized := strings.TrimPrefix(text, "1.")

	all := versionPattern.FindAllStringSubmatchIndex(normalized, -1)
	if len(all) == 0 {
		logrus.Warnf("No version number found in %q", text)
		return Number{}
	}
	if whichMatch < 0 || whichMatch >= len(all) {
		whichMatch = 0
	}
	o := occurrence{text: normalized, idx: all[whichMatch]}

	feature, ok := o.number(grpFeature)
	if !ok {
		logrus.Warnf("Feature version out of range in %q", text)
		return Number{}
	}

	var n Number
	n.set(idxFeature, feature)
	shapeName, components := resolveShape(o)
	for i, c := range components {
		n.set(idxInterim+i, c)
	}
	n = n.ZeroFilled()
	logrus.Debugf("Parsed %q as %s (%s)", text, n.Render(FormatFull, false, false), shapeName)

	if isEA, preBuild := earlyAccess(o); isEA {
		n.status = StatusEA
		n.preBuild = preBuild
	}
	n.build = buildNumber(normalized, o, n.IsEA())

	return n
}

// earlyAccess looks for an ea/EA marker in the qualifier of an occurrence and
// returns the pre-build number following it, if any.
func earlyAccess(o occurrence) (bool, Optional) {
	if !o.has(grpQualifierText) {
		return false, Absent()
	}
	qualifier := o.group(grpQualifierText)
	for _, m := range eaPattern.FindAllStringSubmatchIndex(qualifier, -1) {
		// part of a word like "release"
		if m[0] > 0 && isLetter(qualifier[m[0]-1]) {
			continue
		}
		if m[3] < len(qualifier) && isLetter(qualifier[m[3]]) {
			continue
		}
		if m[8] >= 0 {
			if v, err := strconv.Atoi(qualifier[m[8]:m[9]]); err == nil {
				return true, Of(v)
			}
			return true, Absent()
		}
		if t := eaTrailingPattern.FindStringSubmatch(o.group(grpQualifierNumber)); t != nil {
			if v, err := strconv.Atoi(t[1]); err == nil {
				return true, Of(v)
			}
		}
		return true, Absent()
	}
	return false, Absent()
}

// buildNumber returns the first bN/BN marker anywhere in the text. Without one,
// a JEP 223 style "+N" qualifier of a non early access version is the build.
func buildNumber(text string, o occurrence, isEA bool) Optional {
	if m := buildPattern.FindStringSubmatch(text); m != nil {
		if v, err := strconv.Atoi(m[2]); err == nil {
			return Of(v)
		}
	}
	if isEA || o.group(grpQualifierSep) != "+" {
		return Absent()
	}
	if d := leadingDigits.FindString(o.group(grpQualifierText)); d != "" {
		if v, err := strconv.Atoi(d); err == nil {
			return Of(v)
		}
	}
	return Absent()
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
