package version

import (
	"fmt"
	"strconv"
	"strings"
)

// Render renders the number in the given format. javaFormat limits output to
// the four components Java itself uses. withSuffix appends the release status,
// pre-build and build suffix, e.g. 17-ea.5 or 11.0.2+b13.
func (n Number) Render(format OutputFormat, javaFormat, withSuffix bool) string {
	last := idxSixth
	if format == FormatReduced {
		last = n.lastSignificant()
	}
	if javaFormat && last > idxPatch {
		last = idxPatch
	}

	var b strings.Builder
	for i := 0; i <= last; i++ {
		v, ok := n.parts[i].Get()
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(v))
	}
	if withSuffix {
		b.WriteString(n.suffix())
	}
	return b.String()
}

// String renders every present component in Java format, with suffix
func (n Number) String() string {
	return n.Render(FormatFull, true, true)
}

// Canonical renders every component of the zero filled number, then the early
// access marker and pre-build (even a zero one) and the build, e.g.
// 11.0.9.1.2.3+b7 or 17.0.0.0.0.0-ea.0. Parse reads it back to a number that
// compares equal to n.ZeroFilled(). An empty number renders as "".
func (n Number) Canonical() string {
	if n.IsEmpty() {
		return ""
	}
	var b strings.Builder
	b.WriteString(n.ZeroFilled().Render(FormatFull, false, false))
	if n.IsEA() {
		b.WriteString("-ea")
		if pb, ok := n.preBuild.Get(); ok {
			b.WriteString("." + strconv.Itoa(pb))
		}
	}
	if build, ok := n.build.Get(); ok {
		b.WriteString("+b" + strconv.Itoa(build))
	}
	return b.String()
}

// Normalized renders all six components, treating absent ones as zero, e.g. 8.0.262.0.0.0
func (n Number) Normalized() (string, error) {
	if n.IsEmpty() {
		return "", fmt.Errorf("%w: no feature version to normalize", ErrInvalidVersion)
	}
	parts := make([]string, componentCount)
	for i := range parts {
		parts[i] = strconv.Itoa(n.parts[i].OrElse(0))
	}
	return strings.Join(parts, "."), nil
}

func (n Number) suffix() string {
	var b strings.Builder
	if n.IsEA() {
		b.WriteString("-ea")
		if pb, ok := n.preBuild.Get(); ok && pb > 0 {
			b.WriteString("." + strconv.Itoa(pb))
		}
	}
	if build, ok := n.build.Get(); ok {
		b.WriteString("+b" + strconv.Itoa(build))
	}
	return b.String()
}

// lastSignificant returns the index of the least significant non-zero
// component, or feature when all later components are zero or absent.
func (n Number) lastSignificant() int {
	for i := idxSixth; i > idxFeature; i-- {
		if v, ok := n.parts[i].Get(); ok && v != 0 {
			return i
		}
	}
	return idxFeature
}

// reducedComponents returns the present components of the reduced rendering
func (n Number) reducedComponents() []int {
	last := n.lastSignificant()
	out := make([]int, 0, last+1)
	for i := 0; i <= last; i++ {
		if v, ok := n.parts[i].Get(); ok {
			out = append(out, v)
		}
	}
	return out
}
