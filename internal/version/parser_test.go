package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		normalized string
		status     ReleaseStatus
		preBuild   Optional
		build      Optional
	}{
		{name: "feature only", text: "8", normalized: "8.0.0.0.0.0"},
		{name: "legacy update", text: "8u262", normalized: "8.0.262.0.0.0"},
		{name: "legacy prefixed update", text: "1.8u262", normalized: "8.0.262.0.0.0"},
		{name: "legacy underscore update", text: "1.8.0_262", normalized: "8.0.262.0.0.0"},
		{name: "jep 223 build", text: "11.0.2+13-LTS", normalized: "11.0.2.0.0.0", build: Of(13)},
		{name: "feature with jep 223 build", text: "11+28", normalized: "11.0.0.0.0.0", build: Of(28)},
		{name: "ea dot pre-build", text: "14-ea.28", normalized: "14.0.0.0.0.0", status: StatusEA, preBuild: Of(28)},
		{name: "ea plus pre-build", text: "14-ea+28", normalized: "14.0.0.0.0.0", status: StatusEA, preBuild: Of(28)},
		{name: "upper case ea", text: "14-EA-28", normalized: "14.0.0.0.0.0", status: StatusEA, preBuild: Of(28)},
		{name: "ea without pre-build", text: "16-ea", normalized: "16.0.0.0.0.0", status: StatusEA},
		{name: "ea filename", text: "17-ea+5_linux-x64-musl_bin.tar.gz", normalized: "17.0.0.0.0.0", status: StatusEA, preBuild: Of(5)},
		{name: "noise prefix", text: "signed.7.5.4.3.2.1.0", normalized: "7.5.4.3.2.1"},
		{name: "rpm filename", text: "1.8.0_275.b01-x86.rpm", normalized: "8.0.275.0.0.0", build: Of(1)},
		{name: "update with build marker", text: "8u272b09_ea.tar.gz", normalized: "8.0.272.0.0.0", build: Of(9)},
		{name: "four components with underscore", text: "11.0.9.1_1.tar.gz", normalized: "11.0.9.1.0.0"},
		{name: "deb filename", text: "11.0.9.12-1_amd64.deb", normalized: "11.0.9.12.0.0"},
		{name: "legacy build qualifier", text: "1.7.0_25-b15", normalized: "7.0.25.0.0.0", build: Of(15)},
		{name: "openj9 tag", text: "8u162-b12_openj9-0.8.0", normalized: "8.0.162.0.0.0", build: Of(12)},
		{name: "word containing ea", text: "11.0.2-release", normalized: "11.0.2.0.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Parse(tt.text)
			require.False(t, n.IsEmpty())

			normalized, err := n.Normalized()
			require.NoError(t, err)
			assert.Equal(t, tt.normalized, normalized)
			assert.Equal(t, tt.status, n.ReleaseStatus())
			assert.Equal(t, tt.preBuild, n.PreBuild())
			assert.Equal(t, tt.build, n.Build())
		})
	}
}

func TestParseEquivalentSpellings(t *testing.T) {
	want := Parse("8u262")
	for _, text := range []string{"1.8u262", "1.8.0_262", "8.0.262"} {
		assert.Zero(t, Parse(text).Compare(want), text)
	}

	ea := Parse("14-ea.28")
	for _, text := range []string{"14-ea+28", "14-EA-28"} {
		assert.Zero(t, Parse(text).Compare(ea), text)
		assert.True(t, Parse(text).Equal(ea), text)
	}
}

func TestParseUnparseable(t *testing.T) {
	for _, text := range []string{"", "jdk", "linux-x_.tar.gz", "0"} {
		n := Parse(text)
		assert.True(t, n.IsEmpty(), text)
		_, err := n.Normalized()
		assert.ErrorIs(t, err, ErrInvalidVersion)
	}
}

func TestParseMatch(t *testing.T) {
	filename := "OpenJDK17U-jdk_x64_linux_hotspot_17.0.2_8.tar.gz"

	assert.Equal(t, "17.0.0.0.0.0", mustNormalize(t, ParseMatch(filename, 0)))
	assert.Equal(t, "64.0.0.0.0.0", mustNormalize(t, ParseMatch(filename, 1)))
	assert.Equal(t, "17.0.2.0.0.0", mustNormalize(t, ParseMatch(filename, 2)))

	// out of range falls back to the first occurrence
	assert.Equal(t, "17.0.0.0.0.0", mustNormalize(t, ParseMatch(filename, 9)))
	assert.Equal(t, "17.0.0.0.0.0", mustNormalize(t, ParseMatch(filename, -1)))
}

func TestParseShapePreference(t *testing.T) {
	// "8.0_262" also reads as the dotted 8.0 with a trailing marker;
	// the interpretation with more components wins.
	assert.Equal(t, "8.0.262.0.0.0", mustNormalize(t, Parse("8.0_262")))

	// once dotted components are present the underscore suffix is not an update
	assert.Equal(t, "17.0.2.0.0.0", mustNormalize(t, Parse("17.0.2_8")))

	// a b marker never becomes an update
	n := Parse("8.0b12")
	assert.Equal(t, "8.0.0.0.0.0", mustNormalize(t, n))
	assert.Equal(t, Of(12), n.Build())
}

func TestParseFillsZeros(t *testing.T) {
	n := Parse("11")
	assert.Equal(t, 6, n.NumbersAvailable())
	assert.Equal(t, Of(0), n.Interim())
	assert.Equal(t, Of(0), n.Sixth())
	assert.False(t, n.Build().IsPresent())
}

func mustNormalize(t *testing.T, n Number) string {
	t.Helper()
	s, err := n.Normalized()
	require.NoError(t, err)
	return s
}
