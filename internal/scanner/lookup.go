package scanner

import (
	"strings"

	"github.com/ralt/pkgdisco/internal/models"
	"github.com/ralt/pkgdisco/internal/version"
)

// Attributes are the package properties vendors encode in their filenames
type Attributes struct {
	OperatingSystem models.OperatingSystem
	Architecture    models.Architecture
	PackageType     models.PackageType
	ReleaseStatus   version.ReleaseStatus
	LibCType        models.LibCType
	JavaFXBundled   bool
}

type lookupEntry[T any] struct {
	token string
	value T
}

// The lookup tables are searched in order and the first token contained in
// the lower cased filename wins, so more specific tokens come first.
var (
	osLookup = []lookupEntry[models.OperatingSystem]{
		{"alpine", models.OSAlpineLinux},
		{"musl", models.OSLinuxMusl},
		{"linux", models.OSLinux},
		{".deb", models.OSLinux},
		{".rpm", models.OSLinux},
		{".apk", models.OSAlpineLinux},
		{".pkg.tar", models.OSLinux},
		{"macosx", models.OSMacOS},
		{"macos", models.OSMacOS},
		{"darwin", models.OSMacOS},
		{"osx", models.OSMacOS},
		{"_mac", models.OSMacOS},
		{"-mac", models.OSMacOS},
		{".dmg", models.OSMacOS},
		{".pkg", models.OSMacOS},
		{"windows", models.OSWindows},
		{"win64", models.OSWindows},
		{"win32", models.OSWindows},
		{"_win", models.OSWindows},
		{"-win", models.OSWindows},
		{".msi", models.OSWindows},
		{".exe", models.OSWindows},
		{"solaris", models.OSSolaris},
		{"aix", models.OSAIX},
	}

	archLookup = []lookupEntry[models.Architecture]{
		{"aarch64", models.ArchAArch64},
		{"arm64", models.ArchAArch64},
		{"x86_64", models.ArchX64},
		{"x86-64", models.ArchX64},
		{"amd64", models.ArchX64},
		{"x64", models.ArchX64},
		{"ppc64le", models.ArchPPC64LE},
		{"ppc64el", models.ArchPPC64LE},
		{"ppc64", models.ArchPPC64},
		{"s390x", models.ArchS390X},
		{"sparcv9", models.ArchSPARCV9},
		{"riscv64", models.ArchRISCV64},
		{"armhf", models.ArchARM},
		{"arm32", models.ArchARM},
		{"aarch32", models.ArchARM},
		{"armv7", models.ArchARM},
		{"arm", models.ArchARM},
		{"i686", models.ArchX86},
		{"i586", models.ArchX86},
		{"i386", models.ArchX86},
		{"x86", models.ArchX86},
		{"x32", models.ArchX86},
	}

	packageTypeLookup = []lookupEntry[models.PackageType]{
		{"jre", models.PackageJRE},
		{"jdk", models.PackageJDK},
		{"java", models.PackageJDK},
	}

	earlyAccessTokens = []string{"-ea", "_ea", "+ea", ".ea", "early-access", "early_access"}

	javaFXTokens = []string{"javafx", "jdk-fx", "jre-fx", "fx-jdk", "fx-jre", "jdkfx", "jrefx", "_fx_", "-fx-", "-full"}
)

func lookup[T any](name string, table []lookupEntry[T], def T) T {
	for _, e := range table {
		if strings.Contains(name, e.token) {
			return e.value
		}
	}
	return def
}

func containsAny(name string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(name, t) {
			return true
		}
	}
	return false
}

// DetectAttributes derives package properties from a filename. Properties
// the filename does not mention are left unknown, except the package type,
// which defaults to JDK, and the release status, which defaults to GA.
func DetectAttributes(filename string) Attributes {
	name := strings.ToLower(filename)

	attrs := Attributes{
		OperatingSystem: lookup(name, osLookup, models.OSUnknown),
		Architecture:    lookup(name, archLookup, models.ArchUnknown),
		PackageType:     lookup(name, packageTypeLookup, models.PackageJDK),
		ReleaseStatus:   version.StatusGA,
		JavaFXBundled:   containsAny(name, javaFXTokens),
	}
	if containsAny(name, earlyAccessTokens) {
		attrs.ReleaseStatus = version.StatusEA
	}

	attrs.LibCType = attrs.OperatingSystem.LibCType()
	if strings.Contains(name, "musl") {
		attrs.LibCType = models.LibCMusl
	}

	return attrs
}
