package models

import "strings"

// Distribution identifies the vendor publishing a JDK build
type Distribution string

const (
	DistributionUnknown Distribution = ""
	Zulu                Distribution = "zulu"
	Temurin             Distribution = "temurin"
	Corretto            Distribution = "corretto"
	Liberica            Distribution = "liberica"
	Microsoft           Distribution = "microsoft"
	SAPMachine          Distribution = "sap_machine"
	Dragonwell          Distribution = "dragonwell"
	OracleOpenJDK       Distribution = "oracle_open_jdk"
	Oracle              Distribution = "oracle"
	GraalVMCE           Distribution = "graalvm_ce"
	Semeru              Distribution = "semeru"
	RedHat              Distribution = "redhat"
	OJDKBuild           Distribution = "ojdk_build"
	Trava               Distribution = "trava"
)

var distributions = []Distribution{
	Zulu, Temurin, Corretto, Liberica, Microsoft, SAPMachine, Dragonwell,
	OracleOpenJDK, Oracle, GraalVMCE, Semeru, RedHat, OJDKBuild, Trava,
}

// Distributions returns all known distributions
func Distributions() []Distribution {
	out := make([]Distribution, len(distributions))
	copy(out, distributions)
	return out
}

// ParseDistribution maps a name to a known Distribution
func ParseDistribution(text string) Distribution {
	name := strings.ToLower(strings.TrimSpace(text))
	name = strings.NewReplacer("-", "_", " ", "_").Replace(name)
	switch name {
	case "adoptium", "eclipse_temurin":
		return Temurin
	case "sapmachine":
		return SAPMachine
	case "graalvm", "graalvm_community":
		return GraalVMCE
	case "oracle_openjdk", "openjdk":
		return OracleOpenJDK
	}
	for _, d := range distributions {
		if string(d) == name {
			return d
		}
	}
	return DistributionUnknown
}

func (d Distribution) String() string {
	return string(d)
}

// Bitness is the word size of an architecture
type Bitness int

const (
	BitnessUnknown Bitness = 0
	Bit32          Bitness = 32
	Bit64          Bitness = 64
)

// String returns the string representation of Bitness
func (b Bitness) String() string {
	switch b {
	case Bit32:
		return "32"
	case Bit64:
		return "64"
	default:
		return ""
	}
}

// Architecture is the CPU architecture a package targets
type Architecture int

const (
	ArchUnknown Architecture = iota
	ArchX64
	ArchX86
	ArchAArch64
	ArchARM
	ArchPPC64LE
	ArchPPC64
	ArchS390X
	ArchSPARCV9
	ArchRISCV64
)

// String returns the string representation of Architecture
func (a Architecture) String() string {
	switch a {
	case ArchX64:
		return "x64"
	case ArchX86:
		return "x86"
	case ArchAArch64:
		return "aarch64"
	case ArchARM:
		return "arm"
	case ArchPPC64LE:
		return "ppc64le"
	case ArchPPC64:
		return "ppc64"
	case ArchS390X:
		return "s390x"
	case ArchSPARCV9:
		return "sparcv9"
	case ArchRISCV64:
		return "riscv64"
	default:
		return "unknown"
	}
}

// Bitness returns the word size of the architecture
func (a Architecture) Bitness() Bitness {
	switch a {
	case ArchX86, ArchARM:
		return Bit32
	case ArchUnknown:
		return BitnessUnknown
	default:
		return Bit64
	}
}

// ParseArchitecture maps an architecture name or common alias to an Architecture
func ParseArchitecture(text string) Architecture {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "x64", "amd64", "x86_64", "x86-64":
		return ArchX64
	case "x86", "i386", "i586", "i686", "x32":
		return ArchX86
	case "aarch64", "arm64":
		return ArchAArch64
	case "arm", "arm32", "armhf", "armv7", "aarch32", "armv6":
		return ArchARM
	case "ppc64le", "ppc64el":
		return ArchPPC64LE
	case "ppc64":
		return ArchPPC64
	case "s390x":
		return ArchS390X
	case "sparcv9", "sparc":
		return ArchSPARCV9
	case "riscv64":
		return ArchRISCV64
	default:
		return ArchUnknown
	}
}

// LibCType is the C runtime a package links against
type LibCType int

const (
	LibCUnknown LibCType = iota
	LibCGlibc
	LibCMusl
	LibCCStdLib
	LibCLibc
)

// String returns the string representation of LibCType
func (l LibCType) String() string {
	switch l {
	case LibCGlibc:
		return "glibc"
	case LibCMusl:
		return "musl"
	case LibCCStdLib:
		return "c_std_lib"
	case LibCLibc:
		return "libc"
	default:
		return "unknown"
	}
}

// ParseLibCType maps a name to a LibCType
func ParseLibCType(text string) LibCType {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "glibc":
		return LibCGlibc
	case "musl":
		return LibCMusl
	case "c_std_lib":
		return LibCCStdLib
	case "libc":
		return LibCLibc
	default:
		return LibCUnknown
	}
}

// OperatingSystem is the OS a package targets
type OperatingSystem int

const (
	OSUnknown OperatingSystem = iota
	OSLinux
	OSLinuxMusl
	OSAlpineLinux
	OSWindows
	OSMacOS
	OSSolaris
	OSAIX
)

// String returns the string representation of OperatingSystem
func (o OperatingSystem) String() string {
	switch o {
	case OSLinux:
		return "linux"
	case OSLinuxMusl:
		return "linux_musl"
	case OSAlpineLinux:
		return "alpine_linux"
	case OSWindows:
		return "windows"
	case OSMacOS:
		return "macos"
	case OSSolaris:
		return "solaris"
	case OSAIX:
		return "aix"
	default:
		return "unknown"
	}
}

// LibCType returns the C runtime packages for this OS link against by default
func (o OperatingSystem) LibCType() LibCType {
	switch o {
	case OSLinux:
		return LibCGlibc
	case OSLinuxMusl, OSAlpineLinux:
		return LibCMusl
	case OSWindows:
		return LibCCStdLib
	case OSMacOS, OSSolaris, OSAIX:
		return LibCLibc
	default:
		return LibCUnknown
	}
}

// ParseOperatingSystem maps an OS name or common alias to an OperatingSystem
func ParseOperatingSystem(text string) OperatingSystem {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "linux":
		return OSLinux
	case "linux_musl", "linux-musl":
		return OSLinuxMusl
	case "alpine_linux", "alpine", "alpine-linux":
		return OSAlpineLinux
	case "windows", "win":
		return OSWindows
	case "macos", "macosx", "osx", "darwin", "mac":
		return OSMacOS
	case "solaris":
		return OSSolaris
	case "aix":
		return OSAIX
	default:
		return OSUnknown
	}
}

// PackageType distinguishes full development kits from runtimes
type PackageType int

const (
	PackageTypeUnknown PackageType = iota
	PackageJDK
	PackageJRE
)

// String returns the string representation of PackageType
func (p PackageType) String() string {
	switch p {
	case PackageJDK:
		return "jdk"
	case PackageJRE:
		return "jre"
	default:
		return "unknown"
	}
}

// ParsePackageType maps a name to a PackageType
func ParsePackageType(text string) PackageType {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "jdk":
		return PackageJDK
	case "jre":
		return PackageJRE
	default:
		return PackageTypeUnknown
	}
}

// ArchiveType is the container format of a package file
type ArchiveType int

const (
	ArchiveUnknown ArchiveType = iota
	ArchiveTarGz
	ArchiveTarXz
	ArchiveTar
	ArchiveZip
	ArchiveDeb
	ArchiveRpm
	ArchiveApk
	ArchivePkgTar
	ArchivePkg
	ArchiveDmg
	ArchiveMsi
	ArchiveCab
	Archive7z
	ArchiveExe
	ArchiveBin
)

// archiveEndings maps file endings to archive types. Longer endings come
// first so ".pkg.tar.zst" is not mistaken for anything shorter.
var archiveEndings = []struct {
	ending string
	typ    ArchiveType
}{
	{".pkg.tar.zst", ArchivePkgTar},
	{".pkg.tar.xz", ArchivePkgTar},
	{".pkg.tar.gz", ArchivePkgTar},
	{".tar.gz", ArchiveTarGz},
	{".tgz", ArchiveTarGz},
	{".tar.xz", ArchiveTarXz},
	{".tar", ArchiveTar},
	{".zip", ArchiveZip},
	{".deb", ArchiveDeb},
	{".rpm", ArchiveRpm},
	{".apk", ArchiveApk},
	{".pkg", ArchivePkg},
	{".dmg", ArchiveDmg},
	{".msi", ArchiveMsi},
	{".cab", ArchiveCab},
	{".7z", Archive7z},
	{".exe", ArchiveExe},
	{".bin", ArchiveBin},
}

// String returns the string representation of ArchiveType
func (a ArchiveType) String() string {
	switch a {
	case ArchiveTarGz:
		return "tar.gz"
	case ArchiveTarXz:
		return "tar.xz"
	case ArchiveTar:
		return "tar"
	case ArchiveZip:
		return "zip"
	case ArchiveDeb:
		return "deb"
	case ArchiveRpm:
		return "rpm"
	case ArchiveApk:
		return "apk"
	case ArchivePkgTar:
		return "pkg.tar"
	case ArchivePkg:
		return "pkg"
	case ArchiveDmg:
		return "dmg"
	case ArchiveMsi:
		return "msi"
	case ArchiveCab:
		return "cab"
	case Archive7z:
		return "7z"
	case ArchiveExe:
		return "exe"
	case ArchiveBin:
		return "bin"
	default:
		return "unknown"
	}
}

// ParseArchiveType maps a name such as "tar.gz" to an ArchiveType
func ParseArchiveType(text string) ArchiveType {
	name := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(text)), ".")
	if name == "tgz" {
		return ArchiveTarGz
	}
	for _, e := range archiveEndings {
		if e.typ.String() == name {
			return e.typ
		}
	}
	return ArchiveUnknown
}

// ArchiveTypeFromFilename derives the archive type from a file's ending
func ArchiveTypeFromFilename(filename string) ArchiveType {
	name := strings.ToLower(filename)
	for _, e := range archiveEndings {
		if strings.HasSuffix(name, e.ending) {
			return e.typ
		}
	}
	return ArchiveUnknown
}

// TermOfSupport is the support tier of a feature release
type TermOfSupport int

const (
	// TermOfSupportNone means no tier applies, as for early access builds
	TermOfSupportNone TermOfSupport = iota
	LTS
	MTS
	STS
	TermOfSupportNotFound
)

// String returns the string representation of TermOfSupport
func (t TermOfSupport) String() string {
	switch t {
	case LTS:
		return "lts"
	case MTS:
		return "mts"
	case STS:
		return "sts"
	case TermOfSupportNotFound:
		return "not_found"
	default:
		return ""
	}
}

// ParseTermOfSupport maps a name to a TermOfSupport
func ParseTermOfSupport(text string) TermOfSupport {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "lts", "long_term_stable":
		return LTS
	case "mts", "mid_term_stable":
		return MTS
	case "sts", "short_term_stable":
		return STS
	case "":
		return TermOfSupportNone
	default:
		return TermOfSupportNotFound
	}
}
