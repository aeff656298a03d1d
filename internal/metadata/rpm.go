package metadata

import (
	"fmt"
	"os"

	"github.com/sassoftware/go-rpmutils"
)

// ReadRpm reads the header of an RPM package
func ReadRpm(path string) (*Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rpm, err := rpmutils.ReadRpm(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read RPM: %w", err)
	}

	info := &Info{
		Name:         getStringTag(rpm, rpmutils.NAME),
		Version:      getStringTag(rpm, rpmutils.VERSION),
		Release:      getStringTag(rpm, rpmutils.RELEASE),
		Architecture: getStringTag(rpm, rpmutils.ARCH),
	}
	if info.Version == "" {
		return nil, fmt.Errorf("RPM header has no version")
	}

	return info, nil
}

// getStringTag safely gets a string tag from RPM
func getStringTag(rpm *rpmutils.Rpm, tag int) string {
	val, err := rpm.Header.Get(tag)
	if err != nil {
		return ""
	}

	switch v := val.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case []string:
		if len(v) > 0 {
			return v[0]
		}
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}
