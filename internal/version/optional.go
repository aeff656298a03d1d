package version

import "strconv"

// Optional is a non-negative integer that may be absent. The zero value is absent.
type Optional struct {
	value   int
	present bool
}

// Of returns a present Optional holding v
func Of(v int) Optional {
	return Optional{value: v, present: true}
}

// Absent returns an empty Optional
func Absent() Optional {
	return Optional{}
}

// Get returns the value and whether it is present
func (o Optional) Get() (int, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value is set
func (o Optional) IsPresent() bool {
	return o.present
}

// OrElse returns the value, or def when absent
func (o Optional) OrElse(def int) int {
	if !o.present {
		return def
	}
	return o.value
}

// String renders the value, or "-" when absent
func (o Optional) String() string {
	if !o.present {
		return "-"
	}
	return strconv.Itoa(o.value)
}
