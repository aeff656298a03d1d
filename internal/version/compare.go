package version

// Compare orders two version numbers strictly. Components are compared from
// feature down. Where only one side has a component, that side is greater.
// Where neither has it, the numbers tie and the early access pre-build decides.
//
// Compare(a, b) == -Compare(b, a) for all a and b.
func (n Number) Compare(other Number) int {
	for i := 0; i < componentCount; i++ {
		a, aok := n.parts[i].Get()
		b, bok := other.parts[i].Get()
		if !aok && !bok {
			break
		}
		if aok && !bok {
			return 1
		}
		if !aok && bok {
			return -1
		}
		if a != b {
			return sign(a - b)
		}
	}
	return n.comparePreBuild(other)
}

// comparePreBuild breaks ties between early access numbers. An early access
// number with a pre-build outranks one without.
func (n Number) comparePreBuild(other Number) int {
	switch {
	case n.hasEAPreBuild() && other.hasEAPreBuild():
		return sign(n.preBuild.value - other.preBuild.value)
	case n.hasEAPreBuild() && other.IsEA():
		return 1
	case n.IsEA() && other.hasEAPreBuild():
		return -1
	default:
		return 0
	}
}

// CompareForFilter compares a (possibly truncated) query version against a
// catalog version. Both are reduced to their significant components and only
// the common prefix is compared, so 11 matches 11.0.2 and every other 11.x.
// A number without a feature version matches anything.
func (n Number) CompareForFilter(other Number) int {
	if n.IsEmpty() || other.IsEmpty() {
		return 0
	}
	a := n.reducedComponents()
	b := other.reducedComponents()
	length := len(a)
	if len(b) < length {
		length = len(b)
	}
	for i := 0; i < length; i++ {
		if a[i] != b[i] {
			return sign(a[i] - b[i])
		}
	}
	return 0
}

// Equal reports prefix equality: walking down from feature, every component
// present on n must be present and equal on other. The walk stops successfully
// at the first component n lacks. Two early access numbers that both carry a
// pre-build must also agree on it.
func (n Number) Equal(other Number) bool {
	for i := 0; i < componentCount; i++ {
		a, ok := n.parts[i].Get()
		if !ok {
			break
		}
		b, ok := other.parts[i].Get()
		if !ok || a != b {
			return false
		}
	}
	if n.hasEAPreBuild() && other.hasEAPreBuild() {
		return n.preBuild.value == other.preBuild.value
	}
	return true
}

// Compare is the function form of Number.Compare, usable with slices.SortFunc
func Compare(a, b Number) int {
	return a.Compare(b)
}

// Max returns the strictly greatest number of the given ones. ok is false for an empty input.
func Max(numbers ...Number) (Number, bool) {
	var best Number
	for i, n := range numbers {
		if i == 0 || n.Compare(best) > 0 {
			best = n
		}
	}
	return best, len(numbers) > 0
}

func sign(d int) int {
	switch {
	case d > 0:
		return 1
	case d < 0:
		return -1
	default:
		return 0
	}
}
