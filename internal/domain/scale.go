package domain

import (
	"sort"

	m "github.com/mouse-blink/scalefit/internal/model"
)

// ScaleNotes walks pattern from tonic and returns the seven pitch classes
// visited. The tonic is always the first member.
func ScaleNotes(tonic m.PitchClass, pattern m.IntervalPattern) m.PitchSet {
	var notes m.PitchSet

	offset := 0
	for _, step := range pattern {
		notes = notes.Add(tonic.Transpose(offset))
		offset += step
	}

	return notes
}

// IsCompatible reports whether every used note belongs to the scale. An empty
// set of used notes fits every scale.
func IsCompatible(scale, used m.PitchSet) bool {
	return used.SubsetOf(scale)
}

// CompatibleKeys returns the labels of every key whose scale contains used,
// sorted in byte order ("MA" < "MA#" < ... < "mG#").
func CompatibleKeys(used m.PitchSet) []string {
	labels := make([]string, 0, m.PitchClassCount*len(m.Modes()))

	for _, key := range m.Keys() {
		if IsCompatible(ScaleNotes(key.Tonic, key.Mode.Pattern()), used) {
			labels = append(labels, key.Label())
		}
	}

	sort.Strings(labels)

	return labels
}
