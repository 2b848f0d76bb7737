package model

// IntervalPattern lists the semitone steps of a seven-note scale, read from
// the tonic. The steps of every pattern sum to an octave.
type IntervalPattern [7]int

var (
	// MajorPattern is the tone/semitone layout of the major scale.
	MajorPattern = IntervalPattern{2, 2, 1, 2, 2, 2, 1}
	// MinorPattern is the tone/semitone layout of the natural minor scale.
	MinorPattern = IntervalPattern{2, 1, 2, 2, 1, 2, 2}
)

// Mode selects between the major and minor interval patterns.
type Mode uint8

const (
	// Major labels keys with an upper-case "M".
	Major Mode = iota
	// Minor labels keys with a lower-case "m".
	Minor
)

// Modes returns every supported mode.
func Modes() []Mode {
	return []Mode{Major, Minor}
}

// Pattern returns the interval pattern of the mode.
func (m Mode) Pattern() IntervalPattern {
	if m == Minor {
		return MinorPattern
	}

	return MajorPattern
}

// Prefix returns the label prefix of the mode.
func (m Mode) Prefix() string {
	if m == Minor {
		return "m"
	}

	return "M"
}

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}

	return "major"
}

// Key identifies a scale by tonic and mode. Keys with equal pitch content
// (C major and A minor) are still distinct keys.
type Key struct {
	Tonic PitchClass
	Mode  Mode
}

// Label renders the key as "M<tonic>" or "m<tonic>".
func (k Key) Label() string {
	return k.Mode.Prefix() + k.Tonic.String()
}

// Keys returns all 24 candidate keys, tonic-major then tonic-minor in semitone order.
func Keys() []Key {
	keys := make([]Key, 0, PitchClassCount*len(Modes()))
	for _, tonic := range PitchClasses() {
		for _, mode := range Modes() {
			keys = append(keys, Key{Tonic: tonic, Mode: mode})
		}
	}

	return keys
}
