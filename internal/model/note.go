// Package model defines the value types shared by the scalefit packages.
package model

import (
	"fmt"
	"math/bits"
	"strings"
)

// PitchClass is one of the 12 chromatic notes, numbered by semitone from C.
type PitchClass uint8

// The 12 canonical pitch classes. Black keys are always spelled with a sharp.
const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	ASharp
	B
)

// PitchClassCount is the size of the chromatic alphabet.
const PitchClassCount = 12

var pitchClassNames = [PitchClassCount]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// PitchClasses returns the 12 pitch classes in semitone order starting at C.
func PitchClasses() []PitchClass {
	pcs := make([]PitchClass, 0, PitchClassCount)
	for i := 0; i < PitchClassCount; i++ {
		pcs = append(pcs, PitchClass(i))
	}

	return pcs
}

// PitchClassOfKey maps a MIDI key number to its pitch class.
func PitchClassOfKey(key uint8) PitchClass {
	return PitchClass(key % PitchClassCount)
}

// Valid reports whether p is inside the chromatic alphabet.
func (p PitchClass) Valid() bool {
	return p < PitchClassCount
}

func (p PitchClass) String() string {
	if !p.Valid() {
		return fmt.Sprintf("PitchClass(%d)", uint8(p))
	}

	return pitchClassNames[p]
}

// Transpose returns the pitch class n semitones above p (n may be negative).
func (p PitchClass) Transpose(n int) PitchClass {
	return PitchClass(((int(p)+n)%PitchClassCount + PitchClassCount) % PitchClassCount)
}

// PitchSet is a set of pitch classes with value semantics. Bit i is set when
// PitchClass(i) is a member.
type PitchSet uint16

// NewPitchSet builds a set holding the given pitch classes.
func NewPitchSet(pcs ...PitchClass) PitchSet {
	var s PitchSet
	for _, pc := range pcs {
		s = s.Add(pc)
	}

	return s
}

// Add returns s with p included.
func (s PitchSet) Add(p PitchClass) PitchSet {
	if !p.Valid() {
		return s
	}

	return s | 1<<p
}

// Contains reports whether p is a member of s.
func (s PitchSet) Contains(p PitchClass) bool {
	return p.Valid() && s&(1<<p) != 0
}

// Len returns the number of members.
func (s PitchSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// IsEmpty reports whether s has no members.
func (s PitchSet) IsEmpty() bool {
	return s == 0
}

// SubsetOf reports whether every member of s is also a member of other.
func (s PitchSet) SubsetOf(other PitchSet) bool {
	return s&^other == 0
}

// Slice returns the members in semitone order.
func (s PitchSet) Slice() []PitchClass {
	pcs := make([]PitchClass, 0, s.Len())
	for _, pc := range PitchClasses() {
		if s.Contains(pc) {
			pcs = append(pcs, pc)
		}
	}

	return pcs
}

// Names returns the canonical symbols of the members in semitone order.
func (s PitchSet) Names() []string {
	names := make([]string, 0, s.Len())
	for _, pc := range s.Slice() {
		names = append(names, pc.String())
	}

	return names
}

func (s PitchSet) String() string {
	return "{" + strings.Join(s.Names(), " ") + "}"
}
