package domain

import (
	"errors"
	"fmt"

	m "github.com/mouse-blink/scalefit/internal/model"
)

// ErrUnrecognizedNote is returned when a spelling has no normalization entry.
var ErrUnrecognizedNote = errors.New("unrecognized note")

// UnrecognizedNoteError names the offending spelling.
type UnrecognizedNoteError struct {
	Token string
}

func (e *UnrecognizedNoteError) Error() string {
	return fmt.Sprintf("unrecognized note %q", e.Token)
}

// Unwrap lets errors.Is match ErrUnrecognizedNote.
func (e *UnrecognizedNoteError) Unwrap() error {
	return ErrUnrecognizedNote
}

// spellings maps every accepted input spelling to its canonical pitch class.
// It is never written after package initialization.
var spellings = map[string]m.PitchClass{
	"C": m.C, "D": m.D, "E": m.E, "F": m.F, "G": m.G, "A": m.A, "B": m.B,

	"C#": m.CSharp, "D#": m.DSharp, "F#": m.FSharp, "G#": m.GSharp, "A#": m.ASharp,
	"B#": m.C, "E#": m.F,

	"Db": m.CSharp, "Eb": m.DSharp, "Gb": m.FSharp, "Ab": m.GSharp, "Bb": m.ASharp,
	"Cb": m.B, "Fb": m.E,
}

// Normalize maps an enharmonic spelling such as "Ab" to its canonical pitch
// class (G#). Spellings are case-sensitive.
func Normalize(spelling string) (m.PitchClass, error) {
	pc, ok := spellings[spelling]
	if !ok {
		return 0, &UnrecognizedNoteError{Token: spelling}
	}

	return pc, nil
}

// NormalizeAll collapses tokens into the set of pitch classes they spell.
// Tokens are checked in input order so the first unrecognized one is reported.
func NormalizeAll(tokens []string) (m.PitchSet, error) {
	var used m.PitchSet

	seen := make(map[string]struct{}, len(tokens))

	for _, token := range tokens {
		if _, dup := seen[token]; dup {
			continue
		}

		seen[token] = struct{}{}

		pc, err := Normalize(token)
		if err != nil {
			return 0, err
		}

		used = used.Add(pc)
	}

	return used, nil
}
