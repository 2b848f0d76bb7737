package adapter

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/scalefit/internal/model"
	"gitlab.com/gomidi/midi/v2/smf"
)

// percussionChannel is General MIDI channel 10; its keys select drum sounds,
// not pitches.
const percussionChannel = 9

// recursivePattern marks a directory argument that is scanned with all its subdirectories.
const recursivePattern = "..."

var midiExtensions = map[string]bool{".mid": true, ".midi": true, ".smf": true}

// MIDIAdapter extracts the notes a piece uses from a Standard MIDI File.
type MIDIAdapter interface {
	// ExpandPaths resolves files, directories and "dir/..." patterns into the
	// MIDI files they name. Directories contribute only *.mid, *.midi and *.smf
	// files; explicit file arguments are kept as given.
	ExpandPaths(paths []m.Path) ([]m.Path, error)

	ReadPitchClasses(path m.Path) (m.PitchSet, error)
}

// SMFAdapter reads MIDI files with gomidi.
type SMFAdapter struct{}

// NewSMFAdapter constructs an SMFAdapter.
func NewSMFAdapter() *SMFAdapter {
	return &SMFAdapter{}
}

// ExpandPaths walks directory arguments in lexical order.
func (a *SMFAdapter) ExpandPaths(paths []m.Path) ([]m.Path, error) {
	var files []m.Path

	for _, path := range paths {
		root, recursive := splitRecursivePattern(string(path))

		info, err := os.Stat(root)
		if err != nil && recursive {
			return nil, fmt.Errorf("expand %s: %w", path, err)
		}

		// Missing files are reported per case when they are read.
		if err != nil || !info.IsDir() {
			files = append(files, m.Path(root))
			continue
		}

		err = filepath.WalkDir(root, func(current string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				return walkErr
			}

			if entry.IsDir() {
				if !recursive && current != root {
					return filepath.SkipDir
				}

				return nil
			}

			if midiExtensions[strings.ToLower(filepath.Ext(current))] {
				files = append(files, m.Path(current))
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("expand %s: %w", path, err)
		}
	}

	return files, nil
}

func splitRecursivePattern(path string) (string, bool) {
	if path == recursivePattern {
		return ".", true
	}

	suffix := string(filepath.Separator) + recursivePattern
	if !strings.HasSuffix(path, suffix) {
		return path, false
	}

	root := strings.TrimSuffix(path, suffix)
	if root == "" {
		root = string(filepath.Separator)
	}

	return root, true
}

// ReadPitchClasses returns the pitch classes of every sounding note-on in the
// file, ignoring the percussion channel.
func (a *SMFAdapter) ReadPitchClasses(path m.Path) (set m.PitchSet, err error) {
	// smf can panic on truncated input
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("parse midi file %s: %v", path, r)
		}
	}()

	data, err := os.ReadFile(string(path))
	if err != nil {
		return 0, fmt.Errorf("read midi file: %w", err)
	}

	file, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("parse midi file %s: %w", path, err)
	}

	for _, track := range file.Tracks {
		for _, event := range track {
			var channel, key, velocity uint8
			if !event.Message.GetNoteOn(&channel, &key, &velocity) {
				continue
			}

			if velocity == 0 || channel == percussionChannel {
				continue
			}

			set = set.Add(m.PitchClassOfKey(key))
		}
	}

	return set, nil
}
