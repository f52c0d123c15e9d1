// Package scorefile keeps the high score as one decimal integer in a small
// file. The desktop file backend and the flash filesystem on the device
// share it, so both read and write the same format.
package scorefile

import (
	"fmt"
	"strconv"
	"strings"
)

// Name is the file the device stores its high score in.
const Name = "highscore.txt"

// FS is the minimal filesystem a Store needs.
type FS interface {
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte) error
	Remove(name string) error
}

// Parse decodes a stored score. Surrounding whitespace is ignored.
func Parse(data []byte) (int, error) {
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("scorefile: corrupt high score: %w", err)
	}
	if score < 0 {
		return 0, fmt.Errorf("scorefile: corrupt high score: negative value %d", score)
	}
	return score, nil
}

// Format encodes a score.
func Format(score int) []byte {
	return []byte(strconv.Itoa(score))
}

// Store reads and writes the high score file on fsys.
type Store struct {
	fsys FS
	name string
}

// New returns a store for the file name on fsys.
func New(fsys FS, name string) *Store {
	return &Store{fsys: fsys, name: name}
}

// LoadHighScore reads the stored score. A missing or unreadable file
// yields 0 together with the error.
func (s *Store) LoadHighScore() (int, error) {
	data, err := s.fsys.ReadFile(s.name)
	if err != nil {
		return 0, fmt.Errorf("scorefile: cannot read %s: %w", s.name, err)
	}
	score, err := Parse(data)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", s.name, err)
	}
	return score, nil
}

// SaveHighScore writes score unless the file already holds a higher one.
// A missing or corrupt file is overwritten.
func (s *Store) SaveHighScore(score int) error {
	if stored, err := s.LoadHighScore(); err == nil && stored >= score {
		return nil
	}
	if err := s.fsys.WriteFile(s.name, Format(score)); err != nil {
		return fmt.Errorf("scorefile: cannot write %s: %w", s.name, err)
	}
	return nil
}

// Clear removes the file. The filesystem's error is returned unchanged so
// callers can test for a missing file.
func (s *Store) Clear() error {
	return s.fsys.Remove(s.name)
}
